package script

// PanelCount is the fixed number of panels in every storyboard.
const PanelCount = 6

// Panel is one comic frame: 1-based index, narrative caption and the prompt
// meant for an external image generator.
type Panel struct {
	Index       int    `json:"index"`
	Caption     string `json:"caption"`
	ImagePrompt string `json:"image_prompt"`
}

// Position returns the 0-based grid cell of a 1-based panel index in the
// two-column, row-major layout.
func Position(index int) (row, col int) {
	return (index - 1) / 2, (index - 1) % 2
}
