package render

import (
	"io"

	"github.com/brogergvhs/hqnews/internal/comic"
	"github.com/brogergvhs/hqnews/internal/news"
)

// Form echoes the user's last choices back into the page. The API key is
// never echoed.
type Form struct {
	Mode  news.Mode
	Title string
	Link  string
	URL   string
	UseAI bool
}

type ModeOption struct {
	Value    string
	Label    string
	Selected bool
}

type Page struct {
	Form   Form
	Result *comic.GenerationResult
	// State is the encoded Result posted back by the download button.
	State string
	Error string
}

// Modes lists the selector options with the current one marked.
func (p Page) Modes() []ModeOption {
	current := p.Form.Mode
	if current == "" {
		current = news.ModeAutomatic
	}

	out := make([]ModeOption, 0, len(news.Modes))
	for _, m := range news.Modes {
		out = append(out, ModeOption{
			Value:    string(m),
			Label:    m.Label(),
			Selected: m == current,
		})
	}

	return out
}

// Screen writes the interactive page, with the storyboard when a result is set.
func Screen(w io.Writer, p Page) error {
	return screenTmpl.Execute(w, p)
}
