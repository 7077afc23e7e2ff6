package comic

import (
	"time"

	"github.com/brogergvhs/hqnews/internal/news"
	"github.com/brogergvhs/hqnews/internal/script"
)

const (
	titlePrefix   = "📚 "
	titleSuffix   = "..."
	titleMaxRunes = 50
)

type GenerationResult struct {
	Item         news.Item      `json:"item"`
	Panels       []script.Panel `json:"panels"`
	DisplayTitle string         `json:"display_title"`
	GeneratedAt  time.Time      `json:"generated_at"`
	Bucket       script.Bucket  `json:"bucket"`
	Generator    string         `json:"generator"`
	Fallback     bool           `json:"fallback,omitempty"`
	Warnings     []string       `json:"warnings,omitempty"`
}

// DisplayTitle keeps the first 50 characters of the headline. The ellipsis
// is always appended, even for short headlines.
func DisplayTitle(title string) string {
	r := []rune(title)
	if len(r) > titleMaxRunes {
		r = r[:titleMaxRunes]
	}

	return titlePrefix + string(r) + titleSuffix
}

// Rows groups panels two per row in index order.
func (r *GenerationResult) Rows() [][]script.Panel {
	rows := make([][]script.Panel, 0, (len(r.Panels)+1)/2)
	for i := 0; i < len(r.Panels); i += 2 {
		end := min(i+2, len(r.Panels))
		rows = append(rows, r.Panels[i:end])
	}

	return rows
}
