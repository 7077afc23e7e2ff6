// Package render turns a GenerationResult into HTML: the interactive page
// shown in the browser and the standalone document offered for download.
// Every field is escaped by html/template; links with unsafe schemes are
// neutralised.
package render

import (
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/brogergvhs/hqnews/internal/comic"
	"github.com/brogergvhs/hqnews/internal/news"
)

const (
	ExportFilename = "hq_noticia.html"
	ExportMIME     = "text/html"

	TimestampLayout = "02/01/2006 15:04"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"link":      linkOrPlaceholder,
	"timestamp": timestamp,
}

var (
	exportTmpl = template.Must(template.New("export.html.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/export.html.tmpl"))
	screenTmpl = template.Must(template.New("screen.html.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/screen.html.tmpl"))
)

func linkOrPlaceholder(link string) string {
	if strings.TrimSpace(link) == "" {
		return news.LinkPlaceholder
	}
	return link
}

func timestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// Export writes the downloadable document. It depends only on the display
// title, the panels and the news item; the clock is never read.
func Export(w io.Writer, r *comic.GenerationResult) error {
	return exportTmpl.Execute(w, r)
}

// ExportString is Export into a string.
func ExportString(r *comic.GenerationResult) (string, error) {
	var sb strings.Builder
	if err := Export(&sb, r); err != nil {
		return "", err
	}
	return sb.String(), nil
}
