package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/brogergvhs/hqnews/internal/comic"
	"github.com/brogergvhs/hqnews/internal/news"
	"github.com/brogergvhs/hqnews/internal/script"
)

func newResult(item news.Item) *comic.GenerationResult {
	return &comic.GenerationResult{
		Item:         item,
		Panels:       script.Generate(item.Title),
		DisplayTitle: comic.DisplayTitle(item.Title),
		GeneratedAt:  time.Date(2026, 3, 7, 9, 4, 0, 0, time.Local),
		Bucket:       script.Classify(item.Title),
		Generator:    "template",
	}
}

func TestExportStructure(t *testing.T) {
	t.Parallel()

	r := newResult(news.Item{Title: "Nova tecnologia", Link: "https://g1.globo.com/a", Source: "G1"})
	out, err := ExportString(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("expected doctype first")
	}
	for _, want := range []string{
		"<title>📚 Nova tecnologia...</title>",
		"<h1>📚 Nova tecnologia...</h1>",
		"grid-template-columns: repeat(2, 1fr)",
		`Fonte: G1 - <a href="https://g1.globo.com/a">https://g1.globo.com/a</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %q", want)
		}
	}

	last := -1
	for i := 1; i <= script.PanelCount; i++ {
		pos := strings.Index(out, fmt.Sprintf("<h3>Quadro %d</h3>", i))
		if pos < 0 || pos < last {
			t.Fatalf("panel %d missing or out of order", i)
		}
		last = pos
	}
}

func TestExportIsPure(t *testing.T) {
	t.Parallel()

	r := newResult(news.Item{Title: "Debate de política", Link: "#", Source: "Manual"})

	first, err := ExportString(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r2 := *r
	r2.GeneratedAt = r.GeneratedAt.Add(72 * time.Hour)
	second, err := ExportString(&r2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("export output depends on something besides title, panels and item")
	}
	if strings.Contains(first, "07/03/2026") {
		t.Error("export must not embed the generation timestamp")
	}
}

func TestExportBlankLinkRendersPlaceholder(t *testing.T) {
	t.Parallel()

	r := newResult(news.Item{Title: "Sem link", Link: "", Source: "Manual"})
	out, err := ExportString(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, `Fonte: Manual - <a href="#">#</a>`) {
		t.Errorf("blank link not replaced by placeholder:\n%s", out)
	}
	if strings.Contains(out, `href=""`) {
		t.Error("export contains an empty anchor")
	}
}

func TestExportEscapesUntrustedFields(t *testing.T) {
	t.Parallel()

	r := newResult(news.Item{
		Title:  `<script>alert("x")</script>`,
		Link:   `javascript:alert(1)`,
		Source: `<b>Manual</b>`,
	})
	r.Panels[0].Caption = `<img src=x onerror=alert(1)>`
	r.Panels[0].ImagePrompt = `"quoted" & <tagged>`

	out, err := ExportString(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, raw := range []string{"<script>alert", "<img src=x", "<tagged>", "<b>Manual</b>", `href="javascript:`} {
		if strings.Contains(out, raw) {
			t.Errorf("export contains unescaped %q", raw)
		}
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("expected escaped title")
	}
	if !strings.Contains(out, "#ZgotmplZ") {
		t.Error("expected unsafe link to be neutralised")
	}
}

func TestScreenWithoutResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Screen(&buf, Page{Form: Form{Mode: news.ModeManual, Title: "Meu título"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "Quadro 1") {
		t.Error("no panels expected before generation")
	}
	if strings.Contains(out, "Baixar HTML") {
		t.Error("download button must only appear after a generation")
	}
	if !strings.Contains(out, `<option value="manual" selected>Texto Manual</option>`) {
		t.Error("manual mode should be selected")
	}
	if !strings.Contains(out, `value="Meu título"`) {
		t.Error("title should be echoed back")
	}
	for _, m := range news.Modes {
		if !strings.Contains(out, fmt.Sprintf(`value="%s"`, m)) {
			t.Errorf("mode %q not offered", m)
		}
	}
}

func TestScreenWithResult(t *testing.T) {
	t.Parallel()

	r := newResult(news.Item{Title: "Nova tecnologia", Link: "", Source: "Manual"})
	r.Warnings = []string{"usando notícia de demonstração"}

	var buf bytes.Buffer
	err := Screen(&buf, Page{Form: Form{Mode: news.ModeManual}, Result: r, State: "abc_-"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, p := range r.Panels {
		row, col := script.Position(p.Index)
		cell := fmt.Sprintf(`data-panel="%d" data-row="%d" data-col="%d"`, p.Index, row, col)
		if !strings.Contains(out, cell) {
			t.Errorf("panel %d not at (%d,%d)", p.Index, row, col)
		}
		if !strings.Contains(out, p.Caption) {
			t.Errorf("caption %d missing", p.Index)
		}
	}

	for _, want := range []string{
		"07/03/2026 09:04",
		"<b>📌 Fonte:</b> Manual",
		"<b>🔗 Link:</b> #",
		`name="state" value="abc_-"`,
		"usando notícia de demonstração",
		"Baixar HTML",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestScreenNeverEchoesAPIKey(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Screen(&buf, Page{Form: Form{UseAI: true}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), `name="api_key" autocomplete="off">`) {
		t.Error("api key input should have no value")
	}
}
