package script

import (
	"context"
	"testing"

	"github.com/brogergvhs/hqnews/internal/news"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  Bucket
	}{
		{title: "Cientistas descobrem nova tecnologia revolucionária", want: BucketTechnology},
		{title: "TECNOLOGIA em alta", want: BucketTechnology},
		{title: "Reforma na Política nacional", want: BucketPolitics},
		{title: "POLÍTICA externa", want: BucketPolitics},
		{title: "Tecnologia muda a política", want: BucketTechnology},
		{title: "politica sem acento", want: BucketDefault},
		{title: "Chuva forte atinge a capital", want: BucketDefault},
		{title: "", want: BucketDefault},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.title); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestGenerateShape(t *testing.T) {
	t.Parallel()

	titles := []string{"nova tecnologia", "crise na política", "", "qualquer coisa"}
	for _, title := range titles {
		panels := Generate(title)
		if len(panels) != PanelCount {
			t.Fatalf("Generate(%q) returned %d panels", title, len(panels))
		}

		caps := Captions(Classify(title))
		for i, p := range panels {
			if p.Index != i+1 {
				t.Errorf("panel %d has index %d", i, p.Index)
			}
			if p.ImagePrompt != ImagePrompts[i] {
				t.Errorf("panel %d prompt = %q, want shared prompt %q", i+1, p.ImagePrompt, ImagePrompts[i])
			}
			if p.Caption != caps[i] {
				t.Errorf("panel %d caption = %q, want %q", i+1, p.Caption, caps[i])
			}
		}
	}
}

func TestPromptsIdenticalAcrossBuckets(t *testing.T) {
	t.Parallel()

	a := Generate("tecnologia")
	b := Generate("política")
	c := Generate("")

	for i := 0; i < PanelCount; i++ {
		if a[i].ImagePrompt != b[i].ImagePrompt || b[i].ImagePrompt != c[i].ImagePrompt {
			t.Errorf("prompt %d differs across buckets", i+1)
		}
		if a[i].Caption == c[i].Caption {
			t.Errorf("caption %d should differ between technology and default buckets", i+1)
		}
	}
}

func TestScenarioTechnologyHeadline(t *testing.T) {
	t.Parallel()

	panels := Generate("Cientistas descobrem nova tecnologia revolucionária")

	if got := panels[0].Caption; got != "Cientistas fazem descoberta revolucionária em laboratório" {
		t.Errorf("panel 1 caption = %q", got)
	}
	if got := panels[0].ImagePrompt; got != "Wide establishing shot of the main scene, comic book style, dramatic lighting" {
		t.Errorf("panel 1 prompt = %q", got)
	}
}

func TestScenarioDemoHeadlineUsesDefaultBucket(t *testing.T) {
	t.Parallel()

	s, err := TemplateGenerator{}.Generate(context.Background(), news.DemoItem())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Bucket != BucketDefault {
		t.Errorf("Bucket = %q, want default", s.Bucket)
	}
	if s.Panels[0].Caption != "O dia começa com uma notícia surpreendente" {
		t.Errorf("panel 1 caption = %q", s.Panels[0].Caption)
	}
}

func TestPosition(t *testing.T) {
	t.Parallel()

	want := map[int][2]int{
		1: {0, 0}, 2: {0, 1},
		3: {1, 0}, 4: {1, 1},
		5: {2, 0}, 6: {2, 1},
	}
	for idx, rc := range want {
		row, col := Position(idx)
		if row != rc[0] || col != rc[1] {
			t.Errorf("Position(%d) = (%d,%d), want (%d,%d)", idx, row, col, rc[0], rc[1])
		}
	}
}
