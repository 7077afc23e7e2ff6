package comic

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brogergvhs/hqnews/internal/news"
	"github.com/brogergvhs/hqnews/internal/script"
)

type fakeResolver struct {
	res news.Resolution
	err error
}

func (f fakeResolver) Resolve(context.Context, news.Request) (news.Resolution, error) {
	return f.res, f.err
}

type fakeGenerator struct {
	called bool
}

func (g *fakeGenerator) Generate(_ context.Context, item news.Item) (script.Script, error) {
	g.called = true
	return script.Script{Panels: script.Generate(item.Title), Bucket: script.BucketDefault, Generator: "fake"}, nil
}

var fixedNow = time.Date(2026, 10, 19, 14, 5, 0, 0, time.Local)

func TestDisplayTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "📚 ..."},
		{in: "Curta", want: "📚 Curta..."},
		{in: strings.Repeat("é", 60), want: "📚 " + strings.Repeat("é", 50) + "..."},
		{in: strings.Repeat("a", 50), want: "📚 " + strings.Repeat("a", 50) + "..."},
	}

	for _, tt := range tests {
		if got := DisplayTitle(tt.in); got != tt.want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildScenarioTimeoutFallsBackToDemo(t *testing.T) {
	t.Parallel()

	r := news.NewResolver(timeoutSource{}, nil)
	svc := NewService(r, nil).WithClock(func() time.Time { return fixedNow })

	res, err := svc.Build(context.Background(), news.Request{Mode: news.ModeAutomatic}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Item != news.DemoItem() {
		t.Errorf("Item = %+v, want demo item", res.Item)
	}
	if !res.Fallback || len(res.Warnings) != 1 {
		t.Errorf("Fallback = %t, Warnings = %v", res.Fallback, res.Warnings)
	}
	if res.Bucket != script.BucketDefault {
		t.Errorf("Bucket = %q, want default", res.Bucket)
	}
	if len(res.Panels) != script.PanelCount {
		t.Errorf("panels = %d", len(res.Panels))
	}
	if !res.GeneratedAt.Equal(fixedNow) {
		t.Errorf("GeneratedAt = %v", res.GeneratedAt)
	}
	if res.DisplayTitle != "📚 Exemplo: Nova descoberta científica surpreende pes..." {
		t.Errorf("DisplayTitle = %q", res.DisplayTitle)
	}
}

type timeoutSource struct{}

func (timeoutSource) Headline(context.Context) (news.Item, error) {
	return news.Item{}, &news.FetchError{Kind: news.FailureNetwork, URL: "https://g1.globo.com", Err: context.DeadlineExceeded}
}

func (timeoutSource) Article(context.Context, string) (news.Item, error) {
	return news.Item{}, errors.New("unused")
}

func TestBuildEmptyManualTitle(t *testing.T) {
	t.Parallel()

	r := news.NewResolver(timeoutSource{}, nil)
	res, err := NewService(r, nil).Build(context.Background(), news.Request{Mode: news.ModeManual}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bucket != script.BucketDefault || len(res.Panels) != script.PanelCount {
		t.Errorf("got bucket %q with %d panels", res.Bucket, len(res.Panels))
	}
	if res.Item.Link != "#" {
		t.Errorf("Link = %q, want placeholder", res.Item.Link)
	}
}

func TestBuildResolveError(t *testing.T) {
	t.Parallel()

	svc := NewService(fakeResolver{err: news.ErrMissingURL}, nil)
	if _, err := svc.Build(context.Background(), news.Request{Mode: news.ModeURL}, Options{}); !errors.Is(err, news.ErrMissingURL) {
		t.Errorf("err = %v, want ErrMissingURL", err)
	}
}

func TestBuildGeneratorSelection(t *testing.T) {
	t.Parallel()

	item := news.Item{Title: "tecnologia", Link: "#", Source: "Manual"}
	resolver := fakeResolver{res: news.Resolution{Item: item}}

	t.Run("AI only with key", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{}
		factory := func(string) (script.Generator, error) { return gen, nil }

		res, err := NewService(resolver, factory).Build(context.Background(), news.Request{}, Options{UseAI: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.called || res.Generator != "template" {
			t.Errorf("AI generator used without key (generator %q)", res.Generator)
		}

		res, err = NewService(resolver, factory).Build(context.Background(), news.Request{}, Options{UseAI: true, APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !gen.called || res.Generator != "fake" {
			t.Errorf("AI generator not used (generator %q)", res.Generator)
		}
	})

	t.Run("factory error degrades to templates", func(t *testing.T) {
		t.Parallel()

		factory := func(string) (script.Generator, error) { return nil, errors.New("unknown provider") }
		res, err := NewService(resolver, factory).Build(context.Background(), news.Request{}, Options{UseAI: true, APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Bucket != script.BucketTechnology || len(res.Warnings) != 1 {
			t.Errorf("got bucket %q, warnings %v", res.Bucket, res.Warnings)
		}
	})
}

func TestRows(t *testing.T) {
	t.Parallel()

	r := &GenerationResult{Panels: script.Generate("")}
	rows := r.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	for rowIdx, row := range rows {
		if len(row) != 2 {
			t.Fatalf("row %d has %d panels", rowIdx, len(row))
		}
		for colIdx, p := range row {
			wr, wc := script.Position(p.Index)
			if wr != rowIdx || wc != colIdx {
				t.Errorf("panel %d at (%d,%d), want (%d,%d)", p.Index, rowIdx, colIdx, wr, wc)
			}
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()

	in := &GenerationResult{
		Item:         news.Item{Title: `<script>alert(1)</script>`, Link: "#", Source: "Manual"},
		Panels:       script.Generate("política"),
		DisplayTitle: DisplayTitle("política"),
		GeneratedAt:  fixedNow,
		Bucket:       script.BucketPolitics,
		Generator:    "template",
	}

	enc, err := EncodeState(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := DecodeState(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Item.Link != in.Item.Link || out.Item.Source != in.Item.Source ||
		out.DisplayTitle != in.DisplayTitle || out.Panels[3] != in.Panels[3] {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if out.Item.Title != "" {
		t.Errorf("full title kept in state: %q", out.Item.Title)
	}
}

func TestStateIgnoresHeadlineLength(t *testing.T) {
	t.Parallel()

	title := strings.Repeat("x", 100_000)
	in := &GenerationResult{
		Item:         news.ManualItem(title, ""),
		Panels:       script.Generate(title),
		DisplayTitle: DisplayTitle(title),
	}

	enc, err := EncodeState(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(enc) > maxStateLen {
		t.Fatalf("state is %d bytes", len(enc))
	}

	out, err := DecodeState(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.DisplayTitle != in.DisplayTitle {
		t.Errorf("DisplayTitle = %q", out.DisplayTitle)
	}
}

func TestEncodeStateRejectsOversizedLink(t *testing.T) {
	t.Parallel()

	in := &GenerationResult{
		Item:   news.ManualItem("t", "https://example.com/"+strings.Repeat("a", maxStateLen)),
		Panels: script.Generate("t"),
	}

	if _, err := EncodeState(in); !errors.Is(err, ErrStateTooLarge) {
		t.Errorf("err = %v, want ErrStateTooLarge", err)
	}
}

func TestDecodeStateRejectsGarbage(t *testing.T) {
	t.Parallel()

	short, _ := EncodeState(&GenerationResult{Panels: script.Generate("")[:2]})
	shuffled := script.Generate("")
	shuffled[0], shuffled[1] = shuffled[1], shuffled[0]
	swapped, _ := EncodeState(&GenerationResult{Panels: shuffled})

	for _, in := range []string{"", "!!!", "e30", short, swapped, strings.Repeat("A", maxStateLen+1)} {
		if _, err := DecodeState(in); !errors.Is(err, ErrBadState) {
			t.Errorf("DecodeState(%.20q) err = %v, want ErrBadState", in, err)
		}
	}
}
