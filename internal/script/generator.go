package script

import (
	"context"

	"github.com/brogergvhs/hqnews/internal/news"
)

type Script struct {
	Panels    []Panel
	Bucket    Bucket
	Generator string
	// Warning is set when a generator degraded to the keyword templates.
	Warning string
}

type Generator interface {
	Generate(ctx context.Context, item news.Item) (Script, error)
}

// TemplateGenerator selects one of the canned narratives by keyword.
type TemplateGenerator struct{}

const TemplateName = "template"

func (TemplateGenerator) Generate(_ context.Context, item news.Item) (Script, error) {
	b := Classify(item.Title)

	return Script{
		Panels:    Build(Captions(b)),
		Bucket:    b,
		Generator: TemplateName,
	}, nil
}
