package news

import (
	"context"
	"errors"
	"fmt"
)

// Source is what the Resolver needs from a scraper.
type Source interface {
	Headline(ctx context.Context) (Item, error)
	Article(ctx context.Context, pageURL string) (Item, error)
}

type Request struct {
	Mode  Mode
	Title string
	Link  string
	URL   string
}

type Resolution struct {
	Item     Item
	Fallback bool
	// Warning is shown to the user when Fallback is set.
	Warning string
	// Cause is the scrape failure that triggered the fallback.
	Cause error
}

type Resolver struct {
	source Source
	log    interface{ Warnf(string, ...any) }
}

func NewResolver(src Source, log interface{ Warnf(string, ...any) }) *Resolver {
	return &Resolver{source: src, log: log}
}

// Resolve turns a request into an Item. Automatic mode never fails: scrape
// errors degrade to DemoItem with a warning. Custom URL failures are returned.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Resolution, error) {
	switch req.Mode {
	case ModeAutomatic:
		item, err := r.source.Headline(ctx)
		if err != nil {
			if r.log != nil {
				r.log.Warnf("automatic source failed, using demo headline: %v", err)
			}
			return Resolution{
				Item:     DemoItem(),
				Fallback: true,
				Warning:  "Erro ao extrair notícia automaticamente; usando notícia de demonstração.",
				Cause:    err,
			}, nil
		}
		return Resolution{Item: item}, nil

	case ModeManual:
		return Resolution{Item: ManualItem(req.Title, req.Link)}, nil

	case ModeURL:
		item, err := r.source.Article(ctx, req.URL)
		if err != nil {
			if errors.Is(err, ErrMissingURL) {
				return Resolution{}, err
			}
			return Resolution{}, fmt.Errorf("custom URL: %w", err)
		}
		return Resolution{Item: item}, nil
	}

	return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
}
