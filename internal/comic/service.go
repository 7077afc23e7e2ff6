package comic

import (
	"context"
	"fmt"
	"time"

	"github.com/brogergvhs/hqnews/internal/news"
	"github.com/brogergvhs/hqnews/internal/script"
)

type resolver interface {
	Resolve(ctx context.Context, req news.Request) (news.Resolution, error)
}

// GeneratorFactory returns the AI-backed generator for a key, or an error
// when no such generator can be built.
type GeneratorFactory func(apiKey string) (script.Generator, error)

type Options struct {
	UseAI  bool
	APIKey string
}

type Service struct {
	resolver  resolver
	templates script.Generator
	ai        GeneratorFactory
	now       func() time.Time
}

func NewService(r resolver, ai GeneratorFactory) *Service {
	return &Service{
		resolver:  r,
		templates: script.TemplateGenerator{},
		ai:        ai,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for GeneratedAt.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Build resolves the source, writes the script and assembles the result.
func (s *Service) Build(ctx context.Context, req news.Request, opts Options) (*GenerationResult, error) {
	res, err := s.resolver.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if res.Fallback && res.Warning != "" {
		warnings = append(warnings, res.Warning)
	}

	gen := s.templates
	if opts.UseAI && opts.APIKey != "" && s.ai != nil {
		aiGen, err := s.ai(opts.APIKey)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("IA indisponível: %v", err))
		} else {
			gen = aiGen
		}
	}

	sc, err := gen.Generate(ctx, res.Item)
	if err != nil {
		return nil, fmt.Errorf("generate script: %w", err)
	}
	if sc.Warning != "" {
		warnings = append(warnings, sc.Warning)
	}

	return &GenerationResult{
		Item:         res.Item,
		Panels:       sc.Panels,
		DisplayTitle: DisplayTitle(res.Item.Title),
		GeneratedAt:  s.now(),
		Bucket:       sc.Bucket,
		Generator:    sc.Generator,
		Fallback:     res.Fallback,
		Warnings:     warnings,
	}, nil
}
