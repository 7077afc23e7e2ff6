package script

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/brogergvhs/hqnews/internal/news"
)

const promptVersion = "v1"

const systemPrompt = `Você é roteirista de histórias em quadrinhos jornalísticas.
Transforme a manchete recebida em um roteiro de exatamente 6 quadros.

Regras:
1. Cada legenda em português, uma frase curta, sem inventar números ou nomes que não estejam na manchete
2. Cada prompt de imagem em inglês, descrevendo o enquadramento e o estilo "comic book"
3. Os quadros seguem a ordem: plano geral, close-up, ação, reação, revelação, encerramento

Responda somente com JSON, sem outro texto:
{
  "panels": [
    {"caption": "legenda do quadro 1", "image_prompt": "prompt do quadro 1"}
  ]
}`

// LLMClient sends one system/user exchange and returns the raw text reply.
type LLMClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Name() string
}

var ErrBadScript = errors.New("invalid script from model")

type warner interface {
	Warnf(string, ...any)
}

// AIGenerator asks a language model for the six panels and falls back to the
// keyword templates whenever the model fails or returns something unusable.
type AIGenerator struct {
	client   LLMClient
	fallback Generator
	log      warner
}

func NewAIGenerator(client LLMClient, log warner) *AIGenerator {
	return &AIGenerator{
		client:   client,
		fallback: TemplateGenerator{},
		log:      log,
	}
}

func (g *AIGenerator) Generate(ctx context.Context, item news.Item) (Script, error) {
	panels, err := g.generate(ctx, item)
	if err == nil {
		return Script{
			Panels:    panels,
			Bucket:    Classify(item.Title),
			Generator: g.client.Name() + "/" + promptVersion,
		}, nil
	}

	if ctx.Err() != nil {
		return Script{}, ctx.Err()
	}

	if g.log != nil {
		g.log.Warnf("AI script failed, using templates: %v", err)
	}

	s, ferr := g.fallback.Generate(ctx, item)
	if ferr != nil {
		return Script{}, ferr
	}
	s.Warning = "Não foi possível gerar o roteiro com IA; usando roteiro padrão."

	return s, nil
}

func (g *AIGenerator) generate(ctx context.Context, item news.Item) ([]Panel, error) {
	user := fmt.Sprintf("Manchete: %s\nFonte: %s", item.Title, item.Source)

	content, err := g.client.Complete(ctx, systemPrompt, user)
	if err != nil {
		return nil, err
	}

	return parsePanels(content)
}

func parsePanels(content string) ([]Panel, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Panels []struct {
			Caption     string `json:"caption"`
			ImagePrompt string `json:"image_prompt"`
		} `json:"panels"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v, content: %s", ErrBadScript, err, content)
	}

	if len(parsed.Panels) != PanelCount {
		return nil, fmt.Errorf("%w: got %d panels, want %d", ErrBadScript, len(parsed.Panels), PanelCount)
	}

	panels := make([]Panel, PanelCount)
	for i, p := range parsed.Panels {
		caption := strings.TrimSpace(p.Caption)
		prompt := strings.TrimSpace(p.ImagePrompt)
		if caption == "" || prompt == "" {
			return nil, fmt.Errorf("%w: panel %d is empty", ErrBadScript, i+1)
		}

		panels[i] = Panel{Index: i + 1, Caption: caption, ImagePrompt: prompt}
	}

	return panels, nil
}

// cleanJSONResponse strips markdown code fences some models wrap JSON in.
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// NewLLMClient builds the client for provider ("openai" or "anthropic").
// An empty model selects the provider default.
func NewLLMClient(provider, apiKey, model string) (LLMClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key is required for AI scripts")
	}

	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "anthropic":
		return NewAnthropicClient(apiKey, model), nil
	}

	return nil, fmt.Errorf("unknown AI provider %q", provider)
}
