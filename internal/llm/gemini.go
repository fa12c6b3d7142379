// Package llm provides the optional text-model collaborator that produces a
// first-draft guess for an utterance. Its output is never trusted as-is: the
// extractor overrides every field the rules can answer.
package llm

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"google.golang.org/genai"

	"github.com/dvloznov/dompet/internal/domain"
	"github.com/dvloznov/dompet/internal/logger"
)

// generator is the slice of *genai.Models the draft model needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ClientConfig selects the Gemini backend and model.
type ClientConfig struct {
	APIKey      string
	Backend     string // "gemini" or "vertex"
	Project     string
	Location    string
	Model       string
	Temperature float32
}

// Gemini asks a Gemini model for a draft transaction.
type Gemini struct {
	models      generator
	model       string
	temperature float32
}

// NewGemini creates a genai client for cfg.
func NewGemini(ctx context.Context, cfg ClientConfig) (*Gemini, error) {
	cc := &genai.ClientConfig{APIKey: cfg.APIKey, Backend: genai.BackendGeminiAPI}
	if strings.EqualFold(cfg.Backend, "vertex") {
		cc = &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  cfg.Project,
			Location: cfg.Location,
		}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("NewGemini: create genai client: %w", err)
	}
	return newGemini(client.Models, cfg.Model, cfg.Temperature), nil
}

func newGemini(models generator, model string, temperature float32) *Gemini {
	return &Gemini{models: models, model: model, temperature: temperature}
}

// TryExtract sends text to the model and decodes its reply into a draft.
// Transport failures come back as ModelUnavailable, undecodable replies as
// ModelOutputInvalid.
func (g *Gemini) TryExtract(ctx context.Context, text string, today civil.Date) (*domain.Draft, error) {
	log := logger.FromContext(ctx)

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.temperature),
		ResponseMIMEType: "application/json",
	}
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(buildDraftPrompt(text, today)), config)
	if err != nil {
		return nil, domain.NewModelUnavailableError(fmt.Errorf("TryExtract: generate content: %w", err))
	}

	raw := resp.Text()
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewModelOutputInvalidError(fmt.Errorf("TryExtract: empty response from model"))
	}
	log.Debug().Str("model", g.model).Str("raw_output", truncate(raw, 200)).Msg("Model replied")

	draft, err := decodeDraft(raw)
	if err != nil {
		return nil, domain.NewModelOutputInvalidError(fmt.Errorf("TryExtract: %w", err))
	}
	return draft, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
