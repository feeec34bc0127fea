// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package enrich composes LLM calls into the prompt-enrichment operations
// the admin panel offers: translating imported prompts to Polish,
// suggesting tags, and writing short intros. All calls go through a
// circuit breaker so a failing upstream API degrades fast instead of
// tying up admin requests.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"promptoteka/internal/ai"
)

const (
	translateSystemPrompt = `You are a professional translator. Translate the given AI prompt from English to Polish.
Preserve any placeholders like {product} or [TOPIC] exactly as they appear.
Keep the tone and intent of the original. Respond with ONLY the translated text, no commentary.`

	tagsSystemPrompt = `You are a content curator for a library of AI prompts.
Suggest 3 to 6 short lowercase tags (single words or two-word phrases) describing the given prompt.
Tags may be in Polish or English, whichever fits naturally.
Respond with ONLY the tags, comma-separated, no commentary.`

	introSystemPrompt = `You are an editor for a Polish library of AI prompts.
Write a single short sentence in Polish (max 25 words) introducing what the given prompt does and who it helps.
Respond with ONLY the sentence, no commentary.`
)

// Generator is the slice of the AI registry the service needs.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Service provides prompt enrichment operations backed by the configured
// LLM provider.
type Service struct {
	gen     Generator
	breaker *gobreaker.CircuitBreaker[string]
}

// NewService creates an enrichment service around the given generator.
// The circuit breaker opens after 60% of requests fail (minimum 5) and
// re-probes after 30 seconds.
func NewService(gen Generator) *Service {
	settings := gobreaker.Settings{
		Name:        "ai-enrichment",
		MaxRequests: 2,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change",
				"name", name, "from", from.String(), "to", to.String())
		},
	}

	return &Service{
		gen:     gen,
		breaker: gobreaker.NewCircuitBreaker[string](settings),
	}
}

// generate runs one LLM call through the circuit breaker.
func (s *Service) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	result, err := s.breaker.Execute(func() (string, error) {
		return s.gen.Generate(ctx, systemPrompt, userPrompt)
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// Translate translates an English prompt body to Polish.
func (s *Service) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("enrich: nothing to translate")
	}

	out, err := s.generate(ctx, translateSystemPrompt, text)
	if err != nil {
		return "", fmt.Errorf("enrich translate: %w", err)
	}
	return out, nil
}

// GenerateTags suggests tags for a prompt. Returns a cleaned list of
// lowercase tags parsed from the model's comma-separated answer.
func (s *Service) GenerateTags(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("enrich: nothing to tag")
	}

	out, err := s.generate(ctx, tagsSystemPrompt, text)
	if err != nil {
		return nil, fmt.Errorf("enrich tags: %w", err)
	}

	var tags []string
	for _, raw := range strings.Split(out, ",") {
		tag := strings.ToLower(strings.TrimSpace(raw))
		tag = strings.Trim(tag, ".#\"'")
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("enrich tags: empty response")
	}
	return tags, nil
}

// GenerateIntro writes a one-sentence Polish introduction for a prompt.
func (s *Service) GenerateIntro(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("enrich: nothing to introduce")
	}

	out, err := s.generate(ctx, introSystemPrompt, text)
	if err != nil {
		return "", fmt.Errorf("enrich intro: %w", err)
	}
	return out, nil
}

// IsUnavailable reports whether the error means the circuit breaker is
// open and the AI provider should be treated as temporarily down.
func IsUnavailable(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// Compile-time check that the registry satisfies Generator.
var _ Generator = (*ai.Registry)(nil)
