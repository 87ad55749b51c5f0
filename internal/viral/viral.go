// Package viral runs the research-first content pipeline: deep topic
// analysis, algorithm insight, and posts seeded with both.
package viral

import (
	"context"
	"fmt"

	"github.com/postforge/postforge/internal/parse"
	"github.com/postforge/postforge/internal/prompt"
)

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service performs viral research and generation.
type Service struct {
	gen Generator
}

// New creates a viral Service.
func New(gen Generator) *Service {
	return &Service{gen: gen}
}

// DeepAnalysis researches viral patterns for a topic and niche.
func (s *Service) DeepAnalysis(ctx context.Context, topic, niche string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.DeepViralAnalysis(topic, niche))
	if err != nil {
		return "", fmt.Errorf("viral analysis: %w", err)
	}
	return out, nil
}

// AlgorithmFactors returns the current algorithm breakdown.
func (s *Service) AlgorithmFactors(ctx context.Context) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.AlgorithmFactors())
	if err != nil {
		return "", fmt.Errorf("algorithm factors: %w", err)
	}
	return out, nil
}

// GeneratePosts produces three variations seeded with a prior analysis
// and splits them on the variation markers.
func (s *Service) GeneratePosts(ctx context.Context, topic, analysis string, in prompt.PostsInput) (parse.Result, error) {
	raw, err := s.gen.Generate(ctx, prompt.ViralPost(topic, analysis, in))
	if err != nil {
		return parse.Result{}, fmt.Errorf("viral posts: %w", err)
	}
	return parse.Posts(raw), nil
}
