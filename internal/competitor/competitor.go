// Package competitor analyzes rival creators: per-profile intelligence,
// niche content gaps, comparisons, and post teardowns.
package competitor

import (
	"context"
	"fmt"

	"github.com/postforge/postforge/internal/prompt"
)

// MaxPerWorkflow caps how many competitors a single workflow run
// analyzes to bound provider usage.
const MaxPerWorkflow = 3

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service drives competitive research through the provider.
type Service struct {
	gen Generator
}

// New creates a competitor Service.
func New(gen Generator) *Service {
	return &Service{gen: gen}
}

// Analyze produces the full intelligence report for one competitor.
func (s *Service) Analyze(ctx context.Context, in prompt.CompetitorInput) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.CompetitorAnalysis(in))
	if err != nil {
		return "", fmt.Errorf("competitor analysis: %w", err)
	}
	return out, nil
}

// ContentGaps finds underserved topics in a niche.
func (s *Service) ContentGaps(ctx context.Context, niche string, competitorNames []string) (string, error) {
	if niche == "" {
		niche = "business"
	}
	out, err := s.gen.Generate(ctx, prompt.ContentGaps(niche, competitorNames))
	if err != nil {
		return "", fmt.Errorf("content gaps: %w", err)
	}
	return out, nil
}

// Compare ranks several competitors against each other.
func (s *Service) Compare(ctx context.Context, competitors []prompt.CompetitorInput, userNiche string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.CompareCompetitors(competitors, userNiche))
	if err != nil {
		return "", fmt.Errorf("competitor comparison: %w", err)
	}
	return out, nil
}

// ReverseEngineer tears down why a viral post performed.
func (s *Service) ReverseEngineer(ctx context.Context, postContent string, metrics map[string]string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.ReverseEngineerPost(postContent, metrics))
	if err != nil {
		return "", fmt.Errorf("reverse engineer: %w", err)
	}
	return out, nil
}

// Strategy builds a 90-day plan from prior research artifacts.
func (s *Service) Strategy(ctx context.Context, contentGaps, competitorAnalysis, userProfile string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.Strategy(contentGaps, competitorAnalysis, userProfile))
	if err != nil {
		return "", fmt.Errorf("strategy development: %w", err)
	}
	return out, nil
}
