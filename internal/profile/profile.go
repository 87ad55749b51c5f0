// Package profile optimizes LinkedIn profiles: full audits, headline
// variants, and About-section drafts.
package profile

import (
	"context"
	"fmt"

	"github.com/postforge/postforge/internal/prompt"
)

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service drives profile optimization through the provider.
type Service struct {
	gen Generator
}

// New creates a profile Service.
func New(gen Generator) *Service {
	return &Service{gen: gen}
}

// Analyze audits a full profile and scores it.
func (s *Service) Analyze(ctx context.Context, in prompt.ProfileInput) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.ProfileAnalysis(in))
	if err != nil {
		return "", fmt.Errorf("profile analysis: %w", err)
	}
	return out, nil
}

// Headlines generates five headline variants.
func (s *Service) Headlines(ctx context.Context, current, niche, targetAudience string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.Headline(current, niche, targetAudience))
	if err != nil {
		return "", fmt.Errorf("headline generation: %w", err)
	}
	return out, nil
}

// About drafts two About-section versions.
func (s *Service) About(ctx context.Context, in prompt.AboutInput) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.AboutSection(in))
	if err != nil {
		return "", fmt.Errorf("about generation: %w", err)
	}
	return out, nil
}
