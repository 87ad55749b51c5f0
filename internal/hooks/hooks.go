// Package hooks generates attention-grabbing opening lines seeded from
// a curated template library.
package hooks

import (
	"context"
	"fmt"
	"sort"

	"github.com/postforge/postforge/internal/prompt"
)

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service drives hook generation through the provider.
type Service struct {
	gen Generator
}

// New creates a hooks Service.
func New(gen Generator) *Service {
	return &Service{gen: gen}
}

// Categories lists the template categories in sorted order.
func Categories() []string {
	keys := make([]string, 0, len(hookDatabase))
	for k := range hookDatabase {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AllTemplates returns the full template library keyed by category.
func AllTemplates() map[string][]string {
	out := make(map[string][]string, len(hookDatabase))
	for k, v := range hookDatabase {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Templates returns the proven templates for a category. Unknown
// categories fall back to the curiosity set.
func Templates(category string) []string {
	if t, ok := hookDatabase[category]; ok {
		return t
	}
	return hookDatabase["curiosity"]
}

// Custom generates ten hooks for a topic and target emotion.
func (s *Service) Custom(ctx context.Context, topic, emotion, niche, style string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.CustomHook(topic, emotion, niche, style))
	if err != nil {
		return "", fmt.Errorf("custom hooks: %w", err)
	}
	return out, nil
}

// ByCategory generates ready-to-use hooks from a category's templates.
func (s *Service) ByCategory(ctx context.Context, category, niche string, limit int) (string, error) {
	if niche == "" {
		niche = "general"
	}
	if limit <= 0 {
		limit = 20
	}
	out, err := s.gen.Generate(ctx, prompt.HooksByCategory(category, Templates(category), niche, limit))
	if err != nil {
		return "", fmt.Errorf("hooks by category: %w", err)
	}
	return out, nil
}

// Variations rewrites one hook several distinct ways.
func (s *Service) Variations(ctx context.Context, originalHook string, count int) (string, error) {
	if count <= 0 {
		count = 5
	}
	out, err := s.gen.Generate(ctx, prompt.HookVariations(originalHook, count))
	if err != nil {
		return "", fmt.Errorf("hook variations: %w", err)
	}
	return out, nil
}

// Effectiveness scores a hook across weighted components.
func (s *Service) Effectiveness(ctx context.Context, hook string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.HookEffectiveness(hook))
	if err != nil {
		return "", fmt.Errorf("hook effectiveness: %w", err)
	}
	return out, nil
}

// Industry generates hooks tailored to one industry.
func (s *Service) Industry(ctx context.Context, industry string, count int) (string, error) {
	if count <= 0 {
		count = 30
	}
	out, err := s.gen.Generate(ctx, prompt.IndustryHooks(industry, count))
	if err != nil {
		return "", fmt.Errorf("industry hooks: %w", err)
	}
	return out, nil
}
