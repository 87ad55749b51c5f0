// Package hashtag researches tags, classifies ban risk, and builds
// rotation strategies.
package hashtag

import (
	"context"
	"fmt"

	"github.com/postforge/postforge/internal/prompt"
)

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service drives hashtag research through the provider.
type Service struct {
	gen Generator
}

// New creates a hashtag Service.
func New(gen Generator) *Service {
	return &Service{gen: gen}
}

// Research produces the full tiered strategy for a topic.
func (s *Service) Research(ctx context.Context, topic, niche, contentType string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.HashtagResearch(topic, niche, contentType))
	if err != nil {
		return "", fmt.Errorf("hashtag research: %w", err)
	}
	return out, nil
}

// Performance analyzes one hashtag in depth.
func (s *Service) Performance(ctx context.Context, hashtag string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.HashtagPerformance(hashtag))
	if err != nil {
		return "", fmt.Errorf("hashtag performance: %w", err)
	}
	return out, nil
}

// Trending lists currently-hot tags for a niche.
func (s *Service) Trending(ctx context.Context, niche string, limit int) (string, error) {
	if limit <= 0 {
		limit = 15
	}
	out, err := s.gen.Generate(ctx, prompt.TrendingHashtags(niche, limit))
	if err != nil {
		return "", fmt.Errorf("trending hashtags: %w", err)
	}
	return out, nil
}

// DetectBanned classifies a tag list by spam and ban risk.
func (s *Service) DetectBanned(ctx context.Context, hashtags []string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.BannedHashtags(hashtags))
	if err != nil {
		return "", fmt.Errorf("banned detection: %w", err)
	}
	return out, nil
}

// Strategy turns raw research output into a rotation plan.
func (s *Service) Strategy(ctx context.Context, hashtagData string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.HashtagStrategy(hashtagData))
	if err != nil {
		return "", fmt.Errorf("hashtag strategy: %w", err)
	}
	return out, nil
}
