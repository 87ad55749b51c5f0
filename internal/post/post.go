// Package post generates and optimizes LinkedIn post drafts.
package post

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

// Service drives draft generation through the provider.
type Service struct {
	gen Generator
}

// New creates a post Service.
func New(gen Generator) *Service {
	return &Service{gen: gen}
}

// Generate produces the three-variation draft text for the given input
// and splits it into individual posts.
func (s *Service) Generate(ctx context.Context, in prompt.PostsInput) (parse.Result, error) {
	raw, err := s.gen.Generate(ctx, prompt.Posts(in))
	if err != nil {
		return parse.Result{}, fmt.Errorf("generate posts: %w", err)
	}
	return parse.Posts(raw), nil
}

// Optimize rewrites an existing post for the current algorithm rules.
func (s *Service) Optimize(ctx context.Context, postContent string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.OptimizePost(postContent))
	if err != nil {
		return "", fmt.Errorf("optimize post: %w", err)
	}
	return out, nil
}
