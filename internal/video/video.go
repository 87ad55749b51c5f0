// Package video produces video content guidance, from trend research
// to complete ready-to-post packages.
package video

import (
	"context"
	"fmt"
	"time"

	"github.com/postforge/postforge/internal/prompt"
)

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// HashtagResearcher supplies the hashtag strategy attached to the
// ready-to-post package.
type HashtagResearcher interface {
	Research(ctx context.Context, topic, niche, contentType string) (string, error)
}

// Service drives video content generation through the provider.
type Service struct {
	gen      Generator
	hashtags HashtagResearcher
	now      func() time.Time
}

// New creates a video Service.
func New(gen Generator, hashtags HashtagResearcher) *Service {
	return &Service{gen: gen, hashtags: hashtags, now: time.Now}
}

// Trends analyzes current video formats for a topic and niche.
func (s *Service) Trends(ctx context.Context, topic, niche string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.VideoTrends(topic, niche))
	if err != nil {
		return "", fmt.Errorf("video trends: %w", err)
	}
	return out, nil
}

// Caption generates three caption variants for a video.
func (s *Service) Caption(ctx context.Context, topic, title, description, niche string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.VideoCaption(topic, title, description, niche))
	if err != nil {
		return "", fmt.Errorf("video caption: %w", err)
	}
	return out, nil
}

// TrendingAudio researches audio strategies for a niche.
func (s *Service) TrendingAudio(ctx context.Context, niche string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.TrendingAudio(niche))
	if err != nil {
		return "", fmt.Errorf("trending audio: %w", err)
	}
	return out, nil
}

// VisualTrends analyzes visual styles for a niche.
func (s *Service) VisualTrends(ctx context.Context, niche string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.VisualTrends(niche))
	if err != nil {
		return "", fmt.Errorf("visual trends: %w", err)
	}
	return out, nil
}

// Hooks generates first-3-seconds hooks for a video.
func (s *Service) Hooks(ctx context.Context, topic, niche string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.VideoHooks(topic, niche))
	if err != nil {
		return "", fmt.Errorf("video hooks: %w", err)
	}
	return out, nil
}

// SuccessRate predicts performance for a planned video.
func (s *Service) SuccessRate(ctx context.Context, in prompt.VideoInput) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.VideoSuccessRate(in))
	if err != nil {
		return "", fmt.Errorf("success rate: %w", err)
	}
	return out, nil
}

// Format recommends the best video format for a topic and goal.
func (s *Service) Format(ctx context.Context, topic, niche, goal string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.VideoFormat(topic, niche, goal))
	if err != nil {
		return "", fmt.Errorf("video format: %w", err)
	}
	return out, nil
}

// Metadata describes one complete analysis run.
type Metadata struct {
	AnalyzedAt  time.Time `json:"analyzedAt"`
	Topic       string    `json:"topic"`
	Niche       string    `json:"niche"`
	ContentType string    `json:"contentType"`
}

// Analysis is the complete ready-to-post package.
type Analysis struct {
	ReadyToPostContent string   `json:"readyToPostContent"`
	Hashtags           string   `json:"hashtags"`
	Metadata           Metadata `json:"metadata"`
	VideoMode          bool     `json:"videoMode"`
}

// CompleteAnalysis builds the ready-to-post package plus a hashtag
// strategy for the same topic.
func (s *Service) CompleteAnalysis(ctx context.Context, in prompt.VideoInput) (Analysis, error) {
	content, err := s.gen.Generate(ctx, prompt.ReadyToPostVideo(in))
	if err != nil {
		return Analysis{}, fmt.Errorf("ready-to-post video: %w", err)
	}

	hashtags, err := s.hashtags.Research(ctx, in.Topic, in.Niche, "video")
	if err != nil {
		return Analysis{}, fmt.Errorf("video hashtags: %w", err)
	}

	return Analysis{
		ReadyToPostContent: content,
		Hashtags:           hashtags,
		Metadata: Metadata{
			AnalyzedAt:  s.now().UTC(),
			Topic:       in.Topic,
			Niche:       in.Niche,
			ContentType: "ready-to-post-video",
		},
		VideoMode: true,
	}, nil
}
