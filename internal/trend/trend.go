// Package trend assembles topic trend reports. Quantitative figures
// come from the simdata placeholders, qualitative analysis from the
// generation provider.
package trend

import (
	"context"
	"fmt"
	"time"

	"github.com/postforge/postforge/internal/prompt"
	"github.com/postforge/postforge/internal/simdata"
)

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analysis is the simulated trend snapshot for one topic.
type Analysis struct {
	Topic               string                  `json:"topic"`
	Timestamp           time.Time               `json:"timestamp"`
	GoogleTrends        simdata.GoogleTrends    `json:"googleTrends"`
	RecommendedHashtags []simdata.HashtagMetric `json:"recommendedHashtags"`
	ViralPotential      simdata.ViralPotential  `json:"viralPotential"`
	BestPostingTimes    []simdata.PostingTime   `json:"bestPostingTimes"`
}

// Service produces trend reports.
type Service struct {
	gen Generator
	sim *simdata.Source
	now func() time.Time
}

// New creates a trend Service backed by the given generator and
// simulated data source.
func New(gen Generator, sim *simdata.Source) *Service {
	return &Service{gen: gen, sim: sim, now: time.Now}
}

// Analyze builds the simulated trend snapshot for a topic.
func (s *Service) Analyze(topic string) Analysis {
	trends := s.sim.GoogleTrends(topic)
	hashtags := s.sim.HashtagData(topic)
	return Analysis{
		Topic:               topic,
		Timestamp:           s.now().UTC(),
		GoogleTrends:        trends,
		RecommendedHashtags: hashtags,
		ViralPotential:      simdata.CalculateViralPotential(trends, hashtags),
		BestPostingTimes:    simdata.BestPostingTimes(),
	}
}

// AIAnalysis asks the provider for a structured trend breakdown.
func (s *Service) AIAnalysis(ctx context.Context, topic string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.Trends(topic, s.now().Year()))
	if err != nil {
		return "", fmt.Errorf("trend analysis: %w", err)
	}
	return out, nil
}

// HashtagData exposes the simulated per-hashtag metrics for a topic.
func (s *Service) HashtagData(topic string) []simdata.HashtagMetric {
	return s.sim.HashtagData(topic)
}
