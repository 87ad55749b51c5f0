// Package image suggests visuals for posts. Source links and the
// content-type heuristic are local; only the free-form suggestion text
// comes from the generation provider.
package image

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/postforge/postforge/internal/prompt"
)

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var styleKeywords = map[string]string{
	"viral":        "bold colorful attention-grabbing",
	"professional": "clean modern business",
	"story":        "authentic relatable human",
}

// Source is one free image platform with a pre-built search link.
type Source struct {
	Name           string `json:"name"`
	URL            string `json:"url"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// Suggestions bundles search links, an AI art prompt, and tips.
type Suggestions struct {
	SearchQuery    string   `json:"searchQuery"`
	Sources        []Source `json:"sources"`
	PromptForAI    string   `json:"promptForAI"`
	EngagementTips []string `json:"engagementTips"`
}

// Recommendation picks an image type from the post's content.
type Recommendation struct {
	Type        string   `json:"type"`
	Reasoning   string   `json:"reasoning"`
	SearchTerms []string `json:"searchTerms"`
}

// Service builds image guidance for a topic and post.
type Service struct {
	gen Generator
}

// New creates an image Service.
func New(gen Generator) *Service {
	return &Service{gen: gen}
}

// SearchQuery combines the topic with keywords for the detected style.
func SearchQuery(topic, style string) string {
	keywords := styleKeywords["professional"]
	lower := strings.ToLower(style)
	for _, key := range []string{"viral", "professional", "story"} {
		if strings.Contains(lower, key) {
			keywords = styleKeywords[key]
			break
		}
	}
	return topic + " " + keywords
}

// Suggestions returns search links for the three free image platforms.
func (s *Service) Suggestions(topic, style string) Suggestions {
	query := SearchQuery(topic, style)
	escaped := url.QueryEscape(query)

	tips := []string{
		"Use high-contrast colors (stops scrolling)",
		"Include text overlay with key message (2-3 words max)",
		"Ensure mobile visibility (test on phone)",
		"Match image mood to post tone",
		"Avoid cluttered or busy backgrounds",
	}
	if strings.Contains(strings.ToLower(style), "viral") {
		tips = append(tips, "Use bold, unexpected visuals")
	} else {
		tips = append(tips, "Keep it professional and clean")
	}

	return Suggestions{
		SearchQuery: query,
		Sources: []Source{
			{
				Name:           "Pexels",
				URL:            "https://www.pexels.com/search/" + escaped,
				Description:    "High-quality free stock photos",
				Recommendation: "Best for professional, polished looks",
			},
			{
				Name:           "Unsplash",
				URL:            "https://unsplash.com/s/photos/" + escaped,
				Description:    "Beautiful free images by creators",
				Recommendation: "Best for modern, aesthetic vibes",
			},
			{
				Name:           "Lexica.art",
				URL:            "https://lexica.art/?q=" + escaped,
				Description:    "AI-generated art and illustrations",
				Recommendation: "Best for unique, eye-catching visuals",
			},
		},
		PromptForAI: fmt.Sprintf("Professional LinkedIn post image for %s, %s style, clean composition, high contrast, modern design, suitable for professional social media, 16:9 aspect ratio, minimalist, eye-catching", topic, style),
		EngagementTips: tips,
	}
}

var (
	numberPattern = regexp.MustCompile(`\d+`)
	storyPattern  = regexp.MustCompile(`(?i)story|journey|experience`)
	tipsPattern   = regexp.MustCompile(`(?i)tip|hack|trick|step`)
)

// Recommend classifies the post content and suggests an image type.
func (s *Service) Recommend(topic, postContent string) Recommendation {
	switch {
	case numberPattern.MatchString(postContent) || tipsPattern.MatchString(postContent):
		return Recommendation{
			Type:      "infographic",
			Reasoning: "Post contains tips/numbers - infographic style will boost engagement by 2-3x",
			SearchTerms: []string{
				topic + " infographic", topic + " statistics visual", topic + " data visualization",
			},
		}
	case storyPattern.MatchString(postContent):
		return Recommendation{
			Type:      "authentic",
			Reasoning: "Story-based content performs better with authentic, relatable imagery",
			SearchTerms: []string{
				topic + " authentic", topic + " real people", topic + " workplace",
			},
		}
	default:
		return Recommendation{
			Type:      "professional",
			Reasoning: "Professional content needs clean, authoritative visuals",
			SearchTerms: []string{
				topic + " professional", topic + " modern", topic + " business",
			},
		}
	}
}

// AISuggestions asks the provider for free-form visual guidance.
func (s *Service) AISuggestions(ctx context.Context, topic, postContent string) (string, error) {
	out, err := s.gen.Generate(ctx, prompt.SuggestImages(topic, postContent))
	if err != nil {
		return "", fmt.Errorf("image suggestions: %w", err)
	}
	return out, nil
}
