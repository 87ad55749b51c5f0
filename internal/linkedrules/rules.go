// Package linkedrules holds the static LinkedIn algorithm heuristics
// (2025 edition) and the local post validator built on them.
package linkedrules

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// HookMaxWords caps the first line of a post.
	HookMaxWords = 7
	// MaxHashtags caps the hashtag count per post.
	MaxHashtags = 7
	// MaxLineLength is the readability threshold per line.
	MaxLineLength = 100
)

// EngagementCTAs are the closing lines known to drive comments.
var EngagementCTAs = []string{
	"Thoughts?",
	"Agree or disagree?",
	"Want part 2?",
	"What do you think?",
	"Drop your opinion below",
	"Have you experienced this?",
	"Tag someone who needs this",
}

// OptimizeChecklist is the fixed rule list echoed by the optimize
// endpoint. Order and wording are part of the response contract.
func OptimizeChecklist() []string {
	return []string{
		"Hook under 7 words",
		"Line breaks every 1-2 lines",
		"Engagement CTA",
		"Max 7 hashtags",
		"Mobile-friendly",
		"Algorithm-optimized (2025)",
	}
}

// PostingWindow describes one high-engagement posting slot (IST).
type PostingWindow struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// PostingWindows returns the fixed IST posting slots.
func PostingWindows() []PostingWindow {
	return []PostingWindow{
		{Time: "08:30", Description: "Morning commute, high engagement"},
		{Time: "13:00", Description: "Lunch break, peak activity"},
		{Time: "17:30", Description: "Evening wind-down, excellent reach"},
	}
}

// HashtagDistribution is the recommended 2/3/2 hashtag mix.
type HashtagDistribution struct {
	Broad   int `json:"broad"`
	Niche   int `json:"niche"`
	Branded int `json:"branded"`
}

// RecommendedHashtagMix returns the standard distribution.
func RecommendedHashtagMix() HashtagDistribution {
	return HashtagDistribution{Broad: 2, Niche: 3, Branded: 2}
}

var hashtagPattern = regexp.MustCompile(`#\w+`)

// Validation is the outcome of local post linting. Issues break the
// rules outright, suggestions are softer readability advice.
type Validation struct {
	Valid       bool     `json:"valid"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// ValidatePost lints a post against the algorithm rules without calling
// the provider.
func ValidatePost(postContent string) Validation {
	var lines []string
	for _, line := range strings.Split(postContent, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	hashtags := hashtagPattern.FindAllString(postContent, -1)

	v := Validation{Issues: []string{}, Suggestions: []string{}}

	hookWords := 0
	if len(lines) > 0 {
		hookWords = len(strings.Fields(lines[0]))
	}
	if hookWords > HookMaxWords {
		v.Issues = append(v.Issues,
			fmt.Sprintf("Hook is %d words (recommended: max %d)", hookWords, HookMaxWords))
	}

	if len(hashtags) > MaxHashtags {
		v.Issues = append(v.Issues,
			fmt.Sprintf("Too many hashtags: %d (recommended: max %d)", len(hashtags), MaxHashtags))
	}

	lower := strings.ToLower(postContent)
	hasCTA := false
	for _, cta := range EngagementCTAs {
		if strings.Contains(lower, strings.ToLower(cta)) {
			hasCTA = true
			break
		}
	}
	if !hasCTA {
		v.Suggestions = append(v.Suggestions, "Add an engagement CTA at the end")
	}

	for _, line := range lines {
		if len(line) > MaxLineLength {
			v.Suggestions = append(v.Suggestions, "Some lines are too long - consider breaking them up")
			break
		}
	}

	v.Valid = len(v.Issues) == 0
	return v
}

// Score grades a post from its validation result.
type Score struct {
	Score      int        `json:"score"`
	Rating     string     `json:"rating"`
	Validation Validation `json:"validation"`
}

// OptimizationScore starts at 100 and deducts 10 per issue and 5 per
// suggestion.
func OptimizationScore(postContent string) Score {
	v := ValidatePost(postContent)
	score := 100 - len(v.Issues)*10 - len(v.Suggestions)*5

	rating := "Needs Improvement"
	switch {
	case score >= 80:
		rating = "Excellent"
	case score >= 60:
		rating = "Good"
	}
	if score < 0 {
		score = 0
	}
	return Score{Score: score, Rating: rating, Validation: v}
}
