// Package simdata fabricates the engagement and trend metrics used by
// the trend endpoints. The numbers are placeholders drawn from a seeded
// random source, never measurements. Real trend feeds were never wired
// up and callers present these figures as estimates only.
package simdata

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Hashtag pool sampled for topic recommendations.
var linkedinHashtags = []string{
	"AI", "WebDevelopment", "TechTrends", "Innovation",
	"Entrepreneurship", "Leadership", "ProductivityHacks",
	"CareerGrowth", "StartupLife", "DigitalMarketing",
}

// Source produces the simulated metrics. A deterministic seed makes the
// output reproducible in tests. One Source is shared by every request,
// and rand.Rand is not safe for concurrent use, so draws go through the
// mutex.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func (s *Source) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *Source) float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// NewSource returns a Source seeded from the clock.
func NewSource() *Source {
	return NewSeededSource(time.Now().UnixNano())
}

// NewSeededSource returns a Source with a fixed seed.
func NewSeededSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed)), now: time.Now}
}

// GoogleTrends mimics a trend-API lookup for a topic.
type GoogleTrends struct {
	Rising         []string `json:"rising"`
	Interest       int      `json:"interest"`
	RelatedQueries []string `json:"relatedQueries"`
}

// GoogleTrends fabricates rising queries and a 70-100 interest score.
func (s *Source) GoogleTrends(topic string) GoogleTrends {
	year := s.now().Year()
	return GoogleTrends{
		Rising: []string{
			fmt.Sprintf("%s best practices %d", topic, year),
			fmt.Sprintf("How to master %s", topic),
			fmt.Sprintf("%s trends and predictions", topic),
		},
		Interest: s.intn(30) + 70,
		RelatedQueries: []string{
			fmt.Sprintf("What is %s?", topic),
			fmt.Sprintf("%s tutorial", topic),
			fmt.Sprintf("%s for beginners", topic),
		},
	}
}

// HashtagMetric is one simulated hashtag performance row.
type HashtagMetric struct {
	Hashtag    string `json:"hashtag"`
	Followers  int    `json:"followers"`
	Engagement string `json:"engagement"`
}

// EngagementPercent extracts the numeric engagement value.
func (m HashtagMetric) EngagementPercent() float64 {
	var v float64
	fmt.Sscanf(strings.TrimSuffix(m.Engagement, "%"), "%f", &v)
	return v
}

// HashtagData samples up to 7 hashtags with fabricated follower counts
// (100K-1.1M) and engagement rates (2-7%). Tags whose name shares the
// topic's first word are always included.
func (s *Source) HashtagData(topic string) []HashtagMetric {
	first := ""
	if fields := strings.Fields(strings.ToLower(topic)); len(fields) > 0 {
		first = fields[0]
	}
	var out []HashtagMetric
	for _, tag := range linkedinHashtags {
		if len(out) == 7 {
			break
		}
		if !strings.Contains(strings.ToLower(tag), first) && s.float64() <= 0.5 {
			continue
		}
		out = append(out, HashtagMetric{
			Hashtag:    "#" + tag,
			Followers:  s.intn(1000000) + 100000,
			Engagement: fmt.Sprintf("%.1f%%", s.float64()*5+2),
		})
	}
	return out
}

// ViralPotential is the composite topic score.
type ViralPotential struct {
	Score          int    `json:"score"`
	Rating         string `json:"rating"`
	Recommendation string `json:"recommendation"`
}

// CalculateViralPotential combines trend interest with average hashtag
// engagement into a 0-100 score with a rating band.
func CalculateViralPotential(trends GoogleTrends, hashtags []HashtagMetric) ViralPotential {
	interest := float64(trends.Interest)
	if interest == 0 {
		interest = 75
	}
	var avgEngagement float64
	if len(hashtags) > 0 {
		var sum float64
		for _, h := range hashtags {
			sum += h.EngagementPercent()
		}
		avgEngagement = sum / float64(len(hashtags))
	}
	score := (interest + avgEngagement*5) / 2

	vp := ViralPotential{Score: int(math.Round(score))}
	switch {
	case score > 80:
		vp.Rating = "High"
		vp.Recommendation = "Excellent time to post on this topic!"
	case score > 60:
		vp.Rating = "Medium"
		vp.Recommendation = "Good topic, optimize your hook for better results"
	default:
		vp.Rating = "Low"
		vp.Recommendation = "Consider a trending angle or wait for better timing"
	}
	return vp
}

// PostingTime is one recommended posting slot.
type PostingTime struct {
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

// BestPostingTimes returns the fixed IST posting windows.
func BestPostingTimes() []PostingTime {
	return []PostingTime{
		{Time: "08:30 AM", Reason: "Morning commute, high engagement"},
		{Time: "01:00 PM", Reason: "Lunch break, peak activity"},
		{Time: "05:30 PM", Reason: "Evening wind-down, excellent reach"},
	}
}

// NewsHeadlines fabricates recent headlines for a topic.
func (s *Source) NewsHeadlines(topic string) []string {
	return []string{
		fmt.Sprintf("Latest %s breakthrough announced", topic),
		fmt.Sprintf("Industry leaders discuss %s future", topic),
		fmt.Sprintf("How %s is transforming businesses in %d", topic, s.now().Year()),
	}
}
