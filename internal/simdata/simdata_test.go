package simdata

import (
	"strings"
	"sync"
	"testing"
)

func TestGoogleTrends_InterestRange(t *testing.T) {
	s := NewSeededSource(1)
	for i := 0; i < 50; i++ {
		g := s.GoogleTrends("golang")
		if g.Interest < 70 || g.Interest > 100 {
			t.Fatalf("interest %d out of [70,100]", g.Interest)
		}
		if len(g.Rising) != 3 || len(g.RelatedQueries) != 3 {
			t.Fatalf("unexpected query counts: %d rising, %d related", len(g.Rising), len(g.RelatedQueries))
		}
	}
}

func TestHashtagData_Bounds(t *testing.T) {
	s := NewSeededSource(42)
	for i := 0; i < 20; i++ {
		data := s.HashtagData("marketing tips")
		if len(data) > 7 {
			t.Fatalf("got %d hashtags, max is 7", len(data))
		}
		for _, h := range data {
			if !strings.HasPrefix(h.Hashtag, "#") {
				t.Errorf("hashtag %q missing # prefix", h.Hashtag)
			}
			if h.Followers < 100000 || h.Followers >= 1100000 {
				t.Errorf("followers %d out of range", h.Followers)
			}
			pct := h.EngagementPercent()
			if pct < 2 || pct > 7 {
				t.Errorf("engagement %.1f out of [2,7]", pct)
			}
		}
	}
}

func TestHashtagData_TopicMatchAlwaysIncluded(t *testing.T) {
	s := NewSeededSource(7)
	for i := 0; i < 10; i++ {
		data := s.HashtagData("AI agents")
		found := false
		for _, h := range data {
			if h.Hashtag == "#AI" {
				found = true
			}
		}
		if !found {
			t.Fatalf("topic-matching tag #AI not included: %+v", data)
		}
	}
}

// One Source serves every request, so concurrent draws must be safe.
// Run with -race.
func TestSource_ConcurrentDraws(t *testing.T) {
	s := NewSource()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				g := s.GoogleTrends("golang")
				if g.Interest < 70 || g.Interest > 100 {
					t.Errorf("interest %d out of [70,100]", g.Interest)
				}
				if data := s.HashtagData("marketing"); len(data) > 7 {
					t.Errorf("got %d hashtags, max is 7", len(data))
				}
			}
		}()
	}
	wg.Wait()
}

func TestCalculateViralPotential_Bands(t *testing.T) {
	high := CalculateViralPotential(GoogleTrends{Interest: 100}, []HashtagMetric{{Engagement: "15.0%"}})
	if high.Rating != "High" {
		t.Errorf("score %d rated %q, want High", high.Score, high.Rating)
	}
	mid := CalculateViralPotential(GoogleTrends{Interest: 80}, []HashtagMetric{{Engagement: "10.0%"}})
	if mid.Rating != "Medium" {
		t.Errorf("score %d rated %q, want Medium", mid.Score, mid.Rating)
	}
	low := CalculateViralPotential(GoogleTrends{Interest: 70}, nil)
	if low.Rating != "Low" {
		t.Errorf("score %d rated %q, want Low", low.Score, low.Rating)
	}
	if low.Recommendation == "" || high.Recommendation == "" {
		t.Error("recommendations must be non-empty")
	}
}

func TestBestPostingTimes_Fixed(t *testing.T) {
	times := BestPostingTimes()
	if len(times) != 3 {
		t.Fatalf("got %d slots, want 3", len(times))
	}
	if times[0].Time != "08:30 AM" || times[1].Time != "01:00 PM" || times[2].Time != "05:30 PM" {
		t.Errorf("unexpected slots: %+v", times)
	}
}
