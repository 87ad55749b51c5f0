package image

import (
	"context"
	"strings"
	"testing"
)

type fakeGen struct {
	out string
	err error
}

func (f *fakeGen) Generate(ctx context.Context, prompt string) (string, error) {
	return f.out, f.err
}

func TestSearchQuery_StyleDetection(t *testing.T) {
	cases := []struct {
		style string
		want  string
	}{
		{"Viral + bold", "bold colorful attention-grabbing"},
		{"personal story", "authentic relatable human"},
		{"", "clean modern business"},
		{"something else", "clean modern business"},
	}
	for _, c := range cases {
		got := SearchQuery("golang", c.style)
		if !strings.Contains(got, c.want) {
			t.Errorf("SearchQuery(%q) = %q, want keywords %q", c.style, got, c.want)
		}
		if !strings.HasPrefix(got, "golang ") {
			t.Errorf("query should lead with topic: %q", got)
		}
	}
}

func TestSuggestions_SourcesAndEscaping(t *testing.T) {
	s := New(&fakeGen{})
	sug := s.Suggestions("remote work", "professional")
	if len(sug.Sources) != 3 {
		t.Fatalf("got %d sources, want 3", len(sug.Sources))
	}
	if sug.Sources[0].Name != "Pexels" || sug.Sources[1].Name != "Unsplash" || sug.Sources[2].Name != "Lexica.art" {
		t.Errorf("unexpected source order: %+v", sug.Sources)
	}
	for _, src := range sug.Sources {
		if strings.Contains(src.URL, " ") {
			t.Errorf("URL not escaped: %q", src.URL)
		}
	}
	if len(sug.EngagementTips) != 6 {
		t.Errorf("got %d tips, want 6", len(sug.EngagementTips))
	}
}

func TestSuggestions_ViralTip(t *testing.T) {
	s := New(&fakeGen{})
	viral := s.Suggestions("ai", "viral")
	last := viral.EngagementTips[len(viral.EngagementTips)-1]
	if last != "Use bold, unexpected visuals" {
		t.Errorf("viral style tip = %q", last)
	}
}

func TestRecommend_Classification(t *testing.T) {
	s := New(&fakeGen{})
	cases := []struct {
		content string
		want    string
	}{
		{"5 tips for better code", "infographic"},
		{"Here are some steps to follow", "infographic"},
		{"My journey into tech", "authentic"},
		{"Insights on leadership", "professional"},
	}
	for _, c := range cases {
		if got := s.Recommend("tech", c.content).Type; got != c.want {
			t.Errorf("Recommend(%q).Type = %q, want %q", c.content, got, c.want)
		}
	}
}

func TestAISuggestions_WrapsError(t *testing.T) {
	s := New(&fakeGen{out: "use a chart"})
	out, err := s.AISuggestions(context.Background(), "ai", "post")
	if err != nil || out != "use a chart" {
		t.Fatalf("got (%q, %v)", out, err)
	}
}
