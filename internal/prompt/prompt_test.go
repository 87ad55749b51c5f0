package prompt

import (
	"strings"
	"testing"
)

func TestPosts_Markers(t *testing.T) {
	p := Posts(PostsInput{Topic: "AI in recruiting"})
	for _, marker := range []string{"**POST A**", "**POST B**", "**POST C**"} {
		if !strings.Contains(p, marker) {
			t.Errorf("prompt missing marker %q", marker)
		}
	}
}

func TestPosts_OptionalFields(t *testing.T) {
	p := Posts(PostsInput{Topic: "AI", Style: "", Goal: "  "})
	if !strings.Contains(p, "Style: "+NotProvided) {
		t.Errorf("blank style not substituted: %q", p)
	}
	if !strings.Contains(p, "Goal: "+NotProvided) {
		t.Errorf("whitespace goal not substituted")
	}
	if strings.Contains(p, "Link:") {
		t.Errorf("absent link should not emit a Link line")
	}

	withLink := Posts(PostsInput{Topic: "AI", Link: "https://example.com"})
	if !strings.Contains(withLink, "Link: https://example.com") {
		t.Errorf("link line missing")
	}
	if !strings.Contains(withLink, "incorporate this link: https://example.com") {
		t.Errorf("link integration instruction missing")
	}
}

func TestPosts_Deterministic(t *testing.T) {
	in := PostsInput{Topic: "remote work", Style: "bold", Goal: "reach", Link: "https://x.test"}
	if Posts(in) != Posts(in) {
		t.Fatal("identical inputs produced different prompts")
	}
}

func TestTrends_YearAndStructure(t *testing.T) {
	p := Trends("developer productivity", 2026)
	if !strings.Contains(p, "2026") {
		t.Errorf("year not rendered")
	}
	for _, section := range []string{"TRENDING_TOPICS:", "BEST_VIRAL_ANGLE:", "VIRAL_HOOK:"} {
		if !strings.Contains(p, section) {
			t.Errorf("missing section %q", section)
		}
	}
}

func TestViralPost_Markers(t *testing.T) {
	p := ViralPost("AI", "analysis text", PostsInput{Topic: "AI"})
	for _, marker := range []string{
		"**POST A** - CURIOSITY BOMB",
		"**POST B** - CONTRARIAN TRUTH",
		"**POST C** - VALUE EXPLOSION",
	} {
		if !strings.Contains(p, marker) {
			t.Errorf("missing marker %q", marker)
		}
	}
}

func TestSuggestImages_Truncation(t *testing.T) {
	long := strings.Repeat("a", 500)
	p := SuggestImages("topic", long)
	if strings.Contains(p, long) {
		t.Errorf("post content should be truncated to 300 chars")
	}
	if !strings.Contains(p, strings.Repeat("a", 300)+"...") {
		t.Errorf("truncated excerpt missing ellipsis")
	}

	empty := SuggestImages("topic", "")
	if !strings.Contains(empty, NotProvided) {
		t.Errorf("empty post content not substituted")
	}
}

func TestProfileAnalysis_Defaults(t *testing.T) {
	p := ProfileAnalysis(ProfileInput{})
	if strings.Count(p, NotProvided) != 4 {
		t.Errorf("expected 4 Not provided substitutions, prompt:\n%s", p)
	}
	if !strings.Contains(p, "**Niche/Industry:** General") {
		t.Errorf("empty niche should default to General")
	}
}

func TestAboutSection_Defaults(t *testing.T) {
	p := AboutSection(AboutInput{Role: "Engineer"})
	if !strings.Contains(p, "Name: Professional") {
		t.Errorf("name default missing")
	}
	if !strings.Contains(p, "Goals: Build network and opportunities") {
		t.Errorf("goals default missing")
	}
	if !strings.Contains(p, "Role: Engineer") {
		t.Errorf("provided role not rendered")
	}
}

func TestClassifyWorkflow_ListsAllKeys(t *testing.T) {
	p := ClassifyWorkflow("", "", NotProvided)
	for _, key := range []string{
		"full-content-creation", "quick-post", "profile-optimization",
		"competitive-research", "viral-research", "hashtag-strategy",
	} {
		if !strings.Contains(p, key) {
			t.Errorf("classifier prompt missing workflow key %q", key)
		}
	}
	if !strings.Contains(p, "**Action Requested:** generate content") {
		t.Errorf("empty action should default to generate content")
	}
}

func TestCompareCompetitors_NumbersEntries(t *testing.T) {
	p := CompareCompetitors([]CompetitorInput{
		{Name: "Alice"},
		{Name: "Bob", Niche: "SaaS"},
	}, "Tech")
	if !strings.Contains(p, "1. Alice (Tech)") {
		t.Errorf("first competitor should inherit user niche: %q", p)
	}
	if !strings.Contains(p, "2. Bob (SaaS)") {
		t.Errorf("second competitor should keep own niche")
	}
}

func TestBannedHashtags_JoinsTags(t *testing.T) {
	p := BannedHashtags([]string{"#follow4follow", "#ai"})
	if !strings.Contains(p, "#follow4follow, #ai") {
		t.Errorf("hashtags not joined into prompt")
	}
}

func TestVideoSuccessRate_Flags(t *testing.T) {
	p := VideoSuccessRate(VideoInput{Topic: "demo", Niche: "DevTools", HasHook: true})
	if !strings.Contains(p, "Has Strong Hook: Yes") {
		t.Errorf("hook flag not rendered")
	}
	if !strings.Contains(p, "Has Optimized Caption: No") {
		t.Errorf("caption flag not rendered")
	}
	if !strings.Contains(p, "Format: Not specified") {
		t.Errorf("missing format default")
	}
}
