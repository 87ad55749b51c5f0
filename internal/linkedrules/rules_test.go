package linkedrules

import (
	"strings"
	"testing"
)

func TestValidatePost_Clean(t *testing.T) {
	post := "Short hook wins\n\nValue line one.\nValue line two.\n\nThoughts?\n\n#AI #Tech"
	v := ValidatePost(post)
	if !v.Valid {
		t.Fatalf("clean post flagged invalid: %+v", v)
	}
	if len(v.Issues) != 0 || len(v.Suggestions) != 0 {
		t.Errorf("unexpected findings: %+v", v)
	}
}

func TestValidatePost_LongHook(t *testing.T) {
	post := "This opening line has far too many words to stop anyone scrolling\nBody."
	v := ValidatePost(post)
	if v.Valid {
		t.Fatal("long hook should invalidate post")
	}
	if len(v.Issues) != 1 || !strings.Contains(v.Issues[0], "Hook is") {
		t.Errorf("issues = %+v", v.Issues)
	}
}

func TestValidatePost_TooManyHashtags(t *testing.T) {
	post := "Good hook\n#a #b #c #d #e #f #g #h\nThoughts?"
	v := ValidatePost(post)
	if v.Valid {
		t.Fatal("8 hashtags should invalidate post")
	}
	if !strings.Contains(v.Issues[0], "Too many hashtags: 8") {
		t.Errorf("issues = %+v", v.Issues)
	}
}

func TestValidatePost_MissingCTAAndLongLines(t *testing.T) {
	post := "Good hook\n" + strings.Repeat("x", 120)
	v := ValidatePost(post)
	if !v.Valid {
		t.Fatalf("suggestions alone should not invalidate: %+v", v)
	}
	if len(v.Suggestions) != 2 {
		t.Errorf("want CTA and line-length suggestions, got %+v", v.Suggestions)
	}
}

func TestOptimizationScore_Deductions(t *testing.T) {
	perfect := OptimizationScore("Great hook\nValue.\nThoughts?\n#AI")
	if perfect.Score != 100 || perfect.Rating != "Excellent" {
		t.Errorf("perfect post scored %d (%s)", perfect.Score, perfect.Rating)
	}

	// One issue (long hook) plus one suggestion (no CTA): 100-10-5.
	flawed := OptimizationScore("This opening line has far too many words to stop anyone scrolling today")
	if flawed.Score != 85 {
		t.Errorf("score = %d, want 85 (%+v)", flawed.Score, flawed.Validation)
	}
	if flawed.Rating != "Excellent" {
		t.Errorf("rating = %q", flawed.Rating)
	}
}

func TestOptimizeChecklist_Fixed(t *testing.T) {
	rules := OptimizeChecklist()
	if len(rules) != 6 {
		t.Fatalf("got %d rules, want 6", len(rules))
	}
	if rules[0] != "Hook under 7 words" || rules[5] != "Algorithm-optimized (2025)" {
		t.Errorf("unexpected checklist: %v", rules)
	}
}
