package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/postforge/postforge/internal/image"
	"github.com/postforge/postforge/internal/parse"
	"github.com/postforge/postforge/internal/prompt"
	"github.com/postforge/postforge/internal/trend"
)

type fakeGen struct {
	classification string
	classifyErr    error
}

func (f *fakeGen) Generate(ctx context.Context, p string) (string, error) {
	if strings.Contains(p, "Return ONLY the workflow key") {
		return f.classification, f.classifyErr
	}
	return "generated recommendations", nil
}

type fakeViral struct {
	analysisErr error
	postsErr    error
}

func (f *fakeViral) DeepAnalysis(ctx context.Context, topic, niche string) (string, error) {
	if f.analysisErr != nil {
		return "", f.analysisErr
	}
	return "deep analysis for " + topic, nil
}

func (f *fakeViral) GeneratePosts(ctx context.Context, topic, analysis string, in prompt.PostsInput) (parse.Result, error) {
	if f.postsErr != nil {
		return parse.Result{}, f.postsErr
	}
	return parse.Posts("**POST A**\na\n**POST B**\nb\n**POST C**\nc"), nil
}

type fakeHooks struct{ err error }

func (f *fakeHooks) Custom(ctx context.Context, topic, emotion, niche, style string) (string, error) {
	return "hooks", f.err
}

func (f *fakeHooks) ByCategory(ctx context.Context, category, niche string, limit int) (string, error) {
	return "category hooks", f.err
}

type fakePosts struct{ lastInput string }

func (f *fakePosts) Optimize(ctx context.Context, postContent string) (string, error) {
	f.lastInput = postContent
	return "optimized", nil
}

type fakeHashtags struct{}

func (fakeHashtags) Research(ctx context.Context, topic, niche, contentType string) (string, error) {
	return "tiered hashtags", nil
}
func (fakeHashtags) Trending(ctx context.Context, niche string, limit int) (string, error) {
	return "trending", nil
}
func (fakeHashtags) DetectBanned(ctx context.Context, hashtags []string) (string, error) {
	return "classified", nil
}
func (fakeHashtags) Strategy(ctx context.Context, hashtagData string) (string, error) {
	return "strategy from: " + hashtagData, nil
}

type fakeImages struct{}

func (fakeImages) Suggestions(topic, style string) image.Suggestions {
	return image.Suggestions{SearchQuery: topic}
}

type fakeProfiles struct{}

func (fakeProfiles) Analyze(ctx context.Context, in prompt.ProfileInput) (string, error) {
	return "profile audit", nil
}

type fakeCompetitor struct{ analyzed int }

func (f *fakeCompetitor) Analyze(ctx context.Context, in prompt.CompetitorInput) (string, error) {
	f.analyzed++
	return "analysis of " + in.Name, nil
}
func (f *fakeCompetitor) ContentGaps(ctx context.Context, niche string, names []string) (string, error) {
	return "gaps in " + niche, nil
}
func (f *fakeCompetitor) Strategy(ctx context.Context, gaps, analysis, profile string) (string, error) {
	return "90-day plan", nil
}

type fakeTrends struct{}

func (fakeTrends) Analyze(topic string) trend.Analysis {
	return trend.Analysis{Topic: topic}
}

func testDeps() Deps {
	return Deps{
		Gen:        &fakeGen{classification: "quick-post"},
		Viral:      &fakeViral{},
		Hooks:      &fakeHooks{},
		Posts:      &fakePosts{},
		Hashtags:   fakeHashtags{},
		Images:     fakeImages{},
		Profiles:   fakeProfiles{},
		Competitor: &fakeCompetitor{},
		Trends:     fakeTrends{},
	}
}

func TestClassify_FallbackMatrix(t *testing.T) {
	cases := []struct {
		name           string
		classification string
		err            error
		want           string
	}{
		{"valid key", "quick-post", nil, "quick-post"},
		{"key with noise", "  Quick-Post.\n", nil, "quick-post"},
		{"garbage", "make me famous", nil, DefaultWorkflowKey},
		{"empty", "", nil, DefaultWorkflowKey},
		{"provider error", "", errors.New("down"), DefaultWorkflowKey},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			deps := testDeps()
			deps.Gen = &fakeGen{classification: c.classification, classifyErr: c.err}
			o := New(deps)
			w := o.Classify(context.Background(), Request{Action: "post something"})
			if w.Key != c.want {
				t.Errorf("Classify -> %q, want %q", w.Key, c.want)
			}
		})
	}
}

func TestExecuteWorkflow_StepFailureIsIsolated(t *testing.T) {
	deps := testDeps()
	deps.Viral = &fakeViral{postsErr: errors.New("generation exploded")}
	o := New(deps)

	w, _ := WorkflowByKey("quick-post")
	resp := o.ExecuteWorkflow(context.Background(), w, Request{Content: ContentData{Topic: "ai"}})

	statuses := make([]StepStatus, 0, 3)
	for _, s := range resp.Results.Steps {
		statuses = append(statuses, s.Status)
	}
	want := []StepStatus{StatusSuccess, StatusError, StatusSuccess}
	if len(statuses) != 3 {
		t.Fatalf("got %d step results, want 3", len(statuses))
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("step %d status = %q, want %q", i, statuses[i], want[i])
		}
	}
	if resp.Results.Steps[1].Error == "" {
		t.Error("failed step should carry the error message")
	}
}

func TestExecuteWorkflow_SkipsAfterContextExpiry(t *testing.T) {
	o := New(testDeps())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w, _ := WorkflowByKey("quick-post")
	resp := o.ExecuteWorkflow(ctx, w, Request{Content: ContentData{Topic: "ai"}})
	for _, s := range resp.Results.Steps {
		if s.Status != StatusSkipped {
			t.Errorf("step %s status = %q, want skipped", s.Step, s.Status)
		}
	}
}

func TestExecuteWorkflow_OptimizationUsesGeneratedRaw(t *testing.T) {
	deps := testDeps()
	posts := &fakePosts{}
	deps.Posts = posts
	o := New(deps)

	w, _ := WorkflowByKey("full-content-creation")
	resp := o.ExecuteWorkflow(context.Background(), w, Request{Content: ContentData{Topic: "ai"}})
	if got := len(resp.Results.Steps); got != 7 {
		t.Fatalf("got %d steps, want 7", got)
	}
	if !strings.Contains(posts.lastInput, "**POST A**") {
		t.Errorf("optimization should receive the raw generated text, got %q", posts.lastInput)
	}
}

func TestExecuteWorkflow_CompetitorLimit(t *testing.T) {
	deps := testDeps()
	comp := &fakeCompetitor{}
	deps.Competitor = comp
	o := New(deps)

	competitors := []prompt.CompetitorInput{
		{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"},
	}
	w, _ := WorkflowByKey("competitive-research")
	o.ExecuteWorkflow(context.Background(), w, Request{Competitors: competitors})
	if comp.analyzed != 3 {
		t.Errorf("analyzed %d competitors, want 3", comp.analyzed)
	}
}

func TestExecute_RecordsHistory(t *testing.T) {
	o := New(testDeps())
	o.Execute(context.Background(), Request{Content: ContentData{Topic: "ai"}})
	if o.History().Len() != 1 {
		t.Fatalf("history len = %d, want 1", o.History().Len())
	}
	rec := o.History().Snapshot()[0]
	if rec.SuccessRate != 1 {
		t.Errorf("successRate = %v, want 1", rec.SuccessRate)
	}
}

func TestSuggestNextSteps_FiltersCompletedPrefixes(t *testing.T) {
	results := Results{Steps: []StepResult{
		{Step: StepProfileAnalysis, Status: StatusSuccess},
		{Step: StepCompetitorAnalysis, Status: StatusSuccess},
		{Step: StepRecommendations, Status: StatusError},
	}}
	next := suggestNextSteps(results)
	if len(next.Suggested) != 3 {
		t.Fatalf("suggested = %v, want 3 entries", next.Suggested)
	}
	for _, s := range next.Suggested {
		if strings.HasPrefix(s, "profile") || strings.HasPrefix(s, "competitor") {
			t.Errorf("suggestion %q overlaps a completed step", s)
		}
	}
	if !strings.Contains(next.Reasoning, next.Suggested[0]) {
		t.Errorf("reasoning should list suggestions: %q", next.Reasoning)
	}
}

func TestWorkflowTable_DisplayNames(t *testing.T) {
	want := map[string]string{
		"full-content-creation": "Full Content Creation with Viral Optimization",
		"quick-post":            "Quick Post Generation",
		"profile-optimization":  "Profile Optimization",
		"competitive-research":  "Competitive Intelligence",
		"viral-research":        "Deep Viral Content Research",
		"hashtag-strategy":      "Hashtag Strategy Development",
	}
	keys := WorkflowKeys()
	if len(keys) != len(want) {
		t.Fatalf("got %d workflows, want %d", len(keys), len(want))
	}
	for key, name := range want {
		w, ok := WorkflowByKey(key)
		if !ok {
			t.Fatalf("workflow %q missing", key)
		}
		if w.Name != name {
			t.Errorf("workflow %q name = %q, want %q", key, w.Name, name)
		}
	}
}

func TestExecuteWorkflow_BannedDetectionWithoutTags(t *testing.T) {
	o := New(testDeps())
	w, _ := WorkflowByKey("hashtag-strategy")
	resp := o.ExecuteWorkflow(context.Background(), w, Request{Content: ContentData{Topic: "ai"}})

	var banned *StepResult
	for i := range resp.Results.Steps {
		if resp.Results.Steps[i].Step == StepBannedDetection {
			banned = &resp.Results.Steps[i]
		}
	}
	if banned == nil {
		t.Fatal("banned-detection step missing")
	}
	note, ok := banned.Data.(statusNote)
	if !ok || note.Status != "No hashtags to check" {
		t.Errorf("banned-detection data = %#v", banned.Data)
	}
}
