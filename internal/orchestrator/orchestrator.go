// Package orchestrator classifies user intent into a workflow and runs
// its steps in order. A failing step is recorded and never stops the
// steps after it; execution history feeds the insights endpoint.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/postforge/postforge/internal/image"
	"github.com/postforge/postforge/internal/metrics"
	"github.com/postforge/postforge/internal/parse"
	"github.com/postforge/postforge/internal/prompt"
	"github.com/postforge/postforge/internal/trend"
)

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ViralService runs viral research and seeded generation.
type ViralService interface {
	DeepAnalysis(ctx context.Context, topic, niche string) (string, error)
	GeneratePosts(ctx context.Context, topic, analysis string, in prompt.PostsInput) (parse.Result, error)
}

// HookService generates opening lines.
type HookService interface {
	Custom(ctx context.Context, topic, emotion, niche, style string) (string, error)
	ByCategory(ctx context.Context, category, niche string, limit int) (string, error)
}

// PostService optimizes existing drafts.
type PostService interface {
	Optimize(ctx context.Context, postContent string) (string, error)
}

// HashtagService researches and classifies hashtags.
type HashtagService interface {
	Research(ctx context.Context, topic, niche, contentType string) (string, error)
	Trending(ctx context.Context, niche string, limit int) (string, error)
	DetectBanned(ctx context.Context, hashtags []string) (string, error)
	Strategy(ctx context.Context, hashtagData string) (string, error)
}

// ImageService suggests visuals without provider calls.
type ImageService interface {
	Suggestions(topic, style string) image.Suggestions
}

// ProfileService audits profiles.
type ProfileService interface {
	Analyze(ctx context.Context, in prompt.ProfileInput) (string, error)
}

// CompetitorService performs competitive research.
type CompetitorService interface {
	Analyze(ctx context.Context, in prompt.CompetitorInput) (string, error)
	ContentGaps(ctx context.Context, niche string, competitorNames []string) (string, error)
	Strategy(ctx context.Context, contentGaps, competitorAnalysis, userProfile string) (string, error)
}

// TrendService builds simulated trend snapshots.
type TrendService interface {
	Analyze(topic string) trend.Analysis
}

// Deps wires the orchestrator to its collaborators.
type Deps struct {
	Gen        Generator
	Viral      ViralService
	Hooks      HookService
	Posts      PostService
	Hashtags   HashtagService
	Images     ImageService
	Profiles   ProfileService
	Competitor CompetitorService
	Trends     TrendService
}

// ContentData carries the per-request content fields.
type ContentData struct {
	Topic    string   `json:"topic,omitempty"`
	Niche    string   `json:"niche,omitempty"`
	Emotion  string   `json:"emotion,omitempty"`
	Style    string   `json:"style,omitempty"`
	Goal     string   `json:"goal,omitempty"`
	Link     string   `json:"link,omitempty"`
	Assets   string   `json:"assets,omitempty"`
	Hashtags []string `json:"hashtags,omitempty"`
}

// Request is one orchestration run.
type Request struct {
	Action      string
	Profile     *prompt.ProfileInput
	Content     ContentData
	Competitors []prompt.CompetitorInput
}

// StepStatus is the outcome of one step.
type StepStatus string

const (
	StatusSuccess StepStatus = "success"
	StatusError   StepStatus = "error"
	// StatusSkipped marks steps not attempted because the request
	// context expired before they started.
	StatusSkipped StepStatus = "skipped"
	// StatusUnregistered marks a step with no registered handler.
	StatusUnregistered StepStatus = "unregistered"
)

// StepResult is one step's outcome within a run.
type StepResult struct {
	Step   Step       `json:"step"`
	Status StepStatus `json:"status"`
	Data   any        `json:"data,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// Results is the per-step record of a run.
type Results struct {
	Timestamp time.Time    `json:"timestamp"`
	Workflow  string       `json:"workflow"`
	Steps     []StepResult `json:"steps"`
}

// NextSteps suggests what to run after this workflow.
type NextSteps struct {
	Completed []string `json:"completed"`
	Suggested []string `json:"suggested"`
	Reasoning string   `json:"reasoning"`
}

// Response is the full orchestration outcome.
type Response struct {
	Workflow        string    `json:"workflow"`
	Results         Results   `json:"results"`
	Recommendations string    `json:"recommendations"`
	NextSteps       NextSteps `json:"nextSteps"`
}

// Orchestrator executes workflows.
type Orchestrator struct {
	deps    Deps
	history *History
}

// New creates an Orchestrator with its own empty history.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{deps: deps, history: NewHistory()}
}

// History exposes the execution history.
func (o *Orchestrator) History() *History {
	return o.history
}

var workflowKeyChars = regexp.MustCompile(`[^a-z-]`)

// sanitizeWorkflowKey normalizes free provider text into key form.
func sanitizeWorkflowKey(raw string) string {
	return workflowKeyChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "")
}

// Classify asks the provider for a workflow key. Any invalid or failed
// answer falls back to the default workflow; classification never
// fails the run.
func (o *Orchestrator) Classify(ctx context.Context, req Request) Workflow {
	contentJSON, err := json.Marshal(req.Content)
	if err != nil {
		contentJSON = []byte("{}")
	}
	profileStatus := prompt.NotProvided
	if req.Profile != nil {
		profileStatus = "Available"
	}

	raw, err := o.deps.Gen.Generate(ctx, prompt.ClassifyWorkflow(req.Action, string(contentJSON), profileStatus))
	if err != nil {
		slog.Warn("workflow classification failed, using default", "error", err)
		w, _ := WorkflowByKey(DefaultWorkflowKey)
		return w
	}

	key := sanitizeWorkflowKey(raw)
	if w, ok := WorkflowByKey(key); ok {
		return w
	}
	slog.Warn("classifier returned unknown workflow, using default", "decision", key)
	w, _ := WorkflowByKey(DefaultWorkflowKey)
	return w
}

// Execute classifies the request, runs the workflow's steps in order,
// records the execution, and attaches best-effort recommendations.
func (o *Orchestrator) Execute(ctx context.Context, req Request) Response {
	workflow := o.Classify(ctx, req)
	return o.ExecuteWorkflow(ctx, workflow, req)
}

// ExecuteWorkflow runs a specific workflow. Step failures are isolated:
// a step that errors is recorded and the remaining steps still run.
// Steps are marked skipped once the request context expires.
func (o *Orchestrator) ExecuteWorkflow(ctx context.Context, workflow Workflow, req Request) Response {
	start := time.Now()
	results := Results{
		Timestamp: start.UTC(),
		Workflow:  workflow.Name,
		Steps:     make([]StepResult, 0, len(workflow.Steps)),
	}

	slog.Info("executing workflow", "workflow", workflow.Key, "steps", len(workflow.Steps))

	for _, step := range workflow.Steps {
		if ctx.Err() != nil {
			results.Steps = append(results.Steps, StepResult{
				Step:   step,
				Status: StatusSkipped,
				Error:  ctx.Err().Error(),
			})
			metrics.IncWorkflowStep(string(StatusSkipped))
			continue
		}

		data, err := o.runStep(ctx, step, req, &results)
		if err != nil {
			slog.Warn("workflow step failed", "step", step, "error", err)
			results.Steps = append(results.Steps, StepResult{
				Step:   step,
				Status: StatusError,
				Error:  err.Error(),
			})
			metrics.IncWorkflowStep(string(StatusError))
			continue
		}
		status := StatusSuccess
		if _, unregistered := data.(unregisteredStep); unregistered {
			status = StatusUnregistered
		}
		results.Steps = append(results.Steps, StepResult{
			Step:   step,
			Status: status,
			Data:   data,
		})
		metrics.IncWorkflowStep(string(status))
	}

	rate := successRate(results.Steps)
	o.history.Append(Record{
		Workflow:    workflow.Name,
		Timestamp:   start.UTC(),
		SuccessRate: rate,
		Duration:    time.Since(start),
	})
	slog.Info("workflow finished", "workflow", workflow.Key, "successRate", fmt.Sprintf("%.1f%%", rate*100))

	return Response{
		Workflow:        workflow.Name,
		Results:         results,
		Recommendations: o.recommendations(ctx, results),
		NextSteps:       suggestNextSteps(results),
	}
}

func successRate(steps []StepResult) float64 {
	if len(steps) == 0 {
		return 0
	}
	ok := 0
	for _, s := range steps {
		if s.Status == StatusSuccess {
			ok++
		}
	}
	return float64(ok) / float64(len(steps))
}

// recommendations is best-effort: a provider failure degrades to a
// fixed message instead of failing the run.
func (o *Orchestrator) recommendations(ctx context.Context, results Results) string {
	serialized, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		serialized = []byte("{}")
	}
	out, err := o.deps.Gen.Generate(ctx, prompt.Recommendations(string(serialized)))
	if err != nil {
		slog.Warn("recommendations generation failed", "error", err)
		return "Recommendations generation failed. Review results manually."
	}
	return out
}

// allPossibleNextSteps are matched by prefix against completed steps.
var allPossibleNextSteps = []string{
	"profile-optimization",
	"competitor-research",
	"viral-content-creation",
	"hashtag-optimization",
	"engagement-strategy",
	"network-growth",
}

// suggestNextSteps filters the follow-up catalog down to work not yet
// covered by a successful step, keeping the top three.
func suggestNextSteps(results Results) NextSteps {
	var completed []string
	for _, s := range results.Steps {
		if s.Status == StatusSuccess {
			completed = append(completed, string(s.Step))
		}
	}

	var remaining []string
	for _, candidate := range allPossibleNextSteps {
		covered := false
		prefix := strings.SplitN(candidate, "-", 2)[0]
		for _, done := range completed {
			if strings.Contains(done, prefix) {
				covered = true
				break
			}
		}
		if !covered {
			remaining = append(remaining, candidate)
		}
	}
	if len(remaining) > 3 {
		remaining = remaining[:3]
	}

	return NextSteps{
		Completed: completed,
		Suggested: remaining,
		Reasoning: "Based on current progress, focus on: " + strings.Join(remaining, ", "),
	}
}
