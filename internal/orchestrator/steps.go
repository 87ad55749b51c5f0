package orchestrator

import (
	"context"
	"encoding/json"

	"github.com/postforge/postforge/internal/competitor"
	"github.com/postforge/postforge/internal/parse"
	"github.com/postforge/postforge/internal/prompt"
)

// statusNote is a step result that carries no generated content, only
// an explanation of why nothing ran.
type statusNote struct {
	Status string `json:"status"`
}

// profileWarning is returned when the profile check finds gaps.
type profileWarning struct {
	Warning        string `json:"warning"`
	Recommendation string `json:"recommendation"`
}

// unregisteredStep marks a step identifier with no handler. The
// workflow table never produces one; this guards future edits.
type unregisteredStep struct {
	Status string `json:"status"`
	Step   Step   `json:"step"`
}

func orFallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// findStepData returns the serialized data of a prior successful step,
// or "" when the step did not run or failed.
func findStepData(results *Results, step Step) string {
	for _, s := range results.Steps {
		if s.Step != step || s.Status != StatusSuccess {
			continue
		}
		switch data := s.Data.(type) {
		case string:
			return data
		case parse.Result:
			return data.Raw
		}
		raw, err := json.Marshal(s.Data)
		if err != nil {
			return ""
		}
		return string(raw)
	}
	return ""
}

// runStep dispatches one step to its service. Absent optional inputs
// use the documented per-step defaults.
func (o *Orchestrator) runStep(ctx context.Context, step Step, req Request, results *Results) (any, error) {
	content := req.Content

	switch step {
	case StepProfileCheck:
		if req.Profile == nil || req.Profile.Headline == "" {
			return profileWarning{
				Warning:        "Profile incomplete - optimization recommended",
				Recommendation: "Run profile-optimization workflow first",
			}, nil
		}
		return statusNote{Status: "Profile looks good"}, nil

	case StepViralAnalysis:
		return o.deps.Viral.DeepAnalysis(ctx,
			orFallback(content.Topic, "general"),
			orFallback(content.Niche, "business"))

	case StepHookGeneration:
		return o.deps.Hooks.Custom(ctx,
			orFallback(content.Topic, "business growth"),
			orFallback(content.Emotion, "curiosity"),
			orFallback(content.Niche, "general"),
			orFallback(content.Style, "professional"))

	case StepContentGeneration:
		analysis := findStepData(results, StepViralAnalysis)
		return o.deps.Viral.GeneratePosts(ctx,
			orFallback(content.Topic, "business growth"),
			analysis,
			prompt.PostsInput{
				Topic:  orFallback(content.Topic, "business growth"),
				Style:  content.Style,
				Goal:   content.Goal,
				Link:   content.Link,
				Assets: content.Assets,
			})

	case StepHashtagResearch:
		return o.deps.Hashtags.Research(ctx,
			orFallback(content.Topic, "business"),
			orFallback(content.Niche, "general"),
			"post")

	case StepImageSuggestions:
		return o.deps.Images.Suggestions(orFallback(content.Topic, "business"), content.Style), nil

	case StepOptimization:
		generated := findStepData(results, StepContentGeneration)
		if generated == "" {
			return statusNote{Status: "No content to optimize"}, nil
		}
		return o.deps.Posts.Optimize(ctx, generated)

	case StepProfileAnalysis:
		in := prompt.ProfileInput{}
		if req.Profile != nil {
			in = *req.Profile
		}
		return o.deps.Profiles.Analyze(ctx, in)

	case StepCompetitorAnalysis:
		if len(req.Competitors) > 0 {
			limit := competitor.MaxPerWorkflow
			if len(req.Competitors) < limit {
				limit = len(req.Competitors)
			}
			analyses := make([]string, 0, limit)
			for _, c := range req.Competitors[:limit] {
				analysis, err := o.deps.Competitor.Analyze(ctx, c)
				if err != nil {
					return nil, err
				}
				analyses = append(analyses, analysis)
			}
			return analyses, nil
		}
		return o.deps.Competitor.ContentGaps(ctx, orFallback(content.Niche, "business"), nil)

	case StepContentGaps:
		names := make([]string, 0, len(req.Competitors))
		for _, c := range req.Competitors {
			names = append(names, c.Name)
		}
		return o.deps.Competitor.ContentGaps(ctx, orFallback(content.Niche, "business"), names)

	case StepStrategyDevelopment:
		gaps := findStepData(results, StepContentGaps)
		analysis := findStepData(results, StepCompetitorAnalysis)
		var profileJSON string
		if req.Profile != nil {
			if raw, err := json.Marshal(req.Profile); err == nil {
				profileJSON = string(raw)
			}
		}
		return o.deps.Competitor.Strategy(ctx, gaps, analysis, profileJSON)

	case StepTrendingTopics:
		return o.deps.Trends.Analyze(orFallback(content.Niche, "business")), nil

	case StepHookLibrary:
		return o.deps.Hooks.ByCategory(ctx,
			orFallback(content.Emotion, "curiosity"),
			orFallback(content.Niche, "general"),
			20)

	case StepTrendingAnalysis:
		return o.deps.Hashtags.Trending(ctx, orFallback(content.Niche, "business"), 20)

	case StepBannedDetection:
		if len(content.Hashtags) == 0 {
			return statusNote{Status: "No hashtags to check"}, nil
		}
		return o.deps.Hashtags.DetectBanned(ctx, content.Hashtags)

	case StepStrategyCreation:
		research := findStepData(results, StepHashtagResearch)
		return o.deps.Hashtags.Strategy(ctx, research)

	case StepRecommendations:
		serialized, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			serialized = []byte("{}")
		}
		return o.deps.Gen.Generate(ctx, prompt.Recommendations(string(serialized)))

	default:
		return unregisteredStep{Status: "Step not implemented", Step: step}, nil
	}
}
