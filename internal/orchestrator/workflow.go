package orchestrator

// Step identifies one unit of orchestrated work. The set is closed;
// dispatch happens over these constants, never over raw provider text.
type Step string

const (
	StepProfileCheck        Step = "profile-check"
	StepViralAnalysis       Step = "viral-analysis"
	StepHookGeneration      Step = "hook-generation"
	StepContentGeneration   Step = "content-generation"
	StepHashtagResearch     Step = "hashtag-research"
	StepImageSuggestions    Step = "image-suggestions"
	StepOptimization        Step = "optimization"
	StepProfileAnalysis     Step = "profile-analysis"
	StepCompetitorAnalysis  Step = "competitor-analysis"
	StepRecommendations     Step = "recommendations"
	StepContentGaps         Step = "content-gaps"
	StepStrategyDevelopment Step = "strategy-development"
	StepTrendingTopics      Step = "trending-topics"
	StepHookLibrary         Step = "hook-library"
	StepTrendingAnalysis    Step = "trending-analysis"
	StepBannedDetection     Step = "banned-detection"
	StepStrategyCreation    Step = "strategy-creation"
)

// Workflow is a named, fixed, ordered step list for one user intent.
type Workflow struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Steps    []Step `json:"steps"`
	Priority string `json:"priority"`
}

// DefaultWorkflowKey is selected whenever classification cannot produce
// a valid key.
const DefaultWorkflowKey = "full-content-creation"

var workflows = map[string]Workflow{
	"full-content-creation": {
		Key:  "full-content-creation",
		Name: "Full Content Creation with Viral Optimization",
		Steps: []Step{
			StepProfileCheck,
			StepViralAnalysis,
			StepHookGeneration,
			StepContentGeneration,
			StepHashtagResearch,
			StepImageSuggestions,
			StepOptimization,
		},
		Priority: "high",
	},
	"quick-post": {
		Key:  "quick-post",
		Name: "Quick Post Generation",
		Steps: []Step{
			StepHookGeneration,
			StepContentGeneration,
			StepHashtagResearch,
		},
		Priority: "medium",
	},
	"profile-optimization": {
		Key:  "profile-optimization",
		Name: "Profile Optimization",
		Steps: []Step{
			StepProfileAnalysis,
			StepCompetitorAnalysis,
			StepRecommendations,
		},
		Priority: "high",
	},
	"competitive-research": {
		Key:  "competitive-research",
		Name: "Competitive Intelligence",
		Steps: []Step{
			StepCompetitorAnalysis,
			StepContentGaps,
			StepStrategyDevelopment,
		},
		Priority: "medium",
	},
	"viral-research": {
		Key:  "viral-research",
		Name: "Deep Viral Content Research",
		Steps: []Step{
			StepViralAnalysis,
			StepTrendingTopics,
			StepHookLibrary,
			StepContentGeneration,
		},
		Priority: "high",
	},
	"hashtag-strategy": {
		Key:  "hashtag-strategy",
		Name: "Hashtag Strategy Development",
		Steps: []Step{
			StepHashtagResearch,
			StepTrendingAnalysis,
			StepBannedDetection,
			StepStrategyCreation,
		},
		Priority: "low",
	},
}

// WorkflowByKey looks up a workflow definition.
func WorkflowByKey(key string) (Workflow, bool) {
	w, ok := workflows[key]
	return w, ok
}

// WorkflowKeys lists the valid workflow identifiers.
func WorkflowKeys() []string {
	return []string{
		"full-content-creation",
		"quick-post",
		"profile-optimization",
		"competitive-research",
		"viral-research",
		"hashtag-strategy",
	}
}
