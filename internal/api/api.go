// Package api exposes the HTTP surface: content generation, research
// actions, workflow orchestration, and operational endpoints.
package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/postforge/postforge/internal/config"
	"github.com/postforge/postforge/internal/image"
	"github.com/postforge/postforge/internal/orchestrator"
	"github.com/postforge/postforge/internal/parse"
	"github.com/postforge/postforge/internal/prompt"
	"github.com/postforge/postforge/internal/simdata"
	"github.com/postforge/postforge/internal/trend"
	"github.com/postforge/postforge/internal/video"
)

// PostService generates and optimizes drafts.
type PostService interface {
	Generate(ctx context.Context, in prompt.PostsInput) (parse.Result, error)
	Optimize(ctx context.Context, postContent string) (string, error)
}

// TrendService builds trend reports.
type TrendService interface {
	Analyze(topic string) trend.Analysis
	AIAnalysis(ctx context.Context, topic string) (string, error)
	HashtagData(topic string) []simdata.HashtagMetric
}

// ViralService runs viral research and seeded generation.
type ViralService interface {
	DeepAnalysis(ctx context.Context, topic, niche string) (string, error)
	AlgorithmFactors(ctx context.Context) (string, error)
	GeneratePosts(ctx context.Context, topic, analysis string, in prompt.PostsInput) (parse.Result, error)
}

// ImageService suggests visuals.
type ImageService interface {
	Suggestions(topic, style string) image.Suggestions
	Recommend(topic, postContent string) image.Recommendation
	AISuggestions(ctx context.Context, topic, postContent string) (string, error)
}

// HookService generates opening lines.
type HookService interface {
	Custom(ctx context.Context, topic, emotion, niche, style string) (string, error)
	ByCategory(ctx context.Context, category, niche string, limit int) (string, error)
	Variations(ctx context.Context, originalHook string, count int) (string, error)
	Effectiveness(ctx context.Context, hook string) (string, error)
	Industry(ctx context.Context, industry string, count int) (string, error)
}

// HashtagService researches and classifies hashtags.
type HashtagService interface {
	Research(ctx context.Context, topic, niche, contentType string) (string, error)
	Performance(ctx context.Context, hashtag string) (string, error)
	Trending(ctx context.Context, niche string, limit int) (string, error)
	DetectBanned(ctx context.Context, hashtags []string) (string, error)
	Strategy(ctx context.Context, hashtagData string) (string, error)
}

// ProfileService audits and rewrites profiles.
type ProfileService interface {
	Analyze(ctx context.Context, in prompt.ProfileInput) (string, error)
	Headlines(ctx context.Context, current, niche, targetAudience string) (string, error)
	About(ctx context.Context, in prompt.AboutInput) (string, error)
}

// CompetitorService performs competitive research.
type CompetitorService interface {
	Analyze(ctx context.Context, in prompt.CompetitorInput) (string, error)
	ContentGaps(ctx context.Context, niche string, competitorNames []string) (string, error)
	Compare(ctx context.Context, competitors []prompt.CompetitorInput, userNiche string) (string, error)
	ReverseEngineer(ctx context.Context, postContent string, metrics map[string]string) (string, error)
}

// VideoService produces video content guidance.
type VideoService interface {
	Trends(ctx context.Context, topic, niche string) (string, error)
	Caption(ctx context.Context, topic, title, description, niche string) (string, error)
	TrendingAudio(ctx context.Context, niche string) (string, error)
	VisualTrends(ctx context.Context, niche string) (string, error)
	Hooks(ctx context.Context, topic, niche string) (string, error)
	SuccessRate(ctx context.Context, in prompt.VideoInput) (string, error)
	Format(ctx context.Context, topic, niche, goal string) (string, error)
	CompleteAnalysis(ctx context.Context, in prompt.VideoInput) (video.Analysis, error)
}

// WorkflowRunner executes orchestrated workflows.
type WorkflowRunner interface {
	Execute(ctx context.Context, req orchestrator.Request) orchestrator.Response
	History() *orchestrator.History
}

// Deps wires the HTTP layer to the services.
type Deps struct {
	Server     config.ServerConfig
	Posts      PostService
	Trends     TrendService
	Viral      ViralService
	Images     ImageService
	Hooks      HookService
	Hashtags   HashtagService
	Profiles   ProfileService
	Competitor CompetitorService
	Videos     VideoService
	Workflows  WorkflowRunner
}

// NewHandler builds the router with all endpoints and middleware.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logging)
	r.Use(Metrics)
	r.Use(CORS(deps.Server.ClientURL))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)

		r.Post("/generate", handleGenerate(deps))
		r.Get("/trends", handleTrends(deps))
		r.Get("/trends/hashtags", handleTrendHashtags(deps))
		r.Post("/images", handleImages(deps))
		r.Post("/optimize", handleOptimize(deps))

		r.Post("/hooks/generate", handleHooks(deps))
		r.Post("/hashtag-research/research", handleHashtagResearch(deps))
		r.Post("/profile-optimize/optimize", handleProfileOptimize(deps))
		r.Post("/competitor-analysis/analyze", handleCompetitorAnalysis(deps))

		r.Post("/super-ai/orchestrate", handleOrchestrate(deps))
		r.Get("/super-ai/insights", handleInsights(deps))

		r.Route("/video", func(r chi.Router) {
			r.Post("/analyze", handleVideoAnalyze(deps))
			r.Post("/trends", handleVideoTrends(deps))
			r.Post("/caption", handleVideoCaption(deps))
			r.Post("/audio", handleVideoAudio(deps))
			r.Post("/visuals", handleVideoVisuals(deps))
			r.Post("/hooks", handleVideoHooks(deps))
			r.Post("/success-rate", handleVideoSuccessRate(deps))
			r.Post("/format", handleVideoFormat(deps))
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	if deps.Server.Production() {
		r.NotFound(staticHandler(deps.Server.StaticDir))
	} else {
		r.NotFound(handleNotFound)
	}

	return r
}

// staticHandler serves the built client, falling back to index.html for
// client-side routes. API paths still get the JSON 404.
func staticHandler(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) >= 5 && r.URL.Path[:5] == "/api/" {
			handleNotFound(w, r)
			return
		}
		if _, err := os.Stat(filepath.Join(dir, filepath.Clean(r.URL.Path))); err != nil {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		fs.ServeHTTP(w, r)
	}
}
