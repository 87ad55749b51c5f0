package api

import (
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/postforge/postforge/internal/image"
	"github.com/postforge/postforge/internal/linkedrules"
	"github.com/postforge/postforge/internal/prompt"
	"github.com/postforge/postforge/internal/simdata"
	"github.com/postforge/postforge/internal/trend"
)

type generateRequest struct {
	Topic  string `json:"topic"`
	Style  string `json:"style"`
	Goal   string `json:"goal"`
	Link   string `json:"link"`
	Assets string `json:"assets"`
	Niche  string `json:"niche"`
}

// handleGenerate runs the full viral pipeline: deep analysis, algorithm
// factors, and trend research in parallel, then seeded post generation
// and image guidance.
func handleGenerate(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Topic == "" {
			httpError(w, http.StatusBadRequest, "Validation Error", "Topic is required")
			return
		}

		ctx := r.Context()
		var (
			deepAnalysis     string
			algorithmFactors string
			trendAnalysis    string
			trendData        trend.Analysis
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			deepAnalysis, err = deps.Viral.DeepAnalysis(gctx, req.Topic, req.Niche)
			return err
		})
		g.Go(func() (err error) {
			algorithmFactors, err = deps.Viral.AlgorithmFactors(gctx)
			return err
		})
		g.Go(func() (err error) {
			trendAnalysis, err = deps.Trends.AIAnalysis(gctx, req.Topic)
			return err
		})
		g.Go(func() error {
			trendData = deps.Trends.Analyze(req.Topic)
			return nil
		})
		if err := g.Wait(); err != nil {
			httpError(w, http.StatusInternalServerError, "Generation Failed", "%v", err)
			return
		}

		style := req.Style
		if style == "" {
			style = "Professional + Viral"
		}
		goal := req.Goal
		if goal == "" {
			goal = "Maximize engagement and virality"
		}
		posts, err := deps.Viral.GeneratePosts(ctx, req.Topic, deepAnalysis, prompt.PostsInput{
			Topic:  req.Topic,
			Style:  style,
			Goal:   goal,
			Link:   req.Link,
			Assets: req.Assets,
		})
		if err != nil {
			httpError(w, http.StatusInternalServerError, "Generation Failed", "%v", err)
			return
		}

		suggestions := deps.Images.Suggestions(req.Topic, req.Style)
		recommendation := deps.Images.Recommend(req.Topic, posts.Raw)

		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"timestamp": time.Now().UTC(),
			"input":     req,
			"viralAnalysis": map[string]any{
				"deepAnalysis":      deepAnalysis,
				"algorithmInsights": algorithmFactors,
				"researchBased":     true,
			},
			"trends": map[string]any{
				"analysis":       trendAnalysis,
				"data":           trendData,
				"viralPotential": trendData.ViralPotential,
			},
			"posts": map[string]any{
				"viralOptimized":   posts,
				"bestPostingTimes": trendData.BestPostingTimes,
				"guaranteedViral":  true,
			},
			"images": map[string]any{
				"suggestions":    suggestions,
				"recommendation": recommendation,
			},
			"meta": map[string]any{
				"recommendedHashtags": topHashtags(trendData.RecommendedHashtags, 7),
				"optimizationTips": []string{
					"99% viral probability posts generated",
					"Deep research of trending patterns",
					"Algorithm-optimized structure",
					"Niche-specific viral triggers",
					"Engagement velocity optimized",
					"Dwell time maximized (30+ seconds)",
					"Psychology-backed hooks",
				},
			},
		})
	}
}

func topHashtags(metrics []simdata.HashtagMetric, n int) []simdata.HashtagMetric {
	if len(metrics) > n {
		return metrics[:n]
	}
	return metrics
}

func handleTrends(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := r.URL.Query().Get("topic")
		if topic == "" {
			httpError(w, http.StatusBadRequest, "Validation Error", "Topic query parameter is required")
			return
		}

		var (
			trendData  trend.Analysis
			aiAnalysis string
		)
		g, gctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			trendData = deps.Trends.Analyze(topic)
			return nil
		})
		g.Go(func() (err error) {
			aiAnalysis, err = deps.Trends.AIAnalysis(gctx, topic)
			return err
		})
		if err := g.Wait(); err != nil {
			httpError(w, http.StatusInternalServerError, "Failed to fetch trends", "%v", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"timestamp":  time.Now().UTC(),
			"topic":      topic,
			"trends":     trendData,
			"aiAnalysis": aiAnalysis,
			"recommendations": map[string]any{
				"bestHashtags":   topHashtags(trendData.RecommendedHashtags, 7),
				"viralPotential": trendData.ViralPotential,
				"postingTimes":   trendData.BestPostingTimes,
			},
		})
	}
}

func handleTrendHashtags(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := r.URL.Query().Get("topic")
		if topic == "" {
			httpError(w, http.StatusBadRequest, "Validation Error", "Topic query parameter is required")
			return
		}
		data := deps.Trends.HashtagData(topic)
		writeJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			"timestamp":   time.Now().UTC(),
			"topic":       topic,
			"hashtags":    data,
			"recommended": topHashtags(data, 7),
		})
	}
}

type imagesRequest struct {
	Topic       string `json:"topic"`
	Style       string `json:"style"`
	PostContent string `json:"postContent"`
}

func handleImages(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req imagesRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Topic == "" {
			httpError(w, http.StatusBadRequest, "Validation Error", "Topic is required")
			return
		}

		var (
			suggestions    image.Suggestions
			recommendation image.Recommendation
			aiSuggestions  string
		)
		g, gctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			suggestions = deps.Images.Suggestions(req.Topic, req.Style)
			return nil
		})
		g.Go(func() error {
			recommendation = deps.Images.Recommend(req.Topic, req.PostContent)
			return nil
		})
		g.Go(func() (err error) {
			content := req.PostContent
			if content == "" {
				content = req.Topic
			}
			aiSuggestions, err = deps.Images.AISuggestions(gctx, req.Topic, content)
			return err
		})
		if err := g.Wait(); err != nil {
			httpError(w, http.StatusInternalServerError, "Failed to generate image suggestions", "%v", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":        true,
			"timestamp":      time.Now().UTC(),
			"topic":          req.Topic,
			"suggestions":    suggestions,
			"recommendation": recommendation,
			"aiSuggestions":  aiSuggestions,
			"quickLinks": map[string]string{
				"pexels":   suggestions.Sources[0].URL,
				"unsplash": suggestions.Sources[1].URL,
				"lexica":   suggestions.Sources[2].URL,
			},
		})
	}
}

type optimizeRequest struct {
	PostContent string `json:"postContent"`
}

func handleOptimize(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req optimizeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.PostContent == "" {
			httpError(w, http.StatusBadRequest, "Validation Error", "Post content is required")
			return
		}

		optimized, err := deps.Posts.Optimize(r.Context(), req.PostContent)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "Failed to optimize post", "%v", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"timestamp": time.Now().UTC(),
			"original":  req.PostContent,
			"optimized": optimized,
			"rules":     linkedrules.OptimizeChecklist(),
		})
	}
}
