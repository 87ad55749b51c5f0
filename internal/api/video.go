package api

import (
	"net/http"

	"github.com/postforge/postforge/internal/prompt"
)

type videoRequest struct {
	Topic       string `json:"topic"`
	Title       string `json:"title"`
	Niche       string `json:"niche"`
	Description string `json:"description"`
	Format      string `json:"format"`
	Duration    string `json:"duration"`
	Style       string `json:"style"`
	Goal        string `json:"goal"`
	HasHook     bool   `json:"hasHook"`
	HasCaption  bool   `json:"hasCaption"`
}

func (v videoRequest) input() prompt.VideoInput {
	return prompt.VideoInput{
		Topic:       v.Topic,
		Title:       v.Title,
		Niche:       v.Niche,
		Description: v.Description,
		Format:      v.Format,
		Duration:    v.Duration,
		Goal:        v.Goal,
		HasHook:     v.HasHook,
		HasCaption:  v.HasCaption,
	}
}

// requireVideoFields decodes the body and enforces the given required
// fields, writing the 400 response itself on failure.
func requireVideoFields(w http.ResponseWriter, r *http.Request, req *videoRequest, needTopic bool, missing string) bool {
	if !decodeBody(w, r, req) {
		return false
	}
	if (needTopic && req.Topic == "") || req.Niche == "" {
		actionError(w, http.StatusBadRequest, "%s", missing)
		return false
	}
	return true
}

// handleVideoAnalyze runs the complete video pipeline: ready-to-post
// script plus video-specific hashtag research.
func handleVideoAnalyze(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req videoRequest
		if !requireVideoFields(w, r, &req, true, "Topic and niche are required for video analysis") {
			return
		}
		analysis, err := deps.Videos.CompleteAnalysis(r.Context(), req.input())
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		dataOK(w, analysis)
	}
}

func handleVideoTrends(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req videoRequest
		if !requireVideoFields(w, r, &req, true, "Topic and niche are required") {
			return
		}
		trends, err := deps.Videos.Trends(r.Context(), req.Topic, req.Niche)
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		dataOK(w, map[string]any{"trends": trends})
	}
}

func handleVideoCaption(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req videoRequest
		if !requireVideoFields(w, r, &req, true, "Topic and niche are required") {
			return
		}
		captions, err := deps.Videos.Caption(r.Context(), req.Topic, req.Title, req.Description, req.Niche)
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		dataOK(w, map[string]any{"captions": captions})
	}
}

func handleVideoAudio(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req videoRequest
		if !requireVideoFields(w, r, &req, false, "Niche is required") {
			return
		}
		audio, err := deps.Videos.TrendingAudio(r.Context(), req.Niche)
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		dataOK(w, map[string]any{"audio": audio})
	}
}

func handleVideoVisuals(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req videoRequest
		if !requireVideoFields(w, r, &req, false, "Niche is required") {
			return
		}
		visuals, err := deps.Videos.VisualTrends(r.Context(), req.Niche)
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		dataOK(w, map[string]any{"visuals": visuals})
	}
}

func handleVideoHooks(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req videoRequest
		if !requireVideoFields(w, r, &req, true, "Topic and niche are required") {
			return
		}
		hooks, err := deps.Videos.Hooks(r.Context(), req.Topic, req.Niche)
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		dataOK(w, map[string]any{"hooks": hooks})
	}
}

func handleVideoSuccessRate(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req videoRequest
		if !requireVideoFields(w, r, &req, true, "Topic and niche are required") {
			return
		}
		rate, err := deps.Videos.SuccessRate(r.Context(), req.input())
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		dataOK(w, map[string]any{"successRate": rate})
	}
}

func handleVideoFormat(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req videoRequest
		if !requireVideoFields(w, r, &req, true, "Topic and niche are required") {
			return
		}
		suggestion, err := deps.Videos.Format(r.Context(), req.Topic, req.Niche, req.Goal)
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		dataOK(w, map[string]any{"formatSuggestion": suggestion})
	}
}
