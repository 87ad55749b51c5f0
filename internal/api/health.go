package api

import (
	"net/http"
	"time"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "online",
		"message": "LinkedIn Viral Automation API - ULTIMATE EDITION",
		"version": "2.0.0",
		"features": []string{
			"Viral Content Generation",
			"Deep Viral Analysis",
			"Profile Optimization",
			"Hashtag Research",
			"Hook Library (100+ templates)",
			"Competitor Analysis",
			"Super AI Manager",
		},
		"endpoints": map[string]string{
			"generate":           "/api/generate",
			"trends":             "/api/trends",
			"images":             "/api/images",
			"optimize":           "/api/optimize",
			"profileOptimize":    "/api/profile-optimize/optimize",
			"hashtagResearch":    "/api/hashtag-research/research",
			"hooks":              "/api/hooks/generate",
			"competitorAnalysis": "/api/competitor-analysis/analyze",
			"superAI":            "/api/super-ai/orchestrate",
		},
		"timestamp": time.Now().UTC(),
	})
}
