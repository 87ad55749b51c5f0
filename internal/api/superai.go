package api

import (
	"net/http"
	"time"

	"github.com/postforge/postforge/internal/orchestrator"
	"github.com/postforge/postforge/internal/prompt"
)

type orchestrateRequest struct {
	Action      string                   `json:"action"`
	UserProfile *profileRequest          `json:"userProfile"`
	ContentData orchestrator.ContentData `json:"contentData"`
	Competitors []competitorPayload      `json:"competitors"`
}

// handleOrchestrate classifies the request into a workflow and runs it.
func handleOrchestrate(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req orchestrateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		oreq := orchestrator.Request{
			Action:  req.Action,
			Content: req.ContentData,
		}
		if req.UserProfile != nil {
			oreq.Profile = &prompt.ProfileInput{
				Headline:   req.UserProfile.Headline,
				About:      req.UserProfile.About,
				Experience: req.UserProfile.Experience,
				Skills:     req.UserProfile.Skills,
				Niche:      req.UserProfile.Niche,
			}
		}
		for _, c := range req.Competitors {
			oreq.Competitors = append(oreq.Competitors, c.input())
		}

		resp := deps.Workflows.Execute(r.Context(), oreq)
		writeJSON(w, http.StatusOK, map[string]any{
			"success":         true,
			"workflow":        resp.Workflow,
			"results":         resp.Results,
			"recommendations": resp.Recommendations,
			"nextSteps":       resp.NextSteps,
			"timestamp":       time.Now().UTC(),
		})
	}
}

// handleInsights reports aggregate stats from the execution history.
func handleInsights(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"insights":  deps.Workflows.History().Insights(),
			"timestamp": time.Now().UTC(),
		})
	}
}
