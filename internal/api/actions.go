package api

import (
	"net/http"

	"github.com/postforge/postforge/internal/hooks"
	"github.com/postforge/postforge/internal/prompt"
)

type hooksRequest struct {
	Action   string `json:"action"`
	Topic    string `json:"topic"`
	Emotion  string `json:"emotion"`
	Niche    string `json:"niche"`
	Style    string `json:"style"`
	Category string `json:"category"`
	Hook     string `json:"hook"`
	Industry string `json:"industry"`
	Limit    int    `json:"limit"`
	Count    int    `json:"count"`
}

// handleHooks dispatches the hook actions: custom, category, variations,
// analyze, industry, and templates.
func handleHooks(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req hooksRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Action == "" {
			req.Action = "custom"
		}
		if req.Style == "" {
			req.Style = "professional"
		}

		ctx := r.Context()
		var (
			result any
			err    error
		)
		switch req.Action {
		case "category":
			if req.Category == "" {
				actionError(w, http.StatusBadRequest, "Category required (curiosity, shock, value, storytelling, fomo, authority, question, contrarian, urgency)")
				return
			}
			result, err = deps.Hooks.ByCategory(ctx, req.Category, req.Niche, req.Limit)

		case "variations":
			if req.Hook == "" {
				actionError(w, http.StatusBadRequest, "Original hook required for variations")
				return
			}
			result, err = deps.Hooks.Variations(ctx, req.Hook, req.Count)

		case "analyze":
			if req.Hook == "" {
				actionError(w, http.StatusBadRequest, "Hook required for analysis")
				return
			}
			result, err = deps.Hooks.Effectiveness(ctx, req.Hook)

		case "industry":
			if req.Industry == "" {
				actionError(w, http.StatusBadRequest, "Industry required for industry-specific hooks")
				return
			}
			result, err = deps.Hooks.Industry(ctx, req.Industry, req.Count)

		case "templates":
			result = map[string]any{
				"templates":  hooks.AllTemplates(),
				"categories": hooks.Categories(),
				"usage":      "Replace placeholders like ${topic}, ${number}, etc. with your content",
			}

		default: // custom
			if req.Topic == "" || req.Emotion == "" || req.Niche == "" {
				actionError(w, http.StatusBadRequest, "Topic, emotion, and niche are required for custom hook generation")
				return
			}
			result, err = deps.Hooks.Custom(ctx, req.Topic, req.Emotion, req.Niche, req.Style)
		}
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		actionOK(w, req.Action, result)
	}
}

type hashtagRequest struct {
	Action      string   `json:"action"`
	Topic       string   `json:"topic"`
	Niche       string   `json:"niche"`
	ContentType string   `json:"contentType"`
	Hashtag     string   `json:"hashtag"`
	Hashtags    []string `json:"hashtags"`
	Limit       int      `json:"limit"`
}

// handleHashtagResearch dispatches the hashtag actions: research,
// analyze, trending, and banned.
func handleHashtagResearch(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req hashtagRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Action == "" {
			req.Action = "research"
		}
		if req.ContentType == "" {
			req.ContentType = "post"
		}

		ctx := r.Context()
		var (
			result any
			err    error
		)
		switch req.Action {
		case "analyze":
			if req.Hashtag == "" {
				actionError(w, http.StatusBadRequest, "Hashtag required for analysis")
				return
			}
			result, err = deps.Hashtags.Performance(ctx, req.Hashtag)

		case "trending":
			niche := req.Niche
			if niche == "" {
				niche = "business"
			}
			limit := req.Limit
			if limit <= 0 {
				limit = 20
			}
			result, err = deps.Hashtags.Trending(ctx, niche, limit)

		case "banned":
			if len(req.Hashtags) == 0 {
				actionError(w, http.StatusBadRequest, "Hashtag list required for banned detection")
				return
			}
			result, err = deps.Hashtags.DetectBanned(ctx, req.Hashtags)

		default: // research
			if req.Topic == "" || req.Niche == "" {
				actionError(w, http.StatusBadRequest, "Topic and niche are required for hashtag research")
				return
			}
			result, err = deps.Hashtags.Research(ctx, req.Topic, req.Niche, req.ContentType)
		}
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		actionOK(w, req.Action, result)
	}
}

type profileRequest struct {
	Action         string `json:"action"`
	Headline       string `json:"headline"`
	About          string `json:"about"`
	Experience     string `json:"experience"`
	Skills         string `json:"skills"`
	Niche          string `json:"niche"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Achievements   string `json:"achievements"`
	Goals          string `json:"goals"`
	TargetAudience string `json:"targetAudience"`
}

// handleProfileOptimize dispatches the profile actions: analyze,
// headline, and about.
func handleProfileOptimize(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Action == "" {
			req.Action = "analyze"
		}

		ctx := r.Context()
		var (
			result any
			err    error
		)
		switch req.Action {
		case "headline":
			result, err = deps.Profiles.Headlines(ctx, req.Headline, req.Niche, req.TargetAudience)

		case "about":
			result, err = deps.Profiles.About(ctx, prompt.AboutInput{
				Name:         req.Name,
				Role:         req.Role,
				Niche:        req.Niche,
				Achievements: req.Achievements,
				Skills:       req.Skills,
				Goals:        req.Goals,
			})

		default: // analyze
			result, err = deps.Profiles.Analyze(ctx, prompt.ProfileInput{
				Headline:   req.Headline,
				About:      req.About,
				Experience: req.Experience,
				Skills:     req.Skills,
				Niche:      req.Niche,
			})
		}
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		actionOK(w, req.Action, result)
	}
}

type competitorPayload struct {
	Name        string `json:"name"`
	ProfileURL  string `json:"profileUrl"`
	Niche       string `json:"niche"`
	Description string `json:"description"`
	RecentPosts string `json:"recentPosts"`
}

func (c competitorPayload) input() prompt.CompetitorInput {
	return prompt.CompetitorInput{
		Name:        c.Name,
		ProfileURL:  c.ProfileURL,
		Niche:       c.Niche,
		Description: c.Description,
		RecentPosts: c.RecentPosts,
	}
}

type competitorRequest struct {
	Action          string              `json:"action"`
	Competitor      *competitorPayload  `json:"competitor"`
	Competitors     []competitorPayload `json:"competitors"`
	Niche           string              `json:"niche"`
	CompetitorNames []string            `json:"competitorNames"`
	UserProfile     *struct {
		Niche string `json:"niche"`
	} `json:"userProfile"`
	PostContent string            `json:"postContent"`
	PostMetrics map[string]string `json:"postMetrics"`
}

// handleCompetitorAnalysis dispatches the competitor actions: single,
// gaps, compare, and reverse-engineer.
func handleCompetitorAnalysis(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req competitorRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Action == "" {
			req.Action = "single"
		}

		ctx := r.Context()
		var (
			result any
			err    error
		)
		switch req.Action {
		case "single":
			if req.Competitor == nil {
				actionError(w, http.StatusBadRequest, "Competitor information required (name, niche, profileUrl, etc.)")
				return
			}
			result, err = deps.Competitor.Analyze(ctx, req.Competitor.input())

		case "gaps":
			if req.Niche == "" {
				actionError(w, http.StatusBadRequest, "Niche required for content gap analysis")
				return
			}
			result, err = deps.Competitor.ContentGaps(ctx, req.Niche, req.CompetitorNames)

		case "compare":
			if len(req.Competitors) == 0 {
				actionError(w, http.StatusBadRequest, "Competitors list required for comparison")
				return
			}
			userNiche := req.Niche
			if req.UserProfile != nil && req.UserProfile.Niche != "" {
				userNiche = req.UserProfile.Niche
			}
			if userNiche == "" {
				userNiche = "general"
			}
			inputs := make([]prompt.CompetitorInput, len(req.Competitors))
			for i, c := range req.Competitors {
				inputs[i] = c.input()
			}
			result, err = deps.Competitor.Compare(ctx, inputs, userNiche)

		case "reverse-engineer":
			if req.PostContent == "" {
				actionError(w, http.StatusBadRequest, "Post content required for reverse engineering")
				return
			}
			result, err = deps.Competitor.ReverseEngineer(ctx, req.PostContent, req.PostMetrics)

		default:
			actionError(w, http.StatusBadRequest, "Invalid action. Use: single, gaps, compare, or reverse-engineer")
			return
		}
		if err != nil {
			actionError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		actionOK(w, req.Action, result)
	}
}
