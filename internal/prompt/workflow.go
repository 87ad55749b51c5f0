package prompt

import "fmt"

// ClassifyWorkflow builds the intent classification prompt. The model is
// told to return only the workflow key; callers still sanitize and
// validate the answer.
func ClassifyWorkflow(action, contentData, profileStatus string) string {
	return fmt.Sprintf(`Analyze this LinkedIn automation request and determine the best workflow:

**Action Requested:** %s
**Content Data:** %s
**User Profile Completeness:** %s

**Available Workflows:**
1. full-content-creation - Complete viral post with all features (use when user wants maximum viral potential)
2. quick-post - Fast post generation (use when user wants speed over depth)
3. profile-optimization - Optimize LinkedIn profile (use when action mentions profile, headline, about, optimization)
4. competitive-research - Analyze competitors (use when action mentions competitors, competition, analysis)
5. viral-research - Deep viral analysis (use when action mentions trending, viral, research)
6. hashtag-strategy - Hashtag research only (use when action focuses on hashtags)

**Decision Criteria:**
- If user mentions "profile", "headline", "about" -> profile-optimization
- If user mentions "competitor", "competition", "analyze others" -> competitive-research
- If user mentions "viral", "trending", "research" -> viral-research
- If user mentions "hashtags" only -> hashtag-strategy
- If user wants "quick" or "fast" -> quick-post
- If user wants comprehensive content -> full-content-creation
- Default -> full-content-creation

Return ONLY the workflow key (e.g., "full-content-creation"), nothing else.`,
		orDefault(action, "generate content"), orDefault(contentData, "{}"), profileStatus)
}

// Recommendations builds the post-workflow recommendations prompt from
// serialized step results.
func Recommendations(results string) string {
	return fmt.Sprintf(`Analyze these workflow results and provide actionable recommendations:

%s

# RECOMMENDATIONS

## IMMEDIATE ACTIONS (Do Today)
Three actions, each with an Impact (High/Medium/Low) and Effort
(Low/Medium/High) rating.

## SHORT-TERM IMPROVEMENTS (This Week)
Three actions with the same ratings.

## LONG-TERM STRATEGY (This Month)
Three actions with the same ratings.

## WARNINGS & PITFALLS
What to avoid and common mistakes.

## OPTIMIZATION OPPORTUNITIES
Where to improve and what to test.

Be SPECIFIC and ACTIONABLE.`, results)
}
