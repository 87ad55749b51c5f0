package prompt

import (
	"fmt"
	"strings"
)

// CompetitorInput describes one competitor for analysis.
type CompetitorInput struct {
	Name        string
	ProfileURL  string
	Niche       string
	Description string
	RecentPosts string
}

// CompetitorAnalysis builds the single-competitor intelligence prompt.
func CompetitorAnalysis(in CompetitorInput) string {
	return fmt.Sprintf(`You are an ELITE LinkedIn Competitor Intelligence Expert.

# COMPETITOR ANALYSIS REQUEST

**Competitor:** %s
**Profile URL:** %s
**Niche:** %s
**Description:** %s
**Recent Posts:** %s

# YOUR TASK: COMPREHENSIVE COMPETITOR ANALYSIS

## 1. PROFILE ANALYSIS
Positioning, value proposition, unique angle, credibility indicators,
and a profile strength score out of 100 with component breakdown.

## 2. CONTENT STRATEGY BREAKDOWN
Posting frequency, best times, consistency score, content themes with
percentages, content format split, average post length.

## 3. TOP-PERFORMING CONTENT ANALYSIS
Their most viral post (topic, format, hook, estimated engagement, why it
worked) and the top 5 content patterns with engagement scores.

## 4. ENGAGEMENT STRATEGY
CTA style, question usage, comment engagement, community tactics, and
estimated per-post metrics.

## 5. HASHTAG STRATEGY
Most used hashtags with counts, broad-vs-niche balance, placement.

## 6. AUDIENCE ANALYSIS
Primary/secondary audiences, pain points addressed, engagement patterns.

## 7. COMPETITIVE GAPS & OPPORTUNITIES
What they do well, what they miss, underserved topics.

## 8. DIFFERENTIATION STRATEGY
How to stand out, unique angles to explore, content topics to own.

## 9. CONTENT RECOMMENDATIONS
What to replicate (but better), what to avoid, a 90-day content plan.

## 10. COMPETITIVE ADVANTAGE MATRIX
Category-by-category competitor strength vs your opportunity.

## 11. ACTION ITEMS (priority ordered)
Immediate, short-term, and long-term actions with impact ratings.

Provide SPECIFIC, ACTIONABLE insights with real examples.`,
		orNotProvided(in.Name), orNotProvided(in.ProfileURL), orDefault(in.Niche, "General"),
		orNotProvided(in.Description), orNotProvided(in.RecentPosts))
}

// ContentGaps builds the gap-analysis prompt for a niche.
func ContentGaps(niche string, competitorNames []string) string {
	competitors := "top performers"
	if len(competitorNames) > 0 {
		competitors = strings.Join(competitorNames, ", ")
	}
	return fmt.Sprintf(`Analyze the %s space on LinkedIn.

Competitors to consider: %s

# CONTENT GAP ANALYSIS

## 1. OVERSATURATED TOPICS (Avoid These)
Topics that are over-covered, with reasons and engagement potential.

## 2. UNDERSERVED TOPICS (Opportunity!)
Topics with high demand but low supply, with engagement potential.

## 3. EMERGING TRENDS (Get Ahead)
Trends gaining momentum before they saturate.

## 4. AUDIENCE PAIN POINTS NOBODY ADDRESSES
Questions the audience keeps asking with no good answers.

## 5. FORMAT GAPS
Content formats underused in this niche.

## 6. POSITIONING OPPORTUNITIES
Angles and voices missing from the conversation.

Be SPECIFIC about each gap and why it is winnable.`, niche, competitors)
}

// CompareCompetitors builds the multi-competitor comparison prompt.
func CompareCompetitors(competitors []CompetitorInput, userNiche string) string {
	var list strings.Builder
	for i, c := range competitors {
		fmt.Fprintf(&list, "%d. %s (%s) - %s\n", i+1, orNotProvided(c.Name), orDefault(c.Niche, userNiche), orNotProvided(c.Description))
	}
	return fmt.Sprintf(`Compare these LinkedIn competitors operating in the %s space:

%s
Provide:

## HEAD-TO-HEAD COMPARISON
Strengths, weaknesses, content strategy and audience for each.

## RANKING
Order them by overall LinkedIn presence with reasoning.

## WHAT TO LEARN FROM EACH
One tactic worth borrowing per competitor.

## YOUR OPENING
Where none of them is strong - the gap you should claim.

Be SPECIFIC and comparative, not generic.`, orDefault(userNiche, "General"), list.String())
}

// ReverseEngineerPost builds the viral-post teardown prompt.
func ReverseEngineerPost(postContent string, postMetrics map[string]string) string {
	metrics := NotProvided
	if len(postMetrics) > 0 {
		var parts []string
		for k, v := range postMetrics {
			parts = append(parts, fmt.Sprintf("%s: %s", k, v))
		}
		metrics = strings.Join(parts, ", ")
	}
	return fmt.Sprintf(`Reverse-engineer why this LinkedIn post performed:

POST:
%s

REPORTED METRICS: %s

Break down:

## 1. HOOK DISSECTION
Why the first line works (or doesn't).

## 2. STRUCTURE MAP
Line-by-line role of each section (hook, proof, value, CTA).

## 3. PSYCHOLOGICAL TRIGGERS USED
Name each trigger and where it appears.

## 4. ALGORITHM FACTORS
What in the post drives dwell time, comments, and shares.

## 5. REPLICATION TEMPLATE
A reusable fill-in-the-blank template extracted from this post.

## 6. IMPROVEMENT OPPORTUNITIES
What would make it perform even better.

Be forensic and specific.`, postContent, metrics)
}

// Strategy builds the 90-day plan prompt from competitive intelligence.
func Strategy(contentGaps, competitorAnalysis, userProfile string) string {
	return fmt.Sprintf(`Based on this competitive intelligence, create a 90-day LinkedIn domination strategy:

**Content Gaps:**
%s

**Competitor Analysis:**
%s

**User Profile:**
%s

# 90-DAY DOMINATION STRATEGY

## PHASE 1: FOUNDATION (Days 1-30)
Week 1-2 profile optimization and week 3-4 content testing, each with
actions, goals, and success criteria.

## PHASE 2: GROWTH (Days 31-60)
Week 5-6 authority building and week 7-8 engagement acceleration, each
with actions, goals, and success criteria.

## PHASE 3: DOMINATION (Days 61-90)
Week 9-10 viral content push and week 11-12 network expansion, each with
actions, goals, and success criteria.

## CONTENT CALENDAR
Weekly content themes and posting schedule.

## KEY METRICS TO TRACK
Specific KPIs and targets.

Make it ACTIONABLE and SPECIFIC.`,
		orNotProvided(contentGaps), orNotProvided(competitorAnalysis), orNotProvided(userProfile))
}
