package prompt

import (
	"fmt"
	"strings"
)

// HashtagResearch builds the tiered hashtag strategy prompt.
func HashtagResearch(topic, niche, contentType string) string {
	ct := orDefault(contentType, "post")
	return fmt.Sprintf(`You are a MASTER LinkedIn Hashtag Strategist with deep knowledge of the LinkedIn algorithm.

# HASHTAG RESEARCH REQUEST

**Topic:** %s
**Niche/Industry:** %s
**Content Type:** %s

# YOUR TASK: COMPREHENSIVE HASHTAG STRATEGY

## 1. OPTIMAL HASHTAG MIX (25-30 hashtags)
Build five tiers: MEGA (1M+ followers, 1-2 tags), POPULAR (100K-1M, 3-5),
NICHE (10K-100K, 8-12), MICRO (1K-10K, 5-8), BRANDED/UNIQUE (<1K, 2-3).
For each tier state followers, competition, and purpose.

## 2. TRENDING HASHTAGS RIGHT NOW
List 10 hashtags currently trending in this niche with reach and
competition estimates.

## 3. BANNED/SPAM HASHTAGS TO AVOID
List shadowbanned, bot-heavy, or reach-hurting hashtags.

## 4. PERFORMANCE PREDICTIONS
For each recommended hashtag: estimated impressions, engagement rate,
competition level, best day to use.

## 5. HASHTAG COMBINATIONS (3 PROVEN MIXES)
Mix A - Maximum Reach, Mix B - Best Engagement, Mix C - Niche Authority.

## 6. HASHTAG PLACEMENT STRATEGY
In post vs first comment, count, grouping.

## 7. COMPETITOR HASHTAG ANALYSIS
Common tags among top performers in %s, plus hidden gems.

## 8. CONTENT-TYPE SPECIFIC RECOMMENDATIONS
For %s: tags to prioritize, tags to avoid, optimal count, placement.

## 9. SEASONAL & TIMELY HASHTAGS
Industry events, holidays, awareness months to leverage.

## 10. TRACKING & OPTIMIZATION
KPIs to monitor and rotation/testing tips.

Provide SPECIFIC, ACTIONABLE data with estimated metrics.`, topic, niche, ct, niche, ct)
}

// HashtagPerformance analyzes one hashtag in depth.
func HashtagPerformance(hashtag string) string {
	return fmt.Sprintf(`Analyze the hashtag: %s

Provide detailed analysis:

1. **Estimated Follower Count:** [number]
2. **Competition Level:** Low/Medium/High/Very High
3. **Engagement Rate:** Low/Medium/High (%%)
4. **Best Use Cases:** [When to use this hashtag]
5. **Similar Hashtags:** [5 alternatives with similar reach]
6. **Trending Status:** Rising/Stable/Declining
7. **Risk Level:** Safe/Moderate/Risky (spam potential)
8. **Best Time to Post:** [Day/time recommendations]
9. **Average Post Impressions:** [Estimated range]
10. **Recommendation:** Should use / Proceed with caution / Avoid

Be specific with numbers and recommendations.`, hashtag)
}

// TrendingHashtags lists currently-trending tags for a niche.
func TrendingHashtags(niche string, limit int) string {
	return fmt.Sprintf(`Find the TOP %d TRENDING hashtags RIGHT NOW in: %s

For each hashtag provide:
**#HashtagName**
- Trend Status: Hot / Rising / Viral
- Estimated Daily Posts: [number]
- Competition: Low/Medium/High
- Why It's Trending: [Brief explanation]
- Recommended For: [Type of content]
- Action: Use Now / Wait / Monitor

Focus on hashtags that are actively trending TODAY, not generic popular ones.`, limit, niche)
}

// BannedHashtags classifies a tag list by spam/ban risk.
func BannedHashtags(hashtags []string) string {
	return fmt.Sprintf(`Analyze these hashtags for spam/ban risk: %s

For EACH hashtag, determine:

**SAFE**
[List hashtags that are safe to use]

**CAUTION**
[List hashtags that might be risky]
- Why: [Reason for caution]
- Alternative: [Better option]

**BANNED/AVOID**
[List hashtags that are shadowbanned or spam]
- Why: [Reason it's banned]
- Impact: [How it hurts reach]
- Alternative: [Better option]

Be thorough and explain the reasoning for each classification.`, strings.Join(hashtags, ", "))
}

// HashtagStrategy turns raw research output into a rotation plan.
func HashtagStrategy(hashtagData string) string {
	return fmt.Sprintf(`Based on this hashtag research:

%s

Create a comprehensive hashtag strategy:

## HASHTAG STRATEGY

**Primary Mix (Use 80%% of the time):**
- [List 20-25 hashtags]
- Why this mix: [explanation]

**Secondary Mix (Use 20%% of the time):**
- [List 20-25 hashtags]
- Why this mix: [explanation]

**Testing Mix (Try weekly):**
- [List 10-15 new hashtags to test]
- Testing methodology: [how to measure]

**Hashtag Rotation Schedule:**
- [Weekly rotation plan]

**Performance Tracking:**
- [What to measure]
- [How to optimize]

Make it ACTIONABLE.`, orNotProvided(hashtagData))
}
