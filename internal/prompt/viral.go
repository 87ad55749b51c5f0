package prompt

import (
	"fmt"
	"strings"
)

// DeepViralAnalysis builds the multi-step viral research prompt.
func DeepViralAnalysis(topic, niche string) string {
	n := orDefault(niche, "General")
	return fmt.Sprintf(`You are an ELITE LinkedIn Viral Content Researcher with access to extensive data analysis.

TOPIC: %s
NICHE: %s

Conduct a COMPREHENSIVE viral analysis following these steps:

# STEP 1: GLOBAL TRENDING ANALYSIS
Analyze the TOP 10 most viral LinkedIn posts globally in the last 30 days:
- Identify common patterns in hooks
- Engagement triggers used
- Content structure analysis
- Timing patterns
- Hashtag strategies

# STEP 2: NICHE-SPECIFIC VIRAL PATTERNS
Analyze TOP 5 viral posts specifically in the "%s" niche:
- What made each post viral?
- Unique angles that worked
- Audience pain points addressed
- Emotional triggers used
- Call-to-action strategies

# STEP 3: LINKEDIN ALGORITHM DEEP DIVE (2025)
Cover dwell time optimization (target: 30+ seconds), engagement velocity
in the first hour, content format preferences, share triggers, and the
weighted scoring factors (author authority, early engagement, dwell time,
comment quality, share rate, profile views generated).

# STEP 4: VIRAL POST BLUEPRINT
Create a viral formula for "%s": hook structure, opening line pattern,
body architecture, emotional arc, CTA engineering, hashtag formula,
posting timing.

# STEP 5: PSYCHOLOGICAL TRIGGERS
Identify and explain triggers to use: curiosity gap, social proof, FOMO,
contrarian views, pattern interrupts, authority positioning,
vulnerability/authenticity.

# STEP 6: PREDICTED ENGAGEMENT METRICS
Predict expected reach, engagement rate, comments, shares, profile views,
and viral probability (0-100%%).

Provide ACTIONABLE, DATA-DRIVEN insights. Be specific with examples, numbers, and exact formulas.`, topic, n, n, topic)
}

// ViralPost builds the post-generation prompt seeded with prior analysis.
// Output must carry the **POST A/B/C** markers.
func ViralPost(topic, viralAnalysis string, in PostsInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are an ELITE LinkedIn Viral Content Creator. Using the deep analysis provided, create posts with maximum viral probability.

TOPIC: %s
STYLE: %s
GOAL: %s
`, topic, orNotProvided(in.Style), orNotProvided(in.Goal))
	b.WriteString(optionalLine("LINK TO INCLUDE", in.Link))
	b.WriteString(optionalLine("ADDITIONAL CONTEXT", in.Assets))
	fmt.Fprintf(&b, `
VIRAL ANALYSIS INSIGHTS:
%s

MANDATORY REQUIREMENTS:
1. HOOK (line 1): maximum 5-7 words, pattern interrupt, power words.
2. OPENING (lines 2-3): amplify the hook, add social proof or a stat.
3. BODY: line breaks every 1-2 lines, "->" for lists, micro-value per line.
4. TRANSITION: bridge to conclusion, create anticipation.
5. VALUE BOMB: core insight, quotable statement.
6. CTA: engagement trigger question with multiple options.
7. HASHTAGS: 5-7, mixing 2 broad + 3 niche + 2 trending.

PSYCHOLOGICAL TRIGGERS TO INCLUDE: curiosity gap, social proof,
contrarian take, FOMO, pattern interrupt.

ALGORITHM OPTIMIZATION: 30+ second dwell time, comment-worthy debatable
point, share-worthy quotable insight, save-worthy tactical value,
mobile-optimized short lines.
`, orNotProvided(viralAnalysis))
	if strings.TrimSpace(in.Link) != "" {
		fmt.Fprintf(&b, "\nLINK INTEGRATION:\nNaturally mention %s. Don't make it salesy, weave into the story.\n", in.Link)
	}
	b.WriteString(`
OUTPUT FORMAT:
Provide 3 VIRAL POST VARIATIONS labeled exactly as:

**POST A** - CURIOSITY BOMB:
[Hook creates massive curiosity]

**POST B** - CONTRARIAN TRUTH:
[Challenges popular belief]

**POST C** - VALUE EXPLOSION:
[Tactical, actionable, immediate value]

For EACH post include the predicted engagement rate, viral probability
score, key trigger used, and why it will work. Make each post READY TO
COPY-PASTE. No placeholders, no generic content.`)
	return b.String()
}

// AlgorithmFactors builds the standalone algorithm breakdown prompt.
func AlgorithmFactors() string {
	return `As a LinkedIn Algorithm Expert, provide a RIGOROUS, DATA-DRIVEN analysis of LinkedIn's 2025 algorithm.

# COMPREHENSIVE ALGORITHM BREAKDOWN:

## 1. RANKING FACTORS (weighted by importance)
Author authority score, early engagement velocity, dwell time metrics,
comment quality score, share rate, click-through rate, profile view
generation, network relevance, content freshness, engagement consistency.

## 2. ENGAGEMENT VELOCITY ANALYSIS
First 15 minutes, first hour, first 6 hours, decay patterns.

## 3. CONTENT FORMAT PERFORMANCE (2025 data)
Rank text, single image, multiple image, carousel, video, document, poll
and article posts by engagement rate.

## 4. OPTIMAL POSTING WINDOWS
Peak hours, lowest-competition times, industry-specific patterns.

## 5. HASHTAG SCIENCE
Optimal count, follower sweet spots, placement, banned/spam tags to avoid.

## 6. VIRALITY TRIGGERS
Share threshold, comment depth, engagement diversity, secondary network
activation.

## 7. PENALTY FACTORS
External link penalties, spam signals, low-quality engagement,
over-posting frequency.

## 8. HOOK FORMULAS THAT WORK
Provide 20 proven hook templates with examples.

## 9. CTA EFFECTIVENESS RANKING
Best performing CTAs with engagement data.

## 10. MOBILE OPTIMIZATION RULES
Critical for 70%+ mobile users.

Provide SPECIFIC, ACTIONABLE data. Include numbers, percentages, examples.`
}
