package prompt

import (
	"fmt"
	"strings"
)

// CustomHook builds the ten-hook generation prompt.
func CustomHook(topic, emotion, niche, style string) string {
	s := orDefault(style, "professional")
	return fmt.Sprintf(`Generate 10 VIRAL LinkedIn hooks for this content:

**Topic:** %s
**Target Emotion:** %s
**Niche:** %s
**Style:** %s

Each hook must:
- Be 1-2 sentences max
- Grab attention in first 3 words
- Make people want to click "See More"
- Match the %s emotion (curiosity, shock, value, etc.)
- Sound natural, not clickbait
- Be specific to %s

Format:
**Hook 1:** [text]
**Why it works:** [psychological trigger]
**Emotion score:** X/10

[Continue for all 10]

Make them SPECIFIC and ACTIONABLE, not generic.`, topic, emotion, niche, s, emotion, niche)
}

// HooksByCategory seeds generation with proven templates for one category.
func HooksByCategory(category string, templates []string, niche string, limit int) string {
	return fmt.Sprintf(`Using these proven hook templates for %s:

%s

Generate %d SPECIFIC, READY-TO-USE hooks for %s.

Replace all placeholders with real, compelling content relevant to %s.

Format each as:
**Hook:** [Full, ready-to-use text]
**Fill-ins used:** [Show what you replaced]
**Best for:** [Type of post]
**Engagement prediction:** X/10

Make them SPECIFIC and IMMEDIATELY USABLE.`, category, strings.Join(templates, "\n"), limit, niche, niche)
}

// HookVariations rewrites one hook several ways.
func HookVariations(originalHook string, count int) string {
	return fmt.Sprintf(`Take this hook: "%s"

Generate %d VARIATIONS that:
1. Keep the same core message
2. Use different psychological triggers
3. Appeal to different audience segments
4. Test different lengths (short vs long)
5. Vary the emotional intensity

For each variation:
**Variation X:** [text]
**Difference:** [What's changed]
**Target audience:** [Who this appeals to]
**Predicted engagement:** Higher/Same/Lower than original

Make variations DISTINCTLY DIFFERENT, not just word swaps.`, originalHook, count)
}

// HookEffectiveness scores a hook across weighted components.
func HookEffectiveness(hook string) string {
	return fmt.Sprintf(`Analyze this LinkedIn hook: "%s"

Provide detailed scoring:

## OVERALL SCORE: X/100

### COMPONENT SCORES:
1. **Attention Grab (0-20)** - first 3 words, visual impact, pattern interrupt
2. **Curiosity Gap (0-20)** - information gap, "See More" click likelihood
3. **Emotional Trigger (0-20)** - emotion type, intensity, resonance
4. **Specificity (0-15)** - concrete vs vague, niche relevance, credibility
5. **Readability (0-10)** - length, clarity, flow
6. **Algorithm Compatibility (0-15)** - engagement, comment and share potential

### STRENGTHS:
### WEAKNESSES:
### IMPROVED VERSION:
### A/B TEST SUGGESTION:

Be brutally honest and specific.`, hook)
}

// IndustryHooks builds hooks across six fixed categories for one industry.
func IndustryHooks(industry string, count int) string {
	return fmt.Sprintf(`Generate %d PROVEN viral hooks specifically for %s professionals on LinkedIn.

Categories to cover:
- Career advice (5 hooks)
- Industry insights (5 hooks)
- Personal stories (5 hooks)
- Controversial takes (5 hooks)
- Actionable tips (5 hooks)
- Trend analysis (5 hooks)

For each hook:
**Hook:** [text]
**Category:** [category]
**Best time to post:** [day/time]
**Expected engagement:** Low/Medium/High/Very High
**Target audience:** [who this is for]

Make them SPECIFIC to %s, not generic business advice.`, count, industry, industry)
}
