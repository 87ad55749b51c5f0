package prompt

import (
	"fmt"
	"strings"
)

// Trends asks for a trend analysis of a topic. The year is an explicit
// parameter so the builder itself stays deterministic.
func Trends(topic string, year int) string {
	return fmt.Sprintf(`You are a LinkedIn trend analysis expert. Analyze current trends for: "%s"

Provide EXACTLY this structure (be precise):

TRENDING_TOPICS:
1. [Specific trend with %% growth if possible]
2. [Specific trend with %% growth if possible]
3. [Specific trend with %% growth if possible]

BEST_VIRAL_ANGLE:
[One powerful angle that will perform best]

VIRAL_HOOK:
[A 5-7 word hook that stops scrolling]

Keep it real, data-driven, and actionable. Focus on what's ACTUALLY trending on LinkedIn right now in %d.`, topic, year)
}

// PostsInput carries the user fields for three-variation post generation.
type PostsInput struct {
	Topic  string
	Style  string
	Goal   string
	Link   string
	Assets string
}

// Posts builds the three-variation post prompt. Output must label each
// variation with the **POST A/B/C** markers the parser splits on.
func Posts(in PostsInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are an AI LinkedIn Content Agent. Create VIRAL-READY LinkedIn posts.

USER INPUT:
Topic: %s
Style: %s
Goal: %s
`, in.Topic, orNotProvided(in.Style), orNotProvided(in.Goal))
	b.WriteString(optionalLine("Link", in.Link))
	b.WriteString(optionalLine("Assets", in.Assets))
	b.WriteString(`
GENERATE 3 POST VARIATIONS:

FORMAT A - SHORT VIRAL:
- Hook (under 7 words)
- 3-5 lines max
- Bold value proposition
- Strong CTA
- 5-7 hashtags

FORMAT B - PROFESSIONAL AUTHORITY:
- Expert positioning
- Clear structure: Problem -> Insight -> Value
- Micro-steps or framework
- Professional CTA
- 5-7 hashtags

FORMAT C - STORY HOOK (EMOTIONAL):
- Personal/relatable opening (1-2 lines)
- The transformation/lesson
- Universal takeaway
- Reflective CTA
- 5-7 hashtags

CRITICAL RULES:
- Line breaks every 1-2 lines
- Mobile-friendly
- No cliches or generic AI-sounding content
- Use psychological hooks
- Keep it crisp and high-value
- Include emojis ONLY if they add value
`)
	if strings.TrimSpace(in.Link) != "" {
		fmt.Fprintf(&b, "- Naturally incorporate this link: %s\n", in.Link)
	}
	b.WriteString(`
Label each post exactly as **POST A**, **POST B**, **POST C**.`)
	return b.String()
}

// OptimizePost builds the algorithm-optimization prompt for an existing post.
func OptimizePost(postContent string) string {
	return fmt.Sprintf(`You are a LinkedIn algorithm optimization expert (2025).

ORIGINAL POST:
%s

OPTIMIZE THIS POST for maximum engagement following these rules:

- Hook: Under 7 words, stops scrolling
- Line breaks: Every 1-2 lines
- CTAs: "Thoughts?", "Agree?", "Want part 2?"
- Hashtags: Max 7, highly relevant
- Mobile-friendly: Easy to read on phone
- Engagement: Design for comments/shares
- Value: Clear benefit in first 3 lines

Provide:
1. OPTIMIZED POST (ready to copy-paste)
2. CHANGES MADE (brief list)
3. ENGAGEMENT PREDICTION (why it will perform better)`, postContent)
}

// SuggestImages builds the visual-strategy prompt. Long post content is
// truncated to keep the prompt focused on the opening.
func SuggestImages(topic, postContent string) string {
	excerpt := postContent
	if len(excerpt) > 300 {
		excerpt = excerpt[:300] + "..."
	}
	return fmt.Sprintf(`You are a visual content strategist for LinkedIn.

TOPIC: %s
POST CONTENT: %s

Suggest 3 free image sources/ideas:

1. SPECIFIC SEARCH QUERY for:
   - Pexels.com
   - Unsplash.com
   - Lexica.art

2. WHY THIS IMAGE TYPE will boost engagement

3. VISUAL ELEMENTS to include:
   - Color psychology
   - Composition
   - Text overlay suggestions

4. EXPECTED CTR INCREASE: [percentage and reasoning]

Keep suggestions SPECIFIC and ACTIONABLE. Include exact search terms.`, topic, orNotProvided(excerpt))
}
