package prompt

import "fmt"

// VideoTrends builds the video format and trend analysis prompt.
func VideoTrends(topic, niche string) string {
	n := orDefault(niche, "General")
	return fmt.Sprintf(`You are a LinkedIn video trend analyst. Analyze the CURRENT trending video formats and styles on LinkedIn for 2025.

Topic: %s
Niche: %s

Research and provide:

## 1. TRENDING VIDEO FORMATS (Top 5)
Format name, why it's trending now, best use cases, estimated engagement
rate, optimal duration.

## 2. VIRAL VIDEO PATTERNS
Opening techniques (first 3 seconds), content structure, pacing and
editing style, text overlay strategies, sound/music usage.

## 3. OPTIMAL VIDEO SPECIFICATIONS
Duration, aspect ratio, resolution, thumbnail style, native upload vs link.

## 4. NICHE-SPECIFIC TRENDS
For "%s": best-performing styles, unique patterns, competitor video
strategies, audience preferences.

## 5. ALGORITHM INSIGHTS (2025)
Watch time weight, completion rate, comment engagement, share velocity,
profile visit rate.

## 6. CONTENT THEMES TRENDING NOW
List 10 video content themes trending in "%s" with why each works.

## 7. TIMING & FREQUENCY
Best posting times for video, optimal frequency, series vs one-offs.

Provide ACTIONABLE, CURRENT, and SPECIFIC insights based on 2025 LinkedIn video trends.`, topic, n, n, n)
}

// VideoCaption builds the three-variation caption prompt.
func VideoCaption(topic, title, description, niche string) string {
	return fmt.Sprintf(`Create a HIGH-PERFORMING LinkedIn video caption optimized for 2025 algorithm.

Video Details:
- Topic: %s
- Title: %s
- Description: %s
- Niche: %s

Requirements: shorter and punchier than text posts, first line visible
before "...see more", strong CTA, 100-250 characters, strategic hashtag
placement, comment encouragement.

Generate 3 caption variations:

## CAPTION 1: CURIOSITY-DRIVEN
## CAPTION 2: VALUE-FOCUSED
## CAPTION 3: ENGAGEMENT-OPTIMIZED

Each with first line, context, CTA, 3-5 hashtags, and why it works.

## BONUS: PIN COMMENT SUGGESTION
Write a pin comment to post immediately after the video goes live.

Make captions ACTIONABLE and OPTIMIZED for LinkedIn's 2025 video algorithm.`,
		topic, orNotProvided(title), orNotProvided(description), orDefault(niche, "General"))
}

// TrendingAudio builds the audio strategy prompt for a niche.
func TrendingAudio(niche string) string {
	n := orDefault(niche, "General")
	return fmt.Sprintf(`You are a LinkedIn video audio trend researcher. Identify trending audio strategies for LinkedIn videos in 2025.

Niche: %s

Provide comprehensive audio recommendations:

## 1. TRENDING MUSIC STYLES
Genre, tempo (BPM range), instrumental vs vocal, converting mood.

## 2. VOICEOVER STRATEGIES
Style, pacing, tone resonating with the "%s" audience, when to skip it.

## 3. SOUND EFFECTS USAGE
Trending SFX types, placement, mixing levels, overuse patterns to avoid.

## 4. AUDIO TRENDS BY VIDEO FORMAT
Talking head, B-roll/montage, and tutorial formats each get their own
music and voiceover guidance.

## 5. AUDIO SOURCES & LICENSING
Three free/licensed audio platforms with what each is best for.

## 6. AUDIO MISTAKES TO AVOID
Five mistakes that kill LinkedIn video performance, with reasons.

## 7. NICHE-SPECIFIC AUDIO RECOMMENDATIONS
What performs best in "%s" and what competitors do.

## 8. AUDIO OPTIMIZATION CHECKLIST

Provide SPECIFIC, ACTIONABLE audio recommendations for creating high-performing LinkedIn videos in 2025.`, n, n, n)
}

// VisualTrends builds the visual style analysis prompt.
func VisualTrends(niche string) string {
	n := orDefault(niche, "General")
	return fmt.Sprintf(`You are a LinkedIn video visual trend analyst. Identify the HOTTEST visual trends for LinkedIn videos in 2025.

Niche: %s

Provide comprehensive visual trend analysis:

## 1. TRENDING VISUAL STYLES (Top 10)
Style name, why it's viral now, best content type, engagement boost.

## 2. COLOR SCHEMES THAT CONVERT
Top three palettes for "%s" with the psychology behind each.

## 3. TEXT OVERLAY STRATEGIES
Fonts, animation patterns, size and placement, subtitle styling.

## 4. TRANSITION & EDITING TRENDS
Cut styles, pacing, jump cuts, B-roll timing, pattern interrupts.

## 5. THUMBNAIL DESIGN TRENDS
Face vs no face, text overlays, color psychology, contrast.

## 6. B-ROLL & STOCK FOOTAGE STRATEGIES
When to use it, stock vs original, timing, sources.

## 7. ANIMATION & GRAPHICS TRENDS
Motion graphics, animated text, icons, data visualization, lower thirds.

## 8. COMPOSITION & FRAMING
Rule of thirds, headroom, backgrounds, camera angles.

## 9. LIGHTING TRENDS
Natural vs studio, mood lighting, ring lights, backlighting.

## 10. NICHE-SPECIFIC VISUAL PATTERNS
Styles unique to "%s" and what competitors are doing.

## 11. VISUAL MISTAKES TO AVOID
Top 7 visual mistakes killing video performance.

## 12. VISUAL OPTIMIZATION CHECKLIST

## 13. TRENDING TOOLS & SOFTWARE
Editing, graphics, animation and color grading tools.

Provide SPECIFIC, ACTIONABLE visual recommendations based on CURRENT 2025 LinkedIn video trends.`, n, n, n)
}

// VideoHooks builds the first-3-seconds hook prompt.
func VideoHooks(topic, niche string) string {
	n := orDefault(niche, "General")
	return fmt.Sprintf(`You are a LinkedIn video hook specialist. Create SCROLL-STOPPING hooks for the first 3 seconds of a video.

Topic: %s
Niche: %s

The first 3 seconds determine 80%% of video success. Create hooks that make people STOP scrolling.

Generate 20 POWERFUL video hooks across these categories:

## CATEGORY 1: PATTERN INTERRUPT (Visual + Audio) - 4 hooks
## CATEGORY 2: BOLD STATEMENTS - 3 hooks
## CATEGORY 3: CURIOSITY GAPS - 3 hooks
## CATEGORY 4: IMMEDIATE VALUE - 3 hooks
## CATEGORY 5: SHOCK & SURPRISE - 3 hooks
## CATEGORY 6: QUESTION HOOKS - 4 hooks

For each hook give the visual, the audio/voiceover, and why it works.

## HOOK COMBINATION STRATEGIES
How to layer visual, text, movement, and sound elements.

## EXECUTION TIPS
Timing breakdown (0-1s, 1-2s, 2-3s), camera movement, editing, mixing.

## NICHE-SPECIFIC HOOKS
Top 5 hooks proven to work in "%s" with performance data.

## MISTAKES TO AVOID
Five things NOT to do in the first 3 seconds.

Make every hook ACTIONABLE with specific visual and audio instructions.`, topic, n, n)
}

// VideoInput carries the fields describing a planned video.
type VideoInput struct {
	Topic       string
	Title       string
	Niche       string
	Description string
	Format      string
	Duration    string
	Goal        string
	HasHook     bool
	HasCaption  bool
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// VideoSuccessRate builds the weighted success prediction prompt.
func VideoSuccessRate(in VideoInput) string {
	format := orDefault(in.Format, "Not specified")
	duration := orDefault(in.Duration, "Not specified")
	return fmt.Sprintf(`You are a LinkedIn video success prediction AI. Calculate the success probability for this video.

Video Details:
- Topic: %s
- Title: %s
- Niche: %s
- Description: %s
- Format: %s
- Duration: %s
- Has Strong Hook: %s
- Has Optimized Caption: %s

Analyze and provide:

## 1. OVERALL SUCCESS RATE
Calculate overall success probability: X/100

## 2. SCORE BREAKDOWN
Score six weighted components with sub-scores:
Format (25%%), Duration (20%%), Topic Trend (20%%), Hook Quality (15%%),
Caption Quality (10%%), Timing (10%%).

## 3. SUCCESS PROBABILITY CATEGORIES
Estimated views, engagement rate, comments, shares, profile visits.

## 4. COMPARISON TO VIRAL BENCHMARKS
How this video compares to viral videos in "%s" on format, topic,
duration, and overall viral alignment.

## 5. IMPROVEMENT RECOMMENDATIONS
Five specific changes with estimated impact to reach 95%%+.

## 6. RISK FACTORS
Three potential issues with likelihood ratings.

## 7. OPTIMAL POSTING STRATEGY
Best day and time, pre-posting checklist, post-posting actions.

## 8. ALGORITHM ALIGNMENT SCORE
Watch time, completion rate, comment-ability, share-worthiness, profile
visit driver, each scored out of 10.

## 9. FINAL VERDICT
Overall success rate, confidence level, go / improve / reconsider.

Provide SPECIFIC, DATA-DRIVEN predictions based on current LinkedIn video algorithm (2025).`,
		in.Topic, orNotProvided(in.Title), orDefault(in.Niche, "General"), orNotProvided(in.Description),
		format, duration, yesNo(in.HasHook), yesNo(in.HasCaption), orDefault(in.Niche, "General"))
}

// VideoFormat builds the format recommendation prompt.
func VideoFormat(topic, niche, goal string) string {
	g := orDefault(goal, "Engagement and growth")
	n := orDefault(niche, "General")
	return fmt.Sprintf(`You are a LinkedIn video format strategist. Recommend the BEST video format for maximum impact.

Video Details:
- Topic: %s
- Niche: %s
- Goal: %s

Analyze and recommend the optimal video format:

## 1. RECOMMENDED PRIMARY FORMAT
Format name, why it fits the topic and goal, trend status, success rate,
specifications (duration, aspect ratio, style, production level), and an
execution guide (equipment, shooting tips, editing, production time).

## 2. ALTERNATIVE FORMAT #1
## 3. ALTERNATIVE FORMAT #2
Same structure as the primary recommendation.

## 4. FORMAT COMPARISON TABLE
Success rate, production time, cost, engagement, trend status per format.

## 5. CONTENT STRUCTURE BY FORMAT
Second-by-second breakdown for the recommended format with CTA placement.

## 6. PRODUCTION BREAKDOWN
Pre-production planning, filming process with mistakes to avoid, and a
post-production workflow with tool recommendations.

## 7. NICHE-SPECIFIC FORMAT INSIGHTS
Performance data and audience preferences for "%s".

## 8. GOAL-SPECIFIC OPTIMIZATION
Best format for the goal "%s", success metrics, optimization tactics.

## 9. HYBRID FORMAT OPPORTUNITIES
## 10. FORMAT TRENDS FORECAST
Hot, emerging, and declining formats.

## 11. FINAL RECOMMENDATION
The pick, the reason, expected outcome, and five action items.

Provide ACTIONABLE, SPECIFIC format recommendations optimized for LinkedIn 2025 video algorithm.`, topic, n, g, n, g)
}

// ReadyToPostVideo builds the complete ready-to-use video package prompt.
func ReadyToPostVideo(in VideoInput) string {
	return fmt.Sprintf(`You are a LinkedIn video content creator. Generate a READY-TO-POST video content package.

Topic: %s
Title: %s
Niche: %s
Description: %s
Goal: %s

Generate a complete, ready-to-use video content package:

## READY-TO-POST CAPTION
Write the exact caption to post on LinkedIn: compelling first line
(visible before "see more"), 2-3 context lines, call-to-action, and 5-7
trending hashtags integrated naturally at the end.

## VIDEO SCRIPT (30-60 seconds)
**HOOK (0-3 seconds):** exact words/action for the first 3 seconds.
**MAIN CONTENT (3-45 seconds):** bullet points of what to say/show.
**CTA (45-60 seconds):** closing words and call-to-action.

## TRENDING AUDIO RECOMMENDATIONS
Three options (two music choices with platform and reason, one
voiceover-only option with when to use it).

## QUICK TIPS
3-5 bullet points max.

## SUCCESS RATE: X%%
With a one-sentence explanation.

## PIN COMMENT
The exact comment to pin immediately after the video goes live.

Keep everything CONCISE, ACTIONABLE, and READY-TO-USE. No long explanations.`,
		in.Topic, orNotProvided(in.Title), orDefault(in.Niche, "General"),
		orNotProvided(in.Description), orDefault(in.Goal, "Maximum engagement"))
}
