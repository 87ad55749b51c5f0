package prompt

import "fmt"

// ProfileInput carries the profile fields for analysis prompts.
type ProfileInput struct {
	Headline   string
	About      string
	Experience string
	Skills     string
	Niche      string
}

// ProfileAnalysis builds the full profile optimization prompt.
func ProfileAnalysis(in ProfileInput) string {
	return fmt.Sprintf(`You are an ELITE LinkedIn Profile Optimization Expert with years of experience.

PROFILE ANALYSIS REQUEST:

**Current Headline:** %s
**Current About Section:** %s
**Experience:** %s
**Skills:** %s
**Niche/Industry:** %s

YOUR TASK: COMPREHENSIVE PROFILE OPTIMIZATION

## 1. HEADLINE OPTIMIZATION (120 characters max)
Identify current issues, then generate 3 optimized variations:
Version A (Authority), Version B (Value), Version C (Story). Each must
include searchable keywords and follow [WHO YOU ARE] | [WHAT YOU DO] |
[WHO YOU HELP].

## 2. ABOUT SECTION REWRITE (2,600 characters max)
Structure: hook (first 2 lines), story, what you do, how you help,
social proof, call to action. SEO keywords, first-person voice,
scannable line breaks.

## 3. FEATURED SECTION STRATEGY
Posts, articles, media and portfolio pieces to showcase.

## 4. EXPERIENCE SECTION TIPS
Action verbs, quantified achievements, keywords, impact stories.

## 5. SKILLS & ENDORSEMENTS
Top 3 skills to feature and skills to remove.

## 6. LINKEDIN SEO STRATEGY
Primary and secondary keywords with placement recommendations.

## 7. PROFILE PHOTO & BANNER ADVICE
Photo guidelines and banner ideas.

## 8. CONTENT STRATEGY RECOMMENDATIONS
Post frequency, content themes, target audience, growth strategy.

## 9. OVERALL PROFILE SCORE
Rate current profile X/100 with a component breakdown (headline, about,
experience, skills, engagement, SEO).

## 10. PRIORITY ACTION ITEMS
Top 5 things to fix immediately.

Make ALL recommendations ACTIONABLE and SPECIFIC. Include exact wording, not just suggestions.`,
		orNotProvided(in.Headline), orNotProvided(in.About), orNotProvided(in.Experience),
		orNotProvided(in.Skills), orDefault(in.Niche, "General"))
}

// Headline builds the five-headline prompt.
func Headline(current, niche, targetAudience string) string {
	return fmt.Sprintf(`Generate 5 POWERFUL LinkedIn headlines (max 120 characters each).

Current: %s
Niche: %s
Target Audience: %s

Each headline must:
- Include keywords for LinkedIn search
- Be memorable and unique
- Show clear value proposition
- Appeal to target audience

Format each as:
**Headline X:** [text]
**Why it works:** [brief explanation]
**Search keywords:** [keywords included]`,
		orDefault(current, "None"), orNotProvided(niche), orDefault(targetAudience, "Professionals"))
}

// AboutInput carries the fields for About-section generation.
type AboutInput struct {
	Name         string
	Role         string
	Niche        string
	Achievements string
	Skills       string
	Goals        string
}

// AboutSection builds the two-version About generation prompt.
func AboutSection(in AboutInput) string {
	return fmt.Sprintf(`Write a COMPELLING LinkedIn About section that converts visitors to connections.

Profile Details:
- Name: %s
- Role: %s
- Niche: %s
- Key Achievements: %s
- Skills: %s
- Goals: %s

Requirements:
- 2,600 characters max
- First 2 lines MUST be compelling (visible without See More)
- Include SEO keywords naturally
- First-person voice
- Story-driven but professional
- Clear call-to-action
- Scannable with line breaks
- Show personality

Structure:
Hook -> Story -> Value -> How You Help -> Social Proof -> CTA

Provide 2 versions:
- Version A: Professional & Authority-focused
- Version B: Personal & Story-driven`,
		orDefault(in.Name, "Professional"), orNotProvided(in.Role), orDefault(in.Niche, "General"),
		orNotProvided(in.Achievements), orNotProvided(in.Skills),
		orDefault(in.Goals, "Build network and opportunities"))
}
