package seo

import (
	"fmt"
	"strings"

	"github.com/seoscribe/seoscribe/internal/model"
)

// formatContextForPrompt renders the SEOContext block shared by every
// generation prompt: top facts, keywords, opportunities, and questions.
func formatContextForPrompt(c *model.SEOContext) string {
	var wiki strings.Builder
	for i, r := range topN(c.WikipediaData, 3) {
		snippet := r.Snippet
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		fmt.Fprintf(&wiki, "\n%d. %s: %s...", i+1, r.Title, snippet)
	}

	goal := c.UserGoal
	if goal == "" {
		goal = "Generate comprehensive SEO content"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== SEO CONTEXT FOR %q ===\n\n", strings.ToUpper(c.Keyword))
	fmt.Fprintf(&b, "PRIMARY KEYWORD: %s\n", c.Keyword)
	fmt.Fprintf(&b, "USER GOAL: %s\n", goal)
	fmt.Fprintf(&b, "SEARCH INTENT: %s: %s\n\n", c.SearchIntent, c.IntentExplanation)
	fmt.Fprintf(&b, "KNOWLEDGE BASE:%s\n\n", wiki.String())
	fmt.Fprintf(&b, "RELATED KEYWORDS: %s\n\n", strings.Join(firstN(c.RelatedKeywords, 8), ", "))
	fmt.Fprintf(&b, "CONTENT OPPORTUNITIES:\n%s\n\n", bulletList(firstN(c.ContentOpportunities, 6)))
	fmt.Fprintf(&b, "USER QUESTIONS:\n%s\n\n", bulletList(firstN(c.UserQuestions, 5)))
	fmt.Fprintf(&b, "COMPETITIVE LANDSCAPE: %s\n\n", c.CompetitiveLandscape)
	b.WriteString("=== END CONTEXT ===")

	return b.String()
}

func titlePrompt(c *model.SEOContext) string {
	return fmt.Sprintf(`%s

Generate an SEO-optimized blog post title that:
1. Includes the primary keyword naturally
2. Is compelling and click-worthy
3. Is %d characters or less
4. Matches the search intent
5. Stands out from competitors

Consider the user goal and target audience.
Respond with ONLY the title, no explanations or quotes.`,
		formatContextForPrompt(c), TitleMaxLength)
}

func metaDescriptionPrompt(c *model.SEOContext, title string) string {
	return fmt.Sprintf(`%s

Title: %s

Generate a meta description that:
1. Is %d-%d characters
2. Includes the primary keyword naturally
3. Is compelling and action-oriented
4. Summarizes the value proposition
5. Encourages clicks

Respond with ONLY the meta description, no explanations.`,
		formatContextForPrompt(c), title, MetaDescriptionMinLength, MetaDescriptionMaxLength)
}

func outlinePrompt(c *model.SEOContext, title string) string {
	return fmt.Sprintf(`%s

Title: %s

Create a detailed blog post outline with:
1. Introduction (hook, problem, preview)
2. 5-7 main sections (H2 level)
3. 2-3 subsections per main section (H3 level)
4. Conclusion with CTA

Make it logical, comprehensive, and SEO-friendly.
Address the user questions and content opportunities.

Format as a numbered list with clear hierarchy.
Use "1.", "2." for main sections and "a.", "b." for subsections.`,
		formatContextForPrompt(c), title)
}

func wordCountPrompt(c *model.SEOContext) string {
	return fmt.Sprintf(`%s

Based on the search intent, topic complexity, and competitive landscape,
what would be the optimal word count for this content?

Consider:
- Search intent type (informational content typically needs more depth)
- Topic complexity and breadth
- User expectations
- Competitive requirements

Respond with just a number between %d and %d.`,
		formatContextForPrompt(c), MinWordCount, MaxWordCount)
}

func sectionPrompt(sectionTitle, keyword, articleTitle string, targetWords int) string {
	return fmt.Sprintf(`Write a detailed section for an article titled %q.

Section Title: %s
Target Keyword: %s
Target Length: %d words

Requirements:
1. Provide actionable, valuable information
2. Include the target keyword naturally (don't over-optimize)
3. Use clear, engaging language
4. Include specific examples where relevant
5. Break up text with bullet points or numbered lists when appropriate
6. Make it scannable and readable

Write ONLY the section content, no title or heading.`,
		articleTitle, sectionTitle, keyword, targetWords)
}

func introductionPrompt(c *model.SEOContext, title string) string {
	return fmt.Sprintf(`Write an engaging introduction for an article titled %q about %q.

Requirements:
- 150-200 words
- Hook the reader immediately
- Include the target keyword in the first sentence
- Preview what the article will cover
- Set clear expectations
- Address the user's search intent: %s: %s`,
		title, c.Keyword, c.SearchIntent, c.IntentExplanation)
}

func conclusionPrompt(c *model.SEOContext, title string) string {
	return fmt.Sprintf(`Write a compelling conclusion for an article titled %q about %q.

Requirements:
- 150-200 words
- Summarize key takeaways
- Include a clear call-to-action
- Reinforce the value provided
- End with actionable next steps for the reader`,
		title, c.Keyword)
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
