package seo

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/seoscribe/seoscribe/internal/llm"
	"github.com/seoscribe/seoscribe/internal/model"
	"github.com/seoscribe/seoscribe/internal/seo/textutil"
)

// Content length constraints.
const (
	TitleMaxLength           = 60
	MetaDescriptionMinLength = 120
	MetaDescriptionMaxLength = 155
	MinWordCount             = 800
	MaxWordCount             = 5000
	DefaultWordCount         = 1500

	// maxArticleSections caps per-article generation calls.
	maxArticleSections = 6
)

var numberPattern = regexp.MustCompile(`\d+`)

// Generator produces SEO content from a built context. Every LLM-backed
// operation falls back to deterministic template output on failure, so
// brief and article composition never fail.
type Generator struct {
	llm    llm.Generator
	logger *slog.Logger
}

// NewGenerator creates a content generator over the given LLM.
func NewGenerator(gen llm.Generator, logger *slog.Logger) *Generator {
	return &Generator{llm: gen, logger: logger}
}

// GenerateTitle produces a title of at most TitleMaxLength characters.
func (g *Generator) GenerateTitle(ctx context.Context, c *model.SEOContext) string {
	text, err := g.llm.Generate(ctx, titlePrompt(c))
	if err != nil {
		g.logFallback("title", c.Keyword, err)
		return fmt.Sprintf("The Complete Guide to %s", textutil.Title(c.Keyword))
	}

	title := strings.NewReplacer(`"`, "", "'", "").Replace(strings.TrimSpace(text))
	if len(title) > TitleMaxLength {
		title = textutil.TruncateAtWord(title, TitleMaxLength)
	}
	return title
}

// GenerateMetaDescription produces a description within the length band.
func (g *Generator) GenerateMetaDescription(ctx context.Context, c *model.SEOContext, title string) string {
	text, err := g.llm.Generate(ctx, metaDescriptionPrompt(c, title))
	if err != nil {
		g.logFallback("meta description", c.Keyword, err)
		return fmt.Sprintf("Learn everything about %s in this comprehensive guide. Expert tips, best practices, and actionable insights.", c.Keyword)
	}

	desc := strings.TrimSpace(text)
	if len(desc) > MetaDescriptionMaxLength {
		desc = textutil.TruncateAtWord(desc, MetaDescriptionMaxLength) + "..."
	}
	return desc
}

// GenerateOutline produces the section outline as a list of lines.
func (g *Generator) GenerateOutline(ctx context.Context, c *model.SEOContext, title string) []string {
	text, err := g.llm.Generate(ctx, outlinePrompt(c, title))
	if err != nil {
		g.logFallback("outline", c.Keyword, err)
		return []string{
			"1. Introduction",
			"2. What is " + textutil.Title(c.Keyword),
			"3. Benefits and Importance",
			"4. Best Practices",
			"5. Common Mistakes to Avoid",
			"6. Tools and Resources",
			"7. Conclusion",
		}
	}

	outline := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		outline = append(outline, line)
	}
	return outline
}

// DetermineWordCount asks for a target length and clamps it to the
// allowed range. Responses without a number use the default.
func (g *Generator) DetermineWordCount(ctx context.Context, c *model.SEOContext) int {
	text, err := g.llm.Generate(ctx, wordCountPrompt(c))
	if err != nil {
		g.logFallback("word count", c.Keyword, err)
		return DefaultWordCount
	}

	match := numberPattern.FindString(text)
	if match == "" {
		return DefaultWordCount
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return DefaultWordCount
	}

	if n < MinWordCount {
		return MinWordCount
	}
	if n > MaxWordCount {
		return MaxWordCount
	}
	return n
}

// InternalLinkSuggestions builds link ideas from related keywords.
// Template-generated, no LLM call.
func (g *Generator) InternalLinkSuggestions(c *model.SEOContext) []string {
	suggestions := make([]string, 0, 6)
	for _, kw := range firstN(c.RelatedKeywords, 5) {
		suggestions = append(suggestions,
			fmt.Sprintf("Link to comprehensive guide on '%s'", kw),
			fmt.Sprintf("Internal link to '%s' resources page", kw),
		)
	}
	suggestions = append(suggestions,
		fmt.Sprintf("Link to %s tutorials or how-to guides", c.Keyword),
		fmt.Sprintf("Cross-reference to related %s topics", c.Keyword),
		fmt.Sprintf("Link to %s tools and resources page", c.Keyword),
	)
	return firstN(suggestions, 6)
}

// CTASuggestions builds call-to-action ideas. Template-generated.
func (g *Generator) CTASuggestions(c *model.SEOContext) []string {
	ctas := []string{
		fmt.Sprintf("Ready to master %s? Start your journey today!", c.Keyword),
		fmt.Sprintf("Download our free %s checklist", c.Keyword),
		fmt.Sprintf("Get expert %s consultation", c.Keyword),
		fmt.Sprintf("Join our %s community", c.Keyword),
		fmt.Sprintf("Subscribe for more %s tips", c.Keyword),
		fmt.Sprintf("Share this %s guide with your team", c.Keyword),
	}
	return firstN(ctas, 4)
}

// OptimizationTips builds on-page SEO recommendations. Template-generated.
func (g *Generator) OptimizationTips(c *model.SEOContext) []string {
	tips := []string{
		fmt.Sprintf("Include '%s' in H1 and first paragraph", c.Keyword),
		fmt.Sprintf("Use related keywords naturally: %s", strings.Join(firstN(c.RelatedKeywords, 3), ", ")),
		"Add internal links to relevant pages",
		"Optimize images with descriptive alt text",
		"Include FAQ section for featured snippets",
		"Use structured data markup (JSON-LD)",
		"Ensure mobile-friendly responsive design",
		"Optimize page loading speed",
		"Add social sharing buttons",
		"Include author bio and expertise signals",
	}
	return firstN(tips, 7)
}

// GenerateBrief composes the full content brief for a context.
func (g *Generator) GenerateBrief(ctx context.Context, c *model.SEOContext) *model.ContentBrief {
	title := g.GenerateTitle(ctx, c)

	return &model.ContentBrief{
		Keyword:          c.Keyword,
		Title:            title,
		MetaDescription:  g.GenerateMetaDescription(ctx, c, title),
		Outline:          g.GenerateOutline(ctx, c, title),
		WordCountTarget:  g.DetermineWordCount(ctx, c),
		InternalLinks:    g.InternalLinkSuggestions(c),
		CTASuggestions:   g.CTASuggestions(c),
		OptimizationTips: g.OptimizationTips(c),
		ContentType:      model.ContentBlogPost,
		CreatedAt:        time.Now(),
	}
}

// GenerateSectionContent produces the body for one outline entry.
func (g *Generator) GenerateSectionContent(ctx context.Context, sectionTitle, keyword, articleTitle string, targetWords int) string {
	text, err := g.llm.Generate(ctx, sectionPrompt(sectionTitle, keyword, articleTitle, targetWords))
	if err != nil {
		g.logFallback("section", keyword, err)
		return fmt.Sprintf("Content for %s section would be generated here. This section would cover key aspects of %s related to %s.",
			sectionTitle, keyword, strings.ToLower(sectionTitle))
	}
	return strings.TrimSpace(text)
}

// GenerateArticle composes a complete article from the context,
// generating a brief first when none is supplied.
func (g *Generator) GenerateArticle(ctx context.Context, c *model.SEOContext, brief *model.ContentBrief) *model.FullArticle {
	start := time.Now()

	if brief == nil {
		brief = g.GenerateBrief(ctx, c)
	}

	introduction, err := g.llm.Generate(ctx, introductionPrompt(c, brief.Title))
	if err != nil {
		g.logFallback("introduction", c.Keyword, err)
		introduction = fmt.Sprintf("In this comprehensive guide, we'll explore everything you need to know about %s. Whether you're a beginner or looking to advance your knowledge, this article will provide valuable insights and practical tips.", c.Keyword)
	}
	introduction = strings.TrimSpace(introduction)

	sectionCount := len(brief.Outline)
	if sectionCount > maxArticleSections {
		sectionCount = maxArticleSections
	}

	sections := make([]model.ContentSection, 0, sectionCount)
	if sectionCount > 0 {
		targetWords := brief.WordCountTarget / sectionCount
		for _, heading := range brief.Outline[:sectionCount] {
			content := g.GenerateSectionContent(ctx, heading, c.Keyword, brief.Title, targetWords)
			sections = append(sections, model.NewContentSection(heading, content))
		}
	}

	conclusion, err := g.llm.Generate(ctx, conclusionPrompt(c, brief.Title))
	if err != nil {
		g.logFallback("conclusion", c.Keyword, err)
		conclusion = fmt.Sprintf("Understanding %s is essential for success in today's digital landscape. By implementing the strategies and best practices outlined in this guide, you'll be well-equipped to achieve your goals. Start applying these insights today and see the difference they can make.", c.Keyword)
	}
	conclusion = strings.TrimSpace(conclusion)

	article := &model.FullArticle{
		Keyword:         c.Keyword,
		Title:           brief.Title,
		MetaDescription: brief.MetaDescription,
		Introduction:    introduction,
		Sections:        sections,
		Conclusion:      conclusion,
		Brief:           brief,
		CreatedAt:       time.Now(),
	}
	article.ComputeWordCount()

	g.logger.Info("article generated",
		slog.String("keyword", c.Keyword),
		slog.Int("word_count", article.TotalWordCount),
		slog.Duration("duration", time.Since(start)),
	)

	return article
}

func (g *Generator) logFallback(what, keyword string, err error) {
	g.logger.Warn("generation fell back to template output",
		slog.String("component", what),
		slog.String("keyword", keyword),
		slog.String("error", err.Error()),
	)
}
