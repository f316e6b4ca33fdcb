package seo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/seoscribe/seoscribe/internal/model"
)

// fakeLLM routes prompts to a test-provided function.
type fakeLLM struct {
	fn func(prompt string) (string, error)
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	return f.fn(prompt)
}

var errLLMDown = errors.New("llm unavailable")

func failingLLM() *fakeLLM {
	return &fakeLLM{fn: func(string) (string, error) { return "", errLLMDown }}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testContext(keyword string) *model.SEOContext {
	intent, explanation := ClassifyIntent(keyword)
	return &model.SEOContext{
		Keyword:              keyword,
		SearchIntent:         intent,
		IntentExplanation:    explanation,
		RelatedKeywords:      []string{"Algorithms", "Statistics", "Neural"},
		WikipediaData:        sampleResults(),
		ContentOpportunities: ContentOpportunities(keyword, nil),
		UserQuestions:        UserQuestions(keyword, nil),
		CompetitiveLandscape: "Medium difficulty",
	}
}

func TestGenerateTitle(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(&fakeLLM{fn: func(string) (string, error) {
		return `"Machine Learning Explained: A Practical Introduction"`, nil
	}}, discardLogger())

	title := gen.GenerateTitle(context.Background(), testContext("machine learning"))

	if strings.ContainsAny(title, `"'`) {
		t.Errorf("quotes should be stripped, got %q", title)
	}
	if len(title) > TitleMaxLength {
		t.Errorf("title exceeds %d chars: %q", TitleMaxLength, title)
	}
}

func TestGenerateTitle_TruncatesLongOutput(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 30)
	gen := NewGenerator(&fakeLLM{fn: func(string) (string, error) { return long, nil }}, discardLogger())

	title := gen.GenerateTitle(context.Background(), testContext("machine learning"))
	if len(title) > TitleMaxLength {
		t.Errorf("title exceeds %d chars: %q (%d)", TitleMaxLength, title, len(title))
	}
	if strings.HasSuffix(title, " ") {
		t.Errorf("title has trailing space: %q", title)
	}
}

func TestGenerateTitle_Fallback(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(failingLLM(), discardLogger())

	title := gen.GenerateTitle(context.Background(), testContext("machine learning"))
	if title != "The Complete Guide to Machine Learning" {
		t.Errorf("unexpected fallback title: %q", title)
	}
}

func TestGenerateMetaDescription_Truncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("description words here ", 20)
	gen := NewGenerator(&fakeLLM{fn: func(string) (string, error) { return long, nil }}, discardLogger())

	desc := gen.GenerateMetaDescription(context.Background(), testContext("machine learning"), "Title")
	if len(desc) > MetaDescriptionMaxLength+3 {
		t.Errorf("meta description too long: %d chars", len(desc))
	}
	if !strings.HasSuffix(desc, "...") {
		t.Errorf("truncated description should end with ellipsis: %q", desc)
	}
}

func TestGenerateOutline_ParsesNumberedList(t *testing.T) {
	t.Parallel()

	response := "# Outline\n1. Introduction\n\n2. Core Concepts\n   a. Basics\n3. Conclusion\n"
	gen := NewGenerator(&fakeLLM{fn: func(string) (string, error) { return response, nil }}, discardLogger())

	outline := gen.GenerateOutline(context.Background(), testContext("machine learning"), "Title")

	want := []string{"1. Introduction", "2. Core Concepts", "a. Basics", "3. Conclusion"}
	if len(outline) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(outline), outline)
	}
	for i := range want {
		if outline[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, outline[i], want[i])
		}
	}
}

func TestGenerateOutline_Fallback(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(failingLLM(), discardLogger())

	outline := gen.GenerateOutline(context.Background(), testContext("machine learning"), "Title")
	if len(outline) != 7 {
		t.Errorf("expected 7 fallback outline items, got %d", len(outline))
	}
}

func TestDetermineWordCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
		err      error
		want     int
	}{
		{"plain number", "2000", nil, 2000},
		{"number in sentence", "I recommend around 2500 words.", nil, 2500},
		{"below minimum", "100", nil, MinWordCount},
		{"above maximum", "90000", nil, MaxWordCount},
		{"no number", "it depends", nil, DefaultWordCount},
		{"generation fails", "", errLLMDown, DefaultWordCount},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(&fakeLLM{fn: func(string) (string, error) {
				return tt.response, tt.err
			}}, discardLogger())

			got := gen.DetermineWordCount(context.Background(), testContext("machine learning"))
			if got != tt.want {
				t.Errorf("DetermineWordCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenerateBrief_AllFallbacks(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(failingLLM(), discardLogger())

	brief := gen.GenerateBrief(context.Background(), testContext("machine learning"))

	if brief.Title == "" || brief.MetaDescription == "" {
		t.Error("fallback brief should have title and meta description")
	}
	if len(brief.Outline) == 0 {
		t.Error("fallback brief should have an outline")
	}
	if brief.WordCountTarget != DefaultWordCount {
		t.Errorf("expected default word count, got %d", brief.WordCountTarget)
	}
	if len(brief.InternalLinks) == 0 || len(brief.CTASuggestions) == 0 || len(brief.OptimizationTips) == 0 {
		t.Error("template suggestions should always be present")
	}
	if brief.ContentType != model.ContentBlogPost {
		t.Errorf("expected blog_post content type, got %s", brief.ContentType)
	}
}

func TestGenerateArticle(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(&fakeLLM{fn: func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "blog post title"):
			return "ML in Practice", nil
		case strings.Contains(prompt, "meta description"):
			return "A practical look at machine learning for working engineers, with examples.", nil
		case strings.Contains(prompt, "blog post outline"):
			return "1. Introduction\n2. Models\n3. Training\n4. Evaluation\n5. Deployment\n6. Monitoring\n7. Appendix\n8. Extras", nil
		case strings.Contains(prompt, "optimal word count"):
			return "1800", nil
		case strings.Contains(prompt, "introduction"):
			return "Machine learning is everywhere. This article shows how to use it.", nil
		case strings.Contains(prompt, "conclusion"):
			return "Start small, measure, and iterate.", nil
		default:
			return "Section body with several words of content for counting.", nil
		}
	}}, discardLogger())

	article := gen.GenerateArticle(context.Background(), testContext("machine learning"), nil)

	if article.Title != "ML in Practice" {
		t.Errorf("unexpected title: %q", article.Title)
	}
	if len(article.Sections) != 6 {
		t.Errorf("expected sections capped at 6, got %d", len(article.Sections))
	}
	if article.Brief == nil {
		t.Error("article should carry its brief")
	}

	wordSum := len(strings.Fields(article.Introduction)) + len(strings.Fields(article.Conclusion))
	for _, s := range article.Sections {
		wordSum += s.WordCount
	}
	if article.TotalWordCount != wordSum {
		t.Errorf("TotalWordCount = %d, want %d", article.TotalWordCount, wordSum)
	}
}

func TestGenerateArticle_NeverFails(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(failingLLM(), discardLogger())

	article := gen.GenerateArticle(context.Background(), testContext("machine learning"), nil)

	if article.Introduction == "" || article.Conclusion == "" {
		t.Error("fallback article should have introduction and conclusion")
	}
	if len(article.Sections) == 0 {
		t.Error("fallback article should have sections from the fallback outline")
	}
	if article.TotalWordCount == 0 {
		t.Error("fallback article should have a word count")
	}
}
