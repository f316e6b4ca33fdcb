// Package model defines domain entities for the application.
package model

import (
	"strings"
	"time"
)

// SearchIntent classifies what a searcher is trying to accomplish.
type SearchIntent string

const (
	IntentInformational SearchIntent = "informational"
	IntentNavigational  SearchIntent = "navigational"
	IntentTransactional SearchIntent = "transactional"
	IntentCommercial    SearchIntent = "commercial"
)

// ContentType classifies the recommended article format.
type ContentType string

const (
	ContentBlogPost   ContentType = "blog_post"
	ContentGuide      ContentType = "guide"
	ContentTutorial   ContentType = "tutorial"
	ContentComparison ContentType = "comparison"
	ContentListicle   ContentType = "listicle"
	ContentHowTo      ContentType = "how_to"
	ContentReview     ContentType = "review"
)

// WikipediaResult is a single search hit from the Wikipedia API.
type WikipediaResult struct {
	Title          string  `json:"title"`
	Snippet        string  `json:"snippet"`
	URL            string  `json:"url"`
	RelevanceScore float64 `json:"relevance_score"`
}

// SEOContext aggregates everything retrieved for a keyword. It is the
// input to every prompt the generator builds.
type SEOContext struct {
	Keyword              string            `json:"keyword"`
	UserGoal             string            `json:"user_goal,omitempty"`
	SearchIntent         SearchIntent      `json:"search_intent"`
	IntentExplanation    string            `json:"intent_explanation"`
	RelatedKeywords      []string          `json:"related_keywords"`
	WikipediaData        []WikipediaResult `json:"wikipedia_data"`
	ContentOpportunities []string          `json:"content_opportunities"`
	CompetitiveLandscape string            `json:"competitive_landscape"`
	UserQuestions        []string          `json:"user_questions"`
	RetrievedAt          time.Time         `json:"retrieved_at"`
}

// ContentBrief is the structured plan for a single piece of content.
type ContentBrief struct {
	Keyword          string      `json:"keyword"`
	Title            string      `json:"title"`
	MetaDescription  string      `json:"meta_description"`
	Outline          []string    `json:"outline"`
	WordCountTarget  int         `json:"word_count_target"`
	InternalLinks    []string    `json:"internal_links"`
	CTASuggestions   []string    `json:"cta_suggestions"`
	OptimizationTips []string    `json:"optimization_tips"`
	ContentType      ContentType `json:"content_type"`
	CreatedAt        time.Time   `json:"created_at"`
}

// ContentSection is one heading plus its generated body.
type ContentSection struct {
	Heading   string `json:"heading"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
}

// NewContentSection builds a section with its word count computed.
func NewContentSection(heading, content string) ContentSection {
	return ContentSection{
		Heading:   heading,
		Content:   content,
		WordCount: countWords(content),
	}
}

// FullArticle is a complete generated article.
type FullArticle struct {
	Keyword         string           `json:"keyword"`
	Title           string           `json:"title"`
	MetaDescription string           `json:"meta_description"`
	Introduction    string           `json:"introduction"`
	Sections        []ContentSection `json:"sections"`
	Conclusion      string           `json:"conclusion"`
	TotalWordCount  int              `json:"total_word_count"`
	Brief           *ContentBrief    `json:"content_brief,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ComputeWordCount recalculates the total from the introduction,
// sections, and conclusion.
func (a *FullArticle) ComputeWordCount() {
	total := countWords(a.Introduction) + countWords(a.Conclusion)
	for _, s := range a.Sections {
		total += s.WordCount
	}
	a.TotalWordCount = total
}

// CalendarItem is a scheduled keyword in a content calendar.
type CalendarItem struct {
	Keyword             string       `json:"keyword"`
	Title               string       `json:"title"`
	ContentType         ContentType  `json:"content_type"`
	PriorityScore       float64      `json:"priority_score"`
	EstimatedDifficulty string       `json:"estimated_difficulty"`
	TargetWeek          int          `json:"target_week"`
	SearchIntent        SearchIntent `json:"search_intent"`
}

// CalendarWeek groups the items assigned to one week.
type CalendarWeek struct {
	Week         int            `json:"week"`
	Items        []CalendarItem `json:"items"`
	FocusKeyword string         `json:"focus_keyword"`
	ContentTypes []string       `json:"content_types"`
}

// ContentCalendar is a priority-ordered publication plan.
type ContentCalendar struct {
	TimeframeWeeks int            `json:"timeframe_weeks"`
	TotalKeywords  int            `json:"total_keywords"`
	Schedule       []CalendarWeek `json:"schedule"`
	CreatedAt      time.Time      `json:"created_at"`
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
