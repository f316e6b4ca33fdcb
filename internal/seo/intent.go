// Package seo implements the keyword analysis and content generation
// pipeline: retrieval, intent classification, brief and article
// generation, bulk processing, and calendar planning.
package seo

import (
	"strings"

	"github.com/seoscribe/seoscribe/internal/model"
)

// Intent keyword lists, checked in order. Transactional signals beat
// commercial ones, which beat navigational, and so on.
var (
	transactionalWords = []string{"buy", "purchase", "order", "price", "cost", "cheap", "discount", "deal"}
	commercialWords    = []string{"best", "top", "review", "compare", "vs", "alternative", "recommendation"}
	navigationalWords  = []string{"login", "sign in", "website", "official"}
	howToWords         = []string{"how to", "tutorial", "guide", "learn", "step by step"}
	questionWords      = []string{"what", "why", "when", "where", "who", "which", "how"}
)

// ClassifyIntent determines the search intent of a keyword and returns
// a short explanation for the classification.
func ClassifyIntent(keyword string) (model.SearchIntent, string) {
	keywordLower := strings.ToLower(keyword)

	for _, w := range transactionalWords {
		if strings.Contains(keywordLower, w) {
			return model.IntentTransactional, "User appears to be ready to make a purchase or transaction"
		}
	}

	for _, w := range commercialWords {
		if strings.Contains(keywordLower, w) {
			return model.IntentCommercial, "User is researching options before making a decision"
		}
	}

	for _, w := range navigationalWords {
		if strings.Contains(keywordLower, w) {
			return model.IntentNavigational, "User is looking for a specific website or page"
		}
	}

	for _, w := range howToWords {
		if strings.Contains(keywordLower, w) {
			return model.IntentInformational, "User wants to learn how to do something"
		}
	}

	for _, w := range questionWords {
		if strings.HasPrefix(keywordLower, w) {
			return model.IntentInformational, "User is seeking information or answers"
		}
	}

	return model.IntentInformational, "General information seeking intent"
}

// SuggestContentType picks an article format from keyword substrings.
func SuggestContentType(keyword string) model.ContentType {
	keywordLower := strings.ToLower(keyword)

	switch {
	case strings.Contains(keywordLower, "how to"):
		return model.ContentHowTo
	case strings.Contains(keywordLower, "vs") || strings.Contains(keywordLower, "compare"):
		return model.ContentComparison
	case strings.Contains(keywordLower, "best") || strings.Contains(keywordLower, "top"):
		return model.ContentListicle
	case strings.Contains(keywordLower, "guide"):
		return model.ContentGuide
	case strings.Contains(keywordLower, "tutorial"):
		return model.ContentTutorial
	default:
		return model.ContentBlogPost
	}
}
