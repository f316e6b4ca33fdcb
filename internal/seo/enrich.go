package seo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seoscribe/seoscribe/internal/model"
	"github.com/seoscribe/seoscribe/internal/seo/textutil"
)

// Enrichment limits.
const (
	relatedKeywordsLimit      = 10
	contentOpportunitiesLimit = 8
	userQuestionsLimit        = 8
)

// relatedKeywordStopWords are filtered out of extracted keywords.
var relatedKeywordStopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "have": {}, "will": {}, "from": {},
	"they": {}, "been": {}, "their": {}, "said": {}, "each": {}, "which": {},
	"what": {}, "where": {}, "when": {}, "more": {}, "very": {}, "some": {},
	"could": {}, "other": {}, "after": {}, "first": {}, "well": {}, "many": {},
	"most": {}, "also": {},
}

// RelatedKeywords extracts keyword candidates from the retrieved pages,
// sorted by length (longer first), then by frequency.
func RelatedKeywords(keyword string, results []model.WikipediaResult) []string {
	var all strings.Builder
	all.WriteString(keyword + " ")
	for _, r := range results {
		all.WriteString(r.Title + " " + r.Snippet + " ")
	}
	allText := all.String()
	allTextLower := strings.ToLower(allText)

	keywordLower := strings.ToLower(keyword)
	related := make([]string, 0, relatedKeywordsLimit)

	for _, kw := range textutil.ExtractKeywords(allText, 4) {
		kwLower := strings.ToLower(kw)
		if kwLower == keywordLower {
			continue
		}
		if _, stop := relatedKeywordStopWords[kwLower]; stop {
			continue
		}
		related = append(related, kw)
	}

	// Longer keywords first, ties broken by corpus frequency.
	sort.SliceStable(related, func(i, j int) bool {
		a, b := related[i], related[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return strings.Count(allTextLower, strings.ToLower(a)) > strings.Count(allTextLower, strings.ToLower(b))
	})

	if len(related) > relatedKeywordsLimit {
		related = related[:relatedKeywordsLimit]
	}
	return related
}

// ContentOpportunities suggests article angles from title templates and
// the top retrieved pages.
func ContentOpportunities(keyword string, results []model.WikipediaResult) []string {
	titled := textutil.Title(keyword)

	opportunities := []string{
		fmt.Sprintf("The Complete Guide to %s", titled),
		fmt.Sprintf("%s for Beginners: Everything You Need to Know", titled),
		fmt.Sprintf("Best %s Practices in 2025", titled),
		fmt.Sprintf("%s vs Alternatives: Comprehensive Comparison", titled),
		fmt.Sprintf("Common %s Mistakes and How to Avoid Them", titled),
	}

	for _, r := range topN(results, 3) {
		opportunities = append(opportunities,
			fmt.Sprintf("How %s Relates to %s", r.Title, titled),
			fmt.Sprintf("Understanding %s: A %s Perspective", r.Title, titled),
			fmt.Sprintf("The Role of %s in Modern %s", r.Title, titled),
		)
	}

	return dedupe(opportunities, contentOpportunitiesLimit)
}

// UserQuestions builds the question set searchers typically ask.
func UserQuestions(keyword string, results []model.WikipediaResult) []string {
	questions := []string{
		fmt.Sprintf("What is %s?", keyword),
		fmt.Sprintf("How does %s work?", keyword),
		fmt.Sprintf("Why is %s important?", keyword),
		fmt.Sprintf("What are the benefits of %s?", keyword),
		fmt.Sprintf("How to get started with %s?", keyword),
		fmt.Sprintf("What are common %s mistakes?", keyword),
		fmt.Sprintf("Best %s tools and resources?", keyword),
		fmt.Sprintf("How to improve your %s skills?", keyword),
	}

	for _, r := range topN(results, 2) {
		questions = append(questions,
			fmt.Sprintf("How is %s related to %s?", r.Title, keyword),
			fmt.Sprintf("What role does %s play in %s?", r.Title, keyword),
			fmt.Sprintf("Should I learn about %s for %s?", r.Title, keyword),
		)
	}

	return dedupe(questions, userQuestionsLimit)
}

func topN(results []model.WikipediaResult, n int) []model.WikipediaResult {
	if len(results) > n {
		return results[:n]
	}
	return results
}

func dedupe(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, limit)
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
