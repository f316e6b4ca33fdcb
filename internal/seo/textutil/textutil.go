// Package textutil provides the text normalization and similarity
// helpers shared by retrieval and generation.
package textutil

import (
	"regexp"
	"strings"
)

var (
	htmlTagPattern     = regexp.MustCompile(`<[^>]+>`)
	disallowedPattern  = regexp.MustCompile(`[^\w\s.,!?\-:;]`)
	nonWordCharPattern = regexp.MustCompile(`[^\w]`)
	letterOnlyPattern  = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// Clean strips HTML tags, collapses whitespace, and removes special
// characters while keeping basic punctuation.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = htmlTagPattern.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")
	text = disallowedPattern.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}

// JaccardSimilarity computes word-set overlap between two strings,
// returning a value in [0, 1].
func JaccardSimilarity(text1, text2 string) float64 {
	if text1 == "" || text2 == "" {
		return 0.0
	}

	words1 := wordSet(text1)
	words2 := wordSet(text2)

	intersection := 0
	for w := range words1 {
		if _, ok := words2[w]; ok {
			intersection++
		}
	}
	union := len(words1) + len(words2) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = struct{}{}
	}
	return set
}

// ExtractKeywords pulls candidate keywords from text: alphabetic words
// of at least minLength characters, title-cased, deduplicated in order
// of first appearance.
func ExtractKeywords(text string, minLength int) []string {
	if text == "" {
		return nil
	}

	words := strings.Fields(strings.ToLower(Clean(text)))

	seen := make(map[string]struct{})
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		clean := nonWordCharPattern.ReplaceAllString(word, "")
		if len(clean) < minLength || !letterOnlyPattern.MatchString(clean) {
			continue
		}
		titled := Title(clean)
		if _, ok := seen[titled]; ok {
			continue
		}
		seen[titled] = struct{}{}
		keywords = append(keywords, titled)
	}

	return keywords
}

// Title upper-cases the first letter of each space-separated word.
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// TruncateAtWord cuts s to at most max characters, backing up to the
// last word boundary when one exists.
func TruncateAtWord(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := s[:max]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}

// CountWords returns the number of whitespace-separated words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
