package seo

import (
	"testing"

	"github.com/seoscribe/seoscribe/internal/model"
)

func TestClassifyIntent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		keyword string
		want    model.SearchIntent
	}{
		{"buy running shoes", model.IntentTransactional},
		{"running shoes price", model.IntentTransactional},
		{"cheap flights to tokyo", model.IntentTransactional},
		{"best running shoes", model.IntentCommercial},
		{"nike vs adidas", model.IntentCommercial},
		{"crm software review", model.IntentCommercial},
		{"gmail login", model.IntentNavigational},
		{"python official website", model.IntentNavigational},
		{"how to bake bread", model.IntentInformational},
		{"golang tutorial", model.IntentInformational},
		{"what is machine learning", model.IntentInformational},
		{"quantum computing", model.IntentInformational},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.keyword, func(t *testing.T) {
			t.Parallel()

			got, explanation := ClassifyIntent(tt.keyword)
			if got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %s, want %s", tt.keyword, got, tt.want)
			}
			if explanation == "" {
				t.Error("expected a non-empty explanation")
			}
		})
	}
}

func TestClassifyIntent_TransactionalBeatsCommercial(t *testing.T) {
	t.Parallel()

	// "best price" matches both lists; transactional wins.
	got, _ := ClassifyIntent("best price for laptops")
	if got != model.IntentTransactional {
		t.Errorf("expected transactional for mixed signals, got %s", got)
	}
}

func TestSuggestContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		keyword string
		want    model.ContentType
	}{
		{"how to train a puppy", model.ContentHowTo},
		{"react vs vue", model.ContentComparison},
		{"compare cloud providers", model.ContentComparison},
		{"best coffee makers", model.ContentListicle},
		{"top ten laptops", model.ContentListicle},
		{"beginners guide to chess", model.ContentGuide},
		{"docker tutorial", model.ContentTutorial},
		{"quantum computing", model.ContentBlogPost},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.keyword, func(t *testing.T) {
			t.Parallel()

			if got := SuggestContentType(tt.keyword); got != tt.want {
				t.Errorf("SuggestContentType(%q) = %s, want %s", tt.keyword, got, tt.want)
			}
		})
	}
}
