package seo

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/seoscribe/seoscribe/internal/model"
	"github.com/seoscribe/seoscribe/internal/seo/textutil"
)

// DefaultCalendarWeeks is the planning horizon when none is given.
const DefaultCalendarWeeks = 4

// PlanCalendar builds a publication schedule: keywords are scored,
// sorted by priority, and distributed across the timeframe so the most
// valuable topics land earliest.
func (p *Pipeline) PlanCalendar(ctx context.Context, keywords []string, timeframeWeeks int) *model.ContentCalendar {
	if timeframeWeeks <= 0 {
		timeframeWeeks = DefaultCalendarWeeks
	}

	p.logger.Info("planning content calendar",
		slog.Int("keywords", len(keywords)),
		slog.Int("weeks", timeframeWeeks),
	)

	items := make([]model.CalendarItem, 0, len(keywords))
	for _, keyword := range keywords {
		seoCtx := p.RetrieveContext(ctx, keyword, "")

		items = append(items, model.CalendarItem{
			Keyword:             keyword,
			Title:               fmt.Sprintf("Guide to %s", textutil.Title(keyword)),
			ContentType:         SuggestContentType(keyword),
			PriorityScore:       keywordPriority(seoCtx),
			EstimatedDifficulty: "Medium",
			SearchIntent:        seoCtx.SearchIntent,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PriorityScore > items[j].PriorityScore
	})

	perWeek := len(items) / timeframeWeeks
	if perWeek < 1 {
		perWeek = 1
	}

	weeks := make([]model.CalendarWeek, timeframeWeeks)
	for w := range weeks {
		weeks[w].Week = w + 1
	}

	for i := range items {
		week := i/perWeek + 1
		if week > timeframeWeeks {
			week = timeframeWeeks
		}
		items[i].TargetWeek = week
		weeks[week-1].Items = append(weeks[week-1].Items, items[i])
	}

	// Week focus is its highest-priority keyword; list the mix of
	// formats scheduled alongside it.
	for w := range weeks {
		if len(weeks[w].Items) == 0 {
			continue
		}
		weeks[w].FocusKeyword = weeks[w].Items[0].Keyword

		seen := make(map[string]struct{})
		for _, item := range weeks[w].Items {
			ct := string(item.ContentType)
			if _, ok := seen[ct]; !ok {
				seen[ct] = struct{}{}
				weeks[w].ContentTypes = append(weeks[w].ContentTypes, ct)
			}
		}
	}

	p.calendars.Add(1)
	p.recorder.IncCalendarGenerated()

	return &model.ContentCalendar{
		TimeframeWeeks: timeframeWeeks,
		TotalKeywords:  len(keywords),
		Schedule:       weeks,
		CreatedAt:      time.Now(),
	}
}

// keywordPriority scores a keyword from its intent and how rich the
// retrieved context is.
func keywordPriority(c *model.SEOContext) float64 {
	var score float64

	switch c.SearchIntent {
	case model.IntentTransactional:
		score += 3.0
	case model.IntentCommercial:
		score += 2.5
	case model.IntentInformational:
		score += 2.0
	}

	score += float64(len(c.ContentOpportunities)) * 0.1
	score += float64(len(c.RelatedKeywords)) * 0.05
	score += float64(len(c.WikipediaData)) * 0.2

	return score
}
