package v1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	v1 "github.com/moodnest/moodnest-api/internal/logic/v1"
	"github.com/moodnest/moodnest-api/pkg/types"
)

func entryOnDay(day time.Time, mood string) types.JournalEntry {
	return types.JournalEntry{
		PrimaryMood: mood,
		CreatedAt:   day.Unix(),
	}
}

func Test_BuildJournalStats_CurrentStreak(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	entries := []types.JournalEntry{
		entryOnDay(today.AddDate(0, 0, -2), "😊 Happy"),
		entryOnDay(today.AddDate(0, 0, -1), "😌 Calm"),
		entryOnDay(today, "😊 Happy"),
	}

	stats := v1.BuildJournalStats(entries, today)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
	assert.Equal(t, 0, stats.MissedDays)
}

func Test_BuildJournalStats_BrokenStreak(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// five day run long ago, then a single entry yesterday
	entries := []types.JournalEntry{}
	for i := 0; i < 5; i++ {
		entries = append(entries, entryOnDay(today.AddDate(0, 0, -20+i), "😊 Happy"))
	}
	entries = append(entries, entryOnDay(today.AddDate(0, 0, -1), "😢 Sad"))

	stats := v1.BuildJournalStats(entries, today)
	// the run never reaches today, so nothing is current
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 5, stats.LongestStreak)
	// span of 21 days, 6 of them written
	assert.Equal(t, 15, stats.MissedDays)
}

func Test_BuildJournalStats_MoodDistribution(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	entries := []types.JournalEntry{
		entryOnDay(today.AddDate(0, 0, -3), "😊 Happy"),
		entryOnDay(today.AddDate(0, 0, -2), "😌 Calm"),
		entryOnDay(today.AddDate(0, 0, -1), "😊 Happy"),
		entryOnDay(today, "😢 Sad"),
	}

	stats := v1.BuildJournalStats(entries, today)
	assert.Equal(t, "Happy", stats.MostFrequentMood)
	assert.Equal(t, 50, stats.PositivePercentage)
	assert.Equal(t, 25, stats.NeutralPercentage)
	assert.Equal(t, 25, stats.NegativePercentage)
}

func Test_BuildJournalStats_TieKeepsFirstSeenMood(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	entries := []types.JournalEntry{
		entryOnDay(today.AddDate(0, 0, -1), "😌 Calm"),
		entryOnDay(today, "😊 Happy"),
	}

	stats := v1.BuildJournalStats(entries, today)
	assert.Equal(t, "Calm", stats.MostFrequentMood)
}

func Test_BuildJournalStats_Empty(t *testing.T) {
	stats := v1.BuildJournalStats(nil, time.Now())
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 0, stats.LongestStreak)
	assert.Equal(t, 0, stats.MissedDays)
	assert.Equal(t, "", stats.MostFrequentMood)
}

func Test_BuildJournalStats_MultipleEntriesSameDay(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	entries := []types.JournalEntry{
		entryOnDay(today.AddDate(0, 0, -1), "😊 Happy"),
		entryOnDay(today.Add(-30*time.Minute), "😌 Calm"),
		entryOnDay(today, "😊 Happy"),
	}

	stats := v1.BuildJournalStats(entries, today)
	// today counts once even with two entries
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 2, stats.LongestStreak)
}

func Test_BuildTagStats(t *testing.T) {
	entries := []types.JournalEntry{
		{Tags: "#work, #family"},
		{Tags: "#work"},
		{Tags: ""},
	}

	tags := v1.BuildTagStats(entries)
	assert.Equal(t, []types.TagStat{
		{Tag: "#work", Count: 2},
		{Tag: "#family", Count: 1},
	}, tags)
}

func Test_BuildTagStats_TieKeepsFirstSeenOrder(t *testing.T) {
	entries := []types.JournalEntry{
		{Tags: "#b, #a"},
	}

	tags := v1.BuildTagStats(entries)
	assert.Equal(t, "#b", tags[0].Tag)
	assert.Equal(t, "#a", tags[1].Tag)
}

func Test_BuildWordTrends(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []types.JournalEntry{
		{ContentHTML: "<p>One two three</p>", CreatedAt: base.AddDate(0, 0, 1).Unix()},
		{ContentHTML: "<p>Hello world</p>", CreatedAt: base.Unix()},
	}

	trends := v1.BuildWordTrends(entries)
	assert.Len(t, trends, 2)
	// ordered ascending by date regardless of input order
	assert.Equal(t, 2, trends[0].WordCount)
	assert.Equal(t, 3, trends[1].WordCount)
	assert.True(t, trends[0].Date.Before(trends[1].Date))
}

func Test_AnalyticsOverview(t *testing.T) {
	app, provider := newTestCore()
	ctx := userContext("user-1")

	now := time.Now()
	provider.journal.Create(ctx, types.JournalEntry{
		ID:          "e1",
		UserID:      "user-1",
		PrimaryMood: "😊 Happy",
		Tags:        "#work",
		ContentHTML: "<p>Hello world</p>",
		CreatedAt:   now.Unix(),
	})
	// another user's entry must not leak into the overview
	provider.journal.Create(ctx, types.JournalEntry{
		ID:          "e2",
		UserID:      "user-2",
		PrimaryMood: "😢 Sad",
		CreatedAt:   now.Unix(),
	})

	result, err := v1.NewAnalyticsLogic(ctx, app).Overview()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 1, result.CurrentStreak)
	assert.Equal(t, "Happy", result.MostFrequentMood)
	assert.Equal(t, 100, result.PositivePercentage)
	assert.Equal(t, []types.TagStat{{Tag: "#work", Count: 1}}, result.MostUsedTags)
	assert.Len(t, result.WordTrends, 1)
	assert.Equal(t, 2, result.WordTrends[0].WordCount)
}

func Test_Analytics_Idempotent(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	entries := []types.JournalEntry{
		{PrimaryMood: "😊 Happy", Tags: "#a", ContentHTML: "<p>one two</p>", CreatedAt: today.AddDate(0, 0, -1).Unix()},
		{PrimaryMood: "😢 Sad", Tags: "#b, #a", ContentHTML: "<p>three</p>", CreatedAt: today.Unix()},
	}

	first := v1.BuildJournalStats(entries, today)
	second := v1.BuildJournalStats(entries, today)
	assert.Equal(t, first, second)

	assert.Equal(t, v1.BuildTagStats(entries), v1.BuildTagStats(entries))
	assert.Equal(t, v1.BuildWordTrends(entries), v1.BuildWordTrends(entries))

	// input order is never mutated by the builders
	assert.Equal(t, "😊 Happy", entries[0].PrimaryMood)
	assert.True(t, entries[0].CreatedAt < entries[1].CreatedAt)
}

func Test_AnalyticsRequiresUser(t *testing.T) {
	app, _ := newTestCore()

	_, err := v1.NewAnalyticsLogic(context.Background(), app).Stats()
	assert.Error(t, err)
}
