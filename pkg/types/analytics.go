package types

import "time"

// JournalStats combines streak metrics with the mood distribution.
// Percentages are rounded half away from zero independently of each other,
// so they may not sum to exactly 100.
type JournalStats struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	MissedDays    int `json:"missed_days"`

	MostFrequentMood   string `json:"most_frequent_mood"`
	PositivePercentage int    `json:"positive_percentage"`
	NeutralPercentage  int    `json:"neutral_percentage"`
	NegativePercentage int    `json:"negative_percentage"`
}

type TagStat struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type WordTrendPoint struct {
	Date      time.Time `json:"date"`
	WordCount int       `json:"word_count"`
}

// AnalyticsResult is the combined insight payload for the analytics page.
type AnalyticsResult struct {
	JournalStats

	MostUsedTags []TagStat        `json:"most_used_tags"`
	WordTrends   []WordTrendPoint `json:"word_trends"`
}

// CalendarDay describes a single day of the month view. EntryID and
// MoodCategory are only set when HasEntry is true.
type CalendarDay struct {
	Date         time.Time `json:"date"`
	DayNumber    int       `json:"day_number"`
	IsToday      bool      `json:"is_today"`
	HasEntry     bool      `json:"has_entry"`
	EntryID      string    `json:"entry_id,omitempty"`
	MoodCategory string    `json:"mood_category,omitempty"`
}

// JournalFilter criteria compose with AND semantics across fields, while the
// Moods and Tags lists match with OR within themselves.
type JournalFilter struct {
	SearchText string     `json:"search_text"`
	FromDate   *time.Time `json:"from_date"`
	ToDate     *time.Time `json:"to_date"`
	Category   string     `json:"category"`
	Moods      []string   `json:"moods"`
	Tags       []string   `json:"tags"`
}
