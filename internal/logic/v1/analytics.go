package v1

import (
	"context"
	"database/sql"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/moodnest/moodnest-api/internal/core"
	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/i18n"
	"github.com/moodnest/moodnest-api/pkg/mood"
	"github.com/moodnest/moodnest-api/pkg/types"
	"github.com/moodnest/moodnest-api/pkg/utils"
)

type AnalyticsLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewAnalyticsLogic(ctx context.Context, core *core.Core) *AnalyticsLogic {
	l := &AnalyticsLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

func (l *AnalyticsLogic) snapshot() ([]types.JournalEntry, error) {
	userID, err := l.RequireUser()
	if err != nil {
		return nil, err
	}

	list, err := l.core.Store().JournalEntryStore().List(l.ctx, userID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AnalyticsLogic.snapshot.JournalEntryStore.List", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

// Stats derives streaks and the mood distribution from the owner snapshot.
func (l *AnalyticsLogic) Stats() (*types.JournalStats, error) {
	entries, err := l.snapshot()
	if err != nil {
		return nil, errors.Trace("AnalyticsLogic.Stats", err)
	}

	defer l.core.Metrics().ObserveAggregation("stats", time.Now())
	stats := BuildJournalStats(entries, time.Now())
	return &stats, nil
}

func (l *AnalyticsLogic) TopTags() ([]types.TagStat, error) {
	entries, err := l.snapshot()
	if err != nil {
		return nil, errors.Trace("AnalyticsLogic.TopTags", err)
	}

	defer l.core.Metrics().ObserveAggregation("top_tags", time.Now())
	return BuildTagStats(entries), nil
}

func (l *AnalyticsLogic) WordTrends() ([]types.WordTrendPoint, error) {
	entries, err := l.snapshot()
	if err != nil {
		return nil, errors.Trace("AnalyticsLogic.WordTrends", err)
	}

	defer l.core.Metrics().ObserveAggregation("word_trends", time.Now())
	return BuildWordTrends(entries), nil
}

// Overview computes every analytics block over a single snapshot so the
// pieces are consistent with each other.
func (l *AnalyticsLogic) Overview() (*types.AnalyticsResult, error) {
	entries, err := l.snapshot()
	if err != nil {
		return nil, errors.Trace("AnalyticsLogic.Overview", err)
	}

	defer l.core.Metrics().ObserveAggregation("overview", time.Now())
	return &types.AnalyticsResult{
		JournalStats: BuildJournalStats(entries, time.Now()),
		MostUsedTags: BuildTagStats(entries),
		WordTrends:   BuildWordTrends(entries),
	}, nil
}

// dateOnly truncates to the calendar day, normalized to UTC midnight so
// day arithmetic is exact regardless of the wall clock location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// distinctEntryDates reduces entries to their distinct calendar dates,
// sorted ascending.
func distinctEntryDates(entries []types.JournalEntry) []time.Time {
	seen := make(map[time.Time]struct{}, len(entries))
	var dates []time.Time
	for _, e := range entries {
		d := dateOnly(time.Unix(e.CreatedAt, 0))
		if _, exist := seen[d]; exist {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// BuildJournalStats is a pure transformation over an entry snapshot; today
// is passed in so callers and tests agree on what "current" means.
func BuildJournalStats(entries []types.JournalEntry, today time.Time) types.JournalStats {
	var stats types.JournalStats

	dates := distinctEntryDates(entries)
	if len(dates) > 0 {
		todayDate := dateOnly(today)

		run := 1
		longest := 1
		for i := 1; i < len(dates); i++ {
			gap := int(dates[i].Sub(dates[i-1]).Hours() / 24)
			if gap == 1 {
				run++
			} else {
				run = 1
			}
			if run > longest {
				longest = run
			}
		}

		stats.LongestStreak = longest
		// the streak only counts as current when it reaches today
		if dates[len(dates)-1].Equal(todayDate) {
			stats.CurrentStreak = run
		}

		span := int(todayDate.Sub(dates[0]).Hours()/24) + 1
		if missed := span - len(dates); missed > 0 {
			stats.MissedDays = missed
		}
	}

	mostFrequent, pos, neu, neg := buildMoodDistribution(entries)
	stats.MostFrequentMood = mostFrequent
	stats.PositivePercentage = pos
	stats.NeutralPercentage = neu
	stats.NegativePercentage = neg

	return stats
}

// buildMoodDistribution tallies normalized primary moods. Ties on the most
// frequent mood resolve to the first-encountered label; percentages round
// half away from zero and are not corrected to sum to 100.
func buildMoodDistribution(entries []types.JournalEntry) (mostFrequent string, positive, neutral, negative int) {
	if len(entries) == 0 {
		return "", 0, 0, 0
	}

	counts := make(map[string]int)
	var order []string
	categoryCounts := make(map[mood.Category]int)

	for _, e := range entries {
		word := mood.Normalize(e.PrimaryMood)
		if _, exist := counts[word]; !exist {
			order = append(order, word)
		}
		counts[word]++
		categoryCounts[mood.Classify(word)]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	mostFrequent = order[0]

	percent := func(c int) int {
		return int(math.Round(float64(c) / float64(len(entries)) * 100))
	}
	return mostFrequent,
		percent(categoryCounts[mood.CategoryPositive]),
		percent(categoryCounts[mood.CategoryNeutral]),
		percent(categoryCounts[mood.CategoryNegative])
}

// BuildTagStats counts comma separated tag tokens, case-sensitive, ranked
// by count with first-seen order breaking ties.
func BuildTagStats(entries []types.JournalEntry) []types.TagStat {
	counts := make(map[string]int)
	var order []string

	for _, e := range entries {
		if e.Tags == "" {
			continue
		}
		for _, token := range strings.Split(e.Tags, ",") {
			tag := strings.TrimSpace(token)
			if tag == "" {
				continue
			}
			if _, exist := counts[tag]; !exist {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	res := make([]types.TagStat, 0, len(order))
	for _, tag := range order {
		res = append(res, types.TagStat{Tag: tag, Count: counts[tag]})
	}
	return res
}

// BuildWordTrends emits one point per entry, ordered by creation date
// ascending. Markup is stripped without decoding entities.
func BuildWordTrends(entries []types.JournalEntry) []types.WordTrendPoint {
	sorted := make([]types.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt < sorted[j].CreatedAt
	})

	res := make([]types.WordTrendPoint, 0, len(sorted))
	for _, e := range sorted {
		res = append(res, types.WordTrendPoint{
			Date:      time.Unix(e.CreatedAt, 0),
			WordCount: utils.CountWords(utils.StripHTMLTags(e.ContentHTML)),
		})
	}
	return res
}
