package v1

import (
	"context"
	"database/sql"
	"time"

	"github.com/moodnest/moodnest-api/internal/core"
	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/i18n"
	"github.com/moodnest/moodnest-api/pkg/mood"
	"github.com/moodnest/moodnest-api/pkg/types"
)

type CalendarLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewCalendarLogic(ctx context.Context, core *core.Core) *CalendarLogic {
	l := &CalendarLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

func (l *CalendarLogic) monthEntries(year int, month time.Month) ([]types.JournalEntry, error) {
	userID, err := l.RequireUser()
	if err != nil {
		return nil, err
	}

	start, end := monthRange(year, month)
	entries, err := l.core.Store().JournalEntryStore().ListByDateRange(l.ctx, userID, start, end)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("CalendarLogic.monthEntries.JournalEntryStore.ListByDateRange", i18n.ERROR_INTERNAL, err)
	}
	return entries, nil
}

// Month returns one record per day of the target month.
func (l *CalendarLogic) Month(year int, month time.Month) ([]types.CalendarDay, error) {
	entries, err := l.monthEntries(year, month)
	if err != nil {
		return nil, errors.Trace("CalendarLogic.Month", err)
	}

	return BuildMonth(entries, year, month, time.Now()), nil
}

// HasTodayEntry reports whether the owner already wrote today. Used to
// enforce the one entry per day rule.
func (l *CalendarLogic) HasTodayEntry() (bool, error) {
	userID, err := l.RequireUser()
	if err != nil {
		return false, errors.Trace("CalendarLogic.HasTodayEntry", err)
	}

	entry, err := l.core.Store().JournalEntryStore().GetByDate(l.ctx, userID, time.Now())
	if err != nil && err != sql.ErrNoRows {
		return false, errors.New("CalendarLogic.HasTodayEntry.JournalEntryStore.GetByDate", i18n.ERROR_INTERNAL, err)
	}
	return entry != nil, nil
}

// MissedDays lists every date of the target month strictly before today
// that has no entry.
func (l *CalendarLogic) MissedDays(year int, month time.Month) ([]time.Time, error) {
	entries, err := l.monthEntries(year, month)
	if err != nil {
		return nil, errors.Trace("CalendarLogic.MissedDays", err)
	}

	return MissedDaysInMonth(entries, year, month, time.Now()), nil
}

// BuildMonth is the pure month-view builder; month length follows the
// calendar, leap years included.
func BuildMonth(entries []types.JournalEntry, year int, month time.Month, today time.Time) []types.CalendarDay {
	byDate := make(map[time.Time]types.JournalEntry, len(entries))
	for _, e := range entries {
		d := dateOnly(time.Unix(e.CreatedAt, 0))
		if _, exist := byDate[d]; !exist {
			byDate[d] = e
		}
	}

	todayDate := dateOnly(today)
	// day 0 of the next month is the last day of this one
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	res := make([]types.CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		day := types.CalendarDay{
			Date:      date,
			DayNumber: d,
			IsToday:   date.Equal(todayDate),
		}

		if entry, exist := byDate[date]; exist {
			day.HasEntry = true
			day.EntryID = entry.ID
			day.MoodCategory = string(mood.Classify(mood.Normalize(entry.PrimaryMood)))
		}

		res = append(res, day)
	}
	return res
}

// MissedDaysInMonth is the pure companion of BuildMonth: dates of the
// month before today without an entry. Today itself never counts.
func MissedDaysInMonth(entries []types.JournalEntry, year int, month time.Month, today time.Time) []time.Time {
	covered := make(map[time.Time]struct{}, len(entries))
	for _, e := range entries {
		covered[dateOnly(time.Unix(e.CreatedAt, 0))] = struct{}{}
	}

	todayDate := dateOnly(today)
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var missed []time.Time
	for d := start; d.Before(end) && d.Before(todayDate); d = d.AddDate(0, 0, 1) {
		if _, exist := covered[d]; !exist {
			missed = append(missed, d)
		}
	}
	return missed
}
