package v1

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/moodnest/moodnest-api/internal/core"
	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/i18n"
	"github.com/moodnest/moodnest-api/pkg/types"
)

type FilterLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewFilterLogic(ctx context.Context, core *core.Core) *FilterLogic {
	l := &FilterLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

// Filter applies the criteria to the owner's snapshot and projects the
// matches for display, most recent first. The snapshot is fetched owner
// scoped, so no criteria combination can widen the result beyond the
// caller's own entries.
func (l *FilterLogic) Filter(filter types.JournalFilter) ([]types.JournalEntryDisplay, error) {
	userID, err := l.RequireUser()
	if err != nil {
		return nil, errors.Trace("FilterLogic.Filter", err)
	}

	entries, err := l.core.Store().JournalEntryStore().List(l.ctx, userID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("FilterLogic.Filter.JournalEntryStore.List", i18n.ERROR_INTERNAL, err)
	}

	matched := FilterEntries(entries, filter)
	return lo.Map(matched, func(item types.JournalEntry, _ int) types.JournalEntryDisplay {
		return toDisplay(item)
	}), nil
}

// FilterEntries keeps entries matching every supplied criterion. Within
// the moods and tags lists any single match is enough.
func FilterEntries(entries []types.JournalEntry, filter types.JournalFilter) []types.JournalEntry {
	searchText := strings.ToLower(strings.TrimSpace(filter.SearchText))

	var res []types.JournalEntry
	for _, e := range entries {
		if searchText != "" &&
			!strings.Contains(strings.ToLower(e.Title), searchText) &&
			!strings.Contains(strings.ToLower(e.ContentHTML), searchText) {
			continue
		}

		createdDate := dateOnly(time.Unix(e.CreatedAt, 0))
		if filter.FromDate != nil && createdDate.Before(dateOnly(*filter.FromDate)) {
			continue
		}
		if filter.ToDate != nil && createdDate.After(dateOnly(*filter.ToDate)) {
			continue
		}

		if strings.TrimSpace(filter.Category) != "" && e.Category != filter.Category {
			continue
		}

		if len(filter.Moods) != 0 && !matchAny(filter.Moods, func(m string) bool {
			return strings.Contains(e.PrimaryMood, m) || strings.Contains(e.SecondaryMoods, m)
		}) {
			continue
		}

		if len(filter.Tags) != 0 && !matchAny(filter.Tags, func(t string) bool {
			return strings.Contains(e.Tags, t)
		}) {
			continue
		}

		res = append(res, e)
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt > res[j].CreatedAt
	})
	return res
}

func matchAny(list []string, match func(string) bool) bool {
	for _, item := range list {
		if match(item) {
			return true
		}
	}
	return false
}
