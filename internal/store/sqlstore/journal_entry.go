package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/moodnest/moodnest-api/pkg/register"
	"github.com/moodnest/moodnest-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.JournalEntryStore = NewJournalEntryStore(provider)
	})
}

type JournalEntryStore struct {
	CommonFields
}

func NewJournalEntryStore(provider SqlProviderAchieve) *JournalEntryStore {
	repo := &JournalEntryStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNAL_ENTRY)
	repo.SetAllColumns("id", "user_id", "title", "content_html", "primary_mood", "secondary_moods", "category", "tags", "created_at", "updated_at")
	return repo
}

// Create
func (s *JournalEntryStore) Create(ctx context.Context, data types.JournalEntry) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.UserID, data.Title, data.ContentHTML, data.PrimaryMood, data.SecondaryMoods, data.Category, data.Tags, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Get is scoped by user_id so foreign ids behave like missing ones.
func (s *JournalEntryStore) Get(ctx context.Context, userID, id string) (*types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.JournalEntry
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// List returns the full owner snapshot, most recent first.
func (s *JournalEntryStore) List(ctx context.Context, userID string) ([]types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// ListByDateRange returns entries with start <= created_at < end.
func (s *JournalEntryStore) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": start.Unix()}).
		Where(sq.Lt{"created_at": end.Unix()}).
		OrderBy("created_at ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// GetByDate returns the entry created on the calendar day of the given time.
func (s *JournalEntryStore) GetByDate(ctx context.Context, userID string, day time.Time) (*types.JournalEntry, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": dayStart.Unix()}).
		Where(sq.Lt{"created_at": dayEnd.Unix()}).
		Limit(1)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.JournalEntry
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update
func (s *JournalEntryStore) Update(ctx context.Context, userID, id string, data types.UpdateJournalEntryArgs) error {
	query := sq.Update(s.GetTable()).
		Set("title", data.Title).
		Set("content_html", data.ContentHTML).
		Set("primary_mood", data.PrimaryMood).
		Set("secondary_moods", data.SecondaryMoods).
		Set("category", data.Category).
		Set("tags", data.Tags).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Delete
func (s *JournalEntryStore) Delete(ctx context.Context, userID, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
