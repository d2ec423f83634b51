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
		provider.stores.AccessTokenStore = NewAccessTokenStore(provider)
	})
}

type AccessTokenStore struct {
	CommonFields
}

func NewAccessTokenStore(provider SqlProviderAchieve) *AccessTokenStore {
	repo := &AccessTokenStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_ACCESS_TOKEN)
	repo.SetAllColumns("id", "user_id", "token", "info", "expires_at", "created_at")
	return repo
}

// Create
func (s *AccessTokenStore) Create(ctx context.Context, data types.AccessToken) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("user_id", "token", "info", "expires_at", "created_at").
		Values(data.UserID, data.Token, data.Info, data.ExpiresAt, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// GetAccessToken
func (s *AccessTokenStore) GetAccessToken(ctx context.Context, token string) (*types.AccessToken, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"token": token})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.AccessToken
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete
func (s *AccessTokenStore) Delete(ctx context.Context, userID, token string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "token": token})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
