package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/moodnest/moodnest-api/internal/store"
	"github.com/moodnest/moodnest-api/pkg/register"
	"github.com/moodnest/moodnest-api/pkg/sqlstore"
)

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

var provider = &Provider{
	stores: &Stores{},
}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.JournalEntryStore
	store.UserStore
	store.AccessTokenStore
}

type RegisterKey struct{}

func MustSetup(m sqlstore.ConnectConfig, s ...sqlstore.ConnectConfig) func() *Provider {
	provider.SqlProvider = sqlstore.MustSetupProvider(m, s...)

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}

	return func() *Provider {
		return provider
	}
}

func (p *Provider) JournalEntryStore() store.JournalEntryStore {
	return p.stores.JournalEntryStore
}

func (p *Provider) UserStore() store.UserStore {
	return p.stores.UserStore
}

func (p *Provider) AccessTokenStore() store.AccessTokenStore {
	return p.stores.AccessTokenStore
}

func ErrorSqlBuild(err error) error {
	return fmt.Errorf("sql build error: %w", err)
}

// SqlProviderAchieve is the handle surface stores need from the provider.
type SqlProviderAchieve interface {
	GetMaster(ctx context.Context) sqlstore.Executor
	GetReplica(ctx context.Context) sqlstore.Executor
}

// CommonFields carries the table metadata every store shares.
type CommonFields struct {
	provider   SqlProviderAchieve
	table      string
	allColumns []string
}

func (c *CommonFields) SetProvider(p SqlProviderAchieve) {
	c.provider = p
}

func (c *CommonFields) SetTable(table string) {
	c.table = table
}

func (c *CommonFields) GetTable() string {
	return c.table
}

func (c *CommonFields) SetAllColumns(columns ...string) {
	c.allColumns = columns
}

func (c *CommonFields) GetAllColumns() []string {
	return c.allColumns
}

func (c *CommonFields) GetMaster(ctx context.Context) sqlstore.Executor {
	return c.provider.GetMaster(ctx)
}

func (c *CommonFields) GetReplica(ctx context.Context) sqlstore.Executor {
	return c.provider.GetReplica(ctx)
}
