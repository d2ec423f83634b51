package sqlstore

import (
	"context"
	"database/sql"
	"math/rand"

	"github.com/jmoiron/sqlx"
)

type ConnectConfig struct {
	DSN string `toml:"dsn"`
}

// Executor is the query surface shared by *sqlx.DB and *sqlx.Tx so stores
// run unchanged inside or outside a transaction.
type Executor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
}

type SqlProvider struct {
	master   *sqlx.DB
	replicas []*sqlx.DB
}

func MustSetupProvider(m ConnectConfig, s ...ConnectConfig) *SqlProvider {
	p := &SqlProvider{
		master: sqlx.MustConnect("postgres", m.DSN),
	}
	for _, cfg := range s {
		p.replicas = append(p.replicas, sqlx.MustConnect("postgres", cfg.DSN))
	}
	return p
}

type transactionKey struct{}

// GetMaster returns the write handle, or the transaction carried by ctx.
func (p *SqlProvider) GetMaster(ctx context.Context) Executor {
	if tx, ok := ctx.Value(transactionKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return p.master
}

// GetReplica returns a read handle; inside a transaction all reads go
// through the transaction to see uncommitted writes.
func (p *SqlProvider) GetReplica(ctx context.Context) Executor {
	if tx, ok := ctx.Value(transactionKey{}).(*sqlx.Tx); ok {
		return tx
	}
	if len(p.replicas) == 0 {
		return p.master
	}
	return p.replicas[rand.Intn(len(p.replicas))]
}

func (p *SqlProvider) Transaction(ctx context.Context, f func(ctx context.Context) error) error {
	if _, ok := ctx.Value(transactionKey{}).(*sqlx.Tx); ok {
		// already inside a transaction
		return f(ctx)
	}

	tx, err := p.master.Beginx()
	if err != nil {
		return err
	}

	if err = f(context.WithValue(ctx, transactionKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
