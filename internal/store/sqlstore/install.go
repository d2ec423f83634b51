package sqlstore

import (
	"context"
	"embed"
)

//go:embed schema/*.sql
var createTableFiles embed.FS

// Install creates the tables when they don't exist yet.
func (p *Provider) Install() error {
	for _, tableFile := range []string{
		"schema/mn_user.sql",
		"schema/mn_access_token.sql",
		"schema/mn_journal_entry.sql",
	} {
		raw, err := createTableFiles.ReadFile(tableFile)
		if err != nil {
			panic(err)
		}

		if _, err = p.GetMaster(context.Background()).Exec(string(raw)); err != nil {
			return err
		}
	}
	return nil
}
