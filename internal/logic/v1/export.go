package v1

import (
	"context"
	"database/sql"
	"time"

	"github.com/moodnest/moodnest-api/internal/core"
	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/export"
	"github.com/moodnest/moodnest-api/pkg/i18n"
)

type ExportLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewExportLogic(ctx context.Context, core *core.Core) *ExportLogic {
	l := &ExportLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

// ExportRange renders the owner's entries between from and to (inclusive,
// date granularity) into a PDF and returns its path.
func (l *ExportLogic) ExportRange(from, to time.Time) (string, error) {
	userID, err := l.RequireUser()
	if err != nil {
		return "", errors.Trace("ExportLogic.ExportRange", err)
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.Local)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, 1)
	entries, err := l.core.Store().JournalEntryStore().ListByDateRange(l.ctx, userID, start, end)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("ExportLogic.ExportRange.JournalEntryStore.ListByDateRange", i18n.ERROR_INTERNAL, err)
	}

	path, err := export.JournalPDF(l.core.Cfg().Export.Path(), entries, from, to)
	if err != nil {
		return "", errors.New("ExportLogic.ExportRange.JournalPDF", i18n.ERROR_INTERNAL, err)
	}
	return path, nil
}
