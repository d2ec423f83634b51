package v1

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/moodnest/moodnest-api/internal/core"
	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/i18n"
	"github.com/moodnest/moodnest-api/pkg/types"
	"github.com/moodnest/moodnest-api/pkg/utils"
)

const MAX_TITLE_LENGTH = 200

type JournalLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewJournalLogic(ctx context.Context, core *core.Core) *JournalLogic {
	l := &JournalLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

// validateEntryArgs returns one combined message for everything missing,
// checked before any persistence attempt.
func validateEntryArgs(title, contentHTML, primaryMood string) error {
	var missing []string
	if strings.TrimSpace(title) == "" {
		missing = append(missing, "title")
	}
	if len(title) > MAX_TITLE_LENGTH {
		missing = append(missing, "title too long")
	}
	if strings.TrimSpace(contentHTML) == "" {
		missing = append(missing, "content")
	}
	if strings.TrimSpace(primaryMood) == "" {
		missing = append(missing, "primary mood")
	}

	if len(missing) != 0 {
		return errors.New("JournalLogic.validateEntryArgs", i18n.ERROR_INVALIDARGUMENT,
			fmt.Errorf("invalid entry: %s", strings.Join(missing, ", "))).Code(http.StatusBadRequest)
	}
	return nil
}

func (l *JournalLogic) Create(args types.CreateJournalEntryArgs) (*types.JournalEntry, error) {
	userID, err := l.RequireUser()
	if err != nil {
		return nil, errors.Trace("JournalLogic.Create", err)
	}

	if err = validateEntryArgs(args.Title, args.ContentHTML, args.PrimaryMood); err != nil {
		return nil, errors.Trace("JournalLogic.Create", err)
	}

	now := time.Now()
	existing, err := l.core.Store().JournalEntryStore().GetByDate(l.ctx, userID, now)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.Create.JournalEntryStore.GetByDate", i18n.ERROR_INTERNAL, err)
	}
	if existing != nil {
		return nil, errors.New("JournalLogic.Create.entryExistsToday", i18n.ERROR_ENTRY_EXISTS_TODAY, nil).Code(http.StatusConflict)
	}

	entry := types.JournalEntry{
		ID:             utils.GenSpecIDStr(),
		UserID:         userID,
		Title:          args.Title,
		ContentHTML:    args.ContentHTML,
		PrimaryMood:    args.PrimaryMood,
		SecondaryMoods: args.SecondaryMoods,
		Category:       args.Category,
		Tags:           args.Tags,
		CreatedAt:      now.Unix(),
		UpdatedAt:      now.Unix(),
	}
	if entry.Category == "" {
		entry.Category = types.DEFAULT_CATEGORY
	}

	if err = l.core.Store().JournalEntryStore().Create(l.ctx, entry); err != nil {
		return nil, errors.New("JournalLogic.Create.JournalEntryStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return &entry, nil
}

func (l *JournalLogic) Get(id string) (*types.JournalEntry, error) {
	userID, err := l.RequireUser()
	if err != nil {
		return nil, errors.Trace("JournalLogic.Get", err)
	}

	data, err := l.core.Store().JournalEntryStore().Get(l.ctx, userID, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.Get.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}

	if data == nil {
		return nil, errors.New("JournalLogic.Get.JournalEntryStore.Get.nil", i18n.ERROR_NOTFOUND, err).Code(http.StatusNotFound)
	}

	return data, nil
}

// ListDisplay returns the owner's entries projected for the list page,
// most recent first.
func (l *JournalLogic) ListDisplay() ([]types.JournalEntryDisplay, error) {
	userID, err := l.RequireUser()
	if err != nil {
		return nil, errors.Trace("JournalLogic.ListDisplay", err)
	}

	list, err := l.core.Store().JournalEntryStore().List(l.ctx, userID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.ListDisplay.JournalEntryStore.List", i18n.ERROR_INTERNAL, err)
	}

	return lo.Map(list, func(item types.JournalEntry, _ int) types.JournalEntryDisplay {
		return toDisplay(item)
	}), nil
}

func (l *JournalLogic) Update(id string, args types.UpdateJournalEntryArgs) error {
	userID, err := l.RequireUser()
	if err != nil {
		return errors.Trace("JournalLogic.Update", err)
	}

	if err = validateEntryArgs(args.Title, args.ContentHTML, args.PrimaryMood); err != nil {
		return errors.Trace("JournalLogic.Update", err)
	}

	old, err := l.core.Store().JournalEntryStore().Get(l.ctx, userID, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("JournalLogic.Update.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if old == nil {
		return errors.New("JournalLogic.Update.JournalEntryStore.Get.nil", i18n.ERROR_NOTFOUND, err).Code(http.StatusNotFound)
	}

	if args.Category == "" {
		args.Category = types.DEFAULT_CATEGORY
	}

	if err = l.core.Store().JournalEntryStore().Update(l.ctx, userID, id, args); err != nil {
		return errors.New("JournalLogic.Update.JournalEntryStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *JournalLogic) Delete(id string) error {
	userID, err := l.RequireUser()
	if err != nil {
		return errors.Trace("JournalLogic.Delete", err)
	}

	old, err := l.core.Store().JournalEntryStore().Get(l.ctx, userID, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("JournalLogic.Delete.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if old == nil {
		return errors.New("JournalLogic.Delete.JournalEntryStore.Get.nil", i18n.ERROR_NOTFOUND, err).Code(http.StatusNotFound)
	}

	if err = l.core.Store().JournalEntryStore().Delete(l.ctx, userID, id); err != nil {
		return errors.New("JournalLogic.Delete.JournalEntryStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func toDisplay(e types.JournalEntry) types.JournalEntryDisplay {
	createdAt := time.Unix(e.CreatedAt, 0)
	return types.JournalEntryDisplay{
		ID:             e.ID,
		Title:          e.Title,
		PrimaryMood:    e.PrimaryMood,
		SecondaryMoods: e.SecondaryMoods,
		Category:       e.Category,
		Tags:           e.Tags,
		Day:            createdAt.Day(),
		Month:          createdAt.Month().String(),
		Year:           createdAt.Year(),
		CreatedAt:      e.CreatedAt,
	}
}
