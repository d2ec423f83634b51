package v1_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/moodnest/moodnest-api/internal/logic/v1"
	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/types"
)

func Test_JournalCreate(t *testing.T) {
	app, _ := newTestCore()
	logic := v1.NewJournalLogic(userContext("user-1"), app)

	entry, err := logic.Create(types.CreateJournalEntryArgs{
		Title:       "First entry",
		ContentHTML: "<p>Hello world</p>",
		PrimaryMood: "😊 Happy",
		Tags:        "#start",
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, types.DEFAULT_CATEGORY, entry.Category)

	got, err := logic.Get(entry.ID)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, entry.Title, got.Title)
}

func Test_JournalCreate_Validation(t *testing.T) {
	app, _ := newTestCore()
	logic := v1.NewJournalLogic(userContext("user-1"), app)

	_, err := logic.Create(types.CreateJournalEntryArgs{})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errors.HTTPCode(err))
	// all missing fields reported at once
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "content")
	assert.Contains(t, err.Error(), "primary mood")
}

func Test_JournalCreate_OneEntryPerDay(t *testing.T) {
	app, _ := newTestCore()
	logic := v1.NewJournalLogic(userContext("user-1"), app)

	args := types.CreateJournalEntryArgs{
		Title:       "Entry",
		ContentHTML: "<p>text</p>",
		PrimaryMood: "😌 Calm",
	}

	_, err := logic.Create(args)
	if err != nil {
		t.Fatal(err)
	}

	_, err = logic.Create(args)
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, errors.HTTPCode(err))

	// a different user is not blocked by the first one
	other := v1.NewJournalLogic(userContext("user-2"), app)
	_, err = other.Create(args)
	assert.NoError(t, err)
}

func Test_JournalGet_OtherUsersEntryIsNotFound(t *testing.T) {
	app, _ := newTestCore()

	owner := v1.NewJournalLogic(userContext("user-1"), app)
	entry, err := owner.Create(types.CreateJournalEntryArgs{
		Title:       "Private",
		ContentHTML: "<p>secret</p>",
		PrimaryMood: "😊 Happy",
	})
	if err != nil {
		t.Fatal(err)
	}

	stranger := v1.NewJournalLogic(userContext("user-2"), app)
	_, err = stranger.Get(entry.ID)
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errors.HTTPCode(err))
}

func Test_JournalUpdate(t *testing.T) {
	app, _ := newTestCore()
	logic := v1.NewJournalLogic(userContext("user-1"), app)

	entry, err := logic.Create(types.CreateJournalEntryArgs{
		Title:       "Before",
		ContentHTML: "<p>before</p>",
		PrimaryMood: "😊 Happy",
		Category:    "Work",
	})
	if err != nil {
		t.Fatal(err)
	}

	err = logic.Update(entry.ID, types.UpdateJournalEntryArgs{
		Title:       "After",
		ContentHTML: "<p>after</p>",
		PrimaryMood: "😌 Calm",
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := logic.Get(entry.ID)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "😌 Calm", got.PrimaryMood)
	// omitted category falls back to the default
	assert.Equal(t, types.DEFAULT_CATEGORY, got.Category)
}

func Test_JournalUpdate_NotFound(t *testing.T) {
	app, _ := newTestCore()
	logic := v1.NewJournalLogic(userContext("user-1"), app)

	err := logic.Update("missing", types.UpdateJournalEntryArgs{
		Title:       "x",
		ContentHTML: "y",
		PrimaryMood: "😊 Happy",
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errors.HTTPCode(err))
}

func Test_JournalDelete(t *testing.T) {
	app, _ := newTestCore()
	logic := v1.NewJournalLogic(userContext("user-1"), app)

	entry, err := logic.Create(types.CreateJournalEntryArgs{
		Title:       "Gone soon",
		ContentHTML: "<p>bye</p>",
		PrimaryMood: "😢 Sad",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := logic.Delete(entry.ID); err != nil {
		t.Fatal(err)
	}

	_, err = logic.Get(entry.ID)
	assert.Equal(t, http.StatusNotFound, errors.HTTPCode(err))

	err = logic.Delete(entry.ID)
	assert.Equal(t, http.StatusNotFound, errors.HTTPCode(err))
}

func Test_JournalListDisplay(t *testing.T) {
	app, _ := newTestCore()
	logic := v1.NewJournalLogic(userContext("user-1"), app)

	entry, err := logic.Create(types.CreateJournalEntryArgs{
		Title:       "Display",
		ContentHTML: "<p>text</p>",
		PrimaryMood: "😊 Happy",
	})
	if err != nil {
		t.Fatal(err)
	}

	list, err := logic.ListDisplay()
	if err != nil {
		t.Fatal(err)
	}

	assert.Len(t, list, 1)
	assert.Equal(t, entry.ID, list[0].ID)
	assert.NotZero(t, list[0].Day)
	assert.NotEmpty(t, list[0].Month)
	assert.NotZero(t, list[0].Year)
}
