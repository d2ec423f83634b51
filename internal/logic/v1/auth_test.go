package v1_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/moodnest/moodnest-api/internal/logic/v1"
	"github.com/moodnest/moodnest-api/pkg/errors"
)

func Test_AuthRegisterAndUnlock(t *testing.T) {
	app, provider := newTestCore()
	logic := v1.NewAuthLogic(context.Background(), app)

	user, err := logic.Register("alice", "alice@example.com", "1234")
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "1234", user.Pin)

	result, err := logic.Unlock("alice", "1234")
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)

	stored, err := provider.tokens.GetAccessToken(context.Background(), result.Token)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, user.ID, stored.UserID)

	claims, err := stored.TokenClaims()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, user.ID, claims.User)
}

func Test_AuthRegister_ShortPin(t *testing.T) {
	app, _ := newTestCore()
	logic := v1.NewAuthLogic(context.Background(), app)

	_, err := logic.Register("bob", "", "12")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errors.HTTPCode(err))
}

func Test_AuthRegister_DuplicateName(t *testing.T) {
	app, _ := newTestCore()
	logic := v1.NewAuthLogic(context.Background(), app)

	_, err := logic.Register("carol", "", "1234")
	if err != nil {
		t.Fatal(err)
	}

	_, err = logic.Register("carol", "", "5678")
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, errors.HTTPCode(err))
}

func Test_AuthUnlock_WrongPin(t *testing.T) {
	app, _ := newTestCore()
	logic := v1.NewAuthLogic(context.Background(), app)

	_, err := logic.Register("dave", "", "1234")
	if err != nil {
		t.Fatal(err)
	}

	_, err = logic.Unlock("dave", "9999")
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, errors.HTTPCode(err))

	// unknown name fails the same way as a wrong pin
	_, err = logic.Unlock("nobody", "1234")
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, errors.HTTPCode(err))
}

func Test_AuthLock(t *testing.T) {
	app, provider := newTestCore()

	registerLogic := v1.NewAuthLogic(context.Background(), app)
	user, err := registerLogic.Register("erin", "", "1234")
	if err != nil {
		t.Fatal(err)
	}

	result, err := registerLogic.Unlock("erin", "1234")
	if err != nil {
		t.Fatal(err)
	}

	ctx := userContext(user.ID)
	if err := v1.NewAuthLogic(ctx, app).Lock(result.Token); err != nil {
		t.Fatal(err)
	}

	_, err = provider.tokens.GetAccessToken(context.Background(), result.Token)
	assert.Error(t, err)
}

func Test_AuthLock_RequiresIdentity(t *testing.T) {
	app, _ := newTestCore()

	err := v1.NewAuthLogic(context.Background(), app).Lock("whatever")
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, errors.HTTPCode(err))
}
