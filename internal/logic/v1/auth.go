package v1

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/moodnest/moodnest-api/internal/core"
	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/i18n"
	"github.com/moodnest/moodnest-api/pkg/security"
	"github.com/moodnest/moodnest-api/pkg/types"
	"github.com/moodnest/moodnest-api/pkg/utils"
)

const MIN_PIN_LENGTH = 4

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	l := &AuthLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *AuthLogic) Register(name, email, pin string) (*types.User, error) {
	if strings.TrimSpace(name) == "" || len(pin) < MIN_PIN_LENGTH {
		return nil, errors.New("AuthLogic.Register.args", i18n.ERROR_INVALIDARGUMENT,
			fmt.Errorf("name and a pin of at least %d characters are required", MIN_PIN_LENGTH)).Code(http.StatusBadRequest)
	}

	exist, err := l.core.Store().UserStore().GetByName(l.ctx, name)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.Register.UserStore.GetByName", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return nil, errors.New("AuthLogic.Register.UserStore.GetByName.exist", i18n.ERROR_EXIST, nil).Code(http.StatusConflict)
	}

	pinHash, err := security.HashPin(pin)
	if err != nil {
		return nil, errors.New("AuthLogic.Register.HashPin", i18n.ERROR_INTERNAL, err)
	}

	user := types.User{
		ID:        utils.GenSpecIDStr(),
		Name:      name,
		Email:     email,
		Pin:       pinHash,
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}
	if err = l.core.Store().UserStore().Create(l.ctx, user); err != nil {
		return nil, errors.New("AuthLogic.Register.UserStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return &user, nil
}

type UnlockResult struct {
	Token string      `json:"token"`
	User  *types.User `json:"user"`
}

// Unlock verifies the PIN and issues a session token. Wrong name and wrong
// PIN are indistinguishable to the caller.
func (l *AuthLogic) Unlock(name, pin string) (*UnlockResult, error) {
	user, err := l.core.Store().UserStore().GetByName(l.ctx, name)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.Unlock.UserStore.GetByName", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return nil, errors.New("AuthLogic.Unlock.UserStore.GetByName.nil", i18n.ERROR_INVALID_ACCOUNT, nil).Code(http.StatusForbidden)
	}

	matched, err := security.VerifyPin(pin, user.Pin)
	if err != nil {
		return nil, errors.New("AuthLogic.Unlock.VerifyPin", i18n.ERROR_INTERNAL, err)
	}
	if !matched {
		return nil, errors.New("AuthLogic.Unlock.VerifyPin.mismatch", i18n.ERROR_INVALID_ACCOUNT, nil).Code(http.StatusForbidden)
	}

	expiresAt := time.Now().AddDate(0, 0, l.core.Cfg().Security.ExpireDays()).Unix()
	token, err := security.GenJWT(l.core.Cfg().Security.TokenSecret, security.NewTokenClaims(user.ID, expiresAt))
	if err != nil {
		return nil, errors.New("AuthLogic.Unlock.GenJWT", i18n.ERROR_INTERNAL, err)
	}

	err = l.core.Store().AccessTokenStore().Create(l.ctx, types.AccessToken{
		UserID:    user.ID,
		Token:     token,
		Info:      "pin-unlock",
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, errors.New("AuthLogic.Unlock.AccessTokenStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return &UnlockResult{
		Token: token,
		User:  user,
	}, nil
}

// Lock revokes the presented session token.
func (l *AuthLogic) Lock(token string) error {
	claims, ok := InjectTokenClaim(l.ctx)
	if !ok {
		return errors.New("AuthLogic.Lock", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	if err := l.core.Store().AccessTokenStore().Delete(l.ctx, claims.User, token); err != nil {
		return errors.New("AuthLogic.Lock.AccessTokenStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
