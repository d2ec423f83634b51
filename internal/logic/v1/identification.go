package v1

import (
	"context"
	"net/http"

	"github.com/moodnest/moodnest-api/internal/core"
	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/i18n"
	"github.com/moodnest/moodnest-api/pkg/security"
)

const TOKEN_CONTEXT_KEY = "__TOKEN_CLAIMS__"

func InjectTokenClaim(ctx context.Context) (security.TokenClaims, bool) {
	claims, ok := ctx.Value(TOKEN_CONTEXT_KEY).(security.TokenClaims)
	return claims, ok
}

type UserInfo interface {
	GetUserInfo() security.TokenClaims
	RequireUser() (string, error)
}

type _userInfo struct {
	u  security.TokenClaims
	ok bool
}

func (u *_userInfo) GetUserInfo() security.TokenClaims {
	return u.u
}

// RequireUser fails eagerly when no owner identity is established, before
// any store access happens.
func (u *_userInfo) RequireUser() (string, error) {
	if !u.ok || u.u.User == "" {
		return "", errors.New("_userInfo.RequireUser", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	return u.u.User, nil
}

func setupUserInfo(ctx context.Context, core *core.Core) UserInfo {
	userInfo, ok := InjectTokenClaim(ctx)
	return &_userInfo{
		u:  userInfo,
		ok: ok,
	}
}
