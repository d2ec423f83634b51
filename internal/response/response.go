package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/i18n"
	"github.com/moodnest/moodnest-api/pkg/utils"
)

const LOCALIZER_CONTEXT_KEY = "__response_localizer__"

func ProvideResponseLocalizer(l *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LOCALIZER_CONTEXT_KEY, l)
	}
}

type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Body struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data"`
}

func APISuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{
		Meta: Meta{
			Code:    0,
			Message: "ok",
		},
		Data: data,
	})
}

func APIError(c *gin.Context, err error) {
	code := errors.HTTPCode(err)
	key := errors.MessageKey(err)

	if code >= http.StatusInternalServerError {
		slog.Error("request failed", slog.String("path", c.Request.URL.Path), slog.String("error", err.Error()))
	} else {
		slog.Warn("request rejected", slog.String("path", c.Request.URL.Path), slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(code, Body{
		Meta: Meta{
			Code:    code,
			Message: localize(c, key),
		},
	})
}

func localize(c *gin.Context, key string) string {
	l, exist := c.Get(LOCALIZER_CONTEXT_KEY)
	if !exist {
		return key
	}
	localizer, ok := l.(*i18n.Localizer)
	if !ok {
		return key
	}

	lang := utils.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	if !i18n.ALLOW_LANG[lang] {
		lang = i18n.DEFAULT_LANG
	}
	return localizer.Get(lang, key)
}
