package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/i18n"
)

const DATE_LAYOUT = "2006-01-02"

func parseOptionalDate(c *gin.Context, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DATE_LAYOUT, value, time.Local)
	if err != nil {
		return nil, errors.New("handler.parseOptionalDate."+c.Request.URL.Path, i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	return &t, nil
}

func parseDate(c *gin.Context, value string) (time.Time, error) {
	t, err := time.ParseInLocation(DATE_LAYOUT, value, time.Local)
	if err != nil {
		return time.Time{}, errors.New("handler.parseDate."+c.Request.URL.Path, i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	return t, nil
}
