package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/moodnest/moodnest-api/internal/logic/v1"
	"github.com/moodnest/moodnest-api/internal/response"
	"github.com/moodnest/moodnest-api/pkg/errors"
	"github.com/moodnest/moodnest-api/pkg/i18n"
)

func parseYearMonth(c *gin.Context) (int, time.Month, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, errors.New("handler.parseYearMonth.year", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.New("handler.parseYearMonth.month", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	return year, time.Month(month), nil
}

func (s *HttpSrv) GetCalendarMonth(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		response.APIError(c, err)
		return
	}

	days, err := v1.NewCalendarLogic(c, s.Core).Month(year, month)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, days)
}

func (s *HttpSrv) GetTodayStatus(c *gin.Context) {
	hasEntry, err := v1.NewCalendarLogic(c, s.Core).HasTodayEntry()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, gin.H{"has_entry": hasEntry})
}

func (s *HttpSrv) GetMissedDays(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		response.APIError(c, err)
		return
	}

	missed, err := v1.NewCalendarLogic(c, s.Core).MissedDays(year, month)
	if err != nil {
		response.APIError(c, err)
		return
	}

	days := make([]string, 0, len(missed))
	for _, d := range missed {
		days = append(days, d.Format(DATE_LAYOUT))
	}
	response.APISuccess(c, days)
}
