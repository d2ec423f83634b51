package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodnest/moodnest-api/internal/logic/v1"
	"github.com/moodnest/moodnest-api/internal/response"
)

func (s *HttpSrv) GetJournalStats(c *gin.Context) {
	stats, err := v1.NewAnalyticsLogic(c, s.Core).Stats()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, stats)
}

func (s *HttpSrv) GetTopTags(c *gin.Context) {
	tags, err := v1.NewAnalyticsLogic(c, s.Core).TopTags()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, tags)
}

func (s *HttpSrv) GetWordTrends(c *gin.Context) {
	trends, err := v1.NewAnalyticsLogic(c, s.Core).WordTrends()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, trends)
}

func (s *HttpSrv) GetAnalyticsOverview(c *gin.Context) {
	result, err := v1.NewAnalyticsLogic(c, s.Core).Overview()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}
