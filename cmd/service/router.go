package service

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodnest/moodnest-api/cmd/service/handler"
	"github.com/moodnest/moodnest-api/internal/core"
	v1 "github.com/moodnest/moodnest-api/internal/logic/v1"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return UseLimit(core, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		})
	}
}

func GetUserLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return UseLimit(core, key, func(c *gin.Context) string {
			token, _ := v1.InjectTokenClaim(c)
			return key + ":" + token.User
		})
	}
}

func CountRequest(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		core.Metrics().CountAPIRequest(c.FullPath(), c.Request.Method, strconv.Itoa(c.Writer.Status()))
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.Use(I18n())
	s.Engine.Use(Cors)
	s.Engine.Use(CountRequest(s.Core))

	s.Engine.GET("/metrics", gin.WrapH(s.Core.Metrics().Handler()))

	apiV1 := s.Engine.Group("/api/v1")
	{
		user := apiV1.Group("/user")
		{
			user.POST("/register", ipLimit("register"), s.Register)
			user.POST("/unlock", ipLimit("unlock"), s.Unlock)
		}

		authed := apiV1.Group("")
		authed.Use(Authorization(s.Core))
		authed.POST("/user/lock", s.Lock)

		journal := authed.Group("/journal")
		{
			journal.POST("", userLimit("journal_modify"), s.CreateJournalEntry)
			journal.GET("/list", s.ListJournalEntries)
			journal.GET("/:id", s.GetJournalEntry)
			journal.PUT("/:id", userLimit("journal_modify"), s.UpdateJournalEntry)
			journal.DELETE("/:id", userLimit("journal_modify"), s.DeleteJournalEntry)
			journal.POST("/filter", s.FilterJournalEntries)
		}

		analytics := authed.Group("/analytics")
		{
			analytics.Use(userLimit("analytics"))
			analytics.GET("/stats", s.GetJournalStats)
			analytics.GET("/tags", s.GetTopTags)
			analytics.GET("/words", s.GetWordTrends)
			analytics.GET("/overview", s.GetAnalyticsOverview)
		}

		calendar := authed.Group("/calendar")
		{
			calendar.GET("/month", s.GetCalendarMonth)
			calendar.GET("/today", s.GetTodayStatus)
			calendar.GET("/missed", s.GetMissedDays)
		}

		export := authed.Group("/export")
		{
			export.GET("/pdf", userLimit("export"), s.ExportJournalPDF)
		}
	}
}
