package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodnest/moodnest-api/internal/logic/v1"
	"github.com/moodnest/moodnest-api/internal/response"
)

func (s *HttpSrv) ExportJournalPDF(c *gin.Context) {
	from, err := parseDate(c, c.Query("from"))
	if err != nil {
		response.APIError(c, err)
		return
	}
	to, err := parseDate(c, c.Query("to"))
	if err != nil {
		response.APIError(c, err)
		return
	}

	filePath, err := v1.NewExportLogic(c, s.Core).ExportRange(from, to)
	if err != nil {
		response.APIError(c, err)
		return
	}

	c.FileAttachment(filePath, "journal.pdf")
}
