package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodnest/moodnest-api/internal/logic/v1"
	"github.com/moodnest/moodnest-api/internal/response"
	"github.com/moodnest/moodnest-api/pkg/types"
	"github.com/moodnest/moodnest-api/pkg/utils"
)

type CreateJournalEntryRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	ContentHTML    string `json:"content_html" binding:"required"`
	PrimaryMood    string `json:"primary_mood" binding:"required"`
	SecondaryMoods string `json:"secondary_moods"`
	Category       string `json:"category"`
	Tags           string `json:"tags"`
}

func (s *HttpSrv) CreateJournalEntry(c *gin.Context) {
	var (
		err error
		req CreateJournalEntryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewJournalLogic(c, s.Core).Create(types.CreateJournalEntryArgs{
		Title:          req.Title,
		ContentHTML:    req.ContentHTML,
		PrimaryMood:    req.PrimaryMood,
		SecondaryMoods: req.SecondaryMoods,
		Category:       req.Category,
		Tags:           req.Tags,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, entry)
}

func (s *HttpSrv) GetJournalEntry(c *gin.Context) {
	id, _ := c.Params.Get("id")

	entry, err := v1.NewJournalLogic(c, s.Core).Get(id)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, entry)
}

func (s *HttpSrv) ListJournalEntries(c *gin.Context) {
	list, err := v1.NewJournalLogic(c, s.Core).ListDisplay()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}

type UpdateJournalEntryRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	ContentHTML    string `json:"content_html" binding:"required"`
	PrimaryMood    string `json:"primary_mood" binding:"required"`
	SecondaryMoods string `json:"secondary_moods"`
	Category       string `json:"category"`
	Tags           string `json:"tags"`
}

func (s *HttpSrv) UpdateJournalEntry(c *gin.Context) {
	var (
		err error
		req UpdateJournalEntryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	id, _ := c.Params.Get("id")
	err = v1.NewJournalLogic(c, s.Core).Update(id, types.UpdateJournalEntryArgs{
		Title:          req.Title,
		ContentHTML:    req.ContentHTML,
		PrimaryMood:    req.PrimaryMood,
		SecondaryMoods: req.SecondaryMoods,
		Category:       req.Category,
		Tags:           req.Tags,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteJournalEntry(c *gin.Context) {
	id, _ := c.Params.Get("id")

	if err := v1.NewJournalLogic(c, s.Core).Delete(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type FilterJournalEntriesRequest struct {
	SearchText string   `json:"search_text"`
	FromDate   string   `json:"from_date"`
	ToDate     string   `json:"to_date"`
	Category   string   `json:"category"`
	Moods      []string `json:"moods"`
	Tags       []string `json:"tags"`
}

func (s *HttpSrv) FilterJournalEntries(c *gin.Context) {
	var (
		err error
		req FilterJournalEntriesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	filter := types.JournalFilter{
		SearchText: req.SearchText,
		Category:   req.Category,
		Moods:      req.Moods,
		Tags:       req.Tags,
	}
	if filter.FromDate, err = parseOptionalDate(c, req.FromDate); err != nil {
		response.APIError(c, err)
		return
	}
	if filter.ToDate, err = parseOptionalDate(c, req.ToDate); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewFilterLogic(c, s.Core).Filter(filter)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}
