package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodnest/moodnest-api/internal/logic/v1"
	"github.com/moodnest/moodnest-api/internal/response"
	"github.com/moodnest/moodnest-api/pkg/utils"
)

type RegisterRequest struct {
	Name  string `json:"name" binding:"required,max=64"`
	Email string `json:"email" binding:"omitempty,email"`
	Pin   string `json:"pin" binding:"required"`
}

func (s *HttpSrv) Register(c *gin.Context) {
	var req RegisterRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	user, err := v1.NewAuthLogic(c, s.Core).Register(req.Name, req.Email, req.Pin)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, user)
}

type UnlockRequest struct {
	Name string `json:"name" binding:"required"`
	Pin  string `json:"pin" binding:"required"`
}

type UnlockResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

func (s *HttpSrv) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewAuthLogic(c, s.Core).Unlock(req.Name, req.Pin)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, UnlockResponse{
		Token:    result.Token,
		UserID:   result.User.ID,
		UserName: result.User.Name,
	})
}

func (s *HttpSrv) Lock(c *gin.Context) {
	token := c.GetHeader(ACCESS_TOKEN_HEADER_KEY)
	if err := v1.NewAuthLogic(c, s.Core).Lock(token); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
