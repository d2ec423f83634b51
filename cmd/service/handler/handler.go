package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/moodnest/moodnest-api/internal/core"
)

const (
	ACCESS_TOKEN_HEADER_KEY = "X-Access-Token"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
