package http

import (
	"github.com/gin-gonic/gin"

	"sales-analytics-srv/internal/analytics"
	"sales-analytics-srv/internal/middleware"
	"sales-analytics-srv/pkg/log"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc analytics.UseCase
}

func New(l log.Logger, uc analytics.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
