package http

import (
	"github.com/gin-gonic/gin"

	"sales-analytics-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.RequestID())
	{
		users := api.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.GET("/:user_id", h.GetUser)
			users.GET("/:user_id/sales", h.GetUserSales)
			users.GET("/:user_id/performance", h.GetUserPerformance)
		}

		groups := api.Group("/groups")
		{
			groups.GET("", h.ListGroups)
			groups.GET("/:group_id", h.GetGroup)
			groups.GET("/:group_id/sales", h.GetGroupSales)
			groups.GET("/:group_id/performance", h.GetGroupPerformance)
		}

		sales := api.Group("/sales")
		{
			sales.GET("", h.ListSales)
			sales.GET("/summary", h.GetSalesSummary)
			sales.GET("/:sale_id", h.GetSale)
		}
	}
}
