package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	analyticsHTTP "sales-analytics-srv/internal/analytics/delivery/http"
	analyticsPostgre "sales-analytics-srv/internal/analytics/repository/postgre"
	analyticsUsecase "sales-analytics-srv/internal/analytics/usecase"
	"sales-analytics-srv/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize repository and usecase
	repo := analyticsPostgre.New(srv.l, srv.postgresDB)
	uc := analyticsUsecase.New(srv.l, repo)

	handler := analyticsHTTP.New(srv.l, uc)
	handler.RegisterRoutes(srv.gin.Group(""), mw)

	srv.l.Infof(context.Background(), "Analytics domain registered")
	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
