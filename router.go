package main

import (
	"github.com/gin-gonic/gin"
	"github.com/pdallen/portfolio/backend/handlers"
	"github.com/pdallen/portfolio/backend/internal/config"
	"github.com/pdallen/portfolio/backend/internal/portfolio/handler"
	"github.com/pdallen/portfolio/backend/internal/portfolio/repository"
	"github.com/pdallen/portfolio/backend/internal/portfolio/service"
	"github.com/pdallen/portfolio/backend/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter wires the HTTP surface: operational endpoints at the root and
// the portfolio API under /api.
func newRouter(cfg *config.Config, store repository.Store, svc service.Service) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORS(), gin.Logger(), gin.Recovery())

	handlers.RegisterHealth(r, store)
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.NewHandler(svc, cfg.API.Title).Register(r.Group("/api"))
	return r
}
