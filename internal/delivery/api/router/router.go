// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pricecheck/internal/delivery/api/middleware"
	"pricecheck/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	CatalogHandler       *handler.CatalogHandler
	ProposalHandler      *handler.ProposalHandler
	PriceReportHandler   *handler.PriceReportHandler
	QualityReportHandler *handler.QualityReportHandler
	ModerationHandler    *handler.ModerationHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	catalogHandler       *handler.CatalogHandler
	proposalHandler      *handler.ProposalHandler
	priceReportHandler   *handler.PriceReportHandler
	qualityReportHandler *handler.QualityReportHandler
	moderationHandler    *handler.ModerationHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		catalogHandler:       params.CatalogHandler,
		proposalHandler:      params.ProposalHandler,
		priceReportHandler:   params.PriceReportHandler,
		qualityReportHandler: params.QualityReportHandler,
		moderationHandler:    params.ModerationHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Every API v1 route requires a session.
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/me", r.authHandler.Me)
	apiV1.GET("/me/price-reports", r.priceReportHandler.ListMine)

	shopsGroup := apiV1.Group("/shops")
	{
		shopsGroup.GET("", r.catalogHandler.ListShops)
		shopsGroup.GET("/:id", r.catalogHandler.GetShop)
		shopsGroup.GET("/:id/qr", r.catalogHandler.GetShopQRCode)
	}

	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/product-aliases", r.catalogHandler.ListProductAliases)

	proposalsGroup := apiV1.Group("/proposals")
	{
		proposalsGroup.POST("/shops", r.proposalHandler.ProposeShop)
		proposalsGroup.POST("/product-aliases", r.proposalHandler.ProposeProductAlias)
	}

	priceReportsGroup := apiV1.Group("/price-reports")
	{
		priceReportsGroup.POST("", r.priceReportHandler.Create)
		priceReportsGroup.GET("", r.priceReportHandler.Browse)
		priceReportsGroup.GET("/:id/quality-report", r.qualityReportHandler.Get)
		priceReportsGroup.PUT("/:id/quality-report", r.qualityReportHandler.Upsert)
	}

	adminGroup := apiV1.Group("/admin/proposals")
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/shops", r.moderationHandler.ListPendingShops)
		adminGroup.POST("/shops/:id/approve", r.moderationHandler.ApproveShop)
		adminGroup.POST("/shops/:id/reject", r.moderationHandler.RejectShop)
		adminGroup.GET("/product-aliases", r.moderationHandler.ListPendingAliases)
		adminGroup.POST("/product-aliases/:id/approve", r.moderationHandler.ApproveAlias)
		adminGroup.POST("/product-aliases/:id/reject", r.moderationHandler.RejectAlias)
		adminGroup.GET("/:id/audit", r.moderationHandler.ListAudit)
	}
}
