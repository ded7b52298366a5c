// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/router/handler"
	"catalog/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BrandHandler   *handler.BrandHandler
	ProductHandler *handler.ProductHandler
	BannerHandler  *handler.BannerHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	brandHandler   *handler.BrandHandler
	productHandler *handler.ProductHandler
	bannerHandler  *handler.BannerHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		brandHandler:   params.BrandHandler,
		productHandler: params.ProductHandler,
		bannerHandler:  params.BannerHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Role gates are flat: a route admits exactly the roles it lists.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRoles(entity.RoleAdmin)
	editors := r.authMiddleware.RequireRoles(entity.RoleAdmin, entity.RoleStaff)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/activation", r.authHandler.Activation)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
		authGroup.PUT("/update-profile", r.authHandler.UpdateProfile, authenticate, editors)
		authGroup.PUT("/update-password", r.authHandler.UpdatePassword, authenticate, editors)
	}

	brandGroup := e.Group("/brand")
	{
		brandGroup.GET("", r.brandHandler.FindAll)
		brandGroup.GET("/:id", r.brandHandler.FindOne)
		brandGroup.POST("", r.brandHandler.Create, authenticate, adminOnly)
		brandGroup.PUT("/:id", r.brandHandler.Update, authenticate, adminOnly)
		brandGroup.DELETE("/:id", r.brandHandler.Remove, authenticate, adminOnly)
	}

	productGroup := e.Group("/product")
	{
		productGroup.GET("", r.productHandler.FindAll)
		productGroup.GET("/:id", r.productHandler.FindOne)
		productGroup.GET("/:slug/slug", r.productHandler.FindBySlug)
		productGroup.GET("/:slug/qr", r.productHandler.ShareQR)
		productGroup.POST("", r.productHandler.Create, authenticate, adminOnly)
		productGroup.PUT("/:id", r.productHandler.Update, authenticate, adminOnly)
		productGroup.DELETE("/:id", r.productHandler.Remove, authenticate, adminOnly)
	}

	bannerGroup := e.Group("/banners")
	{
		bannerGroup.GET("", r.bannerHandler.FindAll)
		bannerGroup.GET("/:id", r.bannerHandler.FindOne)
		bannerGroup.POST("", r.bannerHandler.Create, authenticate, adminOnly)
		bannerGroup.PUT("/:id", r.bannerHandler.Update, authenticate, adminOnly)
		bannerGroup.DELETE("/:id", r.bannerHandler.Remove, authenticate, adminOnly)
	}

	mediaGroup := e.Group("/media")
	{
		mediaGroup.GET("/files/:key", r.mediaHandler.Serve)
		mediaGroup.POST("/upload-single", r.mediaHandler.UploadSingle, authenticate, editors)
		mediaGroup.POST("/upload-multiple", r.mediaHandler.UploadMultiple, authenticate, editors)
		mediaGroup.DELETE("/remove", r.mediaHandler.Remove, authenticate, editors)
	}
}
