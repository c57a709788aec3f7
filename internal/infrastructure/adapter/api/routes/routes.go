package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	User           *handler.UserHandler
	Image          *handler.ImageHandler
	Transformation *handler.TransformationHandler
	Navigation     *handler.NavigationHandler
	Webhook        *handler.WebhookHandler
	Health         *handler.HealthHandler
}

// Options carries the optional pieces of the route table
type Options struct {
	Auth        *middleware.Authenticator
	RateLimiter *middleware.RateLimiter // nil disables limiting
	MetricsPath string
	Metrics     http.Handler // nil disables exposition
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET("/healthz", h.Health.Health)
	if opts.Metrics != nil {
		router.GET(opts.MetricsPath, gin.WrapH(opts.Metrics))
	}

	router.POST("/webhooks/identity", h.Webhook.Receive)

	api := router.Group("/api")
	api.Use(opts.Auth.OptionalIdentity())
	if opts.RateLimiter != nil {
		api.Use(opts.RateLimiter.Handler())
	}

	// Public routes
	{
		api.GET("/images", h.Image.ListImages)
		api.GET("/images/:id", h.Image.GetImage)
		api.GET("/users/:id/images", h.Image.ListUserImages)
		api.GET("/transformations/types", h.Transformation.Catalog)
		api.GET("/navigation", h.Navigation.Layout)
	}

	authed := api.Group("")
	authed.Use(opts.Auth.RequireUser())
	{
		authed.GET("/me", h.User.GetMe)
		authed.PATCH("/me", h.User.UpdateMe)
		authed.DELETE("/me", h.User.DeleteMe)
		authed.GET("/me/credits", h.User.GetCredits)
		authed.GET("/me/images", h.Image.ListMyImages)
		authed.GET("/users/:id", h.User.GetUser)

		authed.POST("/images", h.Image.CreateImage)
		authed.PUT("/images/:id", h.Image.UpdateImage)
		authed.DELETE("/images/:id", h.Image.DeleteImage)
	}

	sessions := authed.Group("/transformations/sessions")
	{
		sessions.POST("", h.Transformation.StartSession)
		sessions.GET("/:id", h.Transformation.GetSession)
		sessions.PUT("/:id/title", h.Transformation.SetTitle)
		sessions.PUT("/:id/image", h.Transformation.SetImage)
		sessions.PUT("/:id/aspect-ratio", h.Transformation.SelectAspectRatio)
		sessions.PUT("/:id/fields", h.Transformation.EditField)
		sessions.POST("/:id/apply", h.Transformation.Apply)
		sessions.POST("/:id/save", h.Transformation.Save)
		sessions.DELETE("/:id", h.Transformation.CloseSession)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string, recorder middleware.HTTPRecorder) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Metrics(recorder))
}
