package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unitedfert/receipts-api/internal/config"
	"github.com/unitedfert/receipts-api/internal/presentation/http/handler"
	"github.com/unitedfert/receipts-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Receipt  *handler.ReceiptHandler
	Client   *handler.ClientHandler
	Settings *handler.SettingsHandler
	User     *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		rlCfg := middleware.DefaultRateLimiterConfig()
		if deps.Cfg.RateLimit.Requests > 0 && deps.Cfg.RateLimit.Duration > 0 {
			rlCfg = middleware.RateLimiterConfig{
				RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
				BurstSize:         deps.Cfg.RateLimit.Requests,
				CleanupInterval:   5 * time.Minute,
				EntryTTL:          10 * time.Minute,
			}
		}
		rateLimiter := middleware.NewClientRateLimiter(rlCfg)
		api.Use(rateLimiter.Middleware())

		registerAuthRoutes(api, h)
		registerReceiptRoutes(api, h)
		registerClientRoutes(api, h)
		registerSettingsRoutes(api, h)
		registerUserRoutes(api, h)
	}

	return router
}

func registerAuthRoutes(api *gin.RouterGroup, h *Handlers) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
	}
}

func registerReceiptRoutes(api *gin.RouterGroup, h *Handlers) {
	receipts := api.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/stats", h.Receipt.Stats)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.PUT("/:id", h.Receipt.Update)
		receipts.DELETE("/:id", h.Receipt.Delete)
		receipts.POST("/:id/approve", h.Receipt.Approve)
	}
}

func registerClientRoutes(api *gin.RouterGroup, h *Handlers) {
	clients := api.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:clientId", h.Client.Get)
	}
}

func registerSettingsRoutes(api *gin.RouterGroup, h *Handlers) {
	api.GET("/company", h.Settings.GetCompany)
	api.PUT("/company", h.Settings.UpdateCompany)
	api.GET("/lists", h.Settings.GetLists)
	api.PUT("/lists", h.Settings.UpdateLists)
}

func registerUserRoutes(api *gin.RouterGroup, h *Handlers) {
	users := api.Group("/users")
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
		users.PUT("/:id/serial", h.User.UpdateSerial)
	}
}
