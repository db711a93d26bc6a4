// @title           WHOIS API
// @version         1.0
// @description     Registry lookups turned into structured domain records: registrar, nameservers, lifecycle dates, transfer lock and contacts.

// @contact.name   API Support
// @contact.email  info@bentech.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/vit0-9/whois_api/docs" // Swagger docs
	"github.com/vit0-9/whois_api/handlers"
	"github.com/vit0-9/whois_api/pkg/metrics"
	"github.com/vit0-9/whois_api/pkg/utils/domain"
)

// App encapsulates all the components of the application
type App struct {
	Router        *gin.Engine
	WhoisHandlers *handlers.WhoisHandlers
	HealthHandler *handlers.HealthHandler
	Metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewApp creates and initializes a new application instance
func NewApp(cfg Config, logger *zap.Logger) (*App, error) {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()
	fetcher := cfg.newFetcher()
	service := domain.NewService(fetcher, m, logger)
	checker := domain.NewDelegationChecker(cfg.DNSResolver, 5*time.Second)

	app := &App{
		Router:        gin.Default(),
		WhoisHandlers: handlers.NewWhoisHandlers(service, checker, logger),
		HealthHandler: handlers.NewHealthHandler(version, fetcher.Name()),
		Metrics:       m,
		logger:        logger,
	}

	app.setupRoutes()
	return app, nil
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	app.Router.GET("/api/v1/health", app.HealthHandler.HealthCheckHandler)

	whoisV1 := app.Router.Group("/api/v1/whois")
	{
		whoisV1.GET("/lookup", app.WhoisHandlers.LookupHandler)
		whoisV1.POST("/parse", app.WhoisHandlers.ParseHandler)
		whoisV1.GET("/expiry", app.WhoisHandlers.ExpiryHandler)
		whoisV1.GET("/delegation", app.WhoisHandlers.DelegationHandler)
	}

	app.Router.GET("/metrics", gin.WrapH(app.Metrics.Handler()))

	// Absolute from the host, not affected by @BasePath
	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start runs the Gin HTTP server
func (app *App) Start(addr string) error {
	app.logger.Info("API server starting", zap.String("addr", addr))
	return app.Router.Run(addr)
}
