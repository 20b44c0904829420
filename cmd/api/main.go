package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prefeitura-rio/app-cnh/internal/config"
	"github.com/prefeitura-rio/app-cnh/internal/handlers"
	"github.com/prefeitura-rio/app-cnh/internal/logging"
	"github.com/prefeitura-rio/app-cnh/internal/middleware"
	"github.com/prefeitura-rio/app-cnh/internal/observability"
	"github.com/prefeitura-rio/app-cnh/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/prefeitura-rio/app-cnh/docs"
)

// @title           CNH API
// @version         1.0
// @description     API para gestão de Carteiras Nacionais de Habilitação (CNH). Os registros são normalizados na criação (nomes, CPF, datas e códigos) e identificados pelo número de registro.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name CNH
// @tag.description Operações sobre CNHs

// @tag.name Health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logging.Logger.Sync()

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize storage
	cnhStore, err := config.InitStore(context.Background())
	if err != nil {
		logging.Logger.Fatal("failed to initialize storage",
			zap.String("backend", config.AppConfig.StorageBackend),
			zap.Error(err))
	}
	defer func() {
		if err := cnhStore.Close(); err != nil {
			logging.Logger.Error("failed to close storage", zap.Error(err))
		}
	}()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	// Keep integer registro/identidade values exact when decoding payloads
	binding.EnableDecoderUseNumber = true

	cnhService := services.NewCNHService(cnhStore, logging.Logger)
	cnhHandlers := handlers.NewCNHHandlers(logging.Logger, cnhService)

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Health check endpoint
		v1.GET("/health", cnhHandlers.HealthCheck)

		v1.POST("/cnhs", cnhHandlers.CreateCNH)
		v1.GET("/cnhs", cnhHandlers.ListCNHs)
		v1.GET("/cnhs/:registro", cnhHandlers.GetCNH)
		v1.PUT("/cnhs/:registro", cnhHandlers.UpdateCNH)
		v1.DELETE("/cnhs/:registro", cnhHandlers.DeleteCNH)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
			zap.String("storage_backend", cnhStore.Backend()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), config.AppConfig.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logging.Logger.Info("server exited gracefully")
}
