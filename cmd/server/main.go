package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/app"
	"github.com/SAP-F-2025/survey-service/internal/config"
	"github.com/SAP-F-2025/survey-service/internal/handlers"
	"github.com/SAP-F-2025/survey-service/internal/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.NewLogger("").Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Environment)
	ctx := context.Background()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to start", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("Failed to close resources", "error", err)
		}
	}()

	var authenticator handlers.Authenticator
	switch {
	case cfg.Casdoor.Enabled():
		authenticator = handlers.NewCasdoorAuthenticator(cfg.Casdoor)
	case cfg.IsProduction():
		logger.Error("CASDOOR_ENDPOINT and CASDOOR_CERTIFICATE are required in production")
		os.Exit(1)
	default:
		logger.Warn("Casdoor not configured, bearer tokens are trusted as user ids")
		authenticator = handlers.DevAuthenticator{}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	httpLogger := utils.NewSlogLogger(logger)
	router := gin.New()
	router.Use(gin.Recovery(), utils.ContextLogger(httpLogger), utils.LoggerMiddleware(httpLogger))
	handlers.NewHandlerManager(application.Services, authenticator, httpLogger).SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ListenAndServe failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
}
