package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/aggo-mock-api/internal/config"
	"github.com/adanyl0v/aggo-mock-api/internal/delivery/http/v1"
	"github.com/adanyl0v/aggo-mock-api/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully shut down the server.
	// kill (no params) sends SIGTERM, kill -2 sends SIGINT.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router *gin.Engine) {
	cfg := config.Global()
	delays := services.Delays{
		Scan:   cfg.Mock.ScanDelay,
		Fix:    cfg.Mock.FixDelay,
		FixAll: cfg.Mock.FixAllDelay,
		Chat:   cfg.Mock.ChatDelay,
	}

	v1Handler := v1.New(
		globalLogger,
		services.NewScanService(globalLogger, globalFixtures, globalScanRepository, delays.Scan),
		services.NewFixService(globalLogger, globalFixtures, delays.Fix, delays.FixAll),
		services.NewChatService(globalLogger, globalFixtures, delays.Chat),
		globalFixtures,
		cfg.HTTP.CORSAllowOrigin,
	)
	v1.RegisterRoutes(router, v1Handler)
}
