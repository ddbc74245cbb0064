package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/pxid/internal/config"
	"github.com/weiawesome/pxid/internal/handler"
	"github.com/weiawesome/pxid/internal/service"
	pkglog "github.com/weiawesome/pxid/pkg/log"
	"github.com/weiawesome/pxid/pkg/prefixid"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "pxid",
	})
	logger := pkglog.L()

	profile := cfg.Profile()
	gen := prefixid.New(profile)
	logger.Info().
		Str(pkglog.FieldProfile, profile.Name).
		Str(pkglog.FieldCodec, profile.Codec.Name()).
		Int("max_length", profile.MaxLength).
		Msg("id generator initialized")

	if err := handler.RegisterBindings(gen); err != nil {
		logger.Fatal().Err(err).Msg("failed to register binding rules")
	}

	idService := service.NewIDService(gen, cfg.ID.MaxBatch)
	httpHandler := handler.NewHandler(idService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), pkglog.GinMiddleware(logger))
	httpHandler.RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str(pkglog.FieldAddr, addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down pxid")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("pxid stopped")
}
