// Local development server: runs the same turn handler the Lambda does,
// behind a plain HTTP endpoint, so dialogs can be exercised with curl.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/api"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/booking"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/config"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/observability/metrics"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewWithFormat(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting schedule-appointment API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	dialogMetrics := metrics.NewDialogMetrics(prometheus.DefaultRegisterer)
	handler := booking.NewHandler(logger, dialogMetrics, cfg.BotTimezone)

	router := api.NewRouter(&api.Config{
		Logger:         logger,
		Handler:        handler,
		MetricsHandler: promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
