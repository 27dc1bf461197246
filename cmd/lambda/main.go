package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/booking"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/config"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/lex"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/pkg/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.NewWithFormat(cfg.LogLevel, cfg.LogFormat)
	handler := booking.NewHandler(logger, nil, cfg.BotTimezone)

	logger.Info("starting schedule-appointment code hook",
		"env", cfg.Env,
		"timezone", cfg.BotTimezone,
	)

	lambda.Start(func(ctx context.Context, req lex.Request) (*lex.Response, error) {
		return handler.HandleTurn(ctx, &req)
	})
}
