package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"

	"medscan/internal/client"
	"medscan/internal/config"
	"medscan/internal/conversation"
	"medscan/internal/handler"
	"medscan/internal/middleware"
	"medscan/internal/session"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	_ = godotenv.Load()
	cfg, err := config.LoadBot()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	sessions := session.NewStore()
	inferenceClient := client.New(cfg.InferenceURL, config.RequestTimeout)
	engine := conversation.NewEngine(sessions, inferenceClient)

	// Handler pointer for use in default handler closure
	var h *handler.Handler

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil || update.Message == nil {
				return
			}
			// Photo updates carry no text to match on; free text falls
			// through here once the command handlers have had their chance.
			if len(update.Message.Photo) > 0 {
				h.HandlePhoto(ctx, b, update)
			} else if update.Message.Text != "" {
				h.HandleText(ctx, b, update)
			}
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}

	// Initialize handler
	h = handler.New(handler.Deps{
		Bot:    b,
		Engine: engine,
	})

	// Register all handlers
	h.Register()

	// Start bot
	slog.Info("starting bot", "username", me.Username, "id", me.ID, "inference_url", cfg.InferenceURL)
	b.Start(ctx)

	// Graceful shutdown
	slog.Info("bot stopped gracefully")
}
