package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/auth"
	"github.com/Spok95/yard-terminal/internal/bot"
	"github.com/Spok95/yard-terminal/internal/config"
	"github.com/Spok95/yard-terminal/internal/dialog"
	"github.com/Spok95/yard-terminal/internal/domain/eir"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
	"github.com/Spok95/yard-terminal/internal/handler"
	httpx "github.com/Spok95/yard-terminal/internal/infra/http"
	"github.com/Spok95/yard-terminal/internal/infra/logger"
	"github.com/Spok95/yard-terminal/internal/infra/metrics"
	"github.com/Spok95/yard-terminal/internal/infra/storage"
)

// defaults — схема площадки и шапка EIR из конфига, пока нет снапшотов.
func defaults(cfg config.Config) app.Defaults {
	y := cfg.Yard
	e := cfg.EIR
	return app.Defaults{
		Yard: yard.Config{
			Blocks:     y.Blocks,
			BaysCount:  y.Bays,
			RowsCount:  y.Rows,
			TiersCount: y.Tiers,
			LCLBlock:   y.LCLBlock,
		},
		EIR: eir.Config{
			CompanyName:    e.CompanyName,
			CompanyAddress: e.CompanyAddress,
			CompanyTaxID:   e.CompanyTaxID,
			CompanyPhone:   e.CompanyPhone,
			TerminalCode:   e.TerminalCode,
			FooterNotes:    e.FooterNotes,
			LogoURL:        e.LogoURL,
			EIRPrefix:      e.Prefix,
		},
	}
}

func startBot(ctx context.Context, cfg config.Config, s *app.Session, store storage.Store, log *slog.Logger) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram init failed", "err", err)
		return
	}
	log.Info("bot authorized", "username", api.Self.UserName)

	b := bot.New(api, log, s, dialog.NewRepo(store), cfg.Telegram.AdminChatID)
	s.Subscribe(b.Observe)
	go func() {
		if err := b.Run(ctx, cfg.Telegram.Timeout); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("bot stopped", "err", err)
		}
	}()
}

func main() {
	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = "config/example.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Error("storage open failed", "driver", cfg.Storage.Driver, "err", err)
		return
	}
	defer closeStore()

	session := app.Open(ctx, store, log, app.Options{
		Defaults: defaults(cfg),
		Location: cfg.Location(),
	})

	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		metrics.Attach(session, metrics.New(prometheus.DefaultRegisterer))
		gatherer = prometheus.DefaultGatherer
	}

	svc := auth.New(cfg.Auth.Login, cfg.Auth.PasswordHash, cfg.Auth.JWTKey, cfg.Auth.TokenTTL)
	h := handler.NewHandler(session, svc, log)

	srv := httpx.New(cfg.HTTP.Addr, httpx.Options{API: h.Router(), Metrics: gatherer})
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	if cfg.Telegram.Token != "" {
		startBot(ctx, cfg, session, store, log)
	} else {
		log.Info("telegram token not set, bot disabled")
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
