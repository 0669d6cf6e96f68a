package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"qc_review_bot/internal/app"
	"qc_review_bot/internal/domain/analyte"
	"qc_review_bot/internal/infra/config"
	idb "qc_review_bot/internal/infra/database"
	"qc_review_bot/internal/infra/httpserver"
	"qc_review_bot/internal/infra/labapi"
	"qc_review_bot/internal/infra/logger"
	"qc_review_bot/internal/infra/metrics"
	"qc_review_bot/internal/infra/scheduler"
	"qc_review_bot/internal/infra/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Could not load application configuration")
	}
	logger.Init(cfg)
	mainLogger := logger.Component("main")

	mainLogger.WithFields(logrus.Fields{
		"admin_id":           cfg.AdminTelegramID,
		"measurement_source": cfg.MeasurementSource,
	}).Info("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()
	mainLogger.Info("Database connection established")

	reviewerRepo := idb.NewPostgresReviewerRepository(db)
	reportRepo := idb.NewPostgresReportRepository(db)

	// report-scoped runs always come from the captured inputs; by-name lookups
	// can go to the lab API instead
	reportSource := idb.NewPostgresMeasurementSource(db)
	var source analyte.Source = reportSource
	if cfg.MeasurementSource == config.SourceAPI {
		source = labapi.NewClient(cfg.LabAPIURL, cfg.LabAPITimeout)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	botLogger := logger.Component("telebot")
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			entry := botLogger.WithError(err)
			if c != nil && c.Sender() != nil {
				entry = entry.WithField("sender_id", c.Sender().ID)
			}
			entry.Error("Unhandled bot error")
		},
	})
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := telegram.NewTelebotAdapter(bot)

	reviewService := app.NewReviewService(
		source,
		reportSource,
		reportRepo,
		reviewerRepo,
		notifier,
		cfg.SupervisorTelegramID,
		cfg.PendingReviewGrace,
		m,
		logger.Component("review_service"),
	)
	adminService := app.NewAdminService(reviewerRepo, cfg.AdminTelegramID)

	handlerLogger := logger.Component("telegram")
	telegram.RegisterBotCommands(ctx, bot, cfg, reviewerRepo, handlerLogger)
	telegram.RegisterAdminHandlers(ctx, bot, adminService, cfg.AdminTelegramID, handlerLogger)
	telegram.RegisterReviewHandlers(ctx, bot, reviewService, handlerLogger)
	mainLogger.Info("Command handlers registered")

	reminders := scheduler.NewReminderScheduler(reviewService, logger.Component("scheduler"), cfg.CronSpecPendingReminder)
	if err := reminders.Start(); err != nil {
		mainLogger.WithError(err).Fatal("Could not start scheduler")
	}

	var srv *http.Server
	if cfg.HTTPAddr != "" {
		srv = httpserver.New(cfg.HTTPAddr, httpserver.NewRouter(reg, db))
		go func() {
			mainLogger.WithField("addr", cfg.HTTPAddr).Info("HTTP server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				mainLogger.WithError(err).Error("HTTP server failed")
			}
		}()
	}

	go bot.Start()
	mainLogger.Info("Bot started")

	<-ctx.Done()
	mainLogger.Info("Shutting down")

	bot.Stop()
	reminders.Stop()
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			mainLogger.WithError(err).Error("HTTP server shutdown failed")
		}
	}
	mainLogger.Info("Shut down gracefully")
}
