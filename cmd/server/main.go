package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"sotchelper/internal/account"
	"sotchelper/internal/config"
	"sotchelper/internal/helper"
	"sotchelper/internal/storage/sqlite"
	"sotchelper/internal/telemetry"
	"sotchelper/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "sotchelper", cfg.OTelEndpoint)
	if err != nil {
		log.Fatalf("tracing: %v", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	sheet := helper.DefaultSheet()
	if cfg.SheetPath != "" {
		if sheet, err = helper.LoadSheet(cfg.SheetPath); err != nil {
			log.Fatal(err)
		}
	}

	var store account.Store
	if cfg.DBPath == "" {
		log.Warn("SOTC_DB_PATH is empty, accounts are kept in memory")
		store = account.NewMemoryStore()
	} else {
		db, err := sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			log.Fatalf("open account store: %v", err)
		}
		defer db.Close()
		store = db
	}

	pages, err := web.LoadRenderer(cfg.TemplateDir)
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	srv := &web.Server{
		Sheet:     sheet,
		Accounts:  account.NewService(store),
		Pages:     pages,
		Log:       log,
		StaticDir: cfg.StaticDir,
	}
	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Infof("listening on %s", cfg.Addr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stdout
	if cfg.LogFormat == "json" {
		log.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
			},
			TimestampFormat: time.RFC3339Nano,
		}
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
