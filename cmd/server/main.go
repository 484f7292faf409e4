package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/idea_board/internal/app"
	"github.com/Skotchmaster/idea_board/internal/config"
	"github.com/Skotchmaster/idea_board/internal/db"
	"github.com/Skotchmaster/idea_board/internal/es"
	"github.com/Skotchmaster/idea_board/internal/logging"
	"github.com/Skotchmaster/idea_board/internal/mykafka"
	"github.com/Skotchmaster/idea_board/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	ctx := context.Background()

	gdb, err := db.Open(ctx, cfg.DatabaseURL, cfg.DatabaseLogging)
	if err != nil {
		logger.Error("db open failed", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		logger.Error("db migrate failed", "error", err)
		os.Exit(1)
	}

	var ext app.Externals

	var prod *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		if err := mykafka.EnsureTopics(ctx, cfg.KafkaBrokers[0], service.TopicUserEvents, service.TopicIdeaEvents); err != nil {
			logger.Warn("kafka topics not ensured", "error", err)
		}
		prod, err = mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.Error("kafka producer failed", "error", err)
			os.Exit(1)
		}
		ext.Events = prod
	} else {
		logger.Info("KAFKA_BROKERS not set, events disabled")
	}

	if cfg.ESURL != "" {
		client, err := es.NewClient(ctx, cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Error("elasticsearch connect failed", "error", err)
			os.Exit(1)
		}
		ext.Index = &es.Index{ES: client, Name: cfg.ESIndex}
	} else {
		logger.Info("ES_URL not set, search falls back to the database")
	}

	e := app.New(cfg, gdb, logger, ext)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("http server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	go func() {
		<-quit
		logger.Warn("force exit")
		os.Exit(1)
	}()

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := db.Close(gdb); err != nil {
		logger.Error("db close error", "error", err)
	}

	if prod != nil {
		if err := prod.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
