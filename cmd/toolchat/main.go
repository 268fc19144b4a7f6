package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rfinlay/toolchat/internal/completion"
	"github.com/rfinlay/toolchat/internal/config"
	"github.com/rfinlay/toolchat/internal/httpapi"
	"github.com/rfinlay/toolchat/internal/runner"
	"github.com/rfinlay/toolchat/internal/telemetry"
	"github.com/rfinlay/toolchat/tools"
)

const shutdownGrace = 10 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(os.Getenv("TOOLCHAT_CONFIG"))
	if err != nil {
		log.WithError(err).Fatal("configuration error")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithField("log_level", cfg.LogLevel).Warn("unknown log level, using info")
	}
	if cfg.APIKey == "" {
		log.Fatal("missing GEMINI_API_KEY; export it before running")
	}

	telemetry.SetLogger(log)
	gin.SetMode(gin.ReleaseMode)

	client := completion.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Model, &http.Client{Timeout: cfg.CompletionTimeout})
	registry, err := tools.Default(client)
	if err != nil {
		log.WithError(err).Fatal("capability registry error")
	}

	loop := runner.New(client, registry, cfg.MaxToolCalls, log.WithField("component", "runner"))
	api := httpapi.New(loop, log.WithField("component", "http"))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.Handler(),
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":  cfg.ListenAddr,
			"model": cfg.Model,
		}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM.
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	<-sigch
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("shutdown incomplete")
	}
}
