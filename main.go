package main

import (
	"Steelcheck/internal/config"
	"Steelcheck/internal/dashboard"
	"Steelcheck/internal/logger"
	"Steelcheck/internal/ratelimit"
	"Steelcheck/internal/validate"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	h := &dashboard.Handler{
		Defaults: validate.Defaults{GammaM0: cfg.GammaM0, LimitRatio: cfg.DeflectionLimitRatio},
		Log:      log,
	}
	limiter := ratelimit.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	go limiter.Run(ctx, time.Minute, 10*time.Minute)

	router := dashboard.NewRouter(h, dashboard.RouterOptions{
		StaticDir: cfg.StaticDir,
		Limiter:   limiter,
	}, log)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	log.Info("starting server",
		zap.String("addr", cfg.Addr),
		zap.Bool("tls", cfg.TLS()),
		zap.Float64("gamma_m0", cfg.GammaM0),
		zap.Float64("deflection_limit_ratio", cfg.DeflectionLimitRatio))

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	wg.Wait()
	log.Info("server stopped")
}
