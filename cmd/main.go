// jobmate-monitor-service
//
// Daily monitoring over the job set produced by discovery:
//   - posting-status checks (marks expired postings CLOSED)
//   - white-collar / category / seniority classification
//   - Northern California geo matching
//   - repost detection against each company's closed postings
//   - per-company quality snapshots (green / yellow / red)
//
// Publishes EVENT_MONITOR_RUN to Redis after every cycle for Gateway SSE
// forward, same as tracker events.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"jobmate/monitor-service/internal/config"
	"jobmate/monitor-service/internal/db"
	"jobmate/monitor-service/internal/monitor"
	"jobmate/monitor-service/internal/scheduler"
	"jobmate/monitor-service/internal/store"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[monitor-service] Config error: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().
		Timestamp().Str("service", "monitor-service").Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Info().Msg("connecting to PostgreSQL")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection failed")
	}
	defer pool.Close()

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Info().Msg("connecting to Redis")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis connection failed")
	}
	defer rdb.Close()

	// ── Monitoring pipeline ──────────────────────────────────────────────────
	st := store.New(pool, rdb)
	checker := monitor.NewHTTPStatusChecker(
		time.Duration(cfg.StatusCheckTimeoutSec)*time.Second, log)
	orchestrator := monitor.New(st, checker, cfg.StatusCheckConcurrency, log)

	sched := scheduler.New(orchestrator, cfg.MonitorIntervalHours, log)
	if err := sched.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("scheduler start failed")
	}
	defer sched.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("stopped")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "monitor-service",
		"version": version,
	})
}
