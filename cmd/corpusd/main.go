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

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/corpus-works/corpusd/internal/config"
	dbRedis "github.com/corpus-works/corpusd/internal/db/redis"
	logpkg "github.com/corpus-works/corpusd/internal/logger"
	"github.com/corpus-works/corpusd/internal/metrics"
	blobrepo "github.com/corpus-works/corpusd/internal/repository/blob"
	documentrepo "github.com/corpus-works/corpusd/internal/repository/document"
	"github.com/corpus-works/corpusd/internal/repository/schema"
	chiTransport "github.com/corpus-works/corpusd/internal/transport/chi"
	exportuc "github.com/corpus-works/corpusd/internal/usecase/export"
	healthuc "github.com/corpus-works/corpusd/internal/usecase/health"
	ingestuc "github.com/corpus-works/corpusd/internal/usecase/ingest"
	searchuc "github.com/corpus-works/corpusd/internal/usecase/search"
	"github.com/corpus-works/corpusd/internal/version"
)

func main() {
	// Optional .env for local development; ignore if absent.
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting corpusd API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	metrics.RegisterIngestMetrics()

	// Wait for the engine and make sure the document index exists before
	// taking traffic. Ingesting into a missing index would silently produce
	// unsearchable documents.
	ctx := context.Background()
	schemaMgr := schema.New(
		store,
		cfg.Database.StartupAttempts,
		time.Duration(cfg.Database.StartupDelaySec)*time.Second,
		logger,
	)
	if err := schemaMgr.EnsureReady(ctx); err != nil {
		logger.Fatal("Search engine not ready", zap.Error(err))
	}
	logger.Info("Search engine ready, index ensured")

	blobStore, err := blobrepo.New(cfg.Storage.FilesDir)
	if err != nil {
		logger.Fatal("Failed to create corpus files dir",
			zap.String("dir", cfg.Storage.FilesDir), zap.Error(err))
	}

	docRepo := documentrepo.New(store)

	ingestSvc := ingestuc.New(docRepo, blobStore)
	searchSvc := searchuc.New(docRepo, cfg.Search.DefaultLimit, cfg.Search.RecentLimit)
	exportSvc := exportuc.New(searchSvc, cfg.Search.ExportLimit)
	healthSvc := healthuc.New(store)

	server := chiTransport.NewServer(ingestSvc, searchSvc, exportSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.APIKeyMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
