package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/landsecure/landsecure/internal/config"
	"github.com/landsecure/landsecure/internal/db"
	dbRedis "github.com/landsecure/landsecure/internal/db/redis"
	"github.com/landsecure/landsecure/internal/domain"
	"github.com/landsecure/landsecure/internal/fixture"
	logpkg "github.com/landsecure/landsecure/internal/logger"
	"github.com/landsecure/landsecure/internal/metrics"
	"github.com/landsecure/landsecure/internal/repository/snapshot"
	"github.com/landsecure/landsecure/internal/store"
	chiTransport "github.com/landsecure/landsecure/internal/transport/chi"
	cataloguc "github.com/landsecure/landsecure/internal/usecase/catalog"
	healthuc "github.com/landsecure/landsecure/internal/usecase/health"
	searchuc "github.com/landsecure/landsecure/internal/usecase/search"
	"github.com/landsecure/landsecure/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("build", version.String()),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("records_source", cfg.Records.Source),
	)

	ctx := context.Background()

	// Database is only needed when records come from a snapshot.
	var kv db.Store
	if cfg.UsesDatabase() {
		kv, err = connectDatabase(ctx, &cfg, logger)
		if err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		defer kv.Close()
	}

	fx, err := loadRecords(ctx, &cfg, kv)
	if err != nil {
		logger.Fatal("Failed to load land records", zap.Error(err))
	}

	records, err := store.New(fx.Records)
	if err != nil {
		logger.Fatal("Failed to build record store", zap.Error(err))
	}
	logger.Info("Land records loaded",
		zap.Int("records", records.Len()),
		zap.Int("states", len(fx.States)),
		zap.Int("auctions", len(fx.Auctions)),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()
	metrics.RecordsLoaded.Set(float64(records.Len()))

	// Create use case services
	searchSvc := searchuc.New(records).WithLimits(cfg.Search.NearbyLimit, cfg.Search.FeaturedLimit)
	catalogSvc := cataloguc.New(fx.States, fx.Verifications, fx.Auctions)

	// Pass nil interface (not typed nil pointer) when there is no database.
	var pinger healthuc.DBPinger
	if kv != nil {
		pinger = kv
	}
	healthSvc := healthuc.New(records, pinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, catalogSvc, healthSvc, logger).
		WithMaxLimit(cfg.Search.MaxLimit)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// connectDatabase opens the key-value store and waits until it answers PING.
// Redis and Valkey speak the same protocol, so both drivers share one client.
func connectDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (db.Store, error) {
	kv, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s store: %w", cfg.Database.Driver, err)
	}

	timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := kv.WaitForReady(ctx, timeout); err != nil {
		kv.Close()
		return nil, err
	}
	logger.Info("Connected to database",
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)
	return kv, nil
}

// loadRecords reads the fixture from the configured source.
func loadRecords(ctx context.Context, cfg *config.Config, kv db.Store) (fixture.Fixture, error) {
	switch cfg.Records.Source {
	case config.SourceFile:
		return fixture.LoadFile(cfg.Records.Path)
	case config.SourceRedis:
		f, err := snapshot.New(kv, cfg.Records.Key).Load(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			return fixture.Fixture{}, fmt.Errorf("%w: run landsecure-seed first", err)
		}
		return f, err
	default:
		return fixture.LoadEmbedded()
	}
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
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorCodeInternalError,
						Message: "internal error",
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

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
