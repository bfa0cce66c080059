// Package app wires configuration, storage, services, and HTTP transport
// into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lunara-app/lunara-backend/internal/adapter/postgres"
	contentrepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/content"
	cyclerepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/cycle"
	dailylogrepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/dailylog"
	symptomrepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/symptom"
	symptomlogrepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/symptomlog"
	tokenrepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/token"
	userrepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/user"
	jwtauth "github.com/lunara-app/lunara-backend/internal/auth"
	"github.com/lunara-app/lunara-backend/internal/config"
	authsvc "github.com/lunara-app/lunara-backend/internal/service/auth"
	contentsvc "github.com/lunara-app/lunara-backend/internal/service/content"
	cyclesvc "github.com/lunara-app/lunara-backend/internal/service/cycle"
	dailylogsvc "github.com/lunara-app/lunara-backend/internal/service/dailylog"
	symptomsvc "github.com/lunara-app/lunara-backend/internal/service/symptom"
	usersvc "github.com/lunara-app/lunara-backend/internal/service/user"
	"github.com/lunara-app/lunara-backend/internal/transport/middleware"
	"github.com/lunara-app/lunara-backend/internal/transport/rest"
)

// Run builds the application from configuration and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting", slog.String("version", BuildVersion()))

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	cycles := cyclerepo.New(pool)
	symptoms := symptomrepo.New(pool)
	entries := symptomlogrepo.New(pool)
	dailyLogs := dailylogrepo.New(pool)
	editorial := contentrepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txm, jwtManager, cfg.Auth)
	cycleService := cyclesvc.NewService(logger, cycles, entries, cfg.Cycle)
	symptomService := symptomsvc.NewService(logger, symptoms, entries, cycles, txm)
	dailyLogService := dailylogsvc.NewService(logger, dailyLogs, entries, cycles)
	contentService := contentsvc.NewService(logger, editorial, editorial)
	userService := usersvc.NewService(logger, users, tokens, txm, cfg.Auth)

	router := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Cycle:    rest.NewCycleHandler(cycleService, logger),
		Symptom:  rest.NewSymptomHandler(symptomService, logger),
		DailyLog: rest.NewDailyLogHandler(dailyLogService, logger),
		Content:  rest.NewContentHandler(contentService, logger),
		User:     rest.NewUserHandler(userService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
