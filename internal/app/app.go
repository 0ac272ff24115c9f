package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/spacetalk-backend/internal/adapter/notify"
	"github.com/heartmarshall/spacetalk-backend/internal/adapter/postgres"
	memberrepo "github.com/heartmarshall/spacetalk-backend/internal/adapter/postgres/member"
	mentionrepo "github.com/heartmarshall/spacetalk-backend/internal/adapter/postgres/mention"
	messagerepo "github.com/heartmarshall/spacetalk-backend/internal/adapter/postgres/message"
	"github.com/heartmarshall/spacetalk-backend/internal/auth"
	"github.com/heartmarshall/spacetalk-backend/internal/config"
	mentionsvc "github.com/heartmarshall/spacetalk-backend/internal/service/mention"
	messagesvc "github.com/heartmarshall/spacetalk-backend/internal/service/message"
	"github.com/heartmarshall/spacetalk-backend/internal/transport/dataloader"
	"github.com/heartmarshall/spacetalk-backend/internal/transport/middleware"
	"github.com/heartmarshall/spacetalk-backend/internal/transport/rest"
)

// Run wires the application together and blocks until the context is
// cancelled or a termination signal arrives. Shutdown is graceful: in-flight
// requests get cfg.Server.ShutdownTimeout to complete.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	redisClient, err := notify.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close() //nolint:errcheck

	members := memberrepo.New(pool)
	messages := messagerepo.New(pool)
	mentions := mentionrepo.New(pool)
	publisher := notify.NewPublisher(redisClient)

	txm := postgres.NewTxManager(pool)

	mentionService := mentionsvc.NewService(logger, mentions, members, messages, publisher)
	messageService := messagesvc.NewService(logger, messages, members, mentionService, txm)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Message: rest.NewMessageHandler(messageService, logger),
		Mention: rest.NewMentionHandler(mentionService, logger),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwtManager),
		dataloader.Middleware(&dataloader.Repos{Mention: mentions, Member: members}),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
