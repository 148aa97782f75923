package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vagas/internal/config"
	"vagas/internal/core"
	"vagas/internal/db"
	"vagas/internal/events"
	"vagas/internal/http/handler"
	"vagas/internal/http/handler/middleware"
	"vagas/internal/http/payload"
	"vagas/internal/http/server"
	"vagas/internal/ratelimit"
	"vagas/internal/repository"
	"vagas/internal/telemetry"
	"vagas/pkg/jwt"
	"vagas/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceName    = "vagas"
	connectTimeout = 5 * time.Second
	seedTimeout    = 30 * time.Second
	loginScope     = "login"
)

type adminSeeder interface {
	SeedAdmin(ctx context.Context, reg core.Registration) error
}

// seedAdmin inserts the bootstrap account under its own deadline, separate
// from the one shared by the startup dials.
func seedAdmin(seeder adminSeeder, account *config.SeedAccount) error {
	if account == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	return seeder.SeedAdmin(ctx, core.Registration{
		Name:     account.Name,
		Email:    account.Email,
		Password: account.Password,
	})
}

// closer releases one external resource on shutdown.
type closer struct {
	name  string
	close func(context.Context) error
}

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)
	defer func() { _ = logger.Sync() }()

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	var closers []closer
	defer func() {
		shutdown(logger, closers)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	// tracing
	if cfg.OTelCollectorURL != "" {
		shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, cfg.OTelCollectorURL)
		if err != nil {
			logger.Errorw("failed to initialize tracer", "error", err)
			return err
		}
		closers = append(closers, closer{"tracer", shutdownTracer})
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	closers = append(closers, closer{"database", func(context.Context) error { return dbConn.Close() }})

	if err = repository.Migrate(dbConn); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// repositories
	userRepo := repository.NewUserRepository(dbConn)
	jobRepo := repository.NewJobRepository(dbConn)

	// job events
	var publisher core.EventPublisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		natsPublisher, err := events.ConnectNATS(logger, cfg.NATSURL, connectTimeout)
		if err != nil {
			logger.Errorw("failed to connect to nats", "error", err)
			return err
		}
		publisher = natsPublisher
		closers = append(closers, closer{"nats", func(context.Context) error { return natsPublisher.Close() }})
	} else {
		logger.Infow("NATS_URL not set, job events disabled")
	}

	// login throttling
	var limiter middleware.Limiter = ratelimit.Unlimited{}
	if cfg.RedisURL != "" {
		redisLimiter, err := ratelimit.NewRedisLimiter(cfg.RedisURL, cfg.LoginMaxAttempts, cfg.LoginWindow)
		if err != nil {
			logger.Errorw("failed to create redis limiter", "error", err)
			return err
		}
		closers = append(closers, closer{"redis", func(context.Context) error { return redisLimiter.Close() }})

		if err = redisLimiter.Ping(ctx); err != nil {
			logger.Warnw("redis not reachable, login throttling fails open until it is", "error", err)
		}
		limiter = redisLimiter
	} else {
		logger.Infow("REDIS_URL not set, login throttling disabled")
	}

	// services
	userService := core.NewUserService(logger, userRepo, jwtService, cfg.JWTTTL)
	jobService := core.NewJobService(logger, jobRepo, publisher)

	if err = seedAdmin(userService, cfg.SeedAdmin); err != nil {
		logger.Errorw("failed to seed user table", "error", err)
		return err
	}

	// handlers
	decoder := payload.DecodeValidator{}
	routes := Routes{
		Users:      handler.NewUserHandler(logger, decoder, userService),
		Jobs:       handler.NewJobHandler(logger, decoder, jobService),
		Health:     handler.NewHealthHandler(logger, dbConn),
		Auth:       middleware.NewAuthenticator(logger, jwtService),
		LoginLimit: middleware.NewRateLimiter(logger, limiter, loginScope),
	}

	hdlr := NewRouter(logger, cfg, routes)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}

// shutdown closes resources in reverse order of acquisition.
func shutdown(logger *zap.SugaredLogger, closers []closer) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].close(ctx); err != nil {
			logger.Warnw("failed to close resource", "resource", closers[i].name, "error", err)
		}
	}
}
