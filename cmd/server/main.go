package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	"github.com/vncsmyrnk/livepoll/internal/adapters/auth"
	"github.com/vncsmyrnk/livepoll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/livepoll/internal/adapters/pubsub/redis"
	"github.com/vncsmyrnk/livepoll/internal/adapters/realtime"
	"github.com/vncsmyrnk/livepoll/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/livepoll/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/livepoll/internal/config"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
	"github.com/vncsmyrnk/livepoll/internal/core/services"
	"github.com/vncsmyrnk/livepoll/internal/lib/logger"
)

type repositories struct {
	users ports.UserRepository
	polls ports.PollRepository
	votes ports.VoteRepository
	close func() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	if err := run(cfg, log); err != nil {
		log.Error("server stopped", logger.Err(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(cfg, log)
	if err != nil {
		return err
	}
	defer repos.close()

	hub := realtime.NewHub(log)
	var broadcaster ports.ResultsBroadcaster = hub

	if cfg.Redis.URL != "" {
		opts, err := goredis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := goredis.NewClient(opts)
		defer client.Close()

		relay := redis.NewRelay(client, cfg.Redis.Channel, hub, log)
		broadcaster = relay
		go func() {
			if err := relay.Run(ctx); err != nil {
				log.Error("relay stopped", logger.Err(err))
			}
		}()
		log.Info("redis relay enabled", slog.String("channel", cfg.Redis.Channel))
	}

	jwtIssuer := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := services.NewAuthService(log, repos.users, auth.NewBcryptHasher(auth.DefaultCost), jwtIssuer, jwtIssuer)
	resultsService := services.NewResultsService(repos.polls)
	pollService := services.NewPollService(repos.polls)
	voteService := services.NewVoteService(log, repos.votes, resultsService, broadcaster)

	handler := http.NewHandler(http.Handlers{
		Auth:     http.NewAuthHandler(authService, log),
		Polls:    http.NewPollHandler(pollService, resultsService, log),
		Votes:    http.NewVoteHandler(voteService, log),
		Realtime: realtime.NewHandler(hub, log, cfg.Realtime.AllowedOrigins),
	}, authService, log, http.RouterOptions{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RequestLogging: true,
	})

	server := &stdhttp.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", cfg.HTTP.Addr), slog.String("storage", cfg.Storage))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("gracefully shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func openRepositories(cfg *config.Config, log *slog.Logger) (*repositories, error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			users: store.Users(),
			polls: store.Polls(),
			votes: store.Votes(),
			close: func() error { return nil },
		}, nil
	}

	db, err := sql.Open("postgres", cfg.Postgres.ConnString())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.Postgres.MigrateOnStart {
		if err := postgres.Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("migrations applied")
	}

	return &repositories{
		users: postgres.NewUserRepository(db),
		polls: postgres.NewPollRepository(db),
		votes: postgres.NewVoteRepository(db),
		close: db.Close,
	}, nil
}
