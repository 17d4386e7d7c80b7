package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-chi/chi/v5"
	"github.com/godruoyi/go-snowflake"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/rench/blog/config"
	"github.com/rench/blog/logger"
	"github.com/rench/blog/middleware"
	"github.com/rench/blog/notifier"
	"github.com/rench/blog/sitemeta"
	blogsql "github.com/rench/blog/sql"
	"github.com/rench/blog/utils"
)

const (
	dbConnectTimeout      = 10 * time.Second
	dbMaxOpenConnections  = 10
	retryMaxElapsedTime   = 15 * time.Minute
	serverIdleTimeout     = 1 * time.Minute
	serverReadTimeout     = 10 * time.Second
	serverWriteTimeout    = 30 * time.Second
	serverShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.New()
	log := logger.New(cfg)

	meta, err := loadSiteMetadata(cfg)
	if err != nil {
		log.Error("exiting: unable to load site metadata: %v", err)
		return
	}

	// https://snowsta.mp
	startTime, _ := time.Parse(time.RFC3339, "2015-01-01T00:00:00Z")
	snowflake.SetStartTime(startTime)
	snowflake.SetMachineID(1)

	slacknotifier := notifier.NewSlack(cfg.Slack.BlogBotToken, log)

	swappableDB := NewSwappableDB()
	handler := NewHandler(cfg, log, meta, swappableDB)

	apiServer := startHTTPServer(cfg, log, handler)
	metricsServer := startMetricsServer(cfg, log)

	if cfg.Database.Enabled() {
		db, err := connectToDatabaseWithRetry(ctx, cfg, log)
		if err != nil {
			log.Error("could not connect to DB after retries, serving built-in articles: %v", err)
		} else {
			if err := migrate(db); err != nil {
				log.Error("failed to run migrations: %v", err)
			}
			swappableDB.Swap(db)
			defer func() {
				if err := swappableDB.Close(); err != nil {
					log.Error("error closing database: %v", err)
				}
			}()
		}
	} else {
		log.Info("no database configured, serving built-in articles")
	}

	if err := slacknotifier.SendMsg(
		ctx,
		cfg.Slack.DeploymentsChannelID,
		fmt.Sprintf("blog is up (env: %s)", cfg.App.Env),
	); err != nil {
		log.Warn("unable to announce startup: %v", err)
	}

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("server shutdown cleanly")
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("metrics server shutdown cleanly")
	}
}

func loadSiteMetadata(cfg *config.Config) (sitemeta.Metadata, error) {
	if cfg.Site.MetadataPath == "" {
		return sitemeta.Default()
	}
	return sitemeta.Load(cfg.Site.MetadataPath)
}

type dbConnection struct {
	db *sql.DB
}

func connectToDatabaseWithRetry(ctx context.Context, cfg *config.Config, log logger.Logger) (*sql.DB, error) {
	connectionString := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Endpoint,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	operation := func() (dbConnection, error) {
		connCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
		defer cancel()

		db, err := sql.Open("postgres", connectionString)
		if err != nil {
			log.Warn("failed to open the database connection: %v", err.Error())
			return dbConnection{}, err
		}

		if err := db.PingContext(connCtx); err != nil {
			log.Warn("failed to ping the database: %v", err.Error())
			db.Close()
			return dbConnection{}, err
		}

		db.SetMaxOpenConns(dbMaxOpenConnections)
		log.Info("connected to database")

		return dbConnection{db: db}, nil
	}

	conn, err := backoff.Retry[dbConnection](
		ctx,
		operation,
		backoff.WithMaxElapsedTime(retryMaxElapsedTime),
	)

	return conn.db, err
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(blogsql.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return goose.Up(db, blogsql.MigrationsDir)
}

func newRouter(handler *Handler) http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestIDHeaderMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	mux.Handle("/static/*", handler.StaticFiles())
	mux.Get("/", handler.HomeRedirect)
	mux.Route("/p", func(mux chi.Router) {
		mux.Route("/public", func(mux chi.Router) {
			mux.Get("/home", utils.MakeTemplHandler(handler.log, handler.HomeView))
			mux.Get("/articles", utils.MakeTemplHandler(handler.log, handler.ArticlesView))
			mux.Get("/articles/{id}", utils.MakeTemplHandler(handler.log, handler.ArticleDetailsView))
		})
	})

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/public/v0", func(mux chi.Router) {
			mux.Get("/articles", utils.MakeTemplHandler(handler.log, handler.GetArticles))
			mux.Get("/articles/{id}", utils.MakeTemplHandler(handler.log, handler.GetArticle))
		})
	})

	mux.Get("/healthz", handler.Healthz)
	mux.NotFound(utils.MakeTemplHandler(handler.log, handler.NotFoundView))

	return mux
}

func startHTTPServer(
	cfg *config.Config,
	log logger.Logger,
	handler *Handler,
) *http.Server {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      newRouter(handler),
	}

	go func() {
		log.Info("server started on %s", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start server: %s", err.Error())
		}
	}()

	return server
}

func startMetricsServer(
	cfg *config.Config,
	log logger.Logger,
) *http.Server {
	mux := chi.NewRouter()

	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.MetricsPort),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      mux,
	}

	go func() {
		log.Info("metrics server started on %s", cfg.App.MetricsPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start metrics server: %s", err.Error())
		}
	}()

	return server
}
