package appServer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/listings/config"
	"github.com/ds124wfegd/listings/internal/database/memory"
	noticeRedis "github.com/ds124wfegd/listings/internal/database/redis"
	"github.com/ds124wfegd/listings/internal/database/repository"
	"github.com/ds124wfegd/listings/internal/service"
	"github.com/ds124wfegd/listings/internal/transport"
	"github.com/ds124wfegd/listings/pkg/database"
	"github.com/ds124wfegd/listings/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// SetupLogging configures the global logrus logger from cfg.
func SetupLogging(cfg *config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.WithField("level", cfg.Level).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// Migrate opens the configured database and applies the schema.
func Migrate(cfg *config.Config) error {
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return database.RunMigrations(db)
}

// BuildRouter wires repositories, services and handlers over db. The returned
// cleanup releases the notice store connection.
func BuildRouter(ctx context.Context, cfg *config.Config, db *sqlx.DB) (*gin.Engine, func(), error) {
	// Initialize repositories
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	notices, cleanup, err := newNoticeRepository(ctx, &cfg.Redis)
	if err != nil {
		return nil, nil, err
	}

	// Initialize services
	venueService := service.NewVenueService(venueRepo, artistRepo, showRepo, time.Now)
	artistService := service.NewArtistService(artistRepo, venueRepo, showRepo, time.Now)
	showService := service.NewShowService(showRepo, venueRepo, artistRepo)

	// Initialize handlers
	notifier := transport.NewNotifier(notices)
	venueHandler := transport.NewVenueHandler(venueService, notifier)
	artistHandler := transport.NewArtistHandler(artistService, notifier)
	showHandler := transport.NewShowHandler(showService, notifier)

	router := transport.InitRoutes(venueHandler, artistHandler, showHandler, notifier, cfg.Server.RequestTimeout)
	return router, cleanup, nil
}

func newNoticeRepository(ctx context.Context, cfg *config.RedisConfig) (repository.NoticeRepository, func(), error) {
	if !cfg.Enabled {
		logrus.Warn("Redis disabled, notices are kept in memory")
		return memory.NewNoticeRepository(cfg.NoticeTTL), func() {}, nil
	}

	client, err := redis.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close redis client")
		}
	}
	return noticeRedis.NewNoticeRepository(client, cfg.NoticeTTL), cleanup, nil
}

// NewServer runs the http server until SIGINT or SIGTERM.
func NewServer(cfg *config.Config) error {
	SetupLogging(&cfg.Log)

	// Initialize database
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if cfg.IsProduction() || cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router, cleanup, err := BuildRouter(ctx, cfg, db)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := new(Server)
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Run(cfg, router); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	logrus.WithFields(logrus.Fields{
		"address": cfg.GetServerAddress(),
		"version": cfg.Server.AppVersion,
		"driver":  cfg.Database.Driver,
	}).Info("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("error occured while running http server: %w", err)
		}
	}

	logrus.Info("App Shutting Down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error occured on server shutting down: %w", err)
	}
	return nil
}
