package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpHandlers "github.com/gourav02/acda-org/internal/adapters/http/handlers"
	httpMiddleware "github.com/gourav02/acda-org/internal/adapters/http/middleware"
	"github.com/gourav02/acda-org/internal/adapters/imagehost/cloudinary"
	"github.com/gourav02/acda-org/internal/adapters/mail/resend"
	"github.com/gourav02/acda-org/internal/adapters/session"
	memorystorage "github.com/gourav02/acda-org/internal/adapters/storage/memory"
	mongostorage "github.com/gourav02/acda-org/internal/adapters/storage/mongo"
	redisstorage "github.com/gourav02/acda-org/internal/adapters/storage/redis"
	"github.com/gourav02/acda-org/internal/config"
	"github.com/gourav02/acda-org/internal/core/ports"
	"github.com/gourav02/acda-org/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := mongostorage.Connect(connectCtx, mongostorage.Config(cfg.Mongo))
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Error("failed to close mongodb client", zap.Error(err))
		}
	}()

	if err := db.EnsureIndexes(connectCtx); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	limiterStore, redisClient, closeLimiter, err := initLimiterStore(cfg)
	if err != nil {
		logger.Fatal("failed to init limiter store", zap.Error(err))
	}
	defer closeLimiter()

	limiter, err := services.NewRateLimiterService(limiterStore, cfg.Limiter.ContactRule, nil)
	if err != nil {
		logger.Fatal("failed to create rate limiter", zap.Error(err))
	}

	imageHost, err := cloudinary.New(cloudinary.Config(cfg.Cloudinary))
	if err != nil {
		logger.Fatal("failed to init image host", zap.Error(err))
	}

	mailer, err := resend.New(resend.Config{
		APIKey:     cfg.Mail.ResendAPIKey,
		FromEmail:  cfg.Mail.FromEmail,
		AdminEmail: cfg.Mail.AdminEmail,
	})
	if err != nil {
		logger.Fatal("failed to init mailer", zap.Error(err))
	}

	sessions := session.NewManager(cfg.Session.Lifetime, redisClient)

	eventService, err := services.NewEventService(db.Events(), imageHost, cfg.Upload, logger, nil)
	if err != nil {
		logger.Fatal("failed to create event service", zap.Error(err))
	}
	photoService, err := services.NewPhotoService(db.Photos(), nil)
	if err != nil {
		logger.Fatal("failed to create photo service", zap.Error(err))
	}
	contactService, err := services.NewContactService(limiter, mailer, logger)
	if err != nil {
		logger.Fatal("failed to create contact service", zap.Error(err))
	}
	adminService, err := services.NewAdminService(db.Admins(), nil)
	if err != nil {
		logger.Fatal("failed to create admin service", zap.Error(err))
	}

	router := newRouter(routerDeps{
		logger:   logger,
		sessions: sessions,
		events:   httpHandlers.NewEventsHandler(eventService, logger),
		photos:   httpHandlers.NewPhotosHandler(photoService, sessions, logger),
		contact:  httpHandlers.NewContactHandler(contactService, logger),
		admin:    httpHandlers.NewAdminHandler(adminService, sessions, logger),
		auth:     httpHandlers.NewAuthHandler(adminService, sessions, logger),
		health: httpHandlers.NewHealthHandler(logger, map[string]httpHandlers.Pinger{
			"database": db,
			"limiter":  pingableLimiter(limiterStore),
		}),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: sessions.LoadAndSave(router),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

type routerDeps struct {
	logger   *zap.Logger
	sessions ports.SessionManager
	events   *httpHandlers.EventsHandler
	photos   *httpHandlers.PhotosHandler
	contact  *httpHandlers.ContactHandler
	admin    *httpHandlers.AdminHandler
	auth     *httpHandlers.AuthHandler
	health   *httpHandlers.HealthHandler
}

func newRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(httpMiddleware.RequestLogger(deps.logger))

	r.Get("/api/health", deps.health.Check)

	r.Route("/api/events", func(r chi.Router) {
		r.Get("/list", deps.events.List)
		r.Get("/photos", deps.photos.List)

		r.Group(func(r chi.Router) {
			r.Use(httpMiddleware.RequireSession(deps.sessions))
			r.Post("/create", deps.events.Create)
			r.Delete("/delete", deps.events.Delete)
			r.Post("/upload", deps.photos.Upload)
		})
	})

	r.Post("/api/admin/create", deps.admin.Create)
	r.Get("/api/admin/create", deps.admin.Count)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", deps.auth.Login)
		r.Post("/logout", deps.auth.Logout)
		r.Get("/session", deps.auth.Session)
	})

	r.Post("/api/contact", deps.contact.Submit)

	return r
}

// initLimiterStore returns the configured store and, for redis, the shared
// client so sessions can reuse it.
func initLimiterStore(cfg config.Config) (ports.LimiterStore, *goredis.Client, func(), error) {
	switch cfg.Limiter.Store {
	case "redis":
		store, err := redisstorage.New(redisstorage.Config(cfg.Redis))
		if err != nil {
			return nil, nil, nil, err
		}
		return store, store.Client(), func() { _ = store.Close() }, nil
	default:
		return memorystorage.NewLimiterStore(), nil, func() {}, nil
	}
}

// pingableLimiter hides the memory store from the health endpoint; only the
// redis store has a connection to report on.
func pingableLimiter(store ports.LimiterStore) httpHandlers.Pinger {
	if p, ok := store.(httpHandlers.Pinger); ok {
		return p
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unsupported log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
