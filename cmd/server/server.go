package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/thereayou/classlink/internal/cache"
	"github.com/thereayou/classlink/internal/config"
	"github.com/thereayou/classlink/internal/database"
	"github.com/thereayou/classlink/internal/handlers"
	"github.com/thereayou/classlink/internal/identity"
	"github.com/thereayou/classlink/internal/logger"
	"github.com/thereayou/classlink/internal/middleware"
	"github.com/thereayou/classlink/internal/notify"
	"github.com/thereayou/classlink/internal/services"
	"github.com/thereayou/classlink/internal/validation"
	ws "github.com/thereayou/classlink/internal/websocket"
	"github.com/thereayou/classlink/pkg/auth"
)

const (
	connectTimeout     = 5 * time.Second
	notificationBuffer = 256
)

type Server struct {
	cfg        *config.Config
	log        *logger.Logger
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Hub        *ws.Hub
	Projector  *notify.Projector
	httpServer *http.Server
}

func NewServer(cfg *config.Config, log *logger.Logger) (*Server, error) {
	db, err := database.Connect(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	rdb, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "redis")
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	blacklist := cache.NewTokenBlacklist(rdb)

	hub := ws.NewHub(ws.NewRegistry())
	projector := notify.NewProjector(hub, identity.NewResolver(db), log, notificationBuffer)

	validation.RegisterGin()
	router := gin.Default()
	router.Use(middleware.CORS(cfg.ClientURL))

	APIEndpoints(router, Handlers{
		Auth:     handlers.NewAuthHandler(db, jwtMgr, blacklist, log),
		Messages: handlers.NewHTTPMessageHandler(db, log),
		WS: handlers.NewWebSocketHandler(hub,
			handlers.NewMessageHandler(hub, projector, log), cfg.ClientURL, log),
		Health: handlers.NewHealthHandler(map[string]services.Pinger{
			"database": db,
			"redis":    blacklist,
		}),
	}, jwtMgr, blacklist)

	return &Server{
		cfg:        cfg,
		log:        log,
		Router:     router,
		DB:         db,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Hub:        hub,
		Projector:  projector,
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run обслуживает запросы до отмены ctx, затем закрывает HTTP, хаб и хранилища
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	go s.Projector.Run(ctx)
	go s.Hub.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case err := <-errCh:
		runErr = errors.Wrap(err, "http server")
	case <-ctx.Done():
		s.log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Error("could not stop server gracefully: %v", err)
		_ = s.httpServer.Close()
	}

	s.Hub.Stop()
	if err := s.Redis.Close(); err != nil {
		s.log.Warn("redis close: %v", err)
	}
	if err := s.DB.Close(); err != nil {
		s.log.Warn("database close: %v", err)
	}
	return runErr
}
