package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/coldtech-agenda/internal/agenda"
	"github.com/BruksfildServices01/coldtech-agenda/internal/audit"
	"github.com/BruksfildServices01/coldtech-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/coldtech-agenda/internal/db"
	"github.com/BruksfildServices01/coldtech-agenda/internal/infra/mirror"
	"github.com/BruksfildServices01/coldtech-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/coldtech-agenda/internal/logger"
	"github.com/BruksfildServices01/coldtech-agenda/internal/routes"
	"github.com/BruksfildServices01/coldtech-agenda/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Env, cfg.LogLevel)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	store, closeStore, err := newMirror(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open local mirror")
	}
	defer closeStore()

	dispatcher := audit.NewDispatcher(audit.New(db), log)
	defer dispatcher.Close()

	svc := agenda.New(
		repository.NewAppointmentGormRepository(db),
		store,
		log,
		agenda.WithAudit(dispatcher),
		agenda.WithClock(func() time.Time { return timezone.NowIn(cfg.Timezone) }),
	)

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	mode, err := svc.Init(initCtx)
	cancelInit()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize agenda")
	}
	log.Info().Str("mode", string(mode)).Msg("agenda ready")

	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, svc, db, cfg, log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown HTTP server")
	}
	log.Info().Msg("server stopped")
}

// newMirror opens the configured local mirror slot. The returned func
// releases it.
func newMirror(cfg *config.Config, log zerolog.Logger) (mirror.Store, func(), error) {
	switch cfg.MirrorBackend {
	case config.MirrorRedis:
		rs := mirror.NewRedisStore(cfg.RedisAddr, cfg.MirrorKey)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rs.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("failed to connect to Redis, local mirror unavailable until it is")
		}

		return rs, func() {
			if err := rs.Close(); err != nil {
				log.Warn().Err(err).Msg("closing redis")
			}
		}, nil

	default:
		fs, err := mirror.NewFileStore(cfg.MirrorPath)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}
