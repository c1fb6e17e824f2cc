package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/academy-api/api/swagger"
	"github.com/noah-isme/academy-api/internal/handler"
	"github.com/noah-isme/academy-api/internal/middleware"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/internal/repository"
	"github.com/noah-isme/academy-api/internal/service"
	"github.com/noah-isme/academy-api/pkg/cache"
	"github.com/noah-isme/academy-api/pkg/config"
	"github.com/noah-isme/academy-api/pkg/database"
	"github.com/noah-isme/academy-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/academy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/academy-api/pkg/middleware/requestid"
	"github.com/noah-isme/academy-api/pkg/postgrest"
	"github.com/noah-isme/academy-api/pkg/signing"
)

// @title Academy API
// @version 0.1.0
// @description Role-based home screens for the academy app
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type classReader interface {
	List(ctx context.Context) ([]models.Class, error)
}

type lessonReader interface {
	List(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error)
}

type gateway struct {
	classes classReader
	lessons lessonReader
	ready   handler.ReadinessCheck
	close   func() error
}

func newGateway(ctx context.Context, cfg *config.Config) (*gateway, error) {
	switch cfg.Gateway.Driver {
	case config.GatewayPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &gateway{
			classes: repository.NewClassRepository(db),
			lessons: repository.NewLessonRepository(db),
			ready:   db.PingContext,
			close:   db.Close,
		}, nil
	default:
		client := postgrest.New(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.Timeout, nil)
		return &gateway{
			classes: repository.NewRemoteClassRepository(client),
			lessons: repository.NewRemoteLessonRepository(client),
			ready: func(ctx context.Context) error {
				return client.Ping(ctx, models.CollectionClass)
			},
			close: func() error { return nil },
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	loc, err := cfg.Academy.Location()
	if err != nil {
		logr.Fatal("academy timezone", zap.String("timezone", cfg.Academy.Timezone), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, err := newGateway(ctx, cfg)
	if err != nil {
		logr.Fatal("gateway init failed", zap.String("driver", cfg.Gateway.Driver), zap.Error(err))
	}
	defer gw.close() //nolint:errcheck

	checks := map[string]handler.ReadinessCheck{"gateway": gw.ready}

	metrics := service.NewMetricsService()

	var cacheRepo *repository.CacheRepository
	if cfg.Calendar.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, calendar feed cache disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client)
			defer cacheRepo.Close() //nolint:errcheck
			checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		}
	}
	var cacheSvc *service.CacheService
	if cacheRepo != nil {
		cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Calendar.CacheTTL, logr, true)
	}

	homeSvc := service.NewTeacherHomeService(service.TeacherHomeServiceParams{
		Classes:  gw.classes,
		Lessons:  gw.lessons,
		Metrics:  metrics,
		Logger:   logr,
		Location: loc,
	})
	exportSvc := service.NewExportService(homeSvc, validator.New(), logr)
	calendarSvc := service.NewCalendarService(homeSvc, cacheSvc,
		signing.NewSigner(cfg.Calendar.LinkSecret, cfg.Calendar.LinkTTL), cfg.Calendar.CacheTTL, logr)
	authSvc := service.NewAuthService(logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		Issuer:            cfg.JWT.Issuer,
	})

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handler.Router{
		Auth:        authSvc,
		Tabs:        service.Tabs,
		Navigation:  handler.NewNavigationHandler(service.NewNavigationService()),
		TeacherHome: handler.NewTeacherHomeHandler(homeSvc, exportSvc, calendarSvc),
		Metrics:     handler.NewMetricsHandler(metrics, checks),
	}.Register(r, cfg.APIPrefix)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("gateway", cfg.Gateway.Driver),
			zap.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
