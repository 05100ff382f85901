package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	internalhandler "github.com/noah-isme/course-scheduler/internal/handler"
	internalmiddleware "github.com/noah-isme/course-scheduler/internal/middleware"
	"github.com/noah-isme/course-scheduler/internal/repository"
	"github.com/noah-isme/course-scheduler/internal/scheduler"
	"github.com/noah-isme/course-scheduler/internal/service"
	"github.com/noah-isme/course-scheduler/pkg/cache"
	"github.com/noah-isme/course-scheduler/pkg/config"
	"github.com/noah-isme/course-scheduler/pkg/database"
	"github.com/noah-isme/course-scheduler/pkg/logger"
	corsmiddleware "github.com/noah-isme/course-scheduler/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/course-scheduler/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	metricsHandler := internalhandler.NewMetricsHandler(metricsSvc)

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to initialise database", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, running without catalog cache", "error", err)
	}

	sectionRepo := repository.NewSectionRepository(db)
	cachedSectionRepo := repository.NewCachedSectionRepository(sectionRepo, redisClient, cfg.Scheduler.CatalogCacheTTL, logr, metricsSvc)
	catalogAdapter := service.NewCatalogAdapter(cachedSectionRepo)
	driver := scheduler.NewDriver(catalogAdapter)

	plannerSvc := service.NewPlannerService(driver, validator.New(), logr, metricsSvc, service.PlannerConfig{
		DefaultK:    cfg.Scheduler.DefaultK,
		MaxK:        cfg.Scheduler.MaxK,
		Deadline:    cfg.Scheduler.SearchDeadline,
		ProposalTTL: cfg.Scheduler.ProposalTTL,
	})
	scheduleHandler := internalhandler.NewScheduleHandler(plannerSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	schedules := api.Group("/schedules")
	schedules.POST("/generate", scheduleHandler.Generate)
	schedules.GET("/generate/:proposalId", scheduleHandler.GetProposal)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("starting schedule planner api", "addr", addr)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server exited", "error", err)
	}
}
