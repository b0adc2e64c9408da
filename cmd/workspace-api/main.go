package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/suryakamal494/timetable-workspace-api/api/swagger"
	"github.com/suryakamal494/timetable-workspace-api/internal/handler"
	"github.com/suryakamal494/timetable-workspace-api/internal/middleware"
	"github.com/suryakamal494/timetable-workspace-api/internal/repository"
	"github.com/suryakamal494/timetable-workspace-api/internal/service"
	"github.com/suryakamal494/timetable-workspace-api/internal/workspace"
	"github.com/suryakamal494/timetable-workspace-api/pkg/cache"
	"github.com/suryakamal494/timetable-workspace-api/pkg/config"
	"github.com/suryakamal494/timetable-workspace-api/pkg/database"
	"github.com/suryakamal494/timetable-workspace-api/pkg/logger"
	corsmiddleware "github.com/suryakamal494/timetable-workspace-api/pkg/middleware/cors"
	reqidmiddleware "github.com/suryakamal494/timetable-workspace-api/pkg/middleware/requestid"
)

// @title Timetable Workspace API
// @version 0.1.0
// @description Interactive timetable editing: drag-drop assignment, undo/redo, conflict detection, week propagation and recognized-timetable import.
// @BasePath /api/v1
// @schemes http

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, workspace snapshots disabled", "error", err)
		redisClient = nil
	}

	rosterRepo := repository.NewRosterRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(redisClient, cfg.Workspace.SnapshotTTL)

	wsCfg := workspace.Config{
		MaxTeacherPeriods: cfg.Workspace.MaxTeacherPeriods,
		HistoryLimit:      cfg.Workspace.HistoryLimit,
	}
	workspaceSvc := service.NewWorkspaceService(rosterRepo, holidayRepo, snapshotRepo, wsCfg, nil, logr)
	rosterSvc := service.NewRosterService(rosterRepo, nil, logr)
	holidaySvc := service.NewHolidayService(holidayRepo, nil, logr)
	exportSvc := service.NewExportService(workspaceSvc, cfg.Export.SchoolName, logr)
	metricsSvc := service.NewMetricsService()

	workspaceHandler := handler.NewWorkspaceHandler(workspaceSvc, metricsSvc)
	importHandler := handler.NewImportHandler(workspaceSvc, metricsSvc)
	rosterHandler := handler.NewRosterHandler(rosterSvc)
	holidayHandler := handler.NewHolidayHandler(holidaySvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group(cfg.APIPrefix)
	{
		workspaces := v1.Group("/workspaces/:id")
		{
			workspaces.GET("", workspaceHandler.State)
			workspaces.POST("/assignments", workspaceHandler.Assign)
			workspaces.POST("/assignments/resolve", workspaceHandler.ResolveDrop)
			workspaces.DELETE("/assignments/pending", workspaceHandler.CancelDrop)
			workspaces.POST("/moves", workspaceHandler.Move)
			workspaces.DELETE("/entries/:entryId", workspaceHandler.Remove)
			workspaces.POST("/undo", workspaceHandler.Undo)
			workspaces.POST("/redo", workspaceHandler.Redo)
			workspaces.POST("/propagate", workspaceHandler.Propagate)
			workspaces.POST("/import/validate", importHandler.Validate)
			workspaces.POST("/import/commit", importHandler.Commit)
			workspaces.GET("/export/pdf", exportHandler.PDF)
			workspaces.GET("/export/csv", exportHandler.CSV)
		}

		v1.GET("/teachers/loads", rosterHandler.ListTeacherLoads)
		v1.GET("/teachers/:id/load", rosterHandler.GetTeacherLoad)

		v1.GET("/holidays", holidayHandler.List)
		v1.POST("/holidays", holidayHandler.Create)
		v1.DELETE("/holidays/:id", holidayHandler.Delete)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
