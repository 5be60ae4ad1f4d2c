package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Vedant491/college-fees-api/api/swagger"
	"github.com/Vedant491/college-fees-api/internal/handler"
	"github.com/Vedant491/college-fees-api/internal/middleware"
	"github.com/Vedant491/college-fees-api/internal/repository"
	"github.com/Vedant491/college-fees-api/internal/service"
	"github.com/Vedant491/college-fees-api/pkg/cache"
	"github.com/Vedant491/college-fees-api/pkg/config"
	"github.com/Vedant491/college-fees-api/pkg/database"
	"github.com/Vedant491/college-fees-api/pkg/logger"
	corsmiddleware "github.com/Vedant491/college-fees-api/pkg/middleware/cors"
	reqidmiddleware "github.com/Vedant491/college-fees-api/pkg/middleware/requestid"
)

// @title College Fees API
// @version 1.0.0
// @description Admin-facing college fee payment management
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
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	// The API serves without Redis; only dashboard caching is lost.
	var cacheSvc *service.CacheService
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, dashboard caching disabled", zap.Error(err))
	} else {
		defer redisClient.Close() //nolint:errcheck
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
	}

	validate := validator.New()

	adminRepo := repository.NewAdminRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	feeLineRepo := repository.NewFeeLineRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authSvc := service.NewAuthService(adminRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	courseSvc := service.NewCourseService(courseRepo, cacheSvc, validate, logr)
	feeLineSvc := service.NewFeeLineService(feeLineRepo, courseRepo, studentRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, courseRepo, cacheSvc, validate, logr)
	paymentSvc := service.NewPaymentService(paymentRepo, studentRepo, feeLineRepo, cacheSvc, validate, logr)
	receiptSvc := service.NewReceiptService(receiptRepo, paymentRepo, cfg.Institution, logr)
	reportSvc := service.NewReportService(reportRepo, paymentRepo, cacheSvc, logr)

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
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r, cfg.APIPrefix, authSvc, handler.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Courses:   handler.NewCourseHandler(courseSvc),
		FeeLines:  handler.NewFeeLineHandler(feeLineSvc),
		Students:  handler.NewStudentHandler(studentSvc),
		Payments:  handler.NewPaymentHandler(paymentSvc),
		Receipts:  handler.NewReceiptHandler(receiptSvc),
		Dashboard: handler.NewDashboardHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
