package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/eduguru-api/api/swagger"
	"github.com/noah-isme/eduguru-api/internal/handler"
	"github.com/noah-isme/eduguru-api/internal/middleware"
	"github.com/noah-isme/eduguru-api/internal/repository"
	"github.com/noah-isme/eduguru-api/internal/service"
	"github.com/noah-isme/eduguru-api/pkg/cache"
	"github.com/noah-isme/eduguru-api/pkg/config"
	"github.com/noah-isme/eduguru-api/pkg/database"
	"github.com/noah-isme/eduguru-api/pkg/logger"
	"github.com/noah-isme/eduguru-api/pkg/signing"
)

// @title           EduGuru API
// @version         1.0
// @description     School administration backend for teachers.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	counselingRepo := repository.NewCounselingRepository(db)
	importRepo := repository.NewImportRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, log)

	cacheService := service.NewCacheService(cacheRepo, log, cfg.Cache.MasterTTL, cfg.Cache.DashboardTTL)
	defer cacheService.Stop()

	authService := service.NewAuthService(userRepo, validate, log, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	stateSigner := signing.NewStateSigner(cfg.OAuth.StateSecret, cfg.OAuth.StateTTL)
	oauthService := service.NewOAuthService(userRepo, authService, stateSigner, cfg.OAuth, log)
	classService := service.NewClassService(classRepo, cacheService, validate, log)
	studentService := service.NewStudentService(studentRepo, cacheService, validate, log)
	subjectService := service.NewSubjectService(subjectRepo, cacheService, log)
	journalService := service.NewJournalService(journalRepo, cacheService, validate, log)
	counselingService := service.NewCounselingService(counselingRepo, validate, log)
	attendanceService := service.NewAttendanceService(attendanceRepo, log)
	scoreService := service.NewScoreService(scoreRepo, log)
	importService := service.NewImportService(importRepo, classRepo, cacheService, validate, log, cfg.Import.InvalidClassPolicy)
	recapService := service.NewRecapService(studentRepo, attendanceRepo, scoreRepo, log)
	dashboardService := service.NewDashboardService(studentRepo, classRepo, journalRepo, cacheService, log)
	aiService := service.NewAIService(cfg.AI, log)

	metrics := middleware.NewMetrics()
	authMiddleware := middleware.JWT(authService)
	optionalAuthMiddleware := middleware.OptionalJWT(authService)

	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		OAuth:      handler.NewOAuthHandler(oauthService, cfg.OAuth.ClientURL),
		Classes:    handler.NewClassHandler(classService),
		Students:   handler.NewStudentHandler(studentService),
		Subjects:   handler.NewSubjectHandler(subjectService),
		Imports:    handler.NewImportHandler(importService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Scores:     handler.NewScoreHandler(scoreService),
		Journals:   handler.NewJournalHandler(journalService),
		Counseling: handler.NewCounselingHandler(counselingService),
		Recap:      handler.NewRecapHandler(recapService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		AI:         handler.NewAIHandler(aiService),
		Health:     handler.NewHealthHandler(db, aiService),
	}

	router := handler.NewRouter(cfg, log, metrics, authMiddleware, optionalAuthMiddleware, handlers)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
