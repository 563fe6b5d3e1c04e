package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/internal/middleware"
	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/pkg/config"
	"github.com/noah-isme/eduguru-api/pkg/logger"
	"github.com/noah-isme/eduguru-api/pkg/middleware/cors"
	"github.com/noah-isme/eduguru-api/pkg/middleware/requestid"
	"github.com/noah-isme/eduguru-api/pkg/response"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	OAuth      *OAuthHandler
	Classes    *ClassHandler
	Students   *StudentHandler
	Subjects   *SubjectHandler
	Imports    *ImportHandler
	Attendance *AttendanceHandler
	Scores     *ScoreHandler
	Journals   *JournalHandler
	Counseling *CounselingHandler
	Recap      *RecapHandler
	Dashboard  *DashboardHandler
	AI         *AIHandler
	Health     *HealthHandler
}

// NewRouter builds the gin engine with all middleware and routes mounted.
// optionalAuth resolves an identity when a token is present without
// rejecting anonymous requests.
func NewRouter(cfg *config.Config, log *zap.Logger, metrics *middleware.Metrics, auth, optionalAuth gin.HandlerFunc, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.Middleware())
	router.Use(logger.GinMiddleware(log))
	router.Use(cors.New(cfg.CORS.AllowedOrigins))
	if metrics != nil {
		router.Use(metrics.Handler())
		router.GET("/metrics", metrics.Exporter())
	}

	router.GET("/health", optionalAuth, h.Health.Check)
	router.GET("/ready", h.Health.Ready)
	if cfg.Env != "production" {
		router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group(cfg.APIPrefix)
	api.GET("/health", h.Health.Ping)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", auth, h.Auth.Me)
		authGroup.PUT("/me", auth, h.Auth.UpdateMe)
		authGroup.GET("/:provider", h.OAuth.Authorize)
		authGroup.GET("/:provider/callback", h.OAuth.Callback)
	}

	classes := api.Group("/classes", auth)
	{
		classes.GET("", h.Classes.List)
		classes.POST("", h.Classes.Create)
		classes.DELETE("", h.Classes.DeleteAll)
		classes.POST("/bulk", h.Imports.Classes)
		classes.PUT("/:id", h.Classes.Update)
		classes.DELETE("/:id", h.Classes.Delete)
	}

	students := api.Group("/students", auth)
	{
		students.GET("", h.Students.List)
		students.POST("", h.Students.Create)
		students.DELETE("", h.Students.DeleteAll)
		students.POST("/bulk", h.Imports.Students)
		students.PUT("/:id", h.Students.Update)
		students.DELETE("/:id", h.Students.Delete)
	}

	subjects := api.Group("/subjects", auth)
	{
		subjects.GET("", h.Subjects.List)
		subjects.POST("", h.Subjects.Add)
		subjects.DELETE("", h.Subjects.RemoveAll)
		subjects.POST("/bulk", h.Imports.Subjects)
		subjects.DELETE("/:name", h.Subjects.Remove)
	}

	api.POST("/sync/master", auth, h.Imports.SyncMaster)

	attendance := api.Group("/attendance", auth)
	{
		attendance.GET("", h.Attendance.List)
		attendance.POST("/bulk", h.Imports.Attendance)
	}

	scores := api.Group("/scores", auth)
	{
		scores.GET("", h.Scores.List)
		scores.POST("/bulk", h.Imports.Scores)
	}

	journals := api.Group("/journals", auth)
	{
		journals.GET("", h.Journals.List)
		journals.POST("", h.Journals.Save)
		journals.DELETE("/:id", h.Journals.Delete)
	}

	// Counseling records are pastoral data: tokens carrying an unknown or
	// missing role claim are rejected even when the signature is valid.
	counseling := api.Group("/counseling", auth,
		middleware.RequireRole(models.RoleTeacher, models.RoleHomeroom, models.RoleCounselor, models.RoleAdmin))
	{
		counseling.GET("", h.Counseling.List)
		counseling.POST("", h.Counseling.Save)
		counseling.DELETE("/:id", h.Counseling.Delete)
	}

	recap := api.Group("/recap", auth)
	{
		recap.GET("/attendance", h.Recap.Attendance)
		recap.GET("/scores", h.Recap.Scores)
	}

	api.GET("/dashboard/stats", auth, h.Dashboard.Stats)

	ai := api.Group("/ai", auth)
	{
		ai.POST("/chat", h.AI.Chat)
		ai.POST("/reflection", h.AI.Reflection)
		ai.POST("/teaching-methods", h.AI.TeachingMethods)
		ai.POST("/follow-up", h.AI.FollowUp)
	}

	router.NoRoute(response.NotFound)

	return router
}
