package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/bi1101/ielts-science-lms-sub003/config"
	"github.com/bi1101/ielts-science-lms-sub003/database"
	_ "github.com/bi1101/ielts-science-lms-sub003/docs" // Swagger docs - auto-generated
	adminctrl "github.com/bi1101/ielts-science-lms-sub003/internal/controller/admin"
	teacherctrl "github.com/bi1101/ielts-science-lms-sub003/internal/controller/teacher"
	userctrl "github.com/bi1101/ielts-science-lms-sub003/internal/controller/user"
	"github.com/bi1101/ielts-science-lms-sub003/internal/event"
	"github.com/bi1101/ielts-science-lms-sub003/internal/logger"
	"github.com/bi1101/ielts-science-lms-sub003/internal/middleware"
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"github.com/bi1101/ielts-science-lms-sub003/internal/repository"
	"github.com/bi1101/ielts-science-lms-sub003/internal/service"
)

// @title IELTS Science LMS Sync API
// @version 1.0
// @description Synchronizes external IELTS writing/speaking submissions into LMS essays, quiz attempts and course progression, and serves the teacher dashboard report.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /ieltssci/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,    // Provides *gorm.DB
			database.NewRedisClient, // Provides *redis.Client (nil when unconfigured)
			event.NewBus,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewSubmissionRepository,
			repository.NewEssayRepository,
			repository.NewAttemptRepository,
			repository.NewQuestionRepository,
			repository.NewProQuizRepository,
			repository.NewCourseRepository,
			repository.NewActivityRepository,
			repository.NewEnrollmentRepository,
			repository.NewStatisticRepository,
			NewReportCache,
		),

		// Services Layer
		fx.Provide(
			service.NewBandScoreService,
			service.NewStatisticService,
			service.NewProgressService,
			service.NewAttemptService,
			service.NewEssaySyncService,
			service.NewQuestionBridgeService,
			service.NewDashboardService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewSubmissionController,
			adminctrl.NewQuestionController,
			teacherctrl.NewDashboardController,
		),

		fx.Invoke(RegisterEventHandlers),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewReportCache(cfg *config.Config, client *redis.Client) *repository.ReportCache {
	return repository.NewReportCache(client, cfg.Redis.ReportTTL)
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// RegisterEventHandlers attaches the synchronization pipeline to the
// submission lifecycle topics. Subscription order is delivery order.
func RegisterEventHandlers(bus *event.Bus, syncSvc service.EssaySyncService) {
	syncSvc.Register(bus)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	submissionCtrl *userctrl.SubmissionController,
	questionCtrl *adminctrl.QuestionController,
	dashboardCtrl *teacherctrl.DashboardController,
) {
	api := router.Group("/ieltssci/v1")
	api.Use(middleware.JWTAuth(cfg))
	{
		submissions := api.Group("/submissions")
		submissions.POST("", submissionCtrl.CreateSubmission)
		submissions.PATCH("/:id", submissionCtrl.UpdateSubmission)
		submissions.GET("/:id", submissionCtrl.GetSubmission)

		questions := api.Group("/questions")
		questions.POST("", questionCtrl.CreateQuestion)
		questions.PATCH("/:id", questionCtrl.UpdateQuestion)

		api.GET("/ldlms/teacher-dashboard/quiz-attempts", dashboardCtrl.GetQuizAttempts)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("IELTS LMS sync server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.Topic{},
		&model.Quiz{},
		&model.ProQuiz{},
		&model.ProQuestion{},
		&model.Question{},
		&model.Submission{},
		&model.Essay{},
		&model.QuizAttempt{},
		&model.Activity{},
		&model.Enrollment{},
		&model.Group{},
		&model.GroupMember{},
		&model.GroupLeader{},
		&model.GroupCourse{},
		&model.QuizStatisticRef{},
		&model.QuizStatistic{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
