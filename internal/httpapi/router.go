// Package httpapi is the HTTP surface of the service: a gin router,
// JWT identity middleware, and thin handlers over the domain services.
package httpapi

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adilet/learnloop/internal/config"
	"github.com/adilet/learnloop/internal/exams"
	"github.com/adilet/learnloop/internal/lessons"
	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/news"
	"github.com/adilet/learnloop/internal/practice"
	"github.com/adilet/learnloop/internal/profile"
	"github.com/adilet/learnloop/internal/quizzes"
	"github.com/adilet/learnloop/internal/schedule"
	"github.com/adilet/learnloop/internal/stats"
	"github.com/adilet/learnloop/internal/terms"
	"github.com/adilet/learnloop/internal/tracks"
)

// Services bundles the domain services the handlers dispatch to.
type Services struct {
	Lessons  *lessons.Service
	Tracks   *tracks.Service
	Quizzes  *quizzes.Service
	Exams    *exams.Service
	News     *news.Service
	Practice *practice.Service
	Stats    *stats.Service
	Profile  *profile.Service
	Terms    *terms.Service
	Sched    *schedule.Scheduler

	// Catalogs back the plain public list endpoints.
	LessonCatalog LessonLister
	QuizCatalog   QuizLister

	// Views is optional; nil disables view tracking.
	Views ViewRecorder
}

// ViewRecorder captures lesson opens, best effort.
type ViewRecorder interface {
	InsertLessonView(ctx context.Context, userID string, lessonID uuid.UUID) error
}

// LessonLister lists recent lessons for the catalog endpoint.
type LessonLister interface {
	List(ctx context.Context, limit int) ([]model.Lesson, error)
}

// QuizLister lists recent quizzes for the catalog endpoint.
type QuizLister interface {
	List(ctx context.Context, limit int) ([]model.Quiz, error)
}

// Server holds the router and its collaborators.
type Server struct {
	svc       Services
	log       *zap.SugaredLogger
	jwtSecret string
}

// NewRouter builds the gin engine with all routes mounted.
func NewRouter(cfg config.Config, svc Services, log *zap.SugaredLogger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	s := &Server{svc: svc, log: log, jwtSecret: cfg.JWTSecret}

	r.GET("/health", s.health)
	r.GET("/api/certificates/verify/:code", s.verifyCertificate)
	r.GET("/api/terms/daily", s.dailyTerm)
	r.GET("/api/lessons", s.listLessons)
	r.GET("/api/quizzes", s.listQuizzes)

	api := r.Group("/api", s.requireUser())
	{
		api.GET("/lessons/daily", s.dailyLesson)
		api.GET("/lessons/:id", s.lessonByID)
		api.POST("/lessons/:id/complete", s.completeLesson)
		api.GET("/lessons/:id/quiz", s.quizForLesson)

		api.GET("/tracks/:trackId/lessons", s.trackLessons)

		api.POST("/quizzes/:id/submit", s.submitQuiz)

		api.GET("/exam/final", s.finalExam)
		api.POST("/exams/:id/submit", s.submitExam)
		api.GET("/certificates", s.listCertificates)

		api.GET("/news/today", s.todayNews)
		api.POST("/news/:id/quiz", s.submitNewsQuiz)

		api.POST("/practice", s.submitPractice)

		api.GET("/stats", s.userStats)
		api.GET("/progress/summary", s.progressSummary)
		api.GET("/dashboard", s.dashboard)
		api.GET("/profile", s.getProfile)
		api.PATCH("/profile", s.updateProfile)
		api.GET("/profile/badges", s.profileBadges)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	c.MaxAge = 12 * time.Hour
	return c
}

func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
