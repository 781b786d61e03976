package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adilet/learnloop/internal/model"
)

func (s *Server) dailyLesson(c *gin.Context) {
	var level model.Level
	if raw := c.Query("level"); raw != "" {
		var ok bool
		if level, ok = model.ParseLevel(raw); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "level must be Beginner, Intermediate or Advanced"})
			return
		}
	}

	view, err := s.svc.Lessons.Daily(c.Request.Context(), currentUser(c), c.Query("topic"), level)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) lessonByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := s.svc.Lessons.ByID(c.Request.Context(), currentUser(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	if s.svc.Views != nil {
		if err := s.svc.Views.InsertLessonView(c.Request.Context(), currentUser(c), id); err != nil {
			s.log.Warnw("recording lesson view failed", "lesson", id, "error", err)
		}
	}

	c.JSON(http.StatusOK, view)
}

func (s *Server) completeLesson(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var body struct {
		Score int `json:"score"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := s.svc.Lessons.Complete(c.Request.Context(), currentUser(c), id, body.Score)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) trackLessons(c *gin.Context) {
	views, err := s.svc.Tracks.LessonsView(c.Request.Context(), c.Param("trackId"), currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lessons": views})
}

func (s *Server) quizForLesson(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	quiz, err := s.svc.Quizzes.ForLesson(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

type answersBody struct {
	Answers []int `json:"answers"`
}

func (s *Server) submitQuiz(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var body answersBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := s.svc.Quizzes.Submit(c.Request.Context(), currentUser(c), id, body.Answers)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) finalExam(c *gin.Context) {
	exam, err := s.svc.Exams.Final(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, exam)
}

func (s *Server) submitExam(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var body answersBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := s.svc.Exams.Submit(c.Request.Context(), currentUser(c), id, body.Answers)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) listCertificates(c *gin.Context) {
	certs, err := s.svc.Exams.Certificates(c.Request.Context(), currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	if certs == nil {
		certs = []model.Certificate{}
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

func (s *Server) verifyCertificate(c *gin.Context) {
	cert, err := s.svc.Exams.Verify(c.Request.Context(), c.Param("code"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "certificate": cert})
}

func (s *Server) todayNews(c *gin.Context) {
	digest, err := s.svc.News.TodayDigest(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": digest})
}

func (s *Server) submitNewsQuiz(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var body answersBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := s.svc.News.SubmitQuiz(c.Request.Context(), currentUser(c), id, body.Answers)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) submitPractice(c *gin.Context) {
	var body struct {
		Task   string `json:"task"`
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := s.svc.Practice.Submit(c.Request.Context(), currentUser(c), body.Task, body.Prompt)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) userStats(c *gin.Context) {
	snapshot, err := s.svc.Stats.Snapshot(c.Request.Context(), currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) getProfile(c *gin.Context) {
	p, err := s.svc.Profile.Get(c.Request.Context(), currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) updateProfile(c *gin.Context) {
	var upd model.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := s.svc.Profile.Update(c.Request.Context(), currentUser(c), upd)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) profileBadges(c *gin.Context) {
	badges, err := s.svc.Profile.Badges(c.Request.Context(), currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, badges)
}

func (s *Server) dailyTerm(c *gin.Context) {
	term, err := s.svc.Terms.Daily(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, term)
}

// catalogLimit caps the plain list endpoints.
const catalogLimit = 20

func (s *Server) listLessons(c *gin.Context) {
	all, err := s.svc.LessonCatalog.List(c.Request.Context(), catalogLimit)
	if err != nil {
		s.fail(c, err)
		return
	}
	if all == nil {
		all = []model.Lesson{}
	}
	c.JSON(http.StatusOK, all)
}

func (s *Server) listQuizzes(c *gin.Context) {
	all, err := s.svc.QuizCatalog.List(c.Request.Context(), catalogLimit)
	if err != nil {
		s.fail(c, err)
		return
	}
	if all == nil {
		all = []model.Quiz{}
	}
	c.JSON(http.StatusOK, all)
}
