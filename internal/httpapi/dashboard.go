package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// progressSummary condenses the learner's counters into the shape the
// progress screen renders.
func (s *Server) progressSummary(c *gin.Context) {
	snapshot, err := s.svc.Stats.Snapshot(c.Request.Context(), currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"level":               s.svc.Sched.LevelForCount(snapshot.LessonsCompleted),
		"xp_total":            snapshot.XPTotal,
		"streak_days":         snapshot.StreakDays,
		"lessons_completed":   snapshot.LessonsCompleted,
		"quizzes_completed":   snapshot.QuizzesCompleted,
		"practice_completed":  snapshot.PracticeCompleted,
		"exams_attempted":     snapshot.ExamsAttempted,
		"certificates_earned": snapshot.CertificatesEarned,
		"daily_minutes":       snapshot.DailyMinutes,
	})
}

// dashboard is the app's opening call: profile, stats, and today's
// lesson in one response. Opening the app counts as activity, so the
// streak advances here.
func (s *Server) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUser(c)

	streak, err := s.svc.Stats.RecordActivity(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}

	p, err := s.svc.Profile.Get(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}

	snapshot, err := s.svc.Stats.Snapshot(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}

	daily, err := s.svc.Lessons.Daily(ctx, userID, "", "")
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      p,
		"stats":        snapshot,
		"streak_days":  streak,
		"daily_lesson": daily,
		"level":        s.svc.Sched.LevelForCount(snapshot.LessonsCompleted),
	})
}
