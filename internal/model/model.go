// Package model holds the plain domain types shared between the store,
// the orchestration services, and the HTTP layer.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Level is a lesson difficulty level.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// ParseLevel maps a case-insensitive level name to a Level, reporting
// whether it matched.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return LevelBeginner, true
	case "intermediate":
		return LevelIntermediate, true
	case "advanced":
		return LevelAdvanced, true
	}
	return "", false
}

// Lesson is an immutable generated lesson row.
type Lesson struct {
	ID          uuid.UUID `json:"id"`
	Topic       string    `json:"topic"`
	Level       Level     `json:"level"`
	Title       string    `json:"title"`
	Explanation string    `json:"explanation"`
	Analogy     string    `json:"analogy"`
	KeyTakeaway string    `json:"key_takeaway"`
	CreatedAt   time.Time `json:"created_at"`
}

// LessonView is a Lesson annotated with per-learner, per-request state.
// Views are derived, never persisted.
type LessonView struct {
	Lesson
	Track       string `json:"track"`
	IsLocked    bool   `json:"is_locked"`
	IsCompleted bool   `json:"is_completed"`
}

// Question is a single multiple-choice question.
type Question struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// Quiz is the question set generated for one lesson.
type Quiz struct {
	ID        uuid.UUID  `json:"id"`
	LessonID  uuid.UUID  `json:"lesson_id"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
}

// Exam is a certification exam, unique per title.
type Exam struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewsItem is one entry of a daily news digest.
type NewsItem struct {
	ID              uuid.UUID  `json:"id"`
	PublishedDate   string     `json:"published_date"`
	Source          string     `json:"source"`
	Title           string     `json:"title"`
	URL             string     `json:"url"`
	WhatHappened    string     `json:"what_happened"`
	WhyItMatters    string     `json:"why_it_matters"`
	Term            string     `json:"term"`
	TermExplanation string     `json:"term_explanation"`
	Quiz            []Question `json:"quiz"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Certificate is issued on a passed certification exam.
type Certificate struct {
	ID       uuid.UUID `json:"id"`
	UserID   string    `json:"user_id"`
	ExamID   uuid.UUID `json:"exam_id"`
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`

	// FullName is joined in from the profile for verification responses.
	FullName string `json:"full_name,omitempty"`
}

// UserStats is the per-learner counter record. Dates are civil dates in
// YYYY-MM-DD form; empty means never active.
type UserStats struct {
	UserID             string `json:"user_id"`
	XPTotal            int    `json:"xp_total"`
	StreakDays         int    `json:"streak_days"`
	LastActiveDate     string `json:"last_active_date,omitempty"`
	LessonsCompleted   int    `json:"lessons_completed"`
	QuizzesCompleted   int    `json:"quizzes_completed"`
	PracticeCompleted  int    `json:"practice_completed"`
	ExamsAttempted     int    `json:"exams_attempted"`
	CertificatesEarned int    `json:"certificates_earned"`
	DailyMinutes       int    `json:"daily_minutes"`
	LastActivityDate   string `json:"last_activity_date,omitempty"`
}

// UserProfile holds learner-editable profile fields.
type UserProfile struct {
	UserID     string    `json:"user_id"`
	FullName   string    `json:"full_name"`
	AvatarURL  string    `json:"avatar_url"`
	TargetGoal string    `json:"target_goal"`
	SkillLevel string    `json:"skill_level"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProfileUpdate carries the optional fields of a profile patch. Nil
// pointers mean "leave unchanged".
type ProfileUpdate struct {
	FullName   *string `json:"full_name"`
	AvatarURL  *string `json:"avatar_url"`
	TargetGoal *string `json:"target_goal"`
	SkillLevel *string `json:"skill_level"`
}

// Badge is an achievement a learner has earned.
type Badge struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"-"`
	Key         string    `json:"badge_key"`
	Title       string    `json:"badge_title"`
	Description string    `json:"badge_description,omitempty"`
	EarnedAt    time.Time `json:"earned_at"`
}

// Term is one entry of the AI glossary surfaced as the term of the day.
type Term struct {
	ID         uuid.UUID `json:"id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	Category   string    `json:"category,omitempty"`
	Difficulty string    `json:"difficulty,omitempty"`
}

// LessonAttempt records one lesson completion submission.
type LessonAttempt struct {
	ID        uuid.UUID
	UserID    string
	LessonID  uuid.UUID
	Score     int
	CreatedAt time.Time
}

// PracticeFeedback is the structured review of a practice submission.
type PracticeFeedback struct {
	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
	ImprovedPrompt string   `json:"improved_prompt"`
}

// DateFormat is the civil-date layout used for streak and daily-counter
// bookkeeping.
const DateFormat = "2006-01-02"

// CivilDate formats t as a civil date in UTC.
func CivilDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}
