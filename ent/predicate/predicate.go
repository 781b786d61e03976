// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AITerm is the predicate function for aiterm builders.
type AITerm func(*sql.Selector)

// Certificate is the predicate function for certificate builders.
type Certificate func(*sql.Selector)

// Exam is the predicate function for exam builders.
type Exam func(*sql.Selector)

// ExamAttempt is the predicate function for examattempt builders.
type ExamAttempt func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// LessonAttempt is the predicate function for lessonattempt builders.
type LessonAttempt func(*sql.Selector)

// LessonViewEvent is the predicate function for lessonviewevent builders.
type LessonViewEvent func(*sql.Selector)

// NewsItem is the predicate function for newsitem builders.
type NewsItem func(*sql.Selector)

// NewsQuizAttempt is the predicate function for newsquizattempt builders.
type NewsQuizAttempt func(*sql.Selector)

// PracticeAttempt is the predicate function for practiceattempt builders.
type PracticeAttempt func(*sql.Selector)

// Quiz is the predicate function for quiz builders.
type Quiz func(*sql.Selector)

// QuizAttempt is the predicate function for quizattempt builders.
type QuizAttempt func(*sql.Selector)

// UserBadge is the predicate function for userbadge builders.
type UserBadge func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)

// UserStats is the predicate function for userstats builders.
type UserStats func(*sql.Selector)
