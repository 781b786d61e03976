package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/adilet/learnloop/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleLesson(topic string, level model.Level, title string) model.Lesson {
	return model.Lesson{
		Topic:       topic,
		Level:       level,
		Title:       title,
		Explanation: "An explanation.",
		Analogy:     "Like a thing.",
		KeyTakeaway: "Remember the thing.",
	}
}

func TestLessonInsertAndListOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		if _, err := repo.Insert(ctx, sampleLesson("Topic A", model.LevelBeginner, title)); err != nil {
			t.Fatalf("insert %s: %v", title, err)
		}
	}
	if _, err := repo.Insert(ctx, sampleLesson("Topic B", model.LevelBeginner, "Other")); err != nil {
		t.Fatalf("insert other topic: %v", err)
	}

	lessons, err := repo.ListByTopic(ctx, "Topic A")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lessons) != 3 {
		t.Fatalf("expected 3 lessons, got %d", len(lessons))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if lessons[i].Title != want {
			t.Errorf("position %d: got %q, want %q", i, lessons[i].Title, want)
		}
	}
}

func TestLessonFirstForScope(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	got, err := repo.FirstForScope(ctx, "Topic A", model.LevelBeginner, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("lookup on empty store: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil lesson before insert")
	}

	inserted, err := repo.Insert(ctx, sampleLesson("Topic A", model.LevelBeginner, "Intro"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err = repo.FirstForScope(ctx, "Topic A", model.LevelBeginner, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got == nil || got.ID != inserted.ID {
		t.Fatal("expected the inserted lesson")
	}

	// A different level is a different scope.
	got, err = repo.FirstForScope(ctx, "Topic A", model.LevelAdvanced, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("lookup other level: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for other level")
	}
}

func TestQuizUniquePerLesson(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	lesson, err := s.Lessons().Insert(ctx, sampleLesson("Topic A", model.LevelBeginner, "Intro"))
	if err != nil {
		t.Fatalf("insert lesson: %v", err)
	}

	quiz := model.Quiz{
		LessonID: lesson.ID,
		Questions: []model.Question{
			{Question: "Q1?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Explanation: "Because."},
		},
	}

	if _, err := s.Quizzes().Insert(ctx, quiz); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	_, err = s.Quizzes().Insert(ctx, quiz)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate quiz, got %v", err)
	}

	stored, err := s.Quizzes().ByLessonID(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored == nil || len(stored.Questions) != 1 {
		t.Fatal("expected stored quiz with 1 question")
	}
	if stored.Questions[0].CorrectIndex != 1 {
		t.Errorf("correct_index = %d, want 1", stored.Questions[0].CorrectIndex)
	}
}

func TestStatsCreateConflictAndUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Stats()
	ctx := context.Background()

	stats := model.UserStats{UserID: "user-1", XPTotal: 10, StreakDays: 1}

	got, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get before create: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil stats before create")
	}

	if err := repo.Create(ctx, stats); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, stats); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on second create, got %v", err)
	}

	stats.XPTotal = 25
	if err := repo.Update(ctx, stats); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.XPTotal != 25 {
		t.Errorf("xp_total = %d, want 25", got.XPTotal)
	}
}

func TestStatsUpdateMissingRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Stats().Update(ctx, model.UserStats{UserID: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompletedLessonIDsIsASet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	lesson, err := s.Lessons().Insert(ctx, sampleLesson("Topic A", model.LevelBeginner, "Intro"))
	if err != nil {
		t.Fatalf("insert lesson: %v", err)
	}

	// Two attempts at the same lesson collapse to one completion.
	for range 2 {
		if err := s.Attempts().InsertLessonAttempt(ctx, "user-1", lesson.ID, 90); err != nil {
			t.Fatalf("insert attempt: %v", err)
		}
	}

	completed, err := s.Attempts().CompletedLessonIDs(ctx, "user-1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(completed) != 1 || !completed[lesson.ID] {
		t.Fatalf("expected set {%s}, got %v", lesson.ID, completed)
	}

	other, err := s.Attempts().CompletedLessonIDs(ctx, "user-2")
	if err != nil {
		t.Fatalf("query other user: %v", err)
	}
	if len(other) != 0 {
		t.Fatal("expected empty set for other user")
	}
}

func TestCertificateCodeLookup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cert := model.Certificate{
		UserID: "user-1",
		ExamID: uuid.New(),
		Code:   "ABC123XY99",
	}
	if _, err := s.Certificates().Insert(ctx, cert); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.Certificates().ByCode(ctx, "ABC123XY99")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.UserID != "user-1" {
		t.Errorf("user_id = %q, want user-1", got.UserID)
	}

	if _, err := s.Certificates().ByCode(ctx, "NOPE000000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTermUniqueAndListed(t *testing.T) {
	s := openTestStore(t)
	repo := s.Terms()
	ctx := context.Background()

	if _, err := repo.Insert(ctx, model.Term{Term: "Embedding", Definition: "A vector."}); err != nil {
		t.Fatalf("insert term: %v", err)
	}
	if _, err := repo.Insert(ctx, model.Term{Term: "Embedding", Definition: "Again."}); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate term: got %v, want ErrConflict", err)
	}

	terms, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list terms: %v", err)
	}
	if len(terms) != 1 || terms[0].Term != "Embedding" {
		t.Fatalf("unexpected glossary: %+v", terms)
	}
}

func TestBadgeUniquePerUserAndKey(t *testing.T) {
	s := openTestStore(t)
	repo := s.Badges()
	ctx := context.Background()

	first := model.Badge{UserID: "u1", Key: "first_lesson", Title: "First Steps"}
	if _, err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("insert badge: %v", err)
	}
	if _, err := repo.Insert(ctx, first); !errors.Is(err, ErrConflict) {
		t.Fatalf("re-award: got %v, want ErrConflict", err)
	}
	if _, err := repo.Insert(ctx, model.Badge{UserID: "u2", Key: "first_lesson", Title: "First Steps"}); err != nil {
		t.Fatalf("same badge, other learner: %v", err)
	}

	badges, err := repo.ByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list badges: %v", err)
	}
	if len(badges) != 1 || badges[0].Key != "first_lesson" {
		t.Fatalf("unexpected badges: %+v", badges)
	}
}
