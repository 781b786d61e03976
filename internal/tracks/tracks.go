// Package tracks builds the per-learner view of a learning track: the
// topic's lessons in creation order, deduplicated by title, each marked
// locked or unlocked by the learner's progress, with the next lesson
// generated when the learner has finished everything so far.
package tracks

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adilet/learnloop/internal/guard"
	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/schedule"
)

// LessonStore is the lesson persistence the service needs.
type LessonStore interface {
	ListByTopic(ctx context.Context, topic string) ([]model.Lesson, error)
	Insert(ctx context.Context, l model.Lesson) (*model.Lesson, error)
}

// ProgressStore answers which lessons a learner has completed.
type ProgressStore interface {
	CompletedLessonIDs(ctx context.Context, userID string) (map[uuid.UUID]bool, error)
}

// LessonGenerator produces a new lesson for a topic and level.
type LessonGenerator interface {
	Lesson(ctx context.Context, topic string, level model.Level, previousTitles []string) (model.Lesson, error)
}

// Service assembles track views.
type Service struct {
	lessons  LessonStore
	progress ProgressStore
	gen      LessonGenerator
	sched    *schedule.Scheduler
	log      *zap.SugaredLogger
}

// NewService wires a track service.
func NewService(lessons LessonStore, progress ProgressStore, gen LessonGenerator, sched *schedule.Scheduler, log *zap.SugaredLogger) *Service {
	return &Service{lessons: lessons, progress: progress, gen: gen, sched: sched, log: log}
}

// LessonsView returns the learner's view of a track. Generation
// failures degrade to the view of what already exists; they never fail
// the request.
func (s *Service) LessonsView(ctx context.Context, trackID, userID string) ([]model.LessonView, error) {
	topic := s.sched.TopicForTrack(trackID)

	lessons, err := s.lessons.ListByTopic(ctx, topic)
	if err != nil {
		return nil, err
	}
	lessons = dedupByTitle(lessons)

	if len(lessons) == 0 {
		if intro := s.generateLesson(ctx, topic, model.LevelBeginner, nil, 0); intro != nil {
			lessons = append(lessons, *intro)
		}
	}

	completed, err := s.progress.CompletedLessonIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := buildViews(lessons, completed, trackID)

	// Everything done so far: extend the track with the next lesson.
	if len(views) > 0 && views[len(views)-1].IsCompleted {
		level := s.sched.LevelForCount(len(lessons))
		titles := make([]string, len(lessons))
		for i, l := range lessons {
			titles[i] = l.Title
		}
		if next := s.generateLesson(ctx, topic, level, titles, len(lessons)); next != nil {
			views = append(views, model.LessonView{
				Lesson: *next,
				Track:  trackID,
			})
		}
	}

	return views, nil
}

// buildViews walks the ordered lessons carrying completion forward: a
// lesson is unlocked when it is first or its predecessor is completed.
func buildViews(lessons []model.Lesson, completed map[uuid.UUID]bool, trackID string) []model.LessonView {
	views := make([]model.LessonView, 0, len(lessons))
	prevCompleted := true
	for _, l := range lessons {
		done := completed[l.ID]
		views = append(views, model.LessonView{
			Lesson:      l,
			Track:       trackID,
			IsLocked:    !prevCompleted,
			IsCompleted: done,
		})
		prevCompleted = done
	}
	return views
}

// generateLesson creates and stores the lesson at position known in
// the track, returning nil on any failure so the caller can serve the
// track without it. The lookup re-lists the topic, so a lesson a rival
// stored during generation is adopted instead of duplicated.
func (s *Service) generateLesson(ctx context.Context, topic string, level model.Level, previousTitles []string, known int) *model.Lesson {
	stored, err := guard.Ensure(ctx, guard.Funcs[model.Lesson]{
		Lookup: func(ctx context.Context) (*model.Lesson, error) {
			lessons, err := s.lessons.ListByTopic(ctx, topic)
			if err != nil {
				return nil, err
			}
			lessons = dedupByTitle(lessons)
			if len(lessons) <= known {
				return nil, nil
			}
			next := lessons[known]
			return &next, nil
		},
		Generate: func(ctx context.Context) (model.Lesson, error) {
			return s.gen.Lesson(ctx, topic, level, previousTitles)
		},
		Persist: s.lessons.Insert,
	})
	if err != nil {
		s.log.Warnw("extending track failed", "topic", topic, "level", level, "error", err)
		return nil
	}
	return stored
}
