// Package schedule maps calendar dates and track ids to the topic and
// level that should be taught. Everything here is a pure function of its
// inputs and the injected configuration.
package schedule

import (
	"time"

	"github.com/adilet/learnloop/internal/model"
)

// Config is the immutable curriculum table. It is injected rather than
// declared as package globals so tests can run with alternate rotations.
type Config struct {
	// Topics is the daily rotation, indexed by day-of-month mod length.
	Topics []string

	// TrackTopics maps track ids to their fixed topic.
	TrackTopics map[string]string

	// DefaultTopic is the fallback for unknown track ids.
	DefaultTopic string
}

// DefaultConfig returns the production curriculum.
func DefaultConfig() Config {
	return Config{
		Topics: []string{
			"Machine Learning Basics",
			"Neural Networks",
			"Transformer Architecture",
			"AI Ethics",
			"Prompt Engineering",
		},
		TrackTopics: map[string]string{
			"ai_fundamentals":    "Machine Learning Basics",
			"machine_learning":   "Neural Networks",
			"deep_learning":      "Transformer Architecture",
			"generative_ai":      "AI Ethics",
			"prompt_engineering": "Prompt Engineering",
		},
		DefaultTopic: "Machine Learning Basics",
	}
}

// Scheduler resolves topics and levels. Safe for concurrent use.
type Scheduler struct {
	cfg Config
}

// New creates a Scheduler over the given curriculum.
func New(cfg Config) *Scheduler {
	return &Scheduler{cfg: cfg}
}

// TopicForDate returns the rotation topic for the given calendar date.
// Deterministic: every learner sees the same topic on the same day.
func (s *Scheduler) TopicForDate(date time.Time) string {
	if len(s.cfg.Topics) == 0 {
		return s.cfg.DefaultTopic
	}
	return s.cfg.Topics[date.Day()%len(s.cfg.Topics)]
}

// TopicForTrack returns the fixed topic of a track, falling back to the
// default topic for unknown ids.
func (s *Scheduler) TopicForTrack(trackID string) string {
	if topic, ok := s.cfg.TrackTopics[trackID]; ok {
		return topic
	}
	return s.cfg.DefaultTopic
}

// LevelForCount derives the difficulty of the next lesson from how many
// lessons a track already holds.
func (s *Scheduler) LevelForCount(count int) model.Level {
	switch {
	case count < 5:
		return model.LevelBeginner
	case count < 15:
		return model.LevelIntermediate
	default:
		return model.LevelAdvanced
	}
}
