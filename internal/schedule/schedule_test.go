package schedule

import (
	"testing"
	"time"

	"github.com/adilet/learnloop/internal/model"
)

func testConfig() Config {
	return Config{
		Topics: []string{"Alpha", "Beta", "Gamma"},
		TrackTopics: map[string]string{
			"track_a": "Alpha",
			"track_b": "Beta",
		},
		DefaultTopic: "Alpha",
	}
}

func TestTopicForDate_Deterministic(t *testing.T) {
	s := New(testConfig())
	date := time.Date(2026, 3, 7, 14, 30, 0, 0, time.UTC)

	first := s.TopicForDate(date)
	for range 10 {
		if got := s.TopicForDate(date); got != first {
			t.Fatalf("TopicForDate not stable: %q then %q", first, got)
		}
	}
}

func TestTopicForDate_Rotation(t *testing.T) {
	s := New(testConfig())

	tests := []struct {
		day  int
		want string
	}{
		{1, "Beta"},  // 1 % 3 = 1
		{2, "Gamma"}, // 2 % 3 = 2
		{3, "Alpha"}, // 3 % 3 = 0
		{31, "Beta"}, // 31 % 3 = 1
	}
	for _, tt := range tests {
		date := time.Date(2026, 1, tt.day, 0, 0, 0, 0, time.UTC)
		if got := s.TopicForDate(date); got != tt.want {
			t.Errorf("day %d: got %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestTopicForDate_TimeOfDayIrrelevant(t *testing.T) {
	s := New(testConfig())
	morning := time.Date(2026, 5, 12, 0, 1, 0, 0, time.UTC)
	night := time.Date(2026, 5, 12, 23, 59, 0, 0, time.UTC)

	if s.TopicForDate(morning) != s.TopicForDate(night) {
		t.Error("topic changed within a single calendar day")
	}
}

func TestTopicForTrack(t *testing.T) {
	s := New(testConfig())

	if got := s.TopicForTrack("track_b"); got != "Beta" {
		t.Errorf("track_b: got %q, want Beta", got)
	}
	if got := s.TopicForTrack("no_such_track"); got != "Alpha" {
		t.Errorf("unknown track: got %q, want default Alpha", got)
	}
}

func TestLevelForCount(t *testing.T) {
	s := New(DefaultConfig())

	tests := []struct {
		count int
		want  model.Level
	}{
		{0, model.LevelBeginner},
		{4, model.LevelBeginner},
		{5, model.LevelIntermediate},
		{14, model.LevelIntermediate},
		{15, model.LevelAdvanced},
		{100, model.LevelAdvanced},
	}
	for _, tt := range tests {
		if got := s.LevelForCount(tt.count); got != tt.want {
			t.Errorf("count %d: got %s, want %s", tt.count, got, tt.want)
		}
	}
}
