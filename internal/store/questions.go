package store

import (
	"encoding/json"
	"fmt"

	"github.com/adilet/learnloop/internal/model"
)

// Question lists are stored as JSON columns. The ent schemas declare them
// as []map[string]any, so conversion goes through encoding/json both ways.

func questionsToMaps(qs []model.Question) ([]map[string]any, error) {
	raw, err := json.Marshal(qs)
	if err != nil {
		return nil, fmt.Errorf("marshal questions: %w", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("remap questions: %w", err)
	}
	return out, nil
}

func questionsFromMaps(ms []map[string]any) ([]model.Question, error) {
	raw, err := json.Marshal(ms)
	if err != nil {
		return nil, fmt.Errorf("marshal stored questions: %w", err)
	}
	var out []model.Question
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse stored questions: %w", err)
	}
	return out, nil
}
