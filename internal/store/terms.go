package store

import (
	"context"
	"fmt"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/ent/aiterm"
	"github.com/adilet/learnloop/internal/model"
)

// TermRepo manages the AI glossary.
type TermRepo struct {
	client *ent.Client
}

// List returns every glossary term in insertion order.
func (r *TermRepo) List(ctx context.Context) ([]model.Term, error) {
	rows, err := r.client.AITerm.Query().
		Order(ent.Asc(aiterm.FieldTerm)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query terms: %w", err)
	}

	out := make([]model.Term, len(rows))
	for i, row := range rows {
		out[i] = *entTermToModel(row)
	}
	return out, nil
}

// Insert adds a glossary term. ErrConflict when the term already
// exists.
func (r *TermRepo) Insert(ctx context.Context, t model.Term) (*model.Term, error) {
	row, err := r.client.AITerm.Create().
		SetTerm(t.Term).
		SetDefinition(t.Definition).
		SetCategory(t.Category).
		SetDifficulty(t.Difficulty).
		Save(ctx)
	if err != nil {
		return nil, mapWriteError("insert term", err)
	}
	return entTermToModel(row), nil
}

func entTermToModel(row *ent.AITerm) *model.Term {
	return &model.Term{
		ID:         row.ID,
		Term:       row.Term,
		Definition: row.Definition,
		Category:   row.Category,
		Difficulty: row.Difficulty,
	}
}
