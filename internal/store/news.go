package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/ent/newsitem"
	"github.com/adilet/learnloop/internal/model"
)

// NewsRepo manages daily news digest items, keyed by publication date.
type NewsRepo struct {
	client *ent.Client
}

// ByDate returns every digest item for a civil date, in creation order.
func (r *NewsRepo) ByDate(ctx context.Context, date string) ([]model.NewsItem, error) {
	rows, err := r.client.NewsItem.Query().
		Where(newsitem.PublishedDateEQ(date)).
		Order(ent.Asc(newsitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query news by date: %w", err)
	}

	out := make([]model.NewsItem, 0, len(rows))
	for _, row := range rows {
		item, err := entNewsToModel(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

// ByID returns one digest item.
func (r *NewsRepo) ByID(ctx context.Context, id uuid.UUID) (*model.NewsItem, error) {
	row, err := r.client.NewsItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get news item: %w", err)
	}
	return entNewsToModel(row)
}

// Insert persists one digest item, returning ErrConflict when an item
// with the same date and title already exists.
func (r *NewsRepo) Insert(ctx context.Context, n model.NewsItem) (*model.NewsItem, error) {
	quiz, err := questionsToMaps(n.Quiz)
	if err != nil {
		return nil, err
	}

	row, err := r.client.NewsItem.Create().
		SetPublishedDate(n.PublishedDate).
		SetSource(n.Source).
		SetTitle(n.Title).
		SetURL(n.URL).
		SetWhatHappened(n.WhatHappened).
		SetWhyItMatters(n.WhyItMatters).
		SetTerm(n.Term).
		SetTermExplanation(n.TermExplanation).
		SetQuiz(quiz).
		Save(ctx)
	if err != nil {
		return nil, mapWriteError("insert news item", err)
	}
	return entNewsToModel(row)
}

func entNewsToModel(row *ent.NewsItem) (*model.NewsItem, error) {
	quiz, err := questionsFromMaps(row.Quiz)
	if err != nil {
		return nil, err
	}
	return &model.NewsItem{
		ID:              row.ID,
		PublishedDate:   row.PublishedDate,
		Source:          row.Source,
		Title:           row.Title,
		URL:             row.URL,
		WhatHappened:    row.WhatHappened,
		WhyItMatters:    row.WhyItMatters,
		Term:            row.Term,
		TermExplanation: row.TermExplanation,
		Quiz:            quiz,
		CreatedAt:       row.CreatedAt,
	}, nil
}
