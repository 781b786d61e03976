// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/newsitem"
	"github.com/google/uuid"
)

// NewsItemCreate is the builder for creating a NewsItem entity.
type NewsItemCreate struct {
	config
	mutation *NewsItemMutation
	hooks    []Hook
}

// SetPublishedDate sets the "published_date" field.
func (_c *NewsItemCreate) SetPublishedDate(v string) *NewsItemCreate {
	_c.mutation.SetPublishedDate(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *NewsItemCreate) SetSource(v string) *NewsItemCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *NewsItemCreate) SetTitle(v string) *NewsItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *NewsItemCreate) SetURL(v string) *NewsItemCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *NewsItemCreate) SetNillableURL(v *string) *NewsItemCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetWhatHappened sets the "what_happened" field.
func (_c *NewsItemCreate) SetWhatHappened(v string) *NewsItemCreate {
	_c.mutation.SetWhatHappened(v)
	return _c
}

// SetWhyItMatters sets the "why_it_matters" field.
func (_c *NewsItemCreate) SetWhyItMatters(v string) *NewsItemCreate {
	_c.mutation.SetWhyItMatters(v)
	return _c
}

// SetTerm sets the "term" field.
func (_c *NewsItemCreate) SetTerm(v string) *NewsItemCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_c *NewsItemCreate) SetNillableTerm(v *string) *NewsItemCreate {
	if v != nil {
		_c.SetTerm(*v)
	}
	return _c
}

// SetTermExplanation sets the "term_explanation" field.
func (_c *NewsItemCreate) SetTermExplanation(v string) *NewsItemCreate {
	_c.mutation.SetTermExplanation(v)
	return _c
}

// SetNillableTermExplanation sets the "term_explanation" field if the given value is not nil.
func (_c *NewsItemCreate) SetNillableTermExplanation(v *string) *NewsItemCreate {
	if v != nil {
		_c.SetTermExplanation(*v)
	}
	return _c
}

// SetQuiz sets the "quiz" field.
func (_c *NewsItemCreate) SetQuiz(v []map[string]interface{}) *NewsItemCreate {
	_c.mutation.SetQuiz(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NewsItemCreate) SetCreatedAt(v time.Time) *NewsItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NewsItemCreate) SetNillableCreatedAt(v *time.Time) *NewsItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NewsItemCreate) SetID(v uuid.UUID) *NewsItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NewsItemCreate) SetNillableID(v *uuid.UUID) *NewsItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the NewsItemMutation object of the builder.
func (_c *NewsItemCreate) Mutation() *NewsItemMutation {
	return _c.mutation
}

// Save creates the NewsItem in the database.
func (_c *NewsItemCreate) Save(ctx context.Context) (*NewsItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NewsItemCreate) SaveX(ctx context.Context) *NewsItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NewsItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := newsitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := newsitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NewsItemCreate) check() error {
	if _, ok := _c.mutation.PublishedDate(); !ok {
		return &ValidationError{Name: "published_date", err: errors.New(`ent: missing required field "NewsItem.published_date"`)}
	}
	if v, ok := _c.mutation.PublishedDate(); ok {
		if err := newsitem.PublishedDateValidator(v); err != nil {
			return &ValidationError{Name: "published_date", err: fmt.Errorf(`ent: validator failed for field "NewsItem.published_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "NewsItem.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := newsitem.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "NewsItem.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "NewsItem.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := newsitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "NewsItem.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WhatHappened(); !ok {
		return &ValidationError{Name: "what_happened", err: errors.New(`ent: missing required field "NewsItem.what_happened"`)}
	}
	if v, ok := _c.mutation.WhatHappened(); ok {
		if err := newsitem.WhatHappenedValidator(v); err != nil {
			return &ValidationError{Name: "what_happened", err: fmt.Errorf(`ent: validator failed for field "NewsItem.what_happened": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WhyItMatters(); !ok {
		return &ValidationError{Name: "why_it_matters", err: errors.New(`ent: missing required field "NewsItem.why_it_matters"`)}
	}
	if v, ok := _c.mutation.WhyItMatters(); ok {
		if err := newsitem.WhyItMattersValidator(v); err != nil {
			return &ValidationError{Name: "why_it_matters", err: fmt.Errorf(`ent: validator failed for field "NewsItem.why_it_matters": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NewsItem.created_at"`)}
	}
	return nil
}

func (_c *NewsItemCreate) sqlSave(ctx context.Context) (*NewsItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NewsItemCreate) createSpec() (*NewsItem, *sqlgraph.CreateSpec) {
	var (
		_node = &NewsItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(newsitem.Table, sqlgraph.NewFieldSpec(newsitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PublishedDate(); ok {
		_spec.SetField(newsitem.FieldPublishedDate, field.TypeString, value)
		_node.PublishedDate = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(newsitem.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(newsitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(newsitem.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.WhatHappened(); ok {
		_spec.SetField(newsitem.FieldWhatHappened, field.TypeString, value)
		_node.WhatHappened = value
	}
	if value, ok := _c.mutation.WhyItMatters(); ok {
		_spec.SetField(newsitem.FieldWhyItMatters, field.TypeString, value)
		_node.WhyItMatters = value
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(newsitem.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.TermExplanation(); ok {
		_spec.SetField(newsitem.FieldTermExplanation, field.TypeString, value)
		_node.TermExplanation = value
	}
	if value, ok := _c.mutation.Quiz(); ok {
		_spec.SetField(newsitem.FieldQuiz, field.TypeJSON, value)
		_node.Quiz = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(newsitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// NewsItemCreateBulk is the builder for creating many NewsItem entities in bulk.
type NewsItemCreateBulk struct {
	config
	err      error
	builders []*NewsItemCreate
}

// Save creates the NewsItem entities in the database.
func (_c *NewsItemCreateBulk) Save(ctx context.Context) ([]*NewsItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NewsItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NewsItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NewsItemCreateBulk) SaveX(ctx context.Context) []*NewsItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
