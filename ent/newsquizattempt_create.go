// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/newsquizattempt"
	"github.com/google/uuid"
)

// NewsQuizAttemptCreate is the builder for creating a NewsQuizAttempt entity.
type NewsQuizAttemptCreate struct {
	config
	mutation *NewsQuizAttemptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *NewsQuizAttemptCreate) SetUserID(v string) *NewsQuizAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NewsQuizAttemptCreate) SetCreatedAt(v time.Time) *NewsQuizAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NewsQuizAttemptCreate) SetNillableCreatedAt(v *time.Time) *NewsQuizAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetNewsID sets the "news_id" field.
func (_c *NewsQuizAttemptCreate) SetNewsID(v uuid.UUID) *NewsQuizAttemptCreate {
	_c.mutation.SetNewsID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *NewsQuizAttemptCreate) SetScore(v int) *NewsQuizAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetID sets the "id" field.
func (_c *NewsQuizAttemptCreate) SetID(v uuid.UUID) *NewsQuizAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NewsQuizAttemptCreate) SetNillableID(v *uuid.UUID) *NewsQuizAttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the NewsQuizAttemptMutation object of the builder.
func (_c *NewsQuizAttemptCreate) Mutation() *NewsQuizAttemptMutation {
	return _c.mutation
}

// Save creates the NewsQuizAttempt in the database.
func (_c *NewsQuizAttemptCreate) Save(ctx context.Context) (*NewsQuizAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NewsQuizAttemptCreate) SaveX(ctx context.Context) *NewsQuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsQuizAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsQuizAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NewsQuizAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := newsquizattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := newsquizattempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NewsQuizAttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "NewsQuizAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := newsquizattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "NewsQuizAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NewsQuizAttempt.created_at"`)}
	}
	if _, ok := _c.mutation.NewsID(); !ok {
		return &ValidationError{Name: "news_id", err: errors.New(`ent: missing required field "NewsQuizAttempt.news_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "NewsQuizAttempt.score"`)}
	}
	return nil
}

func (_c *NewsQuizAttemptCreate) sqlSave(ctx context.Context) (*NewsQuizAttempt, error) {
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

func (_c *NewsQuizAttemptCreate) createSpec() (*NewsQuizAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &NewsQuizAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(newsquizattempt.Table, sqlgraph.NewFieldSpec(newsquizattempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(newsquizattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(newsquizattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.NewsID(); ok {
		_spec.SetField(newsquizattempt.FieldNewsID, field.TypeUUID, value)
		_node.NewsID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(newsquizattempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	return _node, _spec
}

// NewsQuizAttemptCreateBulk is the builder for creating many NewsQuizAttempt entities in bulk.
type NewsQuizAttemptCreateBulk struct {
	config
	err      error
	builders []*NewsQuizAttemptCreate
}

// Save creates the NewsQuizAttempt entities in the database.
func (_c *NewsQuizAttemptCreateBulk) Save(ctx context.Context) ([]*NewsQuizAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NewsQuizAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NewsQuizAttemptMutation)
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
func (_c *NewsQuizAttemptCreateBulk) SaveX(ctx context.Context) []*NewsQuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsQuizAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsQuizAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
