// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/lessonattempt"
	"github.com/google/uuid"
)

// LessonAttemptCreate is the builder for creating a LessonAttempt entity.
type LessonAttemptCreate struct {
	config
	mutation *LessonAttemptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LessonAttemptCreate) SetUserID(v string) *LessonAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonAttemptCreate) SetCreatedAt(v time.Time) *LessonAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonAttemptCreate) SetNillableCreatedAt(v *time.Time) *LessonAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonAttemptCreate) SetLessonID(v uuid.UUID) *LessonAttemptCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *LessonAttemptCreate) SetScore(v int) *LessonAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LessonAttemptCreate) SetID(v uuid.UUID) *LessonAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LessonAttemptCreate) SetNillableID(v *uuid.UUID) *LessonAttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LessonAttemptMutation object of the builder.
func (_c *LessonAttemptCreate) Mutation() *LessonAttemptMutation {
	return _c.mutation
}

// Save creates the LessonAttempt in the database.
func (_c *LessonAttemptCreate) Save(ctx context.Context) (*LessonAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonAttemptCreate) SaveX(ctx context.Context) *LessonAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lessonattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := lessonattempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonAttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LessonAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := lessonattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LessonAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LessonAttempt.created_at"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonAttempt.lesson_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "LessonAttempt.score"`)}
	}
	return nil
}

func (_c *LessonAttemptCreate) sqlSave(ctx context.Context) (*LessonAttempt, error) {
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

func (_c *LessonAttemptCreate) createSpec() (*LessonAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonattempt.Table, sqlgraph.NewFieldSpec(lessonattempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(lessonattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lessonattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessonattempt.FieldLessonID, field.TypeUUID, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(lessonattempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	return _node, _spec
}

// LessonAttemptCreateBulk is the builder for creating many LessonAttempt entities in bulk.
type LessonAttemptCreateBulk struct {
	config
	err      error
	builders []*LessonAttemptCreate
}

// Save creates the LessonAttempt entities in the database.
func (_c *LessonAttemptCreateBulk) Save(ctx context.Context) ([]*LessonAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonAttemptMutation)
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
func (_c *LessonAttemptCreateBulk) SaveX(ctx context.Context) []*LessonAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
