// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/practiceattempt"
	"github.com/google/uuid"
)

// PracticeAttemptCreate is the builder for creating a PracticeAttempt entity.
type PracticeAttemptCreate struct {
	config
	mutation *PracticeAttemptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PracticeAttemptCreate) SetUserID(v string) *PracticeAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PracticeAttemptCreate) SetCreatedAt(v time.Time) *PracticeAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PracticeAttemptCreate) SetNillableCreatedAt(v *time.Time) *PracticeAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTask sets the "task" field.
func (_c *PracticeAttemptCreate) SetTask(v string) *PracticeAttemptCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetUserPrompt sets the "user_prompt" field.
func (_c *PracticeAttemptCreate) SetUserPrompt(v string) *PracticeAttemptCreate {
	_c.mutation.SetUserPrompt(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *PracticeAttemptCreate) SetFeedback(v map[string]interface{}) *PracticeAttemptCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PracticeAttemptCreate) SetID(v uuid.UUID) *PracticeAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PracticeAttemptCreate) SetNillableID(v *uuid.UUID) *PracticeAttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PracticeAttemptMutation object of the builder.
func (_c *PracticeAttemptCreate) Mutation() *PracticeAttemptMutation {
	return _c.mutation
}

// Save creates the PracticeAttempt in the database.
func (_c *PracticeAttemptCreate) Save(ctx context.Context) (*PracticeAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeAttemptCreate) SaveX(ctx context.Context) *PracticeAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := practiceattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := practiceattempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeAttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PracticeAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := practiceattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PracticeAttempt.created_at"`)}
	}
	if _, ok := _c.mutation.Task(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required field "PracticeAttempt.task"`)}
	}
	if v, ok := _c.mutation.Task(); ok {
		if err := practiceattempt.TaskValidator(v); err != nil {
			return &ValidationError{Name: "task", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.task": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserPrompt(); !ok {
		return &ValidationError{Name: "user_prompt", err: errors.New(`ent: missing required field "PracticeAttempt.user_prompt"`)}
	}
	if v, ok := _c.mutation.UserPrompt(); ok {
		if err := practiceattempt.UserPromptValidator(v); err != nil {
			return &ValidationError{Name: "user_prompt", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.user_prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "PracticeAttempt.feedback"`)}
	}
	return nil
}

func (_c *PracticeAttemptCreate) sqlSave(ctx context.Context) (*PracticeAttempt, error) {
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

func (_c *PracticeAttemptCreate) createSpec() (*PracticeAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practiceattempt.Table, sqlgraph.NewFieldSpec(practiceattempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(practiceattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(practiceattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(practiceattempt.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.UserPrompt(); ok {
		_spec.SetField(practiceattempt.FieldUserPrompt, field.TypeString, value)
		_node.UserPrompt = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(practiceattempt.FieldFeedback, field.TypeJSON, value)
		_node.Feedback = value
	}
	return _node, _spec
}

// PracticeAttemptCreateBulk is the builder for creating many PracticeAttempt entities in bulk.
type PracticeAttemptCreateBulk struct {
	config
	err      error
	builders []*PracticeAttemptCreate
}

// Save creates the PracticeAttempt entities in the database.
func (_c *PracticeAttemptCreateBulk) Save(ctx context.Context) ([]*PracticeAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeAttemptMutation)
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
func (_c *PracticeAttemptCreateBulk) SaveX(ctx context.Context) []*PracticeAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
