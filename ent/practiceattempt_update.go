// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/practiceattempt"
	"github.com/adilet/learnloop/ent/predicate"
)

// PracticeAttemptUpdate is the builder for updating PracticeAttempt entities.
type PracticeAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeAttemptMutation
}

// Where appends a list predicates to the PracticeAttemptUpdate builder.
func (_u *PracticeAttemptUpdate) Where(ps ...predicate.PracticeAttempt) *PracticeAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTask sets the "task" field.
func (_u *PracticeAttemptUpdate) SetTask(v string) *PracticeAttemptUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableTask(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetUserPrompt sets the "user_prompt" field.
func (_u *PracticeAttemptUpdate) SetUserPrompt(v string) *PracticeAttemptUpdate {
	_u.mutation.SetUserPrompt(v)
	return _u
}

// SetNillableUserPrompt sets the "user_prompt" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableUserPrompt(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetUserPrompt(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *PracticeAttemptUpdate) SetFeedback(v map[string]interface{}) *PracticeAttemptUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// Mutation returns the PracticeAttemptMutation object of the builder.
func (_u *PracticeAttemptUpdate) Mutation() *PracticeAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeAttemptUpdate) check() error {
	if v, ok := _u.mutation.Task(); ok {
		if err := practiceattempt.TaskValidator(v); err != nil {
			return &ValidationError{Name: "task", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.task": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserPrompt(); ok {
		if err := practiceattempt.UserPromptValidator(v); err != nil {
			return &ValidationError{Name: "user_prompt", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.user_prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceattempt.Table, practiceattempt.Columns, sqlgraph.NewFieldSpec(practiceattempt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(practiceattempt.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPrompt(); ok {
		_spec.SetField(practiceattempt.FieldUserPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(practiceattempt.FieldFeedback, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeAttemptUpdateOne is the builder for updating a single PracticeAttempt entity.
type PracticeAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeAttemptMutation
}

// SetTask sets the "task" field.
func (_u *PracticeAttemptUpdateOne) SetTask(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableTask(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetUserPrompt sets the "user_prompt" field.
func (_u *PracticeAttemptUpdateOne) SetUserPrompt(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetUserPrompt(v)
	return _u
}

// SetNillableUserPrompt sets the "user_prompt" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableUserPrompt(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetUserPrompt(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *PracticeAttemptUpdateOne) SetFeedback(v map[string]interface{}) *PracticeAttemptUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// Mutation returns the PracticeAttemptMutation object of the builder.
func (_u *PracticeAttemptUpdateOne) Mutation() *PracticeAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeAttemptUpdate builder.
func (_u *PracticeAttemptUpdateOne) Where(ps ...predicate.PracticeAttempt) *PracticeAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeAttemptUpdateOne) Select(field string, fields ...string) *PracticeAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeAttempt entity.
func (_u *PracticeAttemptUpdateOne) Save(ctx context.Context) (*PracticeAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeAttemptUpdateOne) SaveX(ctx context.Context) *PracticeAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Task(); ok {
		if err := practiceattempt.TaskValidator(v); err != nil {
			return &ValidationError{Name: "task", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.task": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserPrompt(); ok {
		if err := practiceattempt.UserPromptValidator(v); err != nil {
			return &ValidationError{Name: "user_prompt", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.user_prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeAttemptUpdateOne) sqlSave(ctx context.Context) (_node *PracticeAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceattempt.Table, practiceattempt.Columns, sqlgraph.NewFieldSpec(practiceattempt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceattempt.FieldID)
		for _, f := range fields {
			if !practiceattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(practiceattempt.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPrompt(); ok {
		_spec.SetField(practiceattempt.FieldUserPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(practiceattempt.FieldFeedback, field.TypeJSON, value)
	}
	_node = &PracticeAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
