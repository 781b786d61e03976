// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/newsquizattempt"
	"github.com/adilet/learnloop/ent/predicate"
)

// NewsQuizAttemptUpdate is the builder for updating NewsQuizAttempt entities.
type NewsQuizAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *NewsQuizAttemptMutation
}

// Where appends a list predicates to the NewsQuizAttemptUpdate builder.
func (_u *NewsQuizAttemptUpdate) Where(ps ...predicate.NewsQuizAttempt) *NewsQuizAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *NewsQuizAttemptUpdate) SetScore(v int) *NewsQuizAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *NewsQuizAttemptUpdate) SetNillableScore(v *int) *NewsQuizAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *NewsQuizAttemptUpdate) AddScore(v int) *NewsQuizAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the NewsQuizAttemptMutation object of the builder.
func (_u *NewsQuizAttemptUpdate) Mutation() *NewsQuizAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NewsQuizAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsQuizAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NewsQuizAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsQuizAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NewsQuizAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(newsquizattempt.Table, newsquizattempt.Columns, sqlgraph.NewFieldSpec(newsquizattempt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(newsquizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(newsquizattempt.FieldScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newsquizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NewsQuizAttemptUpdateOne is the builder for updating a single NewsQuizAttempt entity.
type NewsQuizAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NewsQuizAttemptMutation
}

// SetScore sets the "score" field.
func (_u *NewsQuizAttemptUpdateOne) SetScore(v int) *NewsQuizAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *NewsQuizAttemptUpdateOne) SetNillableScore(v *int) *NewsQuizAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *NewsQuizAttemptUpdateOne) AddScore(v int) *NewsQuizAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the NewsQuizAttemptMutation object of the builder.
func (_u *NewsQuizAttemptUpdateOne) Mutation() *NewsQuizAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the NewsQuizAttemptUpdate builder.
func (_u *NewsQuizAttemptUpdateOne) Where(ps ...predicate.NewsQuizAttempt) *NewsQuizAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NewsQuizAttemptUpdateOne) Select(field string, fields ...string) *NewsQuizAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NewsQuizAttempt entity.
func (_u *NewsQuizAttemptUpdateOne) Save(ctx context.Context) (*NewsQuizAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsQuizAttemptUpdateOne) SaveX(ctx context.Context) *NewsQuizAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NewsQuizAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsQuizAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NewsQuizAttemptUpdateOne) sqlSave(ctx context.Context) (_node *NewsQuizAttempt, err error) {
	_spec := sqlgraph.NewUpdateSpec(newsquizattempt.Table, newsquizattempt.Columns, sqlgraph.NewFieldSpec(newsquizattempt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NewsQuizAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, newsquizattempt.FieldID)
		for _, f := range fields {
			if !newsquizattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != newsquizattempt.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(newsquizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(newsquizattempt.FieldScore, field.TypeInt, value)
	}
	_node = &NewsQuizAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newsquizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
