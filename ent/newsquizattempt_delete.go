// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/newsquizattempt"
	"github.com/adilet/learnloop/ent/predicate"
)

// NewsQuizAttemptDelete is the builder for deleting a NewsQuizAttempt entity.
type NewsQuizAttemptDelete struct {
	config
	hooks    []Hook
	mutation *NewsQuizAttemptMutation
}

// Where appends a list predicates to the NewsQuizAttemptDelete builder.
func (_d *NewsQuizAttemptDelete) Where(ps ...predicate.NewsQuizAttempt) *NewsQuizAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *NewsQuizAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NewsQuizAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *NewsQuizAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(newsquizattempt.Table, sqlgraph.NewFieldSpec(newsquizattempt.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// NewsQuizAttemptDeleteOne is the builder for deleting a single NewsQuizAttempt entity.
type NewsQuizAttemptDeleteOne struct {
	_d *NewsQuizAttemptDelete
}

// Where appends a list predicates to the NewsQuizAttemptDelete builder.
func (_d *NewsQuizAttemptDeleteOne) Where(ps ...predicate.NewsQuizAttempt) *NewsQuizAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *NewsQuizAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{newsquizattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NewsQuizAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
