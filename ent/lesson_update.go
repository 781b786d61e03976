// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/lesson"
	"github.com/adilet/learnloop/ent/predicate"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonUpdate) SetTopic(v string) *LessonUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTopic(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LessonUpdate) SetLevel(v string) *LessonUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableLevel(v *string) *LessonUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *LessonUpdate) SetExplanation(v string) *LessonUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableExplanation(v *string) *LessonUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetAnalogy sets the "analogy" field.
func (_u *LessonUpdate) SetAnalogy(v string) *LessonUpdate {
	_u.mutation.SetAnalogy(v)
	return _u
}

// SetNillableAnalogy sets the "analogy" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableAnalogy(v *string) *LessonUpdate {
	if v != nil {
		_u.SetAnalogy(*v)
	}
	return _u
}

// SetKeyTakeaway sets the "key_takeaway" field.
func (_u *LessonUpdate) SetKeyTakeaway(v string) *LessonUpdate {
	_u.mutation.SetKeyTakeaway(v)
	return _u
}

// SetNillableKeyTakeaway sets the "key_takeaway" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableKeyTakeaway(v *string) *LessonUpdate {
	if v != nil {
		_u.SetKeyTakeaway(*v)
	}
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := lesson.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Lesson.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := lesson.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Lesson.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Explanation(); ok {
		if err := lesson.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "Lesson.explanation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Analogy(); ok {
		if err := lesson.AnalogyValidator(v); err != nil {
			return &ValidationError{Name: "analogy", err: fmt.Errorf(`ent: validator failed for field "Lesson.analogy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyTakeaway(); ok {
		if err := lesson.KeyTakeawayValidator(v); err != nil {
			return &ValidationError{Name: "key_takeaway", err: fmt.Errorf(`ent: validator failed for field "Lesson.key_takeaway": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lesson.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(lesson.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(lesson.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Analogy(); ok {
		_spec.SetField(lesson.FieldAnalogy, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyTakeaway(); ok {
		_spec.SetField(lesson.FieldKeyTakeaway, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetTopic sets the "topic" field.
func (_u *LessonUpdateOne) SetTopic(v string) *LessonUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTopic(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LessonUpdateOne) SetLevel(v string) *LessonUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableLevel(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *LessonUpdateOne) SetExplanation(v string) *LessonUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableExplanation(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetAnalogy sets the "analogy" field.
func (_u *LessonUpdateOne) SetAnalogy(v string) *LessonUpdateOne {
	_u.mutation.SetAnalogy(v)
	return _u
}

// SetNillableAnalogy sets the "analogy" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableAnalogy(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetAnalogy(*v)
	}
	return _u
}

// SetKeyTakeaway sets the "key_takeaway" field.
func (_u *LessonUpdateOne) SetKeyTakeaway(v string) *LessonUpdateOne {
	_u.mutation.SetKeyTakeaway(v)
	return _u
}

// SetNillableKeyTakeaway sets the "key_takeaway" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableKeyTakeaway(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetKeyTakeaway(*v)
	}
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := lesson.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Lesson.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := lesson.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Lesson.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Explanation(); ok {
		if err := lesson.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "Lesson.explanation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Analogy(); ok {
		if err := lesson.AnalogyValidator(v); err != nil {
			return &ValidationError{Name: "analogy", err: fmt.Errorf(`ent: validator failed for field "Lesson.analogy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyTakeaway(); ok {
		if err := lesson.KeyTakeawayValidator(v); err != nil {
			return &ValidationError{Name: "key_takeaway", err: fmt.Errorf(`ent: validator failed for field "Lesson.key_takeaway": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lesson.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(lesson.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(lesson.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Analogy(); ok {
		_spec.SetField(lesson.FieldAnalogy, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyTakeaway(); ok {
		_spec.SetField(lesson.FieldKeyTakeaway, field.TypeString, value)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
