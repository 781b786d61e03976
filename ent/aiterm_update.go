// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/aiterm"
	"github.com/adilet/learnloop/ent/predicate"
)

// AITermUpdate is the builder for updating AITerm entities.
type AITermUpdate struct {
	config
	hooks    []Hook
	mutation *AITermMutation
}

// Where appends a list predicates to the AITermUpdate builder.
func (_u *AITermUpdate) Where(ps ...predicate.AITerm) *AITermUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTerm sets the "term" field.
func (_u *AITermUpdate) SetTerm(v string) *AITermUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *AITermUpdate) SetNillableTerm(v *string) *AITermUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *AITermUpdate) SetDefinition(v string) *AITermUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *AITermUpdate) SetNillableDefinition(v *string) *AITermUpdate {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AITermUpdate) SetCategory(v string) *AITermUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AITermUpdate) SetNillableCategory(v *string) *AITermUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AITermUpdate) SetDifficulty(v string) *AITermUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AITermUpdate) SetNillableDifficulty(v *string) *AITermUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// Mutation returns the AITermMutation object of the builder.
func (_u *AITermUpdate) Mutation() *AITermMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AITermUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AITermUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AITermUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AITermUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AITermUpdate) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := aiterm.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "AITerm.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Definition(); ok {
		if err := aiterm.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "AITerm.definition": %w`, err)}
		}
	}
	return nil
}

func (_u *AITermUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiterm.Table, aiterm.Columns, sqlgraph.NewFieldSpec(aiterm.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(aiterm.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(aiterm.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(aiterm.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(aiterm.FieldDifficulty, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiterm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AITermUpdateOne is the builder for updating a single AITerm entity.
type AITermUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AITermMutation
}

// SetTerm sets the "term" field.
func (_u *AITermUpdateOne) SetTerm(v string) *AITermUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *AITermUpdateOne) SetNillableTerm(v *string) *AITermUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *AITermUpdateOne) SetDefinition(v string) *AITermUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *AITermUpdateOne) SetNillableDefinition(v *string) *AITermUpdateOne {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AITermUpdateOne) SetCategory(v string) *AITermUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AITermUpdateOne) SetNillableCategory(v *string) *AITermUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AITermUpdateOne) SetDifficulty(v string) *AITermUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AITermUpdateOne) SetNillableDifficulty(v *string) *AITermUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// Mutation returns the AITermMutation object of the builder.
func (_u *AITermUpdateOne) Mutation() *AITermMutation {
	return _u.mutation
}

// Where appends a list predicates to the AITermUpdate builder.
func (_u *AITermUpdateOne) Where(ps ...predicate.AITerm) *AITermUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AITermUpdateOne) Select(field string, fields ...string) *AITermUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AITerm entity.
func (_u *AITermUpdateOne) Save(ctx context.Context) (*AITerm, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AITermUpdateOne) SaveX(ctx context.Context) *AITerm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AITermUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AITermUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AITermUpdateOne) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := aiterm.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "AITerm.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Definition(); ok {
		if err := aiterm.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "AITerm.definition": %w`, err)}
		}
	}
	return nil
}

func (_u *AITermUpdateOne) sqlSave(ctx context.Context) (_node *AITerm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiterm.Table, aiterm.Columns, sqlgraph.NewFieldSpec(aiterm.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AITerm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aiterm.FieldID)
		for _, f := range fields {
			if !aiterm.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aiterm.FieldID {
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
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(aiterm.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(aiterm.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(aiterm.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(aiterm.FieldDifficulty, field.TypeString, value)
	}
	_node = &AITerm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiterm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
