// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/predicate"
	"github.com/adilet/learnloop/ent/userbadge"
)

// UserBadgeUpdate is the builder for updating UserBadge entities.
type UserBadgeUpdate struct {
	config
	hooks    []Hook
	mutation *UserBadgeMutation
}

// Where appends a list predicates to the UserBadgeUpdate builder.
func (_u *UserBadgeUpdate) Where(ps ...predicate.UserBadge) *UserBadgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBadgeKey sets the "badge_key" field.
func (_u *UserBadgeUpdate) SetBadgeKey(v string) *UserBadgeUpdate {
	_u.mutation.SetBadgeKey(v)
	return _u
}

// SetNillableBadgeKey sets the "badge_key" field if the given value is not nil.
func (_u *UserBadgeUpdate) SetNillableBadgeKey(v *string) *UserBadgeUpdate {
	if v != nil {
		_u.SetBadgeKey(*v)
	}
	return _u
}

// SetBadgeTitle sets the "badge_title" field.
func (_u *UserBadgeUpdate) SetBadgeTitle(v string) *UserBadgeUpdate {
	_u.mutation.SetBadgeTitle(v)
	return _u
}

// SetNillableBadgeTitle sets the "badge_title" field if the given value is not nil.
func (_u *UserBadgeUpdate) SetNillableBadgeTitle(v *string) *UserBadgeUpdate {
	if v != nil {
		_u.SetBadgeTitle(*v)
	}
	return _u
}

// SetBadgeDescription sets the "badge_description" field.
func (_u *UserBadgeUpdate) SetBadgeDescription(v string) *UserBadgeUpdate {
	_u.mutation.SetBadgeDescription(v)
	return _u
}

// SetNillableBadgeDescription sets the "badge_description" field if the given value is not nil.
func (_u *UserBadgeUpdate) SetNillableBadgeDescription(v *string) *UserBadgeUpdate {
	if v != nil {
		_u.SetBadgeDescription(*v)
	}
	return _u
}

// Mutation returns the UserBadgeMutation object of the builder.
func (_u *UserBadgeUpdate) Mutation() *UserBadgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserBadgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserBadgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserBadgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserBadgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserBadgeUpdate) check() error {
	if v, ok := _u.mutation.BadgeKey(); ok {
		if err := userbadge.BadgeKeyValidator(v); err != nil {
			return &ValidationError{Name: "badge_key", err: fmt.Errorf(`ent: validator failed for field "UserBadge.badge_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BadgeTitle(); ok {
		if err := userbadge.BadgeTitleValidator(v); err != nil {
			return &ValidationError{Name: "badge_title", err: fmt.Errorf(`ent: validator failed for field "UserBadge.badge_title": %w`, err)}
		}
	}
	return nil
}

func (_u *UserBadgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userbadge.Table, userbadge.Columns, sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BadgeKey(); ok {
		_spec.SetField(userbadge.FieldBadgeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.BadgeTitle(); ok {
		_spec.SetField(userbadge.FieldBadgeTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.BadgeDescription(); ok {
		_spec.SetField(userbadge.FieldBadgeDescription, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userbadge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserBadgeUpdateOne is the builder for updating a single UserBadge entity.
type UserBadgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserBadgeMutation
}

// SetBadgeKey sets the "badge_key" field.
func (_u *UserBadgeUpdateOne) SetBadgeKey(v string) *UserBadgeUpdateOne {
	_u.mutation.SetBadgeKey(v)
	return _u
}

// SetNillableBadgeKey sets the "badge_key" field if the given value is not nil.
func (_u *UserBadgeUpdateOne) SetNillableBadgeKey(v *string) *UserBadgeUpdateOne {
	if v != nil {
		_u.SetBadgeKey(*v)
	}
	return _u
}

// SetBadgeTitle sets the "badge_title" field.
func (_u *UserBadgeUpdateOne) SetBadgeTitle(v string) *UserBadgeUpdateOne {
	_u.mutation.SetBadgeTitle(v)
	return _u
}

// SetNillableBadgeTitle sets the "badge_title" field if the given value is not nil.
func (_u *UserBadgeUpdateOne) SetNillableBadgeTitle(v *string) *UserBadgeUpdateOne {
	if v != nil {
		_u.SetBadgeTitle(*v)
	}
	return _u
}

// SetBadgeDescription sets the "badge_description" field.
func (_u *UserBadgeUpdateOne) SetBadgeDescription(v string) *UserBadgeUpdateOne {
	_u.mutation.SetBadgeDescription(v)
	return _u
}

// SetNillableBadgeDescription sets the "badge_description" field if the given value is not nil.
func (_u *UserBadgeUpdateOne) SetNillableBadgeDescription(v *string) *UserBadgeUpdateOne {
	if v != nil {
		_u.SetBadgeDescription(*v)
	}
	return _u
}

// Mutation returns the UserBadgeMutation object of the builder.
func (_u *UserBadgeUpdateOne) Mutation() *UserBadgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserBadgeUpdate builder.
func (_u *UserBadgeUpdateOne) Where(ps ...predicate.UserBadge) *UserBadgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserBadgeUpdateOne) Select(field string, fields ...string) *UserBadgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserBadge entity.
func (_u *UserBadgeUpdateOne) Save(ctx context.Context) (*UserBadge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserBadgeUpdateOne) SaveX(ctx context.Context) *UserBadge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserBadgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserBadgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserBadgeUpdateOne) check() error {
	if v, ok := _u.mutation.BadgeKey(); ok {
		if err := userbadge.BadgeKeyValidator(v); err != nil {
			return &ValidationError{Name: "badge_key", err: fmt.Errorf(`ent: validator failed for field "UserBadge.badge_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BadgeTitle(); ok {
		if err := userbadge.BadgeTitleValidator(v); err != nil {
			return &ValidationError{Name: "badge_title", err: fmt.Errorf(`ent: validator failed for field "UserBadge.badge_title": %w`, err)}
		}
	}
	return nil
}

func (_u *UserBadgeUpdateOne) sqlSave(ctx context.Context) (_node *UserBadge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userbadge.Table, userbadge.Columns, sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserBadge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userbadge.FieldID)
		for _, f := range fields {
			if !userbadge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userbadge.FieldID {
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
	if value, ok := _u.mutation.BadgeKey(); ok {
		_spec.SetField(userbadge.FieldBadgeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.BadgeTitle(); ok {
		_spec.SetField(userbadge.FieldBadgeTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.BadgeDescription(); ok {
		_spec.SetField(userbadge.FieldBadgeDescription, field.TypeString, value)
	}
	_node = &UserBadge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userbadge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
