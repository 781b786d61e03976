// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/userbadge"
	"github.com/google/uuid"
)

// UserBadgeCreate is the builder for creating a UserBadge entity.
type UserBadgeCreate struct {
	config
	mutation *UserBadgeMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserBadgeCreate) SetUserID(v string) *UserBadgeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBadgeKey sets the "badge_key" field.
func (_c *UserBadgeCreate) SetBadgeKey(v string) *UserBadgeCreate {
	_c.mutation.SetBadgeKey(v)
	return _c
}

// SetBadgeTitle sets the "badge_title" field.
func (_c *UserBadgeCreate) SetBadgeTitle(v string) *UserBadgeCreate {
	_c.mutation.SetBadgeTitle(v)
	return _c
}

// SetBadgeDescription sets the "badge_description" field.
func (_c *UserBadgeCreate) SetBadgeDescription(v string) *UserBadgeCreate {
	_c.mutation.SetBadgeDescription(v)
	return _c
}

// SetNillableBadgeDescription sets the "badge_description" field if the given value is not nil.
func (_c *UserBadgeCreate) SetNillableBadgeDescription(v *string) *UserBadgeCreate {
	if v != nil {
		_c.SetBadgeDescription(*v)
	}
	return _c
}

// SetEarnedAt sets the "earned_at" field.
func (_c *UserBadgeCreate) SetEarnedAt(v time.Time) *UserBadgeCreate {
	_c.mutation.SetEarnedAt(v)
	return _c
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_c *UserBadgeCreate) SetNillableEarnedAt(v *time.Time) *UserBadgeCreate {
	if v != nil {
		_c.SetEarnedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserBadgeCreate) SetID(v uuid.UUID) *UserBadgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserBadgeCreate) SetNillableID(v *uuid.UUID) *UserBadgeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UserBadgeMutation object of the builder.
func (_c *UserBadgeCreate) Mutation() *UserBadgeMutation {
	return _c.mutation
}

// Save creates the UserBadge in the database.
func (_c *UserBadgeCreate) Save(ctx context.Context) (*UserBadge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserBadgeCreate) SaveX(ctx context.Context) *UserBadge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserBadgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserBadgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserBadgeCreate) defaults() {
	if _, ok := _c.mutation.BadgeDescription(); !ok {
		v := userbadge.DefaultBadgeDescription
		_c.mutation.SetBadgeDescription(v)
	}
	if _, ok := _c.mutation.EarnedAt(); !ok {
		v := userbadge.DefaultEarnedAt()
		_c.mutation.SetEarnedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := userbadge.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserBadgeCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserBadge.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userbadge.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserBadge.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BadgeKey(); !ok {
		return &ValidationError{Name: "badge_key", err: errors.New(`ent: missing required field "UserBadge.badge_key"`)}
	}
	if v, ok := _c.mutation.BadgeKey(); ok {
		if err := userbadge.BadgeKeyValidator(v); err != nil {
			return &ValidationError{Name: "badge_key", err: fmt.Errorf(`ent: validator failed for field "UserBadge.badge_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BadgeTitle(); !ok {
		return &ValidationError{Name: "badge_title", err: errors.New(`ent: missing required field "UserBadge.badge_title"`)}
	}
	if v, ok := _c.mutation.BadgeTitle(); ok {
		if err := userbadge.BadgeTitleValidator(v); err != nil {
			return &ValidationError{Name: "badge_title", err: fmt.Errorf(`ent: validator failed for field "UserBadge.badge_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BadgeDescription(); !ok {
		return &ValidationError{Name: "badge_description", err: errors.New(`ent: missing required field "UserBadge.badge_description"`)}
	}
	if _, ok := _c.mutation.EarnedAt(); !ok {
		return &ValidationError{Name: "earned_at", err: errors.New(`ent: missing required field "UserBadge.earned_at"`)}
	}
	return nil
}

func (_c *UserBadgeCreate) sqlSave(ctx context.Context) (*UserBadge, error) {
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

func (_c *UserBadgeCreate) createSpec() (*UserBadge, *sqlgraph.CreateSpec) {
	var (
		_node = &UserBadge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userbadge.Table, sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userbadge.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BadgeKey(); ok {
		_spec.SetField(userbadge.FieldBadgeKey, field.TypeString, value)
		_node.BadgeKey = value
	}
	if value, ok := _c.mutation.BadgeTitle(); ok {
		_spec.SetField(userbadge.FieldBadgeTitle, field.TypeString, value)
		_node.BadgeTitle = value
	}
	if value, ok := _c.mutation.BadgeDescription(); ok {
		_spec.SetField(userbadge.FieldBadgeDescription, field.TypeString, value)
		_node.BadgeDescription = value
	}
	if value, ok := _c.mutation.EarnedAt(); ok {
		_spec.SetField(userbadge.FieldEarnedAt, field.TypeTime, value)
		_node.EarnedAt = value
	}
	return _node, _spec
}

// UserBadgeCreateBulk is the builder for creating many UserBadge entities in bulk.
type UserBadgeCreateBulk struct {
	config
	err      error
	builders []*UserBadgeCreate
}

// Save creates the UserBadge entities in the database.
func (_c *UserBadgeCreateBulk) Save(ctx context.Context) ([]*UserBadge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserBadge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserBadgeMutation)
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
func (_c *UserBadgeCreateBulk) SaveX(ctx context.Context) []*UserBadge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserBadgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserBadgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
