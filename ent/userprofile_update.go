// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/predicate"
	"github.com/adilet/learnloop/ent/userprofile"
)

// UserProfileUpdate is the builder for updating UserProfile entities.
type UserProfileUpdate struct {
	config
	hooks    []Hook
	mutation *UserProfileMutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdate) Where(ps ...predicate.UserProfile) *UserProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *UserProfileUpdate) SetFullName(v string) *UserProfileUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableFullName(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *UserProfileUpdate) ClearFullName() *UserProfileUpdate {
	_u.mutation.ClearFullName()
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *UserProfileUpdate) SetAvatarURL(v string) *UserProfileUpdate {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableAvatarURL(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (_u *UserProfileUpdate) ClearAvatarURL() *UserProfileUpdate {
	_u.mutation.ClearAvatarURL()
	return _u
}

// SetTargetGoal sets the "target_goal" field.
func (_u *UserProfileUpdate) SetTargetGoal(v string) *UserProfileUpdate {
	_u.mutation.SetTargetGoal(v)
	return _u
}

// SetNillableTargetGoal sets the "target_goal" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableTargetGoal(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetTargetGoal(*v)
	}
	return _u
}

// ClearTargetGoal clears the value of the "target_goal" field.
func (_u *UserProfileUpdate) ClearTargetGoal() *UserProfileUpdate {
	_u.mutation.ClearTargetGoal()
	return _u
}

// SetSkillLevel sets the "skill_level" field.
func (_u *UserProfileUpdate) SetSkillLevel(v string) *UserProfileUpdate {
	_u.mutation.SetSkillLevel(v)
	return _u
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableSkillLevel(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetSkillLevel(*v)
	}
	return _u
}

// ClearSkillLevel clears the value of the "skill_level" field.
func (_u *UserProfileUpdate) ClearSkillLevel() *UserProfileUpdate {
	_u.mutation.ClearSkillLevel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProfileUpdate) SetUpdatedAt(v time.Time) *UserProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdate) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(userprofile.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(userprofile.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(userprofile.FieldAvatarURL, field.TypeString, value)
	}
	if _u.mutation.AvatarURLCleared() {
		_spec.ClearField(userprofile.FieldAvatarURL, field.TypeString)
	}
	if value, ok := _u.mutation.TargetGoal(); ok {
		_spec.SetField(userprofile.FieldTargetGoal, field.TypeString, value)
	}
	if _u.mutation.TargetGoalCleared() {
		_spec.ClearField(userprofile.FieldTargetGoal, field.TypeString)
	}
	if value, ok := _u.mutation.SkillLevel(); ok {
		_spec.SetField(userprofile.FieldSkillLevel, field.TypeString, value)
	}
	if _u.mutation.SkillLevelCleared() {
		_spec.ClearField(userprofile.FieldSkillLevel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProfileUpdateOne is the builder for updating a single UserProfile entity.
type UserProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProfileMutation
}

// SetFullName sets the "full_name" field.
func (_u *UserProfileUpdateOne) SetFullName(v string) *UserProfileUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableFullName(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *UserProfileUpdateOne) ClearFullName() *UserProfileUpdateOne {
	_u.mutation.ClearFullName()
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *UserProfileUpdateOne) SetAvatarURL(v string) *UserProfileUpdateOne {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableAvatarURL(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (_u *UserProfileUpdateOne) ClearAvatarURL() *UserProfileUpdateOne {
	_u.mutation.ClearAvatarURL()
	return _u
}

// SetTargetGoal sets the "target_goal" field.
func (_u *UserProfileUpdateOne) SetTargetGoal(v string) *UserProfileUpdateOne {
	_u.mutation.SetTargetGoal(v)
	return _u
}

// SetNillableTargetGoal sets the "target_goal" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableTargetGoal(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetTargetGoal(*v)
	}
	return _u
}

// ClearTargetGoal clears the value of the "target_goal" field.
func (_u *UserProfileUpdateOne) ClearTargetGoal() *UserProfileUpdateOne {
	_u.mutation.ClearTargetGoal()
	return _u
}

// SetSkillLevel sets the "skill_level" field.
func (_u *UserProfileUpdateOne) SetSkillLevel(v string) *UserProfileUpdateOne {
	_u.mutation.SetSkillLevel(v)
	return _u
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableSkillLevel(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetSkillLevel(*v)
	}
	return _u
}

// ClearSkillLevel clears the value of the "skill_level" field.
func (_u *UserProfileUpdateOne) ClearSkillLevel() *UserProfileUpdateOne {
	_u.mutation.ClearSkillLevel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProfileUpdateOne) SetUpdatedAt(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdateOne) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdateOne) Where(ps ...predicate.UserProfile) *UserProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProfileUpdateOne) Select(field string, fields ...string) *UserProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProfile entity.
func (_u *UserProfileUpdateOne) Save(ctx context.Context) (*UserProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdateOne) SaveX(ctx context.Context) *UserProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserProfileUpdateOne) sqlSave(ctx context.Context) (_node *UserProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprofile.FieldID)
		for _, f := range fields {
			if !userprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprofile.FieldID {
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
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(userprofile.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(userprofile.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(userprofile.FieldAvatarURL, field.TypeString, value)
	}
	if _u.mutation.AvatarURLCleared() {
		_spec.ClearField(userprofile.FieldAvatarURL, field.TypeString)
	}
	if value, ok := _u.mutation.TargetGoal(); ok {
		_spec.SetField(userprofile.FieldTargetGoal, field.TypeString, value)
	}
	if _u.mutation.TargetGoalCleared() {
		_spec.ClearField(userprofile.FieldTargetGoal, field.TypeString)
	}
	if value, ok := _u.mutation.SkillLevel(); ok {
		_spec.SetField(userprofile.FieldSkillLevel, field.TypeString, value)
	}
	if _u.mutation.SkillLevelCleared() {
		_spec.ClearField(userprofile.FieldSkillLevel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
