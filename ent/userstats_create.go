// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/userstats"
	"github.com/google/uuid"
)

// UserStatsCreate is the builder for creating a UserStats entity.
type UserStatsCreate struct {
	config
	mutation *UserStatsMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserStatsCreate) SetUserID(v string) *UserStatsCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetXpTotal sets the "xp_total" field.
func (_c *UserStatsCreate) SetXpTotal(v int) *UserStatsCreate {
	_c.mutation.SetXpTotal(v)
	return _c
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableXpTotal(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetXpTotal(*v)
	}
	return _c
}

// SetStreakDays sets the "streak_days" field.
func (_c *UserStatsCreate) SetStreakDays(v int) *UserStatsCreate {
	_c.mutation.SetStreakDays(v)
	return _c
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableStreakDays(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetStreakDays(*v)
	}
	return _c
}

// SetLastActiveDate sets the "last_active_date" field.
func (_c *UserStatsCreate) SetLastActiveDate(v string) *UserStatsCreate {
	_c.mutation.SetLastActiveDate(v)
	return _c
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableLastActiveDate(v *string) *UserStatsCreate {
	if v != nil {
		_c.SetLastActiveDate(*v)
	}
	return _c
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_c *UserStatsCreate) SetLessonsCompleted(v int) *UserStatsCreate {
	_c.mutation.SetLessonsCompleted(v)
	return _c
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableLessonsCompleted(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetLessonsCompleted(*v)
	}
	return _c
}

// SetQuizzesCompleted sets the "quizzes_completed" field.
func (_c *UserStatsCreate) SetQuizzesCompleted(v int) *UserStatsCreate {
	_c.mutation.SetQuizzesCompleted(v)
	return _c
}

// SetNillableQuizzesCompleted sets the "quizzes_completed" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableQuizzesCompleted(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetQuizzesCompleted(*v)
	}
	return _c
}

// SetPracticeCompleted sets the "practice_completed" field.
func (_c *UserStatsCreate) SetPracticeCompleted(v int) *UserStatsCreate {
	_c.mutation.SetPracticeCompleted(v)
	return _c
}

// SetNillablePracticeCompleted sets the "practice_completed" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillablePracticeCompleted(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetPracticeCompleted(*v)
	}
	return _c
}

// SetExamsAttempted sets the "exams_attempted" field.
func (_c *UserStatsCreate) SetExamsAttempted(v int) *UserStatsCreate {
	_c.mutation.SetExamsAttempted(v)
	return _c
}

// SetNillableExamsAttempted sets the "exams_attempted" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableExamsAttempted(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetExamsAttempted(*v)
	}
	return _c
}

// SetCertificatesEarned sets the "certificates_earned" field.
func (_c *UserStatsCreate) SetCertificatesEarned(v int) *UserStatsCreate {
	_c.mutation.SetCertificatesEarned(v)
	return _c
}

// SetNillableCertificatesEarned sets the "certificates_earned" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableCertificatesEarned(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetCertificatesEarned(*v)
	}
	return _c
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_c *UserStatsCreate) SetDailyMinutes(v int) *UserStatsCreate {
	_c.mutation.SetDailyMinutes(v)
	return _c
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableDailyMinutes(v *int) *UserStatsCreate {
	if v != nil {
		_c.SetDailyMinutes(*v)
	}
	return _c
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_c *UserStatsCreate) SetLastActivityDate(v string) *UserStatsCreate {
	_c.mutation.SetLastActivityDate(v)
	return _c
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableLastActivityDate(v *string) *UserStatsCreate {
	if v != nil {
		_c.SetLastActivityDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserStatsCreate) SetID(v uuid.UUID) *UserStatsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserStatsCreate) SetNillableID(v *uuid.UUID) *UserStatsCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UserStatsMutation object of the builder.
func (_c *UserStatsCreate) Mutation() *UserStatsMutation {
	return _c.mutation
}

// Save creates the UserStats in the database.
func (_c *UserStatsCreate) Save(ctx context.Context) (*UserStats, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserStatsCreate) SaveX(ctx context.Context) *UserStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserStatsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserStatsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserStatsCreate) defaults() {
	if _, ok := _c.mutation.XpTotal(); !ok {
		v := userstats.DefaultXpTotal
		_c.mutation.SetXpTotal(v)
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		v := userstats.DefaultStreakDays
		_c.mutation.SetStreakDays(v)
	}
	if _, ok := _c.mutation.LessonsCompleted(); !ok {
		v := userstats.DefaultLessonsCompleted
		_c.mutation.SetLessonsCompleted(v)
	}
	if _, ok := _c.mutation.QuizzesCompleted(); !ok {
		v := userstats.DefaultQuizzesCompleted
		_c.mutation.SetQuizzesCompleted(v)
	}
	if _, ok := _c.mutation.PracticeCompleted(); !ok {
		v := userstats.DefaultPracticeCompleted
		_c.mutation.SetPracticeCompleted(v)
	}
	if _, ok := _c.mutation.ExamsAttempted(); !ok {
		v := userstats.DefaultExamsAttempted
		_c.mutation.SetExamsAttempted(v)
	}
	if _, ok := _c.mutation.CertificatesEarned(); !ok {
		v := userstats.DefaultCertificatesEarned
		_c.mutation.SetCertificatesEarned(v)
	}
	if _, ok := _c.mutation.DailyMinutes(); !ok {
		v := userstats.DefaultDailyMinutes
		_c.mutation.SetDailyMinutes(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := userstats.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserStatsCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserStats.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userstats.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserStats.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpTotal(); !ok {
		return &ValidationError{Name: "xp_total", err: errors.New(`ent: missing required field "UserStats.xp_total"`)}
	}
	if v, ok := _c.mutation.XpTotal(); ok {
		if err := userstats.XpTotalValidator(v); err != nil {
			return &ValidationError{Name: "xp_total", err: fmt.Errorf(`ent: validator failed for field "UserStats.xp_total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		return &ValidationError{Name: "streak_days", err: errors.New(`ent: missing required field "UserStats.streak_days"`)}
	}
	if v, ok := _c.mutation.StreakDays(); ok {
		if err := userstats.StreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "streak_days", err: fmt.Errorf(`ent: validator failed for field "UserStats.streak_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonsCompleted(); !ok {
		return &ValidationError{Name: "lessons_completed", err: errors.New(`ent: missing required field "UserStats.lessons_completed"`)}
	}
	if v, ok := _c.mutation.LessonsCompleted(); ok {
		if err := userstats.LessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "lessons_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.lessons_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizzesCompleted(); !ok {
		return &ValidationError{Name: "quizzes_completed", err: errors.New(`ent: missing required field "UserStats.quizzes_completed"`)}
	}
	if v, ok := _c.mutation.QuizzesCompleted(); ok {
		if err := userstats.QuizzesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "quizzes_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.quizzes_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PracticeCompleted(); !ok {
		return &ValidationError{Name: "practice_completed", err: errors.New(`ent: missing required field "UserStats.practice_completed"`)}
	}
	if v, ok := _c.mutation.PracticeCompleted(); ok {
		if err := userstats.PracticeCompletedValidator(v); err != nil {
			return &ValidationError{Name: "practice_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.practice_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamsAttempted(); !ok {
		return &ValidationError{Name: "exams_attempted", err: errors.New(`ent: missing required field "UserStats.exams_attempted"`)}
	}
	if v, ok := _c.mutation.ExamsAttempted(); ok {
		if err := userstats.ExamsAttemptedValidator(v); err != nil {
			return &ValidationError{Name: "exams_attempted", err: fmt.Errorf(`ent: validator failed for field "UserStats.exams_attempted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CertificatesEarned(); !ok {
		return &ValidationError{Name: "certificates_earned", err: errors.New(`ent: missing required field "UserStats.certificates_earned"`)}
	}
	if v, ok := _c.mutation.CertificatesEarned(); ok {
		if err := userstats.CertificatesEarnedValidator(v); err != nil {
			return &ValidationError{Name: "certificates_earned", err: fmt.Errorf(`ent: validator failed for field "UserStats.certificates_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DailyMinutes(); !ok {
		return &ValidationError{Name: "daily_minutes", err: errors.New(`ent: missing required field "UserStats.daily_minutes"`)}
	}
	if v, ok := _c.mutation.DailyMinutes(); ok {
		if err := userstats.DailyMinutesValidator(v); err != nil {
			return &ValidationError{Name: "daily_minutes", err: fmt.Errorf(`ent: validator failed for field "UserStats.daily_minutes": %w`, err)}
		}
	}
	return nil
}

func (_c *UserStatsCreate) sqlSave(ctx context.Context) (*UserStats, error) {
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

func (_c *UserStatsCreate) createSpec() (*UserStats, *sqlgraph.CreateSpec) {
	var (
		_node = &UserStats{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userstats.Table, sqlgraph.NewFieldSpec(userstats.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userstats.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.XpTotal(); ok {
		_spec.SetField(userstats.FieldXpTotal, field.TypeInt, value)
		_node.XpTotal = value
	}
	if value, ok := _c.mutation.StreakDays(); ok {
		_spec.SetField(userstats.FieldStreakDays, field.TypeInt, value)
		_node.StreakDays = value
	}
	if value, ok := _c.mutation.LastActiveDate(); ok {
		_spec.SetField(userstats.FieldLastActiveDate, field.TypeString, value)
		_node.LastActiveDate = value
	}
	if value, ok := _c.mutation.LessonsCompleted(); ok {
		_spec.SetField(userstats.FieldLessonsCompleted, field.TypeInt, value)
		_node.LessonsCompleted = value
	}
	if value, ok := _c.mutation.QuizzesCompleted(); ok {
		_spec.SetField(userstats.FieldQuizzesCompleted, field.TypeInt, value)
		_node.QuizzesCompleted = value
	}
	if value, ok := _c.mutation.PracticeCompleted(); ok {
		_spec.SetField(userstats.FieldPracticeCompleted, field.TypeInt, value)
		_node.PracticeCompleted = value
	}
	if value, ok := _c.mutation.ExamsAttempted(); ok {
		_spec.SetField(userstats.FieldExamsAttempted, field.TypeInt, value)
		_node.ExamsAttempted = value
	}
	if value, ok := _c.mutation.CertificatesEarned(); ok {
		_spec.SetField(userstats.FieldCertificatesEarned, field.TypeInt, value)
		_node.CertificatesEarned = value
	}
	if value, ok := _c.mutation.DailyMinutes(); ok {
		_spec.SetField(userstats.FieldDailyMinutes, field.TypeInt, value)
		_node.DailyMinutes = value
	}
	if value, ok := _c.mutation.LastActivityDate(); ok {
		_spec.SetField(userstats.FieldLastActivityDate, field.TypeString, value)
		_node.LastActivityDate = value
	}
	return _node, _spec
}

// UserStatsCreateBulk is the builder for creating many UserStats entities in bulk.
type UserStatsCreateBulk struct {
	config
	err      error
	builders []*UserStatsCreate
}

// Save creates the UserStats entities in the database.
func (_c *UserStatsCreateBulk) Save(ctx context.Context) ([]*UserStats, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserStats, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserStatsMutation)
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
func (_c *UserStatsCreateBulk) SaveX(ctx context.Context) []*UserStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserStatsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserStatsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
