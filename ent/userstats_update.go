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
	"github.com/adilet/learnloop/ent/userstats"
)

// UserStatsUpdate is the builder for updating UserStats entities.
type UserStatsUpdate struct {
	config
	hooks    []Hook
	mutation *UserStatsMutation
}

// Where appends a list predicates to the UserStatsUpdate builder.
func (_u *UserStatsUpdate) Where(ps ...predicate.UserStats) *UserStatsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetXpTotal sets the "xp_total" field.
func (_u *UserStatsUpdate) SetXpTotal(v int) *UserStatsUpdate {
	_u.mutation.ResetXpTotal()
	_u.mutation.SetXpTotal(v)
	return _u
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableXpTotal(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetXpTotal(*v)
	}
	return _u
}

// AddXpTotal adds value to the "xp_total" field.
func (_u *UserStatsUpdate) AddXpTotal(v int) *UserStatsUpdate {
	_u.mutation.AddXpTotal(v)
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *UserStatsUpdate) SetStreakDays(v int) *UserStatsUpdate {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableStreakDays(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *UserStatsUpdate) AddStreakDays(v int) *UserStatsUpdate {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetLastActiveDate sets the "last_active_date" field.
func (_u *UserStatsUpdate) SetLastActiveDate(v string) *UserStatsUpdate {
	_u.mutation.SetLastActiveDate(v)
	return _u
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableLastActiveDate(v *string) *UserStatsUpdate {
	if v != nil {
		_u.SetLastActiveDate(*v)
	}
	return _u
}

// ClearLastActiveDate clears the value of the "last_active_date" field.
func (_u *UserStatsUpdate) ClearLastActiveDate() *UserStatsUpdate {
	_u.mutation.ClearLastActiveDate()
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *UserStatsUpdate) SetLessonsCompleted(v int) *UserStatsUpdate {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableLessonsCompleted(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *UserStatsUpdate) AddLessonsCompleted(v int) *UserStatsUpdate {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetQuizzesCompleted sets the "quizzes_completed" field.
func (_u *UserStatsUpdate) SetQuizzesCompleted(v int) *UserStatsUpdate {
	_u.mutation.ResetQuizzesCompleted()
	_u.mutation.SetQuizzesCompleted(v)
	return _u
}

// SetNillableQuizzesCompleted sets the "quizzes_completed" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableQuizzesCompleted(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetQuizzesCompleted(*v)
	}
	return _u
}

// AddQuizzesCompleted adds value to the "quizzes_completed" field.
func (_u *UserStatsUpdate) AddQuizzesCompleted(v int) *UserStatsUpdate {
	_u.mutation.AddQuizzesCompleted(v)
	return _u
}

// SetPracticeCompleted sets the "practice_completed" field.
func (_u *UserStatsUpdate) SetPracticeCompleted(v int) *UserStatsUpdate {
	_u.mutation.ResetPracticeCompleted()
	_u.mutation.SetPracticeCompleted(v)
	return _u
}

// SetNillablePracticeCompleted sets the "practice_completed" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillablePracticeCompleted(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetPracticeCompleted(*v)
	}
	return _u
}

// AddPracticeCompleted adds value to the "practice_completed" field.
func (_u *UserStatsUpdate) AddPracticeCompleted(v int) *UserStatsUpdate {
	_u.mutation.AddPracticeCompleted(v)
	return _u
}

// SetExamsAttempted sets the "exams_attempted" field.
func (_u *UserStatsUpdate) SetExamsAttempted(v int) *UserStatsUpdate {
	_u.mutation.ResetExamsAttempted()
	_u.mutation.SetExamsAttempted(v)
	return _u
}

// SetNillableExamsAttempted sets the "exams_attempted" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableExamsAttempted(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetExamsAttempted(*v)
	}
	return _u
}

// AddExamsAttempted adds value to the "exams_attempted" field.
func (_u *UserStatsUpdate) AddExamsAttempted(v int) *UserStatsUpdate {
	_u.mutation.AddExamsAttempted(v)
	return _u
}

// SetCertificatesEarned sets the "certificates_earned" field.
func (_u *UserStatsUpdate) SetCertificatesEarned(v int) *UserStatsUpdate {
	_u.mutation.ResetCertificatesEarned()
	_u.mutation.SetCertificatesEarned(v)
	return _u
}

// SetNillableCertificatesEarned sets the "certificates_earned" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableCertificatesEarned(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetCertificatesEarned(*v)
	}
	return _u
}

// AddCertificatesEarned adds value to the "certificates_earned" field.
func (_u *UserStatsUpdate) AddCertificatesEarned(v int) *UserStatsUpdate {
	_u.mutation.AddCertificatesEarned(v)
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *UserStatsUpdate) SetDailyMinutes(v int) *UserStatsUpdate {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableDailyMinutes(v *int) *UserStatsUpdate {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *UserStatsUpdate) AddDailyMinutes(v int) *UserStatsUpdate {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_u *UserStatsUpdate) SetLastActivityDate(v string) *UserStatsUpdate {
	_u.mutation.SetLastActivityDate(v)
	return _u
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_u *UserStatsUpdate) SetNillableLastActivityDate(v *string) *UserStatsUpdate {
	if v != nil {
		_u.SetLastActivityDate(*v)
	}
	return _u
}

// ClearLastActivityDate clears the value of the "last_activity_date" field.
func (_u *UserStatsUpdate) ClearLastActivityDate() *UserStatsUpdate {
	_u.mutation.ClearLastActivityDate()
	return _u
}

// Mutation returns the UserStatsMutation object of the builder.
func (_u *UserStatsUpdate) Mutation() *UserStatsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserStatsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserStatsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserStatsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserStatsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserStatsUpdate) check() error {
	if v, ok := _u.mutation.XpTotal(); ok {
		if err := userstats.XpTotalValidator(v); err != nil {
			return &ValidationError{Name: "xp_total", err: fmt.Errorf(`ent: validator failed for field "UserStats.xp_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakDays(); ok {
		if err := userstats.StreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "streak_days", err: fmt.Errorf(`ent: validator failed for field "UserStats.streak_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonsCompleted(); ok {
		if err := userstats.LessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "lessons_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.lessons_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizzesCompleted(); ok {
		if err := userstats.QuizzesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "quizzes_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.quizzes_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCompleted(); ok {
		if err := userstats.PracticeCompletedValidator(v); err != nil {
			return &ValidationError{Name: "practice_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.practice_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamsAttempted(); ok {
		if err := userstats.ExamsAttemptedValidator(v); err != nil {
			return &ValidationError{Name: "exams_attempted", err: fmt.Errorf(`ent: validator failed for field "UserStats.exams_attempted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CertificatesEarned(); ok {
		if err := userstats.CertificatesEarnedValidator(v); err != nil {
			return &ValidationError{Name: "certificates_earned", err: fmt.Errorf(`ent: validator failed for field "UserStats.certificates_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyMinutes(); ok {
		if err := userstats.DailyMinutesValidator(v); err != nil {
			return &ValidationError{Name: "daily_minutes", err: fmt.Errorf(`ent: validator failed for field "UserStats.daily_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *UserStatsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userstats.Table, userstats.Columns, sqlgraph.NewFieldSpec(userstats.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.XpTotal(); ok {
		_spec.SetField(userstats.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpTotal(); ok {
		_spec.AddField(userstats.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(userstats.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(userstats.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveDate(); ok {
		_spec.SetField(userstats.FieldLastActiveDate, field.TypeString, value)
	}
	if _u.mutation.LastActiveDateCleared() {
		_spec.ClearField(userstats.FieldLastActiveDate, field.TypeString)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(userstats.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(userstats.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizzesCompleted(); ok {
		_spec.SetField(userstats.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesCompleted(); ok {
		_spec.AddField(userstats.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PracticeCompleted(); ok {
		_spec.SetField(userstats.FieldPracticeCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCompleted(); ok {
		_spec.AddField(userstats.FieldPracticeCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamsAttempted(); ok {
		_spec.SetField(userstats.FieldExamsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamsAttempted(); ok {
		_spec.AddField(userstats.FieldExamsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CertificatesEarned(); ok {
		_spec.SetField(userstats.FieldCertificatesEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCertificatesEarned(); ok {
		_spec.AddField(userstats.FieldCertificatesEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(userstats.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(userstats.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivityDate(); ok {
		_spec.SetField(userstats.FieldLastActivityDate, field.TypeString, value)
	}
	if _u.mutation.LastActivityDateCleared() {
		_spec.ClearField(userstats.FieldLastActivityDate, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserStatsUpdateOne is the builder for updating a single UserStats entity.
type UserStatsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserStatsMutation
}

// SetXpTotal sets the "xp_total" field.
func (_u *UserStatsUpdateOne) SetXpTotal(v int) *UserStatsUpdateOne {
	_u.mutation.ResetXpTotal()
	_u.mutation.SetXpTotal(v)
	return _u
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableXpTotal(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetXpTotal(*v)
	}
	return _u
}

// AddXpTotal adds value to the "xp_total" field.
func (_u *UserStatsUpdateOne) AddXpTotal(v int) *UserStatsUpdateOne {
	_u.mutation.AddXpTotal(v)
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *UserStatsUpdateOne) SetStreakDays(v int) *UserStatsUpdateOne {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableStreakDays(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *UserStatsUpdateOne) AddStreakDays(v int) *UserStatsUpdateOne {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetLastActiveDate sets the "last_active_date" field.
func (_u *UserStatsUpdateOne) SetLastActiveDate(v string) *UserStatsUpdateOne {
	_u.mutation.SetLastActiveDate(v)
	return _u
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableLastActiveDate(v *string) *UserStatsUpdateOne {
	if v != nil {
		_u.SetLastActiveDate(*v)
	}
	return _u
}

// ClearLastActiveDate clears the value of the "last_active_date" field.
func (_u *UserStatsUpdateOne) ClearLastActiveDate() *UserStatsUpdateOne {
	_u.mutation.ClearLastActiveDate()
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *UserStatsUpdateOne) SetLessonsCompleted(v int) *UserStatsUpdateOne {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableLessonsCompleted(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *UserStatsUpdateOne) AddLessonsCompleted(v int) *UserStatsUpdateOne {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetQuizzesCompleted sets the "quizzes_completed" field.
func (_u *UserStatsUpdateOne) SetQuizzesCompleted(v int) *UserStatsUpdateOne {
	_u.mutation.ResetQuizzesCompleted()
	_u.mutation.SetQuizzesCompleted(v)
	return _u
}

// SetNillableQuizzesCompleted sets the "quizzes_completed" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableQuizzesCompleted(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetQuizzesCompleted(*v)
	}
	return _u
}

// AddQuizzesCompleted adds value to the "quizzes_completed" field.
func (_u *UserStatsUpdateOne) AddQuizzesCompleted(v int) *UserStatsUpdateOne {
	_u.mutation.AddQuizzesCompleted(v)
	return _u
}

// SetPracticeCompleted sets the "practice_completed" field.
func (_u *UserStatsUpdateOne) SetPracticeCompleted(v int) *UserStatsUpdateOne {
	_u.mutation.ResetPracticeCompleted()
	_u.mutation.SetPracticeCompleted(v)
	return _u
}

// SetNillablePracticeCompleted sets the "practice_completed" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillablePracticeCompleted(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetPracticeCompleted(*v)
	}
	return _u
}

// AddPracticeCompleted adds value to the "practice_completed" field.
func (_u *UserStatsUpdateOne) AddPracticeCompleted(v int) *UserStatsUpdateOne {
	_u.mutation.AddPracticeCompleted(v)
	return _u
}

// SetExamsAttempted sets the "exams_attempted" field.
func (_u *UserStatsUpdateOne) SetExamsAttempted(v int) *UserStatsUpdateOne {
	_u.mutation.ResetExamsAttempted()
	_u.mutation.SetExamsAttempted(v)
	return _u
}

// SetNillableExamsAttempted sets the "exams_attempted" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableExamsAttempted(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetExamsAttempted(*v)
	}
	return _u
}

// AddExamsAttempted adds value to the "exams_attempted" field.
func (_u *UserStatsUpdateOne) AddExamsAttempted(v int) *UserStatsUpdateOne {
	_u.mutation.AddExamsAttempted(v)
	return _u
}

// SetCertificatesEarned sets the "certificates_earned" field.
func (_u *UserStatsUpdateOne) SetCertificatesEarned(v int) *UserStatsUpdateOne {
	_u.mutation.ResetCertificatesEarned()
	_u.mutation.SetCertificatesEarned(v)
	return _u
}

// SetNillableCertificatesEarned sets the "certificates_earned" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableCertificatesEarned(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetCertificatesEarned(*v)
	}
	return _u
}

// AddCertificatesEarned adds value to the "certificates_earned" field.
func (_u *UserStatsUpdateOne) AddCertificatesEarned(v int) *UserStatsUpdateOne {
	_u.mutation.AddCertificatesEarned(v)
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *UserStatsUpdateOne) SetDailyMinutes(v int) *UserStatsUpdateOne {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableDailyMinutes(v *int) *UserStatsUpdateOne {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *UserStatsUpdateOne) AddDailyMinutes(v int) *UserStatsUpdateOne {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_u *UserStatsUpdateOne) SetLastActivityDate(v string) *UserStatsUpdateOne {
	_u.mutation.SetLastActivityDate(v)
	return _u
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_u *UserStatsUpdateOne) SetNillableLastActivityDate(v *string) *UserStatsUpdateOne {
	if v != nil {
		_u.SetLastActivityDate(*v)
	}
	return _u
}

// ClearLastActivityDate clears the value of the "last_activity_date" field.
func (_u *UserStatsUpdateOne) ClearLastActivityDate() *UserStatsUpdateOne {
	_u.mutation.ClearLastActivityDate()
	return _u
}

// Mutation returns the UserStatsMutation object of the builder.
func (_u *UserStatsUpdateOne) Mutation() *UserStatsMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserStatsUpdate builder.
func (_u *UserStatsUpdateOne) Where(ps ...predicate.UserStats) *UserStatsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserStatsUpdateOne) Select(field string, fields ...string) *UserStatsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserStats entity.
func (_u *UserStatsUpdateOne) Save(ctx context.Context) (*UserStats, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserStatsUpdateOne) SaveX(ctx context.Context) *UserStats {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserStatsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserStatsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserStatsUpdateOne) check() error {
	if v, ok := _u.mutation.XpTotal(); ok {
		if err := userstats.XpTotalValidator(v); err != nil {
			return &ValidationError{Name: "xp_total", err: fmt.Errorf(`ent: validator failed for field "UserStats.xp_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakDays(); ok {
		if err := userstats.StreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "streak_days", err: fmt.Errorf(`ent: validator failed for field "UserStats.streak_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonsCompleted(); ok {
		if err := userstats.LessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "lessons_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.lessons_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizzesCompleted(); ok {
		if err := userstats.QuizzesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "quizzes_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.quizzes_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCompleted(); ok {
		if err := userstats.PracticeCompletedValidator(v); err != nil {
			return &ValidationError{Name: "practice_completed", err: fmt.Errorf(`ent: validator failed for field "UserStats.practice_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamsAttempted(); ok {
		if err := userstats.ExamsAttemptedValidator(v); err != nil {
			return &ValidationError{Name: "exams_attempted", err: fmt.Errorf(`ent: validator failed for field "UserStats.exams_attempted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CertificatesEarned(); ok {
		if err := userstats.CertificatesEarnedValidator(v); err != nil {
			return &ValidationError{Name: "certificates_earned", err: fmt.Errorf(`ent: validator failed for field "UserStats.certificates_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyMinutes(); ok {
		if err := userstats.DailyMinutesValidator(v); err != nil {
			return &ValidationError{Name: "daily_minutes", err: fmt.Errorf(`ent: validator failed for field "UserStats.daily_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *UserStatsUpdateOne) sqlSave(ctx context.Context) (_node *UserStats, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userstats.Table, userstats.Columns, sqlgraph.NewFieldSpec(userstats.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserStats.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userstats.FieldID)
		for _, f := range fields {
			if !userstats.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userstats.FieldID {
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
	if value, ok := _u.mutation.XpTotal(); ok {
		_spec.SetField(userstats.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpTotal(); ok {
		_spec.AddField(userstats.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(userstats.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(userstats.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveDate(); ok {
		_spec.SetField(userstats.FieldLastActiveDate, field.TypeString, value)
	}
	if _u.mutation.LastActiveDateCleared() {
		_spec.ClearField(userstats.FieldLastActiveDate, field.TypeString)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(userstats.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(userstats.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizzesCompleted(); ok {
		_spec.SetField(userstats.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesCompleted(); ok {
		_spec.AddField(userstats.FieldQuizzesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PracticeCompleted(); ok {
		_spec.SetField(userstats.FieldPracticeCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCompleted(); ok {
		_spec.AddField(userstats.FieldPracticeCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamsAttempted(); ok {
		_spec.SetField(userstats.FieldExamsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamsAttempted(); ok {
		_spec.AddField(userstats.FieldExamsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CertificatesEarned(); ok {
		_spec.SetField(userstats.FieldCertificatesEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCertificatesEarned(); ok {
		_spec.AddField(userstats.FieldCertificatesEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(userstats.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(userstats.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivityDate(); ok {
		_spec.SetField(userstats.FieldLastActivityDate, field.TypeString, value)
	}
	if _u.mutation.LastActivityDateCleared() {
		_spec.ClearField(userstats.FieldLastActivityDate, field.TypeString)
	}
	_node = &UserStats{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
