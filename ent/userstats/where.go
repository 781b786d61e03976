// Code generated by ent, DO NOT EDIT.

package userstats

import (
	"entgo.io/ent/dialect/sql"
	"github.com/adilet/learnloop/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldUserID, v))
}

// XpTotal applies equality check predicate on the "xp_total" field. It's identical to XpTotalEQ.
func XpTotal(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldXpTotal, v))
}

// StreakDays applies equality check predicate on the "streak_days" field. It's identical to StreakDaysEQ.
func StreakDays(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldStreakDays, v))
}

// LastActiveDate applies equality check predicate on the "last_active_date" field. It's identical to LastActiveDateEQ.
func LastActiveDate(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldLastActiveDate, v))
}

// LessonsCompleted applies equality check predicate on the "lessons_completed" field. It's identical to LessonsCompletedEQ.
func LessonsCompleted(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldLessonsCompleted, v))
}

// QuizzesCompleted applies equality check predicate on the "quizzes_completed" field. It's identical to QuizzesCompletedEQ.
func QuizzesCompleted(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldQuizzesCompleted, v))
}

// PracticeCompleted applies equality check predicate on the "practice_completed" field. It's identical to PracticeCompletedEQ.
func PracticeCompleted(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldPracticeCompleted, v))
}

// ExamsAttempted applies equality check predicate on the "exams_attempted" field. It's identical to ExamsAttemptedEQ.
func ExamsAttempted(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldExamsAttempted, v))
}

// CertificatesEarned applies equality check predicate on the "certificates_earned" field. It's identical to CertificatesEarnedEQ.
func CertificatesEarned(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldCertificatesEarned, v))
}

// DailyMinutes applies equality check predicate on the "daily_minutes" field. It's identical to DailyMinutesEQ.
func DailyMinutes(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldDailyMinutes, v))
}

// LastActivityDate applies equality check predicate on the "last_activity_date" field. It's identical to LastActivityDateEQ.
func LastActivityDate(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldLastActivityDate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContainsFold(FieldUserID, v))
}

// XpTotalEQ applies the EQ predicate on the "xp_total" field.
func XpTotalEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldXpTotal, v))
}

// XpTotalNEQ applies the NEQ predicate on the "xp_total" field.
func XpTotalNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldXpTotal, v))
}

// XpTotalIn applies the In predicate on the "xp_total" field.
func XpTotalIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldXpTotal, vs...))
}

// XpTotalNotIn applies the NotIn predicate on the "xp_total" field.
func XpTotalNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldXpTotal, vs...))
}

// XpTotalGT applies the GT predicate on the "xp_total" field.
func XpTotalGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldXpTotal, v))
}

// XpTotalGTE applies the GTE predicate on the "xp_total" field.
func XpTotalGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldXpTotal, v))
}

// XpTotalLT applies the LT predicate on the "xp_total" field.
func XpTotalLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldXpTotal, v))
}

// XpTotalLTE applies the LTE predicate on the "xp_total" field.
func XpTotalLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldXpTotal, v))
}

// StreakDaysEQ applies the EQ predicate on the "streak_days" field.
func StreakDaysEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldStreakDays, v))
}

// StreakDaysNEQ applies the NEQ predicate on the "streak_days" field.
func StreakDaysNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldStreakDays, v))
}

// StreakDaysIn applies the In predicate on the "streak_days" field.
func StreakDaysIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldStreakDays, vs...))
}

// StreakDaysNotIn applies the NotIn predicate on the "streak_days" field.
func StreakDaysNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldStreakDays, vs...))
}

// StreakDaysGT applies the GT predicate on the "streak_days" field.
func StreakDaysGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldStreakDays, v))
}

// StreakDaysGTE applies the GTE predicate on the "streak_days" field.
func StreakDaysGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldStreakDays, v))
}

// StreakDaysLT applies the LT predicate on the "streak_days" field.
func StreakDaysLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldStreakDays, v))
}

// StreakDaysLTE applies the LTE predicate on the "streak_days" field.
func StreakDaysLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldStreakDays, v))
}

// LastActiveDateEQ applies the EQ predicate on the "last_active_date" field.
func LastActiveDateEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldLastActiveDate, v))
}

// LastActiveDateNEQ applies the NEQ predicate on the "last_active_date" field.
func LastActiveDateNEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldLastActiveDate, v))
}

// LastActiveDateIn applies the In predicate on the "last_active_date" field.
func LastActiveDateIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldLastActiveDate, vs...))
}

// LastActiveDateNotIn applies the NotIn predicate on the "last_active_date" field.
func LastActiveDateNotIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldLastActiveDate, vs...))
}

// LastActiveDateGT applies the GT predicate on the "last_active_date" field.
func LastActiveDateGT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldLastActiveDate, v))
}

// LastActiveDateGTE applies the GTE predicate on the "last_active_date" field.
func LastActiveDateGTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldLastActiveDate, v))
}

// LastActiveDateLT applies the LT predicate on the "last_active_date" field.
func LastActiveDateLT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldLastActiveDate, v))
}

// LastActiveDateLTE applies the LTE predicate on the "last_active_date" field.
func LastActiveDateLTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldLastActiveDate, v))
}

// LastActiveDateContains applies the Contains predicate on the "last_active_date" field.
func LastActiveDateContains(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContains(FieldLastActiveDate, v))
}

// LastActiveDateHasPrefix applies the HasPrefix predicate on the "last_active_date" field.
func LastActiveDateHasPrefix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasPrefix(FieldLastActiveDate, v))
}

// LastActiveDateHasSuffix applies the HasSuffix predicate on the "last_active_date" field.
func LastActiveDateHasSuffix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasSuffix(FieldLastActiveDate, v))
}

// LastActiveDateIsNil applies the IsNil predicate on the "last_active_date" field.
func LastActiveDateIsNil() predicate.UserStats {
	return predicate.UserStats(sql.FieldIsNull(FieldLastActiveDate))
}

// LastActiveDateNotNil applies the NotNil predicate on the "last_active_date" field.
func LastActiveDateNotNil() predicate.UserStats {
	return predicate.UserStats(sql.FieldNotNull(FieldLastActiveDate))
}

// LastActiveDateEqualFold applies the EqualFold predicate on the "last_active_date" field.
func LastActiveDateEqualFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEqualFold(FieldLastActiveDate, v))
}

// LastActiveDateContainsFold applies the ContainsFold predicate on the "last_active_date" field.
func LastActiveDateContainsFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContainsFold(FieldLastActiveDate, v))
}

// LessonsCompletedEQ applies the EQ predicate on the "lessons_completed" field.
func LessonsCompletedEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedNEQ applies the NEQ predicate on the "lessons_completed" field.
func LessonsCompletedNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedIn applies the In predicate on the "lessons_completed" field.
func LessonsCompletedIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedNotIn applies the NotIn predicate on the "lessons_completed" field.
func LessonsCompletedNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedGT applies the GT predicate on the "lessons_completed" field.
func LessonsCompletedGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldLessonsCompleted, v))
}

// LessonsCompletedGTE applies the GTE predicate on the "lessons_completed" field.
func LessonsCompletedGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldLessonsCompleted, v))
}

// LessonsCompletedLT applies the LT predicate on the "lessons_completed" field.
func LessonsCompletedLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldLessonsCompleted, v))
}

// LessonsCompletedLTE applies the LTE predicate on the "lessons_completed" field.
func LessonsCompletedLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldLessonsCompleted, v))
}

// QuizzesCompletedEQ applies the EQ predicate on the "quizzes_completed" field.
func QuizzesCompletedEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldQuizzesCompleted, v))
}

// QuizzesCompletedNEQ applies the NEQ predicate on the "quizzes_completed" field.
func QuizzesCompletedNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldQuizzesCompleted, v))
}

// QuizzesCompletedIn applies the In predicate on the "quizzes_completed" field.
func QuizzesCompletedIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldQuizzesCompleted, vs...))
}

// QuizzesCompletedNotIn applies the NotIn predicate on the "quizzes_completed" field.
func QuizzesCompletedNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldQuizzesCompleted, vs...))
}

// QuizzesCompletedGT applies the GT predicate on the "quizzes_completed" field.
func QuizzesCompletedGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldQuizzesCompleted, v))
}

// QuizzesCompletedGTE applies the GTE predicate on the "quizzes_completed" field.
func QuizzesCompletedGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldQuizzesCompleted, v))
}

// QuizzesCompletedLT applies the LT predicate on the "quizzes_completed" field.
func QuizzesCompletedLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldQuizzesCompleted, v))
}

// QuizzesCompletedLTE applies the LTE predicate on the "quizzes_completed" field.
func QuizzesCompletedLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldQuizzesCompleted, v))
}

// PracticeCompletedEQ applies the EQ predicate on the "practice_completed" field.
func PracticeCompletedEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldPracticeCompleted, v))
}

// PracticeCompletedNEQ applies the NEQ predicate on the "practice_completed" field.
func PracticeCompletedNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldPracticeCompleted, v))
}

// PracticeCompletedIn applies the In predicate on the "practice_completed" field.
func PracticeCompletedIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldPracticeCompleted, vs...))
}

// PracticeCompletedNotIn applies the NotIn predicate on the "practice_completed" field.
func PracticeCompletedNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldPracticeCompleted, vs...))
}

// PracticeCompletedGT applies the GT predicate on the "practice_completed" field.
func PracticeCompletedGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldPracticeCompleted, v))
}

// PracticeCompletedGTE applies the GTE predicate on the "practice_completed" field.
func PracticeCompletedGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldPracticeCompleted, v))
}

// PracticeCompletedLT applies the LT predicate on the "practice_completed" field.
func PracticeCompletedLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldPracticeCompleted, v))
}

// PracticeCompletedLTE applies the LTE predicate on the "practice_completed" field.
func PracticeCompletedLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldPracticeCompleted, v))
}

// ExamsAttemptedEQ applies the EQ predicate on the "exams_attempted" field.
func ExamsAttemptedEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldExamsAttempted, v))
}

// ExamsAttemptedNEQ applies the NEQ predicate on the "exams_attempted" field.
func ExamsAttemptedNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldExamsAttempted, v))
}

// ExamsAttemptedIn applies the In predicate on the "exams_attempted" field.
func ExamsAttemptedIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldExamsAttempted, vs...))
}

// ExamsAttemptedNotIn applies the NotIn predicate on the "exams_attempted" field.
func ExamsAttemptedNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldExamsAttempted, vs...))
}

// ExamsAttemptedGT applies the GT predicate on the "exams_attempted" field.
func ExamsAttemptedGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldExamsAttempted, v))
}

// ExamsAttemptedGTE applies the GTE predicate on the "exams_attempted" field.
func ExamsAttemptedGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldExamsAttempted, v))
}

// ExamsAttemptedLT applies the LT predicate on the "exams_attempted" field.
func ExamsAttemptedLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldExamsAttempted, v))
}

// ExamsAttemptedLTE applies the LTE predicate on the "exams_attempted" field.
func ExamsAttemptedLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldExamsAttempted, v))
}

// CertificatesEarnedEQ applies the EQ predicate on the "certificates_earned" field.
func CertificatesEarnedEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldCertificatesEarned, v))
}

// CertificatesEarnedNEQ applies the NEQ predicate on the "certificates_earned" field.
func CertificatesEarnedNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldCertificatesEarned, v))
}

// CertificatesEarnedIn applies the In predicate on the "certificates_earned" field.
func CertificatesEarnedIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldCertificatesEarned, vs...))
}

// CertificatesEarnedNotIn applies the NotIn predicate on the "certificates_earned" field.
func CertificatesEarnedNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldCertificatesEarned, vs...))
}

// CertificatesEarnedGT applies the GT predicate on the "certificates_earned" field.
func CertificatesEarnedGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldCertificatesEarned, v))
}

// CertificatesEarnedGTE applies the GTE predicate on the "certificates_earned" field.
func CertificatesEarnedGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldCertificatesEarned, v))
}

// CertificatesEarnedLT applies the LT predicate on the "certificates_earned" field.
func CertificatesEarnedLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldCertificatesEarned, v))
}

// CertificatesEarnedLTE applies the LTE predicate on the "certificates_earned" field.
func CertificatesEarnedLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldCertificatesEarned, v))
}

// DailyMinutesEQ applies the EQ predicate on the "daily_minutes" field.
func DailyMinutesEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldDailyMinutes, v))
}

// DailyMinutesNEQ applies the NEQ predicate on the "daily_minutes" field.
func DailyMinutesNEQ(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldDailyMinutes, v))
}

// DailyMinutesIn applies the In predicate on the "daily_minutes" field.
func DailyMinutesIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldDailyMinutes, vs...))
}

// DailyMinutesNotIn applies the NotIn predicate on the "daily_minutes" field.
func DailyMinutesNotIn(vs ...int) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldDailyMinutes, vs...))
}

// DailyMinutesGT applies the GT predicate on the "daily_minutes" field.
func DailyMinutesGT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldDailyMinutes, v))
}

// DailyMinutesGTE applies the GTE predicate on the "daily_minutes" field.
func DailyMinutesGTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldDailyMinutes, v))
}

// DailyMinutesLT applies the LT predicate on the "daily_minutes" field.
func DailyMinutesLT(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldDailyMinutes, v))
}

// DailyMinutesLTE applies the LTE predicate on the "daily_minutes" field.
func DailyMinutesLTE(v int) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldDailyMinutes, v))
}

// LastActivityDateEQ applies the EQ predicate on the "last_activity_date" field.
func LastActivityDateEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEQ(FieldLastActivityDate, v))
}

// LastActivityDateNEQ applies the NEQ predicate on the "last_activity_date" field.
func LastActivityDateNEQ(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNEQ(FieldLastActivityDate, v))
}

// LastActivityDateIn applies the In predicate on the "last_activity_date" field.
func LastActivityDateIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldIn(FieldLastActivityDate, vs...))
}

// LastActivityDateNotIn applies the NotIn predicate on the "last_activity_date" field.
func LastActivityDateNotIn(vs ...string) predicate.UserStats {
	return predicate.UserStats(sql.FieldNotIn(FieldLastActivityDate, vs...))
}

// LastActivityDateGT applies the GT predicate on the "last_activity_date" field.
func LastActivityDateGT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGT(FieldLastActivityDate, v))
}

// LastActivityDateGTE applies the GTE predicate on the "last_activity_date" field.
func LastActivityDateGTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldGTE(FieldLastActivityDate, v))
}

// LastActivityDateLT applies the LT predicate on the "last_activity_date" field.
func LastActivityDateLT(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLT(FieldLastActivityDate, v))
}

// LastActivityDateLTE applies the LTE predicate on the "last_activity_date" field.
func LastActivityDateLTE(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldLTE(FieldLastActivityDate, v))
}

// LastActivityDateContains applies the Contains predicate on the "last_activity_date" field.
func LastActivityDateContains(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContains(FieldLastActivityDate, v))
}

// LastActivityDateHasPrefix applies the HasPrefix predicate on the "last_activity_date" field.
func LastActivityDateHasPrefix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasPrefix(FieldLastActivityDate, v))
}

// LastActivityDateHasSuffix applies the HasSuffix predicate on the "last_activity_date" field.
func LastActivityDateHasSuffix(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldHasSuffix(FieldLastActivityDate, v))
}

// LastActivityDateIsNil applies the IsNil predicate on the "last_activity_date" field.
func LastActivityDateIsNil() predicate.UserStats {
	return predicate.UserStats(sql.FieldIsNull(FieldLastActivityDate))
}

// LastActivityDateNotNil applies the NotNil predicate on the "last_activity_date" field.
func LastActivityDateNotNil() predicate.UserStats {
	return predicate.UserStats(sql.FieldNotNull(FieldLastActivityDate))
}

// LastActivityDateEqualFold applies the EqualFold predicate on the "last_activity_date" field.
func LastActivityDateEqualFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldEqualFold(FieldLastActivityDate, v))
}

// LastActivityDateContainsFold applies the ContainsFold predicate on the "last_activity_date" field.
func LastActivityDateContainsFold(v string) predicate.UserStats {
	return predicate.UserStats(sql.FieldContainsFold(FieldLastActivityDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserStats) predicate.UserStats {
	return predicate.UserStats(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserStats) predicate.UserStats {
	return predicate.UserStats(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserStats) predicate.UserStats {
	return predicate.UserStats(sql.NotPredicates(p))
}
