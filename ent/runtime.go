// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adilet/learnloop/ent/aiterm"
	"github.com/adilet/learnloop/ent/certificate"
	"github.com/adilet/learnloop/ent/exam"
	"github.com/adilet/learnloop/ent/examattempt"
	"github.com/adilet/learnloop/ent/lesson"
	"github.com/adilet/learnloop/ent/lessonattempt"
	"github.com/adilet/learnloop/ent/lessonviewevent"
	"github.com/adilet/learnloop/ent/llmrequestevent"
	"github.com/adilet/learnloop/ent/newsitem"
	"github.com/adilet/learnloop/ent/newsquizattempt"
	"github.com/adilet/learnloop/ent/practiceattempt"
	"github.com/adilet/learnloop/ent/quiz"
	"github.com/adilet/learnloop/ent/quizattempt"
	"github.com/adilet/learnloop/ent/schema"
	"github.com/adilet/learnloop/ent/userbadge"
	"github.com/adilet/learnloop/ent/userprofile"
	"github.com/adilet/learnloop/ent/userstats"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aitermFields := schema.AITerm{}.Fields()
	_ = aitermFields
	// aitermDescTerm is the schema descriptor for term field.
	aitermDescTerm := aitermFields[1].Descriptor()
	// aiterm.TermValidator is a validator for the "term" field. It is called by the builders before save.
	aiterm.TermValidator = aitermDescTerm.Validators[0].(func(string) error)
	// aitermDescDefinition is the schema descriptor for definition field.
	aitermDescDefinition := aitermFields[2].Descriptor()
	// aiterm.DefinitionValidator is a validator for the "definition" field. It is called by the builders before save.
	aiterm.DefinitionValidator = aitermDescDefinition.Validators[0].(func(string) error)
	// aitermDescCategory is the schema descriptor for category field.
	aitermDescCategory := aitermFields[3].Descriptor()
	// aiterm.DefaultCategory holds the default value on creation for the category field.
	aiterm.DefaultCategory = aitermDescCategory.Default.(string)
	// aitermDescDifficulty is the schema descriptor for difficulty field.
	aitermDescDifficulty := aitermFields[4].Descriptor()
	// aiterm.DefaultDifficulty holds the default value on creation for the difficulty field.
	aiterm.DefaultDifficulty = aitermDescDifficulty.Default.(string)
	// aitermDescID is the schema descriptor for id field.
	aitermDescID := aitermFields[0].Descriptor()
	// aiterm.DefaultID holds the default value on creation for the id field.
	aiterm.DefaultID = aitermDescID.Default.(func() uuid.UUID)
	certificateFields := schema.Certificate{}.Fields()
	_ = certificateFields
	// certificateDescUserID is the schema descriptor for user_id field.
	certificateDescUserID := certificateFields[1].Descriptor()
	// certificate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	certificate.UserIDValidator = certificateDescUserID.Validators[0].(func(string) error)
	// certificateDescCode is the schema descriptor for code field.
	certificateDescCode := certificateFields[3].Descriptor()
	// certificate.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	certificate.CodeValidator = certificateDescCode.Validators[0].(func(string) error)
	// certificateDescIssuedAt is the schema descriptor for issued_at field.
	certificateDescIssuedAt := certificateFields[4].Descriptor()
	// certificate.DefaultIssuedAt holds the default value on creation for the issued_at field.
	certificate.DefaultIssuedAt = certificateDescIssuedAt.Default.(func() time.Time)
	// certificateDescID is the schema descriptor for id field.
	certificateDescID := certificateFields[0].Descriptor()
	// certificate.DefaultID holds the default value on creation for the id field.
	certificate.DefaultID = certificateDescID.Default.(func() uuid.UUID)
	examFields := schema.Exam{}.Fields()
	_ = examFields
	// examDescTitle is the schema descriptor for title field.
	examDescTitle := examFields[1].Descriptor()
	// exam.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	exam.TitleValidator = examDescTitle.Validators[0].(func(string) error)
	// examDescCreatedAt is the schema descriptor for created_at field.
	examDescCreatedAt := examFields[4].Descriptor()
	// exam.DefaultCreatedAt holds the default value on creation for the created_at field.
	exam.DefaultCreatedAt = examDescCreatedAt.Default.(func() time.Time)
	// examDescID is the schema descriptor for id field.
	examDescID := examFields[0].Descriptor()
	// exam.DefaultID holds the default value on creation for the id field.
	exam.DefaultID = examDescID.Default.(func() uuid.UUID)
	examattemptMixin := schema.ExamAttempt{}.Mixin()
	examattemptMixinFields0 := examattemptMixin[0].Fields()
	_ = examattemptMixinFields0
	examattemptFields := schema.ExamAttempt{}.Fields()
	_ = examattemptFields
	// examattemptDescUserID is the schema descriptor for user_id field.
	examattemptDescUserID := examattemptMixinFields0[1].Descriptor()
	// examattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	examattempt.UserIDValidator = examattemptDescUserID.Validators[0].(func(string) error)
	// examattemptDescCreatedAt is the schema descriptor for created_at field.
	examattemptDescCreatedAt := examattemptMixinFields0[2].Descriptor()
	// examattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	examattempt.DefaultCreatedAt = examattemptDescCreatedAt.Default.(func() time.Time)
	// examattemptDescID is the schema descriptor for id field.
	examattemptDescID := examattemptMixinFields0[0].Descriptor()
	// examattempt.DefaultID holds the default value on creation for the id field.
	examattempt.DefaultID = examattemptDescID.Default.(func() uuid.UUID)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescTopic is the schema descriptor for topic field.
	lessonDescTopic := lessonFields[1].Descriptor()
	// lesson.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	lesson.TopicValidator = lessonDescTopic.Validators[0].(func(string) error)
	// lessonDescLevel is the schema descriptor for level field.
	lessonDescLevel := lessonFields[2].Descriptor()
	// lesson.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	lesson.LevelValidator = lessonDescLevel.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[3].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescExplanation is the schema descriptor for explanation field.
	lessonDescExplanation := lessonFields[4].Descriptor()
	// lesson.ExplanationValidator is a validator for the "explanation" field. It is called by the builders before save.
	lesson.ExplanationValidator = lessonDescExplanation.Validators[0].(func(string) error)
	// lessonDescAnalogy is the schema descriptor for analogy field.
	lessonDescAnalogy := lessonFields[5].Descriptor()
	// lesson.AnalogyValidator is a validator for the "analogy" field. It is called by the builders before save.
	lesson.AnalogyValidator = lessonDescAnalogy.Validators[0].(func(string) error)
	// lessonDescKeyTakeaway is the schema descriptor for key_takeaway field.
	lessonDescKeyTakeaway := lessonFields[6].Descriptor()
	// lesson.KeyTakeawayValidator is a validator for the "key_takeaway" field. It is called by the builders before save.
	lesson.KeyTakeawayValidator = lessonDescKeyTakeaway.Validators[0].(func(string) error)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[7].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.DefaultID holds the default value on creation for the id field.
	lesson.DefaultID = lessonDescID.Default.(func() uuid.UUID)
	lessonattemptMixin := schema.LessonAttempt{}.Mixin()
	lessonattemptMixinFields0 := lessonattemptMixin[0].Fields()
	_ = lessonattemptMixinFields0
	lessonattemptFields := schema.LessonAttempt{}.Fields()
	_ = lessonattemptFields
	// lessonattemptDescUserID is the schema descriptor for user_id field.
	lessonattemptDescUserID := lessonattemptMixinFields0[1].Descriptor()
	// lessonattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	lessonattempt.UserIDValidator = lessonattemptDescUserID.Validators[0].(func(string) error)
	// lessonattemptDescCreatedAt is the schema descriptor for created_at field.
	lessonattemptDescCreatedAt := lessonattemptMixinFields0[2].Descriptor()
	// lessonattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonattempt.DefaultCreatedAt = lessonattemptDescCreatedAt.Default.(func() time.Time)
	// lessonattemptDescID is the schema descriptor for id field.
	lessonattemptDescID := lessonattemptMixinFields0[0].Descriptor()
	// lessonattempt.DefaultID holds the default value on creation for the id field.
	lessonattempt.DefaultID = lessonattemptDescID.Default.(func() uuid.UUID)
	lessonvieweventFields := schema.LessonViewEvent{}.Fields()
	_ = lessonvieweventFields
	// lessonvieweventDescUserID is the schema descriptor for user_id field.
	lessonvieweventDescUserID := lessonvieweventFields[0].Descriptor()
	// lessonviewevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	lessonviewevent.UserIDValidator = lessonvieweventDescUserID.Validators[0].(func(string) error)
	// lessonvieweventDescCreatedAt is the schema descriptor for created_at field.
	lessonvieweventDescCreatedAt := lessonvieweventFields[2].Descriptor()
	// lessonviewevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonviewevent.DefaultCreatedAt = lessonvieweventDescCreatedAt.Default.(func() time.Time)
	newsitemFields := schema.NewsItem{}.Fields()
	_ = newsitemFields
	// newsitemDescPublishedDate is the schema descriptor for published_date field.
	newsitemDescPublishedDate := newsitemFields[1].Descriptor()
	// newsitem.PublishedDateValidator is a validator for the "published_date" field. It is called by the builders before save.
	newsitem.PublishedDateValidator = newsitemDescPublishedDate.Validators[0].(func(string) error)
	// newsitemDescSource is the schema descriptor for source field.
	newsitemDescSource := newsitemFields[2].Descriptor()
	// newsitem.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	newsitem.SourceValidator = newsitemDescSource.Validators[0].(func(string) error)
	// newsitemDescTitle is the schema descriptor for title field.
	newsitemDescTitle := newsitemFields[3].Descriptor()
	// newsitem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	newsitem.TitleValidator = newsitemDescTitle.Validators[0].(func(string) error)
	// newsitemDescWhatHappened is the schema descriptor for what_happened field.
	newsitemDescWhatHappened := newsitemFields[5].Descriptor()
	// newsitem.WhatHappenedValidator is a validator for the "what_happened" field. It is called by the builders before save.
	newsitem.WhatHappenedValidator = newsitemDescWhatHappened.Validators[0].(func(string) error)
	// newsitemDescWhyItMatters is the schema descriptor for why_it_matters field.
	newsitemDescWhyItMatters := newsitemFields[6].Descriptor()
	// newsitem.WhyItMattersValidator is a validator for the "why_it_matters" field. It is called by the builders before save.
	newsitem.WhyItMattersValidator = newsitemDescWhyItMatters.Validators[0].(func(string) error)
	// newsitemDescCreatedAt is the schema descriptor for created_at field.
	newsitemDescCreatedAt := newsitemFields[10].Descriptor()
	// newsitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	newsitem.DefaultCreatedAt = newsitemDescCreatedAt.Default.(func() time.Time)
	// newsitemDescID is the schema descriptor for id field.
	newsitemDescID := newsitemFields[0].Descriptor()
	// newsitem.DefaultID holds the default value on creation for the id field.
	newsitem.DefaultID = newsitemDescID.Default.(func() uuid.UUID)
	newsquizattemptMixin := schema.NewsQuizAttempt{}.Mixin()
	newsquizattemptMixinFields0 := newsquizattemptMixin[0].Fields()
	_ = newsquizattemptMixinFields0
	newsquizattemptFields := schema.NewsQuizAttempt{}.Fields()
	_ = newsquizattemptFields
	// newsquizattemptDescUserID is the schema descriptor for user_id field.
	newsquizattemptDescUserID := newsquizattemptMixinFields0[1].Descriptor()
	// newsquizattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	newsquizattempt.UserIDValidator = newsquizattemptDescUserID.Validators[0].(func(string) error)
	// newsquizattemptDescCreatedAt is the schema descriptor for created_at field.
	newsquizattemptDescCreatedAt := newsquizattemptMixinFields0[2].Descriptor()
	// newsquizattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	newsquizattempt.DefaultCreatedAt = newsquizattemptDescCreatedAt.Default.(func() time.Time)
	// newsquizattemptDescID is the schema descriptor for id field.
	newsquizattemptDescID := newsquizattemptMixinFields0[0].Descriptor()
	// newsquizattempt.DefaultID holds the default value on creation for the id field.
	newsquizattempt.DefaultID = newsquizattemptDescID.Default.(func() uuid.UUID)
	practiceattemptMixin := schema.PracticeAttempt{}.Mixin()
	practiceattemptMixinFields0 := practiceattemptMixin[0].Fields()
	_ = practiceattemptMixinFields0
	practiceattemptFields := schema.PracticeAttempt{}.Fields()
	_ = practiceattemptFields
	// practiceattemptDescUserID is the schema descriptor for user_id field.
	practiceattemptDescUserID := practiceattemptMixinFields0[1].Descriptor()
	// practiceattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	practiceattempt.UserIDValidator = practiceattemptDescUserID.Validators[0].(func(string) error)
	// practiceattemptDescCreatedAt is the schema descriptor for created_at field.
	practiceattemptDescCreatedAt := practiceattemptMixinFields0[2].Descriptor()
	// practiceattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	practiceattempt.DefaultCreatedAt = practiceattemptDescCreatedAt.Default.(func() time.Time)
	// practiceattemptDescTask is the schema descriptor for task field.
	practiceattemptDescTask := practiceattemptFields[0].Descriptor()
	// practiceattempt.TaskValidator is a validator for the "task" field. It is called by the builders before save.
	practiceattempt.TaskValidator = practiceattemptDescTask.Validators[0].(func(string) error)
	// practiceattemptDescUserPrompt is the schema descriptor for user_prompt field.
	practiceattemptDescUserPrompt := practiceattemptFields[1].Descriptor()
	// practiceattempt.UserPromptValidator is a validator for the "user_prompt" field. It is called by the builders before save.
	practiceattempt.UserPromptValidator = practiceattemptDescUserPrompt.Validators[0].(func(string) error)
	// practiceattemptDescID is the schema descriptor for id field.
	practiceattemptDescID := practiceattemptMixinFields0[0].Descriptor()
	// practiceattempt.DefaultID holds the default value on creation for the id field.
	practiceattempt.DefaultID = practiceattemptDescID.Default.(func() uuid.UUID)
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescCreatedAt is the schema descriptor for created_at field.
	quizDescCreatedAt := quizFields[3].Descriptor()
	// quiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	quiz.DefaultCreatedAt = quizDescCreatedAt.Default.(func() time.Time)
	// quizDescID is the schema descriptor for id field.
	quizDescID := quizFields[0].Descriptor()
	// quiz.DefaultID holds the default value on creation for the id field.
	quiz.DefaultID = quizDescID.Default.(func() uuid.UUID)
	quizattemptMixin := schema.QuizAttempt{}.Mixin()
	quizattemptMixinFields0 := quizattemptMixin[0].Fields()
	_ = quizattemptMixinFields0
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescUserID is the schema descriptor for user_id field.
	quizattemptDescUserID := quizattemptMixinFields0[1].Descriptor()
	// quizattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizattempt.UserIDValidator = quizattemptDescUserID.Validators[0].(func(string) error)
	// quizattemptDescCreatedAt is the schema descriptor for created_at field.
	quizattemptDescCreatedAt := quizattemptMixinFields0[2].Descriptor()
	// quizattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizattempt.DefaultCreatedAt = quizattemptDescCreatedAt.Default.(func() time.Time)
	// quizattemptDescID is the schema descriptor for id field.
	quizattemptDescID := quizattemptMixinFields0[0].Descriptor()
	// quizattempt.DefaultID holds the default value on creation for the id field.
	quizattempt.DefaultID = quizattemptDescID.Default.(func() uuid.UUID)
	userbadgeFields := schema.UserBadge{}.Fields()
	_ = userbadgeFields
	// userbadgeDescUserID is the schema descriptor for user_id field.
	userbadgeDescUserID := userbadgeFields[1].Descriptor()
	// userbadge.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userbadge.UserIDValidator = userbadgeDescUserID.Validators[0].(func(string) error)
	// userbadgeDescBadgeKey is the schema descriptor for badge_key field.
	userbadgeDescBadgeKey := userbadgeFields[2].Descriptor()
	// userbadge.BadgeKeyValidator is a validator for the "badge_key" field. It is called by the builders before save.
	userbadge.BadgeKeyValidator = userbadgeDescBadgeKey.Validators[0].(func(string) error)
	// userbadgeDescBadgeTitle is the schema descriptor for badge_title field.
	userbadgeDescBadgeTitle := userbadgeFields[3].Descriptor()
	// userbadge.BadgeTitleValidator is a validator for the "badge_title" field. It is called by the builders before save.
	userbadge.BadgeTitleValidator = userbadgeDescBadgeTitle.Validators[0].(func(string) error)
	// userbadgeDescBadgeDescription is the schema descriptor for badge_description field.
	userbadgeDescBadgeDescription := userbadgeFields[4].Descriptor()
	// userbadge.DefaultBadgeDescription holds the default value on creation for the badge_description field.
	userbadge.DefaultBadgeDescription = userbadgeDescBadgeDescription.Default.(string)
	// userbadgeDescEarnedAt is the schema descriptor for earned_at field.
	userbadgeDescEarnedAt := userbadgeFields[5].Descriptor()
	// userbadge.DefaultEarnedAt holds the default value on creation for the earned_at field.
	userbadge.DefaultEarnedAt = userbadgeDescEarnedAt.Default.(func() time.Time)
	// userbadgeDescID is the schema descriptor for id field.
	userbadgeDescID := userbadgeFields[0].Descriptor()
	// userbadge.DefaultID holds the default value on creation for the id field.
	userbadge.DefaultID = userbadgeDescID.Default.(func() uuid.UUID)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescUserID is the schema descriptor for user_id field.
	userprofileDescUserID := userprofileFields[1].Descriptor()
	// userprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprofile.UserIDValidator = userprofileDescUserID.Validators[0].(func(string) error)
	// userprofileDescUpdatedAt is the schema descriptor for updated_at field.
	userprofileDescUpdatedAt := userprofileFields[6].Descriptor()
	// userprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprofile.DefaultUpdatedAt = userprofileDescUpdatedAt.Default.(func() time.Time)
	// userprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprofile.UpdateDefaultUpdatedAt = userprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userprofileDescID is the schema descriptor for id field.
	userprofileDescID := userprofileFields[0].Descriptor()
	// userprofile.DefaultID holds the default value on creation for the id field.
	userprofile.DefaultID = userprofileDescID.Default.(func() uuid.UUID)
	userstatsFields := schema.UserStats{}.Fields()
	_ = userstatsFields
	// userstatsDescUserID is the schema descriptor for user_id field.
	userstatsDescUserID := userstatsFields[1].Descriptor()
	// userstats.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userstats.UserIDValidator = userstatsDescUserID.Validators[0].(func(string) error)
	// userstatsDescXpTotal is the schema descriptor for xp_total field.
	userstatsDescXpTotal := userstatsFields[2].Descriptor()
	// userstats.DefaultXpTotal holds the default value on creation for the xp_total field.
	userstats.DefaultXpTotal = userstatsDescXpTotal.Default.(int)
	// userstats.XpTotalValidator is a validator for the "xp_total" field. It is called by the builders before save.
	userstats.XpTotalValidator = userstatsDescXpTotal.Validators[0].(func(int) error)
	// userstatsDescStreakDays is the schema descriptor for streak_days field.
	userstatsDescStreakDays := userstatsFields[3].Descriptor()
	// userstats.DefaultStreakDays holds the default value on creation for the streak_days field.
	userstats.DefaultStreakDays = userstatsDescStreakDays.Default.(int)
	// userstats.StreakDaysValidator is a validator for the "streak_days" field. It is called by the builders before save.
	userstats.StreakDaysValidator = userstatsDescStreakDays.Validators[0].(func(int) error)
	// userstatsDescLessonsCompleted is the schema descriptor for lessons_completed field.
	userstatsDescLessonsCompleted := userstatsFields[5].Descriptor()
	// userstats.DefaultLessonsCompleted holds the default value on creation for the lessons_completed field.
	userstats.DefaultLessonsCompleted = userstatsDescLessonsCompleted.Default.(int)
	// userstats.LessonsCompletedValidator is a validator for the "lessons_completed" field. It is called by the builders before save.
	userstats.LessonsCompletedValidator = userstatsDescLessonsCompleted.Validators[0].(func(int) error)
	// userstatsDescQuizzesCompleted is the schema descriptor for quizzes_completed field.
	userstatsDescQuizzesCompleted := userstatsFields[6].Descriptor()
	// userstats.DefaultQuizzesCompleted holds the default value on creation for the quizzes_completed field.
	userstats.DefaultQuizzesCompleted = userstatsDescQuizzesCompleted.Default.(int)
	// userstats.QuizzesCompletedValidator is a validator for the "quizzes_completed" field. It is called by the builders before save.
	userstats.QuizzesCompletedValidator = userstatsDescQuizzesCompleted.Validators[0].(func(int) error)
	// userstatsDescPracticeCompleted is the schema descriptor for practice_completed field.
	userstatsDescPracticeCompleted := userstatsFields[7].Descriptor()
	// userstats.DefaultPracticeCompleted holds the default value on creation for the practice_completed field.
	userstats.DefaultPracticeCompleted = userstatsDescPracticeCompleted.Default.(int)
	// userstats.PracticeCompletedValidator is a validator for the "practice_completed" field. It is called by the builders before save.
	userstats.PracticeCompletedValidator = userstatsDescPracticeCompleted.Validators[0].(func(int) error)
	// userstatsDescExamsAttempted is the schema descriptor for exams_attempted field.
	userstatsDescExamsAttempted := userstatsFields[8].Descriptor()
	// userstats.DefaultExamsAttempted holds the default value on creation for the exams_attempted field.
	userstats.DefaultExamsAttempted = userstatsDescExamsAttempted.Default.(int)
	// userstats.ExamsAttemptedValidator is a validator for the "exams_attempted" field. It is called by the builders before save.
	userstats.ExamsAttemptedValidator = userstatsDescExamsAttempted.Validators[0].(func(int) error)
	// userstatsDescCertificatesEarned is the schema descriptor for certificates_earned field.
	userstatsDescCertificatesEarned := userstatsFields[9].Descriptor()
	// userstats.DefaultCertificatesEarned holds the default value on creation for the certificates_earned field.
	userstats.DefaultCertificatesEarned = userstatsDescCertificatesEarned.Default.(int)
	// userstats.CertificatesEarnedValidator is a validator for the "certificates_earned" field. It is called by the builders before save.
	userstats.CertificatesEarnedValidator = userstatsDescCertificatesEarned.Validators[0].(func(int) error)
	// userstatsDescDailyMinutes is the schema descriptor for daily_minutes field.
	userstatsDescDailyMinutes := userstatsFields[10].Descriptor()
	// userstats.DefaultDailyMinutes holds the default value on creation for the daily_minutes field.
	userstats.DefaultDailyMinutes = userstatsDescDailyMinutes.Default.(int)
	// userstats.DailyMinutesValidator is a validator for the "daily_minutes" field. It is called by the builders before save.
	userstats.DailyMinutesValidator = userstatsDescDailyMinutes.Validators[0].(func(int) error)
	// userstatsDescID is the schema descriptor for id field.
	userstatsDescID := userstatsFields[0].Descriptor()
	// userstats.DefaultID holds the default value on creation for the id field.
	userstats.DefaultID = userstatsDescID.Default.(func() uuid.UUID)
}
