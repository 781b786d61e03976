// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AiTermsColumns holds the columns for the "ai_terms" table.
	AiTermsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "term", Type: field.TypeString, Unique: true},
		{Name: "definition", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
	}
	// AiTermsTable holds the schema information for the "ai_terms" table.
	AiTermsTable = &schema.Table{
		Name:       "ai_terms",
		Columns:    AiTermsColumns,
		PrimaryKey: []*schema.Column{AiTermsColumns[0]},
	}
	// CertificatesColumns holds the columns for the "certificates" table.
	CertificatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "issued_at", Type: field.TypeTime},
	}
	// CertificatesTable holds the schema information for the "certificates" table.
	CertificatesTable = &schema.Table{
		Name:       "certificates",
		Columns:    CertificatesColumns,
		PrimaryKey: []*schema.Column{CertificatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "certificate_user_id",
				Unique:  false,
				Columns: []*schema.Column{CertificatesColumns[1]},
			},
		},
	}
	// ExamsColumns holds the columns for the "exams" table.
	ExamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExamsTable holds the schema information for the "exams" table.
	ExamsTable = &schema.Table{
		Name:       "exams",
		Columns:    ExamsColumns,
		PrimaryKey: []*schema.Column{ExamsColumns[0]},
	}
	// ExamAttemptsColumns holds the columns for the "exam_attempts" table.
	ExamAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "exam_id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
	}
	// ExamAttemptsTable holds the schema information for the "exam_attempts" table.
	ExamAttemptsTable = &schema.Table{
		Name:       "exam_attempts",
		Columns:    ExamAttemptsColumns,
		PrimaryKey: []*schema.Column{ExamAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "topic", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647},
		{Name: "analogy", Type: field.TypeString, Size: 2147483647},
		{Name: "key_takeaway", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_topic_created_at",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1], LessonsColumns[7]},
			},
			{
				Name:    "lesson_topic_level",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1], LessonsColumns[2]},
			},
		},
	}
	// LessonAttemptsColumns holds the columns for the "lesson_attempts" table.
	LessonAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeInt},
	}
	// LessonAttemptsTable holds the schema information for the "lesson_attempts" table.
	LessonAttemptsTable = &schema.Table{
		Name:       "lesson_attempts",
		Columns:    LessonAttemptsColumns,
		PrimaryKey: []*schema.Column{LessonAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{LessonAttemptsColumns[1]},
			},
			{
				Name:    "lessonattempt_user_id_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonAttemptsColumns[1], LessonAttemptsColumns[3]},
			},
		},
	}
	// LessonViewEventsColumns holds the columns for the "lesson_view_events" table.
	LessonViewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonViewEventsTable holds the schema information for the "lesson_view_events" table.
	LessonViewEventsTable = &schema.Table{
		Name:       "lesson_view_events",
		Columns:    LessonViewEventsColumns,
		PrimaryKey: []*schema.Column{LessonViewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonviewevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonViewEventsColumns[2]},
			},
		},
	}
	// NewsItemsColumns holds the columns for the "news_items" table.
	NewsItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "published_date", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "what_happened", Type: field.TypeString, Size: 2147483647},
		{Name: "why_it_matters", Type: field.TypeString, Size: 2147483647},
		{Name: "term", Type: field.TypeString, Nullable: true},
		{Name: "term_explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "quiz", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NewsItemsTable holds the schema information for the "news_items" table.
	NewsItemsTable = &schema.Table{
		Name:       "news_items",
		Columns:    NewsItemsColumns,
		PrimaryKey: []*schema.Column{NewsItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "newsitem_published_date",
				Unique:  false,
				Columns: []*schema.Column{NewsItemsColumns[1]},
			},
			{
				Name:    "newsitem_published_date_title",
				Unique:  true,
				Columns: []*schema.Column{NewsItemsColumns[1], NewsItemsColumns[3]},
			},
		},
	}
	// NewsQuizAttemptsColumns holds the columns for the "news_quiz_attempts" table.
	NewsQuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "news_id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeInt},
	}
	// NewsQuizAttemptsTable holds the schema information for the "news_quiz_attempts" table.
	NewsQuizAttemptsTable = &schema.Table{
		Name:       "news_quiz_attempts",
		Columns:    NewsQuizAttemptsColumns,
		PrimaryKey: []*schema.Column{NewsQuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "newsquizattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{NewsQuizAttemptsColumns[1]},
			},
		},
	}
	// PracticeAttemptsColumns holds the columns for the "practice_attempts" table.
	PracticeAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task", Type: field.TypeString, Size: 2147483647},
		{Name: "user_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "feedback", Type: field.TypeJSON},
	}
	// PracticeAttemptsTable holds the schema information for the "practice_attempts" table.
	PracticeAttemptsTable = &schema.Table{
		Name:       "practice_attempts",
		Columns:    PracticeAttemptsColumns,
		PrimaryKey: []*schema.Column{PracticeAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeAttemptsColumns[1]},
			},
		},
	}
	// QuizsColumns holds the columns for the "quizs" table.
	QuizsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "lesson_id", Type: field.TypeUUID, Unique: true},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuizsTable holds the schema information for the "quizs" table.
	QuizsTable = &schema.Table{
		Name:       "quizs",
		Columns:    QuizsColumns,
		PrimaryKey: []*schema.Column{QuizsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quiz_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{QuizsColumns[1]},
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeInt},
		{Name: "answers", Type: field.TypeJSON},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[1]},
			},
		},
	}
	// UserBadgesColumns holds the columns for the "user_badges" table.
	UserBadgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "badge_key", Type: field.TypeString},
		{Name: "badge_title", Type: field.TypeString},
		{Name: "badge_description", Type: field.TypeString, Default: ""},
		{Name: "earned_at", Type: field.TypeTime},
	}
	// UserBadgesTable holds the schema information for the "user_badges" table.
	UserBadgesTable = &schema.Table{
		Name:       "user_badges",
		Columns:    UserBadgesColumns,
		PrimaryKey: []*schema.Column{UserBadgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userbadge_user_id_badge_key",
				Unique:  true,
				Columns: []*schema.Column{UserBadgesColumns[1], UserBadgesColumns[2]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString, Nullable: true},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "target_goal", Type: field.TypeString, Nullable: true},
		{Name: "skill_level", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
	}
	// UserStatsColumns holds the columns for the "user_stats" table.
	UserStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "xp_total", Type: field.TypeInt, Default: 0},
		{Name: "streak_days", Type: field.TypeInt, Default: 0},
		{Name: "last_active_date", Type: field.TypeString, Nullable: true},
		{Name: "lessons_completed", Type: field.TypeInt, Default: 0},
		{Name: "quizzes_completed", Type: field.TypeInt, Default: 0},
		{Name: "practice_completed", Type: field.TypeInt, Default: 0},
		{Name: "exams_attempted", Type: field.TypeInt, Default: 0},
		{Name: "certificates_earned", Type: field.TypeInt, Default: 0},
		{Name: "daily_minutes", Type: field.TypeInt, Default: 0},
		{Name: "last_activity_date", Type: field.TypeString, Nullable: true},
	}
	// UserStatsTable holds the schema information for the "user_stats" table.
	UserStatsTable = &schema.Table{
		Name:       "user_stats",
		Columns:    UserStatsColumns,
		PrimaryKey: []*schema.Column{UserStatsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AiTermsTable,
		CertificatesTable,
		ExamsTable,
		ExamAttemptsTable,
		LlmRequestEventsTable,
		LessonsTable,
		LessonAttemptsTable,
		LessonViewEventsTable,
		NewsItemsTable,
		NewsQuizAttemptsTable,
		PracticeAttemptsTable,
		QuizsTable,
		QuizAttemptsTable,
		UserBadgesTable,
		UserProfilesTable,
		UserStatsTable,
	}
)

func init() {
}
