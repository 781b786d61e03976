// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/adilet/learnloop/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
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
	"github.com/adilet/learnloop/ent/userbadge"
	"github.com/adilet/learnloop/ent/userprofile"
	"github.com/adilet/learnloop/ent/userstats"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AITerm is the client for interacting with the AITerm builders.
	AITerm *AITermClient
	// Certificate is the client for interacting with the Certificate builders.
	Certificate *CertificateClient
	// Exam is the client for interacting with the Exam builders.
	Exam *ExamClient
	// ExamAttempt is the client for interacting with the ExamAttempt builders.
	ExamAttempt *ExamAttemptClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Lesson is the client for interacting with the Lesson builders.
	Lesson *LessonClient
	// LessonAttempt is the client for interacting with the LessonAttempt builders.
	LessonAttempt *LessonAttemptClient
	// LessonViewEvent is the client for interacting with the LessonViewEvent builders.
	LessonViewEvent *LessonViewEventClient
	// NewsItem is the client for interacting with the NewsItem builders.
	NewsItem *NewsItemClient
	// NewsQuizAttempt is the client for interacting with the NewsQuizAttempt builders.
	NewsQuizAttempt *NewsQuizAttemptClient
	// PracticeAttempt is the client for interacting with the PracticeAttempt builders.
	PracticeAttempt *PracticeAttemptClient
	// Quiz is the client for interacting with the Quiz builders.
	Quiz *QuizClient
	// QuizAttempt is the client for interacting with the QuizAttempt builders.
	QuizAttempt *QuizAttemptClient
	// UserBadge is the client for interacting with the UserBadge builders.
	UserBadge *UserBadgeClient
	// UserProfile is the client for interacting with the UserProfile builders.
	UserProfile *UserProfileClient
	// UserStats is the client for interacting with the UserStats builders.
	UserStats *UserStatsClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AITerm = NewAITermClient(c.config)
	c.Certificate = NewCertificateClient(c.config)
	c.Exam = NewExamClient(c.config)
	c.ExamAttempt = NewExamAttemptClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Lesson = NewLessonClient(c.config)
	c.LessonAttempt = NewLessonAttemptClient(c.config)
	c.LessonViewEvent = NewLessonViewEventClient(c.config)
	c.NewsItem = NewNewsItemClient(c.config)
	c.NewsQuizAttempt = NewNewsQuizAttemptClient(c.config)
	c.PracticeAttempt = NewPracticeAttemptClient(c.config)
	c.Quiz = NewQuizClient(c.config)
	c.QuizAttempt = NewQuizAttemptClient(c.config)
	c.UserBadge = NewUserBadgeClient(c.config)
	c.UserProfile = NewUserProfileClient(c.config)
	c.UserStats = NewUserStatsClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AITerm:          NewAITermClient(cfg),
		Certificate:     NewCertificateClient(cfg),
		Exam:            NewExamClient(cfg),
		ExamAttempt:     NewExamAttemptClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Lesson:          NewLessonClient(cfg),
		LessonAttempt:   NewLessonAttemptClient(cfg),
		LessonViewEvent: NewLessonViewEventClient(cfg),
		NewsItem:        NewNewsItemClient(cfg),
		NewsQuizAttempt: NewNewsQuizAttemptClient(cfg),
		PracticeAttempt: NewPracticeAttemptClient(cfg),
		Quiz:            NewQuizClient(cfg),
		QuizAttempt:     NewQuizAttemptClient(cfg),
		UserBadge:       NewUserBadgeClient(cfg),
		UserProfile:     NewUserProfileClient(cfg),
		UserStats:       NewUserStatsClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AITerm:          NewAITermClient(cfg),
		Certificate:     NewCertificateClient(cfg),
		Exam:            NewExamClient(cfg),
		ExamAttempt:     NewExamAttemptClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Lesson:          NewLessonClient(cfg),
		LessonAttempt:   NewLessonAttemptClient(cfg),
		LessonViewEvent: NewLessonViewEventClient(cfg),
		NewsItem:        NewNewsItemClient(cfg),
		NewsQuizAttempt: NewNewsQuizAttemptClient(cfg),
		PracticeAttempt: NewPracticeAttemptClient(cfg),
		Quiz:            NewQuizClient(cfg),
		QuizAttempt:     NewQuizAttemptClient(cfg),
		UserBadge:       NewUserBadgeClient(cfg),
		UserProfile:     NewUserProfileClient(cfg),
		UserStats:       NewUserStatsClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AITerm.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AITerm, c.Certificate, c.Exam, c.ExamAttempt, c.LLMRequestEvent, c.Lesson,
		c.LessonAttempt, c.LessonViewEvent, c.NewsItem, c.NewsQuizAttempt,
		c.PracticeAttempt, c.Quiz, c.QuizAttempt, c.UserBadge, c.UserProfile,
		c.UserStats,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AITerm, c.Certificate, c.Exam, c.ExamAttempt, c.LLMRequestEvent, c.Lesson,
		c.LessonAttempt, c.LessonViewEvent, c.NewsItem, c.NewsQuizAttempt,
		c.PracticeAttempt, c.Quiz, c.QuizAttempt, c.UserBadge, c.UserProfile,
		c.UserStats,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AITermMutation:
		return c.AITerm.mutate(ctx, m)
	case *CertificateMutation:
		return c.Certificate.mutate(ctx, m)
	case *ExamMutation:
		return c.Exam.mutate(ctx, m)
	case *ExamAttemptMutation:
		return c.ExamAttempt.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LessonMutation:
		return c.Lesson.mutate(ctx, m)
	case *LessonAttemptMutation:
		return c.LessonAttempt.mutate(ctx, m)
	case *LessonViewEventMutation:
		return c.LessonViewEvent.mutate(ctx, m)
	case *NewsItemMutation:
		return c.NewsItem.mutate(ctx, m)
	case *NewsQuizAttemptMutation:
		return c.NewsQuizAttempt.mutate(ctx, m)
	case *PracticeAttemptMutation:
		return c.PracticeAttempt.mutate(ctx, m)
	case *QuizMutation:
		return c.Quiz.mutate(ctx, m)
	case *QuizAttemptMutation:
		return c.QuizAttempt.mutate(ctx, m)
	case *UserBadgeMutation:
		return c.UserBadge.mutate(ctx, m)
	case *UserProfileMutation:
		return c.UserProfile.mutate(ctx, m)
	case *UserStatsMutation:
		return c.UserStats.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AITermClient is a client for the AITerm schema.
type AITermClient struct {
	config
}

// NewAITermClient returns a client for the AITerm from the given config.
func NewAITermClient(c config) *AITermClient {
	return &AITermClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `aiterm.Hooks(f(g(h())))`.
func (c *AITermClient) Use(hooks ...Hook) {
	c.hooks.AITerm = append(c.hooks.AITerm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `aiterm.Intercept(f(g(h())))`.
func (c *AITermClient) Intercept(interceptors ...Interceptor) {
	c.inters.AITerm = append(c.inters.AITerm, interceptors...)
}

// Create returns a builder for creating a AITerm entity.
func (c *AITermClient) Create() *AITermCreate {
	mutation := newAITermMutation(c.config, OpCreate)
	return &AITermCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AITerm entities.
func (c *AITermClient) CreateBulk(builders ...*AITermCreate) *AITermCreateBulk {
	return &AITermCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AITermClient) MapCreateBulk(slice any, setFunc func(*AITermCreate, int)) *AITermCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AITermCreateBulk{err: fmt.Errorf("calling to AITermClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AITermCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AITermCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AITerm.
func (c *AITermClient) Update() *AITermUpdate {
	mutation := newAITermMutation(c.config, OpUpdate)
	return &AITermUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AITermClient) UpdateOne(_m *AITerm) *AITermUpdateOne {
	mutation := newAITermMutation(c.config, OpUpdateOne, withAITerm(_m))
	return &AITermUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AITermClient) UpdateOneID(id uuid.UUID) *AITermUpdateOne {
	mutation := newAITermMutation(c.config, OpUpdateOne, withAITermID(id))
	return &AITermUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AITerm.
func (c *AITermClient) Delete() *AITermDelete {
	mutation := newAITermMutation(c.config, OpDelete)
	return &AITermDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AITermClient) DeleteOne(_m *AITerm) *AITermDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AITermClient) DeleteOneID(id uuid.UUID) *AITermDeleteOne {
	builder := c.Delete().Where(aiterm.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AITermDeleteOne{builder}
}

// Query returns a query builder for AITerm.
func (c *AITermClient) Query() *AITermQuery {
	return &AITermQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAITerm},
		inters: c.Interceptors(),
	}
}

// Get returns a AITerm entity by its id.
func (c *AITermClient) Get(ctx context.Context, id uuid.UUID) (*AITerm, error) {
	return c.Query().Where(aiterm.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AITermClient) GetX(ctx context.Context, id uuid.UUID) *AITerm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AITermClient) Hooks() []Hook {
	return c.hooks.AITerm
}

// Interceptors returns the client interceptors.
func (c *AITermClient) Interceptors() []Interceptor {
	return c.inters.AITerm
}

func (c *AITermClient) mutate(ctx context.Context, m *AITermMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AITermCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AITermUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AITermUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AITermDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AITerm mutation op: %q", m.Op())
	}
}

// CertificateClient is a client for the Certificate schema.
type CertificateClient struct {
	config
}

// NewCertificateClient returns a client for the Certificate from the given config.
func NewCertificateClient(c config) *CertificateClient {
	return &CertificateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `certificate.Hooks(f(g(h())))`.
func (c *CertificateClient) Use(hooks ...Hook) {
	c.hooks.Certificate = append(c.hooks.Certificate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `certificate.Intercept(f(g(h())))`.
func (c *CertificateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Certificate = append(c.inters.Certificate, interceptors...)
}

// Create returns a builder for creating a Certificate entity.
func (c *CertificateClient) Create() *CertificateCreate {
	mutation := newCertificateMutation(c.config, OpCreate)
	return &CertificateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Certificate entities.
func (c *CertificateClient) CreateBulk(builders ...*CertificateCreate) *CertificateCreateBulk {
	return &CertificateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CertificateClient) MapCreateBulk(slice any, setFunc func(*CertificateCreate, int)) *CertificateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CertificateCreateBulk{err: fmt.Errorf("calling to CertificateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CertificateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CertificateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Certificate.
func (c *CertificateClient) Update() *CertificateUpdate {
	mutation := newCertificateMutation(c.config, OpUpdate)
	return &CertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CertificateClient) UpdateOne(_m *Certificate) *CertificateUpdateOne {
	mutation := newCertificateMutation(c.config, OpUpdateOne, withCertificate(_m))
	return &CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CertificateClient) UpdateOneID(id uuid.UUID) *CertificateUpdateOne {
	mutation := newCertificateMutation(c.config, OpUpdateOne, withCertificateID(id))
	return &CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Certificate.
func (c *CertificateClient) Delete() *CertificateDelete {
	mutation := newCertificateMutation(c.config, OpDelete)
	return &CertificateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CertificateClient) DeleteOne(_m *Certificate) *CertificateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CertificateClient) DeleteOneID(id uuid.UUID) *CertificateDeleteOne {
	builder := c.Delete().Where(certificate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CertificateDeleteOne{builder}
}

// Query returns a query builder for Certificate.
func (c *CertificateClient) Query() *CertificateQuery {
	return &CertificateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCertificate},
		inters: c.Interceptors(),
	}
}

// Get returns a Certificate entity by its id.
func (c *CertificateClient) Get(ctx context.Context, id uuid.UUID) (*Certificate, error) {
	return c.Query().Where(certificate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CertificateClient) GetX(ctx context.Context, id uuid.UUID) *Certificate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CertificateClient) Hooks() []Hook {
	return c.hooks.Certificate
}

// Interceptors returns the client interceptors.
func (c *CertificateClient) Interceptors() []Interceptor {
	return c.inters.Certificate
}

func (c *CertificateClient) mutate(ctx context.Context, m *CertificateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CertificateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CertificateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Certificate mutation op: %q", m.Op())
	}
}

// ExamClient is a client for the Exam schema.
type ExamClient struct {
	config
}

// NewExamClient returns a client for the Exam from the given config.
func NewExamClient(c config) *ExamClient {
	return &ExamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exam.Hooks(f(g(h())))`.
func (c *ExamClient) Use(hooks ...Hook) {
	c.hooks.Exam = append(c.hooks.Exam, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exam.Intercept(f(g(h())))`.
func (c *ExamClient) Intercept(interceptors ...Interceptor) {
	c.inters.Exam = append(c.inters.Exam, interceptors...)
}

// Create returns a builder for creating a Exam entity.
func (c *ExamClient) Create() *ExamCreate {
	mutation := newExamMutation(c.config, OpCreate)
	return &ExamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Exam entities.
func (c *ExamClient) CreateBulk(builders ...*ExamCreate) *ExamCreateBulk {
	return &ExamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamClient) MapCreateBulk(slice any, setFunc func(*ExamCreate, int)) *ExamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamCreateBulk{err: fmt.Errorf("calling to ExamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Exam.
func (c *ExamClient) Update() *ExamUpdate {
	mutation := newExamMutation(c.config, OpUpdate)
	return &ExamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamClient) UpdateOne(_m *Exam) *ExamUpdateOne {
	mutation := newExamMutation(c.config, OpUpdateOne, withExam(_m))
	return &ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamClient) UpdateOneID(id uuid.UUID) *ExamUpdateOne {
	mutation := newExamMutation(c.config, OpUpdateOne, withExamID(id))
	return &ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Exam.
func (c *ExamClient) Delete() *ExamDelete {
	mutation := newExamMutation(c.config, OpDelete)
	return &ExamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamClient) DeleteOne(_m *Exam) *ExamDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamClient) DeleteOneID(id uuid.UUID) *ExamDeleteOne {
	builder := c.Delete().Where(exam.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamDeleteOne{builder}
}

// Query returns a query builder for Exam.
func (c *ExamClient) Query() *ExamQuery {
	return &ExamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExam},
		inters: c.Interceptors(),
	}
}

// Get returns a Exam entity by its id.
func (c *ExamClient) Get(ctx context.Context, id uuid.UUID) (*Exam, error) {
	return c.Query().Where(exam.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamClient) GetX(ctx context.Context, id uuid.UUID) *Exam {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamClient) Hooks() []Hook {
	return c.hooks.Exam
}

// Interceptors returns the client interceptors.
func (c *ExamClient) Interceptors() []Interceptor {
	return c.inters.Exam
}

func (c *ExamClient) mutate(ctx context.Context, m *ExamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Exam mutation op: %q", m.Op())
	}
}

// ExamAttemptClient is a client for the ExamAttempt schema.
type ExamAttemptClient struct {
	config
}

// NewExamAttemptClient returns a client for the ExamAttempt from the given config.
func NewExamAttemptClient(c config) *ExamAttemptClient {
	return &ExamAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examattempt.Hooks(f(g(h())))`.
func (c *ExamAttemptClient) Use(hooks ...Hook) {
	c.hooks.ExamAttempt = append(c.hooks.ExamAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examattempt.Intercept(f(g(h())))`.
func (c *ExamAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamAttempt = append(c.inters.ExamAttempt, interceptors...)
}

// Create returns a builder for creating a ExamAttempt entity.
func (c *ExamAttemptClient) Create() *ExamAttemptCreate {
	mutation := newExamAttemptMutation(c.config, OpCreate)
	return &ExamAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamAttempt entities.
func (c *ExamAttemptClient) CreateBulk(builders ...*ExamAttemptCreate) *ExamAttemptCreateBulk {
	return &ExamAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamAttemptClient) MapCreateBulk(slice any, setFunc func(*ExamAttemptCreate, int)) *ExamAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamAttemptCreateBulk{err: fmt.Errorf("calling to ExamAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamAttempt.
func (c *ExamAttemptClient) Update() *ExamAttemptUpdate {
	mutation := newExamAttemptMutation(c.config, OpUpdate)
	return &ExamAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamAttemptClient) UpdateOne(_m *ExamAttempt) *ExamAttemptUpdateOne {
	mutation := newExamAttemptMutation(c.config, OpUpdateOne, withExamAttempt(_m))
	return &ExamAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamAttemptClient) UpdateOneID(id uuid.UUID) *ExamAttemptUpdateOne {
	mutation := newExamAttemptMutation(c.config, OpUpdateOne, withExamAttemptID(id))
	return &ExamAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamAttempt.
func (c *ExamAttemptClient) Delete() *ExamAttemptDelete {
	mutation := newExamAttemptMutation(c.config, OpDelete)
	return &ExamAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamAttemptClient) DeleteOne(_m *ExamAttempt) *ExamAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamAttemptClient) DeleteOneID(id uuid.UUID) *ExamAttemptDeleteOne {
	builder := c.Delete().Where(examattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamAttemptDeleteOne{builder}
}

// Query returns a query builder for ExamAttempt.
func (c *ExamAttemptClient) Query() *ExamAttemptQuery {
	return &ExamAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamAttempt entity by its id.
func (c *ExamAttemptClient) Get(ctx context.Context, id uuid.UUID) (*ExamAttempt, error) {
	return c.Query().Where(examattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamAttemptClient) GetX(ctx context.Context, id uuid.UUID) *ExamAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamAttemptClient) Hooks() []Hook {
	return c.hooks.ExamAttempt
}

// Interceptors returns the client interceptors.
func (c *ExamAttemptClient) Interceptors() []Interceptor {
	return c.inters.ExamAttempt
}

func (c *ExamAttemptClient) mutate(ctx context.Context, m *ExamAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamAttempt mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LessonClient is a client for the Lesson schema.
type LessonClient struct {
	config
}

// NewLessonClient returns a client for the Lesson from the given config.
func NewLessonClient(c config) *LessonClient {
	return &LessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lesson.Hooks(f(g(h())))`.
func (c *LessonClient) Use(hooks ...Hook) {
	c.hooks.Lesson = append(c.hooks.Lesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lesson.Intercept(f(g(h())))`.
func (c *LessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lesson = append(c.inters.Lesson, interceptors...)
}

// Create returns a builder for creating a Lesson entity.
func (c *LessonClient) Create() *LessonCreate {
	mutation := newLessonMutation(c.config, OpCreate)
	return &LessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lesson entities.
func (c *LessonClient) CreateBulk(builders ...*LessonCreate) *LessonCreateBulk {
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonClient) MapCreateBulk(slice any, setFunc func(*LessonCreate, int)) *LessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCreateBulk{err: fmt.Errorf("calling to LessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lesson.
func (c *LessonClient) Update() *LessonUpdate {
	mutation := newLessonMutation(c.config, OpUpdate)
	return &LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonClient) UpdateOne(_m *Lesson) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLesson(_m))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonClient) UpdateOneID(id uuid.UUID) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLessonID(id))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lesson.
func (c *LessonClient) Delete() *LessonDelete {
	mutation := newLessonMutation(c.config, OpDelete)
	return &LessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonClient) DeleteOne(_m *Lesson) *LessonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonClient) DeleteOneID(id uuid.UUID) *LessonDeleteOne {
	builder := c.Delete().Where(lesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonDeleteOne{builder}
}

// Query returns a query builder for Lesson.
func (c *LessonClient) Query() *LessonQuery {
	return &LessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a Lesson entity by its id.
func (c *LessonClient) Get(ctx context.Context, id uuid.UUID) (*Lesson, error) {
	return c.Query().Where(lesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonClient) GetX(ctx context.Context, id uuid.UUID) *Lesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonClient) Hooks() []Hook {
	return c.hooks.Lesson
}

// Interceptors returns the client interceptors.
func (c *LessonClient) Interceptors() []Interceptor {
	return c.inters.Lesson
}

func (c *LessonClient) mutate(ctx context.Context, m *LessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lesson mutation op: %q", m.Op())
	}
}

// LessonAttemptClient is a client for the LessonAttempt schema.
type LessonAttemptClient struct {
	config
}

// NewLessonAttemptClient returns a client for the LessonAttempt from the given config.
func NewLessonAttemptClient(c config) *LessonAttemptClient {
	return &LessonAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonattempt.Hooks(f(g(h())))`.
func (c *LessonAttemptClient) Use(hooks ...Hook) {
	c.hooks.LessonAttempt = append(c.hooks.LessonAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonattempt.Intercept(f(g(h())))`.
func (c *LessonAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonAttempt = append(c.inters.LessonAttempt, interceptors...)
}

// Create returns a builder for creating a LessonAttempt entity.
func (c *LessonAttemptClient) Create() *LessonAttemptCreate {
	mutation := newLessonAttemptMutation(c.config, OpCreate)
	return &LessonAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonAttempt entities.
func (c *LessonAttemptClient) CreateBulk(builders ...*LessonAttemptCreate) *LessonAttemptCreateBulk {
	return &LessonAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonAttemptClient) MapCreateBulk(slice any, setFunc func(*LessonAttemptCreate, int)) *LessonAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonAttemptCreateBulk{err: fmt.Errorf("calling to LessonAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonAttempt.
func (c *LessonAttemptClient) Update() *LessonAttemptUpdate {
	mutation := newLessonAttemptMutation(c.config, OpUpdate)
	return &LessonAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonAttemptClient) UpdateOne(_m *LessonAttempt) *LessonAttemptUpdateOne {
	mutation := newLessonAttemptMutation(c.config, OpUpdateOne, withLessonAttempt(_m))
	return &LessonAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonAttemptClient) UpdateOneID(id uuid.UUID) *LessonAttemptUpdateOne {
	mutation := newLessonAttemptMutation(c.config, OpUpdateOne, withLessonAttemptID(id))
	return &LessonAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonAttempt.
func (c *LessonAttemptClient) Delete() *LessonAttemptDelete {
	mutation := newLessonAttemptMutation(c.config, OpDelete)
	return &LessonAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonAttemptClient) DeleteOne(_m *LessonAttempt) *LessonAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonAttemptClient) DeleteOneID(id uuid.UUID) *LessonAttemptDeleteOne {
	builder := c.Delete().Where(lessonattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonAttemptDeleteOne{builder}
}

// Query returns a query builder for LessonAttempt.
func (c *LessonAttemptClient) Query() *LessonAttemptQuery {
	return &LessonAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonAttempt entity by its id.
func (c *LessonAttemptClient) Get(ctx context.Context, id uuid.UUID) (*LessonAttempt, error) {
	return c.Query().Where(lessonattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonAttemptClient) GetX(ctx context.Context, id uuid.UUID) *LessonAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonAttemptClient) Hooks() []Hook {
	return c.hooks.LessonAttempt
}

// Interceptors returns the client interceptors.
func (c *LessonAttemptClient) Interceptors() []Interceptor {
	return c.inters.LessonAttempt
}

func (c *LessonAttemptClient) mutate(ctx context.Context, m *LessonAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonAttempt mutation op: %q", m.Op())
	}
}

// LessonViewEventClient is a client for the LessonViewEvent schema.
type LessonViewEventClient struct {
	config
}

// NewLessonViewEventClient returns a client for the LessonViewEvent from the given config.
func NewLessonViewEventClient(c config) *LessonViewEventClient {
	return &LessonViewEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonviewevent.Hooks(f(g(h())))`.
func (c *LessonViewEventClient) Use(hooks ...Hook) {
	c.hooks.LessonViewEvent = append(c.hooks.LessonViewEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonviewevent.Intercept(f(g(h())))`.
func (c *LessonViewEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonViewEvent = append(c.inters.LessonViewEvent, interceptors...)
}

// Create returns a builder for creating a LessonViewEvent entity.
func (c *LessonViewEventClient) Create() *LessonViewEventCreate {
	mutation := newLessonViewEventMutation(c.config, OpCreate)
	return &LessonViewEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonViewEvent entities.
func (c *LessonViewEventClient) CreateBulk(builders ...*LessonViewEventCreate) *LessonViewEventCreateBulk {
	return &LessonViewEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonViewEventClient) MapCreateBulk(slice any, setFunc func(*LessonViewEventCreate, int)) *LessonViewEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonViewEventCreateBulk{err: fmt.Errorf("calling to LessonViewEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonViewEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonViewEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonViewEvent.
func (c *LessonViewEventClient) Update() *LessonViewEventUpdate {
	mutation := newLessonViewEventMutation(c.config, OpUpdate)
	return &LessonViewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonViewEventClient) UpdateOne(_m *LessonViewEvent) *LessonViewEventUpdateOne {
	mutation := newLessonViewEventMutation(c.config, OpUpdateOne, withLessonViewEvent(_m))
	return &LessonViewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonViewEventClient) UpdateOneID(id int) *LessonViewEventUpdateOne {
	mutation := newLessonViewEventMutation(c.config, OpUpdateOne, withLessonViewEventID(id))
	return &LessonViewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonViewEvent.
func (c *LessonViewEventClient) Delete() *LessonViewEventDelete {
	mutation := newLessonViewEventMutation(c.config, OpDelete)
	return &LessonViewEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonViewEventClient) DeleteOne(_m *LessonViewEvent) *LessonViewEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonViewEventClient) DeleteOneID(id int) *LessonViewEventDeleteOne {
	builder := c.Delete().Where(lessonviewevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonViewEventDeleteOne{builder}
}

// Query returns a query builder for LessonViewEvent.
func (c *LessonViewEventClient) Query() *LessonViewEventQuery {
	return &LessonViewEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonViewEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonViewEvent entity by its id.
func (c *LessonViewEventClient) Get(ctx context.Context, id int) (*LessonViewEvent, error) {
	return c.Query().Where(lessonviewevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonViewEventClient) GetX(ctx context.Context, id int) *LessonViewEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonViewEventClient) Hooks() []Hook {
	return c.hooks.LessonViewEvent
}

// Interceptors returns the client interceptors.
func (c *LessonViewEventClient) Interceptors() []Interceptor {
	return c.inters.LessonViewEvent
}

func (c *LessonViewEventClient) mutate(ctx context.Context, m *LessonViewEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonViewEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonViewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonViewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonViewEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonViewEvent mutation op: %q", m.Op())
	}
}

// NewsItemClient is a client for the NewsItem schema.
type NewsItemClient struct {
	config
}

// NewNewsItemClient returns a client for the NewsItem from the given config.
func NewNewsItemClient(c config) *NewsItemClient {
	return &NewsItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `newsitem.Hooks(f(g(h())))`.
func (c *NewsItemClient) Use(hooks ...Hook) {
	c.hooks.NewsItem = append(c.hooks.NewsItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `newsitem.Intercept(f(g(h())))`.
func (c *NewsItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.NewsItem = append(c.inters.NewsItem, interceptors...)
}

// Create returns a builder for creating a NewsItem entity.
func (c *NewsItemClient) Create() *NewsItemCreate {
	mutation := newNewsItemMutation(c.config, OpCreate)
	return &NewsItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NewsItem entities.
func (c *NewsItemClient) CreateBulk(builders ...*NewsItemCreate) *NewsItemCreateBulk {
	return &NewsItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NewsItemClient) MapCreateBulk(slice any, setFunc func(*NewsItemCreate, int)) *NewsItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NewsItemCreateBulk{err: fmt.Errorf("calling to NewsItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NewsItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NewsItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NewsItem.
func (c *NewsItemClient) Update() *NewsItemUpdate {
	mutation := newNewsItemMutation(c.config, OpUpdate)
	return &NewsItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NewsItemClient) UpdateOne(_m *NewsItem) *NewsItemUpdateOne {
	mutation := newNewsItemMutation(c.config, OpUpdateOne, withNewsItem(_m))
	return &NewsItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NewsItemClient) UpdateOneID(id uuid.UUID) *NewsItemUpdateOne {
	mutation := newNewsItemMutation(c.config, OpUpdateOne, withNewsItemID(id))
	return &NewsItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NewsItem.
func (c *NewsItemClient) Delete() *NewsItemDelete {
	mutation := newNewsItemMutation(c.config, OpDelete)
	return &NewsItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NewsItemClient) DeleteOne(_m *NewsItem) *NewsItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NewsItemClient) DeleteOneID(id uuid.UUID) *NewsItemDeleteOne {
	builder := c.Delete().Where(newsitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NewsItemDeleteOne{builder}
}

// Query returns a query builder for NewsItem.
func (c *NewsItemClient) Query() *NewsItemQuery {
	return &NewsItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNewsItem},
		inters: c.Interceptors(),
	}
}

// Get returns a NewsItem entity by its id.
func (c *NewsItemClient) Get(ctx context.Context, id uuid.UUID) (*NewsItem, error) {
	return c.Query().Where(newsitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NewsItemClient) GetX(ctx context.Context, id uuid.UUID) *NewsItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NewsItemClient) Hooks() []Hook {
	return c.hooks.NewsItem
}

// Interceptors returns the client interceptors.
func (c *NewsItemClient) Interceptors() []Interceptor {
	return c.inters.NewsItem
}

func (c *NewsItemClient) mutate(ctx context.Context, m *NewsItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NewsItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NewsItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NewsItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NewsItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NewsItem mutation op: %q", m.Op())
	}
}

// NewsQuizAttemptClient is a client for the NewsQuizAttempt schema.
type NewsQuizAttemptClient struct {
	config
}

// NewNewsQuizAttemptClient returns a client for the NewsQuizAttempt from the given config.
func NewNewsQuizAttemptClient(c config) *NewsQuizAttemptClient {
	return &NewsQuizAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `newsquizattempt.Hooks(f(g(h())))`.
func (c *NewsQuizAttemptClient) Use(hooks ...Hook) {
	c.hooks.NewsQuizAttempt = append(c.hooks.NewsQuizAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `newsquizattempt.Intercept(f(g(h())))`.
func (c *NewsQuizAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.NewsQuizAttempt = append(c.inters.NewsQuizAttempt, interceptors...)
}

// Create returns a builder for creating a NewsQuizAttempt entity.
func (c *NewsQuizAttemptClient) Create() *NewsQuizAttemptCreate {
	mutation := newNewsQuizAttemptMutation(c.config, OpCreate)
	return &NewsQuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NewsQuizAttempt entities.
func (c *NewsQuizAttemptClient) CreateBulk(builders ...*NewsQuizAttemptCreate) *NewsQuizAttemptCreateBulk {
	return &NewsQuizAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NewsQuizAttemptClient) MapCreateBulk(slice any, setFunc func(*NewsQuizAttemptCreate, int)) *NewsQuizAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NewsQuizAttemptCreateBulk{err: fmt.Errorf("calling to NewsQuizAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NewsQuizAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NewsQuizAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NewsQuizAttempt.
func (c *NewsQuizAttemptClient) Update() *NewsQuizAttemptUpdate {
	mutation := newNewsQuizAttemptMutation(c.config, OpUpdate)
	return &NewsQuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NewsQuizAttemptClient) UpdateOne(_m *NewsQuizAttempt) *NewsQuizAttemptUpdateOne {
	mutation := newNewsQuizAttemptMutation(c.config, OpUpdateOne, withNewsQuizAttempt(_m))
	return &NewsQuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NewsQuizAttemptClient) UpdateOneID(id uuid.UUID) *NewsQuizAttemptUpdateOne {
	mutation := newNewsQuizAttemptMutation(c.config, OpUpdateOne, withNewsQuizAttemptID(id))
	return &NewsQuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NewsQuizAttempt.
func (c *NewsQuizAttemptClient) Delete() *NewsQuizAttemptDelete {
	mutation := newNewsQuizAttemptMutation(c.config, OpDelete)
	return &NewsQuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NewsQuizAttemptClient) DeleteOne(_m *NewsQuizAttempt) *NewsQuizAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NewsQuizAttemptClient) DeleteOneID(id uuid.UUID) *NewsQuizAttemptDeleteOne {
	builder := c.Delete().Where(newsquizattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NewsQuizAttemptDeleteOne{builder}
}

// Query returns a query builder for NewsQuizAttempt.
func (c *NewsQuizAttemptClient) Query() *NewsQuizAttemptQuery {
	return &NewsQuizAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNewsQuizAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a NewsQuizAttempt entity by its id.
func (c *NewsQuizAttemptClient) Get(ctx context.Context, id uuid.UUID) (*NewsQuizAttempt, error) {
	return c.Query().Where(newsquizattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NewsQuizAttemptClient) GetX(ctx context.Context, id uuid.UUID) *NewsQuizAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NewsQuizAttemptClient) Hooks() []Hook {
	return c.hooks.NewsQuizAttempt
}

// Interceptors returns the client interceptors.
func (c *NewsQuizAttemptClient) Interceptors() []Interceptor {
	return c.inters.NewsQuizAttempt
}

func (c *NewsQuizAttemptClient) mutate(ctx context.Context, m *NewsQuizAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NewsQuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NewsQuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NewsQuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NewsQuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NewsQuizAttempt mutation op: %q", m.Op())
	}
}

// PracticeAttemptClient is a client for the PracticeAttempt schema.
type PracticeAttemptClient struct {
	config
}

// NewPracticeAttemptClient returns a client for the PracticeAttempt from the given config.
func NewPracticeAttemptClient(c config) *PracticeAttemptClient {
	return &PracticeAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practiceattempt.Hooks(f(g(h())))`.
func (c *PracticeAttemptClient) Use(hooks ...Hook) {
	c.hooks.PracticeAttempt = append(c.hooks.PracticeAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practiceattempt.Intercept(f(g(h())))`.
func (c *PracticeAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeAttempt = append(c.inters.PracticeAttempt, interceptors...)
}

// Create returns a builder for creating a PracticeAttempt entity.
func (c *PracticeAttemptClient) Create() *PracticeAttemptCreate {
	mutation := newPracticeAttemptMutation(c.config, OpCreate)
	return &PracticeAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeAttempt entities.
func (c *PracticeAttemptClient) CreateBulk(builders ...*PracticeAttemptCreate) *PracticeAttemptCreateBulk {
	return &PracticeAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeAttemptClient) MapCreateBulk(slice any, setFunc func(*PracticeAttemptCreate, int)) *PracticeAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeAttemptCreateBulk{err: fmt.Errorf("calling to PracticeAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeAttempt.
func (c *PracticeAttemptClient) Update() *PracticeAttemptUpdate {
	mutation := newPracticeAttemptMutation(c.config, OpUpdate)
	return &PracticeAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeAttemptClient) UpdateOne(_m *PracticeAttempt) *PracticeAttemptUpdateOne {
	mutation := newPracticeAttemptMutation(c.config, OpUpdateOne, withPracticeAttempt(_m))
	return &PracticeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeAttemptClient) UpdateOneID(id uuid.UUID) *PracticeAttemptUpdateOne {
	mutation := newPracticeAttemptMutation(c.config, OpUpdateOne, withPracticeAttemptID(id))
	return &PracticeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeAttempt.
func (c *PracticeAttemptClient) Delete() *PracticeAttemptDelete {
	mutation := newPracticeAttemptMutation(c.config, OpDelete)
	return &PracticeAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeAttemptClient) DeleteOne(_m *PracticeAttempt) *PracticeAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeAttemptClient) DeleteOneID(id uuid.UUID) *PracticeAttemptDeleteOne {
	builder := c.Delete().Where(practiceattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeAttemptDeleteOne{builder}
}

// Query returns a query builder for PracticeAttempt.
func (c *PracticeAttemptClient) Query() *PracticeAttemptQuery {
	return &PracticeAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeAttempt entity by its id.
func (c *PracticeAttemptClient) Get(ctx context.Context, id uuid.UUID) (*PracticeAttempt, error) {
	return c.Query().Where(practiceattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeAttemptClient) GetX(ctx context.Context, id uuid.UUID) *PracticeAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeAttemptClient) Hooks() []Hook {
	return c.hooks.PracticeAttempt
}

// Interceptors returns the client interceptors.
func (c *PracticeAttemptClient) Interceptors() []Interceptor {
	return c.inters.PracticeAttempt
}

func (c *PracticeAttemptClient) mutate(ctx context.Context, m *PracticeAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeAttempt mutation op: %q", m.Op())
	}
}

// QuizClient is a client for the Quiz schema.
type QuizClient struct {
	config
}

// NewQuizClient returns a client for the Quiz from the given config.
func NewQuizClient(c config) *QuizClient {
	return &QuizClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quiz.Hooks(f(g(h())))`.
func (c *QuizClient) Use(hooks ...Hook) {
	c.hooks.Quiz = append(c.hooks.Quiz, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quiz.Intercept(f(g(h())))`.
func (c *QuizClient) Intercept(interceptors ...Interceptor) {
	c.inters.Quiz = append(c.inters.Quiz, interceptors...)
}

// Create returns a builder for creating a Quiz entity.
func (c *QuizClient) Create() *QuizCreate {
	mutation := newQuizMutation(c.config, OpCreate)
	return &QuizCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Quiz entities.
func (c *QuizClient) CreateBulk(builders ...*QuizCreate) *QuizCreateBulk {
	return &QuizCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizClient) MapCreateBulk(slice any, setFunc func(*QuizCreate, int)) *QuizCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizCreateBulk{err: fmt.Errorf("calling to QuizClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Quiz.
func (c *QuizClient) Update() *QuizUpdate {
	mutation := newQuizMutation(c.config, OpUpdate)
	return &QuizUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizClient) UpdateOne(_m *Quiz) *QuizUpdateOne {
	mutation := newQuizMutation(c.config, OpUpdateOne, withQuiz(_m))
	return &QuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizClient) UpdateOneID(id uuid.UUID) *QuizUpdateOne {
	mutation := newQuizMutation(c.config, OpUpdateOne, withQuizID(id))
	return &QuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Quiz.
func (c *QuizClient) Delete() *QuizDelete {
	mutation := newQuizMutation(c.config, OpDelete)
	return &QuizDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizClient) DeleteOne(_m *Quiz) *QuizDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizClient) DeleteOneID(id uuid.UUID) *QuizDeleteOne {
	builder := c.Delete().Where(quiz.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizDeleteOne{builder}
}

// Query returns a query builder for Quiz.
func (c *QuizClient) Query() *QuizQuery {
	return &QuizQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuiz},
		inters: c.Interceptors(),
	}
}

// Get returns a Quiz entity by its id.
func (c *QuizClient) Get(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	return c.Query().Where(quiz.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizClient) GetX(ctx context.Context, id uuid.UUID) *Quiz {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizClient) Hooks() []Hook {
	return c.hooks.Quiz
}

// Interceptors returns the client interceptors.
func (c *QuizClient) Interceptors() []Interceptor {
	return c.inters.Quiz
}

func (c *QuizClient) mutate(ctx context.Context, m *QuizMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Quiz mutation op: %q", m.Op())
	}
}

// QuizAttemptClient is a client for the QuizAttempt schema.
type QuizAttemptClient struct {
	config
}

// NewQuizAttemptClient returns a client for the QuizAttempt from the given config.
func NewQuizAttemptClient(c config) *QuizAttemptClient {
	return &QuizAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizattempt.Hooks(f(g(h())))`.
func (c *QuizAttemptClient) Use(hooks ...Hook) {
	c.hooks.QuizAttempt = append(c.hooks.QuizAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizattempt.Intercept(f(g(h())))`.
func (c *QuizAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAttempt = append(c.inters.QuizAttempt, interceptors...)
}

// Create returns a builder for creating a QuizAttempt entity.
func (c *QuizAttemptClient) Create() *QuizAttemptCreate {
	mutation := newQuizAttemptMutation(c.config, OpCreate)
	return &QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAttempt entities.
func (c *QuizAttemptClient) CreateBulk(builders ...*QuizAttemptCreate) *QuizAttemptCreateBulk {
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAttemptClient) MapCreateBulk(slice any, setFunc func(*QuizAttemptCreate, int)) *QuizAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAttemptCreateBulk{err: fmt.Errorf("calling to QuizAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAttempt.
func (c *QuizAttemptClient) Update() *QuizAttemptUpdate {
	mutation := newQuizAttemptMutation(c.config, OpUpdate)
	return &QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAttemptClient) UpdateOne(_m *QuizAttempt) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttempt(_m))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAttemptClient) UpdateOneID(id uuid.UUID) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttemptID(id))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAttempt.
func (c *QuizAttemptClient) Delete() *QuizAttemptDelete {
	mutation := newQuizAttemptMutation(c.config, OpDelete)
	return &QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAttemptClient) DeleteOne(_m *QuizAttempt) *QuizAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAttemptClient) DeleteOneID(id uuid.UUID) *QuizAttemptDeleteOne {
	builder := c.Delete().Where(quizattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAttemptDeleteOne{builder}
}

// Query returns a query builder for QuizAttempt.
func (c *QuizAttemptClient) Query() *QuizAttemptQuery {
	return &QuizAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAttempt entity by its id.
func (c *QuizAttemptClient) Get(ctx context.Context, id uuid.UUID) (*QuizAttempt, error) {
	return c.Query().Where(quizattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAttemptClient) GetX(ctx context.Context, id uuid.UUID) *QuizAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizAttemptClient) Hooks() []Hook {
	return c.hooks.QuizAttempt
}

// Interceptors returns the client interceptors.
func (c *QuizAttemptClient) Interceptors() []Interceptor {
	return c.inters.QuizAttempt
}

func (c *QuizAttemptClient) mutate(ctx context.Context, m *QuizAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAttempt mutation op: %q", m.Op())
	}
}

// UserBadgeClient is a client for the UserBadge schema.
type UserBadgeClient struct {
	config
}

// NewUserBadgeClient returns a client for the UserBadge from the given config.
func NewUserBadgeClient(c config) *UserBadgeClient {
	return &UserBadgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userbadge.Hooks(f(g(h())))`.
func (c *UserBadgeClient) Use(hooks ...Hook) {
	c.hooks.UserBadge = append(c.hooks.UserBadge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userbadge.Intercept(f(g(h())))`.
func (c *UserBadgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserBadge = append(c.inters.UserBadge, interceptors...)
}

// Create returns a builder for creating a UserBadge entity.
func (c *UserBadgeClient) Create() *UserBadgeCreate {
	mutation := newUserBadgeMutation(c.config, OpCreate)
	return &UserBadgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserBadge entities.
func (c *UserBadgeClient) CreateBulk(builders ...*UserBadgeCreate) *UserBadgeCreateBulk {
	return &UserBadgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserBadgeClient) MapCreateBulk(slice any, setFunc func(*UserBadgeCreate, int)) *UserBadgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserBadgeCreateBulk{err: fmt.Errorf("calling to UserBadgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserBadgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserBadgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserBadge.
func (c *UserBadgeClient) Update() *UserBadgeUpdate {
	mutation := newUserBadgeMutation(c.config, OpUpdate)
	return &UserBadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserBadgeClient) UpdateOne(_m *UserBadge) *UserBadgeUpdateOne {
	mutation := newUserBadgeMutation(c.config, OpUpdateOne, withUserBadge(_m))
	return &UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserBadgeClient) UpdateOneID(id uuid.UUID) *UserBadgeUpdateOne {
	mutation := newUserBadgeMutation(c.config, OpUpdateOne, withUserBadgeID(id))
	return &UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserBadge.
func (c *UserBadgeClient) Delete() *UserBadgeDelete {
	mutation := newUserBadgeMutation(c.config, OpDelete)
	return &UserBadgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserBadgeClient) DeleteOne(_m *UserBadge) *UserBadgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserBadgeClient) DeleteOneID(id uuid.UUID) *UserBadgeDeleteOne {
	builder := c.Delete().Where(userbadge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserBadgeDeleteOne{builder}
}

// Query returns a query builder for UserBadge.
func (c *UserBadgeClient) Query() *UserBadgeQuery {
	return &UserBadgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserBadge},
		inters: c.Interceptors(),
	}
}

// Get returns a UserBadge entity by its id.
func (c *UserBadgeClient) Get(ctx context.Context, id uuid.UUID) (*UserBadge, error) {
	return c.Query().Where(userbadge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserBadgeClient) GetX(ctx context.Context, id uuid.UUID) *UserBadge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserBadgeClient) Hooks() []Hook {
	return c.hooks.UserBadge
}

// Interceptors returns the client interceptors.
func (c *UserBadgeClient) Interceptors() []Interceptor {
	return c.inters.UserBadge
}

func (c *UserBadgeClient) mutate(ctx context.Context, m *UserBadgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserBadgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserBadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserBadgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserBadge mutation op: %q", m.Op())
	}
}

// UserProfileClient is a client for the UserProfile schema.
type UserProfileClient struct {
	config
}

// NewUserProfileClient returns a client for the UserProfile from the given config.
func NewUserProfileClient(c config) *UserProfileClient {
	return &UserProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprofile.Hooks(f(g(h())))`.
func (c *UserProfileClient) Use(hooks ...Hook) {
	c.hooks.UserProfile = append(c.hooks.UserProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprofile.Intercept(f(g(h())))`.
func (c *UserProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProfile = append(c.inters.UserProfile, interceptors...)
}

// Create returns a builder for creating a UserProfile entity.
func (c *UserProfileClient) Create() *UserProfileCreate {
	mutation := newUserProfileMutation(c.config, OpCreate)
	return &UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProfile entities.
func (c *UserProfileClient) CreateBulk(builders ...*UserProfileCreate) *UserProfileCreateBulk {
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProfileClient) MapCreateBulk(slice any, setFunc func(*UserProfileCreate, int)) *UserProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProfileCreateBulk{err: fmt.Errorf("calling to UserProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProfile.
func (c *UserProfileClient) Update() *UserProfileUpdate {
	mutation := newUserProfileMutation(c.config, OpUpdate)
	return &UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProfileClient) UpdateOne(_m *UserProfile) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfile(_m))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProfileClient) UpdateOneID(id uuid.UUID) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfileID(id))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProfile.
func (c *UserProfileClient) Delete() *UserProfileDelete {
	mutation := newUserProfileMutation(c.config, OpDelete)
	return &UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProfileClient) DeleteOne(_m *UserProfile) *UserProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProfileClient) DeleteOneID(id uuid.UUID) *UserProfileDeleteOne {
	builder := c.Delete().Where(userprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProfileDeleteOne{builder}
}

// Query returns a query builder for UserProfile.
func (c *UserProfileClient) Query() *UserProfileQuery {
	return &UserProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProfile entity by its id.
func (c *UserProfileClient) Get(ctx context.Context, id uuid.UUID) (*UserProfile, error) {
	return c.Query().Where(userprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProfileClient) GetX(ctx context.Context, id uuid.UUID) *UserProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProfileClient) Hooks() []Hook {
	return c.hooks.UserProfile
}

// Interceptors returns the client interceptors.
func (c *UserProfileClient) Interceptors() []Interceptor {
	return c.inters.UserProfile
}

func (c *UserProfileClient) mutate(ctx context.Context, m *UserProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProfile mutation op: %q", m.Op())
	}
}

// UserStatsClient is a client for the UserStats schema.
type UserStatsClient struct {
	config
}

// NewUserStatsClient returns a client for the UserStats from the given config.
func NewUserStatsClient(c config) *UserStatsClient {
	return &UserStatsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userstats.Hooks(f(g(h())))`.
func (c *UserStatsClient) Use(hooks ...Hook) {
	c.hooks.UserStats = append(c.hooks.UserStats, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userstats.Intercept(f(g(h())))`.
func (c *UserStatsClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserStats = append(c.inters.UserStats, interceptors...)
}

// Create returns a builder for creating a UserStats entity.
func (c *UserStatsClient) Create() *UserStatsCreate {
	mutation := newUserStatsMutation(c.config, OpCreate)
	return &UserStatsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserStats entities.
func (c *UserStatsClient) CreateBulk(builders ...*UserStatsCreate) *UserStatsCreateBulk {
	return &UserStatsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserStatsClient) MapCreateBulk(slice any, setFunc func(*UserStatsCreate, int)) *UserStatsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserStatsCreateBulk{err: fmt.Errorf("calling to UserStatsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserStatsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserStatsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserStats.
func (c *UserStatsClient) Update() *UserStatsUpdate {
	mutation := newUserStatsMutation(c.config, OpUpdate)
	return &UserStatsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserStatsClient) UpdateOne(_m *UserStats) *UserStatsUpdateOne {
	mutation := newUserStatsMutation(c.config, OpUpdateOne, withUserStats(_m))
	return &UserStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserStatsClient) UpdateOneID(id uuid.UUID) *UserStatsUpdateOne {
	mutation := newUserStatsMutation(c.config, OpUpdateOne, withUserStatsID(id))
	return &UserStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserStats.
func (c *UserStatsClient) Delete() *UserStatsDelete {
	mutation := newUserStatsMutation(c.config, OpDelete)
	return &UserStatsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserStatsClient) DeleteOne(_m *UserStats) *UserStatsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserStatsClient) DeleteOneID(id uuid.UUID) *UserStatsDeleteOne {
	builder := c.Delete().Where(userstats.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserStatsDeleteOne{builder}
}

// Query returns a query builder for UserStats.
func (c *UserStatsClient) Query() *UserStatsQuery {
	return &UserStatsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserStats},
		inters: c.Interceptors(),
	}
}

// Get returns a UserStats entity by its id.
func (c *UserStatsClient) Get(ctx context.Context, id uuid.UUID) (*UserStats, error) {
	return c.Query().Where(userstats.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserStatsClient) GetX(ctx context.Context, id uuid.UUID) *UserStats {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserStatsClient) Hooks() []Hook {
	return c.hooks.UserStats
}

// Interceptors returns the client interceptors.
func (c *UserStatsClient) Interceptors() []Interceptor {
	return c.inters.UserStats
}

func (c *UserStatsClient) mutate(ctx context.Context, m *UserStatsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserStatsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserStatsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserStatsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserStats mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AITerm, Certificate, Exam, ExamAttempt, LLMRequestEvent, Lesson, LessonAttempt,
		LessonViewEvent, NewsItem, NewsQuizAttempt, PracticeAttempt, Quiz, QuizAttempt,
		UserBadge, UserProfile, UserStats []ent.Hook
	}
	inters struct {
		AITerm, Certificate, Exam, ExamAttempt, LLMRequestEvent, Lesson, LessonAttempt,
		LessonViewEvent, NewsItem, NewsQuizAttempt, PracticeAttempt, Quiz, QuizAttempt,
		UserBadge, UserProfile, UserStats []ent.Interceptor
	}
)
