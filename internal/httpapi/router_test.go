package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilet/learnloop/internal/config"
	"github.com/adilet/learnloop/internal/exams"
	"github.com/adilet/learnloop/internal/logger"
	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/profile"
	"github.com/adilet/learnloop/internal/schedule"
	"github.com/adilet/learnloop/internal/stats"
	"github.com/adilet/learnloop/internal/store"
	"github.com/adilet/learnloop/internal/terms"
)

type memStatsStore struct {
	rows map[string]model.UserStats
}

func (m *memStatsStore) Get(_ context.Context, userID string) (*model.UserStats, error) {
	if row, ok := m.rows[userID]; ok {
		return &row, nil
	}
	return nil, nil
}

func (m *memStatsStore) Create(_ context.Context, s model.UserStats) error {
	if _, ok := m.rows[s.UserID]; ok {
		return store.ErrConflict
	}
	m.rows[s.UserID] = s
	return nil
}

func (m *memStatsStore) Update(_ context.Context, s model.UserStats) error {
	m.rows[s.UserID] = s
	return nil
}

type memProfileStore struct {
	rows map[string]model.UserProfile
}

func (m *memProfileStore) Get(_ context.Context, userID string) (*model.UserProfile, error) {
	if p, ok := m.rows[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *memProfileStore) Create(_ context.Context, p model.UserProfile) (*model.UserProfile, error) {
	m.rows[p.UserID] = p
	return &p, nil
}

func (m *memProfileStore) Patch(_ context.Context, userID string, upd model.ProfileUpdate) (*model.UserProfile, error) {
	p, ok := m.rows[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.FullName != nil {
		p.FullName = *upd.FullName
	}
	m.rows[userID] = p
	return &p, nil
}

type memCertStore struct {
	rows []model.Certificate
}

func (m *memCertStore) Insert(_ context.Context, c model.Certificate) (*model.Certificate, error) {
	c.ID = uuid.New()
	m.rows = append(m.rows, c)
	return &c, nil
}

func (m *memCertStore) ByUser(_ context.Context, userID string) ([]model.Certificate, error) {
	var out []model.Certificate
	for _, c := range m.rows {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCertStore) ByCode(_ context.Context, code string) (*model.Certificate, error) {
	for _, c := range m.rows {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

type nilExamStore struct{}

func (nilExamStore) ByTitle(context.Context, string) (*model.Exam, error)    { return nil, nil }
func (nilExamStore) ByID(context.Context, uuid.UUID) (*model.Exam, error)    { return nil, store.ErrNotFound }
func (nilExamStore) Insert(_ context.Context, e model.Exam) (*model.Exam, error) {
	e.ID = uuid.New()
	return &e, nil
}

type nilExamAttempts struct{}

func (nilExamAttempts) InsertExamAttempt(context.Context, string, uuid.UUID, int, bool) error {
	return nil
}

type nilExamGen struct{}

func (nilExamGen) Exam(_ context.Context, title string) (model.Exam, error) {
	return model.Exam{Title: title}, nil
}

type nilRecorder struct{}

func (nilRecorder) RecordActivity(context.Context, string) (int, error) { return 0, nil }
func (nilRecorder) RecordCompletion(context.Context, string, stats.Kind, int) (model.UserStats, error) {
	return model.UserStats{}, nil
}
func (nilRecorder) RecordCertificate(context.Context, string) error { return nil }

type memBadgeStore struct {
	rows []model.Badge
}

func (m memBadgeStore) ByUser(_ context.Context, userID string) ([]model.Badge, error) {
	var out []model.Badge
	for _, b := range m.rows {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type memTermStore struct {
	terms []model.Term
}

func (m memTermStore) List(context.Context) ([]model.Term, error) { return m.terms, nil }

type emptyLessonCatalog struct{}

func (emptyLessonCatalog) List(context.Context, int) ([]model.Lesson, error) { return nil, nil }

type emptyQuizCatalog struct{}

func (emptyQuizCatalog) List(context.Context, int) ([]model.Quiz, error) { return nil, nil }

func newTestRouter(t *testing.T, certs *memCertStore, secret string) http.Handler {
	t.Helper()
	if certs == nil {
		certs = &memCertStore{}
	}
	svc := Services{
		Stats:   stats.NewService(&memStatsStore{rows: map[string]model.UserStats{}}, nil),
		Profile: profile.NewService(&memProfileStore{rows: map[string]model.UserProfile{}}, memBadgeStore{}),
		Exams:   exams.NewService(nilExamStore{}, certs, nilExamAttempts{}, nilRecorder{}, nilExamGen{}, logger.Nop()),
		Terms:   terms.NewService(memTermStore{}, logger.Nop(), nil),
		Sched:   schedule.New(schedule.DefaultConfig()),

		LessonCatalog: emptyLessonCatalog{},
		QuizCatalog:   emptyQuizCatalog{},
	}
	cfg := config.Config{Env: "production", JWTSecret: secret}
	return NewRouter(cfg, svc, logger.Nop())
}

func signedToken(t *testing.T, subject, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthIsPublic(t *testing.T) {
	router := newTestRouter(t, nil, "")

	w := doRequest(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMissingTokenRejected(t *testing.T) {
	router := newTestRouter(t, nil, "")

	w := doRequest(router, http.MethodGet, "/api/stats", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWrongSignatureRejected(t *testing.T) {
	router := newTestRouter(t, nil, "real-secret")

	w := doRequest(router, http.MethodGet, "/api/stats", signedToken(t, "u1", "other-secret"), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStatsForFreshUserAreZero(t *testing.T) {
	router := newTestRouter(t, nil, "s3cret")

	w := doRequest(router, http.MethodGet, "/api/stats", signedToken(t, "u1", "s3cret"), "")
	require.Equal(t, http.StatusOK, w.Code)

	var got model.UserStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "u1", got.UserID)
	assert.Zero(t, got.XPTotal)
}

func TestProfileRoundTrip(t *testing.T) {
	router := newTestRouter(t, nil, "s3cret")
	token := signedToken(t, "u1", "s3cret")

	w := doRequest(router, http.MethodPatch, "/api/profile", token, `{"full_name":"Ada Lovelace"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/profile", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got model.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ada Lovelace", got.FullName)
}

func TestVerifyCertificateIsPublic(t *testing.T) {
	certs := &memCertStore{}
	stored, err := certs.Insert(context.Background(), model.Certificate{
		UserID: "u1",
		Code:   "ABC123XY99",
	})
	require.NoError(t, err)
	router := newTestRouter(t, certs, "s3cret")

	w := doRequest(router, http.MethodGet, "/api/certificates/verify/"+stored.Code, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)

	w = doRequest(router, http.MethodGet, "/api/certificates/verify/UNKNOWN000", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCertificateListIsNeverNull(t *testing.T) {
	router := newTestRouter(t, nil, "s3cret")

	w := doRequest(router, http.MethodGet, "/api/certificates", signedToken(t, "u1", "s3cret"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"certificates":[]`)
}

func TestProgressSummaryForFreshUser(t *testing.T) {
	router := newTestRouter(t, nil, "s3cret")

	w := doRequest(router, http.MethodGet, "/api/progress/summary", signedToken(t, "u1", "s3cret"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"level":"Beginner"`)
	assert.Contains(t, w.Body.String(), `"lessons_completed":0`)
}

func TestInvalidUUIDIsBadRequest(t *testing.T) {
	router := newTestRouter(t, nil, "s3cret")

	w := doRequest(router, http.MethodPost, "/api/exams/not-a-uuid/submit", signedToken(t, "u1", "s3cret"), `{"answers":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDailyTermIsPublic(t *testing.T) {
	router := newTestRouter(t, nil, "s3cret")

	w := doRequest(router, http.MethodGet, "/api/terms/daily", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"term":"Machine Learning"`, "empty glossary serves the fallback")
}

func TestCatalogListsAreNeverNull(t *testing.T) {
	router := newTestRouter(t, nil, "s3cret")

	w := doRequest(router, http.MethodGet, "/api/lessons", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	w = doRequest(router, http.MethodGet, "/api/quizzes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestProfileBadgesForFreshUser(t *testing.T) {
	router := newTestRouter(t, nil, "s3cret")

	w := doRequest(router, http.MethodGet, "/api/profile/badges", signedToken(t, "u1", "s3cret"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestDailyLessonRejectsUnknownLevel(t *testing.T) {
	router := newTestRouter(t, nil, "s3cret")

	w := doRequest(router, http.MethodGet, "/api/lessons/daily?level=expert", signedToken(t, "u1", "s3cret"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
