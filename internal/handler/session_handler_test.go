package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examtools/vceplay/internal/config"
	"github.com/examtools/vceplay/internal/handler"
	"github.com/examtools/vceplay/internal/model"
	"github.com/examtools/vceplay/internal/player"
	"github.com/examtools/vceplay/internal/response"
	"github.com/examtools/vceplay/internal/router"
	"github.com/examtools/vceplay/internal/store"
	"github.com/examtools/vceplay/internal/validator"
)

func testExam(n int) *model.Exam {
	questions := make([]model.Question, n)
	for i := range questions {
		questions[i] = model.Question{
			ID:             i + 1,
			Kind:           model.QuestionKindSingle,
			Text:           "question text",
			Options:        []string{"a", "b", "c"},
			CorrectOptions: []int{i % 3},
		}
	}
	return &model.Exam{Title: "HTTP Exam", PassingScore: 70, TotalQuestions: n, Questions: questions}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	validator.Setup()

	st, err := store.NewSessionStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	p := player.New(testExam(3), st, zerolog.Nop())

	handlers := &router.Handlers{
		Session: handler.NewSessionHandler(p, zerolog.Nop(), 0, false),
		WS:      handler.NewWSHandler(p, zerolog.Nop(), nil),
	}
	return router.SetupRouter(handlers, &config.Config{GinMode: gin.TestMode})
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	rec, _ := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionRequiresStart(t *testing.T) {
	r := newTestRouter(t)

	rec, envelope := do(t, r, http.MethodGet, "/api/v1/session", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, response.ErrNoActiveSession, envelope.Error.Code)

	// Progress stays a 200 with empty counters so pollers need no special
	// casing before a session starts.
	rec, _ = do(t, r, http.MethodGet, "/api/v1/session/progress", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExamEndpoint(t *testing.T) {
	r := newTestRouter(t)
	rec, envelope := do(t, r, http.MethodGet, "/api/v1/exam", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, envelope.Error)
	assert.NotEmpty(t, envelope.Metadata.RequestID)
}

func TestExamFlow(t *testing.T) {
	r := newTestRouter(t)

	rec, envelope := do(t, r, http.MethodPost, "/api/v1/session", gin.H{"question_limit": 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	data := envelope.Data.(map[string]interface{})
	sessionID := data["session_id"].(string)
	require.NotEmpty(t, sessionID)

	// Answer question 1, then overwrite it.
	rec, _ = do(t, r, http.MethodPut, "/api/v1/session/answers/1", gin.H{"selected_answers": []int{1}})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, r, http.MethodPut, "/api/v1/session/answers/1", gin.H{"selected_answers": []int{0}})
	require.Equal(t, http.StatusOK, rec.Code)

	// Validation failures.
	rec, envelope = do(t, r, http.MethodPut, "/api/v1/session/answers/1", gin.H{"selected_answers": []int{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.ErrValidation, envelope.Error.Code)

	rec, envelope = do(t, r, http.MethodPut, "/api/v1/session/answers/9", gin.H{"selected_answers": []int{0}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.ErrInvalidPosition, envelope.Error.Code)

	rec, envelope = do(t, r, http.MethodPut, "/api/v1/session/answers/2", gin.H{"selected_answers": []int{7}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.ErrInvalidOptionIndex, envelope.Error.Code)

	// Marking an unanswered question is rejected.
	rec, envelope = do(t, r, http.MethodPost, "/api/v1/session/answers/2/mark", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, response.ErrNotYetAnswered, envelope.Error.Code)

	rec, _ = do(t, r, http.MethodPost, "/api/v1/session/answers/1/mark", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Navigation.
	rec, envelope = do(t, r, http.MethodPost, "/api/v1/session/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, envelope.Data.(map[string]interface{})["current_question"])

	rec, envelope = do(t, r, http.MethodPost, "/api/v1/session/jump", gin.H{"position": 5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.ErrInvalidPosition, envelope.Error.Code)

	// Progress: 1 of 2 answered.
	rec, envelope = do(t, r, http.MethodGet, "/api/v1/session/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	progress := envelope.Data.(map[string]interface{})["progress"].(map[string]interface{})
	assert.EqualValues(t, 1, progress["answered"])
	assert.EqualValues(t, 2, progress["total"])
	assert.EqualValues(t, 50.0, progress["percentage"])

	// End: question 1 answered correctly, question 2 blank. 1 of 2 = 50%.
	rec, envelope = do(t, r, http.MethodPost, "/api/v1/session/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	endData := envelope.Data.(map[string]interface{})
	assert.Equal(t, true, endData["persisted"])
	session := endData["session"].(map[string]interface{})
	assert.EqualValues(t, 50, session["score"])
	assert.Equal(t, false, session["passed"])
	assert.Equal(t, string(model.SessionStatusCompleted), session["status"])

	// Mutation after completion is rejected.
	rec, envelope = do(t, r, http.MethodPut, "/api/v1/session/answers/2", gin.H{"selected_answers": []int{0}})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, response.ErrSessionNotActive, envelope.Error.Code)

	// The completed session shows up in the listing and can be deleted.
	rec, envelope = do(t, r, http.MethodGet, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sessions := envelope.Data.(map[string]interface{})["sessions"].([]interface{})
	require.Len(t, sessions, 1)

	rec, _ = do(t, r, http.MethodDelete, "/api/v1/sessions/"+sessionID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, envelope = do(t, r, http.MethodDelete, "/api/v1/sessions/"+sessionID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.ErrSessionNotFound, envelope.Error.Code)
}

func TestReviewFlow(t *testing.T) {
	r := newTestRouter(t)

	rec, envelope := do(t, r, http.MethodPost, "/api/v1/session", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID := envelope.Data.(map[string]interface{})["session_id"].(string)

	rec, _ = do(t, r, http.MethodPut, "/api/v1/session/answers/1", gin.H{"selected_answers": []int{0}})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, r, http.MethodPost, "/api/v1/session/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope = do(t, r, http.MethodPost, "/api/v1/session/review", gin.H{"session_id": sessionID})
	require.Equal(t, http.StatusOK, rec.Code)
	session := envelope.Data.(map[string]interface{})["session"].(map[string]interface{})
	assert.Equal(t, string(model.SessionStatusReviewed), session["status"])

	// Resuming a completed session is rejected; unknown ids are a 404.
	rec, envelope = do(t, r, http.MethodPost, "/api/v1/session/resume", gin.H{"session_id": sessionID})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, response.ErrSessionNotActive, envelope.Error.Code)

	rec, envelope = do(t, r, http.MethodPost, "/api/v1/session/resume", gin.H{"session_id": "session_0"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.ErrSessionNotFound, envelope.Error.Code)
}
