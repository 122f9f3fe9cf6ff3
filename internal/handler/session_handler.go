package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/examtools/vceplay/internal/model"
	"github.com/examtools/vceplay/internal/player"
	"github.com/examtools/vceplay/internal/response"
	"github.com/examtools/vceplay/internal/store"
	"github.com/examtools/vceplay/internal/validator"
)

// SessionHandler exposes the exam player over HTTP. All state lives in the
// shared Player; handlers translate requests and map player errors onto
// response codes.
type SessionHandler struct {
	player *player.Player
	log    zerolog.Logger
	// Defaults applied when a start payload omits the knobs.
	defaultLimit     int
	defaultRandomize bool
}

// NewSessionHandler creates a new SessionHandler. defaultLimit and
// defaultRandomize come from configuration and apply to start requests that
// leave them unset.
func NewSessionHandler(p *player.Player, log zerolog.Logger, defaultLimit int, defaultRandomize bool) *SessionHandler {
	return &SessionHandler{
		player:           p,
		log:              log.With().Str("component", "session_handler").Logger(),
		defaultLimit:     defaultLimit,
		defaultRandomize: defaultRandomize,
	}
}

// GetExam godoc
// GET /api/v1/exam
// Returns metadata for the loaded exam.
func (h *SessionHandler) GetExam(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"exam": h.player.Exam()})
}

// StartSession godoc
// POST /api/v1/session
// Starts a new session, replacing any previously active one.
func (h *SessionHandler) StartSession(c *gin.Context) {
	req := model.StartSessionRequest{
		QuestionLimit:      h.defaultLimit,
		RandomizeQuestions: h.defaultRandomize,
	}
	if c.Request.ContentLength > 0 {
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
			return
		}
	}

	sessionID, err := h.player.StartSession(player.StartOptions{
		QuestionLimit: req.QuestionLimit,
		Randomize:     req.RandomizeQuestions,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	session, err := h.player.Session()
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"session_id": sessionID,
		"session":    session,
	})
}

// GetSession godoc
// GET /api/v1/session
// Returns a snapshot of the active session.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.player.Session()
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": session})
}

// GetProgress godoc
// GET /api/v1/session/progress
// Returns progress counters. With no active session this reports an empty
// progress object rather than an error, which keeps polling clients simple.
func (h *SessionHandler) GetProgress(c *gin.Context) {
	progress, err := h.player.Progress()
	if err != nil && !errors.Is(err, player.ErrNoActiveSession) {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"progress": progress})
}

// GetQuestion godoc
// GET /api/v1/session/questions/:position
// Returns the question at a display position plus any recorded answer.
func (h *SessionHandler) GetQuestion(c *gin.Context) {
	position, ok := h.position(c)
	if !ok {
		return
	}

	question, answer, err := h.player.QuestionAt(position)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"position": position,
		"question": question,
		"answer":   answer,
	})
}

// SelectAnswer godoc
// PUT /api/v1/session/answers/:position
// Records (or overwrites) the selection for a display position.
func (h *SessionHandler) SelectAnswer(c *gin.Context) {
	position, ok := h.position(c)
	if !ok {
		return
	}

	var req model.SelectAnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.player.SelectAnswer(position, req.SelectedAnswers); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"position": position})
}

// MarkAnswer godoc
// POST /api/v1/session/answers/:position/mark
// Flags an answered position for review.
func (h *SessionHandler) MarkAnswer(c *gin.Context) {
	position, ok := h.position(c)
	if !ok {
		return
	}

	if err := h.player.MarkForReview(position); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"position": position, "is_marked": true})
}

// NextQuestion godoc
// POST /api/v1/session/next
func (h *SessionHandler) NextQuestion(c *gin.Context) {
	pos, err := h.player.Advance()
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"current_question": pos})
}

// PreviousQuestion godoc
// POST /api/v1/session/previous
func (h *SessionHandler) PreviousQuestion(c *gin.Context) {
	pos, err := h.player.Retreat()
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"current_question": pos})
}

// JumpToQuestion godoc
// POST /api/v1/session/jump
// Moves to a display position; out-of-range positions are rejected with the
// current position left unchanged.
func (h *SessionHandler) JumpToQuestion(c *gin.Context) {
	var req model.JumpRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if !h.player.Jump(req.Position) {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPosition)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"current_question": req.Position})
}

// EndSession godoc
// POST /api/v1/session/end
// Finalizes the active session: scores it, marks it completed and persists
// it. On a disk failure the finalized snapshot is still returned with
// persisted=false; the in-memory result is authoritative.
func (h *SessionHandler) EndSession(c *gin.Context) {
	snapshot, err := h.player.EndSession()
	if err != nil {
		if snapshot != nil {
			// Finalized in memory but not on disk.
			h.log.Error().Err(err).Str("session_id", snapshot.ID).Msg("completed session not persisted")
			response.Success(c, http.StatusOK, gin.H{"session": snapshot, "persisted": false})
			return
		}
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snapshot, "persisted": true})
}

// ResumeSession godoc
// POST /api/v1/session/resume
// Loads a stored in-progress session and makes it active.
func (h *SessionHandler) ResumeSession(c *gin.Context) {
	var req model.SessionIDRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	session, err := h.player.ResumeSession(req.SessionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": session})
}

// ReviewSession godoc
// POST /api/v1/session/review
// Loads a completed session read-only for review.
func (h *SessionHandler) ReviewSession(c *gin.Context) {
	var req model.SessionIDRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	session, err := h.player.LoadForReview(req.SessionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": session})
}

// ListSessions godoc
// GET /api/v1/sessions?status=in_progress|completed|reviewed
// Lists stored session summaries, newest first.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	status := model.SessionStatus(c.Query("status"))
	switch status {
	case "", model.SessionStatusInProgress, model.SessionStatusCompleted, model.SessionStatusReviewed:
	default:
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	summaries, err := h.player.ListSessions(status)
	if err != nil {
		h.log.Error().Err(err).Msg("session listing failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sessions": summaries})
}

// DeleteSession godoc
// DELETE /api/v1/sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if !h.player.DeleteSession(c.Param("id")) {
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// position parses the :position path parameter. Writes the error response
// itself and reports false on failure.
func (h *SessionHandler) position(c *gin.Context) (int, bool) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil || position < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPosition)
		return 0, false
	}
	return position, true
}

// fail maps player and store errors onto HTTP statuses and error codes.
func (h *SessionHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, player.ErrNoActiveSession):
		response.Fail(c, http.StatusNotFound, response.ErrNoActiveSession)
	case errors.Is(err, player.ErrSessionNotActive):
		response.Fail(c, http.StatusConflict, response.ErrSessionNotActive)
	case errors.Is(err, player.ErrEmptyExam):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrEmptyExam)
	case errors.Is(err, player.ErrInvalidPosition):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPosition)
	case errors.Is(err, player.ErrInvalidOptionIndex):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidOptionIndex)
	case errors.Is(err, player.ErrNotYetAnswered):
		response.Fail(c, http.StatusConflict, response.ErrNotYetAnswered)
	case errors.Is(err, store.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
	default:
		h.log.Error().Err(err).Msg("unhandled player error")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
