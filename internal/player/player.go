// Package player holds the exam session state machine: one Player binds one
// loaded exam to at most one active session and is the single authority over
// navigation, answer recording, scoring and session finalization.
package player

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/examtools/vceplay/internal/model"
	"github.com/examtools/vceplay/internal/store"
)

// StartOptions configures a new session.
type StartOptions struct {
	// QuestionLimit caps the display order to the first N questions when
	// 0 < N < total. Zero means all questions.
	QuestionLimit int
	// Randomize is accepted from the settings surface but is currently
	// ignored: display order stays stable so saved sessions can be
	// reviewed against the same ordering.
	// TODO: persist the shuffled order in the session record, then honor
	// this flag again.
	Randomize bool
}

// Player is the exam session controller. The HTTP handlers and the autosave
// worker share one instance, so all state access goes through the mutex.
type Player struct {
	mu      sync.Mutex
	exam    *model.Exam
	store   *store.SessionStore
	log     zerolog.Logger
	session *model.Session
	// order maps display position-1 to an index into exam.Questions. Fixed
	// for the lifetime of one session.
	order []int
}

// New creates a player bound to a loaded exam.
func New(exam *model.Exam, st *store.SessionStore, log zerolog.Logger) *Player {
	return &Player{
		exam:  exam,
		store: st,
		log:   log.With().Str("component", "player").Logger(),
	}
}

// Exam returns the bound exam's metadata.
func (p *Player) Exam() model.ExamSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exam.Summary()
}

// StartSession begins a new session, replacing any previously active one.
// Returns the new session id.
func (p *Player) StartSession(opts StartOptions) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.exam.Questions) == 0 {
		return "", ErrEmptyExam
	}

	// Display order stays stable regardless of opts.Randomize, see the
	// StartOptions doc.
	order := make([]int, len(p.exam.Questions))
	for i := range order {
		order[i] = i
	}
	if opts.QuestionLimit > 0 && opts.QuestionLimit < len(order) {
		order = order[:opts.QuestionLimit]
	}

	p.order = order
	p.exam.TotalQuestions = len(order)

	now := time.Now()
	p.session = &model.Session{
		ID:              fmt.Sprintf("session_%d", now.Unix()),
		ExamTitle:       p.exam.Title,
		StartTime:       now,
		Status:          model.SessionStatusInProgress,
		Answers:         make(map[int]*model.Answer),
		CurrentQuestion: 1,
	}

	p.log.Info().
		Str("session_id", p.session.ID).
		Str("exam", p.exam.Title).
		Int("total_questions", len(order)).
		Msg("session started")

	return p.session.ID, nil
}

// Session returns a snapshot of the active session.
func (p *Player) Session() (*model.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return nil, ErrNoActiveSession
	}
	return p.session.Clone(), nil
}

// QuestionAt returns the question shown at a display position together with
// the recorded answer for it, if any.
func (p *Player) QuestionAt(position int) (model.Question, *model.Answer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return model.Question{}, nil, ErrNoActiveSession
	}
	if position < 1 || position > len(p.order) {
		return model.Question{}, nil, ErrInvalidPosition
	}
	question := p.exam.Questions[p.order[position-1]]
	if answer, ok := p.session.Answers[position]; ok {
		ac := *answer
		ac.SelectedAnswers = append([]int(nil), answer.SelectedAnswers...)
		return question, &ac, nil
	}
	return question, nil, nil
}

// SelectAnswer records the selection for a display position. Calling it
// again for the same position overwrites the earlier selection and
// timestamp; the marked-for-review flag survives the overwrite.
func (p *Player) SelectAnswer(position int, selected []int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return ErrNoActiveSession
	}
	if p.session.Status != model.SessionStatusInProgress {
		return ErrSessionNotActive
	}
	if position < 1 || position > len(p.order) {
		return ErrInvalidPosition
	}
	question := p.exam.Questions[p.order[position-1]]
	for _, idx := range selected {
		if idx < 0 || idx >= len(question.Options) {
			return ErrInvalidOptionIndex
		}
	}

	if answer, ok := p.session.Answers[position]; ok {
		answer.SelectedAnswers = append([]int(nil), selected...)
		answer.Timestamp = time.Now()
	} else {
		p.session.Answers[position] = &model.Answer{
			QuestionID:      position,
			SelectedAnswers: append([]int(nil), selected...),
			Timestamp:       time.Now(),
		}
	}
	return nil
}

// MarkForReview flags an answered position for later review. Unanswered
// positions cannot be marked.
func (p *Player) MarkForReview(position int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return ErrNoActiveSession
	}
	if p.session.Status != model.SessionStatusInProgress {
		return ErrSessionNotActive
	}
	if position < 1 || position > len(p.order) {
		return ErrInvalidPosition
	}
	answer, ok := p.session.Answers[position]
	if !ok {
		return ErrNotYetAnswered
	}
	answer.IsMarked = true
	return nil
}

// Advance moves to the next question and returns the new position. At the
// last position it stays put.
func (p *Player) Advance() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return 0, ErrNoActiveSession
	}
	if p.session.CurrentQuestion < len(p.order) {
		p.session.CurrentQuestion++
	}
	return p.session.CurrentQuestion, nil
}

// Retreat moves to the previous question and returns the new position. At
// position 1 it stays put.
func (p *Player) Retreat() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return 0, ErrNoActiveSession
	}
	if p.session.CurrentQuestion > 1 {
		p.session.CurrentQuestion--
	}
	return p.session.CurrentQuestion, nil
}

// Jump moves directly to a display position. Out-of-range positions leave
// the current position unchanged and report false.
func (p *Player) Jump(position int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return false
	}
	if position < 1 || position > len(p.order) {
		return false
	}
	p.session.CurrentQuestion = position
	return true
}

// ComputeScore grades every answered position against the underlying
// question's correct option set and returns (score percent, passed).
// Unanswered positions count in the denominator and never as correct.
// Idempotent: re-running yields the same result and flags.
func (p *Player) ComputeScore() (int, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return 0, false, ErrNoActiveSession
	}
	score, passed := p.scoreLocked()
	return score, passed, nil
}

func (p *Player) scoreLocked() (int, bool) {
	correct := 0
	for pos := 1; pos <= len(p.order); pos++ {
		answer, ok := p.session.Answers[pos]
		if !ok {
			continue
		}
		question := p.exam.Questions[p.order[pos-1]]
		ok = question.IsCorrectSelection(answer.SelectedAnswers)
		answer.IsCorrect = &ok
		if ok {
			correct++
		}
	}

	score := int(math.Round(100 * float64(correct) / float64(len(p.order))))
	passed := score >= p.exam.PassingScore

	p.session.Score = &score
	p.session.Passed = &passed
	return score, passed
}

// EndSession finalizes the active session: computes the score, stamps the
// end time and wall-clock duration, marks it completed and persists it.
// A persistence failure is returned alongside the snapshot; the in-memory
// session is finalized either way and a later save can retry.
func (p *Player) EndSession() (*model.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return nil, ErrNoActiveSession
	}
	if p.session.Status != model.SessionStatusInProgress {
		return nil, ErrSessionNotActive
	}

	score, passed := p.scoreLocked()

	now := time.Now()
	p.session.EndTime = &now
	p.session.TotalTimeSpent = int(now.Sub(p.session.StartTime).Seconds())
	p.session.Status = model.SessionStatusCompleted

	p.log.Info().
		Str("session_id", p.session.ID).
		Int("score", score).
		Bool("passed", passed).
		Int("total_time_spent", p.session.TotalTimeSpent).
		Msg("session completed")

	snapshot := p.session.Clone()
	if err := p.store.Save(p.session); err != nil {
		return snapshot, fmt.Errorf("persist completed session: %w", err)
	}
	return snapshot, nil
}

// Progress reports answered/marked counts and the current position.
func (p *Player) Progress() (model.Progress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return model.Progress{}, ErrNoActiveSession
	}

	total := len(p.order)
	answered := p.session.AnsweredCount()
	percentage := 0.0
	if total > 0 {
		percentage = math.Round(1000*float64(answered)/float64(total)) / 10
	}
	return model.Progress{
		Answered:        answered,
		Total:           total,
		Percentage:      percentage,
		Marked:          p.session.MarkedCount(),
		CurrentQuestion: p.session.CurrentQuestion,
	}, nil
}

// ResumeSession loads an in-progress record from the store and makes it the
// active session.
func (p *Player) ResumeSession(sessionID string) (*model.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, err := p.store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionStatusInProgress {
		return nil, ErrSessionNotActive
	}

	p.adoptLocked(session)
	p.log.Info().Str("session_id", session.ID).Msg("session resumed")
	return p.session.Clone(), nil
}

// LoadForReview loads a completed record read-only: status moves to
// reviewed, answer and mark operations stay rejected, and the stored score
// is kept as-is.
func (p *Player) LoadForReview(sessionID string) (*model.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, err := p.store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionStatusInProgress {
		return nil, ErrSessionNotActive
	}

	session.Status = model.SessionStatusReviewed
	p.adoptLocked(session)
	p.log.Info().Str("session_id", session.ID).Msg("session loaded for review")
	return p.session.Clone(), nil
}

// adoptLocked installs a loaded session and rebuilds the display order. The
// record format does not carry the order, and sessions are never
// randomized or subset after the fact, so the identity order over the full
// question list is the correct reconstruction.
func (p *Player) adoptLocked(session *model.Session) {
	order := make([]int, len(p.exam.Questions))
	for i := range order {
		order[i] = i
	}
	p.order = order
	p.exam.TotalQuestions = len(order)

	if session.Answers == nil {
		session.Answers = make(map[int]*model.Answer)
	}
	if session.CurrentQuestion < 1 {
		session.CurrentQuestion = 1
	}
	if session.CurrentQuestion > len(order) {
		session.CurrentQuestion = len(order)
	}
	p.session = session
}

// SaveActive persists the active session if one is in progress. The
// autosave worker calls this on a cadence; a full-record overwrite makes
// redundant saves harmless.
func (p *Player) SaveActive() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil || p.session.Status != model.SessionStatusInProgress {
		return nil
	}
	return p.store.Save(p.session)
}

// DeleteSession removes a stored session record. The active session (if it
// is the one deleted) stays usable in memory.
func (p *Player) DeleteSession(sessionID string) bool {
	return p.store.Delete(sessionID)
}

// ListSessions returns stored session summaries, optionally filtered by
// status.
func (p *Player) ListSessions(status model.SessionStatus) ([]model.SessionSummary, error) {
	return p.store.List(status)
}

// IsNotFound reports whether err is the store's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
