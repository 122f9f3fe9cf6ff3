package player

import "errors"

var (
	// ErrEmptyExam means a session cannot start because the exam has no
	// questions.
	ErrEmptyExam = errors.New("exam has no questions")

	// ErrNoActiveSession means an operation needs a bound session and none
	// is active.
	ErrNoActiveSession = errors.New("no active session")

	// ErrSessionNotActive means the active session is completed or loaded
	// for review, so mutating operations are rejected.
	ErrSessionNotActive = errors.New("session is not in progress")

	// ErrInvalidPosition means a display position outside [1, total].
	ErrInvalidPosition = errors.New("question position out of range")

	// ErrInvalidOptionIndex means a selected option index outside the
	// question's option list.
	ErrInvalidOptionIndex = errors.New("option index out of range")

	// ErrNotYetAnswered means mark-for-review was requested for a position
	// with no recorded answer.
	ErrNotYetAnswered = errors.New("question has not been answered")
)
