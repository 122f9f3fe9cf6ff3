package model

import "time"

// SessionStatus enumerates exam session states. Transitions only move
// forward: in_progress -> completed -> reviewed.
type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusReviewed   SessionStatus = "reviewed"
)

// Answer records the user's response to one question, keyed by display
// position in Session.Answers.
type Answer struct {
	QuestionID      int        `json:"question_id"`
	SelectedAnswers []int      `json:"selected_answers"`
	TimeSpent       int        `json:"time_spent"`
	Timestamp       time.Time  `json:"timestamp"`
	IsCorrect       *bool      `json:"is_correct"`
	IsMarked        bool       `json:"is_marked"`
}

// Session is one complete attempt at an exam. The answers map is sparse:
// only answered display positions are present. encoding/json serializes the
// int keys as strings, which matches the on-disk record format.
type Session struct {
	ID              string          `json:"session_id"`
	ExamTitle       string          `json:"exam_title"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         *time.Time      `json:"end_time"`
	TotalTimeSpent  int             `json:"total_time_spent"`
	Status          SessionStatus   `json:"status"`
	Answers         map[int]*Answer `json:"answers"`
	CurrentQuestion int             `json:"current_question"`
	Score           *int            `json:"score"`
	Passed          *bool           `json:"passed"`
}

// SessionSummary is the listing view of a stored session.
type SessionSummary struct {
	ID        string        `json:"session_id"`
	ExamTitle string        `json:"exam_title"`
	StartTime time.Time     `json:"start_time"`
	Status    SessionStatus `json:"status"`
	Score     *int          `json:"score"`
}

// Progress describes how far along an active session is.
type Progress struct {
	Answered        int     `json:"answered"`
	Total           int     `json:"total"`
	Percentage      float64 `json:"percentage"`
	Marked          int     `json:"marked"`
	CurrentQuestion int     `json:"current_question"`
}

// AnsweredCount returns the number of answered display positions.
func (s *Session) AnsweredCount() int {
	return len(s.Answers)
}

// MarkedCount returns the number of answers flagged for review.
func (s *Session) MarkedCount() int {
	marked := 0
	for _, a := range s.Answers {
		if a.IsMarked {
			marked++
		}
	}
	return marked
}

// Summary returns the listing view of the session.
func (s *Session) Summary() SessionSummary {
	return SessionSummary{
		ID:        s.ID,
		ExamTitle: s.ExamTitle,
		StartTime: s.StartTime,
		Status:    s.Status,
		Score:     s.Score,
	}
}

// Clone returns a deep copy of the session. Snapshots handed to callers must
// not alias the live answers map.
func (s *Session) Clone() *Session {
	out := *s
	if s.EndTime != nil {
		t := *s.EndTime
		out.EndTime = &t
	}
	if s.Score != nil {
		v := *s.Score
		out.Score = &v
	}
	if s.Passed != nil {
		v := *s.Passed
		out.Passed = &v
	}
	out.Answers = make(map[int]*Answer, len(s.Answers))
	for pos, a := range s.Answers {
		ac := *a
		ac.SelectedAnswers = append([]int(nil), a.SelectedAnswers...)
		if a.IsCorrect != nil {
			v := *a.IsCorrect
			ac.IsCorrect = &v
		}
		out.Answers[pos] = &ac
	}
	return &out
}

// StartSessionRequest is the payload for starting a new session.
// RandomizeQuestions is accepted for compatibility with stored player
// settings but the player currently keeps display order stable.
type StartSessionRequest struct {
	QuestionLimit      int  `json:"question_limit" binding:"omitempty,min=1"`
	RandomizeQuestions bool `json:"randomize_questions"`
}

// SelectAnswerRequest is the payload for recording an answer.
type SelectAnswerRequest struct {
	SelectedAnswers []int `json:"selected_answers" binding:"required,min=1,dive,min=0"`
}

// JumpRequest is the payload for jumping to a display position.
type JumpRequest struct {
	Position int `json:"position" binding:"required,min=1"`
}

// SessionIDRequest is the payload for resume/review operations.
type SessionIDRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
