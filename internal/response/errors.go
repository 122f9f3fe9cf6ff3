package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Session lifecycle ─────────────────────────────────────────────
	ErrNoActiveSession  ErrCode = "NO_ACTIVE_SESSION"
	ErrSessionNotActive ErrCode = "SESSION_NOT_ACTIVE"
	ErrSessionNotFound  ErrCode = "SESSION_NOT_FOUND"
	ErrEmptyExam        ErrCode = "EMPTY_EXAM"

	// ─── Answering / navigation ────────────────────────────────────────
	ErrInvalidPosition    ErrCode = "INVALID_POSITION"
	ErrInvalidOptionIndex ErrCode = "INVALID_OPTION_INDEX"
	ErrNotYetAnswered     ErrCode = "NOT_YET_ANSWERED"

	// ─── Persistence ───────────────────────────────────────────────────
	ErrPersistence ErrCode = "PERSISTENCE_FAILURE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrNoActiveSession:
		return "No exam session is active. Start or resume a session first."
	case ErrSessionNotActive:
		return "The session is completed or in review and cannot be modified."
	case ErrSessionNotFound:
		return "No stored session exists for that id."
	case ErrEmptyExam:
		return "The exam has no questions, so a session cannot start."
	case ErrInvalidPosition:
		return "The question position is out of range."
	case ErrInvalidOptionIndex:
		return "One or more selected options do not exist for this question."
	case ErrNotYetAnswered:
		return "The question has not been answered yet and cannot be marked."
	case ErrPersistence:
		return "The session could not be written to disk. The in-memory session is intact; retry the save."
	case ErrInternal:
		return "An internal error occurred."
	default:
		return "An unexpected error occurred."
	}
}
