package model

// QuestionKind enumerates supported question formats.
type QuestionKind string

const (
	QuestionKindSingle   QuestionKind = "single"
	QuestionKindMultiple QuestionKind = "multiple"
)

// Question represents a single exam question. Immutable once produced by the
// question source.
type Question struct {
	ID             int          `json:"id"`
	Kind           QuestionKind `json:"kind"`
	Text           string       `json:"text"`
	Options        []string     `json:"options"`
	CorrectOptions []int        `json:"correct_options"`
	Explanation    string       `json:"explanation,omitempty"`
}

// CorrectLetters renders the correct option indices as "A,C" style letters,
// the format exam dumps conventionally use.
func (q Question) CorrectLetters() string {
	letters := make([]byte, 0, len(q.CorrectOptions)*2)
	for i, idx := range q.CorrectOptions {
		if i > 0 {
			letters = append(letters, ',')
		}
		letters = append(letters, byte('A'+idx))
	}
	return string(letters)
}

// IsCorrectSelection reports whether the selected indices exactly match the
// question's correct option set, order-insensitively.
func (q Question) IsCorrectSelection(selected []int) bool {
	if len(selected) != len(q.CorrectOptions) {
		return false
	}
	want := make(map[int]struct{}, len(q.CorrectOptions))
	for _, idx := range q.CorrectOptions {
		want[idx] = struct{}{}
	}
	for _, idx := range selected {
		if _, ok := want[idx]; !ok {
			return false
		}
	}
	return true
}
