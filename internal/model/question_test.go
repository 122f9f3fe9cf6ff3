package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCorrectSelection(t *testing.T) {
	q := Question{
		Kind:           QuestionKindMultiple,
		Options:        []string{"a", "b", "c", "d"},
		CorrectOptions: []int{0, 2},
	}

	assert.True(t, q.IsCorrectSelection([]int{0, 2}))
	assert.True(t, q.IsCorrectSelection([]int{2, 0}), "selection order must not matter")
	assert.False(t, q.IsCorrectSelection([]int{0}))
	assert.False(t, q.IsCorrectSelection([]int{0, 1}))
	assert.False(t, q.IsCorrectSelection([]int{0, 1, 2}))
	assert.False(t, q.IsCorrectSelection(nil))
}

func TestCorrectLetters(t *testing.T) {
	assert.Equal(t, "A", Question{CorrectOptions: []int{0}}.CorrectLetters())
	assert.Equal(t, "A,C", Question{CorrectOptions: []int{0, 2}}.CorrectLetters())
	assert.Equal(t, "", Question{}.CorrectLetters())
}

func TestSessionCounts(t *testing.T) {
	s := &Session{
		Answers: map[int]*Answer{
			1: {IsMarked: true},
			2: {},
			5: {IsMarked: true},
		},
	}
	assert.Equal(t, 3, s.AnsweredCount())
	assert.Equal(t, 2, s.MarkedCount())
}
