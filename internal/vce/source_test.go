package vce

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examtools/vceplay/internal/model"
)

func TestLoadIsDeterministicPerPath(t *testing.T) {
	source := NewSource(zerolog.Nop(), 0)
	path := "vce/Microsoft.actualtests.AZ-104.v2025-02-16.by.ida.206q.vce"

	first, err := source.Load(path)
	require.NoError(t, err)
	second, err := source.Load(path)
	require.NoError(t, err)

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Questions, second.Questions)
}

func TestLoadQuestionCountFromFilename(t *testing.T) {
	source := NewSource(zerolog.Nop(), 0)

	exam, err := source.Load("vce/Microsoft.actualtests.AZ-104.v2025-02-16.by.ida.206q.vce")
	require.NoError(t, err)
	assert.Equal(t, 206, exam.TotalQuestions)
	assert.Len(t, exam.Questions, 206)

	// Sequential 1-based ids survive the pool cycling.
	for i, q := range exam.Questions {
		assert.Equal(t, i+1, q.ID)
	}
}

func TestLoadDefaultQuestionCount(t *testing.T) {
	source := NewSource(zerolog.Nop(), 0)
	exam, err := source.Load("vce/some-other-exam.vce")
	require.NoError(t, err)
	assert.Len(t, exam.Questions, DefaultQuestionCount)

	custom := NewSource(zerolog.Nop(), 7)
	exam, err = custom.Load("vce/some-other-exam.vce")
	require.NoError(t, err)
	assert.Len(t, exam.Questions, 7)
}

func TestLoadDerivesTitleAndDefaults(t *testing.T) {
	source := NewSource(zerolog.Nop(), 0)
	exam, err := source.Load("vce/Designing_Azure-Infrastructure.AZ-305.35q.vce")
	require.NoError(t, err)

	assert.Equal(t, "Designing Azure Infrastructure AZ 305 35q", exam.Title)
	assert.Equal(t, 70, exam.PassingScore)
	assert.Equal(t, "Unknown", exam.Author)
	assert.Nil(t, exam.TimeLimitMinutes)
}

func TestTopicPoolSelection(t *testing.T) {
	source := NewSource(zerolog.Nop(), 0)
	exam, err := source.Load("vce/Microsoft.AZ-104.admin.10q.vce")
	require.NoError(t, err)

	pool := make(map[string]bool)
	for _, q := range az104Pool() {
		pool[q.Text] = true
	}
	for _, q := range exam.Questions {
		assert.True(t, pool[q.Text], "question %q should come from the AZ-104 pool", q.Text)
	}
}

func TestQuestionsAreWellFormed(t *testing.T) {
	source := NewSource(zerolog.Nop(), 0)
	exam, err := source.Load("vce/general-cloud-exam.vce")
	require.NoError(t, err)

	for _, q := range exam.Questions {
		assert.NotEmpty(t, q.Text)
		assert.GreaterOrEqual(t, len(q.Options), 2)
		assert.NotEmpty(t, q.CorrectOptions)
		for _, idx := range q.CorrectOptions {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, len(q.Options))
		}
		switch q.Kind {
		case model.QuestionKindSingle:
			assert.Len(t, q.CorrectOptions, 1)
		case model.QuestionKindMultiple:
		default:
			t.Fatalf("unexpected question kind %q", q.Kind)
		}
	}
}

func TestExtractQuestionCount(t *testing.T) {
	cases := map[string]int{
		"Microsoft.actualtests.AZ-104.206q.vce": 206,
		"exam.94q.vcex":                         94,
		"dump_35q_final.vce":                    35,
		"plain-exam.vce":                        0,
	}
	for name, want := range cases {
		assert.Equal(t, want, extractQuestionCount(name), name)
	}
}

func TestDecodeFileRejectsJunk(t *testing.T) {
	dir := t.TempDir()

	noSig := filepath.Join(dir, "nosig.vce")
	require.NoError(t, os.WriteFile(noSig, []byte("plain text, not a vce file"), 0o644))
	_, err := decodeFile(noSig)
	assert.ErrorIs(t, err, ErrUndecodable)

	// A valid signature with an opaque payload still yields nothing usable.
	payload := append([]byte{0x85, 0xa8, 0x06, 0x02}, make([]byte, 512)...)
	sigOnly := filepath.Join(dir, "sig.vce")
	require.NoError(t, os.WriteFile(sigOnly, payload, 0o644))
	_, err = decodeFile(sigOnly)
	assert.ErrorIs(t, err, ErrUndecodable)

	_, err = decodeFile(filepath.Join(dir, "missing.vce"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUndecodable)
}
