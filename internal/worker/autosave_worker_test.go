package worker

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examtools/vceplay/internal/model"
	"github.com/examtools/vceplay/internal/player"
	"github.com/examtools/vceplay/internal/store"
)

func testExam() *model.Exam {
	return &model.Exam{
		Title:          "Autosave Exam",
		PassingScore:   70,
		TotalQuestions: 2,
		Questions: []model.Question{
			{ID: 1, Kind: model.QuestionKindSingle, Text: "q1", Options: []string{"a", "b"}, CorrectOptions: []int{0}},
			{ID: 2, Kind: model.QuestionKindSingle, Text: "q2", Options: []string{"a", "b"}, CorrectOptions: []int{1}},
		},
	}
}

func TestAutosavePersistsActiveSession(t *testing.T) {
	st, err := store.NewSessionStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	p := player.New(testExam(), st, zerolog.Nop())

	id, err := p.StartSession(player.StartOptions{})
	require.NoError(t, err)
	require.NoError(t, p.SelectAnswer(1, []int{0}))

	ctx, cancel := context.WithCancel(context.Background())
	w := NewAutosaveWorker(p, 20*time.Millisecond, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, err := st.Load(id)
		return err == nil
	}, time.Second, 5*time.Millisecond)

	// Answers recorded after the last tick survive via the shutdown save.
	require.NoError(t, p.SelectAnswer(2, []int{1}))
	cancel()
	<-done

	saved, err := st.Load(id)
	require.NoError(t, err)
	assert.Contains(t, saved.Answers, 2)
	assert.Equal(t, model.SessionStatusInProgress, saved.Status)
}

func TestAutosaveDisabledAndIdle(t *testing.T) {
	st, err := store.NewSessionStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	p := player.New(testExam(), st, zerolog.Nop())

	// Zero interval returns immediately.
	w := NewAutosaveWorker(p, 0, zerolog.Nop())
	done := make(chan struct{})
	go func() {
		w.Start(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled worker did not return")
	}

	// With no active session a tick is a no-op.
	ctx, cancel := context.WithCancel(context.Background())
	w = NewAutosaveWorker(p, 10*time.Millisecond, zerolog.Nop())
	go w.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()

	summaries, err := st.List("")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
