package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var smallDict = []string{"crane", "trace", "react", "cater", "caret", "adieu", "Tracy"}

// scorer answers every prompt with two-pass scoring against answer and
// records the prompts it saw.
func scorer(answer string, seen *[]session.Prompt) session.FeedbackProvider {
	return session.FeedbackFunc(func(_ context.Context, p session.Prompt) ([5]solver.Feedback, error) {
		if seen != nil {
			*seen = append(*seen, p)
		}
		return game.Score(answer, p.Guess), nil
	})
}

func newSession(t *testing.T, cfg session.Config, dict []string) *session.Session {
	t.Helper()
	s, err := session.New(cfg, dict)
	require.NoError(t, err)
	return s
}

func TestRun_Solves(t *testing.T) {
	s := newSession(t, session.DefaultConfig(), smallDict)
	var prompts []session.Prompt
	var rendered []session.Round

	out, err := s.Run(context.Background(), session.Collaborators{
		Feedback: scorer("TRACE", &prompts),
		Renderer: session.RendererFunc(func(r session.Round) { rendered = append(rendered, r) }),
	})
	require.NoError(t, err)

	assert.Equal(t, session.StatusSolved, out.Status)
	assert.Equal(t, "TRACE", out.Word)
	assert.Equal(t, 3, out.Attempts)
	require.Len(t, out.Rounds, 3)
	assert.Equal(t, "ADIEU", out.Rounds[0].Guess)
	assert.Equal(t, "CRANE", out.Rounds[1].Guess)
	assert.Equal(t, [5]solver.Tile{solver.TileYellow, solver.TileBlack, solver.TileBlack, solver.TileYellow, solver.TileBlack},
		out.Rounds[0].Tiles)
	assert.Equal(t, out.Rounds, rendered)

	require.Len(t, prompts, 3)
	assert.Equal(t, [5]bool{}, prompts[0].Solved)
	assert.Equal(t, [5]bool{false, true, true, false, true}, prompts[2].Solved)
	assert.Equal(t, 3, prompts[2].Attempt)
}

func TestRun_OracleRejectsCandidate(t *testing.T) {
	s := newSession(t, session.DefaultConfig(), smallDict)
	var asked []string
	oracle := session.OracleFunc(func(_ context.Context, w string) (bool, error) {
		asked = append(asked, w)
		return w != "CRANE", nil
	})

	out, err := s.Run(context.Background(), session.Collaborators{Feedback: scorer("TRACE", nil), Oracle: oracle})
	require.NoError(t, err)
	assert.Equal(t, session.StatusSolved, out.Status)
	assert.Equal(t, 2, out.Attempts)
	assert.Equal(t, []string{"CRANE", "TRACE"}, asked)
}

func TestRun_OracleRejectsEverything(t *testing.T) {
	s := newSession(t, session.DefaultConfig(), smallDict)
	never := session.OracleFunc(func(context.Context, string) (bool, error) { return false, nil })

	out, err := s.Run(context.Background(), session.Collaborators{Feedback: scorer("TRACE", nil), Oracle: never})
	require.NoError(t, err)
	assert.Equal(t, session.StatusFailedNoCandidates, out.Status)
	assert.Equal(t, 2, out.Attempts)
	assert.Empty(t, out.Word)
}

func TestRun_PoolEmpties(t *testing.T) {
	s := newSession(t, session.DefaultConfig(), []string{"crane", "react"})
	out, err := s.Run(context.Background(), session.Collaborators{Feedback: scorer("TRACE", nil)})
	require.NoError(t, err)
	assert.Equal(t, session.StatusFailedNoCandidates, out.Status)
	assert.Equal(t, 2, out.Attempts)
	assert.Len(t, out.Rounds, 2)
}

func TestRun_RequiredLetterNowhereInDictionary(t *testing.T) {
	cfg := session.Config{OpeningGuess: "ZEBRA", MaxAttempts: 6}
	s := newSession(t, cfg, []string{"apple", "crane"})
	fb := session.FeedbackFunc(func(context.Context, session.Prompt) ([5]solver.Feedback, error) {
		return [5]solver.Feedback{solver.Present, solver.Absent, solver.Absent, solver.Absent, solver.Absent}, nil
	})

	out, err := s.Run(context.Background(), session.Collaborators{Feedback: fb})
	require.NoError(t, err)
	assert.Equal(t, session.StatusFailedNoCandidates, out.Status)
	assert.Equal(t, 1, out.Attempts)
	assert.Empty(t, s.Candidates())
}

func TestRun_Exhausted(t *testing.T) {
	s := newSession(t, session.Config{OpeningGuess: "ADIEU", MaxAttempts: 2}, smallDict)
	out, err := s.Run(context.Background(), session.Collaborators{Feedback: scorer("TRACE", nil)})
	require.NoError(t, err)
	assert.Equal(t, session.StatusFailedExhausted, out.Status)
	assert.Equal(t, 2, out.Attempts)
	assert.Equal(t, []string{"trace"}, s.Candidates())
}

func TestRun_InvalidFeedbackPropagates(t *testing.T) {
	s := newSession(t, session.DefaultConfig(), smallDict)
	bad := session.FeedbackFunc(func(context.Context, session.Prompt) ([5]solver.Feedback, error) {
		return [5]solver.Feedback{solver.Absent, 7, solver.Absent, solver.Absent, solver.Absent}, nil
	})

	_, err := s.Run(context.Background(), session.Collaborators{Feedback: bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrInvalidFeedback)
	assert.Equal(t, session.StatusPlaying, s.Status())
	assert.Empty(t, s.Rounds())
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", s.State().Possible[0].Letters())
}

func TestRun_ProviderError(t *testing.T) {
	s := newSession(t, session.DefaultConfig(), smallDict)
	boom := errors.New("stdin closed")
	fb := session.FeedbackFunc(func(context.Context, session.Prompt) ([5]solver.Feedback, error) {
		return [5]solver.Feedback{}, boom
	})
	_, err := s.Run(context.Background(), session.Collaborators{Feedback: fb})
	assert.ErrorIs(t, err, boom)
}

func TestRun_Cancelled(t *testing.T) {
	s := newSession(t, session.DefaultConfig(), smallDict)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Run(ctx, session.Collaborators{Feedback: scorer("TRACE", nil)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_NoProvider(t *testing.T) {
	s := newSession(t, session.DefaultConfig(), smallDict)
	_, err := s.Run(context.Background(), session.Collaborators{})
	assert.Error(t, err)
}

func TestStepAPI(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, session.DefaultConfig(), smallDict)

	_, err := s.Submit([5]solver.Feedback{solver.Absent, solver.Absent, solver.Absent, solver.Absent, solver.Absent})
	assert.ErrorIs(t, err, session.ErrNoGuess)

	g, err := s.NextGuess(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "ADIEU", g)
	again, err := s.NextGuess(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, g, again)
	assert.ErrorIs(t, s.Reject(), session.ErrFixedOpening)

	_, err = s.Submit(game.Score("TRACE", g))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Attempt())
	assert.Equal(t, []string{"crane", "trace", "react"}, s.Candidates())

	g, err = s.NextGuess(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "CRANE", g)
	require.NoError(t, s.Reject())
	g, err = s.NextGuess(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "TRACE", g)

	snap := s.Snapshot(2)
	assert.Equal(t, "TRACE", snap.Guess)
	assert.Equal(t, 3, snap.Remaining)
	assert.Equal(t, []string{"crane", "trace"}, snap.Candidates)

	_, err = s.Submit(game.Score("TRACE", g))
	require.NoError(t, err)
	assert.Equal(t, session.StatusSolved, s.Status())
	assert.Equal(t, "TRACE", s.Snapshot(0).Word)

	_, err = s.NextGuess(ctx, nil)
	assert.ErrorIs(t, err, session.ErrFinished)
	assert.ErrorIs(t, s.Reject(), session.ErrFinished)
}

func TestNew_Defaults(t *testing.T) {
	s, err := session.New(session.Config{}, nil)
	require.NoError(t, err)
	g, err := s.NextGuess(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "ADIEU", g)
	assert.NotEmpty(t, s.ID)

	_, err = session.New(session.Config{OpeningGuess: "AB"}, nil)
	assert.ErrorIs(t, err, solver.ErrInvalidGuess)
}

func TestSnapshotIsolated(t *testing.T) {
	s := newSession(t, session.DefaultConfig(), smallDict)
	snap := s.Snapshot(0)
	_, err := s.NextGuess(context.Background(), nil)
	require.NoError(t, err)
	_, err = s.Submit(game.Score("TRACE", "ADIEU"))
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", snap.State.Possible[0].Letters())
}
