package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/value"
)

func TestGamePlay(t *testing.T) {
	rq := require.New(t)

	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	game := entity.NewGame("g1", 42, start)

	rq.Equal(value.StatusLooping, game.Status)

	inputs := []string{"10", "abc", "70", "42"}
	expected := []entity.Turn{
		{Accepted: true, Guess: 10, Outcome: value.Less},
		{Accepted: false},
		{Accepted: true, Guess: 70, Outcome: value.Greater},
		{Accepted: true, Guess: 42, Outcome: value.Equal},
	}

	for i, input := range inputs {
		turn, err := game.Play(input, start.Add(time.Duration(i)*time.Second))
		rq.NoError(err)
		rq.Equal(expected[i].Accepted, turn.Accepted, "input %q", input)

		if !turn.Accepted {
			rq.NotEmpty(turn.Reason)
			continue
		}

		rq.Equal(expected[i].Guess, turn.Guess)
		rq.Equal(expected[i].Outcome, turn.Outcome)
	}

	rq.True(game.Done())
	rq.Equal(3, game.Attempts)
	rq.Equal(1, game.Rejected)
	rq.Equal(value.Secret(42), game.Secret)
	rq.Equal(start.Add(3*time.Second), game.FinishedAt)

	_, err := game.Play("42", start)
	rq.ErrorIs(err, entity.ErrGameFinished)
	rq.Equal(3, game.Attempts)
}

func TestGamePlayMalformedNeverAdvances(t *testing.T) {
	rq := require.New(t)

	game := entity.NewGame("g2", 7, time.Now())

	for _, input := range []string{"abc", "", "-5", "3.14", " ", "seven", "1e2"} {
		turn, err := game.Play(input, time.Now())
		rq.NoError(err)
		rq.False(turn.Accepted)
	}

	rq.Equal(value.StatusLooping, game.Status)
	rq.Equal(value.Secret(7), game.Secret)
	rq.Zero(game.Attempts)
	rq.Equal(7, game.Rejected)

	turn, err := game.Play("7", time.Now())
	rq.NoError(err)
	rq.Equal(value.Equal, turn.Outcome)
	rq.True(game.Done())
}
