package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"guess_game/internal/domain/value"
)

func TestCompare(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		guess   value.Guess
		secret  value.Secret
		outcome value.Outcome
	}{
		{guess: 10, secret: 42, outcome: value.Less},
		{guess: 70, secret: 42, outcome: value.Greater},
		{guess: 42, secret: 42, outcome: value.Equal},
		{guess: 0, secret: 1, outcome: value.Less},
		{guess: 4294967295, secret: 100, outcome: value.Greater},
	}

	for _, tc := range testCases {
		rq.Equal(tc.outcome, value.Compare(tc.guess, tc.secret), "guess %d secret %d", tc.guess, tc.secret)
	}

	rq.Equal("less", value.Less.String())
	rq.Equal("greater", value.Greater.String())
	rq.Equal("equal", value.Equal.String())
	rq.Equal("unknown", value.Outcome(0).String())
}

func TestGameID(t *testing.T) {
	rq := require.New(t)

	rq.NotEqual(value.NewGameID(), value.NewGameID())
	rq.Equal(value.GameID("tg-1217838677"), value.ChatGameID(1217838677))
	rq.Equal(value.GameID("tg--100200"), value.ChatGameID(-100200))

	issued := value.NewGameID()

	id, err := value.ParseGameID(" " + issued.String() + " ")
	rq.NoError(err)
	rq.Equal(issued, id)

	for _, input := range []string{"  ", "abc", "tg-12345", value.ChatGameID(12345).String()} {
		_, err = value.ParseGameID(input)
		rq.Error(err, "input %q", input)
	}
}
