package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"guess_game/internal/domain/value"
)

func TestParseGuess(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		input   string
		guess   value.Guess
		wantErr bool
	}{
		{name: "Plain", input: "42", guess: 42},
		{name: "Trailing newline", input: "42\n", guess: 42},
		{name: "CRLF and spaces", input: "  7 \r\n", guess: 7},
		{name: "Zero", input: "0", guess: 0},
		{name: "Out of game range", input: "500", guess: 500},
		{name: "Max uint32", input: "4294967295", guess: 4294967295},
		{name: "Overflow", input: "4294967296", wantErr: true},
		{name: "Letters", input: "abc", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Blank", input: "   \n", wantErr: true},
		{name: "Leading plus", input: "+5\n", guess: 5},
		{name: "Double plus", input: "++5", wantErr: true},
		{name: "Plus only", input: "+", wantErr: true},
		{name: "Plus minus", input: "+-5", wantErr: true},
		{name: "Negative", input: "-5", wantErr: true},
		{name: "Fraction", input: "3.14", wantErr: true},
		{name: "Inner space", input: "4 2", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			guess, err := value.ParseGuess(tc.input)
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			rq.Equal(tc.guess, guess)
		})
	}
}

func TestParseGuessIdempotent(t *testing.T) {
	rq := require.New(t)

	for _, input := range []string{"1", " 99 ", "100\n", "0042"} {
		first, err := value.ParseGuess(input)
		rq.NoError(err)

		second, err := value.ParseGuess(input)
		rq.NoError(err)

		rq.Equal(first, second)
	}
}

func TestSecretValid(t *testing.T) {
	rq := require.New(t)

	rq.False(value.Secret(0).Valid())
	rq.True(value.SecretMin.Valid())
	rq.True(value.Secret(50).Valid())
	rq.True(value.SecretMax.Valid())
	rq.False(value.Secret(101).Valid())
}
