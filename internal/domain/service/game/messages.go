package game

import (
	"guess_game/internal/domain/value"
)

const (
	MsgTitle    = "Guess the number!"
	MsgPrompt   = "Please input your guess."
	MsgGuessed  = "You guessed: %d"
	MsgTooSmall = "Too small!"
	MsgTooBig   = "Too big!"
	MsgWin      = "You win!"
)

// Verdict переводит исход сравнения в строку для игрока.
func Verdict(outcome value.Outcome) string {
	switch outcome {
	case value.Less:
		return MsgTooSmall
	case value.Greater:
		return MsgTooBig
	case value.Equal:
		return MsgWin
	default:
		return ""
	}
}
