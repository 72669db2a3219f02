package view

import (
	"fmt"
	"strings"

	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/service/game"
	"guess_game/internal/domain/value"
)

const (
	NoGameMessage   = "No game in this chat yet. Send /new to start one."
	GameOverMessage = "This game is over. Send /new to play again."
	FailureMessage  = "Something went wrong, try again later."
)

// StartMessage — приветствие новой партии, как в консоли.
func StartMessage() string {
	return game.MsgTitle + "\n" + game.MsgPrompt
}

// TurnMessage — ответ на одну строку игрока.
// Неразобранная строка молча переспрашивается.
func TurnMessage(turn entity.Turn) string {
	if !turn.Accepted {
		return game.MsgPrompt
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(game.MsgGuessed, turn.Guess))
	sb.WriteString("\n")
	sb.WriteString(game.Verdict(turn.Outcome))

	if turn.Outcome != value.Equal {
		sb.WriteString("\n")
		sb.WriteString(game.MsgPrompt)
	}

	return sb.String()
}

func StatusMessage(g entity.Game) string {
	if g.Done() {
		return fmt.Sprintf("Game over: the number was %d, guessed in %d attempts.", g.Secret, g.Attempts)
	}

	return fmt.Sprintf("Game in progress: %d attempts, %d lines not understood.", g.Attempts, g.Rejected)
}
