package server

import (
	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/service/game"
	"guess_game/pkg/rest"
)

func newRESTGame(g entity.Game) rest.Game {
	result := rest.Game{
		ID:        g.ID.String(),
		Status:    g.Status.String(),
		Attempts:  g.Attempts,
		Rejected:  g.Rejected,
		StartedAt: g.StartedAt,
	}

	// Пока партия идёт, число не раскрываем.
	if g.Done() {
		secret := uint32(g.Secret)
		finishedAt := g.FinishedAt

		result.Secret = &secret
		result.FinishedAt = &finishedAt
	}

	return result
}

func newRESTGuessResponse(turn entity.Turn, g entity.Game) rest.GuessResponse {
	response := rest.GuessResponse{
		Accepted: turn.Accepted,
		Game:     newRESTGame(g),
	}

	if !turn.Accepted {
		response.Message = game.MsgPrompt
		response.Reason = turn.Reason

		return response
	}

	guess := uint32(turn.Guess)

	response.Guess = &guess
	response.Outcome = turn.Outcome.String()
	response.Message = game.Verdict(turn.Outcome)

	return response
}
