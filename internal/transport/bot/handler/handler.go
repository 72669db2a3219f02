package handler

import (
	"context"

	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/value"
	"guess_game/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type gameService interface {
	Start(ctx context.Context, id value.GameID) (entity.Game, error)
	Get(ctx context.Context, id value.GameID) (entity.Game, error)
	Guess(ctx context.Context, id value.GameID, text string) (entity.Turn, entity.Game, error)
}

type Handler struct {
	svc gameService
}

func New(svc gameService) *Handler {
	return &Handler{
		svc: svc,
	}
}
