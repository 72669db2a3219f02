package contextx

import (
	"context"
	"fmt"
)

type GameID string

type contextKeyGameID struct{}

func (g GameID) String() string {
	return string(g)
}

func WithGameID(ctx context.Context, gameID GameID) context.Context {
	return context.WithValue(ctx, contextKeyGameID{}, gameID)
}

func GameIDFromContext(ctx context.Context) (GameID, error) {
	gameID, ok := ctx.Value(contextKeyGameID{}).(GameID)
	if !ok {
		return "", fmt.Errorf("game id: %w", ErrNoValue)
	}

	return gameID, nil
}
