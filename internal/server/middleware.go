package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"guess_game/pkg/contextx"
	"guess_game/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// gameContext кладёт ID партии из пути в контекст и в поля логгера.
func gameContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		gameID := contextx.GameID(chi.URLParam(r, "id"))

		ctx = contextx.WithGameID(ctx, gameID)
		ctx = contextx.WithLogger(ctx, logger(ctx).With(logx.Stringer(logx.FieldGameID, gameID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
