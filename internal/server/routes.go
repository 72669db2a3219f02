package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"guess_game/pkg/httpx/reply"
	"guess_game/pkg/logx"
	"guess_game/pkg/middlewarex"
)

// NewHandler собирает роутер со стандартной цепочкой middleware.
// extra подключаются последними (например, метрики).
func NewHandler(
	s Server,
	masker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
	extra ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)
	r.Use(extra...)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/games", func(r chi.Router) {
				r.Post("/", handler(s.postV1Games))

				r.Route("/{id}", func(r chi.Router) {
					r.Use(gameContext)

					r.Get("/", handler(s.getV1Game))
					r.Delete("/", handler(s.deleteV1Game))
					r.Post("/guesses", handler(s.postV1GameGuesses))
				})
			})

			r.Get("/results", handler(s.getV1Results))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
