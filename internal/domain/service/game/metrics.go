package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"guess_game/internal/domain/value"
)

const metricsNamespace = "guess_game"

//nolint:gochecknoglobals
var (
	gamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "games_started_total",
		Help:      "Games started.",
	})
	gamesWon = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "games_won_total",
		Help:      "Games finished with an exact guess.",
	})
	guessesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "guesses_total",
		Help:      "Guesses compared with the secret, by outcome.",
	}, []string{"outcome"})
	rejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "rejected_lines_total",
		Help:      "Input lines that did not parse as a guess.",
	})
	attemptsToWin = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "attempts_to_win",
		Help:      "Compared guesses needed to win a game.",
		Buckets:   []float64{1, 2, 3, 5, 7, 10, 15, 25, 50, 100},
	})
)

func observeTurn(accepted bool, outcome value.Outcome, attempts int) {
	if !accepted {
		rejectedTotal.Inc()
		return
	}

	guessesTotal.WithLabelValues(outcome.String()).Inc()

	if outcome == value.Equal {
		gamesWon.Inc()
		attemptsToWin.Observe(float64(attempts))
	}
}
