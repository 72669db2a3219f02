package modules

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"guess_game/pkg/logx"
	"guess_game/pkg/metrics"
)

type MetricServer struct {
	ListenAddress string
	Collectors    []prometheus.Collector
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	for _, c := range m.Collectors {
		if err := prometheus.Register(c); err != nil {
			logger(ctx).Error("prometheus.Register", logx.Error(err))
		}
	}

	prometheusServer := metrics.NewPrometheusServer(
		m.ListenAddress,
		prometheus.DefaultGatherer,
	)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}
