package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type runner interface {
	Run(ctx context.Context) error
}

// Bot runs a long-polling bot until ctx is done.
type Bot struct{}

func (Bot) Run(ctx context.Context, g *errgroup.Group, bot runner) {
	g.Go(func() error {
		logger(ctx).Info("bot started")

		if err := bot.Run(ctx); err != nil {
			return fmt.Errorf("bot.Run: %w", err)
		}

		logger(ctx).Info("bot stopped")

		return nil
	})
}
