package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"guess_game/internal/transport/bot/handler"
	"guess_game/pkg/logx"
)

// Bot — Telegram-бот: одна партия на чат, каждое сообщение — строка ввода.
type Bot struct {
	bot            *telego.Bot
	handler        *handler.Handler
	allowedChatIDs []int64
}

func New(
	bot *telego.Bot,
	h *handler.Handler,
	allowedChatIDs []int64,
) *Bot {
	return &Bot{
		bot:            bot,
		handler:        h,
		allowedChatIDs: allowedChatIDs,
	}
}

// Run получает обновления long polling'ом до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: 60,
	})
	if err != nil {
		return fmt.Errorf("failed to get updates: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("failed to create bot handler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.allowedChatIDs)

	go func() {
		if err := botHandler.Start(); err != nil {
			logger(ctx).Error("failed to start bot handler", logx.Error(err))
		}
	}()

	<-ctx.Done()

	if err := botHandler.Stop(); err != nil {
		logger(ctx).Error("failed to stop bot handler", logx.Error(err))
	}

	return nil
}
