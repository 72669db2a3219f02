package notifier

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"guess_game/internal/domain/entity"
)

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64, opts ...telego.BotOption) (*TelegramBot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// AnnounceWin сообщает в чат о выигранной партии.
func (b *TelegramBot) AnnounceWin(ctx context.Context, game entity.Game) error {
	text := fmt.Sprintf(
		"🏆 <b>Number guessed!</b>\n\n"+
			"🎲 <b>Game:</b> <code>%s</code>\n"+
			"🔢 <b>Secret:</b> %d\n"+
			"🎯 <b>Attempts:</b> %d\n"+
			"🙈 <b>Rejected lines:</b> %d\n"+
			"⏱ <b>Time:</b> %s",
		html.EscapeString(game.ID.String()),
		game.Secret,
		game.Attempts,
		game.Rejected,
		game.FinishedAt.Sub(game.StartedAt).Round(time.Second),
	)

	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
