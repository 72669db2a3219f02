package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"guess_game/internal/domain"
	"guess_game/internal/domain/value"
	"guess_game/internal/transport/bot/view"
	"guess_game/pkg/contextx"
	"guess_game/pkg/errcodes"
	"guess_game/pkg/logx"
)

func (h *Handler) OnNewGame(ctx *th.Context, msg telego.Message) error {
	reqCtx, id := chatContext(ctx, msg)

	if _, err := h.svc.Start(reqCtx, id); err != nil {
		return h.fail(reqCtx, ctx.Bot(), msg.Chat.ID, fmt.Errorf("svc.Start: %w", err))
	}

	return h.send(reqCtx, ctx.Bot(), msg.Chat.ID, view.StartMessage())
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	reqCtx, id := chatContext(ctx, msg)

	g, err := h.svc.Get(reqCtx, id)
	if err != nil {
		return h.fail(reqCtx, ctx.Bot(), msg.Chat.ID, fmt.Errorf("svc.Get: %w", err))
	}

	return h.send(reqCtx, ctx.Bot(), msg.Chat.ID, view.StatusMessage(g))
}

func (h *Handler) OnGuess(ctx *th.Context, msg telego.Message) error {
	reqCtx, id := chatContext(ctx, msg)

	turn, _, err := h.svc.Guess(reqCtx, id, msg.Text)
	if err != nil {
		return h.fail(reqCtx, ctx.Bot(), msg.Chat.ID, fmt.Errorf("svc.Guess: %w", err))
	}

	return h.send(reqCtx, ctx.Bot(), msg.Chat.ID, view.TurnMessage(turn))
}

// fail отвечает игроку по коду ошибки. Ожидаемые ошибки не всплывают в BotHandler.
func (h *Handler) fail(ctx context.Context, bot *telego.Bot, chatID int64, err error) error {
	code, _ := domain.GetCode(err)

	switch code {
	case errcodes.GameNotFound:
		return h.send(ctx, bot, chatID, view.NoGameMessage)
	case errcodes.GameFinished:
		return h.send(ctx, bot, chatID, view.GameOverMessage)
	default:
		logger(ctx).Error("bot handler failed", logx.Error(err))

		if sendErr := h.send(ctx, bot, chatID, view.FailureMessage); sendErr != nil {
			logger(ctx).Error("failed to report failure", logx.Error(sendErr))
		}

		return err
	}
}

func (h *Handler) send(ctx context.Context, bot *telego.Bot, chatID int64, text string) error {
	if _, err := bot.SendMessage(ctx, tu.Message(tu.ID(chatID), text)); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

// chatContext — одна партия на чат; ID партии попадает в логгер.
func chatContext(ctx context.Context, msg telego.Message) (context.Context, value.GameID) {
	id := value.ChatGameID(msg.Chat.ID)

	ctx = contextx.WithGameID(ctx, contextx.GameID(id))
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		logx.Stringer(logx.FieldGameID, id),
		slog.Int64(logx.FieldChatID, msg.Chat.ID),
	))

	return ctx, id
}
