package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/samber/lo"
)

// AllowedChats пропускает дальше только сообщения из перечисленных чатов.
// Пустой список пропускает всех.
func AllowedChats(chatIDs []int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if ChatAllowed(chatIDs, update) {
			return ctx.Next(update)
		}

		return nil
	}
}

func ChatAllowed(chatIDs []int64, update telego.Update) bool {
	if update.Message == nil {
		return false
	}

	if len(chatIDs) == 0 {
		return true
	}

	return lo.Contains(chatIDs, update.Message.Chat.ID)
}
