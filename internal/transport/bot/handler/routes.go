package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"guess_game/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChatIDs []int64) {
	chats := bh.Group(th.AnyMessage())
	chats.Use(middleware.AllowedChats(allowedChatIDs))

	chats.HandleMessage(h.OnNewGame, th.CommandEqual("start"))
	chats.HandleMessage(h.OnNewGame, th.CommandEqual("new"))
	chats.HandleMessage(h.OnStatus, th.CommandEqual("status"))

	// Любой другой текст — строка ввода.
	chats.HandleMessage(h.OnGuess, th.AnyMessageWithText())
}
