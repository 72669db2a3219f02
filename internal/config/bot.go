package config

// Bot — Telegram-бот. Пустой токен выключает бота.
type Bot struct {
	Token          string  `env:"BOT_TOKEN" json:"-"`
	AllowedChatIDs []int64 `env:"BOT_ALLOWED_CHAT_IDS" envSeparator:","`
	NotifyChatID   int64   `env:"BOT_NOTIFY_CHAT_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

func (b Bot) NotifyEnabled() bool {
	return b.Token != "" && b.NotifyChatID != 0
}
