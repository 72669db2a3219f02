package value

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/xid"
)

var errEmptyGameID = errors.New("empty game id")

type GameID string

func NewGameID() GameID {
	return GameID(xid.New().String())
}

// ChatGameID — игра Telegram-чата, одна на чат.
func ChatGameID(chatID int64) GameID {
	return GameID(fmt.Sprintf("tg-%d", chatID))
}

// ParseGameID принимает только ID, выданные NewGameID (xid).
// Партии чатов (ChatGameID) извне адресовать нельзя.
func ParseGameID(s string) (GameID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmptyGameID
	}

	x, err := xid.FromString(s)
	if err != nil {
		return "", fmt.Errorf("xid.FromString: %w", err)
	}

	return GameID(x.String()), nil
}

func (id GameID) String() string {
	return string(id)
}
