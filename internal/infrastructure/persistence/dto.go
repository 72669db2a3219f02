package persistence

import (
	"time"

	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/value"
)

// gameSchema — строка таблицы games.
type gameSchema struct {
	ID         string    `db:"id"`
	Secret     int64     `db:"secret"`
	Attempts   int       `db:"attempts"`
	Rejected   int       `db:"rejected"`
	StartedAt  time.Time `db:"started_at"`
	FinishedAt time.Time `db:"finished_at"`
}

func fromGame(g entity.Game) gameSchema {
	return gameSchema{
		ID:         g.ID.String(),
		Secret:     int64(g.Secret),
		Attempts:   g.Attempts,
		Rejected:   g.Rejected,
		StartedAt:  g.StartedAt,
		FinishedAt: g.FinishedAt,
	}
}

// toDomain: в таблицу попадают только выигранные партии.
func (s gameSchema) toDomain() entity.Game {
	return entity.Game{
		ID:         value.GameID(s.ID),
		Secret:     value.Secret(s.Secret), //nolint:gosec // CHECK constraint keeps it in range
		Status:     value.StatusDone,
		Attempts:   s.Attempts,
		Rejected:   s.Rejected,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
}
