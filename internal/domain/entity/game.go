package entity

import (
	"time"

	"guess_game/internal/domain"
	"guess_game/internal/domain/value"
	"guess_game/pkg/errcodes"
)

//nolint:gochecknoglobals
var ErrGameFinished = domain.NewError(errcodes.GameFinished, "game already finished")

// Game — одна партия «угадай число». Secret не меняется после создания,
// Status переходит в done только при точном совпадении.
type Game struct {
	ID         value.GameID `json:"id"`
	Secret     value.Secret `json:"secret"`
	Status     value.Status `json:"status"`
	Attempts   int          `json:"attempts"` // Сколько попыток дошло до сравнения
	Rejected   int          `json:"rejected"` // Сколько строк не разобралось как число
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at,omitzero"`
}

func NewGame(id value.GameID, secret value.Secret, now time.Time) Game {
	return Game{
		ID:        id,
		Secret:    secret,
		Status:    value.StatusLooping,
		StartedAt: now,
	}
}

func (g *Game) Done() bool {
	return g.Status == value.StatusDone
}

// Play скармливает игре одну строку ввода.
// Неразобранная строка не ошибка: Turn.Accepted=false, игра продолжается.
func (g *Game) Play(text string, now time.Time) (Turn, error) {
	if g.Done() {
		return Turn{}, ErrGameFinished
	}

	guess, err := value.ParseGuess(text)
	if err != nil {
		g.Rejected++
		return Turn{Reason: err.Error()}, nil
	}

	g.Attempts++

	outcome := value.Compare(guess, g.Secret)
	if outcome == value.Equal {
		g.Status = value.StatusDone
		g.FinishedAt = now
	}

	return Turn{
		Accepted: true,
		Guess:    guess,
		Outcome:  outcome,
	}, nil
}

// Turn — результат одной строки: либо сравнение, либо причина отказа.
type Turn struct {
	Accepted bool
	Guess    value.Guess
	Outcome  value.Outcome
	Reason   string
}
