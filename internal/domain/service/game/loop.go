package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"guess_game/internal/domain"
	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/value"
	"guess_game/pkg/errcodes"
	"guess_game/pkg/logx"
)

//nolint:gochecknoglobals
var (
	ErrInputUnavailable = domain.NewError(errcodes.InputUnavailable, "input unavailable")

	errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// Loop — консольный цикл «угадай число»: подсказка, строка, сравнение,
// пока не будет точного попадания.
type Loop struct {
	source SecretSource
	out    io.Writer
	now    func() time.Time
}

func NewLoop(source SecretSource, out io.Writer) *Loop {
	return &Loop{
		source: source,
		out:    out,
		now:    time.Now,
	}
}

// Run читает строки из in до победы. Ошибка чтения (в том числе конец
// потока без данных) фатальна и возвращается как ErrInputUnavailable.
func (l *Loop) Run(ctx context.Context, in io.Reader) (entity.Game, error) {
	game := entity.NewGame(value.NewGameID(), l.source.Secret(), l.now())
	reader := bufio.NewReader(in)

	gamesStarted.Inc()
	logger(ctx).Debug("game started", logx.Stringer(logx.FieldGameID, game.ID))

	l.say(MsgTitle)

	for !game.Done() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("loop interrupted: %w", err)
		}

		l.say(MsgPrompt)

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return game, domain.WrapError(err, errcodes.InputUnavailable, "failed to read line")
		}

		// Невалидный UTF-8 — сбой чтения, а не опечатка игрока.
		if !utf8.ValidString(line) {
			return game, domain.WrapError(errInvalidUTF8, errcodes.InputUnavailable, "failed to read line")
		}

		turn, err := game.Play(line, l.now())
		if err != nil {
			return game, fmt.Errorf("game.Play: %w", err)
		}

		observeTurn(turn.Accepted, turn.Outcome, game.Attempts)

		if !turn.Accepted {
			logger(ctx).Debug("guess rejected", slog.String(logx.FieldReason, turn.Reason))
			continue
		}

		l.say(fmt.Sprintf(MsgGuessed, turn.Guess))
		l.say(Verdict(turn.Outcome))

		logger(ctx).Debug(
			"guess compared",
			logx.Stringer(logx.FieldGuess, turn.Guess),
			logx.Stringer(logx.FieldOutcome, turn.Outcome),
		)
	}

	return game, nil
}

func (l *Loop) say(text string) {
	fmt.Fprintln(l.out, text) //nolint:errcheck
}
