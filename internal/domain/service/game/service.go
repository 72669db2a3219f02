package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/value"
	"guess_game/pkg/contextx"
	"guess_game/pkg/logx"
)

const (
	defaultResultsLimit = 20
	maxResultsLimit     = 100

	lockStripes = 64
)

type SessionStore interface {
	Get(ctx context.Context, id value.GameID) (entity.Game, error)
	Save(ctx context.Context, game entity.Game) error
	Delete(ctx context.Context, id value.GameID) error
}

// ResultRecorder получает каждую выигранную партию.
type ResultRecorder interface {
	Record(ctx context.Context, game entity.Game) error
}

type ResultRepository interface {
	List(ctx context.Context, limit, offset int) ([]entity.Game, error)
}

// GameService ведёт партии, адресуемые по ID (HTTP API, Telegram-чаты).
type GameService struct {
	store    SessionStore
	source   SecretSource
	recorder ResultRecorder
	results  ResultRepository
	now      func() time.Time

	// Одна партия — одна строка за раз: Get→Play→Save не должны пересекаться.
	// Мьютекс выбирается по хэшу ID, число мьютексов фиксировано.
	locks [lockStripes]sync.Mutex
}

func NewGameService(store SessionStore, source SecretSource) *GameService {
	return &GameService{
		store:  store,
		source: source,
		now:    time.Now,
	}
}

func (s *GameService) WithRecorder(recorder ResultRecorder) *GameService {
	s.recorder = recorder
	return s
}

func (s *GameService) WithResults(results ResultRepository) *GameService {
	s.results = results
	return s
}

// Start начинает новую партию с новым загаданным числом.
// Существующая партия с тем же ID перезаписывается.
func (s *GameService) Start(ctx context.Context, id value.GameID) (entity.Game, error) {
	unlock := s.lock(id)
	defer unlock()

	game := entity.NewGame(id, s.source.Secret(), s.now())

	if err := s.store.Save(ctx, game); err != nil {
		return entity.Game{}, fmt.Errorf("store.Save: %w", err)
	}

	gamesStarted.Inc()
	gameLogger(ctx, id).Info("game started")

	return game, nil
}

func (s *GameService) Get(ctx context.Context, id value.GameID) (entity.Game, error) {
	game, err := s.store.Get(ctx, id)
	if err != nil {
		return entity.Game{}, fmt.Errorf("store.Get: %w", err)
	}

	return game, nil
}

// Guess скармливает партии одну строку. Неразобранная строка возвращает
// Turn.Accepted=false без ошибки.
func (s *GameService) Guess(ctx context.Context, id value.GameID, text string) (entity.Turn, entity.Game, error) {
	unlock := s.lock(id)
	defer unlock()

	game, err := s.store.Get(ctx, id)
	if err != nil {
		return entity.Turn{}, entity.Game{}, fmt.Errorf("store.Get: %w", err)
	}

	turn, err := game.Play(text, s.now())
	if err != nil {
		return entity.Turn{}, game, fmt.Errorf("game.Play: %w", err)
	}

	if err = s.store.Save(ctx, game); err != nil {
		return entity.Turn{}, entity.Game{}, fmt.Errorf("store.Save: %w", err)
	}

	observeTurn(turn.Accepted, turn.Outcome, game.Attempts)

	log := gameLogger(ctx, id)

	if !turn.Accepted {
		log.Debug("guess rejected", slog.String(logx.FieldReason, turn.Reason))
		return turn, game, nil
	}

	log.Debug("guess compared",
		logx.Stringer(logx.FieldGuess, turn.Guess),
		logx.Stringer(logx.FieldOutcome, turn.Outcome),
	)

	if game.Done() {
		log.Info("game won", slog.Int(logx.FieldAttempts, game.Attempts))
		s.record(ctx, game)
	}

	return turn, game, nil
}

// Results возвращает последние записанные партии.
func (s *GameService) Results(ctx context.Context, limit, offset int) ([]entity.Game, error) {
	if s.results == nil {
		return nil, nil
	}

	switch {
	case limit <= 0:
		limit = defaultResultsLimit
	case limit > maxResultsLimit:
		limit = maxResultsLimit
	}

	if offset < 0 {
		offset = 0
	}

	games, err := s.results.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("results.List: %w", err)
	}

	return games, nil
}

// Forget удаляет партию из хранилища сессий.
func (s *GameService) Forget(ctx context.Context, id value.GameID) error {
	unlock := s.lock(id)
	defer unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}

	gameLogger(ctx, id).Info("game forgotten")

	return nil
}

// record не роняет ход: партия уже сохранена как выигранная.
func (s *GameService) record(ctx context.Context, game entity.Game) {
	if s.recorder == nil {
		return
	}

	if err := s.recorder.Record(ctx, game); err != nil && !errors.Is(err, context.Canceled) {
		gameLogger(ctx, game.ID).Error("failed to record result", logx.Error(err))
	}
}

func (s *GameService) lock(id value.GameID) func() {
	m := &s.locks[xxhash.Sum64String(id.String())%lockStripes]

	m.Lock()

	return m.Unlock
}

// gameLogger добавляет game-id, если транспорт ещё не положил его в логгер.
func gameLogger(ctx context.Context, id value.GameID) *slog.Logger {
	if ctxID, err := contextx.GameIDFromContext(ctx); err == nil && ctxID.String() == id.String() {
		return logger(ctx)
	}

	return logger(ctx).With(logx.Stringer(logx.FieldGameID, id))
}
