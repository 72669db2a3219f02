package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"guess_game/internal/domain"
	"guess_game/internal/domain/entity"
	"guess_game/pkg/errcodes"
	"guess_game/pkg/lox"
)

type GameRepository struct {
	db *sqlx.DB
}

// NewGameRepository создаёт репозиторий завершённых партий.
func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *GameRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// Create сохраняет выигранную партию. Партия чата переиспользует ID чата,
// поэтому ключ — (id, started_at). Повторная запись той же партии ничего
// не меняет: задача из очереди может прийти дважды.
func (r *GameRepository) Create(ctx context.Context, game entity.Game) error {
	if !game.Done() {
		return domain.NewError(errcodes.ValidationError, "only finished games are recorded")
	}

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		schema := fromGame(game)
		if schema.FinishedAt.IsZero() {
			schema.FinishedAt = time.Now()
		}

		query := `
			INSERT INTO games (id, secret, attempts, rejected, started_at, finished_at)
			VALUES (:id, :secret, :attempts, :rejected, :started_at, :finished_at)
			ON CONFLICT (id, started_at) DO NOTHING`

		if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert game")
		}
		return nil
	})
}

// List — последние партии, свежие сначала.
func (r *GameRepository) List(ctx context.Context, limit, offset int) ([]entity.Game, error) {
	query := `
		SELECT id, secret, attempts, rejected, started_at, finished_at
		FROM games
		ORDER BY finished_at DESC, id ASC
		LIMIT $1 OFFSET $2`

	var schemas []gameSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit, offset); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list games")
	}

	return lox.Map(schemas, gameSchema.toDomain), nil
}
