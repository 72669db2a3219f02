package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"guess_game/internal/domain/entity"
	"guess_game/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	TypeRecordResult = "game:record_result"
	QueueResults     = "results"

	recordResultMaxRetry = 5
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ResultQueue ставит выигранные партии в очередь на запись.
type ResultQueue struct {
	client enqueuer
}

func NewResultQueue(client enqueuer) *ResultQueue {
	return &ResultQueue{client: client}
}

func NewRecordResultTask(game entity.Game) (*asynq.Task, error) {
	payload, err := json.Marshal(game)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeRecordResult, payload), nil
}

func (q *ResultQueue) Record(ctx context.Context, game entity.Game) error {
	task, err := NewRecordResultTask(game)
	if err != nil {
		return fmt.Errorf("NewRecordResultTask: %w", err)
	}

	info, err := q.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueResults),
		asynq.MaxRetry(recordResultMaxRetry),
	)
	if err != nil {
		return fmt.Errorf("client.EnqueueContext: %w", err)
	}

	logger(ctx).Debug("result enqueued",
		logx.Stringer(logx.FieldGameID, game.ID),
		slog.String(logx.FieldTaskID, info.ID),
	)

	return nil
}

type GameRepository interface {
	Create(ctx context.Context, game entity.Game) error
}

type Announcer interface {
	AnnounceWin(ctx context.Context, game entity.Game) error
}

// ResultHandler записывает партию в базу и, если есть куда, объявляет победу.
type ResultHandler struct {
	repo      GameRepository
	announcer Announcer
}

func NewResultHandler(repo GameRepository) *ResultHandler {
	return &ResultHandler{repo: repo}
}

func (h *ResultHandler) WithAnnouncer(announcer Announcer) *ResultHandler {
	h.announcer = announcer
	return h
}

func (h *ResultHandler) Handle(ctx context.Context, task *asynq.Task) error {
	var game entity.Game
	if err := json.Unmarshal(task.Payload(), &game); err != nil {
		// Повтор не поможет — битый payload.
		return fmt.Errorf("json.Unmarshal: %v: %w", err, asynq.SkipRetry)
	}

	log := logger(ctx).With(
		slog.String(logx.FieldTaskType, task.Type()),
		logx.Stringer(logx.FieldGameID, game.ID),
	)

	if err := h.repo.Create(ctx, game); err != nil {
		return fmt.Errorf("repo.Create: %w", err)
	}

	log.Info("result recorded", slog.Int(logx.FieldAttempts, game.Attempts))

	if h.announcer == nil {
		return nil
	}

	// Запись уже есть: ошибка объявления не должна вызывать повтор задачи.
	if err := h.announcer.AnnounceWin(ctx, game); err != nil {
		log.Error("failed to announce win", logx.Error(err))
	}

	return nil
}
