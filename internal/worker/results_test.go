package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/value"
	"guess_game/internal/worker"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.tasks = append(f.tasks, task)

	return &asynq.TaskInfo{ID: "task-1", Type: task.Type(), Queue: worker.QueueResults}, nil
}

type fakeRepo struct {
	created []entity.Game
	err     error
}

func (f *fakeRepo) Create(_ context.Context, game entity.Game) error {
	if f.err != nil {
		return f.err
	}

	f.created = append(f.created, game)

	return nil
}

type fakeAnnouncer struct {
	announced []value.GameID
	err       error
}

func (f *fakeAnnouncer) AnnounceWin(_ context.Context, game entity.Game) error {
	f.announced = append(f.announced, game.ID)
	return f.err
}

func wonGame(t *testing.T) entity.Game {
	t.Helper()

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	game := entity.NewGame("g-won", 42, now)

	for _, line := range []string{"10", "abc", "70", "42"} {
		_, err := game.Play(line, now.Add(time.Minute))
		require.NoError(t, err)
	}

	return game
}

func TestResultQueueToHandler(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	enq := &fakeEnqueuer{}
	repo := &fakeRepo{}
	announcer := &fakeAnnouncer{}

	game := wonGame(t)

	rq.NoError(worker.NewResultQueue(enq).Record(ctx, game))
	rq.Len(enq.tasks, 1)
	rq.Equal(worker.TypeRecordResult, enq.tasks[0].Type())

	handler := worker.NewResultHandler(repo).WithAnnouncer(announcer)
	rq.NoError(handler.Handle(ctx, enq.tasks[0]))

	rq.Len(repo.created, 1)
	rq.Equal(game.ID, repo.created[0].ID)
	rq.Equal(game.Secret, repo.created[0].Secret)
	rq.Equal(3, repo.created[0].Attempts)
	rq.Equal(1, repo.created[0].Rejected)
	rq.True(repo.created[0].Done())
	rq.True(game.FinishedAt.Equal(repo.created[0].FinishedAt))
	rq.Equal([]value.GameID{game.ID}, announcer.announced)
}

func TestResultQueueEnqueueError(t *testing.T) {
	rq := require.New(t)

	err := worker.NewResultQueue(&fakeEnqueuer{err: errors.New("redis down")}).Record(context.Background(), wonGame(t))
	rq.ErrorContains(err, "redis down")
}

func TestResultHandlerErrors(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	t.Run("Bad payload skips retry", func(*testing.T) {
		err := worker.NewResultHandler(&fakeRepo{}).Handle(ctx, asynq.NewTask(worker.TypeRecordResult, []byte("{")))
		rq.ErrorIs(err, asynq.SkipRetry)
	})

	t.Run("Repository error is retried", func(*testing.T) {
		task, err := worker.NewRecordResultTask(wonGame(t))
		rq.NoError(err)

		err = worker.NewResultHandler(&fakeRepo{err: errors.New("db down")}).Handle(ctx, task)
		rq.Error(err)
		rq.NotErrorIs(err, asynq.SkipRetry)
	})

	t.Run("Announce error is swallowed", func(*testing.T) {
		task, err := worker.NewRecordResultTask(wonGame(t))
		rq.NoError(err)

		repo := &fakeRepo{}
		announcer := &fakeAnnouncer{err: errors.New("telegram down")}

		rq.NoError(worker.NewResultHandler(repo).WithAnnouncer(announcer).Handle(ctx, task))
		rq.Len(repo.created, 1)
		rq.Len(announcer.announced, 1)
	})
}
