package sessions

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"guess_game/internal/domain"
	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/value"
	"guess_game/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const keyPrefix = "game:"

// RedisStore хранит партии в Redis как JSON, TTL продлевается на каждом Save.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, id value.GameID) (entity.Game, error) {
	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.Game{}, domain.NewError(errcodes.GameNotFound, "game not found")
		}
		return entity.Game{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get session")
	}

	var game entity.Game
	if err := json.Unmarshal(raw, &game); err != nil {
		return entity.Game{}, domain.WrapError(err, errcodes.InternalServerError, "failed to decode session")
	}

	return game, nil
}

func (s *RedisStore) Save(ctx context.Context, game entity.Game) error {
	raw, err := json.Marshal(game)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode session")
	}

	if err := s.client.Set(ctx, key(game.ID), raw, s.ttl).Err(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save session")
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id value.GameID) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete session")
	}

	return nil
}

func key(id value.GameID) string {
	return keyPrefix + id.String()
}
