package sessions

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"guess_game/internal/domain"
	"guess_game/internal/domain/entity"
	"guess_game/internal/domain/value"
	"guess_game/pkg/errcodes"
)

// MemoryStore хранит партии в памяти процесса, истёкшие вычищаются фоном.
type MemoryStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(ttl, ttl/2),
		ttl:   ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, id value.GameID) (entity.Game, error) {
	v, ok := s.cache.Get(id.String())
	if !ok {
		return entity.Game{}, domain.NewError(errcodes.GameNotFound, "game not found")
	}

	game, ok := v.(entity.Game)
	if !ok {
		return entity.Game{}, domain.NewError(errcodes.InternalServerError, "unexpected session value")
	}

	return game, nil
}

func (s *MemoryStore) Save(_ context.Context, game entity.Game) error {
	s.cache.Set(game.ID.String(), game, s.ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id value.GameID) error {
	s.cache.Delete(id.String())
	return nil
}
