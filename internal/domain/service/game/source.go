package game

import (
	"math/rand/v2"

	"guess_game/internal/domain/value"
)

type SecretSource interface {
	Secret() value.Secret
}

// UniformSource выдаёт число равномерно из [SecretMin, SecretMax].
type UniformSource struct{}

func (UniformSource) Secret() value.Secret {
	span := uint32(value.SecretMax - value.SecretMin + 1)

	return value.SecretMin + value.Secret(rand.N(span)) //nolint:gosec // not a security secret
}
