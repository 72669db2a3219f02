package config

import "time"

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Session struct {
	Store string        `env:"SESSION_STORE" envDefault:"redis"`
	TTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}
