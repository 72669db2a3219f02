package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config — настройки cmd/server.
type Config struct {
	App      App
	Log      Log
	HTTP     HTTP
	Postgres Postgres
	Redis    Redis
	Session  Session
	Bot      Bot
}

// Console — настройки cmd/guess. Флагов у консольной игры нет, только env.
type Console struct {
	Log Log
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"guess-game"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

func Load() (Config, error) {
	var config Config

	if err := parse(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}

func LoadConsole() (Console, error) {
	var config Console

	if err := parse(&config); err != nil {
		return Console{}, err
	}

	return config, nil
}

func parse(dest any) error {
	_ = godotenv.Load()

	if err := env.Parse(dest); err != nil {
		return fmt.Errorf("env.Parse: %w", err)
	}

	return nil
}
