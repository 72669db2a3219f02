// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// Game Партия
type Game struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	Attempts   int        `json:"attempts"`
	Rejected   int        `json:"rejected"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`

	// Secret Загаданное число, отдаётся только после победы
	Secret *uint32 `json:"secret,omitempty"`
}

// GuessRequest Одна строка ввода игрока
type GuessRequest struct {
	Guess *string `json:"guess" validate:"required"`
}

// GuessResponse Результат строки
type GuessResponse struct {
	// Accepted false — строка не разобралась как число, партия не изменилась
	Accepted bool    `json:"accepted"`
	Guess    *uint32 `json:"guess,omitempty"`
	Outcome  string  `json:"outcome,omitempty"`
	Message  string  `json:"message"`
	Reason   string  `json:"reason,omitempty"`
	Game     Game    `json:"game"`
}

// Results Записанные партии
type Results struct {
	Games []Game `json:"games"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
