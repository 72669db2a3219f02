package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Игра
	GameNotFound     failure.ErrorCode = "GameNotFound"     // Нет сессии с таким ID (или истёк TTL)
	GameFinished     failure.ErrorCode = "GameFinished"     // Число уже угадано
	InvalidGameID    failure.ErrorCode = "InvalidGameID"    // Пустой или мусорный ID
	InvalidGuess     failure.ErrorCode = "InvalidGuess"     // Строка не разбирается как число
	InputUnavailable failure.ErrorCode = "InputUnavailable" // Поток ввода закрыт или сломан
)
