package value

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SecretMin Secret = 1
	SecretMax Secret = 100
)

// Guess — число, разобранное из одной строки ввода.
type Guess uint32

func (g Guess) String() string {
	return strconv.FormatUint(uint64(g), 10)
}

// Secret — загаданное число, выбирается один раз на игру.
type Secret uint32

func (s Secret) Valid() bool {
	return s >= SecretMin && s <= SecretMax
}

// ParseGuess обрезает пробелы и разбирает строку как беззнаковое 32-битное
// число. Допустим один ведущий «+»; минус, дробная часть и пустая строка — ошибка.
func ParseGuess(text string) (Guess, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(text), "+")

	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseUint: %w", err)
	}

	return Guess(n), nil
}
