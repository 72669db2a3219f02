package value

type Outcome int

const (
	Less Outcome = iota + 1
	Greater
	Equal
)

func (o Outcome) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	case Equal:
		return "equal"
	default:
		return "unknown"
	}
}

// Compare сравнивает попытку с загаданным числом.
func Compare(guess Guess, secret Secret) Outcome {
	switch {
	case uint32(guess) < uint32(secret):
		return Less
	case uint32(guess) > uint32(secret):
		return Greater
	default:
		return Equal
	}
}
