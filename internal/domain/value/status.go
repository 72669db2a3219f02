package value

type Status string

const (
	StatusLooping Status = "looping"
	StatusDone    Status = "done"
)

func (s Status) String() string {
	return string(s)
}
