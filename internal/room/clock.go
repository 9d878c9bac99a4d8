package room

import "time"

// Clock abstracts timer creation so tests can drive the room on virtual time
// instead of sleeping through the pacing delays.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

func RealClock() Clock { return realClock{} }

// Pacing holds the delays the round loop waits between consecutive draws and
// between one round ending and the next starting.
type Pacing struct {
	InterDraw  time.Duration
	InterRound time.Duration
}
