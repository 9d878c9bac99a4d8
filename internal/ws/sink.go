package ws

import "errors"

var (
	errSinkFull   = errors.New("client outbox full")
	errSinkClosed = errors.New("client connection closed")
)

// chanSink adapts a connection's buffered outbox to game.Sink. Send never
// blocks: a full outbox means the client stopped keeping up, a closed one
// means the writer goroutine already died; the game treats either error as a
// disconnect.
type chanSink struct {
	out    chan []byte
	closed chan struct{}
}

func newChanSink(size int) *chanSink {
	return &chanSink{
		out:    make(chan []byte, size),
		closed: make(chan struct{}),
	}
}

func (s *chanSink) Send(payload []byte) error {
	select {
	case <-s.closed:
		return errSinkClosed
	default:
	}
	select {
	case s.out <- payload:
		return nil
	default:
		return errSinkFull
	}
}

// close marks the sink dead. Safe to call once, from the writer goroutine.
func (s *chanSink) close() {
	close(s.closed)
}
