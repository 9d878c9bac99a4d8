package room

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/linguabingo/bingo-backend/internal/game"
	"github.com/linguabingo/bingo-backend/internal/types"
)

type Msg interface{ isRoomMsg() }

// Register creates the player for a connection, with its output sink.
type Register struct {
	ClientID string
	Name     string
	Sink     game.Sink
}

func (Register) isRoomMsg() {}

// SubmitCard attaches a client-built bingo card to the sending user.
type SubmitCard struct {
	ClientID string
	Card     types.CardSpec
}

func (SubmitCard) isRoomMsg() {}

// StartGame requests a game start; ignored if one is already running.
type StartGame struct{}

func (StartGame) isRoomMsg() {}

// Disconnect removes the user; sent on connection close or send failure.
type Disconnect struct{ ClientID string }

func (Disconnect) isRoomMsg() {}

// GetView reflects the game state without data races; used by tests and
// progress queries.
type GetView struct {
	Reply chan game.View
}

func (GetView) isRoomMsg() {}

type Shutdown struct{}

func (Shutdown) isRoomMsg() {}

// pendingStep names what the armed pacing timer will do when it fires.
type pendingStep int

const (
	pendingNone pendingStep = iota
	pendingDraw
	pendingRound
)

// Room is the scheduler for one game: a single actor goroutine that owns a
// game.Manager and serializes every mutation, inbound messages and timer
// expiries alike, on one ordered queue. Only one pacing timer is ever armed,
// and every expiry re-checks the game state, so a timer armed before a reset
// is harmless when it fires.
type Room struct {
	inbox chan Msg
	mgr   *game.Manager
	clock Clock
	pace  Pacing
	log   *zap.Logger

	timer   <-chan time.Time // nil when nothing is armed
	pending pendingStep

	ctx    context.Context
	cancel context.CancelFunc
}

func NewRoom(parent context.Context, mgr *game.Manager, clock Clock, pace Pacing, log *zap.Logger) *Room {
	ctx, cancel := context.WithCancel(parent)
	r := &Room{
		inbox:  make(chan Msg, 64),
		mgr:    mgr,
		clock:  clock,
		pace:   pace,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go r.loop()
	return r
}

func (r *Room) Inbox() chan<- Msg { return r.inbox }

func (r *Room) loop() {
	for {
		select {
		case <-r.ctx.Done():
			return

		case <-r.timer:
			r.timer = nil
			step := r.pending
			r.pending = pendingNone
			switch step {
			case pendingDraw:
				r.stepDraw()
			case pendingRound:
				if r.mgr.AdvanceRound() {
					// New round: first draw happens immediately,
					// later ones are paced.
					r.stepDraw()
				}
			}

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Register:
				r.mgr.AddUser(msg.ClientID, msg.Name, msg.Sink)

			case SubmitCard:
				r.mgr.AddCard(msg.ClientID, msg.Card)

			case StartGame:
				if r.mgr.StartGame() {
					r.stepDraw()
				}

			case Disconnect:
				r.mgr.RemoveUser(msg.ClientID)

			case GetView:
				msg.Reply <- r.mgr.View()

			case Shutdown:
				r.cancel()
				return
			}
		}
	}
}

// stepDraw performs one draw and arms whatever the outcome calls for.
func (r *Room) stepDraw() {
	switch r.mgr.DrawNext() {
	case game.DrawContinue:
		r.arm(pendingDraw, r.pace.InterDraw)
	case game.DrawRoundOver:
		r.arm(pendingRound, r.pace.InterRound)
	case game.DrawStopped:
		r.pending = pendingNone
		r.timer = nil
	}
}

func (r *Room) arm(step pendingStep, d time.Duration) {
	r.pending = step
	r.timer = r.clock.After(d)
}
