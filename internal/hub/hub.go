package hub

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/linguabingo/bingo-backend/internal/game"
	"github.com/linguabingo/bingo-backend/internal/room"
)

// DefaultRoom is the room every connection lands in when it names none; the
// server runs a single game per process, but the hub keeps rooms an explicit
// instance so more can exist later.
const DefaultRoom = "main"

type HubMsg interface{ isHubMsg() }

type GetRoom struct {
	Code  string
	Reply chan *room.Room
}

type EnsureRoom struct {
	Code  string
	Reply chan *room.Room
}

type RemoveRoom struct {
	Code string
}

type ShutdownHub struct{}

func (GetRoom) isHubMsg()     {}
func (EnsureRoom) isHubMsg()  {}
func (RemoveRoom) isHubMsg()  {}
func (ShutdownHub) isHubMsg() {}

type Hub struct {
	inbox  chan HubMsg
	rooms  map[string]*room.Room
	clock  room.Clock
	pace   room.Pacing
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, clock room.Clock, pace room.Pacing, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan HubMsg, 64),
		rooms:  make(map[string]*room.Room),
		clock:  clock,
		pace:   pace,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case GetRoom:
				msg.Reply <- h.rooms[msg.Code] // may be nil

			case EnsureRoom:
				if r := h.rooms[msg.Code]; r != nil {
					msg.Reply <- r
					break
				}
				r := h.newRoom(msg.Code)
				h.rooms[msg.Code] = r
				msg.Reply <- r

			case RemoveRoom:
				if r := h.rooms[msg.Code]; r != nil {
					r.Inbox() <- room.Shutdown{}
				}
				delete(h.rooms, msg.Code)

			case ShutdownHub:
				for _, r := range h.rooms {
					r.Inbox() <- room.Shutdown{}
				}
				clear(h.rooms)
				h.cancel()
			}
		}
	}
}

func (h *Hub) newRoom(code string) *room.Room {
	log := h.log.With(zap.String("room", code))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	mgr := game.NewManager(log, rng)
	log.Info("room created")
	return room.NewRoom(h.ctx, mgr, h.clock, h.pace, log)
}
