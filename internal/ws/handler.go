package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/linguabingo/bingo-backend/internal/hub"
	"github.com/linguabingo/bingo-backend/internal/room"
	"github.com/linguabingo/bingo-backend/internal/types"
)

const writeTimeout = 3 * time.Second

// Options tunes the per-connection plumbing.
type Options struct {
	OutboxSize int        // buffered outbound frames before a client counts as stalled
	ReadRate   rate.Limit // inbound envelopes per second
	ReadBurst  int
}

func Handler(h *hub.Hub, opts Options, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("room")
		if code == "" {
			code = hub.DefaultRoom
		}

		reply := make(chan *room.Room, 1)
		h.Inbox() <- hub.EnsureRoom{Code: code, Reply: reply}
		rm := <-reply
		if rm == nil {
			http.Error(w, "room unavailable", http.StatusServiceUnavailable)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := r.URL.Query().Get("client_id")
		if clientID == "" {
			clientID = uuid.NewString()
		}
		log := log.With(zap.String("client", clientID), zap.String("room", code))

		sink := newChanSink(opts.OutboxSize)
		defer func() { rm.Inbox() <- room.Disconnect{ClientID: clientID} }()

		// Writer goroutine: drains the outbox until the connection dies.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			defer sink.close()
			for {
				select {
				case <-writeCtx.Done():
					return
				case payload := <-sink.out:
					ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
					err := conn.Write(ctx, websocket.MessageText, payload)
					cancel()
					if err != nil {
						return
					}
				}
			}
		}()

		limiter := rate.NewLimiter(opts.ReadRate, opts.ReadBurst)

		// Reader loop: decode envelopes, forward them as room messages.
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Abnormal close; Disconnect in the defer does the cleanup.
				return
			}

			if !limiter.Allow() {
				log.Warn("dropping flooded frame")
				continue
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				// Malformed envelopes are dropped silently; the
				// connection stays open.
				continue
			}

			msg, ok := toRoomMsg(clientID, sink, cm)
			if !ok {
				continue
			}
			rm.Inbox() <- msg
		}
	}
}
