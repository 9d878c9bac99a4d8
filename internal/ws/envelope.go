package ws

import (
	"github.com/linguabingo/bingo-backend/internal/game"
	"github.com/linguabingo/bingo-backend/internal/room"
	"github.com/linguabingo/bingo-backend/internal/types"
)

// toRoomMsg translates an inbound envelope into a typed room message. The
// second return is false for unknown or malformed envelopes, which are
// dropped without a reply and leave the connection open.
func toRoomMsg(clientID string, sink game.Sink, cm types.ClientMessage) (room.Msg, bool) {
	switch cm.Type {
	case types.TypeRegister:
		name := cm.User
		if name == "" {
			name = "Unknown"
		}
		return room.Register{ClientID: clientID, Name: name, Sink: sink}, true

	case types.TypeBingoCard:
		if cm.Card == nil {
			return nil, false
		}
		return room.SubmitCard{ClientID: clientID, Card: *cm.Card}, true

	case types.TypePlay:
		return room.StartGame{}, true

	default:
		return nil, false
	}
}
