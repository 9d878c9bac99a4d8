package game

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/linguabingo/bingo-backend/internal/types"
)

// Broadcast serializes the message once and attempts delivery to every
// connected user. A failed sink never aborts delivery to the rest: failures
// are collected during the sweep and the users removed afterwards. Each
// removal rebroadcasts the player count, which may itself detect further
// failures; that reentrancy is safe because removal of an already-gone id is
// a no-op.
func (m *Manager) Broadcast(msg any) {
	payload, err := json.Marshal(msg)
	if err != nil {
		m.log.Error("broadcast marshal", zap.Error(err))
		return
	}
	var failed []string
	for _, user := range m.userSnapshot() {
		if err := user.sink.Send(payload); err != nil {
			failed = append(failed, user.ID)
		}
	}
	for _, id := range failed {
		m.log.Warn("dropping unreachable user", zap.String("user", id))
		m.RemoveUser(id)
	}
}

// SendToUser delivers to a single user, removing it on failure. Unknown ids
// are ignored.
func (m *Manager) SendToUser(id string, msg any) {
	user, ok := m.users[id]
	if !ok {
		return
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		m.log.Error("send marshal", zap.Error(err))
		return
	}
	if err := user.sink.Send(payload); err != nil {
		m.log.Warn("dropping unreachable user", zap.String("user", id))
		m.RemoveUser(id)
	}
}

func (m *Manager) broadcastPlayerCount() {
	m.Broadcast(types.PlayerCount{Type: types.TypePlayerCount, Count: len(m.users)})
}
