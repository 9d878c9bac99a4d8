package game

import (
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"github.com/linguabingo/bingo-backend/internal/types"
)

// Languages is the fixed set of supported card languages. One round is played
// per language, in an order shuffled at game start.
var Languages = []string{"spanish", "english", "portuguese", "dutch"}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRoundActive
	PhaseRoundEnding
)

// DrawOutcome tells the scheduler what to pace after a call to DrawNext.
type DrawOutcome int

const (
	// DrawContinue: a word was drawn and the round is still open; schedule
	// the next draw after the inter-draw delay.
	DrawContinue DrawOutcome = iota
	// DrawRoundOver: the round just ended (winners found, or pool
	// exhausted); schedule AdvanceRound after the inter-round delay.
	DrawRoundOver
	// DrawStopped: no round is in progress; nothing to schedule.
	DrawStopped
)

// Manager owns all state of one bingo game: the connected users, the
// per-language draw pools, and the round sequence. It is the sole mutator of
// that state and must only ever be driven from a single goroutine (the room
// actor); under that discipline every compound transition, including the
// StartGame guard-and-set, is atomic without locks.
type Manager struct {
	log *zap.Logger
	rng *rand.Rand

	users map[string]*User
	pool  *Pool

	phase      Phase
	roundLangs []string // permutation of Languages fixed at game start
	roundIdx   int
	remaining  []string // undrawn words of the active round
	winnerLog  []string // one entry per user per round won, in order
}

func NewManager(log *zap.Logger, rng *rand.Rand) *Manager {
	return &Manager{
		log:   log,
		rng:   rng,
		users: make(map[string]*User),
		pool:  NewPool(Languages),
	}
}

// AddUser registers a connected player and tells everyone the new head count.
func (m *Manager) AddUser(id, name string, sink Sink) {
	m.users[id] = NewUser(id, name, sink)
	m.log.Info("user joined", zap.String("user", id), zap.String("name", name))
	m.broadcastPlayerCount()
}

// RemoveUser excises the user, releases its words from the draw pools, and
// rebroadcasts the head count. When the last user leaves the whole game resets
// regardless of round progress. Unknown ids are a no-op, so removal triggered
// from within a broadcast sweep is safe to repeat.
func (m *Manager) RemoveUser(id string) {
	user, ok := m.users[id]
	if !ok {
		return
	}
	user.ReleaseWords(m.pool)
	delete(m.users, id)
	m.log.Info("user left", zap.String("user", id))
	m.broadcastPlayerCount()
	if len(m.users) == 0 {
		m.reset()
	}
}

// AddCard attaches a card to the user and unions its words into the language's
// draw pool. No-op for unknown users. Resubmitting an id the user already owns
// replaces the old card, with pool counts adjusted accordingly.
func (m *Manager) AddCard(userID string, spec types.CardSpec) {
	user, ok := m.users[userID]
	if !ok {
		return
	}
	if old := user.RemoveCard(spec.ID); old != nil {
		for _, word := range old.Words {
			m.pool.Release(old.Language, word)
		}
	}
	card := NewCard(spec.ID, spec.Words, spec.Language)
	user.AddCard(card)
	for _, word := range card.Words {
		m.pool.Add(card.Language, word)
	}
	m.log.Debug("card registered",
		zap.String("user", userID),
		zap.String("card", card.ID),
		zap.String("language", card.Language),
		zap.Int("words", len(card.Words)))
}

// StartGame fixes a random permutation of the language set and opens the first
// round. Reports whether a game actually started; any call outside PhaseIdle
// is a no-op, so repeated or concurrent play requests cannot begin a second
// round sequence.
func (m *Manager) StartGame() bool {
	if m.phase != PhaseIdle {
		return false
	}
	m.roundLangs = make([]string, len(Languages))
	for i, j := range m.rng.Perm(len(Languages)) {
		m.roundLangs[i] = Languages[j]
	}
	m.roundIdx = 0
	m.log.Info("game started", zap.Strings("rounds", m.roundLangs))
	m.Broadcast(types.GameStarted{Type: types.TypeGameStarted})
	if m.roundLangs == nil {
		// The broadcast emptied the room and reset everything.
		return false
	}
	m.beginRound()
	return true
}

// DrawNext performs one draw of the active round: pick a remaining word at
// random, mark it on every user's matching cards, send each user their
// personalized notification, then close the round if anyone completed a card
// or the pool ran dry.
func (m *Manager) DrawNext() DrawOutcome {
	if m.phase != PhaseRoundActive {
		return DrawStopped
	}
	if len(m.users) == 0 {
		// Nobody left to draw for; abandon the round instead of pacing
		// timers with no recipients.
		m.reset()
		return DrawStopped
	}
	language := m.roundLangs[m.roundIdx]

	if len(m.remaining) == 0 {
		m.endRound(language, nil)
		return DrawRoundOver
	}

	i := m.rng.Intn(len(m.remaining))
	word := m.remaining[i]
	m.remaining = slices.Delete(m.remaining, i, i+1)
	m.log.Debug("word drawn", zap.String("language", language), zap.String("word", word))

	// Snapshot the membership: sends can fail and remove users mid-sweep.
	for _, user := range m.userSnapshot() {
		cardIDs := user.MarkWord(word, language)
		m.SendToUser(user.ID, types.WordSelected{
			Type:     types.TypeWordSelected,
			Word:     word,
			Language: language,
			CardIDs:  cardIDs,
		})
	}

	// A failed send may have emptied the room and reset the game.
	if m.phase != PhaseRoundActive {
		return DrawStopped
	}

	var winners []string
	for _, user := range m.userSnapshot() {
		if user.HasCompletedCard(language) {
			winners = append(winners, user.Name)
		}
	}
	if len(winners) > 0 {
		m.winnerLog = append(m.winnerLog, winners...)
		m.endRound(language, winners)
		return DrawRoundOver
	}
	return DrawContinue
}

// AdvanceRound moves on to the next language once the inter-round pause has
// elapsed. Reports whether a new round began; false means the game is over
// (or was reset underneath the pause) and nothing further should be paced.
func (m *Manager) AdvanceRound() bool {
	if m.phase != PhaseRoundEnding {
		return false
	}
	m.roundIdx++
	return m.beginRound()
}

func (m *Manager) beginRound() bool {
	if m.roundIdx >= len(m.roundLangs) {
		m.endGame()
		return false
	}
	language := m.roundLangs[m.roundIdx]
	m.phase = PhaseRoundActive
	// Words registered after this point join future rounds, not this one.
	m.remaining = m.pool.Words(language)
	m.log.Info("round started",
		zap.String("language", language),
		zap.Int("round", m.roundIdx+1),
		zap.Int("pool", len(m.remaining)))
	m.Broadcast(types.RoundStart{
		Type:        types.TypeRoundStart,
		Language:    language,
		RoundNumber: m.roundIdx + 1,
		TotalRounds: len(m.roundLangs),
	})
	return m.phase == PhaseRoundActive
}

func (m *Manager) endRound(language string, winners []string) {
	if winners == nil {
		winners = []string{}
	}
	m.phase = PhaseRoundEnding
	m.log.Info("round ended", zap.String("language", language), zap.Strings("winners", winners))
	m.Broadcast(types.RoundEnd{
		Type:     types.TypeRoundEnd,
		Language: language,
		Winners:  winners,
	})
}

func (m *Manager) endGame() {
	winners := dedupeNames(m.winnerLog)
	m.log.Info("game ended", zap.Strings("winners", winners))
	m.Broadcast(types.GameEnd{Type: types.TypeGameEnd, Winners: winners})
	m.reset()
}

// reset restores the initial shape: flags, round index, winner log, and every
// card's marks. Users, their cards, and the pool registrations persist so a
// new game can start immediately.
func (m *Manager) reset() {
	m.phase = PhaseIdle
	m.roundLangs = nil
	m.roundIdx = 0
	m.remaining = nil
	m.winnerLog = nil
	for _, user := range m.users {
		for _, card := range user.Cards() {
			card.ClearMarks()
		}
	}
}

// ActiveLanguage returns the language being drawn, or "" outside a round.
func (m *Manager) ActiveLanguage() string {
	if m.phase == PhaseIdle || m.roundIdx >= len(m.roundLangs) {
		return ""
	}
	return m.roundLangs[m.roundIdx]
}

// userSnapshot returns the current users sorted by id: a stable view for
// sweeps that may remove users as they go.
func (m *Manager) userSnapshot() []*User {
	ids := make([]string, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	users := make([]*User, 0, len(ids))
	for _, id := range ids {
		users = append(users, m.users[id])
	}
	return users
}

// dedupeNames keeps the first appearance of each name, preserving order.
func dedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := []string{}
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}
