package game

import "slices"

// Sink is the outbound delivery capability for one connected user, injected at
// construction so the game never touches the concrete transport. A Send that
// can no longer reach the client returns an error, which the Manager treats
// the same as a voluntary disconnect.
type Sink interface {
	Send(payload []byte) error
}

// User is one connected player: identity, output sink, owned cards, and a
// word -> card-id reverse index for fast dispatch on every draw.
type User struct {
	ID   string
	Name string

	sink      Sink
	cards     map[string]*Card
	wordIndex map[string][]string // word -> ids of owned cards containing it
}

func NewUser(id, name string, sink Sink) *User {
	return &User{
		ID:        id,
		Name:      name,
		sink:      sink,
		cards:     make(map[string]*Card),
		wordIndex: make(map[string][]string),
	}
}

// AddCard stores the card and extends the reverse index with every word on its
// board. Card ids are unique per user; the Manager removes any previous card
// under the same id before calling this.
func (u *User) AddCard(card *Card) {
	u.cards[card.ID] = card
	for _, word := range card.Words {
		u.wordIndex[word] = append(u.wordIndex[word], card.ID)
	}
}

// RemoveCard detaches the card with the given id and strips its entries from
// the reverse index. Returns nil if the user owns no such card.
func (u *User) RemoveCard(id string) *Card {
	card, ok := u.cards[id]
	if !ok {
		return nil
	}
	delete(u.cards, id)
	for _, word := range card.Words {
		ids := slices.DeleteFunc(u.wordIndex[word], func(cid string) bool { return cid == id })
		if len(ids) == 0 {
			delete(u.wordIndex, word)
		} else {
			u.wordIndex[word] = ids
		}
	}
	return card
}

// MarkWord marks the word on every owned card of the given language that has
// it on its board, and returns those card ids. Language is the sole
// attribution boundary: a card of another language sharing the literal word
// string is never touched.
func (u *User) MarkWord(word, language string) []string {
	marked := []string{}
	for _, id := range u.wordIndex[word] {
		card := u.cards[id]
		if card != nil && card.Language == language {
			card.Mark(word)
			marked = append(marked, id)
		}
	}
	return marked
}

func (u *User) HasCompletedCard(language string) bool {
	for _, card := range u.cards {
		if card.Language == language && card.IsComplete() {
			return true
		}
	}
	return false
}

// BestCard returns the owned card of the given language with the most marks,
// first encountered winning ties, or nil if the user has none. Progress query
// only; the round loop never consults it.
func (u *User) BestCard(language string) *Card {
	var best *Card
	for _, id := range u.cardIDs() {
		card := u.cards[id]
		if card.Language != language {
			continue
		}
		if best == nil || card.MarkedCount() > best.MarkedCount() {
			best = card
		}
	}
	return best
}

// ReleaseWords decrements the pool's reference count for every word occurrence
// on every owned card; called when the user leaves.
func (u *User) ReleaseWords(pool *Pool) {
	for _, card := range u.cards {
		for _, word := range card.Words {
			pool.Release(card.Language, word)
		}
	}
}

func (u *User) Cards() []*Card {
	cards := make([]*Card, 0, len(u.cards))
	for _, id := range u.cardIDs() {
		cards = append(cards, u.cards[id])
	}
	return cards
}

// cardIDs returns the owned card ids in sorted order so iteration is stable.
func (u *User) cardIDs() []string {
	ids := make([]string, 0, len(u.cards))
	for id := range u.cards {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
