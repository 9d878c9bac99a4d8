package game

import "slices"

// Card is one bingo board: a fixed word list for a single language plus the
// words drawn so far. A card lives for its owner's connection; a game reset
// clears its marks but never destroys it.
type Card struct {
	ID       string
	Words    []string
	Language string

	marked map[string]struct{}
}

func NewCard(id string, words []string, language string) *Card {
	return &Card{
		ID:       id,
		Words:    words,
		Language: language,
		marked:   make(map[string]struct{}),
	}
}

// Mark records a drawn word. Words not on the board are ignored; marking the
// same word twice is a no-op.
func (c *Card) Mark(word string) {
	if slices.Contains(c.Words, word) {
		c.marked[word] = struct{}{}
	}
}

func (c *Card) IsMarked(word string) bool {
	_, ok := c.marked[word]
	return ok
}

func (c *Card) IsComplete() bool {
	return len(c.marked) == len(c.Words)
}

func (c *Card) MarkedCount() int {
	return len(c.marked)
}

func (c *Card) ClearMarks() {
	clear(c.marked)
}
