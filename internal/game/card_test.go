package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_MarkOnlyBoardWords(t *testing.T) {
	card := NewCard("c1", []string{"sol", "luna"}, "spanish")

	card.Mark("estrella")
	assert.Equal(t, 0, card.MarkedCount())

	card.Mark("sol")
	assert.True(t, card.IsMarked("sol"))
	assert.Equal(t, 1, card.MarkedCount())
}

func TestCard_MarkIsIdempotent(t *testing.T) {
	card := NewCard("c1", []string{"sol", "luna"}, "spanish")

	card.Mark("sol")
	card.Mark("sol")
	assert.Equal(t, 1, card.MarkedCount())
	assert.False(t, card.IsComplete())
}

func TestCard_Completion(t *testing.T) {
	card := NewCard("c1", []string{"sol", "luna"}, "spanish")

	card.Mark("sol")
	assert.False(t, card.IsComplete())
	card.Mark("luna")
	assert.True(t, card.IsComplete())

	card.ClearMarks()
	assert.False(t, card.IsComplete())
	assert.Equal(t, 0, card.MarkedCount())
	// The board itself survives a clear.
	assert.Equal(t, []string{"sol", "luna"}, card.Words)
}
