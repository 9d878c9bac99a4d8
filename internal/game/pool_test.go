package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_ReferenceCounting(t *testing.T) {
	p := NewPool(Languages)

	// Two cards register the same word.
	p.Add("english", "hello")
	p.Add("english", "hello")

	p.Release("english", "hello")
	assert.True(t, p.Contains("english", "hello"),
		"word must stay drawable while another card still references it")

	p.Release("english", "hello")
	assert.False(t, p.Contains("english", "hello"))
	assert.Equal(t, 0, p.Size("english"))
}

func TestPool_LanguagesAreIsolated(t *testing.T) {
	p := NewPool(Languages)

	p.Add("english", "sol")
	p.Add("spanish", "sol")

	p.Release("spanish", "sol")
	assert.True(t, p.Contains("english", "sol"))
	assert.False(t, p.Contains("spanish", "sol"))
}

func TestPool_UnsupportedLanguageIgnored(t *testing.T) {
	p := NewPool(Languages)

	p.Add("klingon", "nuqneH")
	assert.False(t, p.Contains("klingon", "nuqneH"))
	p.Release("klingon", "nuqneH") // must not panic
}
