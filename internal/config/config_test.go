package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.InterDraw)
	assert.Equal(t, 2*time.Second, cfg.InterRound)
	assert.Equal(t, 32, cfg.OutboxSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BINGO_ADDR", ":9999")
	t.Setenv("BINGO_INTER_DRAW_DELAY", "250ms")
	t.Setenv("BINGO_OUTBOX_SIZE", "4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.InterDraw)
	assert.Equal(t, 4, cfg.OutboxSize)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"unparseable duration", "BINGO_INTER_DRAW_DELAY", "soon"},
		{"negative delay", "BINGO_INTER_ROUND_DELAY", "-1s"},
		{"unparseable int", "BINGO_OUTBOX_SIZE", "lots"},
		{"zero outbox", "BINGO_OUTBOX_SIZE", "0"},
		{"zero read rate", "BINGO_READ_RATE", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
