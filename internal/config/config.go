package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// Config is read from the environment, with a local .env honored when
// present. All keys are optional; the defaults run a usable server.
type Config struct {
	Addr       string        // BINGO_ADDR
	StaticDir  string        // BINGO_STATIC_DIR ("" disables asset serving)
	InterDraw  time.Duration // BINGO_INTER_DRAW_DELAY
	InterRound time.Duration // BINGO_INTER_ROUND_DELAY
	OutboxSize int           // BINGO_OUTBOX_SIZE
	ReadRate   rate.Limit    // BINGO_READ_RATE, envelopes/sec
	ReadBurst  int           // BINGO_READ_BURST
}

func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		Addr:      envString("BINGO_ADDR", ":8080"),
		StaticDir: envString("BINGO_STATIC_DIR", "dist"),
	}

	var err error
	if cfg.InterDraw, err = envDuration("BINGO_INTER_DRAW_DELAY", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.InterRound, err = envDuration("BINGO_INTER_ROUND_DELAY", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.OutboxSize, err = envInt("BINGO_OUTBOX_SIZE", 32); err != nil {
		return nil, err
	}
	readRate, err := envInt("BINGO_READ_RATE", 5)
	if err != nil {
		return nil, err
	}
	cfg.ReadRate = rate.Limit(readRate)
	if cfg.ReadBurst, err = envInt("BINGO_READ_BURST", 10); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.InterDraw <= 0 {
		return fmt.Errorf("inter-draw delay must be positive: %v", c.InterDraw)
	}
	if c.InterRound <= 0 {
		return fmt.Errorf("inter-round delay must be positive: %v", c.InterRound)
	}
	if c.OutboxSize < 1 {
		return fmt.Errorf("outbox size must be at least 1: %d", c.OutboxSize)
	}
	if c.ReadRate <= 0 || c.ReadBurst < 1 {
		return fmt.Errorf("read rate limit must be positive: rate=%v burst=%d", c.ReadRate, c.ReadBurst)
	}
	return nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
