package types

// Inbound envelope types.
const (
	TypeRegister  = "register"
	TypeBingoCard = "bingo_card"
	TypePlay      = "play"
)

// Outbound envelope types.
const (
	TypePlayerCount  = "player_count"
	TypeGameStarted  = "game_started"
	TypeRoundStart   = "round_start"
	TypeWordSelected = "word_selected"
	TypeRoundEnd     = "round_end"
	TypeGameEnd      = "game_end"
)

// CardSpec is a client-built bingo board. Cards arrive pre-generated; the
// server only records and marks them.
type CardSpec struct {
	ID       string   `json:"id"`
	Words    []string `json:"words"`
	Language string   `json:"language"`
}

type ClientMessage struct {
	Type string    `json:"type"` // "register" | "bingo_card" | "play"
	User string    `json:"user,omitempty"`
	Card *CardSpec `json:"card,omitempty"`
}

type PlayerCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type GameStarted struct {
	Type string `json:"type"`
}

type RoundStart struct {
	Type        string `json:"type"`
	Language    string `json:"language"`
	RoundNumber int    `json:"round_number"` // 1-based
	TotalRounds int    `json:"total_rounds"`
}

// WordSelected is personalized per recipient: CardIDs lists that user's own
// cards the draw just marked, and may be empty.
type WordSelected struct {
	Type     string   `json:"type"`
	Word     string   `json:"word"`
	Language string   `json:"language"`
	CardIDs  []string `json:"card_ids"`
}

type RoundEnd struct {
	Type     string   `json:"type"`
	Language string   `json:"language"`
	Winners  []string `json:"winners"`
}

type GameEnd struct {
	Type    string   `json:"type"`
	Winners []string `json:"winners"`
}
