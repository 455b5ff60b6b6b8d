package model

import "time"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Amount    int   `json:"amount"`
	Numbers   *bool `json:"numbers"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Symbols   *bool `json:"symbols"`

	CustomSymbols string `json:"custom_symbols"`

	NoStartNumber bool `json:"no_start_number"`
	NoStartSymbol bool `json:"no_start_symbol"`
	NoSimilar     bool `json:"no_similar"`
	NoDuplicate   bool `json:"no_duplicate"`
	NoSequential  bool `json:"no_sequential"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []string `json:"passwords"`
	Length    int      `json:"length"`
	Amount    int      `json:"amount"`
}

// Generation outcomes stored on a GenerationEvent.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// GenerationEvent is one audited generate request. Passwords are never stored.
type GenerationEvent struct {
	ID        int64
	UserID    int64 // 0 for anonymous requests
	Length    int
	Amount    int
	Flags     string
	Outcome   string
	ErrorCode string
	CreatedAt time.Time
}

// GenerationEventResponse represents an audit event in API responses.
type GenerationEventResponse struct {
	Length    int       `json:"length"`
	Amount    int       `json:"amount"`
	Flags     []string  `json:"flags"`
	Outcome   string    `json:"outcome"`
	ErrorCode string    `json:"error_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
