package models

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChartPoint is one daily bar carried as a turn attachment so the
// presentation layer can redraw a price panel after a refresh.
type ChartPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// ChatTurn is one conversational exchange. Turns are immutable once
// appended to a session history.
type ChatTurn struct {
	Role    Role         `json:"role"`
	Content string       `json:"content"`
	Chart   []ChartPoint `json:"chart,omitempty"`
}
