package models

// WheelItem represents a single labeled segment on the wheel.
// Order determines segment placement; it has no uniqueness constraint
// and is only used for sort comparison.
type WheelItem struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// SpinHistory records the outcome of one spin. Records are append-only
// and never deleted by any exposed operation.
type SpinHistory struct {
	ID     int    `json:"id"`
	Result string `json:"result"`
	SpunAt string `json:"spunAt"` // RFC 3339 timestamp
}

// SpinStats is a derived projection over the spin history.
// LastWinner is nil when no spin has been recorded yet.
type SpinStats struct {
	TotalSpins int     `json:"totalSpins"`
	LastWinner *string `json:"lastWinner"`
}

// User is a placeholder account entity. No endpoint exposes it.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
