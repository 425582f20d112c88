package events

// Evento publicado no tópico "bet_placed" após o débito do stake.
type BetPlaced struct {
	BetID        string `json:"bet_id"`
	UserID       string `json:"user_id"`
	EventID      string `json:"event_id"`
	SelectionID  string `json:"selection_id"`
	Stake        string `json:"stake"`
	Currency     string `json:"currency"`
	CapturedOdds string `json:"captured_odds"`
	TsUnixMs     int64  `json:"ts_unix_ms"`
}
