package events

// Evento publicado no tópico "bet_settled" para cada aposta liquidada.
// Payout só é preenchido quando a aposta venceu.
type BetSettled struct {
	BetID    string `json:"bet_id"`
	UserID   string `json:"user_id"`
	EventID  string `json:"event_id"`
	Status   string `json:"status"` // "WON" | "LOST"
	Payout   string `json:"payout,omitempty"`
	Currency string `json:"currency"`
	TsUnixMs int64  `json:"ts_unix_ms"`
}
