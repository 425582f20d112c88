package dto

import "github.com/shopspring/decimal"

type PlaceBetRequest struct {
	UserID      string          `json:"userId"`
	EventID     string          `json:"eventId"`
	SelectionID string          `json:"selectionId"`
	StakeAmount decimal.Decimal `json:"stakeAmount"`
	Currency    string          `json:"currency"` // default "EUR"
}

type RecordOutcomeRequest struct {
	WinningDriverID string `json:"winningDriverId"`
}
