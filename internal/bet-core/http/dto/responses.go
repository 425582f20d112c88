package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BetResponse struct {
	BetID        string          `json:"betId"`
	Status       string          `json:"status"`
	Stake        decimal.Decimal `json:"stake"`
	Currency     string          `json:"currency"`
	CapturedOdds decimal.Decimal `json:"capturedOdds"`
	EventID      string          `json:"eventId"`
	SelectionID  string          `json:"selectionId"`
}

type UserBalanceResponse struct {
	UserID   string          `json:"userId"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type SelectionResponse struct {
	SelectionID string          `json:"selectionId"`
	DriverID    string          `json:"driverId"`
	DriverName  string          `json:"driverName"`
	Odds        decimal.Decimal `json:"odds"`
}

type EventResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	SessionType  string              `json:"sessionType"`
	Country      string              `json:"country"`
	Year         int                 `json:"year"`
	StartTime    time.Time           `json:"startTime"`
	State        string              `json:"state"`
	DriverMarket []SelectionResponse `json:"driverMarket"`
}

type ListEventsResponse struct {
	Items []EventResponse `json:"items"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int             `json:"total"`
}

// Problem é o corpo padrão de erro da API.
type Problem struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
