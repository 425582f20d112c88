package domain

import (
	"github.com/google/uuid"
)

type BetStatus string

const (
	BetPending BetStatus = "PENDING"
	BetWon     BetStatus = "WON"
	BetLost    BetStatus = "LOST"
	BetVoid    BetStatus = "VOID"
)

// Bet é uma aposta com a odd congelada no momento da colocação.
// O status é terminal: uma vez fora de PENDING não há mais transição.
type Bet struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	EventID      uuid.UUID
	SelectionID  uuid.UUID
	Stake        Money
	CapturedOdds Odds
	Status       BetStatus
}

// NewBet valida o evento e a seleção e captura a odd corrente da seleção.
func NewBet(id, userID uuid.UUID, event Event, selectionID uuid.UUID, stake Money) (Bet, error) {
	if event.State != EventScheduled {
		return Bet{}, Errorf(KindIllegalEventState, "bet allowed only when event is SCHEDULED, event %s is %s", event.ID, event.State)
	}
	selection, ok := event.Market.SelectionByID(selectionID)
	if !ok {
		return Bet{}, Errorf(KindInvalidSelection, "selection %s does not belong to event %s", selectionID, event.ID)
	}
	return Bet{
		ID:           id,
		UserID:       userID,
		EventID:      event.ID,
		SelectionID:  selectionID,
		Stake:        stake,
		CapturedOdds: selection.Odds,
		Status:       BetPending,
	}, nil
}

func (b Bet) MarkWon() (Bet, error) {
	return b.transition(BetWon)
}

func (b Bet) MarkLost() (Bet, error) {
	return b.transition(BetLost)
}

func (b Bet) MarkVoid() (Bet, error) {
	return b.transition(BetVoid)
}

func (b Bet) transition(to BetStatus) (Bet, error) {
	if b.Status != BetPending {
		return Bet{}, Errorf(KindIllegalBetState, "bet %s is %s, not PENDING", b.ID, b.Status)
	}
	b.Status = to
	return b, nil
}

// Payout é o prêmio da aposta na odd capturada.
func (b Bet) Payout() Money {
	return b.CapturedOdds.Payout(b.Stake)
}
