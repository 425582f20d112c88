package store

import (
	"github.com/google/uuid"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
)

type Bets struct {
	store *Store[domain.Bet]
}

func NewBets() *Bets {
	return &Bets{store: New[domain.Bet]()}
}

func (b *Bets) Get(id uuid.UUID) (domain.Bet, bool) {
	return b.store.Get(id)
}

func (b *Bets) Save(bet domain.Bet) error {
	return b.store.Save(bet.ID, bet)
}

func (b *Bets) Update(bet domain.Bet, expectedVersion int64) error {
	return b.store.Update(bet.ID, bet, expectedVersion)
}

func (b *Bets) Version(id uuid.UUID) int64 {
	return b.store.Version(id)
}

// FindByEvent varre o store filtrando pelo evento.
func (b *Bets) FindByEvent(eventID uuid.UUID) []domain.Bet {
	var out []domain.Bet
	for _, bet := range b.store.All() {
		if bet.EventID == eventID {
			out = append(out, bet)
		}
	}
	return out
}
