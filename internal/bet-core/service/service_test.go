package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/store"
	"github.com/radieske/f1-bet-core-poc/pkg/contracts/events"
)

// recordingPublisher acumula os eventos publicados para inspeção.
type recordingPublisher struct {
	mu      sync.Mutex
	placed  []events.BetPlaced
	settled []events.BetSettled
}

func (p *recordingPublisher) PublishBetPlaced(_ context.Context, e events.BetPlaced) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.placed = append(p.placed, e)
	return nil
}

func (p *recordingPublisher) PublishBetSettled(_ context.Context, e events.BetSettled) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settled = append(p.settled, e)
	return nil
}

type fixture struct {
	users  *store.Users
	events *store.Events
	bets   *store.Bets
	idem   *store.Idempotency
	publ   *recordingPublisher
	place  *PlaceBet
	settle *RecordOutcome
	event  domain.Event
}

// newFixture monta os stores com um evento SCHEDULED de duas seleções
// (odds 2.00 e 3.00) e usuários criados com saldo 100.00 EUR.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	balance, err := domain.MoneyFromString("EUR", "100.00")
	require.NoError(t, err)

	f := &fixture{
		users:  store.NewUsers(balance),
		events: store.NewEvents(),
		bets:   store.NewBets(),
		idem:   store.NewIdempotency(),
		publ:   &recordingPublisher{},
	}

	market := domain.NewWinnerMarket([]domain.Selection{
		{ID: uuid.New(), DriverID: "d1", DriverName: "Lewis Hamilton", Odds: mustOdds(t, "2.00")},
		{ID: uuid.New(), DriverID: "d2", DriverName: "Max Verstappen", Odds: mustOdds(t, "3.00")},
	})
	event, err := domain.NewEvent(uuid.New(), "Monaco GP", domain.SessionRace, "Monaco", 2025, time.Now(), market)
	require.NoError(t, err)
	require.NoError(t, f.events.Save(event))
	f.event = event

	log := zap.NewNop()
	f.place = NewPlaceBet(log, f.users, f.events, f.bets, f.idem, f.publ)
	f.settle = NewRecordOutcome(log, f.events, f.bets, f.users, f.publ)
	return f
}

func mustOdds(t *testing.T, v string) domain.Odds {
	t.Helper()
	o, err := domain.OddsFromString(v)
	require.NoError(t, err)
	return o
}
