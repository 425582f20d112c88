package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
)

func TestPlaceBetDebitsStake(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	bet, err := f.place.Place(context.Background(), PlaceBetCommand{
		UserID:      userID,
		EventID:     f.event.ID,
		SelectionID: f.event.Market.Selections[0].ID,
		StakeAmount: decimal.RequireFromString("10.00"),
		Currency:    "EUR",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BetPending, bet.Status)
	assert.Equal(t, "10.00 EUR", bet.Stake.String())

	user, ok := f.users.Get(userID)
	require.True(t, ok)
	assert.Equal(t, "90.00 EUR", user.Balance.String())
	assert.Equal(t, int64(1), f.users.Version(userID), "debit bumps the version")

	stored, ok := f.bets.Get(bet.ID)
	require.True(t, ok)
	assert.Equal(t, domain.BetPending, stored.Status)

	require.Len(t, f.publ.placed, 1)
	assert.Equal(t, bet.ID.String(), f.publ.placed[0].BetID)
}

func TestPlaceBetInsufficientBalanceLeavesUserUntouched(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	_, err := f.place.Place(context.Background(), PlaceBetCommand{
		UserID:      userID,
		EventID:     f.event.ID,
		SelectionID: f.event.Market.Selections[0].ID,
		StakeAmount: decimal.RequireFromString("1000000"),
		Currency:    "EUR",
	})
	assert.Equal(t, domain.KindInsufficientBalance, domain.KindOf(err))

	user, ok := f.users.Get(userID)
	require.True(t, ok)
	assert.Equal(t, "100.00 EUR", user.Balance.String())
	assert.Empty(t, f.publ.placed)
}

func TestPlaceBetRejectsUnknownEvent(t *testing.T) {
	f := newFixture(t)
	_, err := f.place.Place(context.Background(), PlaceBetCommand{
		UserID:      uuid.New(),
		EventID:     uuid.New(),
		SelectionID: uuid.New(),
		StakeAmount: decimal.RequireFromString("10.00"),
		Currency:    "EUR",
	})
	assert.Equal(t, domain.KindEventNotFound, domain.KindOf(err))
}

func TestPlaceBetRejectsForeignSelection(t *testing.T) {
	f := newFixture(t)
	_, err := f.place.Place(context.Background(), PlaceBetCommand{
		UserID:      uuid.New(),
		EventID:     f.event.ID,
		SelectionID: uuid.New(),
		StakeAmount: decimal.RequireFromString("10.00"),
		Currency:    "EUR",
	})
	assert.Equal(t, domain.KindInvalidSelection, domain.KindOf(err))
}

func TestPlaceBetRejectsNonPositiveStake(t *testing.T) {
	f := newFixture(t)
	_, err := f.place.Place(context.Background(), PlaceBetCommand{
		UserID:      uuid.New(),
		EventID:     f.event.ID,
		SelectionID: f.event.Market.Selections[0].ID,
		StakeAmount: decimal.Zero,
		Currency:    "EUR",
	})
	assert.Equal(t, domain.KindInvalidStake, domain.KindOf(err))
}

func TestPlaceBetIdempotencyReturnsSameBet(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	cmd := PlaceBetCommand{
		UserID:         userID,
		EventID:        f.event.ID,
		SelectionID:    f.event.Market.Selections[0].ID,
		StakeAmount:    decimal.RequireFromString("10.00"),
		Currency:       "EUR",
		IdempotencyKey: "client-key-1",
	}

	first, err := f.place.Place(context.Background(), cmd)
	require.NoError(t, err)
	second, err := f.place.Place(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	user, _ := f.users.Get(userID)
	assert.Equal(t, "90.00 EUR", user.Balance.String(), "debited exactly once")
	assert.Len(t, f.publ.placed, 1)
}

func TestPlaceBetIdempotencyKeyFreedOnFailure(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	cmd := PlaceBetCommand{
		UserID:         userID,
		EventID:        f.event.ID,
		SelectionID:    uuid.New(), // seleção inexistente
		StakeAmount:    decimal.RequireFromString("10.00"),
		Currency:       "EUR",
		IdempotencyKey: "client-key-2",
	}

	_, err := f.place.Place(context.Background(), cmd)
	require.Error(t, err)

	// nova tentativa com payload corrigido reusa a mesma chave
	cmd.SelectionID = f.event.Market.Selections[0].ID
	bet, err := f.place.Place(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, domain.BetPending, bet.Status)
}

func TestPlaceBetConcurrentSameKeyCreatesOneBet(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	cmd := PlaceBetCommand{
		UserID:         userID,
		EventID:        f.event.ID,
		SelectionID:    f.event.Market.Selections[0].ID,
		StakeAmount:    decimal.RequireFromString("10.00"),
		Currency:       "EUR",
		IdempotencyKey: "client-key-3",
	}

	const callers = 8
	var wg sync.WaitGroup
	ids := make(chan uuid.UUID, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bet, err := f.place.Place(context.Background(), cmd)
			if err == nil {
				ids <- bet.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	unique := map[uuid.UUID]struct{}{}
	for id := range ids {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, 1, "a single bet id across all callers")
	assert.Len(t, f.bets.FindByEvent(f.event.ID), 1)

	user, _ := f.users.Get(userID)
	assert.Equal(t, "90.00 EUR", user.Balance.String(), "debited exactly once")
}
