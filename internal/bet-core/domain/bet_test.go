package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBetCapturesSelectionOdds(t *testing.T) {
	ev := testEvent(t)
	sel := ev.Market.Selections[1] // odds 3.00
	stake, _ := MoneyFromString("EUR", "10.00")

	bet, err := NewBet(uuid.New(), uuid.New(), ev, sel.ID, stake)
	require.NoError(t, err)
	assert.Equal(t, BetPending, bet.Status)
	assert.True(t, bet.CapturedOdds.Equal(sel.Odds))
	assert.Equal(t, "30.00 EUR", bet.Payout().String())
}

func TestNewBetRejectsNonScheduledEvent(t *testing.T) {
	ev := testEvent(t)
	finished, err := ev.MarkFinished()
	require.NoError(t, err)

	stake, _ := MoneyFromString("EUR", "10.00")
	_, err = NewBet(uuid.New(), uuid.New(), finished, finished.Market.Selections[0].ID, stake)
	assert.Equal(t, KindIllegalEventState, KindOf(err))
}

func TestNewBetRejectsForeignSelection(t *testing.T) {
	ev := testEvent(t)
	stake, _ := MoneyFromString("EUR", "10.00")
	_, err := NewBet(uuid.New(), uuid.New(), ev, uuid.New(), stake)
	assert.Equal(t, KindInvalidSelection, KindOf(err))
}

func TestBetStatusesAreTerminal(t *testing.T) {
	ev := testEvent(t)
	stake, _ := MoneyFromString("EUR", "10.00")
	bet, err := NewBet(uuid.New(), uuid.New(), ev, ev.Market.Selections[0].ID, stake)
	require.NoError(t, err)

	won, err := bet.MarkWon()
	require.NoError(t, err)
	assert.Equal(t, BetWon, won.Status)
	assert.Equal(t, BetPending, bet.Status, "original is untouched")

	for _, terminal := range []Bet{won} {
		_, err := terminal.MarkLost()
		assert.Equal(t, KindIllegalBetState, KindOf(err))
		_, err = terminal.MarkVoid()
		assert.Equal(t, KindIllegalBetState, KindOf(err))
		_, err = terminal.MarkWon()
		assert.Equal(t, KindIllegalBetState, KindOf(err))
	}

	lost, err := bet.MarkLost()
	require.NoError(t, err)
	assert.Equal(t, BetLost, lost.Status)

	voided, err := bet.MarkVoid()
	require.NoError(t, err)
	assert.Equal(t, BetVoid, voided.Status)
}
