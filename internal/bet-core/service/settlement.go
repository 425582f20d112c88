package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/store"
	"github.com/radieske/f1-bet-core-poc/internal/shared/metrics"
	"github.com/radieske/f1-bet-core-poc/pkg/contracts/events"
)

// RecordOutcome conclui o evento (SCHEDULED→FINISHED→SETTLED) e liquida
// cada aposta: vencedoras viram WON e creditam o prêmio, as demais LOST.
type RecordOutcome struct {
	log    *zap.Logger
	events *store.Events
	bets   *store.Bets
	users  *store.Users
	publ   Publisher
}

func NewRecordOutcome(log *zap.Logger, events *store.Events, bets *store.Bets, users *store.Users, publ Publisher) *RecordOutcome {
	return &RecordOutcome{log: log, events: events, bets: bets, users: users, publ: publ}
}

func (s *RecordOutcome) Record(ctx context.Context, eventID uuid.UUID, winningDriverID string) error {
	event, ok := s.events.Get(eventID)
	if !ok {
		return domain.Errorf(domain.KindEventNotFound, "event %s not found", eventID)
	}
	if event.State == domain.EventSettled {
		return nil // já liquidado: chamada repetida é no-op
	}

	version := s.events.Version(eventID)
	if event.State == domain.EventScheduled {
		finished, err := event.MarkFinished()
		if err != nil {
			return err
		}
		if err := s.events.Update(finished, version); err != nil {
			return err
		}
		event = finished
		version = s.events.Version(eventID)
	}
	if event.State == domain.EventFinished {
		settled, err := event.MarkSettled()
		if err != nil {
			return err
		}
		if err := s.events.Update(settled, version); err != nil {
			return err
		}
		event = settled
	}

	for _, bet := range s.bets.FindByEvent(eventID) {
		if err := s.settleBet(ctx, event, bet, winningDriverID); err != nil {
			// Falha pontual (ex.: conflito de versão no crédito) não
			// interrompe a liquidação das demais apostas.
			s.log.Warn("settle bet", zap.String("betId", bet.ID.String()), zap.Error(err))
		}
	}
	return nil
}

func (s *RecordOutcome) settleBet(ctx context.Context, event domain.Event, bet domain.Bet, winningDriverID string) error {
	selection, ok := event.Market.SelectionByID(bet.SelectionID)
	winner := ok && selection.DriverID == winningDriverID

	var (
		settled domain.Bet
		err     error
	)
	if winner {
		settled, err = bet.MarkWon()
	} else {
		settled, err = bet.MarkLost()
	}
	if err != nil {
		return err // aposta fora de PENDING (ex.: VOID) fica como está
	}

	if err := s.bets.Update(settled, s.bets.Version(bet.ID)); err != nil {
		metrics.LockConflicts.WithLabelValues("bet").Inc()
		return err
	}
	metrics.BetsSettled.WithLabelValues(string(settled.Status)).Inc()

	payout := ""
	if winner {
		if err := s.creditPayout(settled); err != nil {
			return err
		}
		payout = settled.Payout().Amount.StringFixed(2)
	}

	if perr := s.publ.PublishBetSettled(ctx, events.BetSettled{
		BetID:    settled.ID.String(),
		UserID:   settled.UserID.String(),
		EventID:  settled.EventID.String(),
		Status:   string(settled.Status),
		Payout:   payout,
		Currency: settled.Stake.Currency,
	}); perr != nil {
		s.log.Warn("publish bet_settled", zap.String("betId", settled.ID.String()), zap.Error(perr))
	}
	return nil
}

func (s *RecordOutcome) creditPayout(bet domain.Bet) error {
	user, ok := s.users.Get(bet.UserID)
	if !ok {
		return nil
	}
	newBalance, err := user.Balance.Add(bet.Payout())
	if err != nil {
		return err
	}
	if err := s.users.Update(user.WithBalance(newBalance), s.users.Version(user.ID)); err != nil {
		metrics.LockConflicts.WithLabelValues("user").Inc()
		return err
	}
	return nil
}
