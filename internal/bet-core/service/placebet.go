package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/store"
	"github.com/radieske/f1-bet-core-poc/internal/shared/metrics"
	"github.com/radieske/f1-bet-core-poc/pkg/contracts/events"
)

// Publisher emite os eventos de ciclo de vida para fora do core.
type Publisher interface {
	PublishBetPlaced(ctx context.Context, e events.BetPlaced) error
	PublishBetSettled(ctx context.Context, e events.BetSettled) error
}

type PlaceBetCommand struct {
	UserID         uuid.UUID
	EventID        uuid.UUID
	SelectionID    uuid.UUID
	StakeAmount    decimal.Decimal
	Currency       string
	IdempotencyKey string // vazio desliga a deduplicação
}

// PlaceBet orquestra a colocação de aposta: claim de idempotência,
// validação do evento/seleção, checagem de saldo e débito versionado.
type PlaceBet struct {
	log    *zap.Logger
	users  *store.Users
	events *store.Events
	bets   *store.Bets
	idem   *store.Idempotency
	publ   Publisher
}

func NewPlaceBet(log *zap.Logger, users *store.Users, events *store.Events, bets *store.Bets, idem *store.Idempotency, publ Publisher) *PlaceBet {
	return &PlaceBet{log: log, users: users, events: events, bets: bets, idem: idem, publ: publ}
}

func (s *PlaceBet) Place(ctx context.Context, cmd PlaceBetCommand) (domain.Bet, error) {
	betID := uuid.New()

	// A chave é reivindicada ANTES de qualquer trabalho: duas requisições
	// idênticas concorrentes nunca criam duas apostas.
	key := strings.TrimSpace(cmd.IdempotencyKey)
	if key != "" {
		winner, claimed := s.idem.Claim(cmd.UserID, key, betID)
		if !claimed {
			bet, found := s.bets.Get(winner)
			if !found {
				return domain.Bet{}, domain.Errorf(domain.KindIdempotentBetMissing,
					"idempotency key maps to bet %s which is not in the store", winner)
			}
			return bet, nil
		}
	}

	bet, err := s.place(ctx, betID, cmd)
	if err != nil && key != "" {
		s.idem.Release(cmd.UserID, key)
	}
	return bet, err
}

func (s *PlaceBet) place(ctx context.Context, betID uuid.UUID, cmd PlaceBetCommand) (domain.Bet, error) {
	event, ok := s.events.Get(cmd.EventID)
	if !ok {
		return domain.Bet{}, domain.Errorf(domain.KindEventNotFound, "event %s not found", cmd.EventID)
	}
	if !event.HasSelection(cmd.SelectionID) {
		return domain.Bet{}, domain.Errorf(domain.KindInvalidSelection,
			"selection %s not part of event %s", cmd.SelectionID, cmd.EventID)
	}

	stake, err := domain.NewStake(cmd.Currency, cmd.StakeAmount)
	if err != nil {
		return domain.Bet{}, err
	}

	user := s.users.GetOrCreate(cmd.UserID)
	if !user.Balance.CanCover(stake) {
		return domain.Bet{}, domain.Errorf(domain.KindInsufficientBalance,
			"balance %s does not cover stake %s", user.Balance, stake)
	}

	bet, err := domain.NewBet(betID, cmd.UserID, event, cmd.SelectionID, stake)
	if err != nil {
		return domain.Bet{}, err
	}
	if err := s.bets.Save(bet); err != nil {
		return domain.Bet{}, err
	}

	newBalance, err := user.Balance.Subtract(stake)
	if err != nil {
		return domain.Bet{}, err
	}
	userVersion := s.users.Version(user.ID)
	if err := s.users.Update(user.WithBalance(newBalance), userVersion); err != nil {
		// Débito perdeu a corrida de versão. Sem retry interno: o caller
		// repete o comando (seguro sob a chave de idempotência). A aposta
		// recém salva vira VOID para nunca ser liquidada como PENDING.
		metrics.LockConflicts.WithLabelValues("user").Inc()
		s.voidBet(bet)
		return domain.Bet{}, err
	}

	metrics.BetsPlaced.Inc()
	if perr := s.publ.PublishBetPlaced(ctx, events.BetPlaced{
		BetID:        bet.ID.String(),
		UserID:       bet.UserID.String(),
		EventID:      bet.EventID.String(),
		SelectionID:  bet.SelectionID.String(),
		Stake:        bet.Stake.Amount.StringFixed(2),
		Currency:     bet.Stake.Currency,
		CapturedOdds: bet.CapturedOdds.Decimal().StringFixed(2),
	}); perr != nil {
		s.log.Warn("publish bet_placed", zap.String("betId", bet.ID.String()), zap.Error(perr))
	}
	return bet, nil
}

func (s *PlaceBet) voidBet(bet domain.Bet) {
	voided, err := bet.MarkVoid()
	if err != nil {
		return
	}
	if err := s.bets.Update(voided, s.bets.Version(bet.ID)); err != nil {
		s.log.Warn("void bet after debit conflict", zap.String("betId", bet.ID.String()), zap.Error(err))
	}
}
