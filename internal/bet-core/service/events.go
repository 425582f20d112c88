package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/provider"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/store"
)

const (
	defaultPage = 0
	defaultSize = 20
)

// ListEvents materializa eventos a partir das sessões do provider.
// A primeira consulta a uma sessão cria o Event (odds sorteadas por
// seleção) e o salva; consultas seguintes reutilizam o evento salvo.
type ListEvents struct {
	log      *zap.Logger
	provider provider.Provider
	events   *store.Events
	rand     domain.Rand
}

type EventPage struct {
	Items []domain.Event
	Page  int
	Size  int
	Total int
}

func NewListEvents(log *zap.Logger, prov provider.Provider, events *store.Events, rand domain.Rand) *ListEvents {
	return &ListEvents{log: log, provider: prov, events: events, rand: rand}
}

func (s *ListEvents) List(ctx context.Context, filter provider.SessionFilter, page, size int) (EventPage, error) {
	sessions, err := s.provider.ListSessions(ctx, filter)
	if err != nil {
		return EventPage{}, fmt.Errorf("list sessions: %w", err)
	}

	evs := make([]domain.Event, 0, len(sessions))
	for _, session := range sessions {
		event, err := s.materialize(ctx, session)
		if err != nil {
			return EventPage{}, err
		}
		evs = append(evs, event)
	}

	if page < 0 {
		page = defaultPage
	}
	if size <= 0 {
		size = defaultSize
	}
	total := len(evs)
	from := min(page*size, total)
	to := min(from+size, total)
	return EventPage{Items: evs[from:to], Page: page, Size: size, Total: total}, nil
}

// materialize devolve o evento já conhecido ou cria um novo com odds
// sorteadas para cada piloto da sessão.
func (s *ListEvents) materialize(ctx context.Context, session provider.Session) (domain.Event, error) {
	id := eventID(session.ID)
	if event, ok := s.events.Get(id); ok {
		return event, nil
	}

	drivers, err := s.provider.ListDriversForSession(ctx, session.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("list drivers for session %s: %w", session.ID, err)
	}
	selections := make([]domain.Selection, 0, len(drivers))
	for _, d := range drivers {
		selections = append(selections, domain.Selection{
			ID:         uuid.New(),
			DriverID:   d.ID,
			DriverName: d.FullName,
			Odds:       domain.RandomOdds(s.rand),
		})
	}

	event, err := domain.NewEvent(id, session.Name, session.SessionType, session.Country,
		session.Year, session.StartTime, domain.NewWinnerMarket(selections))
	if err != nil {
		return domain.Event{}, err
	}
	if err := s.events.Save(event); err != nil {
		// corrida de criação: outra requisição salvou o mesmo evento antes
		if existing, ok := s.events.Get(id); ok {
			return existing, nil
		}
		return domain.Event{}, err
	}
	s.log.Debug("event materialized", zap.String("eventId", id.String()), zap.Int("selections", len(selections)))
	return event, nil
}

// eventID deriva um uuid estável a partir do id de sessão do provider.
func eventID(sessionID string) uuid.UUID {
	if id, err := uuid.Parse(sessionID); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(sessionID))
}
