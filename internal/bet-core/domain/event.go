package domain

import (
	"time"

	"github.com/google/uuid"
)

type SessionType string

const (
	SessionRace       SessionType = "RACE"
	SessionQualifying SessionType = "QUALIFYING"
	SessionPractice   SessionType = "PRACTICE"
)

func ParseSessionType(s string) (SessionType, error) {
	switch SessionType(s) {
	case SessionRace, SessionQualifying, SessionPractice:
		return SessionType(s), nil
	}
	return "", Errorf(KindUnknown, "unknown session type %q", s)
}

type EventState string

const (
	EventScheduled EventState = "SCHEDULED"
	EventFinished  EventState = "FINISHED"
	EventSettled   EventState = "SETTLED"
)

// eventTransitions é a tabela de transições válidas (somente para frente).
var eventTransitions = map[EventState]EventState{
	EventScheduled: EventFinished,
	EventFinished:  EventSettled,
}

func (s EventState) CanTransitionTo(next EventState) bool {
	return eventTransitions[s] == next
}

// Selection é um piloto apostável dentro de um mercado. Imutável após criada.
type Selection struct {
	ID         uuid.UUID
	DriverID   string
	DriverName string
	Odds       Odds
}

const MarketWinner = "WINNER"

type Market struct {
	Type       string
	Selections []Selection
}

func NewWinnerMarket(selections []Selection) Market {
	return Market{Type: MarketWinner, Selections: selections}
}

func (m Market) SelectionByID(id uuid.UUID) (Selection, bool) {
	for _, s := range m.Selections {
		if s.ID == id {
			return s, true
		}
	}
	return Selection{}, false
}

type Event struct {
	ID          uuid.UUID
	Name        string
	SessionType SessionType
	Country     string
	Year        int
	StartTime   time.Time
	State       EventState
	Market      Market
}

// NewEvent cria o evento em SCHEDULED. Só o mercado WINNER é suportado.
func NewEvent(id uuid.UUID, name string, sessionType SessionType, country string, year int, startTime time.Time, market Market) (Event, error) {
	if market.Type != MarketWinner {
		return Event{}, Errorf(KindUnknown, "event must contain WINNER market only, got %q", market.Type)
	}
	return Event{
		ID:          id,
		Name:        name,
		SessionType: sessionType,
		Country:     country,
		Year:        year,
		StartTime:   startTime,
		State:       EventScheduled,
		Market:      market,
	}, nil
}

func (e Event) HasSelection(selectionID uuid.UUID) bool {
	_, ok := e.Market.SelectionByID(selectionID)
	return ok
}

// MarkFinished devolve uma cópia em FINISHED; falha fora de SCHEDULED.
func (e Event) MarkFinished() (Event, error) {
	if !e.State.CanTransitionTo(EventFinished) {
		return Event{}, Errorf(KindIllegalEventState, "event %s must be SCHEDULED to finish, is %s", e.ID, e.State)
	}
	e.State = EventFinished
	return e, nil
}

// MarkSettled devolve uma cópia em SETTLED; falha fora de FINISHED.
func (e Event) MarkSettled() (Event, error) {
	if !e.State.CanTransitionTo(EventSettled) {
		return Event{}, Errorf(KindIllegalEventState, "event %s must be FINISHED to settle, is %s", e.ID, e.State)
	}
	e.State = EventSettled
	return e, nil
}
