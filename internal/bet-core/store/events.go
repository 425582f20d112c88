package store

import (
	"github.com/google/uuid"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
)

type Events struct {
	store *Store[domain.Event]
}

func NewEvents() *Events {
	return &Events{store: New[domain.Event]()}
}

func (e *Events) Get(id uuid.UUID) (domain.Event, bool) {
	return e.store.Get(id)
}

func (e *Events) Save(event domain.Event) error {
	return e.store.Save(event.ID, event)
}

func (e *Events) Update(event domain.Event, expectedVersion int64) error {
	return e.store.Update(event.ID, event, expectedVersion)
}

func (e *Events) Version(id uuid.UUID) int64 {
	return e.store.Version(id)
}
