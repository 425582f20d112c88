package store

import (
	"github.com/google/uuid"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
)

// Users especializa o store com criação preguiçosa: o primeiro acesso a um
// id desconhecido registra o usuário com o saldo inicial, na versão 0.
type Users struct {
	store          *Store[domain.User]
	defaultBalance domain.Money
}

func NewUsers(defaultBalance domain.Money) *Users {
	return &Users{store: New[domain.User](), defaultBalance: defaultBalance}
}

func (u *Users) GetOrCreate(id uuid.UUID) domain.User {
	user, _ := u.store.LoadOrStore(id, domain.NewUser(id, u.defaultBalance))
	return user
}

func (u *Users) Get(id uuid.UUID) (domain.User, bool) {
	return u.store.Get(id)
}

func (u *Users) Update(user domain.User, expectedVersion int64) error {
	return u.store.Update(user.ID, user, expectedVersion)
}

func (u *Users) Version(id uuid.UUID) int64 {
	return u.store.Version(id)
}
