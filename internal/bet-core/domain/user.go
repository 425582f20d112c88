package domain

import (
	"github.com/google/uuid"
)

// User carrega apenas o saldo; todo débito/crédito gera um novo valor.
type User struct {
	ID      uuid.UUID
	Balance Money
}

func NewUser(id uuid.UUID, balance Money) User {
	return User{ID: id, Balance: balance}
}

func (u User) WithBalance(balance Money) User {
	return User{ID: u.ID, Balance: balance}
}
