package service

import (
	"github.com/google/uuid"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/store"
)

// UserBalance consulta o saldo, criando o usuário no primeiro acesso.
type UserBalance struct {
	users *store.Users
}

func NewUserBalance(users *store.Users) *UserBalance {
	return &UserBalance{users: users}
}

func (s *UserBalance) Get(userID uuid.UUID) domain.User {
	return s.users.GetOrCreate(userID)
}
