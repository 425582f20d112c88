package store

import (
	"sync"

	"github.com/google/uuid"
)

// Idempotency mapeia (userID, chave do cliente) -> betID, write-once.
// A chave é escopada por usuário para evitar colisão entre clientes.
type Idempotency struct {
	mu   sync.Mutex
	keys map[string]uuid.UUID
}

func NewIdempotency() *Idempotency {
	return &Idempotency{keys: make(map[string]uuid.UUID)}
}

func idemKey(userID uuid.UUID, key string) string {
	return userID.String() + ":" + key
}

// Claim registra a chave de forma atômica ANTES de qualquer trabalho.
// Devolve o betID vencedor e se a claim é desta chamada; se outra
// requisição chegou primeiro, devolve o betID dela.
func (i *Idempotency) Claim(userID uuid.UUID, key string, betID uuid.UUID) (uuid.UUID, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if existing, ok := i.keys[idemKey(userID, key)]; ok {
		return existing, false
	}
	i.keys[idemKey(userID, key)] = betID
	return betID, true
}

// Release desfaz uma claim nos caminhos de falha, liberando a chave
// para uma nova tentativa do cliente.
func (i *Idempotency) Release(userID uuid.UUID, key string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.keys, idemKey(userID, key))
}

func (i *Idempotency) Find(userID uuid.UUID, key string) (uuid.UUID, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	betID, ok := i.keys[idemKey(userID, key)]
	return betID, ok
}
