// Package store guarda as entidades do core em memória com controle
// otimista de concorrência: cada entrada carrega uma versão que começa
// em 0 e avança 1 a cada update bem sucedido.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
)

// ErrAlreadyExists: Save não sobrescreve ids existentes (sobrescrever
// resetaria a versão e abriria corrida com leitores antigos).
var ErrAlreadyExists = errors.New("store: id already exists")

type versioned[T any] struct {
	value   T
	version int64
}

// Store é o mapa versionado compartilhado. Toda mutação passa pelo
// compare-and-swap de Update; o lock cobre só a seção crítica por chamada.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]versioned[T]
}

func New[T any]() *Store[T] {
	return &Store[T]{items: make(map[uuid.UUID]versioned[T])}
}

func (s *Store[T]) Get(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.items[id]
	return entry.value, ok
}

// Save insere a entidade na versão 0. Falha se o id já existir.
func (s *Store[T]) Save(id uuid.UUID, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; ok {
		return ErrAlreadyExists
	}
	s.items[id] = versioned[T]{value: value, version: 0}
	return nil
}

// Update aplica compare-and-swap pela versão esperada. Entrada ausente é
// tratada como criação na versão 0. Em conflito o store não muda.
func (s *Store[T]) Update(id uuid.UUID, value T, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.items[id]
	if !ok {
		s.items[id] = versioned[T]{value: value, version: 0}
		return nil
	}
	if current.version != expectedVersion {
		return domain.Errorf(domain.KindOptimisticLock,
			"version mismatch for %s: expected=%d actual=%d", id, expectedVersion, current.version)
	}
	s.items[id] = versioned[T]{value: value, version: current.version + 1}
	return nil
}

// Version devolve a versão corrente; 0 quando o id não existe.
func (s *Store[T]) Version(id uuid.UUID) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[id].version
}

// LoadOrStore devolve o valor existente ou insere o dado na versão 0.
func (s *Store[T]) LoadOrStore(id uuid.UUID, value T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.items[id]; ok {
		return current.value, true
	}
	s.items[id] = versioned[T]{value: value, version: 0}
	return value, false
}

// All devolve um snapshot dos valores (sem ordem definida).
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	for _, entry := range s.items {
		out = append(out, entry.value)
	}
	return out
}
