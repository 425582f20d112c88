// Package provider é a porta para o provedor upstream de sessões e pilotos
// de F1. O core só exige ids estáveis durante a vida do processo.
package provider

import (
	"context"
	"time"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
)

type Session struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	SessionType domain.SessionType `json:"sessionType"`
	Country     string             `json:"country"`
	Year        int                `json:"year"`
	StartTime   time.Time          `json:"startTime"`
}

type Driver struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// SessionFilter: campos nil não filtram.
type SessionFilter struct {
	SessionType *domain.SessionType
	Year        *int
	Country     *string
}

type Provider interface {
	ListSessions(ctx context.Context, filter SessionFilter) ([]Session, error)
	ListDriversForSession(ctx context.Context, sessionID string) ([]Driver, error)
}
