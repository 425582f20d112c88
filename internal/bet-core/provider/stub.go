package provider

import (
	"context"
	"strings"
	"time"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
)

// Stub devolve sessões e pilotos fixos para desenvolvimento e testes.
type Stub struct{}

var stubSessions = []Session{
	{
		ID:          "550e8400-e29b-41d4-a716-446655440001",
		Name:        "Australian GP - Race",
		SessionType: domain.SessionRace,
		Country:     "Australia",
		Year:        2025,
		StartTime:   time.Date(2025, 3, 16, 5, 0, 0, 0, time.UTC),
	},
	{
		ID:          "550e8400-e29b-41d4-a716-446655440002",
		Name:        "Monaco GP - Qualifying",
		SessionType: domain.SessionQualifying,
		Country:     "Monaco",
		Year:        2025,
		StartTime:   time.Date(2025, 5, 24, 14, 0, 0, 0, time.UTC),
	},
	{
		ID:          "550e8400-e29b-41d4-a716-446655440003",
		Name:        "British GP - Practice",
		SessionType: domain.SessionPractice,
		Country:     "UK",
		Year:        2025,
		StartTime:   time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC),
	},
}

func (Stub) ListSessions(_ context.Context, filter SessionFilter) ([]Session, error) {
	var out []Session
	for _, s := range stubSessions {
		if filter.SessionType != nil && s.SessionType != *filter.SessionType {
			continue
		}
		if filter.Year != nil && s.Year != *filter.Year {
			continue
		}
		if filter.Country != nil && !strings.EqualFold(s.Country, *filter.Country) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (Stub) ListDriversForSession(_ context.Context, _ string) ([]Driver, error) {
	return []Driver{
		{ID: "d1", FullName: "Lewis Hamilton"},
		{ID: "d2", FullName: "Max Verstappen"},
		{ID: "d3", FullName: "Charles Leclerc"},
	}, nil
}
