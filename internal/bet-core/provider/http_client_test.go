package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
)

func TestClientListSessionsSendsFilters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]Session{{ID: "s1", Name: "Race", SessionType: domain.SessionRace, Year: 2025}})
	}))
	defer srv.Close()

	race := domain.SessionRace
	year := 2025
	country := "Monaco"
	c := NewClient(srv.URL, time.Second)
	sessions, err := c.ListSessions(context.Background(), SessionFilter{SessionType: &race, Year: &year, Country: &country})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s1", sessions[0].ID)
	assert.Contains(t, gotQuery, "sessionType=RACE")
	assert.Contains(t, gotQuery, "year=2025")
	assert.Contains(t, gotQuery, "country=Monaco")
}

func TestClientRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode([]Driver{{ID: "d1", FullName: "Lewis Hamilton"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	drivers, err := c.ListDriversForSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, drivers, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientGivesUpAfterRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.ListSessions(context.Background(), SessionFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
}
