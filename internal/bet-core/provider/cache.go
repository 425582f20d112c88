package provider

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionCache decora um Provider com cache Redis de TTL curto.
// Falha de cache nunca derruba a chamada: cai no provider interno.
type SessionCache struct {
	Inner Provider
	R     *redis.Client
	TTL   time.Duration
}

func keySessions(filter SessionFilter) string {
	typ, year, country := "*", "*", "*"
	if filter.SessionType != nil {
		typ = string(*filter.SessionType)
	}
	if filter.Year != nil {
		year = strconv.Itoa(*filter.Year)
	}
	if filter.Country != nil {
		country = *filter.Country
	}
	return "f1:sessions:" + typ + ":" + year + ":" + country
}

func keyDrivers(sessionID string) string {
	return "f1:drivers:" + sessionID
}

func (c *SessionCache) ListSessions(ctx context.Context, filter SessionFilter) ([]Session, error) {
	key := keySessions(filter)
	if b, err := c.R.Get(ctx, key).Bytes(); err == nil {
		var cached []Session
		if jerr := json.Unmarshal(b, &cached); jerr == nil {
			return cached, nil
		}
	}

	sessions, err := c.Inner.ListSessions(ctx, filter)
	if err != nil {
		return nil, err
	}
	if b, jerr := json.Marshal(sessions); jerr == nil {
		_ = c.R.Set(ctx, key, b, c.TTL).Err()
	}
	return sessions, nil
}

func (c *SessionCache) ListDriversForSession(ctx context.Context, sessionID string) ([]Driver, error) {
	key := keyDrivers(sessionID)
	if b, err := c.R.Get(ctx, key).Bytes(); err == nil {
		var cached []Driver
		if jerr := json.Unmarshal(b, &cached); jerr == nil {
			return cached, nil
		}
	}

	drivers, err := c.Inner.ListDriversForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if b, jerr := json.Marshal(drivers); jerr == nil {
		_ = c.R.Set(ctx, key, b, c.TTL).Err()
	}
	return drivers, nil
}
