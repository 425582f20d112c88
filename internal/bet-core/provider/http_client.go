package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client consome a API HTTP do provedor (formato OpenF1).
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Retries int
}

func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: timeout},
		Retries: 3,
	}
}

func (c *Client) ListSessions(ctx context.Context, filter SessionFilter) ([]Session, error) {
	u, err := url.Parse(c.BaseURL + "/sessions")
	if err != nil {
		return nil, fmt.Errorf("provider url: %w", err)
	}
	q := u.Query()
	if filter.SessionType != nil {
		q.Set("sessionType", string(*filter.SessionType))
	}
	if filter.Year != nil {
		q.Set("year", strconv.Itoa(*filter.Year))
	}
	if filter.Country != nil {
		q.Set("country", *filter.Country)
	}
	u.RawQuery = q.Encode()

	var out []Session
	if err := c.getJSON(ctx, u.String(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListDriversForSession(ctx context.Context, sessionID string) ([]Driver, error) {
	var out []Driver
	if err := c.getJSON(ctx, c.BaseURL+"/sessions/"+url.PathEscape(sessionID)+"/drivers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// getJSON executa GET com retry e backoff linear simples.
func (c *Client) getJSON(ctx context.Context, rawURL string, dst any) error {
	var lastErr error
	for attempt := 0; attempt < c.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(100*attempt) * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		res, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if res.StatusCode >= 300 {
			res.Body.Close()
			lastErr = fmt.Errorf("provider http %d", res.StatusCode)
			continue
		}
		err = json.NewDecoder(res.Body).Decode(dst)
		res.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("provider request failed after %d attempts: %w", c.Retries, lastErr)
}
