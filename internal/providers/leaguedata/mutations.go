package leaguedata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// Put sends a typed upsert to the league-data endpoint. The payload's JSON
// fields are merged with {"type": kind}.
func (c *Client) Put(ctx context.Context, password string, kind league.MutationKind, payload any) error {
	body, err := typedBody(kind, payload)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPut, c.leagueDataURL, password, body, "league-data put "+string(kind), nil)
}

// Delete removes a team or regulation by id.
func (c *Client) Delete(ctx context.Context, password string, kind league.MutationKind, id int) error {
	body, err := json.Marshal(map[string]any{"type": kind, "id": id})
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodDelete, c.leagueDataURL, password, body, "league-data delete "+string(kind), nil)
}

// CreateMatch posts a new match and returns the id assigned upstream.
func (c *Client) CreateMatch(ctx context.Context, password string, m league.MatchCreate) (int, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return 0, err
	}
	var out createMatchResponse
	if err := c.send(ctx, http.MethodPost, c.matchesURL, password, body, "matches create", &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// UpdateMatch changes the score, status, result type or date of a match.
func (c *Client) UpdateMatch(ctx context.Context, password string, m league.MatchUpdate) error {
	body, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPut, c.matchesURL, password, body, "matches update", nil)
}

func (c *Client) send(ctx context.Context, method, url, password string, body []byte, op string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(adminPasswordHeader, password)

	resp, err := c.do(req, op)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}
	return nil
}

func typedBody(kind league.MutationKind, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("payload for %s must be a JSON object: %w", kind, err)
	}
	fields["type"] = kind
	return json.Marshal(fields)
}
