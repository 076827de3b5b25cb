package identity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	perr "chirp/internal/platform/errors"
)

// UsersByIDs fetches public profiles for the given user ids in one call
//
// Input ids are deduplicated before hitting the wire; duplicate and
// empty ids are tolerated. Entries the provider returns without an id
// are rejected here rather than leaked into the core
func (c *Client) UsersByIDs(ctx context.Context, ids []string, limit int) ([]Profile, error) {
	distinct := dedupe(ids)
	if len(distinct) == 0 {
		return nil, nil
	}
	if limit <= 0 || limit > len(distinct) {
		limit = len(distinct)
	}

	q := url.Values{}
	for _, id := range distinct {
		q.Add("user_id", id)
	}
	q.Set("limit", strconv.Itoa(limit))

	resp, err := c.do(ctx, http.MethodGet, "/v1/users?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Msg("identity close body failed")
		}
	}()

	var raw []Profile
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "identity users decode failed")
	}

	out := make([]Profile, 0, len(raw))
	for _, p := range raw {
		if p.ID == "" {
			c.log.Warn().Msg("identity returned profile without id, dropping")
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// VerifyToken checks a session token with the provider and returns the
// authenticated subject id
func (c *Client) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", perr.Unauthorizedf("empty session token")
	}

	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return "", err
	}

	resp, err := c.do(ctx, http.MethodPost, "/v1/tokens/verify", body)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Msg("identity close body failed")
		}
	}()

	var s session
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", err
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "identity session decode failed")
	}
	if s.Subject == "" || (s.Status != "" && s.Status != "active") {
		return "", perr.Unauthorizedf("session is not active")
	}
	return s.Subject, nil
}

// dedupe returns the distinct non-empty ids preserving first-seen order
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
