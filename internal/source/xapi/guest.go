package xapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"post_watcher/internal/domain"
	"post_watcher/internal/identity"
)

const guestActivatePath = "/1.1/guest/activate.json"

// AcquireGuestToken bootstraps an anonymous session. The token is owned by
// one polling cycle and shared read-only by all lookups in it. There is no
// retry here; a failed acquire aborts the whole cycle and the next tick
// starts fresh.
func (c *Client) AcquireGuestToken(ctx context.Context, ident identity.Fingerprint) (domain.GuestToken, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+guestActivatePath, nil)
	if err != nil {
		return "", &domain.AuthError{Reason: "create request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+publicBearerToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ident.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.AuthError{Reason: "activate request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.AuthError{Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	var decoded guestActivateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", &domain.AuthError{Reason: "decode response", Err: err}
	}
	if decoded.GuestToken == "" {
		return "", &domain.AuthError{Reason: "response missing guest_token"}
	}

	return domain.GuestToken(decoded.GuestToken), nil
}
