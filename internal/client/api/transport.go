package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/sanaol/canteen/internal/client/auth"
	"github.com/sanaol/canteen/internal/client/credentials"
)

// authTransport is the one interceptor every client request passes
// through. Outbound: attach the stored access token as a Bearer header (a
// missing token is not an error, the request goes out unauthenticated).
// Inbound: on 401, refresh once through the token manager and replay the
// request with the new token. The replay happens inline exactly once, so a
// request can never loop: a second 401 comes back to the caller as the
// final answer.
type authTransport struct {
	base   http.RoundTripper
	store  *credentials.Store
	tokens *auth.Manager
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// RoundTrippers must not mutate the caller's request.
	out := req.Clone(ctx)

	token, err := t.store.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read access token: %w", err)
	}
	if token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// A body-carrying request can only be replayed if the body can be
	// rebuilt. Requests built by Client.do always can.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	newToken, refreshErr := t.tokens.Refresh(ctx)
	if refreshErr != nil {
		// Refresh failed: surface the original 401.
		return resp, nil
	}

	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()

	retry := req.Clone(ctx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+newToken)

	return t.base.RoundTrip(retry)
}
