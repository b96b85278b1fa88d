package api

import (
	"net/http"
	"strings"

	"github.com/Kushagra128/meetingmind-cli/internal/client/credentials"
	"github.com/Kushagra128/meetingmind-cli/internal/logging"
)

// authTransport attaches the current bearer token to every outbound request
// and reacts to authentication rejections globally.
//
// The token is read from the credential store at send time, not captured at
// client construction: logout (including the auto-logout below) can happen
// between requests, and later calls must observe it.
//
// Any response with status 401 or 422 triggers an unconditional local logout:
// the stored credential is cleared and the onUnauthorized hook fires. This is
// a global side effect independent of which call produced the response.
type authTransport struct {
	base           http.RoundTripper
	creds          credentials.Store
	onUnauthorized func()
	log            logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token, err := t.creds.Token(ctx)
	if err != nil {
		t.log.Warn(ctx, "failed to read credential, sending unauthenticated", "err", err)
	}
	if token != "" {
		req = req.Clone(ctx)
		req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusUnprocessableEntity {
		if cerr := t.creds.Clear(ctx); cerr != nil {
			t.log.Error(ctx, "failed to clear credential after auth rejection", "err", cerr)
		}
		if t.onUnauthorized != nil {
			t.onUnauthorized()
		}
	}

	return resp, nil
}
