package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/clinic-api/internal/api/shared"
	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var (
	customer = shared.Principal{UserID: 1, LoginID: "customer01", Role: domain.RoleCustomer}
	partner  = shared.Principal{UserID: 2, LoginID: "partner01", Role: domain.RolePartner}
	admin    = shared.Principal{UserID: 3, LoginID: "admin01", Role: domain.RoleAdmin}
)

// newRequest builds a request with an optional JSON body, authenticated
// principal and chi URL parameters given as name/value pairs.
func newRequest(
	t *testing.T,
	method, target string,
	body interface{},
	principal *shared.Principal,
	params ...string,
) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	ctx := req.Context()
	if principal != nil {
		ctx = shared.WithPrincipal(ctx, *principal)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for i := 0; i+1 < len(params); i += 2 {
			rctx.URLParams.Add(params[i], params[i+1])
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
