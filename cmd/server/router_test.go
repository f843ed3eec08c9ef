package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/clinic-api/internal/config"
	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/mocks"
	"github.com/phrazzld/clinic-api/internal/pagination"
	"github.com/phrazzld/clinic-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApplication wires the router around mocks. Tokens are the login IDs
// of the users they authenticate.
func testApplication() *application {
	users := map[string]*domain.User{
		"customer01": {ID: 1, LoginID: "customer01", Role: domain.RoleCustomer},
		"partner01":  {ID: 2, LoginID: "partner01", Role: domain.RolePartner},
		"admin01":    {ID: 3, LoginID: "admin01", Role: domain.RoleAdmin},
	}

	return &application{
		config: &config.Config{Auth: config.AuthConfig{LoginRateLimit: 0.001, LoginBurst: 2}},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		jwtService: &mocks.MockJWTService{
			ValidateAccessTokenFn: func(_ context.Context, token string) (*auth.AccessClaims, error) {
				if _, ok := users[token]; !ok {
					return nil, auth.ErrInvalidToken
				}
				return &auth.AccessClaims{LoginID: token}, nil
			},
		},
		userFinder: &mocks.MockUserFinder{Users: users},
		registrar:  &mocks.MockRegistrar{},
		sessions: &mocks.MockSessionStarter{
			LoginFn: func(context.Context, string, string) (auth.TokenPair, error) {
				return auth.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
			},
		},
		userService: &mocks.MockUserService{
			GetProfileFn: func(_ context.Context, id int64) (domain.Profile, error) {
				return domain.Profile{UserID: id}, nil
			},
			ListUsersFn: func(context.Context) ([]domain.User, error) { return nil, nil },
		},
		reservationService: &mocks.MockReservationService{
			GetApprovedFn: func(_ context.Context, userID int64, page int) (pagination.Page[domain.ReservationView], error) {
				views := []domain.ReservationView{{ID: 6, Status: domain.ReservationStatusApproved}}
				return pagination.NewPage(views, 1, page, pagination.DefaultLimit), nil
			},
		},
		accountService: &mocks.MockAccountService{},
	}
}

func serve(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "203.0.113.9:40000"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouterHealth(t *testing.T) {
	rr := serve(t, testApplication().setupRouter(), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestRouterAuthentication(t *testing.T) {
	h := testApplication().setupRouter()

	assert.Equal(t, http.StatusUnauthorized,
		serve(t, h, http.MethodGet, "/api/users/me", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized,
		serve(t, h, http.MethodGet, "/api/users/me", "forged", "").Code)

	rr := serve(t, h, http.MethodGet, "/api/users/me", "customer01", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"userId":1,"loginId":"","name":"","phone":"","address":""}`, rr.Body.String())
}

func TestRouterRoleGuards(t *testing.T) {
	h := testApplication().setupRouter()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"customer lists own reservations", http.MethodGet, "/api/users/me/reservations/approved?page=1", "customer01", http.StatusOK},
		{"customer blocked from partner routes", http.MethodGet, "/api/partner/reservations", "customer01", http.StatusForbidden},
		{"partner lists hospital reservations", http.MethodGet, "/api/partner/reservations", "partner01", http.StatusOK},
		{"partner blocked from admin routes", http.MethodGet, "/api/admin/users", "partner01", http.StatusForbidden},
		{"admin lists users", http.MethodGet, "/api/admin/users", "admin01", http.StatusOK},
		{"admin deletes account", http.MethodDelete, "/api/admin/users/1", "admin01", http.StatusOK},
		{"customer cancels", http.MethodPut, "/api/reservations/5/cancel", "customer01", http.StatusOK},
		{"page zero", http.MethodGet, "/api/users/me/reservations/waiting?page=0", "customer01", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, h, tt.method, tt.path, tt.token, "")
			assert.Equal(t, tt.status, rr.Code, rr.Body.String())
		})
	}
}

func TestRouterLoginRateLimit(t *testing.T) {
	h := testApplication().setupRouter()
	body := `{"loginId":"customer01","password":"pw"}`

	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodPost, "/api/auth/login", "", body).Code)
	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodPost, "/api/auth/login", "", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(t, h, http.MethodPost, "/api/auth/login", "", body).Code)

	// Signup is not rate limited.
	assert.NotEqual(t, http.StatusTooManyRequests,
		serve(t, h, http.MethodPost, "/api/auth/signup", "", `{}`).Code)
}
