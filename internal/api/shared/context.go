package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
)

// ContextKey is the type of request-scoped values set by the API middleware.
type ContextKey string

// Context keys for values attached by middleware.
const (
	// UserIDContextKey holds the authenticated user's int64 ID.
	UserIDContextKey ContextKey = "userID"

	// RoleContextKey holds the authenticated user's domain.Role.
	RoleContextKey ContextKey = "role"

	// LoginIDContextKey holds the login ID carried by the access token.
	LoginIDContextKey ContextKey = "loginID"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID  int64
	LoginID string
	Role    domain.Role
}

// WithPrincipal stores the authenticated caller in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, UserIDContextKey, p.UserID)
	ctx = context.WithValue(ctx, LoginIDContextKey, p.LoginID)
	return context.WithValue(ctx, RoleContextKey, p.Role)
}

// GetUserID returns the authenticated user ID, or false when the request
// did not pass through the auth middleware.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDContextKey).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetRole returns the authenticated user's role.
func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(RoleContextKey).(domain.Role)
	return role, ok
}

// GetLoginID returns the login ID of the authenticated user.
func GetLoginID(ctx context.Context) (string, bool) {
	loginID, ok := ctx.Value(LoginIDContextKey).(string)
	return loginID, ok && loginID != ""
}

// SetTraceID adds a trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns 32 random hex characters. If crypto/rand fails it
// falls back to a time-derived ID, never a static value.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)
	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"bytes_read", n,
			"fallback", "time-based generation")
		return generateFallbackTraceID()
	}
	return hex.EncodeToString(b)
}

func generateFallbackTraceID() string {
	fallbackID := make([]byte, TraceIDLength)
	now := time.Now()
	binary.BigEndian.PutUint64(fallbackID[:8], uint64(now.UnixNano()))
	binary.BigEndian.PutUint32(fallbackID[8:12], uint32(now.Nanosecond()))
	binary.BigEndian.PutUint32(fallbackID[12:16], uint32(now.Unix()))
	return hex.EncodeToString(fallbackID)
}
