package auth

import "errors"

// Common authentication service errors
var (
	// ErrAuthFailure is returned for any failed login. It never says whether
	// the login ID or the password was wrong.
	ErrAuthFailure = errors.New("invalid login id or password")

	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWrongTokenType indicates a refresh token was presented where an
	// access token is required, or the reverse.
	ErrWrongTokenType = errors.New("wrong token type")
)
