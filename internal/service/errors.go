package service

import "errors"

var (
	// ErrInvalidCredentials is returned for every login failure, whether the
	// account is unknown or the password is wrong. The caller must not be
	// able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrCardUnavailable is returned when a claim is opened against a card
	// that exists but is no longer AVAILABLE. Mapped to NotFound at the HTTP
	// boundary so the public API does not reveal claim history.
	ErrCardUnavailable = errors.New("card is not available for claiming")

	// ErrClaimAlreadyDecided is returned when staff try to re-decide a claim
	// that already reached COLLECTED or REJECTED.
	ErrClaimAlreadyDecided = errors.New("claim has already been decided")
)
