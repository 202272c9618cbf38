package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// Malformed non-empty headers are rejected by [utils.ParseBearerToken]
// instead.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
