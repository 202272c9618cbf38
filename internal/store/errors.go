package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCardIDExists is returned when registering a card fails because a
	// card with the same full identifier already exists in the registry.
	ErrCardIDExists = errors.New("card with this full id already exists")

	// ErrCardNotFound is returned when a query expected to match a card
	// record produces an empty result set.
	ErrCardNotFound = errors.New("card was not found")

	// ErrCardNotAvailable is returned by the claim-collection transaction
	// when the card backing the claim is no longer AVAILABLE - typically
	// because a concurrent collection already claimed it.
	ErrCardNotAvailable = errors.New("card is not available")

	// ErrClaimNotFound is returned when a query expected to match a claim
	// record produces an empty result set.
	ErrClaimNotFound = errors.New("claim was not found")

	// ErrClaimDecided is returned by the claim-collection transaction when
	// the locked claim row is already in a terminal state, so a decision
	// that raced in between cannot be overwritten.
	ErrClaimDecided = errors.New("claim has already been decided")

	// ErrLocationNotFound is returned when a referenced holding location
	// does not exist.
	ErrLocationNotFound = errors.New("holding location was not found")

	// ErrEmailAlreadyExists is returned when creating a staff account fails
	// because the email is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a staff
	// account produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty update would produce no SET clause).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
