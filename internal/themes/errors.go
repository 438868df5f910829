package themes

import "errors"

var (
	// ErrValidation indicates a create or edit was rejected before any round
	// trip: empty name, empty field name, or empty template.
	ErrValidation = errors.New("theme validation failed")

	// ErrStoreUnavailable indicates a failed round trip to the record store.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrNotFound indicates the store reported no record for the given id.
	ErrNotFound = errors.New("theme not found")

	// ErrPartialReset indicates the bulk usage reset failed partway. The
	// caller cannot assume which records were reset.
	ErrPartialReset = errors.New("usage reset partially failed")
)
