package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto HTTP
// statuses; anything else is treated as a store failure.
var (
	// ErrNotFound means the referenced round, section, or item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoActiveRound means a write referenced a round id that does not
	// resolve to an existing round.
	ErrNoActiveRound = errors.New("no active round")

	// ErrDuplicateItem means a save or rename would produce two items with the
	// same normalized description inside one section.
	ErrDuplicateItem = errors.New("an item with this description already exists")
)
