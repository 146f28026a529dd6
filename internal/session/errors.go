package session

import "github.com/go-faster/errors"

// Input validation failures. They never leave the session: each one is
// reported on the terminal and the user is prompted again.
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrInvalidPrice   = errors.New("invalid price")
	ErrInvalidCommand = errors.New("invalid command")
	// ErrNoResults is a notice rather than a failure, shown through the same
	// channel as the errors above.
	ErrNoResults = errors.New("no results")
)
