package journal

import "errors"

var (
	ErrInvalidPosition  = errors.New("invalid task position")
	ErrMalformedJournal = errors.New("malformed journal")
	ErrUnknownFormat    = errors.New("unknown list format")
)
