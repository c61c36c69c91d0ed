package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrInvalidLetter = errors.New("not a letter-bar letter")
	ErrStale         = errors.New("superseded by a newer query")
	ErrBadStatus     = errors.New("unexpected response status")
	ErrDecode        = errors.New("response body is not valid JSON")
)
