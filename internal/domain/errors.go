package domain

import "errors"

var (
	ErrNoSession      = errors.New("no stored session")
	ErrSessionCorrupt = errors.New("stored session is corrupt")
)
