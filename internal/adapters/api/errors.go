package api

import "errors"

type ErrorKind string

const (
	// KindNetwork: transport failure, no server response.
	KindNetwork ErrorKind = "network"
	// KindServer: server responded with a non-2xx status.
	KindServer ErrorKind = "server"
	// KindAuth: 401/403 subtype of server errors; clears the stored identity.
	KindAuth ErrorKind = "auth"
)

// Error carries the normalized message shown to the user plus the kind the
// view layer may branch on (redirect to login on auth failures).
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func IsAuthError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuth
}
