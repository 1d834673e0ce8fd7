package ports

import (
	"context"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

// CredentialStore is the single owner of the durably persisted Session. Every
// component that reads or clears the client identity goes through it, which
// keeps the auth-failure side effect auditable in one place.
type CredentialStore interface {
	Get(ctx context.Context) (domain.Session, error)
	Set(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
