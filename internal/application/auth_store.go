package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
	"github.com/nurullahMencik/taskapp-cli/internal/ports"
)

// AuthStore owns the Session and the auth request lifecycle. Register and
// login persist the identity through the credential store as part of the
// success transition, so state and storage never disagree. Logout only clears
// local state and the stored identity; no network call is involved.
type AuthStore struct {
	mu      sync.Mutex
	status  status
	session domain.Session

	gateway ports.AuthGateway
	creds   ports.CredentialStore
}

func NewAuthStore(gateway ports.AuthGateway, creds ports.CredentialStore) *AuthStore {
	return &AuthStore{gateway: gateway, creds: creds}
}

type AuthState struct {
	Snapshot
	Session domain.Session
}

func (s *AuthStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return AuthState{Snapshot: s.status.snapshot(), Session: s.session}
}

func (s *AuthStore) Register(ctx context.Context, input RegisterInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if input.Role == "" {
		input.Role = domain.RoleDeveloper
	}

	s.mu.Lock()
	gen := s.status.begin(OpRegister)
	s.mu.Unlock()

	session, err := s.gateway.Register(ctx, ports.RegisterRequest{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})

	return s.completeSignIn(ctx, gen, session, err, "registered")
}

func (s *AuthStore) Login(ctx context.Context, input LoginInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	gen := s.status.begin(OpLogin)
	s.mu.Unlock()

	session, err := s.gateway.Login(ctx, ports.LoginRequest{
		Email:    input.Email,
		Password: input.Password,
	})

	return s.completeSignIn(ctx, gen, session, err, "logged in")
}

func (s *AuthStore) completeSignIn(ctx context.Context, gen uint64, session domain.Session, err error, message string) error {
	if err == nil && !session.Valid() {
		err = errors.New("server response is missing user or token")
	}
	if err == nil {
		// Persist before committing state, so a successful store never
		// points at an unpersisted identity.
		if persistErr := s.creds.Set(ctx, session); persistErr != nil {
			err = fmt.Errorf("persist session: %w", persistErr)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		s.session = domain.Session{}
		return err
	}

	s.status.succeed(message)
	s.session = session
	return nil
}

func (s *AuthStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.status.reset()
	s.session = domain.Session{}
	s.mu.Unlock()

	return s.creds.Clear(ctx)
}

// LoadPersisted restores the Session from durable storage at startup. An
// absent or unreadable identity leaves the session empty without failing the
// store.
func (s *AuthStore) LoadPersisted(ctx context.Context) error {
	session, err := s.creds.Get(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.session = domain.Session{}
		if errors.Is(err, domain.ErrNoSession) {
			return nil
		}
		return err
	}

	s.session = session
	return nil
}

func (s *AuthStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.reset()
}
