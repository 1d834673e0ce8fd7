package application

import (
	"context"
	"sync"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
	"github.com/nurullahMencik/taskapp-cli/internal/ports"
)

// ProjectStore caches both the current project and the full project list,
// since the dashboard and the edit page need different shapes. List fetches
// replace-on-pending: the cached list is cleared while a reload is in flight
// so stale entries are never rendered. Mutation failures leave previously
// loaded caches untouched.
type ProjectStore struct {
	mu       sync.Mutex
	status   status
	project  *domain.Project
	projects []domain.Project

	gateway ports.ProjectGateway
	creds   ports.CredentialStore
}

func NewProjectStore(gateway ports.ProjectGateway, creds ports.CredentialStore) *ProjectStore {
	return &ProjectStore{gateway: gateway, creds: creds}
}

type ProjectState struct {
	Snapshot
	Project  *domain.Project
	Projects []domain.Project
}

func (s *ProjectStore) State() ProjectState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := ProjectState{Snapshot: s.status.snapshot()}
	if s.project != nil {
		project := *s.project
		state.Project = &project
	}
	state.Projects = append([]domain.Project(nil), s.projects...)
	return state
}

func (s *ProjectStore) Create(ctx context.Context, input CreateProjectInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	gen := s.status.begin(OpCreate)
	s.mu.Unlock()

	project, err := s.gateway.CreateProject(ctx, session.Token, ports.CreateProjectRequest{
		Title:       input.Title,
		Description: input.Description,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		s.project = nil
		return err
	}

	s.status.succeed("project created")
	s.project = &project
	s.projects = append(s.projects, project)
	return nil
}

func (s *ProjectStore) FetchByID(ctx context.Context, projectID string) error {
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	gen := s.status.begin(OpFetch)
	s.project = nil
	s.mu.Unlock()

	project, err := s.gateway.GetProject(ctx, session.Token, projectID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		s.project = nil
		return err
	}

	s.status.succeed("project loaded")
	s.project = &project
	return nil
}

func (s *ProjectStore) FetchAll(ctx context.Context) error {
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	gen := s.status.begin(OpFetchList)
	s.projects = nil
	s.mu.Unlock()

	projects, err := s.gateway.ListProjects(ctx, session.Token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		s.projects = nil
		return err
	}

	s.status.succeed("projects loaded")
	s.projects = projects
	return nil
}

func (s *ProjectStore) Update(ctx context.Context, projectID string, input UpdateProjectInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	gen := s.status.begin(OpUpdate)
	s.mu.Unlock()

	project, err := s.gateway.UpdateProject(ctx, session.Token, projectID, ports.UpdateProjectRequest{
		Title:       input.Title,
		Description: input.Description,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		return err
	}

	s.status.succeed("project updated")
	s.project = &project
	for i := range s.projects {
		if s.projects[i].ID == project.ID {
			s.projects[i] = project
			break
		}
	}
	return nil
}

func (s *ProjectStore) Delete(ctx context.Context, projectID string) error {
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	gen := s.status.begin(OpDelete)
	s.mu.Unlock()

	err = s.gateway.DeleteProject(ctx, session.Token, projectID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		return err
	}

	s.status.succeed("project deleted")
	kept := s.projects[:0]
	for _, project := range s.projects {
		if project.ID != projectID {
			kept = append(kept, project)
		}
	}
	s.projects = kept
	return nil
}

// Reset returns the store to Idle and drops the current project. The list
// cache survives on purpose: the dashboard keeps rendering it across child
// page resets.
func (s *ProjectStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.reset()
	s.project = nil
}
