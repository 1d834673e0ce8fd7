package application

import (
	"context"
	"sync"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
	"github.com/nurullahMencik/taskapp-cli/internal/ports"
)

type memCredentialStore struct {
	mu         sync.Mutex
	session    domain.Session
	has        bool
	setErr     error
	setCalls   int
	clearCalls int
}

func newMemCredentialStore(session domain.Session) *memCredentialStore {
	store := &memCredentialStore{}
	if session.Valid() {
		store.session = session
		store.has = true
	}
	return store
}

func (m *memCredentialStore) Get(context.Context) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.has {
		return domain.Session{}, domain.ErrNoSession
	}
	return m.session, nil
}

func (m *memCredentialStore) Set(_ context.Context, session domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.session = session
	m.has = true
	return nil
}

func (m *memCredentialStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearCalls++
	m.session = domain.Session{}
	m.has = false
	return nil
}

type fakeAuthGateway struct {
	registerFn func(ctx context.Context, req ports.RegisterRequest) (domain.Session, error)
	loginFn    func(ctx context.Context, req ports.LoginRequest) (domain.Session, error)
}

func (f *fakeAuthGateway) Register(ctx context.Context, req ports.RegisterRequest) (domain.Session, error) {
	if f.registerFn == nil {
		return domain.Session{}, nil
	}
	return f.registerFn(ctx, req)
}

func (f *fakeAuthGateway) Login(ctx context.Context, req ports.LoginRequest) (domain.Session, error) {
	if f.loginFn == nil {
		return domain.Session{}, nil
	}
	return f.loginFn(ctx, req)
}

type fakeProjectGateway struct {
	createFn func(ctx context.Context, token string, req ports.CreateProjectRequest) (domain.Project, error)
	getFn    func(ctx context.Context, token, projectID string) (domain.Project, error)
	listFn   func(ctx context.Context, token string) ([]domain.Project, error)
	updateFn func(ctx context.Context, token, projectID string, req ports.UpdateProjectRequest) (domain.Project, error)
	deleteFn func(ctx context.Context, token, projectID string) error
}

func (f *fakeProjectGateway) CreateProject(ctx context.Context, token string, req ports.CreateProjectRequest) (domain.Project, error) {
	if f.createFn == nil {
		return domain.Project{}, nil
	}
	return f.createFn(ctx, token, req)
}

func (f *fakeProjectGateway) GetProject(ctx context.Context, token, projectID string) (domain.Project, error) {
	if f.getFn == nil {
		return domain.Project{}, nil
	}
	return f.getFn(ctx, token, projectID)
}

func (f *fakeProjectGateway) ListProjects(ctx context.Context, token string) ([]domain.Project, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, token)
}

func (f *fakeProjectGateway) UpdateProject(ctx context.Context, token, projectID string, req ports.UpdateProjectRequest) (domain.Project, error) {
	if f.updateFn == nil {
		return domain.Project{}, nil
	}
	return f.updateFn(ctx, token, projectID, req)
}

func (f *fakeProjectGateway) DeleteProject(ctx context.Context, token, projectID string) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, token, projectID)
}

type fakeTaskGateway struct {
	createFn    func(ctx context.Context, token, projectID string, req ports.CreateTaskRequest) (domain.Task, error)
	getFn       func(ctx context.Context, token, taskID string) (domain.Task, error)
	listFn      func(ctx context.Context, token, projectID string) ([]domain.Task, error)
	updateFn    func(ctx context.Context, token, taskID string, req ports.UpdateTaskRequest) (domain.Task, error)
	deleteFn    func(ctx context.Context, token, taskID string) error
	listUsersFn func(ctx context.Context, token string) ([]domain.UserSummary, error)
}

func (f *fakeTaskGateway) CreateTask(ctx context.Context, token, projectID string, req ports.CreateTaskRequest) (domain.Task, error) {
	if f.createFn == nil {
		return domain.Task{}, nil
	}
	return f.createFn(ctx, token, projectID, req)
}

func (f *fakeTaskGateway) GetTask(ctx context.Context, token, taskID string) (domain.Task, error) {
	if f.getFn == nil {
		return domain.Task{}, nil
	}
	return f.getFn(ctx, token, taskID)
}

func (f *fakeTaskGateway) ListProjectTasks(ctx context.Context, token, projectID string) ([]domain.Task, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, token, projectID)
}

func (f *fakeTaskGateway) UpdateTask(ctx context.Context, token, taskID string, req ports.UpdateTaskRequest) (domain.Task, error) {
	if f.updateFn == nil {
		return domain.Task{}, nil
	}
	return f.updateFn(ctx, token, taskID, req)
}

func (f *fakeTaskGateway) DeleteTask(ctx context.Context, token, taskID string) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, token, taskID)
}

func (f *fakeTaskGateway) ListUsers(ctx context.Context, token string) ([]domain.UserSummary, error) {
	if f.listUsersFn == nil {
		return nil, nil
	}
	return f.listUsersFn(ctx, token)
}

type fakeLogGateway struct {
	listFn func(ctx context.Context, token, taskID string) ([]domain.LogEntry, error)
}

func (f *fakeLogGateway) ListTaskLogs(ctx context.Context, token, taskID string) ([]domain.LogEntry, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, token, taskID)
}

func testSession() domain.Session {
	return domain.Session{
		User:  &domain.UserSummary{ID: "u1", Username: "alice", Email: "a@b.com", Role: domain.RoleDeveloper},
		Token: "t1",
	}
}
