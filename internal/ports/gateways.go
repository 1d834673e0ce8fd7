package ports

import (
	"context"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

type RegisterRequest struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

type LoginRequest struct {
	Email    string
	Password string
}

type CreateProjectRequest struct {
	Title       string
	Description string
}

type UpdateProjectRequest struct {
	Title       string
	Description string
}

type CreateTaskRequest struct {
	Title       string
	Description string
	AssignedTo  string
}

// UpdateTaskRequest is a full field replace; nil pointer fields are omitted
// from the outbound payload so a status-only update sends only the status.
type UpdateTaskRequest struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	AssignedTo  *string
}

type AuthGateway interface {
	Register(ctx context.Context, req RegisterRequest) (domain.Session, error)
	Login(ctx context.Context, req LoginRequest) (domain.Session, error)
}

type ProjectGateway interface {
	CreateProject(ctx context.Context, token string, req CreateProjectRequest) (domain.Project, error)
	GetProject(ctx context.Context, token, projectID string) (domain.Project, error)
	ListProjects(ctx context.Context, token string) ([]domain.Project, error)
	UpdateProject(ctx context.Context, token, projectID string, req UpdateProjectRequest) (domain.Project, error)
	DeleteProject(ctx context.Context, token, projectID string) error
}

type TaskGateway interface {
	CreateTask(ctx context.Context, token, projectID string, req CreateTaskRequest) (domain.Task, error)
	GetTask(ctx context.Context, token, taskID string) (domain.Task, error)
	ListProjectTasks(ctx context.Context, token, projectID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, token, taskID string, req UpdateTaskRequest) (domain.Task, error)
	DeleteTask(ctx context.Context, token, taskID string) error
	ListUsers(ctx context.Context, token string) ([]domain.UserSummary, error)
}

type LogGateway interface {
	ListTaskLogs(ctx context.Context, token, taskID string) ([]domain.LogEntry, error)
}
