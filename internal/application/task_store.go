package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
	"github.com/nurullahMencik/taskapp-cli/internal/ports"
)

// TaskStore is the single owner of every task cache: the current task, the
// task list scoped to one project, and the user list for assignment pickers.
// "Tasks of project X" lives here and nowhere else; loading a different
// project's tasks replaces the scoped list wholesale.
type TaskStore struct {
	mu             sync.Mutex
	status         status
	task           *domain.Task
	tasks          []domain.Task
	tasksProjectID string
	users          []domain.UserSummary

	gateway ports.TaskGateway
	creds   ports.CredentialStore
}

func NewTaskStore(gateway ports.TaskGateway, creds ports.CredentialStore) *TaskStore {
	return &TaskStore{gateway: gateway, creds: creds}
}

type TaskState struct {
	Snapshot
	Task           *domain.Task
	Tasks          []domain.Task
	TasksProjectID string
	Users          []domain.UserSummary
}

func (s *TaskStore) State() TaskState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := TaskState{Snapshot: s.status.snapshot(), TasksProjectID: s.tasksProjectID}
	if s.task != nil {
		task := *s.task
		state.Task = &task
	}
	state.Tasks = append([]domain.Task(nil), s.tasks...)
	state.Users = append([]domain.UserSummary(nil), s.users...)
	return state
}

func (s *TaskStore) Create(ctx context.Context, input CreateTaskInput) error {
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

	task, err := s.gateway.CreateTask(ctx, session.Token, input.ProjectID, ports.CreateTaskRequest{
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		s.task = nil
		return err
	}

	s.status.succeed("task created")
	s.task = &task
	if s.tasksProjectID == input.ProjectID {
		s.tasks = append(s.tasks, task)
	}
	return nil
}

func (s *TaskStore) FetchByID(ctx context.Context, taskID string) error {
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	gen := s.status.begin(OpFetch)
	s.task = nil
	s.mu.Unlock()

	task, err := s.gateway.GetTask(ctx, session.Token, taskID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		s.task = nil
		return err
	}

	s.status.succeed("task loaded")
	s.task = &task
	return nil
}

func (s *TaskStore) FetchProjectTasks(ctx context.Context, projectID string) error {
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	gen := s.status.begin(OpFetchList)
	s.tasks = nil
	s.tasksProjectID = projectID
	s.mu.Unlock()

	tasks, err := s.gateway.ListProjectTasks(ctx, session.Token, projectID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		s.tasks = nil
		return err
	}

	s.status.succeed("tasks loaded")
	s.tasks = tasks
	return nil
}

func (s *TaskStore) Update(ctx context.Context, taskID string, input UpdateTaskInput) error {
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

	task, err := s.gateway.UpdateTask(ctx, session.Token, taskID, ports.UpdateTaskRequest{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		AssignedTo:  input.AssignedTo,
	})

	return s.completeTaskMutation(gen, task, err, "task updated")
}

// CycleStatus advances only the status field:
// pending -> in-progress -> completed -> pending.
func (s *TaskStore) CycleStatus(ctx context.Context, taskID string, current domain.TaskStatus) error {
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	next := current.Next()

	s.mu.Lock()
	gen := s.status.begin(OpCycleStatus)
	s.mu.Unlock()

	task, err := s.gateway.UpdateTask(ctx, session.Token, taskID, ports.UpdateTaskRequest{
		Status: &next,
	})

	return s.completeTaskMutation(gen, task, err, fmt.Sprintf("task marked %q", next.Label()))
}

func (s *TaskStore) completeTaskMutation(gen uint64, task domain.Task, err error, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		return err
	}

	s.status.succeed(message)
	s.task = &task
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			break
		}
	}
	return nil
}

func (s *TaskStore) Delete(ctx context.Context, taskID string) error {
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	gen := s.status.begin(OpDelete)
	s.mu.Unlock()

	err = s.gateway.DeleteTask(ctx, session.Token, taskID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		return err
	}

	s.status.succeed("task deleted")
	if s.task != nil && s.task.ID == taskID {
		s.task = nil
	}
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if task.ID != taskID {
			kept = append(kept, task)
		}
	}
	s.tasks = kept
	return nil
}

// FetchUsers fills the assignment picker cache without driving the main
// request lifecycle, so a picker refresh never blanks a page that is
// rendering task state.
func (s *TaskStore) FetchUsers(ctx context.Context) error {
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	users, err := s.gateway.ListUsers(ctx, session.Token)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.status.fail(err)
		s.status.op = OpFetchUsers
		s.users = nil
		return err
	}

	s.users = users
	return nil
}

// Reset clears the current task and the lifecycle. The user cache survives
// because pickers reuse it, and the project-scoped list survives until a
// different project is loaded.
func (s *TaskStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.reset()
	s.task = nil
}
