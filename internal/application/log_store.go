package application

import (
	"context"
	"sync"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
	"github.com/nurullahMencik/taskapp-cli/internal/ports"
)

// LogStore is read-only: one composite operation fetches a task and its
// append-only history together. Logs are never shown without their parent
// task, so a failure of either call fails the whole operation and clears
// both caches; there is no partial success.
type LogStore struct {
	mu     sync.Mutex
	status status
	task   *domain.Task
	logs   []domain.LogEntry

	tasks ports.TaskGateway
	logGw ports.LogGateway
	creds ports.CredentialStore
}

func NewLogStore(tasks ports.TaskGateway, logGw ports.LogGateway, creds ports.CredentialStore) *LogStore {
	return &LogStore{tasks: tasks, logGw: logGw, creds: creds}
}

type LogState struct {
	Snapshot
	Task *domain.Task
	Logs []domain.LogEntry
}

func (s *LogStore) State() LogState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := LogState{Snapshot: s.status.snapshot()}
	if s.task != nil {
		task := *s.task
		state.Task = &task
	}
	state.Logs = append([]domain.LogEntry(nil), s.logs...)
	return state
}

func (s *LogStore) FetchTaskAndLogs(ctx context.Context, taskID string) error {
	session, err := s.creds.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	gen := s.status.begin(OpFetchLogs)
	s.task = nil
	s.logs = nil
	s.mu.Unlock()

	task, err := s.tasks.GetTask(ctx, session.Token, taskID)
	var logs []domain.LogEntry
	if err == nil {
		logs, err = s.logGw.ListTaskLogs(ctx, session.Token, taskID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.current(gen) {
		return err
	}

	if err != nil {
		s.status.fail(err)
		s.task = nil
		s.logs = nil
		return err
	}

	s.status.succeed("task logs loaded")
	s.task = &task
	s.logs = logs
	return nil
}

func (s *LogStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.reset()
	s.task = nil
	s.logs = nil
}
