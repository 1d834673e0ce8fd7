package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

func TestLogStoreFetchTaskAndLogs(t *testing.T) {
	t.Parallel()

	tasks := &fakeTaskGateway{
		getFn: func(_ context.Context, token, taskID string) (domain.Task, error) {
			assert.Equal(t, "t1", token)
			return domain.Task{ID: taskID, Title: "fix login"}, nil
		},
	}
	logs := &fakeLogGateway{
		listFn: func(context.Context, string, string) ([]domain.LogEntry, error) {
			return []domain.LogEntry{
				{ID: "l1", Action: "status_changed", CreatedAt: time.Now()},
			}, nil
		},
	}
	store := NewLogStore(tasks, logs, newMemCredentialStore(testSession()))

	require.NoError(t, store.FetchTaskAndLogs(context.Background(), "task-1"))

	state := store.State()
	assert.True(t, state.Succeeded())
	assert.Equal(t, OpFetchLogs, state.Op)
	require.NotNil(t, state.Task)
	assert.Equal(t, "fix login", state.Task.Title)
	require.Len(t, state.Logs, 1)
	assert.Equal(t, "status_changed", state.Logs[0].Action)
}

func TestLogStoreLogFailureDropsLoadedTask(t *testing.T) {
	t.Parallel()

	tasks := &fakeTaskGateway{
		getFn: func(_ context.Context, _, taskID string) (domain.Task, error) {
			return domain.Task{ID: taskID}, nil
		},
	}
	logs := &fakeLogGateway{
		listFn: func(context.Context, string, string) ([]domain.LogEntry, error) {
			return nil, errors.New("boom")
		},
	}
	store := NewLogStore(tasks, logs, newMemCredentialStore(testSession()))

	require.Error(t, store.FetchTaskAndLogs(context.Background(), "task-1"))

	state := store.State()
	assert.Equal(t, PhaseFailed, state.Phase)
	assert.Nil(t, state.Task)
	assert.Empty(t, state.Logs)
}

func TestLogStoreTaskFailureSkipsLogCall(t *testing.T) {
	t.Parallel()

	tasks := &fakeTaskGateway{
		getFn: func(context.Context, string, string) (domain.Task, error) {
			return domain.Task{}, errors.New("not found")
		},
	}
	logCalls := 0
	logs := &fakeLogGateway{
		listFn: func(context.Context, string, string) ([]domain.LogEntry, error) {
			logCalls++
			return nil, nil
		},
	}
	store := NewLogStore(tasks, logs, newMemCredentialStore(testSession()))

	require.Error(t, store.FetchTaskAndLogs(context.Background(), "task-1"))
	assert.Zero(t, logCalls)
}

func TestLogStoreClearsCachesWhilePending(t *testing.T) {
	t.Parallel()

	tasks := &fakeTaskGateway{
		getFn: func(_ context.Context, _, taskID string) (domain.Task, error) {
			return domain.Task{ID: taskID}, nil
		},
	}
	logs := &fakeLogGateway{
		listFn: func(context.Context, string, string) ([]domain.LogEntry, error) {
			return []domain.LogEntry{{ID: "l1"}}, nil
		},
	}
	store := NewLogStore(tasks, logs, newMemCredentialStore(testSession()))
	require.NoError(t, store.FetchTaskAndLogs(context.Background(), "task-1"))
	require.NotNil(t, store.State().Task)

	release := make(chan struct{})
	pending := make(chan struct{})
	tasks.getFn = func(_ context.Context, _, taskID string) (domain.Task, error) {
		close(pending)
		<-release
		return domain.Task{ID: taskID}, nil
	}

	done := make(chan error, 1)
	go func() {
		done <- store.FetchTaskAndLogs(context.Background(), "task-2")
	}()
	<-pending

	state := store.State()
	assert.True(t, state.Pending())
	assert.Nil(t, state.Task)
	assert.Empty(t, state.Logs)

	close(release)
	require.NoError(t, <-done)
	require.NotNil(t, store.State().Task)
}

func TestLogStoreRequiresSession(t *testing.T) {
	t.Parallel()

	store := NewLogStore(&fakeTaskGateway{}, &fakeLogGateway{}, newMemCredentialStore(domain.Session{}))

	err := store.FetchTaskAndLogs(context.Background(), "task-1")
	require.ErrorIs(t, err, domain.ErrNoSession)
	assert.Equal(t, PhaseIdle, store.State().Phase)
}

func TestLogStoreResetClearsEverything(t *testing.T) {
	t.Parallel()

	tasks := &fakeTaskGateway{
		getFn: func(_ context.Context, _, taskID string) (domain.Task, error) {
			return domain.Task{ID: taskID}, nil
		},
	}
	logs := &fakeLogGateway{
		listFn: func(context.Context, string, string) ([]domain.LogEntry, error) {
			return []domain.LogEntry{{ID: "l1"}}, nil
		},
	}
	store := NewLogStore(tasks, logs, newMemCredentialStore(testSession()))
	require.NoError(t, store.FetchTaskAndLogs(context.Background(), "task-1"))

	store.Reset()
	store.Reset()

	state := store.State()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Equal(t, OpNone, state.Op)
	assert.Nil(t, state.Task)
	assert.Empty(t, state.Logs)
}
