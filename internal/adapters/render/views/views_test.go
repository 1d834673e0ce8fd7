package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nurullahMencik/taskapp-cli/internal/application"
	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

func TestRenderProjects(t *testing.T) {
	t.Parallel()

	out := RenderProjects([]domain.Project{
		{ID: "p1", Title: "Demo", Description: "first project"},
		{ID: "p2", Title: "Other"},
	})

	assert.Contains(t, out, "Projects")
	assert.Contains(t, out, "projects: 2")
	assert.Contains(t, out, "Demo (p1)")
	assert.Contains(t, out, "first project")
	assert.Contains(t, out, "Other (p2)")
}

func TestRenderProjectsEmpty(t *testing.T) {
	t.Parallel()

	out := RenderProjects(nil)
	assert.Contains(t, out, "No projects yet.")
}

func TestRenderProjectWithTasks(t *testing.T) {
	t.Parallel()

	project := domain.Project{
		ID:    "p1",
		Title: "Demo",
		Owner: &domain.UserSummary{ID: "u1", Username: "alice"},
	}
	tasks := []domain.Task{
		{ID: "t1", Title: "fix login", Status: domain.StatusInProgress},
	}

	out := RenderProject(project, tasks)
	assert.Contains(t, out, "Demo (p1)")
	assert.Contains(t, out, "owner: alice")
	assert.Contains(t, out, "tasks: 1")
	assert.Contains(t, out, "In Progress")
	assert.Contains(t, out, "fix login (t1)")
}

func TestRenderTaskDetails(t *testing.T) {
	t.Parallel()

	task := domain.Task{
		ID:          "t1",
		Title:       "fix login",
		Description: "session expires too early",
		Status:      domain.StatusCompleted,
		Priority:    domain.PriorityHigh,
		AssignedTo:  &domain.UserSummary{ID: "u2"},
	}

	out := RenderTask(task)
	assert.Contains(t, out, "fix login (t1)")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "session expires too early")
	assert.Contains(t, out, "priority: high")
	assert.Contains(t, out, "assigned to: u2")
}

func TestRenderUsers(t *testing.T) {
	t.Parallel()

	out := RenderUsers([]domain.UserSummary{
		{ID: "u1", Username: "alice", Email: "a@b.com", Role: domain.RoleDeveloper},
	})
	assert.Contains(t, out, "users: 1")
	assert.Contains(t, out, "alice <a@b.com> developer")

	assert.Contains(t, RenderUsers(nil), "No users available.")
}

func TestRenderLogsWithSnapshotDiff(t *testing.T) {
	t.Parallel()

	task := domain.Task{ID: "t1", Title: "fix login"}
	logs := []domain.LogEntry{
		{
			ID:        "l1",
			Action:    "status_changed",
			OldValue:  map[string]any{"status": "pending"},
			NewValue:  map[string]any{"status": "in-progress"},
			User:      &domain.UserSummary{Username: "alice"},
			CreatedAt: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		},
	}

	out := RenderLogs(task, logs)
	assert.Contains(t, out, "Task History")
	assert.Contains(t, out, "entries: 1")
	assert.Contains(t, out, "status_changed")
	assert.Contains(t, out, "2025-03-01 10:30")
	assert.Contains(t, out, "by alice")
	assert.Contains(t, out, "status: pending -> in-progress")
}

func TestRenderLogsEmpty(t *testing.T) {
	t.Parallel()

	out := RenderLogs(domain.Task{ID: "t1", Title: "fix login"}, nil)
	assert.Contains(t, out, "No log entries.")
}

func TestRenderSession(t *testing.T) {
	t.Parallel()

	session := domain.Session{
		User:  &domain.UserSummary{ID: "u1", Username: "alice", Email: "a@b.com", Role: domain.RoleManager},
		Token: "t1",
	}

	out := RenderSession(session)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "a@b.com")
	assert.Contains(t, out, "role: manager")

	assert.Contains(t, RenderSession(domain.Session{}), "Not logged in.")
}

func TestRenderOutcome(t *testing.T) {
	t.Parallel()

	failed := application.Snapshot{Phase: application.PhaseFailed, Message: "boom"}
	assert.Contains(t, RenderOutcome(failed), "error: boom")

	succeeded := application.Snapshot{Phase: application.PhaseSucceeded, Message: "task created"}
	assert.Contains(t, RenderOutcome(succeeded), "task created")

	assert.Empty(t, RenderOutcome(application.Snapshot{Phase: application.PhasePending}))
	assert.Empty(t, RenderOutcome(application.Snapshot{}))
}
