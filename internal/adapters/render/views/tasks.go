package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

func RenderTasks(tasks []domain.Task) string {
	s := newStyles()

	lines := []string{
		s.header.Render(fmt.Sprintf("tasks: %d", len(tasks))),
	}

	if len(tasks) == 0 {
		lines = append(lines, s.empty.Render("No tasks."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, task := range tasks {
		lines = append(lines, renderTaskLine(task, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderTask(task domain.Task) string {
	s := newStyles()

	lines := []string{
		s.item.Render(fmt.Sprintf("%s (%s)", task.Title, task.ID)),
		s.statusStyle(task.Status).Render(task.Status.Label()),
	}
	if task.Description != "" {
		lines = append(lines, s.detail.Render(task.Description))
	}
	if task.Priority != "" {
		lines = append(lines, s.meta.Render("priority: "+string(task.Priority)))
	}
	if task.AssignedTo != nil {
		lines = append(lines, s.meta.Render("assigned to: "+ownerLabel(*task.AssignedTo)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderUsers(users []domain.UserSummary) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Users"),
		s.header.Render(fmt.Sprintf("users: %d", len(users))),
	}

	if len(users) == 0 {
		lines = append(lines, s.empty.Render("No users available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, user := range users {
		lines = append(lines, s.detail.Render(fmt.Sprintf("%s <%s> %s", user.Username, user.Email, user.Role)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTaskLine(task domain.Task, s styles) string {
	status := s.statusStyle(task.Status).Render(task.Status.Label())
	line := fmt.Sprintf("%s  %s (%s)", status, task.Title, task.ID)
	if task.AssignedTo != nil {
		line += s.meta.Render("  @" + ownerLabel(*task.AssignedTo))
	}
	return line
}
