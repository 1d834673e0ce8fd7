package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

func RenderProjects(projects []domain.Project) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Projects"),
		s.header.Render(fmt.Sprintf("projects: %d", len(projects))),
	}

	if len(projects) == 0 {
		lines = append(lines, s.empty.Render("No projects yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, project := range projects {
		lines = append(lines, s.section.Render(renderProjectSummary(project, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderProject(project domain.Project, tasks []domain.Task) string {
	s := newStyles()

	lines := []string{
		s.item.Render(fmt.Sprintf("%s (%s)", project.Title, project.ID)),
	}
	if project.Description != "" {
		lines = append(lines, s.detail.Render(project.Description))
	}
	if project.Owner != nil {
		lines = append(lines, s.meta.Render("owner: "+ownerLabel(*project.Owner)))
	}

	lines = append(lines, s.section.Render(RenderTasks(tasks)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProjectSummary(project domain.Project, s styles) string {
	parts := []string{
		s.item.Render(fmt.Sprintf("%s (%s)", project.Title, project.ID)),
	}
	if project.Description != "" {
		parts = append(parts, s.detail.Render(project.Description))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func ownerLabel(owner domain.UserSummary) string {
	if owner.Username != "" {
		return owner.Username
	}
	return owner.ID
}
