package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	item       lipgloss.Style
	detail     lipgloss.Style
	meta       lipgloss.Style
	empty      lipgloss.Style
	section    lipgloss.Style
	success    lipgloss.Style
	failure    lipgloss.Style
	pending    lipgloss.Style
	inProgress lipgloss.Style
	completed  lipgloss.Style
	unknown    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		item:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:      lipgloss.NewStyle().Faint(true),
		section:    lipgloss.NewStyle().MarginTop(1),
		success:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("77")),
		failure:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		pending:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		inProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		completed:  lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
		unknown:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

func (s styles) statusStyle(status domain.TaskStatus) lipgloss.Style {
	switch status {
	case domain.StatusPending:
		return s.pending
	case domain.StatusInProgress:
		return s.inProgress
	case domain.StatusCompleted:
		return s.completed
	default:
		return s.unknown
	}
}
