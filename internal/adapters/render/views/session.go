package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nurullahMencik/taskapp-cli/internal/application"
	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

func RenderSession(session domain.Session) string {
	s := newStyles()

	if !session.Valid() {
		return s.empty.Render("Not logged in.")
	}

	lines := []string{
		s.item.Render(session.User.Username),
		s.detail.Render(session.User.Email),
		s.meta.Render("role: " + string(session.User.Role)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderOutcome turns a terminal store snapshot into a one-line notice.
// Pending and idle states render nothing.
func RenderOutcome(snapshot application.Snapshot) string {
	s := newStyles()

	switch {
	case snapshot.Failed():
		return s.failure.Render(fmt.Sprintf("error: %s", snapshot.Message))
	case snapshot.Succeeded() && snapshot.Message != "":
		return s.success.Render(snapshot.Message)
	default:
		return ""
	}
}
