package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

func RenderLogs(task domain.Task, logs []domain.LogEntry) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Task History"),
		s.item.Render(fmt.Sprintf("%s (%s)", task.Title, task.ID)),
		s.header.Render(fmt.Sprintf("entries: %d", len(logs))),
	}

	if len(logs) == 0 {
		lines = append(lines, s.empty.Render("No log entries."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range logs {
		lines = append(lines, s.section.Render(renderLogEntry(entry, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLogEntry(entry domain.LogEntry, s styles) string {
	header := entry.Action
	if !entry.CreatedAt.IsZero() {
		header += "  " + entry.CreatedAt.Format("2006-01-02 15:04")
	}
	if entry.User != nil {
		header += "  by " + ownerLabel(*entry.User)
	}

	parts := []string{s.item.Render(header)}
	if entry.Description != "" {
		parts = append(parts, s.detail.Render(entry.Description))
	}
	if diff := renderSnapshotDiff(entry.OldValue, entry.NewValue); diff != "" {
		parts = append(parts, s.meta.Render(diff))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSnapshotDiff(oldValue, newValue map[string]any) string {
	if len(oldValue) == 0 && len(newValue) == 0 {
		return ""
	}

	keys := map[string]struct{}{}
	for key := range oldValue {
		keys[key] = struct{}{}
	}
	for key := range newValue {
		keys[key] = struct{}{}
	}

	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	changes := make([]string, 0, len(sorted))
	for _, key := range sorted {
		before, hadBefore := oldValue[key]
		after, hasAfter := newValue[key]
		switch {
		case hadBefore && hasAfter:
			changes = append(changes, fmt.Sprintf("%s: %v -> %v", key, before, after))
		case hasAfter:
			changes = append(changes, fmt.Sprintf("%s: %v", key, after))
		default:
			changes = append(changes, fmt.Sprintf("%s: %v (removed)", key, before))
		}
	}

	return strings.Join(changes, "\n")
}
