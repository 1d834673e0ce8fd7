package api

import (
	"encoding/json"
	"time"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

// Wire shapes normalize what the server actually sends: ids arrive as either
// "_id" or "id", project titles as either "name" or "title", and user
// references as either a populated object or a bare id string.

type userWire struct {
	MongoID  string `json:"_id"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (w userWire) toDomain() domain.UserSummary {
	return domain.UserSummary{
		ID:       firstNonEmpty(w.MongoID, w.ID),
		Username: w.Username,
		Email:    w.Email,
		Role:     domain.Role(w.Role),
	}
}

// userRef accepts either a bare id string or a populated user object.
type userRef struct {
	user *domain.UserSummary
}

func (r *userRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		r.user = nil
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		if id == "" {
			r.user = nil
			return nil
		}
		r.user = &domain.UserSummary{ID: id}
		return nil
	}

	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	user := w.toDomain()
	r.user = &user
	return nil
}

type projectWire struct {
	MongoID     string    `json:"_id"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Owner       userRef   `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (w projectWire) toDomain() domain.Project {
	return domain.Project{
		ID:          firstNonEmpty(w.MongoID, w.ID),
		Title:       firstNonEmpty(w.Name, w.Title),
		Description: w.Description,
		Owner:       w.Owner.user,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

type projectRef struct {
	id string
}

func (r *projectRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		r.id = ""
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.id = id
		return nil
	}

	var w projectWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.id = firstNonEmpty(w.MongoID, w.ID)
	return nil
}

type taskWire struct {
	MongoID     string     `json:"_id"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssignedTo  userRef    `json:"assignedTo"`
	Project     projectRef `json:"project"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (w taskWire) toDomain() domain.Task {
	return domain.Task{
		ID:          firstNonEmpty(w.MongoID, w.ID),
		Title:       w.Title,
		Description: w.Description,
		Status:      domain.TaskStatus(w.Status),
		Priority:    domain.TaskPriority(w.Priority),
		AssignedTo:  w.AssignedTo.user,
		ProjectID:   w.Project.id,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

type logWire struct {
	MongoID     string         `json:"_id"`
	ID          string         `json:"id"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	OldValue    map[string]any `json:"oldValue"`
	NewValue    map[string]any `json:"newValue"`
	User        userRef        `json:"user"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (w logWire) toDomain() domain.LogEntry {
	return domain.LogEntry{
		ID:          firstNonEmpty(w.MongoID, w.ID),
		Action:      w.Action,
		Description: w.Description,
		OldValue:    w.OldValue,
		NewValue:    w.NewValue,
		User:        w.User.user,
		CreatedAt:   w.CreatedAt,
	}
}

type sessionWire struct {
	User  userWire `json:"user"`
	Token string   `json:"token"`
}

func (w sessionWire) toDomain() domain.Session {
	user := w.User.toDomain()
	return domain.Session{User: &user, Token: w.Token}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
