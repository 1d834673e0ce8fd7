package application

import (
	"errors"
	"fmt"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

// Validation failures block dispatch: no network call happens and the store
// state is left untouched.
var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidField = errors.New("invalid field value")
)

func missingField(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

func invalidField(field, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidField, field, value)
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

func (i RegisterInput) Validate() error {
	if i.Username == "" {
		return missingField("username")
	}
	if i.Email == "" {
		return missingField("email")
	}
	if i.Password == "" {
		return missingField("password")
	}
	if i.Role != "" && !i.Role.Valid() {
		return invalidField("role", string(i.Role))
	}
	return nil
}

type LoginInput struct {
	Email    string
	Password string
}

func (i LoginInput) Validate() error {
	if i.Email == "" {
		return missingField("email")
	}
	if i.Password == "" {
		return missingField("password")
	}
	return nil
}

type CreateProjectInput struct {
	Title       string
	Description string
}

func (i CreateProjectInput) Validate() error {
	if i.Title == "" {
		return missingField("title")
	}
	return nil
}

type UpdateProjectInput struct {
	Title       string
	Description string
}

func (i UpdateProjectInput) Validate() error {
	if i.Title == "" {
		return missingField("title")
	}
	return nil
}

type CreateTaskInput struct {
	ProjectID   string
	Title       string
	Description string
	AssignedTo  string
}

func (i CreateTaskInput) Validate() error {
	if i.ProjectID == "" {
		return missingField("project")
	}
	if i.Title == "" {
		return missingField("title")
	}
	return nil
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	AssignedTo  *string
}

func (i UpdateTaskInput) Validate() error {
	if i.Title != nil && *i.Title == "" {
		return missingField("title")
	}
	if i.Status != nil && !i.Status.Valid() {
		return invalidField("status", string(*i.Status))
	}
	if i.Priority != nil && !i.Priority.Valid() {
		return invalidField("priority", string(*i.Priority))
	}
	return nil
}
