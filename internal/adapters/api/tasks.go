package api

import (
	"context"
	"net/http"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
	"github.com/nurullahMencik/taskapp-cli/internal/ports"
)

type createTaskBody struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AssignedTo  *string `json:"assignedTo"`
}

type updateTaskBody struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
}

func (c *Client) CreateTask(ctx context.Context, token, projectID string, req ports.CreateTaskRequest) (domain.Task, error) {
	body := createTaskBody{Title: req.Title, Description: req.Description}
	if req.AssignedTo != "" {
		body.AssignedTo = &req.AssignedTo
	}

	var payload taskWire
	if err := c.do(ctx, http.MethodPost, "/projects/"+projectID+"/tasks", token, body, &payload, requestOptions{}); err != nil {
		return domain.Task{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) GetTask(ctx context.Context, token, taskID string) (domain.Task, error) {
	var payload taskWire
	opts := requestOptions{clearIdentityOnNotFound: true}
	if err := c.do(ctx, http.MethodGet, "/tasks/"+taskID, token, nil, &payload, opts); err != nil {
		return domain.Task{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) ListProjectTasks(ctx context.Context, token, projectID string) ([]domain.Task, error) {
	var payload []taskWire
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID+"/tasks", token, nil, &payload, requestOptions{}); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(payload))
	for _, entry := range payload {
		tasks = append(tasks, entry.toDomain())
	}

	return tasks, nil
}

func (c *Client) UpdateTask(ctx context.Context, token, taskID string, req ports.UpdateTaskRequest) (domain.Task, error) {
	body := updateTaskBody{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
	}
	if req.Status != nil {
		status := string(*req.Status)
		body.Status = &status
	}
	if req.Priority != nil {
		priority := string(*req.Priority)
		body.Priority = &priority
	}

	var payload taskWire
	if err := c.do(ctx, http.MethodPut, "/tasks/"+taskID, token, body, &payload, requestOptions{}); err != nil {
		return domain.Task{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) DeleteTask(ctx context.Context, token, taskID string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+taskID, token, nil, nil, requestOptions{})
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]domain.UserSummary, error) {
	var payload []userWire
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &payload, requestOptions{}); err != nil {
		return nil, err
	}

	users := make([]domain.UserSummary, 0, len(payload))
	for _, entry := range payload {
		users = append(users, entry.toDomain())
	}

	return users, nil
}
