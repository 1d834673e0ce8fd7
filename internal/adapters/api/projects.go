package api

import (
	"context"
	"net/http"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
	"github.com/nurullahMencik/taskapp-cli/internal/ports"
)

type projectBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (c *Client) CreateProject(ctx context.Context, token string, req ports.CreateProjectRequest) (domain.Project, error) {
	body := projectBody{Title: req.Title, Description: req.Description}

	var payload projectWire
	if err := c.do(ctx, http.MethodPost, "/projects", token, body, &payload, requestOptions{}); err != nil {
		return domain.Project{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) GetProject(ctx context.Context, token, projectID string) (domain.Project, error) {
	var payload projectWire
	opts := requestOptions{clearIdentityOnNotFound: true}
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID, token, nil, &payload, opts); err != nil {
		return domain.Project{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) ListProjects(ctx context.Context, token string) ([]domain.Project, error) {
	var payload []projectWire
	if err := c.do(ctx, http.MethodGet, "/projects", token, nil, &payload, requestOptions{}); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(payload))
	for _, entry := range payload {
		projects = append(projects, entry.toDomain())
	}

	return projects, nil
}

func (c *Client) UpdateProject(ctx context.Context, token, projectID string, req ports.UpdateProjectRequest) (domain.Project, error) {
	body := projectBody{Title: req.Title, Description: req.Description}

	var payload projectWire
	if err := c.do(ctx, http.MethodPut, "/projects/"+projectID, token, body, &payload, requestOptions{}); err != nil {
		return domain.Project{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) DeleteProject(ctx context.Context, token, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+projectID, token, nil, nil, requestOptions{})
}
