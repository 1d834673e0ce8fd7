package api

import (
	"context"
	"net/http"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
	"github.com/nurullahMencik/taskapp-cli/internal/ports"
)

type registerBody struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, req ports.RegisterRequest) (domain.Session, error) {
	body := registerBody{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     string(req.Role),
	}

	var payload sessionWire
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", body, &payload, requestOptions{}); err != nil {
		return domain.Session{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) Login(ctx context.Context, req ports.LoginRequest) (domain.Session, error) {
	body := loginBody{Email: req.Email, Password: req.Password}

	var payload sessionWire
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &payload, requestOptions{}); err != nil {
		return domain.Session{}, err
	}

	return payload.toDomain(), nil
}
