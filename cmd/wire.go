package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nurullahMencik/taskapp-cli/internal/adapters/api"
	credstore "github.com/nurullahMencik/taskapp-cli/internal/adapters/credentials/toml"
	"github.com/nurullahMencik/taskapp-cli/internal/application"
	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

const (
	apiBaseURLKey     = "api.base_url"
	defaultAPIBaseURL = "https://taskappbackend-4kdw.onrender.com"
)

type app struct {
	auth     *application.AuthStore
	projects *application.ProjectStore
	tasks    *application.TaskStore
	logs     *application.LogStore
}

func wireApp() (*app, error) {
	_ = godotenv.Load()

	cfg := viper.New()
	creds, err := credstore.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	cfg.SetDefault(apiBaseURLKey, defaultAPIBaseURL)
	baseURL := envOrDefault("TASKAPP_API_URL", cfg.GetString(apiBaseURLKey))

	client := api.NewClient(baseURL, creds)

	return &app{
		auth:     application.NewAuthStore(client, creds),
		projects: application.NewProjectStore(client, creds),
		tasks:    application.NewTaskStore(client, creds),
		logs:     application.NewLogStore(client, client, creds),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func friendlyAuthError(err error) error {
	if errors.Is(err, domain.ErrNoSession) {
		return errors.New("not logged in; run 'ta login' first")
	}
	return err
}
