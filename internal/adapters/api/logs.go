package api

import (
	"context"
	"net/http"

	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

func (c *Client) ListTaskLogs(ctx context.Context, token, taskID string) ([]domain.LogEntry, error) {
	var payload []logWire
	opts := requestOptions{clearIdentityOnNotFound: true}
	if err := c.do(ctx, http.MethodGet, "/logs/task/"+taskID, token, nil, &payload, opts); err != nil {
		return nil, err
	}

	logs := make([]domain.LogEntry, 0, len(payload))
	for _, entry := range payload {
		logs = append(logs, entry.toDomain())
	}

	return logs, nil
}
