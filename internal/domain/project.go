package domain

import "time"

type Project struct {
	ID          string
	Title       string
	Description string
	Owner       *UserSummary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
