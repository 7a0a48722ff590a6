package models

import "time"

// ProjectUser is a membership row: composite key (ProjectID, UserID).
type ProjectUser struct {
	ProjectID int64     `json:"projectId"`
	UserID    int64     `json:"userId"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
}
