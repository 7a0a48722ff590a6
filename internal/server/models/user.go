// Package models contains the persistent record types shared by
// repositories, services and the HTTP layer.
package models

import "time"

// User is a credential record. PasswordHash never leaves the server:
// it is excluded from JSON serialization.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
