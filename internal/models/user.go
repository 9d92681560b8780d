package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	PhotoURL       string    `json:"photoURL,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
