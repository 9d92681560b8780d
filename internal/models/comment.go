package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID             uuid.UUID `json:"id"`
	PostID         uuid.UUID `json:"postId"`
	Content        string    `json:"content"`
	AuthorID       uuid.UUID `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	AuthorPhotoURL string    `json:"authorPhotoURL,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
