package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Tags           []string  `json:"tags"`
	AuthorID       uuid.UUID `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	AuthorPhotoURL string    `json:"authorPhotoURL,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	CommentCount   int       `json:"commentCount"` // Denormalized count of live comments, maintained transactionally
}
