// internal/database/snippet_repository.go
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"codeleap/internal/models"
	"codeleap/internal/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SnippetDocument represents a saved snippet in a user's remote collection
type SnippetDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	Name      string    `bson:"name"`
	Language  string    `bson:"language"`
	Code      string    `bson:"code"`
	CreatedAt time.Time `bson:"createdAt"`
}

func documentToSnippet(doc *SnippetDocument) *models.Snippet {
	return &models.Snippet{
		ID:        doc.ID,
		Name:      doc.Name,
		Language:  doc.Language,
		Code:      doc.Code,
		CreatedAt: doc.CreatedAt,
	}
}

// SaveSnippet inserts a snippet into the user's collection with a
// server-assigned creation time. The returned snippet carries the caller's
// clock instead; the authoritative timestamp shows up on the next read,
// which is good enough for immediate UI display.
func (m *MongoDB) SaveSnippet(ctx context.Context, userID uuid.UUID, snippet *models.Snippet) (*models.Snippet, error) {
	id := uuid.New().String()

	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"userId":   userID.String(),
			"name":     snippet.Name,
			"language": snippet.Language,
			"code":     snippet.Code,
		},
		"$currentDate": bson.M{"createdAt": true},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := m.Snippets.UpdateOne(ctx, filter, update, opts); err != nil {
		log.Printf("Error saving snippet for user %s: %v", userID, err)
		return nil, classifyMongoError(err, utils.NewWriteError("save", "snippet", err))
	}

	return &models.Snippet{
		ID:        id,
		Name:      snippet.Name,
		Language:  snippet.Language,
		Code:      snippet.Code,
		CreatedAt: time.Now(),
	}, nil
}

// GetSnippets retrieves all snippets for a user, newest first.
func (m *MongoDB) GetSnippets(ctx context.Context, userID uuid.UUID) ([]*models.Snippet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := m.Snippets.Find(ctx, bson.M{"userId": userID.String()}, opts)
	if err != nil {
		return nil, classifyMongoError(err, fmt.Errorf("failed to get snippets: %v", err))
	}
	defer cursor.Close(ctx)

	snippets := []*models.Snippet{}
	for cursor.Next(ctx) {
		var doc SnippetDocument
		if err := cursor.Decode(&doc); err != nil {
			log.Printf("Error decoding snippet: %v", err)
			continue
		}
		snippets = append(snippets, documentToSnippet(&doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, classifyMongoError(err, fmt.Errorf("failed to iterate snippets: %v", err))
	}

	return snippets, nil
}

// DeleteSnippet removes a snippet by ID. Deleting an absent snippet is a
// no-op, so a double-click on the delete button does no harm.
func (m *MongoDB) DeleteSnippet(ctx context.Context, userID uuid.UUID, id string) error {
	_, err := m.Snippets.DeleteOne(ctx, bson.M{
		"_id":    id,
		"userId": userID.String(),
	})
	if err != nil {
		log.Printf("Error deleting snippet %s for user %s: %v", id, userID, err)
		return classifyMongoError(err, utils.NewWriteError("delete", "snippet", err))
	}
	return nil
}
