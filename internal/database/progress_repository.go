// internal/database/progress_repository.go
package database

import (
	"context"
	"fmt"

	"codeleap/internal/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressDocument holds one user's set of completed challenge IDs
type ProgressDocument struct {
	ID        string   `bson:"_id"` // user ID
	Completed []string `bson:"completed"`
}

// GetCompletedChallenges returns the set of challenge IDs the user has
// completed. A user with no record simply hasn't completed anything yet.
func (m *MongoDB) GetCompletedChallenges(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var doc ProgressDocument

	err := m.Progress.FindOne(ctx, bson.M{"_id": userID.String()}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []string{}, nil
	}
	if err != nil {
		return nil, classifyMongoError(err, fmt.Errorf("failed to get challenge progress: %v", err))
	}

	if doc.Completed == nil {
		return []string{}, nil
	}
	return doc.Completed, nil
}

// MarkChallengeCompleted appends a challenge ID to the user's completed set.
// $addToSet with upsert is a single atomic set-union: it creates the record
// when missing and adding an already-present ID is a no-op.
func (m *MongoDB) MarkChallengeCompleted(ctx context.Context, userID uuid.UUID, challengeID string) error {
	filter := bson.M{"_id": userID.String()}
	update := bson.M{"$addToSet": bson.M{"completed": challengeID}}
	opts := options.Update().SetUpsert(true)

	if _, err := m.Progress.UpdateOne(ctx, filter, update, opts); err != nil {
		return classifyMongoError(err, utils.NewWriteError("update", "challenge progress", err))
	}
	return nil
}
