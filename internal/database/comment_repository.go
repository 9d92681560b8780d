// internal/database/comment_repository.go
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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentDocument represents comment data in MongoDB
type CommentDocument struct {
	ID             string    `bson:"_id"`
	PostID         string    `bson:"postId"`
	Content        string    `bson:"content"`
	AuthorID       string    `bson:"authorId"`
	AuthorUsername string    `bson:"authorUsername"`
	AuthorPhotoURL string    `bson:"authorPhotoURL,omitempty"`
	CreatedAt      time.Time `bson:"createdAt"`
}

func documentToComment(doc *CommentDocument) (*models.Comment, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid comment ID: %v", err)
	}

	postID, err := uuid.Parse(doc.PostID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID: %v", err)
	}

	authorID, err := uuid.Parse(doc.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author ID: %v", err)
	}

	return &models.Comment{
		ID:             id,
		PostID:         postID,
		Content:        doc.Content,
		AuthorID:       authorID,
		AuthorUsername: doc.AuthorUsername,
		AuthorPhotoURL: doc.AuthorPhotoURL,
		CreatedAt:      doc.CreatedAt,
	}, nil
}

// CreateComment inserts a comment and bumps the parent post's comment count
// in one transaction. Either both writes commit or neither does; the driver
// retries the whole callback on a write conflict, so two concurrent comments
// on the same post both land in the count.
func (m *MongoDB) CreateComment(ctx context.Context, postID uuid.UUID, comment *models.Comment) (uuid.UUID, error) {
	id := uuid.New()

	session, err := m.Client.StartSession()
	if err != nil {
		return uuid.Nil, utils.NewWriteError("create", "comment", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var post PostDocument
		err := m.Posts.FindOne(sc, bson.M{"_id": postID.String()}).Decode(&post)
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewPostNotFoundError(postID.String())
		}
		if err != nil {
			return nil, err
		}

		filter := bson.M{"_id": id.String()}
		update := bson.M{
			"$set": bson.M{
				"postId":         postID.String(),
				"content":        comment.Content,
				"authorId":       comment.AuthorID.String(),
				"authorUsername": comment.AuthorUsername,
				"authorPhotoURL": comment.AuthorPhotoURL,
			},
			"$currentDate": bson.M{"createdAt": true},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := m.Comments.UpdateOne(sc, filter, update, opts); err != nil {
			return nil, err
		}

		countUpdate := bson.M{"$set": bson.M{"commentcount": post.CommentCount + 1}}
		if _, err := m.Posts.UpdateOne(sc, bson.M{"_id": postID.String()}, countUpdate); err != nil {
			return nil, err
		}
		return nil, nil
	})

	if err != nil {
		if appErr, ok := err.(*utils.AppError); ok {
			return uuid.Nil, appErr
		}
		log.Printf("Error creating comment on post %s: %v", postID, err)
		return uuid.Nil, utils.NewWriteError("create", "comment", err)
	}

	return id, nil
}

// GetComments retrieves all comments for a post, oldest first. Like the post
// listing, read failures degrade to an empty slice and are only logged.
func (m *MongoDB) GetComments(ctx context.Context, postID uuid.UUID) []*models.Comment {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := m.Comments.Find(ctx, bson.M{"postId": postID.String()}, opts)
	if err != nil {
		log.Printf("Error fetching comments for post %s: %v", postID, err)
		return []*models.Comment{}
	}
	defer cursor.Close(ctx)

	comments := []*models.Comment{}
	for cursor.Next(ctx) {
		var doc CommentDocument
		if err := cursor.Decode(&doc); err != nil {
			log.Printf("Error decoding comment: %v", err)
			continue
		}

		comment, err := documentToComment(&doc)
		if err != nil {
			log.Printf("Error converting comment document: %v", err)
			continue
		}
		comments = append(comments, comment)
	}

	if err := cursor.Err(); err != nil {
		log.Printf("Cursor iteration failed while fetching comments: %v", err)
		return []*models.Comment{}
	}

	return comments
}

// DeleteComment removes a comment and decrements the parent post's comment
// count in one transaction. The count is clamped at zero so a repeated
// delete of the same comment can never drive it negative.
func (m *MongoDB) DeleteComment(ctx context.Context, postID, commentID uuid.UUID) error {
	session, err := m.Client.StartSession()
	if err != nil {
		return utils.NewWriteError("delete", "comment", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var post PostDocument
		err := m.Posts.FindOne(sc, bson.M{"_id": postID.String()}).Decode(&post)
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewPostNotFoundError(postID.String())
		}
		if err != nil {
			return nil, err
		}

		if _, err := m.Comments.DeleteOne(sc, bson.M{
			"_id":    commentID.String(),
			"postId": postID.String(),
		}); err != nil {
			return nil, err
		}

		count := post.CommentCount - 1
		if count < 0 {
			count = 0
		}
		countUpdate := bson.M{"$set": bson.M{"commentcount": count}}
		if _, err := m.Posts.UpdateOne(sc, bson.M{"_id": postID.String()}, countUpdate); err != nil {
			return nil, err
		}
		return nil, nil
	})

	if err != nil {
		if appErr, ok := err.(*utils.AppError); ok {
			return appErr
		}
		log.Printf("Error deleting comment %s on post %s: %v", commentID, postID, err)
		return utils.NewWriteError("delete", "comment", err)
	}

	return nil
}
