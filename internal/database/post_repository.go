// internal/database/post_repository.go
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

// PostDocument represents the MongoDB schema for a post.
type PostDocument struct {
	ID             string    `bson:"_id"`
	Title          string    `bson:"title"`
	Content        string    `bson:"content"`
	Tags           []string  `bson:"tags"`
	AuthorID       string    `bson:"authorid"`
	AuthorUsername string    `bson:"authorusername"`
	AuthorPhotoURL string    `bson:"authorphotourl,omitempty"`
	CreatedAt      time.Time `bson:"createdat"`
	CommentCount   int       `bson:"commentcount"` // Number of live comments on the post
}

// DocumentToPost converts a MongoDB document to a Post model.
func DocumentToPost(doc *PostDocument) (*models.Post, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID: %v", err)
	}

	authorID, err := uuid.Parse(doc.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author ID: %v", err)
	}

	return &models.Post{
		ID:             id,
		Title:          doc.Title,
		Content:        doc.Content,
		Tags:           doc.Tags,
		AuthorID:       authorID,
		AuthorUsername: doc.AuthorUsername,
		AuthorPhotoURL: doc.AuthorPhotoURL,
		CreatedAt:      doc.CreatedAt,
		CommentCount:   doc.CommentCount,
	}, nil
}

// CreatePost inserts a new post with a zero comment count and a
// server-assigned creation time, and returns the new post ID.
func (m *MongoDB) CreatePost(ctx context.Context, post *models.Post) (uuid.UUID, error) {
	id := uuid.New()
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	// Upsert on a fresh ID is always an insert; $currentDate makes the
	// creation time server-assigned rather than taken from our clock.
	filter := bson.M{"_id": id.String()}
	update := bson.M{
		"$set": bson.M{
			"title":          post.Title,
			"content":        post.Content,
			"tags":           tags,
			"authorid":       post.AuthorID.String(),
			"authorusername": post.AuthorUsername,
			"authorphotourl": post.AuthorPhotoURL,
			"commentcount":   0,
		},
		"$currentDate": bson.M{"createdat": true},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := m.Posts.UpdateOne(ctx, filter, update, opts); err != nil {
		log.Printf("Error creating post: %v", err)
		return uuid.Nil, utils.NewWriteError("create", "post", err)
	}

	return id, nil
}

// GetPosts retrieves all posts, newest first. Read failures are logged and
// swallowed so a listing view degrades to empty instead of erroring.
func (m *MongoDB) GetPosts(ctx context.Context) []*models.Post {
	opts := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})

	cursor, err := m.Posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		return []*models.Post{}
	}
	defer cursor.Close(ctx)

	posts := []*models.Post{}
	for cursor.Next(ctx) {
		var doc PostDocument
		if err := cursor.Decode(&doc); err != nil {
			log.Printf("Error decoding post document: %v", err)
			continue
		}

		post, err := DocumentToPost(&doc)
		if err != nil {
			log.Printf("Error converting document to model: %v", err)
			continue
		}
		posts = append(posts, post)
	}

	if err := cursor.Err(); err != nil {
		log.Printf("Cursor iteration failed while fetching posts: %v", err)
		return []*models.Post{}
	}

	return posts
}

// GetPost retrieves a post by its ID. A missing post is (nil, nil); an error
// means the read itself failed.
func (m *MongoDB) GetPost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var doc PostDocument

	err := m.Posts.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %v", err)
	}

	return DocumentToPost(&doc)
}

// DeletePost removes a post and all of its comments in one transaction, so a
// concurrent comment insert can never leave an orphan behind.
func (m *MongoDB) DeletePost(ctx context.Context, id uuid.UUID) error {
	session, err := m.Client.StartSession()
	if err != nil {
		return utils.NewWriteError("delete", "post", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		result, err := m.Posts.DeleteOne(sc, bson.M{"_id": id.String()})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, utils.NewPostNotFoundError(id.String())
		}

		if _, err := m.Comments.DeleteMany(sc, bson.M{"postId": id.String()}); err != nil {
			return nil, err
		}
		return nil, nil
	})

	if err != nil {
		if appErr, ok := err.(*utils.AppError); ok {
			return appErr
		}
		log.Printf("Error deleting post %s: %v", id, err)
		return utils.NewWriteError("delete", "post", err)
	}

	return nil
}
