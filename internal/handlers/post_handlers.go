package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"codeleap/internal/middleware"
	"codeleap/internal/models"

	"github.com/google/uuid"
)

// CreatePostRequest represents a request to create a new forum post
type CreatePostRequest struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Tags           []string `json:"tags"`
	AuthorUsername string   `json:"authorUsername"`
	AuthorPhotoURL string   `json:"authorPhotoURL,omitempty"`
}

// HandlePosts serves the post listing and post creation
func (s *Server) HandlePosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			defer s.track("posts.list")()
			s.writeJSON(w, http.StatusOK, s.DB.GetPosts(r.Context()))

		case http.MethodPost:
			defer s.track("posts.create")()

			authorID, ok := middleware.GetUserIDFromContext(r.Context())
			if !ok {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			var req CreatePostRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request format", http.StatusBadRequest)
				return
			}

			if req.Title == "" || req.Content == "" {
				http.Error(w, "Title and content are required", http.StatusBadRequest)
				return
			}

			post := &models.Post{
				Title:          req.Title,
				Content:        req.Content,
				Tags:           req.Tags,
				AuthorID:       authorID,
				AuthorUsername: req.AuthorUsername,
				AuthorPhotoURL: req.AuthorPhotoURL,
			}

			id, err := s.DB.CreatePost(r.Context(), post)
			if err != nil {
				s.writeError(w, err)
				return
			}

			s.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// HandlePost serves a single post by ?id= and its deletion
func (s *Server) HandlePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.URL.Query().Get("id"))
		if err != nil {
			http.Error(w, "Invalid post ID", http.StatusBadRequest)
			return
		}

		switch r.Method {
		case http.MethodGet:
			defer s.track("posts.get")()

			post, err := s.DB.GetPost(r.Context(), id)
			if err != nil {
				log.Printf("Error fetching post %s: %v", id, err)
				http.Error(w, "Post not found", http.StatusNotFound)
				return
			}
			if post == nil {
				http.Error(w, "Post not found", http.StatusNotFound)
				return
			}

			s.writeJSON(w, http.StatusOK, post)

		case http.MethodDelete:
			defer s.track("posts.delete")()

			if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			if err := s.DB.DeletePost(r.Context(), id); err != nil {
				s.writeError(w, err)
				return
			}

			w.WriteHeader(http.StatusNoContent)

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
