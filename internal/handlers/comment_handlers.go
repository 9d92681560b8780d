package handlers

import (
	"encoding/json"
	"net/http"

	"codeleap/internal/middleware"
	"codeleap/internal/models"

	"github.com/google/uuid"
)

// CreateCommentRequest represents a request to create a new comment
type CreateCommentRequest struct {
	PostID         string `json:"postId"`
	Content        string `json:"content"`
	AuthorUsername string `json:"authorUsername"`
	AuthorPhotoURL string `json:"authorPhotoURL,omitempty"`
}

// HandleComments handles comment-related operations
func (s *Server) HandleComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			defer s.track("comments.list")()

			postID, err := uuid.Parse(r.URL.Query().Get("postId"))
			if err != nil {
				http.Error(w, "Invalid post ID", http.StatusBadRequest)
				return
			}

			s.writeJSON(w, http.StatusOK, s.DB.GetComments(r.Context(), postID))

		case http.MethodPost:
			defer s.track("comments.create")()

			authorID, ok := middleware.GetUserIDFromContext(r.Context())
			if !ok {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			var req CreateCommentRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request format", http.StatusBadRequest)
				return
			}

			postID, err := uuid.Parse(req.PostID)
			if err != nil {
				http.Error(w, "Invalid post ID", http.StatusBadRequest)
				return
			}

			if req.Content == "" {
				http.Error(w, "Content is required", http.StatusBadRequest)
				return
			}

			comment := &models.Comment{
				Content:        req.Content,
				AuthorID:       authorID,
				AuthorUsername: req.AuthorUsername,
				AuthorPhotoURL: req.AuthorPhotoURL,
			}

			id, err := s.DB.CreateComment(r.Context(), postID, comment)
			if err != nil {
				s.writeError(w, err)
				return
			}

			s.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})

		case http.MethodDelete:
			defer s.track("comments.delete")()

			if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			postID, err := uuid.Parse(r.URL.Query().Get("postId"))
			if err != nil {
				http.Error(w, "Invalid post ID", http.StatusBadRequest)
				return
			}

			commentID, err := uuid.Parse(r.URL.Query().Get("commentId"))
			if err != nil {
				http.Error(w, "Invalid comment ID", http.StatusBadRequest)
				return
			}

			if err := s.DB.DeleteComment(r.Context(), postID, commentID); err != nil {
				s.writeError(w, err)
				return
			}

			w.WriteHeader(http.StatusNoContent)

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
