package handlers

import (
	"encoding/json"
	"net/http"

	"codeleap/internal/middleware"
	"codeleap/internal/models"
)

// SaveSnippetRequest represents a request to save an editor snippet
type SaveSnippetRequest struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

// HandleSnippets serves the snippet set for whichever identity the request
// carries: authenticated callers hit their remote collection, anonymous
// callers the shared local set. The store is picked once per request here
// and nowhere else.
func (s *Server) HandleSnippets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, authenticated := middleware.GetUserIDFromContext(r.Context())
		snippets := s.Stores.SnippetsFor(userID, authenticated)

		switch r.Method {
		case http.MethodGet:
			defer s.track("snippets.list")()

			all, err := snippets.GetAll(r.Context())
			if err != nil {
				s.writeError(w, err)
				return
			}
			s.writeJSON(w, http.StatusOK, all)

		case http.MethodPost:
			defer s.track("snippets.save")()

			var req SaveSnippetRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request format", http.StatusBadRequest)
				return
			}

			if req.Name == "" || req.Language == "" {
				http.Error(w, "Name and language are required", http.StatusBadRequest)
				return
			}

			saved, err := snippets.Save(r.Context(), &models.Snippet{
				Name:     req.Name,
				Language: req.Language,
				Code:     req.Code,
			})
			if err != nil {
				s.writeError(w, err)
				return
			}

			s.writeJSON(w, http.StatusCreated, saved)

		case http.MethodDelete:
			defer s.track("snippets.delete")()

			id := r.URL.Query().Get("id")
			if id == "" {
				http.Error(w, "Snippet ID is required", http.StatusBadRequest)
				return
			}

			if err := snippets.Delete(r.Context(), id); err != nil {
				s.writeError(w, err)
				return
			}

			w.WriteHeader(http.StatusNoContent)

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
