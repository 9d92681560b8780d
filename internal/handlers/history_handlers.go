package handlers

import (
	"encoding/json"
	"net/http"

	"codeleap/internal/models"
)

// AppendRunRequest represents a request to record an editor run
type AppendRunRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Result   string `json:"result"`
}

// HandleRunHistory serves the per-language run history. History is local-only
// UI state; there is no remote counterpart.
func (s *Server) HandleRunHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			defer s.track("history.list")()

			language := r.URL.Query().Get("language")
			if language == "" {
				http.Error(w, "Language is required", http.StatusBadRequest)
				return
			}

			s.writeJSON(w, http.StatusOK, s.History.Get(language))

		case http.MethodPost:
			defer s.track("history.append")()

			var req AppendRunRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request format", http.StatusBadRequest)
				return
			}

			if req.Language == "" {
				http.Error(w, "Language is required", http.StatusBadRequest)
				return
			}

			saved, err := s.History.Append(req.Language, &models.RunHistoryEntry{
				Code:   req.Code,
				Result: req.Result,
			})
			if err != nil {
				s.writeError(w, err)
				return
			}

			s.writeJSON(w, http.StatusCreated, saved)

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
