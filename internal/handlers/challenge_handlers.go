package handlers

import (
	"encoding/json"
	"net/http"

	"codeleap/internal/middleware"
)

// MarkChallengeRequest represents a request to record a completed challenge
type MarkChallengeRequest struct {
	ChallengeID string `json:"challengeId"`
}

// HandleChallenges serves the completed-challenge set. Remote failures never
// surface here: the progress store falls back to local persistence, so this
// endpoint degrades rather than erroring when the remote store misbehaves.
func (s *Server) HandleChallenges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, authenticated := middleware.GetUserIDFromContext(r.Context())
		progress := s.Stores.ProgressFor(userID, authenticated)

		switch r.Method {
		case http.MethodGet:
			defer s.track("challenges.list")()

			completed, err := progress.GetCompleted(r.Context())
			if err != nil {
				s.writeError(w, err)
				return
			}
			s.writeJSON(w, http.StatusOK, map[string][]string{"completed": completed})

		case http.MethodPost:
			defer s.track("challenges.mark")()

			var req MarkChallengeRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request format", http.StatusBadRequest)
				return
			}

			if req.ChallengeID == "" {
				http.Error(w, "Challenge ID is required", http.StatusBadRequest)
				return
			}

			if err := progress.MarkCompleted(r.Context(), req.ChallengeID); err != nil {
				s.writeError(w, err)
				return
			}

			w.WriteHeader(http.StatusNoContent)

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
