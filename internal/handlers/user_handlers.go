package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"codeleap/internal/middleware"
	"codeleap/internal/models"
	"codeleap/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest represents a new account request
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhotoURL string `json:"photoURL,omitempty"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the token the frontend attaches to later requests
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// HandleRegister creates an account and signs the new user in.
func (s *Server) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		defer s.track("users.register")()

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "Username, email and password are required", http.StatusBadRequest)
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		user := &models.User{
			ID:             uuid.New(),
			Username:       req.Username,
			Email:          req.Email,
			HashedPassword: string(hashed),
			PhotoURL:       req.PhotoURL,
			CreatedAt:      time.Now(),
		}

		if err := s.DB.SaveUser(r.Context(), user); err != nil {
			s.writeError(w, err)
			return
		}

		token, err := middleware.GenerateToken(user.ID)
		if err != nil {
			log.Printf("Error generating token: %v", err)
			http.Error(w, "Failed to create session", http.StatusInternalServerError)
			return
		}

		s.writeJSON(w, http.StatusCreated, LoginResponse{Token: token, User: user})
	}
}

// HandleLogin verifies credentials and issues a token.
func (s *Server) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		defer s.track("users.login")()

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		user, err := s.DB.GetUserByEmail(r.Context(), req.Email)
		if err != nil {
			if utils.IsErrorCode(err, utils.ErrUserNotFound) {
				http.Error(w, "Invalid credentials", http.StatusUnauthorized)
				return
			}
			s.writeError(w, err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := middleware.GenerateToken(user.ID)
		if err != nil {
			log.Printf("Error generating token: %v", err)
			http.Error(w, "Failed to create session", http.StatusInternalServerError)
			return
		}

		s.writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
	}
}
