package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/taskbox/taskbox/auth"
	"github.com/taskbox/taskbox/internal/logutil"
	"github.com/taskbox/taskbox/store"
)

type (
	signupRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// userBody is what signup returns. The password hash never leaves
	// the process.
	userBody struct {
		ID        int64     `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}

	messageBody struct {
		Message string `json:"message"`
	}
)

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "all fields are required")
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log := logutil.GetOrDefault(r.Context())
		log.Error().Err(err).Msg("Unable to hash password")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}
	user, err := a.store.CreateUser(r.Context(), req.Name, req.Email, hash)
	if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, userBody{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "all fields are required")
		return
	}
	user, err := a.store.UserByEmail(r.Context(), req.Email)
	var unknown store.UserNotFound
	if errors.As(err, &unknown) {
		// same response as a wrong password, an attacker probing for
		// registered emails gets nothing from this endpoint
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	} else if err != nil {
		respondStoreError(r.Context(), w, err)
		return
	}
	ok, err := auth.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		log := logutil.GetOrDefault(r.Context())
		log.Error().Err(err).Int64("user.id", user.ID).Msg("Stored password hash is malformed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}
	if !ok {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := a.codec.Issue(auth.Claims{UserID: user.ID, Email: user.Email})
	if err != nil {
		log := logutil.GetOrDefault(r.Context())
		log.Error().Err(err).Msg("Unable to issue token")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}
	http.SetCookie(w, auth.NewTokenCookie(token))
	respondJSON(w, http.StatusOK, messageBody{Message: "login successful"})
}
