// Package httpapi exposes the development login server over HTTP with the
// same form-post contract as the production API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/santosysantos/prodgate/internal/devauth/auth"
	"github.com/santosysantos/prodgate/internal/devauth/users"
	"github.com/santosysantos/prodgate/internal/logging"
)

// SessionCookie carries the signed token issued on a successful login.
const SessionCookie = "prodgate_session"

type UserService interface {
	Register(ctx context.Context, username string, password []byte) (*users.User, error)
	Login(ctx context.Context, username string, password []byte) (*users.User, error)
}

type Handler struct {
	users     UserService
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewHandler(us UserService, l logging.Logger, secretKey string, tokenTTL time.Duration) *Handler {
	return &Handler{
		users:     us,
		logger:    l.With("module", "http_handler"),
		jwtSecret: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// Routes returns the router serving
//
//	POST /user/login     200 | 401 | 400
//	POST /user/register  201 | 409 | 400
//	GET  /user/session   200 | 401
func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(h.logRequests)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/user/login", h.login).Methods(http.MethodPost)
	r.HandleFunc("/user/register", h.register).Methods(http.MethodPost)
	r.HandleFunc("/user/session", h.session).Methods(http.MethodGet)

	return r
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get("username")
	user, err := h.users.Login(r.Context(), username, []byte(r.PostForm.Get("password")))
	if err != nil {
		if errors.Is(err, users.ErrUnauthorized) {
			h.logger.Info(r.Context(), "login rejected", "username", username)
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateToken(user.UserName, h.jwtSecret, h.tokenTTL)
	if err != nil {
		h.logger.Error(r.Context(), "token signing failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	_, err := h.users.Register(r.Context(), r.PostForm.Get("username"), []byte(r.PostForm.Get("password")))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusCreated)
	case errors.Is(err, users.ErrEmptyCredentials), errors.Is(err, users.ErrPasswordTooLong):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, users.ErrUserExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error(r.Context(), "register failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type sessionResponse struct {
	Username string `json:"username"`
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	name, err := auth.GetUserNameFromToken(c.Value, h.jwtSecret)
	if err != nil {
		http.Error(w, "invalid session", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sessionResponse{Username: name})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.logger.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
