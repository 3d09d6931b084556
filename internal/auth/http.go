// Copyright (c) 2026 Reelist. All rights reserved.

package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ngophan/reelist/internal/platform/ctxutil"
	"github.com/ngophan/reelist/internal/platform/middleware"
	"github.com/ngophan/reelist/internal/platform/respond"
	"github.com/ngophan/reelist/internal/platform/validate"
)

// Handler implements the /users HTTP endpoints.
//
// Handlers are gatekeepers: JSON parsing, boundary validation, and response
// shaping live here. They contain NO business logic or database queries.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with the account routes.
//
// # Endpoints
//   - POST /signup : Creates a new account.
//   - POST /login  : Authenticates and returns a JWT.
//   - GET  /auth   : Echoes the caller's user id if the token is valid.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/auth", handler.whoami)
	})

	return router
}

// signupRequest represents the JSON payload expected for account creation.
type signupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signup handles POST /users/signup requests.
//
// # Returns
//   - HTTP 201 Created on success.
//   - HTTP 400 Bad Request if fields are missing/invalid or the email exists.
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input signupRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.
		Required("fullName", input.FullName).
		Required("email", input.Email).
		Required("password", input.Password)
	if input.Email != "" {
		validator.Email("email", input.Email)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	_, err := handler.authService.Register(request.Context(), RegisterInput{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, map[string]string{
		"message": "User created successfully",
	})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /users/login requests.
//
// # Returns
//   - HTTP 200 OK with the passwordToken on success.
//   - HTTP 404/401 with an identical message for unknown email / bad password.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if err := validator.
		Required("email", input.Email).
		Required("password", input.Password).
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), LoginInput{
		Email:     input.Email,
		Password:  input.Password,
		IPAddress: middleware.RealIP(request),
	})
	if err != nil {
		// 404 vs 401 differ only in status; the message never reveals
		// whether the email was the problem.
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message":       "Login successful",
		"passwordToken": result.Token,
	})
}

// whoami handles GET /users/auth requests.
//
// The frontend calls this on page load to decide whether the stored token
// is still usable.
func (handler *Handler) whoami(writer http.ResponseWriter, request *http.Request) {
	claims := ctxutil.GetAuthUser(request.Context())

	respond.OK(writer, map[string]string{
		"userId": claims.UserID,
	})
}
