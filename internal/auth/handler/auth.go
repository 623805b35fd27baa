package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"parkgate/internal/auth/service"
	httputil "parkgate/pkg/http"
	"parkgate/pkg/logger"
	"parkgate/pkg/middleware"
	"parkgate/pkg/model"
)

type AuthHandler struct {
	service service.AuthService
	tokens  middleware.TokenValidator
	log     *logger.Logger
}

func NewAuthHandler(svc service.AuthService, tokens middleware.TokenValidator, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		tokens:  tokens,
		log:     log,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Missing email or password",
		})
		return
	}

	accessToken, err := h.service.Login(r.Context(), &creds)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, map[string]string{"access_token": accessToken})
}

func (h *AuthHandler) Items(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items := h.service.Items(r.Context())
	httputil.WriteSuccess(w, map[string][]model.Item{"items": items})
}

// UpdateProfile requires a valid bearer token; the token subject picks
// the user whose profile is edited.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var update model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Request body must contain 'name' or 'email'",
		})
		return
	}

	subject := middleware.SubjectFromContext(r.Context())
	profile, err := h.service.UpdateProfile(r.Context(), subject, &update)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, map[string]any{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	protect := middleware.BearerAuth(h.tokens, h.log)

	router.POST("/auth/login", h.Login)
	router.GET("/items", h.Items)
	router.PUT("/profile", protect(h.UpdateProfile))
}
