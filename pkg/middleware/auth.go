package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"parkgate/pkg/logger"
	"parkgate/pkg/token"

	"github.com/julienschmidt/httprouter"
)

const SubjectKey contextKey = "subject"

func SubjectFromContext(ctx context.Context) string {
	if sub, ok := ctx.Value(SubjectKey).(string); ok {
		return sub
	}
	return ""
}

// TokenValidator validates a raw bearer token and returns its subject.
type TokenValidator interface {
	Validate(raw string) (string, error)
}

// BearerAuth guards a single route: it extracts the Authorization bearer
// token, validates it, and stores the token subject in the request
// context for the wrapped handle.
func BearerAuth(validator TokenValidator, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			raw := extractBearerToken(r.Header.Get("Authorization"))
			if raw == "" {
				writeAuthError(w, http.StatusUnauthorized, "Missing bearer token")
				return
			}

			subject, err := validator.Validate(raw)
			if err != nil {
				log.Warn("Token validation failed",
					"request_id", RequestIDFromContext(r.Context()),
					"path", r.URL.Path,
					"error", err,
				)
				if errors.Is(err, token.ErrExpired) {
					writeAuthError(w, http.StatusUnauthorized, "Token expired")
					return
				}
				writeAuthError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, subject)
			next(w, r.WithContext(ctx), ps)
		}
	}
}

func extractBearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
