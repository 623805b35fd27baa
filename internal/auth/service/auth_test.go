package service

import (
	"context"
	"net/http"
	"testing"

	"parkgate/internal/auth/store"
	"parkgate/pkg/config"
	apperrors "parkgate/pkg/errors"
	"parkgate/pkg/logger"
	"parkgate/pkg/model"
)

type mockIssuer struct {
	issueFunc func(subject string) (string, error)
}

func (m *mockIssuer) Issue(subject string) (string, error) {
	return m.issueFunc(subject)
}

func newTestService(issuer TokenIssuer) (AuthService, *store.UserStore) {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	cfg := &config.Config{Log: log}

	users := store.NewUserStore()
	users.Put(model.User{
		Email:    "demo@parkgate.local",
		Password: "secret",
		Profile:  model.Profile{Name: "Demo", Email: "demo@parkgate.local"},
	})

	if issuer == nil {
		issuer = &mockIssuer{issueFunc: func(subject string) (string, error) {
			return "token-for-" + subject, nil
		}}
	}

	return NewAuthService(users, issuer, cfg), users
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(nil)

	tests := []struct {
		name        string
		creds       *model.Credentials
		wantToken   string
		wantMessage string
		wantStatus  int
	}{
		{
			name:      "valid credentials",
			creds:     &model.Credentials{Email: "demo@parkgate.local", Password: "secret"},
			wantToken: "token-for-demo@parkgate.local",
		},
		{
			name:        "missing email",
			creds:       &model.Credentials{Password: "secret"},
			wantMessage: "Missing email or password",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "missing password",
			creds:       &model.Credentials{Email: "demo@parkgate.local"},
			wantMessage: "Missing email or password",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "wrong password",
			creds:       &model.Credentials{Email: "demo@parkgate.local", Password: "nope"},
			wantMessage: "Invalid credentials",
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "unknown user",
			creds:       &model.Credentials{Email: "ghost@parkgate.local", Password: "secret"},
			wantMessage: "Invalid credentials",
			wantStatus:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accessToken, err := svc.Login(context.Background(), tt.creds)

			if tt.wantMessage == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if accessToken != tt.wantToken {
					t.Errorf("expected token %q, got %q", tt.wantToken, accessToken)
				}
				return
			}

			appErr := apperrors.AsAppError(err)
			if appErr.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, appErr.Message)
			}
			if appErr.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, appErr.StatusCode())
			}
		})
	}
}

func TestItems(t *testing.T) {
	svc, _ := newTestService(nil)

	items := svc.Items(context.Background())
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Laptop" || items[0].Price != 15000000 {
		t.Errorf("unexpected first item: %+v", items[0])
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, users := newTestService(nil)

	profile, err := svc.UpdateProfile(context.Background(), "demo@parkgate.local", &model.ProfileUpdate{Name: "Renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "Renamed" {
		t.Errorf("expected renamed profile, got %q", profile.Name)
	}
	if profile.Email != "demo@parkgate.local" {
		t.Errorf("email must be untouched, got %q", profile.Email)
	}

	// Profile email edits must not re-key the store.
	if _, err := svc.UpdateProfile(context.Background(), "demo@parkgate.local", &model.ProfileUpdate{Email: "new@parkgate.local"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, err := users.Get("demo@parkgate.local")
	if err != nil {
		t.Fatalf("user must still be reachable by login email: %v", err)
	}
	if user.Profile.Email != "new@parkgate.local" {
		t.Errorf("expected profile email updated, got %q", user.Profile.Email)
	}
}

func TestUpdateProfile_EmptyBody(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.UpdateProfile(context.Background(), "demo@parkgate.local", &model.ProfileUpdate{})
	appErr := apperrors.AsAppError(err)
	if appErr.Message != "Request body must contain 'name' or 'email'" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
	if appErr.StatusCode() != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", appErr.StatusCode())
	}
}

func TestUpdateProfile_UnknownSubject(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.UpdateProfile(context.Background(), "ghost@parkgate.local", &model.ProfileUpdate{Name: "X"})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", appErr.Code)
	}
	if appErr.StatusCode() != http.StatusNotFound {
		t.Errorf("expected 404, got %d", appErr.StatusCode())
	}
}
