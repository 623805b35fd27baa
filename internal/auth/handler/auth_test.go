package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"parkgate/internal/auth/service"
	apperrors "parkgate/pkg/errors"
	"parkgate/pkg/logger"
	"parkgate/pkg/model"
	"parkgate/pkg/token"
)

type mockAuthService struct {
	loginFunc         func(ctx context.Context, creds *model.Credentials) (string, error)
	itemsFunc         func(ctx context.Context) []model.Item
	updateProfileFunc func(ctx context.Context, subject string, update *model.ProfileUpdate) (*model.Profile, error)
}

func (m *mockAuthService) Login(ctx context.Context, creds *model.Credentials) (string, error) {
	return m.loginFunc(ctx, creds)
}

func (m *mockAuthService) Items(ctx context.Context) []model.Item {
	return m.itemsFunc(ctx)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, subject string, update *model.ProfileUpdate) (*model.Profile, error) {
	return m.updateProfileFunc(ctx, subject, update)
}

// mockValidator maps raw token strings onto fixed outcomes.
type mockValidator struct {
	subject string
	err     error
}

func (m *mockValidator) Validate(_ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.subject, nil
}

func newTestRouter(svc service.AuthService, validator *mockValidator) *httprouter.Router {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	if validator == nil {
		validator = &mockValidator{subject: "demo@parkgate.local"}
	}
	h := NewAuthHandler(svc, validator, log)
	router := httprouter.New()
	h.RegisterRoutes(router)
	return router
}

func TestLogin_ReturnsAccessToken(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(_ context.Context, creds *model.Credentials) (string, error) {
			return "signed-jwt", nil
		},
	}
	router := newTestRouter(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"demo@parkgate.local","password":"secret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["access_token"] != "signed-jwt" {
		t.Errorf("expected access_token in response, got %v", resp)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(_ context.Context, _ *model.Credentials) (string, error) {
			return "", apperrors.Unauthorized("Invalid credentials")
		},
	}
	router := newTestRouter(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"demo@parkgate.local","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "Invalid credentials" {
		t.Errorf("expected error %q, got %v", "Invalid credentials", resp["error"])
	}
}

func TestItems_WrappedInItemsKey(t *testing.T) {
	svc := &mockAuthService{
		itemsFunc: func(_ context.Context) []model.Item {
			return []model.Item{{ID: 1, Name: "Laptop", Price: 15000000}}
		},
	}
	router := newTestRouter(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Items []model.Item `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "Laptop" {
		t.Errorf("unexpected items payload: %+v", resp.Items)
	}
}

func TestUpdateProfile_RequiresToken(t *testing.T) {
	svc := &mockAuthService{}
	router := newTestRouter(svc, nil)

	req := httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(`{"name":"X"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without bearer token, got %d", rec.Code)
	}
}

func TestUpdateProfile_ExpiredToken(t *testing.T) {
	svc := &mockAuthService{}
	router := newTestRouter(svc, &mockValidator{err: token.ErrExpired})

	req := httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(`{"name":"X"}`))
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Token expired") {
		t.Errorf("expected expired-token error, got %q", rec.Body.String())
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	var gotSubject string
	svc := &mockAuthService{
		updateProfileFunc: func(_ context.Context, subject string, update *model.ProfileUpdate) (*model.Profile, error) {
			gotSubject = subject
			return &model.Profile{Name: update.Name, Email: "demo@parkgate.local"}, nil
		},
	}
	router := newTestRouter(svc, &mockValidator{subject: "demo@parkgate.local"})

	req := httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set("Authorization", "Bearer valid")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotSubject != "demo@parkgate.local" {
		t.Errorf("expected token subject passed through, got %q", gotSubject)
	}

	var resp struct {
		Message string        `json:"message"`
		Profile model.Profile `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message == "" || resp.Profile.Name != "Renamed" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
