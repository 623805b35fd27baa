package service

import (
	"context"
	"errors"
	"net/http"

	"parkgate/internal/auth/store"
	"parkgate/pkg/config"
	apperrors "parkgate/pkg/errors"
	"parkgate/pkg/model"
)

// TokenIssuer is the slice of the token manager the service needs.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

type AuthService interface {
	Login(ctx context.Context, creds *model.Credentials) (string, error)
	Items(ctx context.Context) []model.Item
	UpdateProfile(ctx context.Context, subject string, update *model.ProfileUpdate) (*model.Profile, error)
}

type authService struct {
	users  *store.UserStore
	tokens TokenIssuer
	items  []model.Item
	cfg    *config.Config
}

func NewAuthService(users *store.UserStore, tokens TokenIssuer, cfg *config.Config) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		items:  defaultItems(),
		cfg:    cfg,
	}
}

// defaultItems is the static demo catalogue served to any client.
func defaultItems() []model.Item {
	return []model.Item{
		{ID: 1, Name: "Laptop", Price: 15000000},
		{ID: 2, Name: "Mouse Gaming", Price: 750000},
	}
}

func (s *authService) Login(_ context.Context, creds *model.Credentials) (string, error) {
	if creds == nil || creds.Email == "" || creds.Password == "" {
		return "", apperrors.InvalidInput("Missing email or password")
	}

	user, err := s.users.Get(creds.Email)
	if err != nil || user.Password != creds.Password {
		s.cfg.Log.Warn("Login rejected", "email", creds.Email)
		return "", apperrors.Unauthorized("Invalid credentials")
	}

	accessToken, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", apperrors.Internal("Failed to issue token", err)
	}

	s.cfg.Log.Info("User logged in", "email", user.Email)
	return accessToken, nil
}

func (s *authService) Items(_ context.Context) []model.Item {
	return s.items
}

func (s *authService) UpdateProfile(_ context.Context, subject string, update *model.ProfileUpdate) (*model.Profile, error) {
	if update == nil || (update.Name == "" && update.Email == "") {
		return nil, apperrors.InvalidInput("Request body must contain 'name' or 'email'")
	}

	profile, err := s.users.UpdateProfile(subject, *update)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "User not found", http.StatusNotFound)
		}
		return nil, apperrors.Internal("Failed to update profile", err)
	}

	s.cfg.Log.Info("Profile updated", "subject", subject, "profile_email", profile.Email)
	return &profile, nil
}

// SeedDemoUser registers the configured demo account so the service is
// usable out of the box.
func SeedDemoUser(users *store.UserStore, cfg *config.Config) {
	users.Put(model.User{
		Email:    cfg.DemoUserEmail,
		Password: cfg.DemoUserPassword,
		Profile: model.Profile{
			Name:  cfg.DemoUserName,
			Email: cfg.DemoUserEmail,
		},
	})
	cfg.Log.Info("Seeded demo user", "email", cfg.DemoUserEmail)
}
