package main

import (
	"parkgate/internal/auth/handler"
	"parkgate/internal/auth/service"
	"parkgate/internal/auth/store"
	"parkgate/pkg/app"
	"parkgate/pkg/clock"
	"parkgate/pkg/config"
	"parkgate/pkg/token"
)

const ServiceName = "auth"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Auth service")
	authService, tokens := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewAuthHandler(authService, tokens, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.AuthService, *token.Manager) {
	tokens, err := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry, clock.System(cfg.Location()))
	if err != nil {
		cfg.Log.Fatal("Failed to create token manager", "error", err)
	}

	users := store.NewUserStore()
	service.SeedDemoUser(users, cfg)

	authService := service.NewAuthService(users, tokens, cfg)
	cfg.Log.Info("Auth service initialized", "token_expiry", cfg.JWTExpiry)
	return authService, tokens
}
