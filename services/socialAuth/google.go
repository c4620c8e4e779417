package socialAuth

import (
	"context"
	"fmt"
	"strings"

	"lexify/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// TokenVerifier validates a Google ID token for the given audience.
type TokenVerifier func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleProvider implements IdentityProvider against Google accounts.
// Each role has its own callback URL.
type GoogleProvider struct {
	clientID string
	configs  map[models.Role]*oauth2.Config
	verify   TokenVerifier
}

// NewGoogleProvider builds the per-role OAuth configs with callbacks at
// {publicURL}/auth/google/{role}/lex.
func NewGoogleProvider(clientID, clientSecret, publicURL string) *GoogleProvider {
	return newGoogleProvider(clientID, clientSecret, publicURL, google.Endpoint, idtoken.Validate)
}

func newGoogleProvider(clientID, clientSecret, publicURL string, endpoint oauth2.Endpoint, verify TokenVerifier) *GoogleProvider {
	base := strings.TrimRight(publicURL, "/")
	configs := make(map[models.Role]*oauth2.Config, 2)
	for _, role := range []models.Role{models.RoleClient, models.RoleLawyer} {
		configs[role] = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     endpoint,
			RedirectURL:  fmt.Sprintf("%s/auth/google/%s/lex", base, role),
			Scopes:       []string{"openid", "profile", "email"},
		}
	}
	return &GoogleProvider{clientID: clientID, configs: configs, verify: verify}
}

func (g *GoogleProvider) config(role models.Role) (*oauth2.Config, error) {
	cfg, ok := g.configs[role]
	if !ok {
		return nil, fmt.Errorf("no google config for role %q", role)
	}
	return cfg, nil
}

func (g *GoogleProvider) AuthCodeURL(role models.Role, state string) string {
	cfg, err := g.config(role)
	if err != nil {
		return ""
	}
	return cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Exchange trades the authorization code for tokens and verifies the ID token.
func (g *GoogleProvider) Exchange(ctx context.Context, role models.Role, code string) (*models.FederatedProfile, error) {
	cfg, err := g.config(role)
	if err != nil {
		return nil, err
	}
	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange failed: %w", err)
	}
	raw, ok := token.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil, ErrMissingIDToken
	}

	payload, err := g.verify(ctx, raw, g.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google id token: %w", err)
	}
	return profileFromPayload(payload)
}

func profileFromPayload(payload *idtoken.Payload) (*models.FederatedProfile, error) {
	if payload.Subject == "" {
		return nil, fmt.Errorf("google id token has no subject")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, ErrUnverifiedEmail
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &models.FederatedProfile{
		ProviderID:  payload.Subject,
		Email:       strings.ToLower(email),
		DisplayName: name,
		PhotoURL:    picture,
	}, nil
}
