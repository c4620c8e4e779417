package socialAuth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"lexify/models"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func TestAuthCodeURLUsesRoleCallback(t *testing.T) {
	g := NewGoogleProvider("client-id", "secret", "https://lexify.example.com/")

	for _, role := range []models.Role{models.RoleClient, models.RoleLawyer} {
		raw := g.AuthCodeURL(role, "state-1")
		u, err := url.Parse(raw)
		if err != nil {
			t.Fatalf("bad url %q: %v", raw, err)
		}
		q := u.Query()
		want := "https://lexify.example.com/auth/google/" + string(role) + "/lex"
		if q.Get("redirect_uri") != want {
			t.Errorf("expected redirect_uri %s, got %s", want, q.Get("redirect_uri"))
		}
		if q.Get("state") != "state-1" || q.Get("client_id") != "client-id" {
			t.Errorf("unexpected query: %v", q)
		}
	}
}

func tokenServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExchangeVerifiesIDToken(t *testing.T) {
	srv := tokenServer(t, `{"access_token":"at","token_type":"Bearer","expires_in":3600,"id_token":"raw-id-token"}`)

	var gotToken, gotAudience string
	verify := func(_ context.Context, tok, aud string) (*idtoken.Payload, error) {
		gotToken, gotAudience = tok, aud
		return &idtoken.Payload{
			Subject: "1234567890",
			Claims: map[string]interface{}{
				"email":          "Meera@Example.com",
				"email_verified": true,
				"name":           "Meera Iyer",
				"picture":        "https://example.com/meera.png",
			},
		}, nil
	}
	g := newGoogleProvider("client-id", "secret", "http://localhost:3000",
		oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}, verify)

	profile, err := g.Exchange(context.Background(), models.RoleLawyer, "code-1")
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}
	if gotToken != "raw-id-token" || gotAudience != "client-id" {
		t.Errorf("verifier called with %q, %q", gotToken, gotAudience)
	}
	if profile.ProviderID != "1234567890" || profile.Email != "meera@example.com" ||
		profile.DisplayName != "Meera Iyer" || profile.PhotoURL != "https://example.com/meera.png" {
		t.Errorf("unexpected profile: %+v", profile)
	}
}

func TestExchangeWithoutIDToken(t *testing.T) {
	srv := tokenServer(t, `{"access_token":"at","token_type":"Bearer"}`)
	verify := func(context.Context, string, string) (*idtoken.Payload, error) {
		t.Fatal("verifier should not be called")
		return nil, nil
	}
	g := newGoogleProvider("client-id", "secret", "http://localhost:3000",
		oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}, verify)

	if _, err := g.Exchange(context.Background(), models.RoleClient, "code"); !errors.Is(err, ErrMissingIDToken) {
		t.Errorf("expected ErrMissingIDToken, got %v", err)
	}
}

func TestProfileFromPayloadRejectsUnverifiedEmail(t *testing.T) {
	_, err := profileFromPayload(&idtoken.Payload{
		Subject: "1",
		Claims:  map[string]interface{}{"email": "x@example.com", "email_verified": false},
	})
	if !errors.Is(err, ErrUnverifiedEmail) {
		t.Errorf("expected ErrUnverifiedEmail, got %v", err)
	}
}
