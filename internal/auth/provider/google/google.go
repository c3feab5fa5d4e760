package google

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"checklist-ledger/internal/auth"
)

var scopes = []string{"openid", "email", "profile"}

// Config holds Google OAuth2 client settings.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// Overrides for tests; zero values use Google's endpoints.
	Endpoint         oauth2.Endpoint
	UserinfoEndpoint string
}

// Provider signs users in with their Google account.
type Provider struct {
	conf             *oauth2.Config
	userinfoEndpoint string
}

var _ auth.Provider = (*Provider)(nil)

// New creates a Google Provider. Returns auth.ErrNotConfigured when the
// client id or secret is missing.
func New(cfg Config) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, auth.ErrNotConfigured
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("google: redirect url is required")
	}

	endpoint := googleoauth.Endpoint
	if cfg.Endpoint.TokenURL != "" {
		endpoint = cfg.Endpoint
	}

	return &Provider{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		userinfoEndpoint: cfg.UserinfoEndpoint,
	}, nil
}

// AuthCodeURL returns the Google consent page URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Exchange trades code for a token and reads the userinfo of its owner.
func (p *Provider) Exchange(ctx context.Context, code string) (auth.Identity, error) {
	tok, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("token exchange: %w", err)
	}

	opts := []option.ClientOption{option.WithTokenSource(p.conf.TokenSource(ctx, tok))}
	if p.userinfoEndpoint != "" {
		opts = append(opts, option.WithEndpoint(p.userinfoEndpoint))
	}
	svc, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return auth.Identity{}, fmt.Errorf("userinfo: %w", err)
	}
	if info.Id == "" {
		return auth.Identity{}, errors.New("userinfo: empty subject")
	}

	return auth.Identity{ID: info.Id, Email: info.Email, Name: info.Name}, nil
}
