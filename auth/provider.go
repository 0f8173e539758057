// Package auth implements the Google and Facebook OAuth2 login flows.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/junaidrashid-git/storefront/models"
)

// Identity is what a provider tells us about the signed-in account.
type Identity struct {
	ExternalID  string
	DisplayName string
}

// Provider is one external identity provider.
type Provider interface {
	Name() models.Provider
	AuthCodeURL(state string) string
	Identify(ctx context.Context, code string) (Identity, error)
}

// OAuthProvider runs the authorization code flow and then reads the account
// id and name from the provider's profile endpoint.
type OAuthProvider struct {
	name       models.Provider
	config     *oauth2.Config
	profileURL string
	decode     func(io.Reader) (Identity, error)
}

func (p *OAuthProvider) Name() models.Provider { return p.name }

func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *OAuthProvider) Identify(ctx context.Context, code string) (Identity, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("%s code exchange failed: %w", p.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.profileURL, nil)
	if err != nil {
		return Identity{}, err
	}
	resp, err := p.config.Client(ctx, token).Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("%s profile request failed: %w", p.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("%s profile request returned %s", p.name, resp.Status)
	}

	id, err := p.decode(resp.Body)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to decode %s profile: %w", p.name, err)
	}
	if id.ExternalID == "" {
		return Identity{}, fmt.Errorf("%s profile has no id", p.name)
	}
	return id, nil
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var v T
	err := json.NewDecoder(r).Decode(&v)
	return v, err
}
