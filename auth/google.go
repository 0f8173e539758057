package auth

import (
	"io"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/junaidrashid-git/storefront/models"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// NewGoogle returns the Google provider, asking only for the basic profile.
func NewGoogle(clientID, clientSecret, callbackURL string) *OAuthProvider {
	return &OAuthProvider{
		name: models.ProviderGoogle,
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"profile"},
		},
		profileURL: googleUserInfoURL,
		decode:     decodeGoogleProfile,
	}
}

func decodeGoogleProfile(r io.Reader) (Identity, error) {
	profile, err := decodeJSON[struct {
		Sub  string `json:"sub"`
		Name string `json:"name"`
	}](r)
	if err != nil {
		return Identity{}, err
	}
	return Identity{ExternalID: profile.Sub, DisplayName: profile.Name}, nil
}
