package auth

import (
	"io"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	"github.com/junaidrashid-git/storefront/models"
)

const facebookProfileURL = "https://graph.facebook.com/me?fields=id,name,email"

func NewFacebook(appID, appSecret, callbackURL string) *OAuthProvider {
	return &OAuthProvider{
		name: models.ProviderFacebook,
		config: &oauth2.Config{
			ClientID:     appID,
			ClientSecret: appSecret,
			RedirectURL:  callbackURL,
			Endpoint:     facebook.Endpoint,
		},
		profileURL: facebookProfileURL,
		decode:     decodeFacebookProfile,
	}
}

func decodeFacebookProfile(r io.Reader) (Identity, error) {
	profile, err := decodeJSON[struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}](r)
	if err != nil {
		return Identity{}, err
	}
	return Identity{ExternalID: profile.ID, DisplayName: profile.Name}, nil
}
