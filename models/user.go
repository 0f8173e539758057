package models

import "time"

// Provider names an external identity provider.
type Provider string

const (
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
)

type User struct {
	ID           string            `bson:"_id,omitempty" json:"id"`
	Username     string            `bson:"username,omitempty" json:"username,omitempty"`
	PasswordHash string            `bson:"passwordHash,omitempty" json:"-"`
	GoogleID     string            `bson:"googleId,omitempty" json:"googleId,omitempty"`
	FacebookID   string            `bson:"facebookId,omitempty" json:"facebookId,omitempty"`
	Profile      Profile           `bson:"profile" json:"profile"`
	WishList     []ProductSnapshot `bson:"wishList" json:"wishList"`
	Cart         []ProductSnapshot `bson:"cart" json:"cart"`
	Orders       []OrderRecord     `bson:"orders" json:"orders"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
}

// Profile holds the display name and delivery details, embedded in User
type Profile struct {
	Name       string `bson:"name" json:"name"`
	MobileNo   string `bson:"mobileNo" json:"mobileNo"`
	Country    string `bson:"country" json:"country"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	HouseNo    string `bson:"houseNo" json:"houseNo"`
	Landmark   string `bson:"landmark" json:"landmark"`
}

// ExternalID returns the id bound to the given provider, or "".
func (u *User) ExternalID(p Provider) string {
	switch p {
	case ProviderGoogle:
		return u.GoogleID
	case ProviderFacebook:
		return u.FacebookID
	}
	return ""
}

// SetExternalID binds the user to an external identity. Callers only do this on
// creation; identity fields are not rewritten afterwards.
func (u *User) SetExternalID(p Provider, id string) {
	switch p {
	case ProviderGoogle:
		u.GoogleID = id
	case ProviderFacebook:
		u.FacebookID = id
	}
}

// ExternalIDField is the document field holding the provider's id.
func ExternalIDField(p Provider) (string, bool) {
	switch p {
	case ProviderGoogle:
		return "googleId", true
	case ProviderFacebook:
		return "facebookId", true
	}
	return "", false
}
