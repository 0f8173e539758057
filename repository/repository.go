package repository

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/storefront/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("identity already registered")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// UserRepository handles persistence for User documents. Save replaces the
// whole document; there is no partial update.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// Create inserts u and assigns u.ID. Fails with ErrDuplicateIdentity when
	// the username or an external id is already bound to another user.
	Create(ctx context.Context, u *models.User) error
	// UpsertExternal returns the user bound to (provider, externalID), creating
	// it with displayName when none exists.
	UpsertExternal(ctx context.Context, provider models.Provider, externalID, displayName string) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
	FindAll(ctx context.Context) ([]models.User, error)
}

// ProductRepository handles persistence for Products.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	// Save inserts or replaces p, assigning p.ID when empty.
	Save(ctx context.Context, p *models.Product) error
	// Seed inserts initial products if none exist.
	Seed(ctx context.Context, products []models.Product) error
}

// Store bundles both collections behind one connection.
type Store interface {
	Users() UserRepository
	Products() ProductRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
