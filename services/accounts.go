package services

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
)

// Accounts resolves local and federated identities to user documents.
type Accounts struct {
	users repository.UserRepository
}

func NewAccounts(users repository.UserRepository) *Accounts {
	return &Accounts{users: users}
}

// Register creates a local user. A taken username fails with
// repository.ErrDuplicateIdentity and leaves the store untouched.
func (a *Accounts) Register(ctx context.Context, username, password string, profile models.Profile) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "Accounts.Register")
	defer span.End()

	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Profile:      profile,
	}
	if err := a.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("register %q: %w", username, err)
	}
	return u, nil
}

// Login checks a username/password pair. Unknown users and wrong passwords
// both fail with ErrInvalidCredentials.
func (a *Accounts) Login(ctx context.Context, username, password string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "Accounts.Login")
	defer span.End()

	u, err := a.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// FederatedLogin finds or creates the user bound to provider's externalID.
func (a *Accounts) FederatedLogin(ctx context.Context, provider models.Provider, externalID, displayName string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "Accounts.FederatedLogin",
		trace.WithAttributes(attribute.String("auth.provider", string(provider))))
	defer span.End()

	if externalID == "" {
		return nil, fmt.Errorf("%s login without an external id", provider)
	}
	return a.users.UpsertExternal(ctx, provider, externalID, displayName)
}

// User loads the document of a signed-in user.
func (a *Accounts) User(ctx context.Context, userID string) (*models.User, error) {
	return a.users.FindByID(ctx, userID)
}

// Users lists every account.
func (a *Accounts) Users(ctx context.Context) ([]models.User, error) {
	return a.users.FindAll(ctx)
}
