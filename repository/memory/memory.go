// Package memory is an in-process document store. It keeps the same
// replace-on-save and uniqueness semantics as the Mongo store and is used
// for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
)

type Store struct {
	users    *userRepository
	products *productRepository
}

func NewStore() *Store {
	return &Store{
		users:    &userRepository{byID: make(map[string]models.User)},
		products: &productRepository{byID: make(map[string]models.Product)},
	}
}

func (s *Store) Users() repository.UserRepository       { return s.users }
func (s *Store) Products() repository.ProductRepository { return s.products }
func (s *Store) Ping(context.Context) error             { return nil }
func (s *Store) Close(context.Context) error            { return nil }

type userRepository struct {
	mu    sync.RWMutex
	byID  map[string]models.User
	order []string
}

func (r *userRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}
	out := copyUser(u)
	return &out, nil
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if username != "" {
		for _, id := range r.order {
			if u := r.byID[id]; u.Username == username {
				out := copyUser(u)
				return &out, nil
			}
		}
	}
	return nil, fmt.Errorf("username %q: %w", username, repository.ErrNotFound)
}

func (r *userRepository) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflicts(u) {
		return repository.ErrDuplicateIdentity
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.byID[u.ID] = copyUser(*u)
	r.order = append(r.order, u.ID)
	return nil
}

// conflicts reports whether another stored user shares one of u's identities.
func (r *userRepository) conflicts(u *models.User) bool {
	for id, other := range r.byID {
		if id == u.ID {
			continue
		}
		if (u.Username != "" && other.Username == u.Username) ||
			(u.GoogleID != "" && other.GoogleID == u.GoogleID) ||
			(u.FacebookID != "" && other.FacebookID == u.FacebookID) {
			return true
		}
	}
	return false
}

func (r *userRepository) UpsertExternal(ctx context.Context, provider models.Provider, externalID, displayName string) (*models.User, error) {
	if _, ok := models.ExternalIDField(provider); !ok {
		return nil, fmt.Errorf("unknown provider %q", provider)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if u := r.byID[id]; u.ExternalID(provider) == externalID {
			out := copyUser(u)
			return &out, nil
		}
	}

	u := models.User{ID: uuid.NewString(), Profile: models.Profile{Name: displayName}}
	u.SetExternalID(provider, externalID)
	r.byID[u.ID] = u
	r.order = append(r.order, u.ID)
	out := copyUser(u)
	return &out, nil
}

func (r *userRepository) Save(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID]; !ok {
		return fmt.Errorf("user %s: %w", u.ID, repository.ErrNotFound)
	}
	if r.conflicts(u) {
		return repository.ErrDuplicateIdentity
	}
	r.byID[u.ID] = copyUser(*u)
	return nil
}

func (r *userRepository) FindAll(context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, copyUser(r.byID[id]))
	}
	return users, nil
}

type productRepository struct {
	mu    sync.RWMutex
	byID  map[string]models.Product
	order []string
}

func (r *productRepository) FindAll(context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, copyProduct(r.byID[id]))
	}
	return products, nil
}

func (r *productRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}
	out := copyProduct(p)
	return &out, nil
}

func (r *productRepository) Save(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if _, exists := r.byID[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.byID[p.ID] = copyProduct(*p)
	return nil
}

func (r *productRepository) Seed(ctx context.Context, products []models.Product) error {
	r.mu.RLock()
	seeded := len(r.order) > 0
	r.mu.RUnlock()
	if seeded {
		return nil
	}
	for i := range products {
		if err := r.Save(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

func copyUser(u models.User) models.User {
	u.WishList = copySnapshots(u.WishList)
	u.Cart = copySnapshots(u.Cart)
	if u.Orders != nil {
		orders := make([]models.OrderRecord, len(u.Orders))
		for i, o := range u.Orders {
			o.Product.Reviews = copyReviews(o.Product.Reviews)
			orders[i] = o
		}
		u.Orders = orders
	}
	return u
}

func copySnapshots(list []models.ProductSnapshot) []models.ProductSnapshot {
	if list == nil {
		return nil
	}
	out := make([]models.ProductSnapshot, len(list))
	for i, s := range list {
		s.Reviews = copyReviews(s.Reviews)
		out[i] = s
	}
	return out
}

func copyProduct(p models.Product) models.Product {
	p.Reviews = copyReviews(p.Reviews)
	return p
}

func copyReviews(reviews []models.Review) []models.Review {
	if reviews == nil {
		return nil
	}
	out := make([]models.Review, len(reviews))
	for i, r := range reviews {
		if r.Rating != nil {
			v := *r.Rating
			r.Rating = &v
		}
		out[i] = r
	}
	return out
}
