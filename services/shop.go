package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
)

// ListName selects one of a user's product lists.
type ListName string

const (
	WishList ListName = "wishlist"
	Cart     ListName = "cart"
)

// OrderNotifier is told about every batch of orders once it is saved.
type OrderNotifier interface {
	OrdersPlaced(userID string, orders []models.OrderRecord)
}

// Shop mutates a user's wish list, cart and orders. Each call works on the
// user document loaded for the current request and saves it back whole; two
// concurrent requests for the same user can overwrite each other.
type Shop struct {
	users    repository.UserRepository
	products repository.ProductRepository
	notifier OrderNotifier
	now      func() time.Time
}

// NewShop wires a Shop. notifier may be nil.
func NewShop(users repository.UserRepository, products repository.ProductRepository, notifier OrderNotifier) *Shop {
	return &Shop{users: users, products: products, notifier: notifier, now: time.Now}
}

func (s *Shop) list(u *models.User, name ListName) (*[]models.ProductSnapshot, error) {
	switch name {
	case WishList:
		return &u.WishList, nil
	case Cart:
		return &u.Cart, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
}

// AddToList appends a snapshot of the product. Repeated adds of the same
// product accumulate.
func (s *Shop) AddToList(ctx context.Context, name ListName, u *models.User, productID string) error {
	ctx, span := tracer.Start(ctx, "Shop.AddToList", trace.WithAttributes(
		attribute.String("list", string(name)),
		attribute.String("product.id", productID),
	))
	defer span.End()

	list, err := s.list(u, name)
	if err != nil {
		return err
	}
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	*list = append(*list, p.Snapshot())
	return s.users.Save(ctx, u)
}

// RemoveFromList removes the first entry for productID. A product that is not
// in the list leaves the document untouched and is not an error.
func (s *Shop) RemoveFromList(ctx context.Context, name ListName, u *models.User, productID string) error {
	ctx, span := tracer.Start(ctx, "Shop.RemoveFromList", trace.WithAttributes(
		attribute.String("list", string(name)),
		attribute.String("product.id", productID),
	))
	defer span.End()

	list, err := s.list(u, name)
	if err != nil {
		return err
	}
	out, removed := models.RemoveFirst(*list, productID)
	if !removed {
		return nil
	}
	*list = out
	return s.users.Save(ctx, u)
}

// PlaceOrderDirect orders one product as it is in the catalog right now.
func (s *Shop) PlaceOrderDirect(ctx context.Context, u *models.User, productID string) (models.OrderRecord, error) {
	ctx, span := tracer.Start(ctx, "Shop.PlaceOrderDirect", trace.WithAttributes(
		attribute.String("product.id", productID),
	))
	defer span.End()

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return models.OrderRecord{}, err
	}

	order := models.NewOrderRecord(p.Snapshot(), u.Profile, s.now())
	u.Orders = append(u.Orders, order)
	if err := s.users.Save(ctx, u); err != nil {
		return models.OrderRecord{}, err
	}

	s.notify(u.ID, []models.OrderRecord{order})
	return order, nil
}

// PlaceOrderFromCart orders every cart entry from its snapshot, with the
// delivery details frozen once for the whole batch. The cart is left as it
// was.
func (s *Shop) PlaceOrderFromCart(ctx context.Context, u *models.User) ([]models.OrderRecord, error) {
	ctx, span := tracer.Start(ctx, "Shop.PlaceOrderFromCart", trace.WithAttributes(
		attribute.Int("cart.size", len(u.Cart)),
	))
	defer span.End()

	at := s.now()
	profile := u.Profile
	orders := make([]models.OrderRecord, 0, len(u.Cart))
	for _, item := range u.Cart {
		orders = append(orders, models.NewOrderRecord(item, profile, at))
	}

	u.Orders = append(u.Orders, orders...)
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	s.notify(u.ID, orders)
	return orders, nil
}

// UpdateAddress overwrites the profile fields. Nothing is validated.
func (s *Shop) UpdateAddress(ctx context.Context, u *models.User, profile models.Profile) error {
	ctx, span := tracer.Start(ctx, "Shop.UpdateAddress")
	defer span.End()

	u.Profile = profile
	return s.users.Save(ctx, u)
}

func (s *Shop) notify(userID string, orders []models.OrderRecord) {
	if s.notifier != nil && len(orders) > 0 {
		s.notifier.OrdersPlaced(userID, orders)
	}
}

// CartTotal sums the snapshot prices of a list.
func CartTotal(list []models.ProductSnapshot) float64 {
	return models.TotalPrice(list)
}
