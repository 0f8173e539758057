package services

import (
	"context"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
)

// ProductDetails is a product with its review aggregate.
type ProductDetails struct {
	Product       *models.Product
	AverageRating float64
	RatedReviews  int
}

type Catalog struct {
	products repository.ProductRepository
}

func NewCatalog(products repository.ProductRepository) *Catalog {
	return &Catalog{products: products}
}

func (c *Catalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	ctx, span := tracer.Start(ctx, "Catalog.ListProducts")
	defer span.End()

	return c.products.FindAll(ctx)
}

// GetProduct fails with repository.ErrNotFound for unknown ids.
func (c *Catalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return c.products.FindByID(ctx, id)
}

func (c *Catalog) ProductDetails(ctx context.Context, id string) (*ProductDetails, error) {
	ctx, span := tracer.Start(ctx, "Catalog.ProductDetails")
	defer span.End()

	p, err := c.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	avg, rated := ComputeAverageRating(p)
	return &ProductDetails{Product: p, AverageRating: avg, RatedReviews: rated}, nil
}

// CreateProduct stores a new catalog entry.
func (c *Catalog) CreateProduct(ctx context.Context, p *models.Product) error {
	p.ID = ""
	return c.products.Save(ctx, p)
}

// ComputeAverageRating returns the 2-place mean of the rated reviews and how
// many there were; 0 when none are rated.
func ComputeAverageRating(p *models.Product) (float64, int) {
	return p.AverageRating()
}

// SaveProduct inserts p, or replaces the product with p's id.
func (c *Catalog) SaveProduct(ctx context.Context, p *models.Product) error {
	return c.products.Save(ctx, p)
}
