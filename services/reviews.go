package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
)

type Reviews struct {
	products repository.ProductRepository
}

func NewReviews(products repository.ProductRepository) *Reviews {
	return &Reviews{products: products}
}

// PostReview appends a review signed with the user's display name. Purchases
// are not checked and a user may review the same product repeatedly.
func (r *Reviews) PostReview(ctx context.Context, u *models.User, productID, title string, rating *float64, summary string) error {
	ctx, span := tracer.Start(ctx, "Reviews.PostReview")
	defer span.End()

	p, err := r.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	p.Reviews = append(p.Reviews, models.Review{
		CustomerName: u.Profile.Name,
		Title:        title,
		Rating:       rating,
		Summary:      summary,
	})
	return r.products.Save(ctx, p)
}

// ParseRating reads a form rating; blank or non-numeric input is no rating.
func ParseRating(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
