package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	ProductName string    `bson:"productName" json:"productName"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Rating      float64   `bson:"rating" json:"rating"` // base rating shown in listings
	ImgSrc      string    `bson:"imgSrc" json:"imgSrc"`
	Reviews     []Review  `bson:"review" json:"review"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Review is embedded in its product. Rating is nil when the reviewer left it blank.
type Review struct {
	CustomerName string   `bson:"customerName" json:"customerName"`
	Title        string   `bson:"title" json:"title"`
	Rating       *float64 `bson:"rating" json:"rating"`
	Summary      string   `bson:"summary" json:"summary"`
}

// AverageRating averages the non-null review ratings, rounded to 2 places.
// Unrated reviews count towards neither the sum nor the count. The second
// result is the number of rated reviews.
func (p *Product) AverageRating() (float64, int) {
	sum := decimal.Zero
	count := 0
	for _, r := range p.Reviews {
		if r.Rating == nil {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(*r.Rating))
		count++
	}
	if count == 0 {
		return 0, 0
	}
	avg := sum.Div(decimal.NewFromInt(int64(count))).Round(2)
	return avg.InexactFloat64(), count
}

// Snapshot copies the fields a wish list, cart or order entry keeps of p.
func (p *Product) Snapshot() ProductSnapshot {
	reviews := make([]Review, len(p.Reviews))
	copy(reviews, p.Reviews)
	return ProductSnapshot{
		ProductID:   p.ID,
		ProductName: p.ProductName,
		Rating:      p.Rating,
		Reviews:     reviews,
		Price:       p.Price,
		ImgSrc:      p.ImgSrc,
	}
}
