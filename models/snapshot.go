package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSnapshot is a by-value copy of a product taken when it was added to a
// list. Later product edits never reach it.
type ProductSnapshot struct {
	ProductID   string   `bson:"productID" json:"productID"`
	ProductName string   `bson:"productName" json:"productName"`
	Rating      float64  `bson:"rating" json:"rating"`
	Reviews     []Review `bson:"review" json:"review"`
	Price       float64  `bson:"price" json:"price"`
	ImgSrc      string   `bson:"imgSrc" json:"imgSrc"`
}

// OrderRecord is a purchased snapshot plus the delivery details the customer
// had when ordering.
type OrderRecord struct {
	OrderID   string          `bson:"orderId" json:"orderId"`
	Product   ProductSnapshot `bson:",inline" json:"product"`
	OrderedAt time.Time       `bson:"date" json:"date"`

	CustomerName       string `bson:"customerName" json:"customerName"`
	CustomerMobileNo   string `bson:"customerMobileNo" json:"customerMobileNo"`
	CustomerCountry    string `bson:"customerCountry" json:"customerCountry"`
	CustomerPostalCode string `bson:"customerPinCode" json:"customerPinCode"`
	CustomerCity       string `bson:"customerCity" json:"customerCity"`
	CustomerHouseNo    string `bson:"customerHouseNo" json:"customerHouseNo"`
	CustomerLandmark   string `bson:"customerLandmark" json:"customerLandmark"`
}

// NewOrderRecord freezes profile into a new order for snap.
func NewOrderRecord(snap ProductSnapshot, profile Profile, at time.Time) OrderRecord {
	return OrderRecord{
		OrderID:            at.Format("20060102150405") + "-" + uuid.NewString(),
		Product:            snap,
		OrderedAt:          at,
		CustomerName:       profile.Name,
		CustomerMobileNo:   profile.MobileNo,
		CustomerCountry:    profile.Country,
		CustomerPostalCode: profile.PostalCode,
		CustomerCity:       profile.City,
		CustomerHouseNo:    profile.HouseNo,
		CustomerLandmark:   profile.Landmark,
	}
}

// RemoveFirst drops the first entry whose ProductID is id. The bool reports
// whether anything was removed; the list is returned unchanged otherwise.
func RemoveFirst(list []ProductSnapshot, id string) ([]ProductSnapshot, bool) {
	for i := range list {
		if list[i].ProductID == id {
			out := make([]ProductSnapshot, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...), true
		}
	}
	return list, false
}

// TotalPrice sums the prices of a list.
func TotalPrice(list []ProductSnapshot) float64 {
	sum := decimal.Zero
	for _, item := range list {
		sum = sum.Add(decimal.NewFromFloat(item.Price))
	}
	return sum.InexactFloat64()
}
