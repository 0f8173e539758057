package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ids(list []ProductSnapshot) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ProductID)
	}
	return out
}

func TestRemoveFirst_OnlyFirstMatch(t *testing.T) {
	list := []ProductSnapshot{{ProductID: "A", Price: 1}, {ProductID: "B"}, {ProductID: "A", Price: 2}}

	out, removed := RemoveFirst(list, "A")

	assert.True(t, removed)
	assert.Equal(t, []string{"B", "A"}, ids(out))
	assert.Equal(t, 2.0, out[1].Price)
	assert.Len(t, list, 3, "input must not be modified")
}

func TestRemoveFirst_NoMatch(t *testing.T) {
	list := []ProductSnapshot{{ProductID: "A"}, {ProductID: "B"}}

	out, removed := RemoveFirst(list, "Z")

	assert.False(t, removed)
	assert.Len(t, out, 2)
}

func TestRemoveFirst_Empty(t *testing.T) {
	out, removed := RemoveFirst(nil, "A")
	assert.False(t, removed)
	assert.Empty(t, out)
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 350.0, TotalPrice([]ProductSnapshot{{Price: 100}, {Price: 250}}))
	assert.Equal(t, 0.3, TotalPrice([]ProductSnapshot{{Price: 0.1}, {Price: 0.2}}))
	assert.Equal(t, 0.0, TotalPrice(nil))
}

func TestNewOrderRecord_FreezesProfile(t *testing.T) {
	profile := Profile{Name: "Asha", MobileNo: "98765", Country: "India", City: "Pune", PostalCode: "411001", HouseNo: "12B", Landmark: "Near park"}
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	rec := NewOrderRecord(ProductSnapshot{ProductID: "p1", Price: 10}, profile, at)
	profile.City = "Mumbai"

	assert.Equal(t, "Pune", rec.CustomerCity)
	assert.Equal(t, "411001", rec.CustomerPostalCode)
	assert.Equal(t, "p1", rec.Product.ProductID)
	assert.Equal(t, at, rec.OrderedAt)
	assert.Contains(t, rec.OrderID, "20240501100000-")
}
