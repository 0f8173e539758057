package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront/models"
)

func TestLoad_AllPagesPresent(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	for _, page := range []string{
		"Home.html", "userHome.html", "userPage.html", "login.html", "register.html",
		"workInProgress.html", "thankYou.html", "address.html", "wishList.html",
		"myOrders.html", "userCart.html", "placeOrder.html", "productDetails.html",
		"productDetailsTwo.html", "buyNow.html",
	} {
		assert.NotNil(t, tmpl.Lookup(page), page)
	}
}

func TestUserCart_ShowsSum(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "userCart.html", map[string]any{
		"person": "Asha",
		"list": []models.ProductSnapshot{
			{ProductID: "a", ProductName: "Kettle", Price: 100},
			{ProductID: "b", ProductName: "Lamp", Price: 250},
		},
		"sum": 350.0,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Total: ₹350")
	assert.Contains(t, buf.String(), "Kettle")
}

func TestProductDetails_RendersReviews(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	five := 5.0
	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "productDetailsTwo.html", map[string]any{
		"product": &models.Product{ID: "p1", ProductName: "Phone", Price: 10000},
		"reviewList": []models.Review{
			{CustomerName: "Ravi", Title: "Great", Rating: &five},
			{CustomerName: "Meera", Title: "Unrated"},
		},
		"avgRating":  5.0,
		"countItems": 1,
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "1 rated, average 5.00")
	assert.Contains(t, out, "Unrated")
}

func TestMyOrders_FormatsDate(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	at := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "myOrders.html", map[string]any{
		"person": "Asha",
		"list":   []models.OrderRecord{models.NewOrderRecord(models.ProductSnapshot{ProductID: "p1", ProductName: "Phone"}, models.Profile{}, at)},
		"count":  1,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ordered 09 Mar 2024")
	assert.Contains(t, buf.String(), "My Orders (1)")
}

func TestLogin_LinksEnabledProvidersOnly(t *testing.T) {
	tmpl, err := Load(models.ProviderGoogle)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "login.html", nil))
	assert.Contains(t, buf.String(), `<a href="/auth/google">Sign in with Google</a>`)
	assert.NotContains(t, buf.String(), "/auth/facebook")

	tmpl, err = Load()
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "login.html", nil))
	assert.NotContains(t, buf.String(), "/auth/")
}
