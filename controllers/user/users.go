package userControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/middleware"
	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
	"github.com/junaidrashid-git/storefront/services"
	"github.com/junaidrashid-git/storefront/session"
)

// Page renders a template that needs no data.
func Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, gin.H{})
	}
}

// POST /register
func Register(accounts *services.Accounts, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := models.Profile{
			Name:     c.PostForm("shubhNaam"),
			MobileNo: c.PostForm("MobNo"),
		}

		user, err := accounts.Register(c.Request.Context(), c.PostForm("username"), c.PostForm("password"), profile)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateIdentity) {
				log.Printf("❌ Username %q already registered", c.PostForm("username"))
			} else {
				log.Printf("❌ Registration failed: %v", err)
			}
			c.Redirect(http.StatusFound, "/")
			return
		}

		if err := middleware.StartSession(c, sessions, user.ID); err != nil {
			log.Printf("❌ Failed to start session: %v", err)
			c.Redirect(http.StatusFound, "/")
			return
		}
		log.Printf("✅ Registered user %s", user.ID)
		c.Redirect(http.StatusFound, "/userPage")
	}
}

// POST /login
func Login(accounts *services.Accounts, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := accounts.Login(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
		if err != nil {
			if !errors.Is(err, services.ErrInvalidCredentials) && !errors.Is(err, services.ErrMissingCredentials) {
				log.Printf("❌ Login failed: %v", err)
			}
			c.Redirect(http.StatusFound, "/login")
			return
		}

		if err := middleware.StartSession(c, sessions, user.ID); err != nil {
			log.Printf("❌ Failed to start session: %v", err)
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.Redirect(http.StatusFound, "/userPage")
	}
}

// GET /logout
func Logout(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := middleware.EndSession(c, sessions); err != nil {
			log.Printf("❌ Failed to revoke session: %v", err)
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// GET /address
func Address(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "address.html", gin.H{
		"person":    user.Profile.Name,
		"foundUser": user,
	})
}

// POST /address
func UpdateAddress(shop *services.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		profile := models.Profile{
			Name:       c.PostForm("personName"),
			MobileNo:   c.PostForm("personMobNo"),
			Country:    c.PostForm("country"),
			PostalCode: c.PostForm("pincode"),
			City:       c.PostForm("city"),
			HouseNo:    c.PostForm("houseNo"),
			Landmark:   c.PostForm("landmark"),
		}
		if err := shop.UpdateAddress(c.Request.Context(), user, profile); err != nil {
			log.Printf("❌ Failed to update address: %v", err)
			c.Redirect(http.StatusFound, "/")
			return
		}

		c.Redirect(http.StatusFound, "/address")
	}
}

// UserSummary is the admin view of a user: public fields only.
type UserSummary struct {
	ID        string    `json:"id"`
	Username  string    `json:"username,omitempty"`
	Name      string    `json:"name"`
	Providers []string  `json:"providers"`
	WishList  int       `json:"wishListCount"`
	Cart      int       `json:"cartCount"`
	Orders    int       `json:"orderCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// GET /admin/users
func GetAllUsers(accounts *services.Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := accounts.Users(c.Request.Context())
		if err != nil {
			log.Printf("❌ Failed to list users: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		out := make([]UserSummary, 0, len(users))
		for i := range users {
			out = append(out, summarize(&users[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

func summarize(u *models.User) UserSummary {
	providers := []string{}
	if u.Username != "" {
		providers = append(providers, "local")
	}
	for _, p := range []models.Provider{models.ProviderGoogle, models.ProviderFacebook} {
		if u.ExternalID(p) != "" {
			providers = append(providers, string(p))
		}
	}
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Profile.Name,
		Providers: providers,
		WishList:  len(u.WishList),
		Cart:      len(u.Cart),
		Orders:    len(u.Orders),
		CreatedAt: u.CreatedAt,
	}
}
