package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository/memory"
	"github.com/junaidrashid-git/storefront/services"
	"github.com/junaidrashid-git/storefront/session"
)

type fakeProvider struct {
	identity Identity
	err      error
}

func (f *fakeProvider) Name() models.Provider { return models.ProviderGoogle }

func (f *fakeProvider) AuthCodeURL(state string) string {
	return "https://accounts.example/authorize?state=" + url.QueryEscape(state)
}

func (f *fakeProvider) Identify(context.Context, string) (Identity, error) {
	return f.identity, f.err
}

type harness struct {
	router   *gin.Engine
	store    *memory.Store
	sessions *session.Manager
}

func newHarness(p Provider) *harness {
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	sessions := session.NewManager("test-secret", time.Hour, nil)

	r := gin.New()
	r.GET("/auth/google", Begin(p))
	r.GET("/auth/google/userPage", Callback(p, services.NewAccounts(store.Users()), sessions))
	return &harness{router: r, store: store, sessions: sessions}
}

func (h *harness) begin(t *testing.T) (state string, cookie *http.Cookie) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/google", nil))
	require.Equal(t, http.StatusFound, rec.Code)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	state = loc.Query().Get("state")
	require.NotEmpty(t, state)

	for _, c := range rec.Result().Cookies() {
		if c.Name == stateCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, state, cookie.Value)
	return state, cookie
}

func (h *harness) callback(query string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/auth/google/userPage?"+query, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}
	return nil
}

func TestCallback_CreatesUserAndSession(t *testing.T) {
	h := newHarness(&fakeProvider{identity: Identity{ExternalID: "g-1", DisplayName: "Asha"}})

	state, cookie := h.begin(t)
	rec := h.callback("code=abc&state="+state, cookie)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userPage", rec.Header().Get("Location"))

	sc := sessionCookie(rec)
	require.NotNil(t, sc)
	userID, err := h.sessions.Resolve(context.Background(), sc.Value)
	require.NoError(t, err)

	user, err := h.store.Users().FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "g-1", user.GoogleID)
	assert.Equal(t, "Asha", user.Profile.Name)
}

func TestCallback_SameIdentityReusesUser(t *testing.T) {
	h := newHarness(&fakeProvider{identity: Identity{ExternalID: "g-1", DisplayName: "Asha"}})

	for i := 0; i < 2; i++ {
		state, cookie := h.begin(t)
		rec := h.callback("code=abc&state="+state, cookie)
		require.Equal(t, "/userPage", rec.Header().Get("Location"))
	}

	users, err := h.store.Users().FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCallback_Failures(t *testing.T) {
	t.Run("state mismatch", func(t *testing.T) {
		h := newHarness(&fakeProvider{identity: Identity{ExternalID: "g-1"}})
		_, cookie := h.begin(t)
		rec := h.callback("code=abc&state=forged", cookie)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Nil(t, sessionCookie(rec))
	})

	t.Run("missing state cookie", func(t *testing.T) {
		h := newHarness(&fakeProvider{identity: Identity{ExternalID: "g-1"}})
		state, _ := h.begin(t)
		rec := h.callback("code=abc&state="+state, nil)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("provider denied", func(t *testing.T) {
		h := newHarness(&fakeProvider{identity: Identity{ExternalID: "g-1"}})
		state, cookie := h.begin(t)
		rec := h.callback("error=access_denied&state="+state, cookie)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("identify error", func(t *testing.T) {
		h := newHarness(&fakeProvider{err: errors.New("boom")})
		state, cookie := h.begin(t)
		rec := h.callback("code=abc&state="+state, cookie)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		users, err := h.store.Users().FindAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
