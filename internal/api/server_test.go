package api_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pasarkita/marketplace/internal/api"
	"github.com/pasarkita/marketplace/internal/config"
	"github.com/pasarkita/marketplace/internal/repository/dao"
	"github.com/pasarkita/marketplace/internal/session"
)

func newTestServer(t *testing.T) (*api.Server, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Port:               "3000",
			Environment:        "test",
			AllowedCORSDomains: "http://localhost:3000",
			TemplatesGlob:      "../../web/templates/*.html",
		},
		Gin: &config.GinConfig{Mode: "test"},
		Session: &config.SessionConfig{
			CookieName: "app-session",
			Secret:     "test-secret",
			Store:      "memory",
		},
		Redis: &config.RedisConfig{},
	}

	sessions, err := session.NewManagerFromConfig(conf.Session, conf.Redis)
	require.NoError(t, err)

	return api.NewServer(conf, db, sessions), db
}

// client drives the router like a cookie-keeping browser.
type client struct {
	t       *testing.T
	server  *api.Server
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, s *api.Server) *client {
	return &client{
		t:       t,
		server:  s,
		cookies: make(map[string]*http.Cookie),
	}
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, nil)
}

func (c *client) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, path, form)
}

func (c *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	c.server.Router.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}

	return rec
}

func (c *client) registerAndLogin(username, password string) {
	c.t.Helper()

	rec := c.postForm("/register", url.Values{"username": {username}, "password": {password}})
	require.Equal(c.t, http.StatusSeeOther, rec.Code)
	require.Equal(c.t, "/login", rec.Header().Get("Location"))

	rec = c.postForm("/login", url.Values{"username": {username}, "password": {password}})
	require.Equal(c.t, http.StatusSeeOther, rec.Code)
	require.Equal(c.t, "/users", rec.Header().Get("Location"))
}

func TestPublicRoutes(t *testing.T) {
	s, _ := newTestServer(t)
	c := newClient(t, s)

	for _, path := range []string{"/", "/register", "/login", "/healthcheck", "/metrics"} {
		rec := c.get(path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGuardRedirectsWithoutSession(t *testing.T) {
	s, db := newTestServer(t)
	c := newClient(t, s)

	guarded := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodPost, "/users/add"},
		{http.MethodGet, "/sellers"},
		{http.MethodPost, "/sellers/add"},
		{http.MethodGet, "/buyers"},
		{http.MethodPost, "/buyers/add"},
		{http.MethodGet, "/prices"},
		{http.MethodGet, "/stocks"},
		{http.MethodPost, "/logout"},
	}

	for _, route := range guarded {
		rec := c.do(route.method, route.path, url.Values{"name": {"Acme"}})
		assert.Equal(t, http.StatusSeeOther, rec.Code, route.path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), route.path)
	}

	// Diverted requests must not have touched the store.
	sellers, err := dao.NewSellerDAO(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sellers)
}

func TestRegisterThenLogin(t *testing.T) {
	s, _ := newTestServer(t)
	c := newClient(t, s)

	c.registerAndLogin("alice", "secret123")

	rec := c.get("/users")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s, db := newTestServer(t)
	c := newClient(t, s)

	rec := c.postForm("/register", url.Values{"username": {"alice"}, "password": {"secret123"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = c.postForm("/register", url.Values{"username": {"alice"}, "password": {"secret123"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username sudah terdaftar")

	users, err := dao.NewUserDAO(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLoginFailuresRenderSameMessage(t *testing.T) {
	s, _ := newTestServer(t)
	c := newClient(t, s)

	rec := c.postForm("/register", url.Values{"username": {"alice"}, "password": {"secret123"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	wrongPassword := c.postForm("/login", url.Values{"username": {"alice"}, "password": {"nope"}})
	unknownUser := c.postForm("/login", url.Values{"username": {"nobody"}, "password": {"secret123"}})

	require.Equal(t, http.StatusOK, wrongPassword.Code)
	require.Equal(t, http.StatusOK, unknownUser.Code)
	assert.Contains(t, wrongPassword.Body.String(), "Username atau password salah")
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestSellerLifecycle(t *testing.T) {
	s, _ := newTestServer(t)
	c := newClient(t, s)
	c.registerAndLogin("alice", "secret123")

	rec := c.postForm("/sellers/add", url.Values{"name": {"Acme"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/sellers", rec.Header().Get("Location"))

	rec = c.get("/sellers")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, strings.Count(rec.Body.String(), "Acme"))

	rec = c.get("/sellers/edit/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme")

	rec = c.postForm("/sellers/edit/1", url.Values{"name": {"Acme Corp"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = c.get("/sellers")
	assert.Contains(t, rec.Body.String(), "Acme Corp")

	rec = c.postForm("/sellers/delete/1", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = c.get("/sellers")
	assert.NotContains(t, rec.Body.String(), "Acme")
}

func TestSellerDeleteIsIdempotent(t *testing.T) {
	s, db := newTestServer(t)
	c := newClient(t, s)
	c.registerAndLogin("alice", "secret123")

	rec := c.postForm("/sellers/add", url.Values{"name": {"Acme"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// Deleting a nonexistent id still redirects and changes nothing.
	rec = c.postForm("/sellers/delete/999", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	sellers, err := dao.NewSellerDAO(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, sellers, 1)
}

func TestSellerEditUnknownIDIsNoop(t *testing.T) {
	s, db := newTestServer(t)
	c := newClient(t, s)
	c.registerAndLogin("alice", "secret123")

	rec := c.postForm("/sellers/edit/999", url.Values{"name": {"Ghost"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	sellers, err := dao.NewSellerDAO(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sellers)
}

func TestSellerAddRequiresName(t *testing.T) {
	s, db := newTestServer(t)
	c := newClient(t, s)
	c.registerAndLogin("alice", "secret123")

	rec := c.postForm("/sellers/add", url.Values{"name": {""}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cannot be blank")

	sellers, err := dao.NewSellerDAO(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sellers)
}

func TestUserEditAndDelete(t *testing.T) {
	s, db := newTestServer(t)
	c := newClient(t, s)
	c.registerAndLogin("alice", "secret123")

	rec := c.postForm("/users/add", url.Values{"username": {"bob"}, "password": {"hunter2"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = c.postForm("/users/edit/2", url.Values{"username": {"robert"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = c.get("/users")
	assert.Contains(t, rec.Body.String(), "robert")
	assert.NotContains(t, rec.Body.String(), `value="bob"`)

	rec = c.postForm("/users/delete/2", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	users, err := dao.NewUserDAO(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestBuyersPricesStocks(t *testing.T) {
	s, _ := newTestServer(t)
	c := newClient(t, s)
	c.registerAndLogin("alice", "secret123")

	rec := c.postForm("/buyers/add", url.Values{"name": {"Budi"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/buyers", rec.Header().Get("Location"))
	assert.Contains(t, c.get("/buyers").Body.String(), "Budi")

	rec = c.postForm("/prices/add", url.Values{"price": {"19.99"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/prices", rec.Header().Get("Location"))
	assert.Contains(t, c.get("/prices").Body.String(), "19.99")

	rec = c.postForm("/stocks/add", url.Values{"product_name": {"beras"}, "quantity": {"50"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/stocks", rec.Header().Get("Location"))
	body := c.get("/stocks").Body.String()
	assert.Contains(t, body, "beras")
	assert.Contains(t, body, "50")
}

func TestStocksAddRejectsNonNumericQuantity(t *testing.T) {
	s, db := newTestServer(t)
	c := newClient(t, s)
	c.registerAndLogin("alice", "secret123")

	rec := c.postForm("/stocks/add", url.Values{"product_name": {"beras"}, "quantity": {"lots"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quantity must be a number")

	stocks, err := dao.NewStockDAO(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stocks)
}

func TestLogoutEndsSession(t *testing.T) {
	s, _ := newTestServer(t)
	c := newClient(t, s)
	c.registerAndLogin("alice", "secret123")

	rec := c.postForm("/logout", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	rec = c.get("/users")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
