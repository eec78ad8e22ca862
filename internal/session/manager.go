package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/pasarkita/marketplace/internal/config"
	"github.com/pasarkita/marketplace/internal/domain"
)

// Manager ties the server-held Store to the cookie that carries the token.
// The cookie holds nothing but the opaque token.
type Manager struct {
	cookies *sessions.CookieStore
	name    string
	store   Store
}

func NewManager(secret []byte, cookieName string, store Store) *Manager {
	cookies := sessions.NewCookieStore(secret)
	cookies.Options.HttpOnly = true
	cookies.Options.Path = "/"

	return &Manager{
		cookies: cookies,
		name:    cookieName,
		store:   store,
	}
}

func NewManagerFromConfig(conf *config.SessionConfig, redisConf *config.RedisConfig) (*Manager, error) {
	var store Store

	switch conf.Store {
	case "", "memory":
		store = NewMemoryStore()
	case "redis":
		store = NewRedisStore(redisConf.Addr, time.Duration(conf.TTLMinutes)*time.Minute)
	default:
		return nil, fmt.Errorf("unknown session store %q", conf.Store)
	}

	return NewManager([]byte(conf.Secret), conf.CookieName, store), nil
}

// Issue creates a server-side session for user and writes the token cookie.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, r *http.Request, user domain.User) error {
	token, err := m.store.Create(ctx, user)
	if err != nil {
		return fmt.Errorf("m.store.Create -> %w", err)
	}

	cookie, _ := m.cookies.Get(r, m.name)
	cookie.Values["token"] = token
	if err := cookie.Save(r, w); err != nil {
		return fmt.Errorf("cookie.Save -> %w", err)
	}

	return nil
}

// Current resolves the request's session, if any. It is side-effect free.
func (m *Manager) Current(ctx context.Context, r *http.Request) (domain.User, bool) {
	cookie, err := m.cookies.Get(r, m.name)
	if err != nil {
		return domain.User{}, false
	}

	token, ok := cookie.Values["token"].(string)
	if !ok || token == "" {
		return domain.User{}, false
	}

	user, found, err := m.store.Get(ctx, token)
	if err != nil {
		zap.L().Error("session lookup failed", zap.Error(err))
		return domain.User{}, false
	}

	return user, found
}

// Clear destroys the server-side session and expires the cookie.
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, _ := m.cookies.Get(r, m.name)

	if token, ok := cookie.Values["token"].(string); ok && token != "" {
		if err := m.store.Destroy(ctx, token); err != nil {
			return fmt.Errorf("m.store.Destroy -> %w", err)
		}
	}

	cookie.Options.MaxAge = -1
	delete(cookie.Values, "token")
	if err := cookie.Save(r, w); err != nil {
		return fmt.Errorf("cookie.Save -> %w", err)
	}

	return nil
}
