// Package session implements admin sessions with server-side tokens. The
// default store is in memory; when a redis client is supplied, sessions are
// shared across instances alongside the rate-limit window.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	redis "github.com/redis/go-redis/v9"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

const (
	adminIDKey   = "adminID"
	adminNameKey = "adminName"
)

// Manager wraps scs and exposes the SessionManager port. LoadAndSave from
// the embedded manager must wrap the router.
type Manager struct {
	*scs.SessionManager
}

var _ ports.SessionManager = (*Manager)(nil)

func NewManager(lifetime time.Duration, client *redis.Client) *Manager {
	sm := scs.New()
	sm.Lifetime = lifetime
	sm.Cookie.Name = "acda_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode

	if client != nil {
		sm.Store = goredisstore.New(client)
	}

	return &Manager{SessionManager: sm}
}

// SignIn rotates the session token and binds the admin to it.
func (m *Manager) SignIn(ctx context.Context, admin *domain.Admin) error {
	if err := m.RenewToken(ctx); err != nil {
		return err
	}
	m.Put(ctx, adminIDKey, admin.ID.Hex())
	m.Put(ctx, adminNameKey, admin.Username)
	return nil
}

func (m *Manager) SignOut(ctx context.Context) error {
	return m.Destroy(ctx)
}

func (m *Manager) Principal(ctx context.Context) (domain.Principal, bool) {
	id := m.GetString(ctx, adminIDKey)
	if id == "" {
		return domain.Principal{}, false
	}
	return domain.Principal{ID: id, Name: m.GetString(ctx, adminNameKey)}, true
}
