package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"lexify/models"
	"lexify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configures the session cookie. It is built once at startup.
type Options struct {
	Secret     []byte
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// Manager ties the browser cookie to a stored session record.
type Manager struct {
	store Store
	opts  Options
}

func NewManager(client *redis.Client, opts Options) *Manager {
	return NewManagerWithStore(NewRedisStore(client), opts)
}

func NewManagerWithStore(store Store, opts Options) *Manager {
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if opts.CookieName == "" {
		opts.CookieName = "lexify_session"
	}
	return &Manager{store: store, opts: opts}
}

// Login stores a fresh record for the principal and sets the cookie.
// Any session the browser already carried is dropped.
func (m *Manager) Login(c *gin.Context, p *models.Principal) error {
	if p == nil {
		return errors.New("nil principal")
	}
	if sid, err := m.sessionID(c); err == nil {
		if err := m.store.Delete(c.Request.Context(), sid); err != nil {
			utils.GetLogger().Warn("Login: failed to drop previous session", zap.Error(err))
		}
	}

	sid := uuid.New().String()
	if err := m.store.Save(c.Request.Context(), sid, Serialize(p), m.opts.TTL); err != nil {
		return err
	}
	token, err := utils.GenerateSessionToken(m.opts.Secret, sid, m.opts.TTL)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, token, int(m.opts.TTL.Seconds()), "/", "", m.opts.Secure, true)
	return nil
}

// Current returns the identity of the request's session.
func (m *Manager) Current(c *gin.Context) (*models.Identity, error) {
	sid, err := m.sessionID(c)
	if err != nil {
		return nil, err
	}
	rec, err := m.store.Load(c.Request.Context(), sid)
	if err != nil {
		return nil, err
	}
	identity := Deserialize(*rec)
	return &identity, nil
}

// Logout destroys the session record and clears the cookie.
func (m *Manager) Logout(c *gin.Context) error {
	var err error
	if sid, sidErr := m.sessionID(c); sidErr == nil {
		err = m.store.Delete(c.Request.Context(), sid)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, "", -1, "/", "", m.opts.Secure, true)
	return err
}

func (m *Manager) sessionID(c *gin.Context) (string, error) {
	token, err := c.Cookie(m.opts.CookieName)
	if err != nil || token == "" {
		return "", ErrNoSession
	}
	sid, err := utils.ExtractSessionID(m.opts.Secret, token)
	if err != nil {
		return "", ErrNoSession
	}
	return sid, nil
}
