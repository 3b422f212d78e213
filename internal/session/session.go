// Package session holds the signed-in principal and tells subscribers when it changes.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const leeway = 30 * time.Second

// Principal exposes the current user id, if any.
type Principal interface {
	UserID() (uuid.UUID, bool)
}

// Manager keeps the current access token. It is safe for concurrent use.
type Manager struct {
	signKey []byte
	now     func() time.Time
	log     *zap.Logger

	mu     sync.Mutex
	token  string
	userID uuid.UUID
	exp    time.Time
	subs   map[int]func(uuid.UUID)
	nextID int
}

var _ Principal = (*Manager)(nil)

// NewManager constructs a Manager that accepts HS256 tokens signed with signKey.
func NewManager(signKey []byte, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{signKey: signKey, now: time.Now, log: log, subs: map[int]func(uuid.UUID){}}
}

// SignIn validates token and makes its subject the current principal.
func (m *Manager) SignIn(token string) error {
	id, exp, err := m.parse(token)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}
	m.mu.Lock()
	prev := m.userID
	m.token, m.userID, m.exp = token, id, exp
	m.mu.Unlock()

	if prev != id {
		m.log.Info("principal changed", zap.String("user_id", id.String()))
		m.notify(id)
	}
	return nil
}

// SignOut drops the current principal.
func (m *Manager) SignOut() {
	m.mu.Lock()
	prev := m.userID
	m.token, m.userID, m.exp = "", uuid.Nil, time.Time{}
	m.mu.Unlock()

	if prev != uuid.Nil {
		m.log.Info("signed out")
		m.notify(uuid.Nil)
	}
}

// UserID returns the current principal. The first call that finds the token
// expired signs the principal out and notifies subscribers with uuid.Nil.
func (m *Manager) UserID() (uuid.UUID, bool) {
	m.mu.Lock()
	if m.userID == uuid.Nil {
		m.mu.Unlock()
		return uuid.Nil, false
	}
	if m.now().Before(m.exp.Add(leeway)) {
		id := m.userID
		m.mu.Unlock()
		return id, true
	}
	m.token, m.userID, m.exp = "", uuid.Nil, time.Time{}
	m.mu.Unlock()

	m.log.Info("access token expired")
	m.notify(uuid.Nil)
	return uuid.Nil, false
}

// Token returns the raw access token ("" when signed out).
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Subscribe registers fn to be called with the new principal id (uuid.Nil on sign-out)
// whenever it changes. Calls happen synchronously on the goroutine that changed it.
func (m *Manager) Subscribe(fn func(uuid.UUID)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *Manager) notify(id uuid.UUID) {
	m.mu.Lock()
	fns := make([]func(uuid.UUID), 0, len(m.subs))
	for i := 0; i < m.nextID; i++ {
		if fn, ok := m.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(id)
	}
}

func (m *Manager) parse(token string) (uuid.UUID, time.Time, error) {
	if token == "" {
		return uuid.Nil, time.Time{}, errors.New("empty token")
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	id, err := uuid.FromString(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, time.Time{}, errors.New("bad subject")
	}
	return id, claims.ExpiresAt.Time, nil
}
