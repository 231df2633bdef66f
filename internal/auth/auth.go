// Package auth signs demo users in against a static credential table and
// caches the signed-in user so the next start skips the login screen.
package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/vidyasagar/xbank/internal/bank"
	"golang.org/x/crypto/bcrypt"
)

// CacheKey is the key the signed-in user is stored under.
const CacheKey = "bankUser"

var (
	// ErrMissingFields is returned when e-mail or password is blank.
	ErrMissingFields = errors.New("auth: e-mail and password are required")
	// ErrInvalidCredentials is returned when no user matches.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)

// User is the cached public part of an account.
type User struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	CPF     string     `json:"cpf"`
	Balance bank.Cents `json:"balance"`
}

// FirstName returns the first word of the user's name.
func (u User) FirstName() string {
	if i := strings.IndexByte(u.Name, ' '); i > 0 {
		return u.Name[:i]
	}
	return u.Name
}

// Store persists the cached user record.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type account struct {
	user User
	hash []byte
}

// Service holds the credential table and the current session.
type Service struct {
	accounts  []account
	store     Store
	logger    *slog.Logger
	user      *User
	sessionID string
	onLogout  []func()
}

// NewService creates a service over the demo accounts.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		accounts: demoAccounts(),
		store:    store,
		logger:   logger,
	}
}

func demoAccounts() []account {
	return []account{
		{
			user: User{ID: "1", Name: "João Silva", Email: "joao@email.com", CPF: "123.456.789-10", Balance: 1575050},
			hash: mustHash("123456"),
		},
		{
			user: User{ID: "2", Name: "Maria Santos", Email: "maria@email.com", CPF: "987.654.321-00", Balance: 832075},
			hash: mustHash("123456"),
		},
	}
}

func mustHash(password string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return h
}

// Restore loads the cached user, if any, and starts a session for it.
// A corrupt cache entry is dropped and treated as signed out.
func (s *Service) Restore() (*User, bool) {
	data, ok, err := s.store.Get(CacheKey)
	if err != nil {
		s.logger.Error("loading cached user", "err", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		s.logger.Warn("dropping malformed cached user", "err", err)
		if err := s.store.Delete(CacheKey); err != nil {
			s.logger.Error("removing cached user", "err", err)
		}
		return nil, false
	}

	s.start(&u)
	s.logger.Info("session restored", "user", u.ID, "session", s.sessionID)
	return &u, true
}

// Login checks the credentials and starts a session.
func (s *Service) Login(email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	for _, a := range s.accounts {
		if a.user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
			break
		}

		u := a.user
		s.start(&u)
		if data, err := json.Marshal(u); err != nil {
			s.logger.Error("encoding user", "err", err)
		} else if err := s.store.Set(CacheKey, data); err != nil {
			s.logger.Error("saving user to storage", "err", err)
		}
		s.logger.Info("login", "user", u.ID, "session", s.sessionID)
		return &u, nil
	}

	s.logger.Warn("login failed", "email", email)
	return nil, ErrInvalidCredentials
}

// Logout ends the session, forgets the cached user and runs the logout hooks.
func (s *Service) Logout() {
	if s.user == nil {
		return
	}
	s.logger.Info("logout", "user", s.user.ID, "session", s.sessionID)

	s.user = nil
	s.sessionID = ""
	if err := s.store.Delete(CacheKey); err != nil {
		s.logger.Error("removing user from storage", "err", err)
	}
	for _, fn := range s.onLogout {
		fn()
	}
}

// OnLogout registers fn to run when the session ends.
func (s *Service) OnLogout(fn func()) {
	s.onLogout = append(s.onLogout, fn)
}

// User returns the signed-in user, or nil.
func (s *Service) User() *User {
	return s.user
}

// IsAuthenticated reports whether a session is active.
func (s *Service) IsAuthenticated() bool {
	return s.user != nil
}

// SessionID identifies the current session; empty when signed out.
func (s *Service) SessionID() string {
	return s.sessionID
}

func (s *Service) start(u *User) {
	s.user = u
	s.sessionID = uuid.NewString()
}
