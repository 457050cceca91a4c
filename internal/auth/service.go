package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"day-planner/internal/errors"
	"day-planner/internal/logging"
	"day-planner/internal/repository/sqlite"

	"github.com/google/uuid"
)

// Service implements Provider on top of the persistence gateway. Sessions
// live in memory; restarting the process signs everyone out.
type Service struct {
	gateway           sqlite.Gateway
	sessionTTL        time.Duration
	passwordMinLength int

	mu        sync.Mutex
	sessions  map[string]*Session
	listeners map[int]func(*Identity)
	nextSub   int

	now func() time.Time
}

// NewService creates an authentication service with the given session TTL
// and minimum password length.
func NewService(gateway sqlite.Gateway, sessionTTL time.Duration, passwordMinLength int) *Service {
	return &Service{
		gateway:           gateway,
		sessionTTL:        sessionTTL,
		passwordMinLength: passwordMinLength,
		sessions:          make(map[string]*Session),
		listeners:         make(map[int]func(*Identity)),
		now:               time.Now,
	}
}

// SignUp registers a new user. The email is lowercased so sign-in is
// case-insensitive.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.NewInvalidInputError("email", email, "must be a valid email address")
	}
	if len(password) < s.passwordMinLength {
		return nil, errors.NewInvalidInputError("password", "", "must be at least the configured minimum length")
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = email
	}

	salt := uuid.NewString()
	user := &sqlite.UserRecord{
		Email:        email,
		DisplayName:  displayName,
		PasswordSalt: salt,
		PasswordHash: hashPassword(salt, password),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.gateway.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logging.Debugf("auth: registered user %s", email)
	return &Identity{UserID: user.ID, Email: user.Email, DisplayName: user.DisplayName}, nil
}

// SignIn checks the credentials and opens a session. The same generic error
// is returned for an unknown email and a wrong password.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.gateway.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewAuthError("invalid email or password", nil)
		}
		return nil, err
	}

	expected := []byte(user.PasswordHash)
	actual := []byte(hashPassword(user.PasswordSalt, password))
	if subtle.ConstantTimeCompare(expected, actual) != 1 {
		return nil, errors.NewAuthError("invalid email or password", nil)
	}

	session := &Session{
		Token: uuid.NewString(),
		Identity: Identity{
			UserID:      user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
		},
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	logging.Debugf("auth: signed in %s", email)
	s.notify(&session.Identity)
	return session, nil
}

// SignOut closes the session for the given token. Unknown tokens are a
// no-op so repeated sign-outs stay idempotent.
func (s *Service) SignOut(ctx context.Context, token string) error {
	s.mu.Lock()
	_, existed := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if existed {
		s.notify(nil)
	}
	return nil
}

// Verify resolves a session token to its identity. Expired sessions are
// removed on access.
func (s *Service) Verify(ctx context.Context, token string) (*Identity, error) {
	s.mu.Lock()
	session, ok := s.sessions[token]
	if ok && s.now().After(session.ExpiresAt) {
		delete(s.sessions, token)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, errors.NewAuthError("session is not valid", nil)
	}

	identity := session.Identity
	return &identity, nil
}

// OnAuthStateChange registers a listener for sign-in and sign-out events.
func (s *Service) OnAuthStateChange(fn func(*Identity)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Service) notify(identity *Identity) {
	s.mu.Lock()
	fns := make([]func(*Identity), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(identity)
	}
}

func hashPassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + ":" + password))
	return hex.EncodeToString(sum[:])
}
