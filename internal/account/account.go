// Package account registers player accounts.
//
// Accounts only exist so the main page can greet a returning player by name.
// The helper and dice roller never read them.
package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUsernameTaken is returned by Store.Create when the username already
	// has a record.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("user not found")
)

// User-facing validation messages.
const (
	MsgInvalidUsername  = "Username must be between 3 and 20 alphanumeric characters."
	MsgUsernameTaken    = "Username is already in use."
	MsgInvalidPassword  = "Password must be between 3 and 20 characters."
	MsgPasswordMismatch = "Passwords do not match."
)

var (
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9]{3,20}$`)
	passwordRE = regexp.MustCompile(`^.{3,20}$`)
)

// User is a registered account.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Store persists accounts. Create must be atomic with respect to the
// username: of two concurrent creates for the same name, one fails with
// ErrUsernameTaken.
type Store interface {
	Create(ctx context.Context, u User) error
	GetByUsername(ctx context.Context, username string) (User, error)
}

// ValidationError is a registration problem the player can fix. Message is
// safe to show on the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidUsername reports whether name is 3 to 20 ASCII letters or digits.
func ValidUsername(name string) bool { return usernameRE.MatchString(name) }

// ValidPassword reports whether pw is 3 to 20 characters long.
func ValidPassword(pw string) bool { return passwordRE.MatchString(pw) }

// Service validates and creates accounts.
type Service struct {
	store    Store
	now      func() time.Time
	newID    func() string
	hashCost int
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how user ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithHashCost sets the bcrypt cost used for new passwords.
func WithHashCost(cost int) Option {
	return func(s *Service) { s.hashCost = cost }
}

// NewService returns a Service backed by store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		now:      time.Now,
		newID:    uuid.NewString,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the submitted credentials and creates the account.
// Checks run in form order (username, then password, then verification)
// and the first failure is returned as a *ValidationError. Any other error
// is a storage failure.
func (s *Service) Register(ctx context.Context, username, password, verify string) (User, error) {
	if !ValidUsername(username) {
		return User{}, &ValidationError{Field: "username", Message: MsgInvalidUsername}
	}
	_, err := s.store.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return User{}, &ValidationError{Field: "username", Message: MsgUsernameTaken}
	case !errors.Is(err, ErrNotFound):
		return User{}, fmt.Errorf("look up username: %w", err)
	}
	if !ValidPassword(password) {
		return User{}, &ValidationError{Field: "password", Message: MsgInvalidPassword}
	}
	if password != verify {
		return User{}, &ValidationError{Field: "verify", Message: MsgPasswordMismatch}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	u := User{
		ID:           s.newID(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.Create(ctx, u); err != nil {
		// Lost a race with another registration for the same name.
		if errors.Is(err, ErrUsernameTaken) {
			return User{}, &ValidationError{Field: "username", Message: MsgUsernameTaken}
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
