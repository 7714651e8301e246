package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/demomarket/internal/common"
	"github.com/dmitrijs2005/demomarket/internal/logging"
	"github.com/dmitrijs2005/demomarket/internal/models"
	"github.com/dmitrijs2005/demomarket/internal/passwd"
	"github.com/dmitrijs2005/demomarket/internal/storage"
)

// IdentityService manages user records and the single active session.
//
// Contract:
//   - Signup: register a user; ErrorDuplicateEmail if the email is taken.
//   - Login: check credentials and replace the session; ErrorInvalidCredentials on mismatch.
//   - Logout: drop the session. Cart and catalog are left alone.
//   - CurrentUser: the session's user, or nil when logged out or the user is gone.
type IdentityService interface {
	Signup(ctx context.Context, name, email string, password []byte) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

type identityService struct {
	base
	hasher passwd.Hasher
	logger logging.Logger
}

// NewIdentityService constructs an IdentityService storing password digests
// produced by hasher.
func NewIdentityService(store *storage.Adapter, hasher passwd.Hasher, logger logging.Logger) IdentityService {
	return &identityService{base: newBase(store), hasher: hasher, logger: logger.With("service", "identity")}
}

// Signup rejects an email that is already registered (exact, case-sensitive
// match), then stores a new user with the hashed password.
func (s *identityService) Signup(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	users, err := readList[models.User](ctx, s.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, common.ErrorDuplicateEmail
		}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	user := models.User{
		ID:           s.newID("user"),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	users = append(users, user)

	if err := s.store.Write(ctx, storage.KeyUsers, users); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user signed up", "user_id", user.ID)
	return &user, nil
}

// Login looks up the user by email and verifies the password against the
// stored digest. On success the session is overwritten.
func (s *identityService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	users, err := readList[models.User](ctx, s.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}

	var user *models.User
	for i := range users {
		if users[i].Email == email && s.hasher.Verify(users[i].PasswordHash, password) {
			user = &users[i]
			break
		}
	}
	if user == nil {
		s.logger.Info(ctx, "login rejected")
		return nil, common.ErrorInvalidCredentials
	}

	session := models.Session{UserID: user.ID, Since: s.now()}
	if err := s.store.Write(ctx, storage.KeySession, session); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

func (s *identityService) Logout(ctx context.Context) error {
	return s.store.Remove(ctx, storage.KeySession)
}

// CurrentUser returns (nil, nil) when there is no session or the session
// names a user that no longer exists.
func (s *identityService) CurrentUser(ctx context.Context) (*models.User, error) {
	var session models.Session
	found, err := s.store.Read(ctx, storage.KeySession, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	users, err := readList[models.User](ctx, s.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == session.UserID {
			return &users[i], nil
		}
	}

	s.logger.Debug(ctx, "session refers to unknown user", "user_id", session.UserID)
	return nil, nil
}
