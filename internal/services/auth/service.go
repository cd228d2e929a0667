// Package auth checks dashboard credentials against the users table.
package auth

import (
	"context"
	"errors"

	"invoicing-dashboard-backend/internal/models"

	"github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserLookup finds a user by exact email, returning nil when absent.
type UserLookup interface {
	GetUser(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	users UserLookup
	log   *logrus.Logger
}

func NewAuthService(users UserLookup, log *logrus.Logger) *AuthService {
	return &AuthService{users: users, log: log}
}

// Authenticate returns the user whose email and password match. Unknown
// emails and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || len(password) < 6 {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.WithField("email", email).Info("login for unknown user")
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(user.Password, password); err != nil {
		s.log.WithField("user_id", user.ID).Info("login with wrong password")
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
