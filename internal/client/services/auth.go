// Package services implements the application-level operations the command
// layer calls: authentication, recording management, and uploads. Each service
// wraps the REST client and owns the related local state.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Kushagra128/meetingmind-cli/internal/client/api"
	"github.com/Kushagra128/meetingmind-cli/internal/client/credentials"
	"github.com/Kushagra128/meetingmind-cli/internal/client/models"
	"github.com/Kushagra128/meetingmind-cli/internal/logging"
)

// ErrNoToken is returned when a successful auth response carries no token.
var ErrNoToken = errors.New("no token received from server")

// AuthService performs login and registration and keeps the persisted
// credential in sync with the current user identity.
type AuthService struct {
	api   api.Client
	creds credentials.Store
	log   logging.Logger

	mu   sync.Mutex
	user *models.User
}

func NewAuthService(client api.Client, creds credentials.Store, log logging.Logger) *AuthService {
	s := &AuthService{api: client, creds: creds, log: log}
	// auto-logout clears the store out of band; the cached identity must
	// not outlive the credential it was loaded with
	creds.OnChange(func(token string) {
		if token == "" {
			s.mu.Lock()
			s.user = nil
			s.mu.Unlock()
		}
	})
	return s
}

// Login authenticates and persists the received token, replacing any
// previous one.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	res, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, res)
}

// Register creates an account and signs the new user in immediately.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	res, err := s.api.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, res)
}

func (s *AuthService) adopt(ctx context.Context, res *api.AuthResult) (*models.User, error) {
	if res == nil || res.AccessToken == "" {
		return nil, ErrNoToken
	}
	if err := s.creds.SetToken(ctx, res.AccessToken); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	s.mu.Lock()
	s.user = res.User
	s.mu.Unlock()
	s.log.Debug(ctx, "signed in", "user", userName(res.User))
	return res.User, nil
}

// Me fetches the current identity from the server and caches it.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	user, err := s.api.Me(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

// Logout discards the credential. It never fails against the server because
// the backend holds no session state for the client to tear down.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// CurrentUser returns the cached identity, or nil when signed out.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Authenticated reports whether a credential is currently stored.
func (s *AuthService) Authenticated(ctx context.Context) (bool, error) {
	token, err := s.creds.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

func userName(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}
