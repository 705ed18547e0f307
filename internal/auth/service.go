// Package auth implements the authentication core: password hashing, session
// token issuance/verification, and the service orchestrating registration,
// login and token-based session lookup over the credential store.
package auth

import (
	"context"
	"errors"

	"github.com/velora-dev/velora-api/internal/model"
	"github.com/velora-dev/velora-api/internal/repository"
)

// Service wires the credential store and token service together. It holds no
// per-request state; every method is safe for concurrent use.
type Service struct {
	users  repository.UserStore
	tokens *TokenService
	cost   int
}

func NewService(users repository.UserStore, tokens *TokenService, bcryptCost int) *Service {
	return &Service{users: users, tokens: tokens, cost: bcryptCost}
}

// Session is the result of a successful Register or Login: a signed bearer
// token and the sanitized user it belongs to.
type Session struct {
	Token string
	User  model.User
}

// Register validates input, rejects duplicate emails, hashes the password and
// creates the user, then issues a token. Validation and duplicate failures
// persist nothing. The token can only be issued after the create because it
// embeds the store-assigned ID, so a signing failure at that point would leave
// the user persisted while Register reports an error; with HMAC signing that
// path amounts to a claims-marshalling failure and is not expected in practice.
func (s *Service) Register(ctx context.Context, name, email, password string) (Session, error) {
	if err := requireFields(field{"name", name}, field{"email", email}, field{"password", password}); err != nil {
		return Session{}, err
	}

	hash, err := HashPassword(password, s.cost)
	if err != nil {
		return Session{}, err
	}
	u, err := s.users.Create(ctx, model.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return Session{}, ErrEmailTaken
		}
		return Session{}, err
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: u.Sanitized()}, nil
}

// Login looks the user up by email and verifies the password against the
// stored hash. Unknown email and wrong password produce the same generic
// error so the response does not leak which one was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	if err := requireFields(field{"email", email}, field{"password", password}); err != nil {
		return Session{}, err
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if !VerifyPassword(u.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: u.Sanitized()}, nil
}

// WhoAmI verifies a bearer token and resolves the embedded user ID. A user
// deleted between issuance and now surfaces as ErrUserNotFound, not as an
// invalid token. Read-only.
func (s *Service) WhoAmI(ctx context.Context, token string) (model.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return model.User{}, ErrInvalidToken
	}
	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u.Sanitized(), nil
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}
