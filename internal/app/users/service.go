package users

import (
	"context"
	"fmt"
	"net/url"

	"tartil/internal/auth"
	"tartil/internal/models"
)

// Store describes the persistence operations required by the user service.
type Store interface {
	CreateUser(ctx context.Context, name, email, password, avatar string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
}

// Service exposes account workflows: registration, login, and the
// authenticated profile lookup. Both Register and Login return a signed
// bearer token alongside the public user projection.
type Service interface {
	Register(ctx context.Context, name, email, password string) (string, models.User, error)
	Login(ctx context.Context, email, password string) (string, models.User, error)
	Me(ctx context.Context, identity *auth.Claims) (models.User, error)
}

type service struct {
	store  Store
	tokens *auth.Tokens
}

// New wires a Service backed by the provided Store and token issuer.
func New(store Store, tokens *auth.Tokens) Service {
	return &service{store: store, tokens: tokens}
}

func (s *service) Register(ctx context.Context, name, email, password string) (string, models.User, error) {
	if err := ctx.Err(); err != nil {
		return "", models.User{}, err
	}

	avatar := fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))

	user, err := s.store.CreateUser(ctx, name, email, password, avatar)
	if err != nil {
		return "", models.User{}, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", models.User{}, fmt.Errorf("issue token: %w", err)
	}
	return token, user.Public(), nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, models.User, error) {
	if err := ctx.Err(); err != nil {
		return "", models.User{}, err
	}

	user, err := s.store.Authenticate(ctx, email, password)
	if err != nil {
		return "", models.User{}, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", models.User{}, fmt.Errorf("issue token: %w", err)
	}
	return token, user.Public(), nil
}

func (s *service) Me(ctx context.Context, identity *auth.Claims) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	user, err := s.store.UserByID(ctx, identity.UserID)
	if err != nil {
		return models.User{}, err
	}
	return user.Public(), nil
}
