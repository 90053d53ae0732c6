package admin

import (
	"context"

	"tartil/internal/auth"
	"tartil/internal/models"
)

// Store captures the persistence needs for the admin dashboard.
type Store interface {
	Stats(ctx context.Context) (models.Stats, error)
}

// Service exposes read-only administration workflows.
type Service interface {
	Stats(ctx context.Context, identity *auth.Claims) (models.Stats, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

// Stats returns the aggregate counts. Only admins may call it.
func (s *service) Stats(ctx context.Context, identity *auth.Claims) (models.Stats, error) {
	if err := ctx.Err(); err != nil {
		return models.Stats{}, err
	}
	if identity == nil || identity.Role != models.RoleAdmin {
		return models.Stats{}, auth.ErrForbidden
	}
	return s.store.Stats(ctx)
}
