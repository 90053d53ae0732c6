package admin

import (
	"context"
	"errors"
	"testing"

	"tartil/internal/auth"
	"tartil/internal/models"
)

type stubStore struct {
	stats models.Stats
	err   error

	called bool
}

func (s *stubStore) Stats(ctx context.Context) (models.Stats, error) {
	s.called = true
	return s.stats, s.err
}

func TestStatsRequiresAdminRole(t *testing.T) {
	tests := []struct {
		name     string
		identity *auth.Claims
		wantErr  bool
	}{
		{name: "admin allowed", identity: &auth.Claims{UserID: 1, Role: models.RoleAdmin}},
		{name: "regular user denied", identity: &auth.Claims{UserID: 5, Role: models.RoleUser}, wantErr: true},
		{name: "nil identity denied", identity: nil, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			st := &stubStore{stats: models.Stats{Users: 12}}
			svc := New(st)

			stats, err := svc.Stats(context.Background(), tc.identity)
			if tc.wantErr {
				if !errors.Is(err, auth.ErrForbidden) {
					t.Fatalf("expected ErrForbidden, got %v", err)
				}
				if st.called {
					t.Fatal("store queried despite failed authorization")
				}
				return
			}
			if err != nil {
				t.Fatalf("Stats: %v", err)
			}
			if stats.Users != 12 {
				t.Fatalf("unexpected stats: %+v", stats)
			}
		})
	}
}
