package sqlite

import (
	"context"
	"database/sql"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

func (s *Store) getAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	row := s.conn.QueryRow(ctx, `SELECT id, username, password_hash, is_active, created_at FROM admin WHERE username = ?`, username)
	var a models.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.IsActive, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// VerifyAdmin fails closed: unknown or inactive admins yield false, nil.
func (s *Store) VerifyAdmin(ctx context.Context, username, password string) (bool, error) {
	a, err := s.getAdminByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if a == nil || !a.IsActive {
		return false, nil
	}
	return store.MatchSecret(a.PasswordHash, password), nil
}

func (s *Store) HasAdmin(ctx context.Context) (bool, error) {
	var count int
	row := s.conn.QueryRow(ctx, `SELECT COUNT(1) FROM admin`)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
