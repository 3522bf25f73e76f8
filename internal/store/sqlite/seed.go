package sqlite

import (
	"context"
	"fmt"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

// Seed installs the default admin, contact record and catalogue entries.
// Every insert checks for presence first, so running Seed again leaves an
// already-seeded database untouched.
func (s *Store) Seed(ctx context.Context) error {
	a, err := s.getAdminByUsername(ctx, store.DefaultAdminUsername)
	if err != nil {
		return fmt.Errorf("seed admin lookup: %w", err)
	}
	if a == nil {
		if _, err := s.conn.Exec(ctx, `INSERT INTO admin (username, password_hash, is_active, created_at) VALUES (?, ?, 1, ?)`,
			store.DefaultAdminUsername, store.DefaultAdminPassword, now()); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	c, err := s.GetContact(ctx)
	if err != nil {
		return fmt.Errorf("seed contact lookup: %w", err)
	}
	if c == nil {
		def := store.DefaultContact()
		if _, err := s.conn.Exec(ctx, `INSERT INTO contact (phone, whatsapp, address, maps_url, email, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			def.Phone, def.Whatsapp, def.Address, def.MapsURL, def.Email, now()); err != nil {
			return fmt.Errorf("seed contact: %w", err)
		}
	}

	for _, item := range store.DefaultCatalogue() {
		var count int
		row := s.conn.QueryRow(ctx, `SELECT COUNT(1) FROM catalogue WHERE name = ?`, item.Name)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("seed catalogue lookup: %w", err)
		}
		if count > 0 {
			continue
		}
		if _, err := s.conn.Exec(ctx, `INSERT INTO catalogue (name, description, price, media_url, is_active, created_at) VALUES (?, ?, ?, ?, 1, ?)`,
			item.Name, item.Description, item.Price, item.MediaURL, now()); err != nil {
			return fmt.Errorf("seed catalogue %q: %w", item.Name, err)
		}
	}

	return nil
}
