package sqlite

import (
	"context"
	"database/sql"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

func (s *Store) GetContact(ctx context.Context) (*models.Contact, error) {
	row := s.conn.QueryRow(ctx, `SELECT id, phone, whatsapp, address, maps_url, email, updated_at FROM contact ORDER BY id LIMIT 1`)
	var c models.Contact
	var updated sql.NullInt64
	if err := row.Scan(&c.ID, &c.Phone, &c.Whatsapp, &c.Address, &c.MapsURL, &c.Email, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if updated.Valid {
		c.UpdatedAt = updated.Int64
	}
	return &c, nil
}

// UpdateContact merges the set fields of patch into the singleton contact
// row, creating it when no row exists yet.
func (s *Store) UpdateContact(ctx context.Context, patch store.ContactPatch) (*models.Contact, error) {
	c, err := s.GetContact(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = &models.Contact{}
	}

	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Whatsapp != nil {
		c.Whatsapp = *patch.Whatsapp
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.MapsURL != nil {
		c.MapsURL = *patch.MapsURL
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	c.UpdatedAt = now()

	if c.ID == 0 {
		res, err := s.conn.Exec(ctx, `INSERT INTO contact (phone, whatsapp, address, maps_url, email, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			c.Phone, c.Whatsapp, c.Address, c.MapsURL, c.Email, c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		c.ID = id
		return c, nil
	}

	_, err = s.conn.Exec(ctx, `UPDATE contact SET phone = ?, whatsapp = ?, address = ?, maps_url = ?, email = ?, updated_at = ? WHERE id = ?`,
		c.Phone, c.Whatsapp, c.Address, c.MapsURL, c.Email, c.UpdatedAt, c.ID)
	if err != nil {
		return nil, err
	}
	return c, nil
}
