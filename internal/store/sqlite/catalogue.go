package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
)

func (s *Store) ListCatalogue(ctx context.Context, skip, limit int) ([]models.CatalogueItem, error) {
	skip, limit = normalizeWindow(skip, limit)

	rows, err := s.conn.QueryRows(ctx, `SELECT id, name, description, price, media_url, is_active, created_at, updated_at FROM catalogue WHERE is_active = 1 ORDER BY id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CatalogueItem
	for rows.Next() {
		var c models.CatalogueItem
		var updated sql.NullInt64
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Price, &c.MediaURL, &c.IsActive, &c.CreatedAt, &updated); err != nil {
			return nil, err
		}
		if updated.Valid {
			c.UpdatedAt = updated.Int64
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) CreateCatalogue(ctx context.Context, c *models.CatalogueItem) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("catalogue item is nil")
	}
	c.IsActive = true
	c.CreatedAt = now()

	res, err := s.conn.Exec(ctx, `INSERT INTO catalogue (name, description, price, media_url, is_active, created_at) VALUES (?, ?, ?, ?, 1, ?)`,
		c.Name, c.Description, c.Price, c.MediaURL, c.CreatedAt)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}
