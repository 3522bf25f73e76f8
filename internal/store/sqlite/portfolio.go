package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
)

func (s *Store) ListPortfolio(ctx context.Context, skip, limit int) ([]models.PortfolioItem, error) {
	skip, limit = normalizeWindow(skip, limit)

	rows, err := s.conn.QueryRows(ctx, `SELECT id, title, description, file_url, file_type, category, created_at, updated_at FROM portfolio ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PortfolioItem
	for rows.Next() {
		var p models.PortfolioItem
		var updated sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.FileURL, &p.FileType, &p.Category, &p.CreatedAt, &updated); err != nil {
			return nil, err
		}
		if updated.Valid {
			p.UpdatedAt = updated.Int64
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) CreatePortfolio(ctx context.Context, p *models.PortfolioItem) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("portfolio item is nil")
	}
	if p.Category == "" {
		p.Category = "portfolio"
	}
	p.CreatedAt = now()

	res, err := s.conn.Exec(ctx, `INSERT INTO portfolio (title, description, file_url, file_type, category, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, p.FileURL, p.FileType, p.Category, p.CreatedAt)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}
