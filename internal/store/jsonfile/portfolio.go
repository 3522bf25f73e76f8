package jsonfile

import (
	"context"
	"fmt"
	"sort"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
)

func (s *Store) ListPortfolio(ctx context.Context, skip, limit int) ([]models.PortfolioItem, error) {
	s.mu.Lock()
	doc, err := s.read(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	items := make([]models.PortfolioItem, len(doc.Portfolio))
	copy(items, doc.Portfolio)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt > items[j].CreatedAt
		}
		return items[i].ID > items[j].ID
	})

	skip, limit = normalizeWindow(skip, limit)
	if skip >= len(items) {
		return nil, nil
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end], nil
}

func (s *Store) CreatePortfolio(ctx context.Context, p *models.PortfolioItem) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("portfolio item is nil")
	}
	if p.Category == "" {
		p.Category = "portfolio"
	}

	err := s.update(ctx, func(doc *document) (bool, error) {
		p.ID = nextPortfolioID(doc)
		p.CreatedAt = now()
		doc.Portfolio = append(doc.Portfolio, *p)
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}
