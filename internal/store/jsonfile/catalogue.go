package jsonfile

import (
	"context"
	"fmt"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
)

func (s *Store) ListCatalogue(ctx context.Context, skip, limit int) ([]models.CatalogueItem, error) {
	s.mu.Lock()
	doc, err := s.read(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var active []models.CatalogueItem
	for _, c := range doc.Catalogue {
		if c.IsActive {
			active = append(active, c)
		}
	}

	skip, limit = normalizeWindow(skip, limit)
	if skip >= len(active) {
		return nil, nil
	}
	end := skip + limit
	if end > len(active) {
		end = len(active)
	}
	return active[skip:end], nil
}

func (s *Store) CreateCatalogue(ctx context.Context, c *models.CatalogueItem) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("catalogue item is nil")
	}
	c.IsActive = true

	err := s.update(ctx, func(doc *document) (bool, error) {
		c.ID = nextCatalogueID(doc)
		c.CreatedAt = now()
		doc.Catalogue = append(doc.Catalogue, *c)
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}
