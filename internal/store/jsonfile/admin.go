package jsonfile

import (
	"context"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

// VerifyAdmin fails closed: a missing or inactive admin yields false, nil.
func (s *Store) VerifyAdmin(ctx context.Context, username, password string) (bool, error) {
	s.mu.Lock()
	doc, err := s.read(ctx)
	s.mu.Unlock()
	if err != nil {
		return false, err
	}

	a := doc.Admin
	if a == nil || !a.IsActive || a.Username != username {
		return false, nil
	}
	return store.MatchSecret(a.PasswordHash, password), nil
}

func (s *Store) HasAdmin(ctx context.Context) (bool, error) {
	s.mu.Lock()
	doc, err := s.read(ctx)
	s.mu.Unlock()
	if err != nil {
		return false, err
	}
	return doc.Admin != nil, nil
}

// Seed installs the default admin, contact record and catalogue entries,
// skipping anything already present.
func (s *Store) Seed(ctx context.Context) error {
	return s.update(ctx, func(doc *document) (bool, error) {
		changed := false

		if doc.Admin == nil {
			doc.Admin = &adminRecord{
				ID:           1,
				Username:     store.DefaultAdminUsername,
				PasswordHash: store.DefaultAdminPassword,
				IsActive:     true,
				CreatedAt:    now(),
			}
			changed = true
		}

		if doc.Contact == nil {
			def := store.DefaultContact()
			def.ID = 1
			def.UpdatedAt = now()
			doc.Contact = &def
			changed = true
		}

		present := make(map[string]bool, len(doc.Catalogue))
		for _, c := range doc.Catalogue {
			present[c.Name] = true
		}
		for _, item := range store.DefaultCatalogue() {
			if present[item.Name] {
				continue
			}
			item.ID = nextCatalogueID(doc)
			item.CreatedAt = now()
			doc.Catalogue = append(doc.Catalogue, item)
			changed = true
		}

		return changed, nil
	})
}
