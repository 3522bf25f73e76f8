package jsonfile

import (
	"context"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

func (s *Store) GetContact(ctx context.Context) (*models.Contact, error) {
	s.mu.Lock()
	doc, err := s.read(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if doc.Contact == nil {
		return nil, nil
	}
	c := *doc.Contact
	return &c, nil
}

// UpdateContact merges the set fields of patch into the singleton contact,
// creating it when absent.
func (s *Store) UpdateContact(ctx context.Context, patch store.ContactPatch) (*models.Contact, error) {
	var out models.Contact
	err := s.update(ctx, func(doc *document) (bool, error) {
		if doc.Contact == nil {
			doc.Contact = &models.Contact{ID: 1}
		}
		if patch.Phone != nil {
			doc.Contact.Phone = *patch.Phone
		}
		if patch.Whatsapp != nil {
			doc.Contact.Whatsapp = *patch.Whatsapp
		}
		if patch.Address != nil {
			doc.Contact.Address = *patch.Address
		}
		if patch.MapsURL != nil {
			doc.Contact.MapsURL = *patch.MapsURL
		}
		if patch.Email != nil {
			doc.Contact.Email = *patch.Email
		}
		doc.Contact.UpdatedAt = now()
		out = *doc.Contact
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
