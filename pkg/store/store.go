package store

import (
	"context"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
)

// Store interfaces for the workshop's entity kinds. These are the public
// contracts consumers should depend on; concrete implementations live under
// internal/store (sqlite and jsonfile backends).

type PortfolioStore interface {
	// ListPortfolio returns items newest-first.
	ListPortfolio(ctx context.Context, skip, limit int) ([]models.PortfolioItem, error)
	CreatePortfolio(ctx context.Context, p *models.PortfolioItem) (int64, error)
}

type CatalogueStore interface {
	// ListCatalogue returns only active items.
	ListCatalogue(ctx context.Context, skip, limit int) ([]models.CatalogueItem, error)
	CreateCatalogue(ctx context.Context, c *models.CatalogueItem) (int64, error)
}

// ContactPatch carries a partial contact update. Nil fields are left
// untouched on the stored record.
type ContactPatch struct {
	Phone    *string
	Whatsapp *string
	Address  *string
	MapsURL  *string
	Email    *string
}

// Empty reports whether the patch sets no field at all.
func (p ContactPatch) Empty() bool {
	return p.Phone == nil && p.Whatsapp == nil && p.Address == nil && p.MapsURL == nil && p.Email == nil
}

type ContactStore interface {
	// GetContact returns nil, nil when no contact record exists.
	GetContact(ctx context.Context) (*models.Contact, error)
	// UpdateContact merges the set fields of patch into the singleton,
	// creating it when absent.
	UpdateContact(ctx context.Context, patch ContactPatch) (*models.Contact, error)
}

type AdminStore interface {
	// VerifyAdmin reports whether username/password match an active admin.
	// It fails closed: a missing or inactive admin yields false, nil.
	VerifyAdmin(ctx context.Context, username, password string) (bool, error)
	// HasAdmin reports whether any admin record exists yet.
	HasAdmin(ctx context.Context) (bool, error)
}

// Store is the full backend contract: all entity kinds plus idempotent
// default seeding and lifecycle.
type Store interface {
	PortfolioStore
	CatalogueStore
	ContactStore
	AdminStore

	// Seed installs the default admin, contact record and catalogue entries.
	// Calling it again is a no-op for entities already present.
	Seed(ctx context.Context) error

	Close() error
}
