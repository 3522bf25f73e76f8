package mock

import (
	"context"
	"sort"
	"time"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

// Store is an in-memory store.Store for handler tests. Error fields, when
// set, are returned by the corresponding method.
type Store struct {
	Portfolio []models.PortfolioItem
	Catalogue []models.CatalogueItem
	Contact   *models.Contact
	Admins    []models.Admin

	ListPortfolioErr   error
	CreatePortfolioErr error
	ListCatalogueErr   error
	CreateCatalogueErr error
	GetContactErr      error
	UpdateContactErr   error
	VerifyAdminErr     error
	SeedErr            error

	SeedCalls int
}

var _ store.Store = (*Store)(nil)

// New returns an empty mock store.
func New() *Store {
	return &Store{}
}

// WithAdmin returns a mock seeded with one active admin.
func WithAdmin(username, password string) *Store {
	return &Store{Admins: []models.Admin{{ID: 1, Username: username, PasswordHash: password, IsActive: true}}}
}

func (m *Store) ListPortfolio(ctx context.Context, skip, limit int) ([]models.PortfolioItem, error) {
	if m.ListPortfolioErr != nil {
		return nil, m.ListPortfolioErr
	}
	items := make([]models.PortfolioItem, len(m.Portfolio))
	copy(items, m.Portfolio)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt > items[j].CreatedAt
		}
		return items[i].ID > items[j].ID
	})
	return window(items, skip, limit), nil
}

func (m *Store) CreatePortfolio(ctx context.Context, p *models.PortfolioItem) (int64, error) {
	if m.CreatePortfolioErr != nil {
		return 0, m.CreatePortfolioErr
	}
	p.ID = int64(len(m.Portfolio) + 1)
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UTC().UnixMilli()
	}
	m.Portfolio = append(m.Portfolio, *p)
	return p.ID, nil
}

func (m *Store) ListCatalogue(ctx context.Context, skip, limit int) ([]models.CatalogueItem, error) {
	if m.ListCatalogueErr != nil {
		return nil, m.ListCatalogueErr
	}
	var active []models.CatalogueItem
	for _, c := range m.Catalogue {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return window(active, skip, limit), nil
}

func (m *Store) CreateCatalogue(ctx context.Context, c *models.CatalogueItem) (int64, error) {
	if m.CreateCatalogueErr != nil {
		return 0, m.CreateCatalogueErr
	}
	c.ID = int64(len(m.Catalogue) + 1)
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().UTC().UnixMilli()
	}
	m.Catalogue = append(m.Catalogue, *c)
	return c.ID, nil
}

func (m *Store) GetContact(ctx context.Context) (*models.Contact, error) {
	if m.GetContactErr != nil {
		return nil, m.GetContactErr
	}
	if m.Contact == nil {
		return nil, nil
	}
	c := *m.Contact
	return &c, nil
}

func (m *Store) UpdateContact(ctx context.Context, patch store.ContactPatch) (*models.Contact, error) {
	if m.UpdateContactErr != nil {
		return nil, m.UpdateContactErr
	}
	if m.Contact == nil {
		m.Contact = &models.Contact{ID: 1}
	}
	if patch.Phone != nil {
		m.Contact.Phone = *patch.Phone
	}
	if patch.Whatsapp != nil {
		m.Contact.Whatsapp = *patch.Whatsapp
	}
	if patch.Address != nil {
		m.Contact.Address = *patch.Address
	}
	if patch.MapsURL != nil {
		m.Contact.MapsURL = *patch.MapsURL
	}
	if patch.Email != nil {
		m.Contact.Email = *patch.Email
	}
	m.Contact.UpdatedAt = time.Now().UTC().UnixMilli()
	c := *m.Contact
	return &c, nil
}

func (m *Store) VerifyAdmin(ctx context.Context, username, password string) (bool, error) {
	if m.VerifyAdminErr != nil {
		return false, m.VerifyAdminErr
	}
	for _, a := range m.Admins {
		if a.Username == username && a.IsActive && a.PasswordHash == password {
			return true, nil
		}
	}
	return false, nil
}

func (m *Store) HasAdmin(ctx context.Context) (bool, error) {
	if m.VerifyAdminErr != nil {
		return false, m.VerifyAdminErr
	}
	return len(m.Admins) > 0, nil
}

func (m *Store) Seed(ctx context.Context) error {
	m.SeedCalls++
	if m.SeedErr != nil {
		return m.SeedErr
	}
	if len(m.Admins) == 0 {
		m.Admins = []models.Admin{{ID: 1, Username: "admin", PasswordHash: "changeme", IsActive: true}}
	}
	return nil
}

func (m *Store) Close() error { return nil }

func window[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	if skip >= len(items) {
		return nil
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
