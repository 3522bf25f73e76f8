package store

import "github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"

// Default records installed by Seed. The values come from the workshop's
// original site and are shared by every backend so seeding is uniform.

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "changeme"
)

func DefaultContact() models.Contact {
	return models.Contact{
		Phone:    "+911234567890",
		Whatsapp: "https://wa.me/911234567890",
		Address:  "Local Welding Workshop, Main Road, YourTown",
		MapsURL:  "https://maps.google.com/?q=YourTown",
	}
}

func DefaultCatalogue() []models.CatalogueItem {
	return []models.CatalogueItem{
		{Name: "Steel Gates", Description: "Custom steel gates and entrances.", IsActive: true},
		{Name: "Window Grills", Description: "Decorative & security grills.", IsActive: true},
		{Name: "Balustrades", Description: "Handrails and staircase balustrades.", IsActive: true},
	}
}
