package api

import (
	"net/http"

	"log/slog"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

// GalleryHandler serves the public read endpoints.
type GalleryHandler struct {
	portfolio store.PortfolioStore
	catalogue store.CatalogueStore
	contact   store.ContactStore
}

func NewGalleryHandler(p store.PortfolioStore, c store.CatalogueStore, ct store.ContactStore) *GalleryHandler {
	return &GalleryHandler{portfolio: p, catalogue: c, contact: ct}
}

func (h *GalleryHandler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseWindow(r)
	items, err := h.portfolio.ListPortfolio(r.Context(), skip, limit)
	if err != nil {
		logger.Error("list portfolio", slog.Any("err", err))
		http.Error(w, "failed to list portfolio", http.StatusInternalServerError)
		return
	}
	if items == nil {
		// never marshal null for an empty listing
		items = []models.PortfolioItem{}
	}
	writeJSON(w, items, http.StatusOK)
}

func (h *GalleryHandler) ListCatalogue(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseWindow(r)
	items, err := h.catalogue.ListCatalogue(r.Context(), skip, limit)
	if err != nil {
		logger.Error("list catalogue", slog.Any("err", err))
		http.Error(w, "failed to list catalogue", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.CatalogueItem{}
	}
	writeJSON(w, items, http.StatusOK)
}

func (h *GalleryHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	c, err := h.contact.GetContact(r.Context())
	if err != nil {
		logger.Error("get contact", slog.Any("err", err))
		http.Error(w, "failed to get contact", http.StatusInternalServerError)
		return
	}
	if c == nil {
		// absence is not an error, degrade to an empty object
		writeJSON(w, map[string]any{}, http.StatusOK)
		return
	}
	writeJSON(w, c, http.StatusOK)
}
