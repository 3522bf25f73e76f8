package api

import (
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/config"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/media"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

type UploadHandler struct {
	auth      *authorizer
	portfolio store.PortfolioStore
	catalogue store.CatalogueStore
	media     media.Store
	maxBytes  int64
}

func NewUploadHandler(auth *authorizer, p store.PortfolioStore, c store.CatalogueStore, ms media.Store, maxBytes int64) *UploadHandler {
	return &UploadHandler{auth: auth, portfolio: p, catalogue: c, media: ms, maxBytes: maxBytes}
}

// Upload accepts a multipart submission (title, description, category, file,
// admin credentials), stores the file under the category directory and
// creates the matching record. Credentials are checked before anything else;
// a disallowed media type is rejected before any file is persisted.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	if !h.auth.authorize(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	description := r.FormValue("description")

	category := r.FormValue("category")
	if category == "" {
		category = "portfolio"
	}
	if category != "portfolio" && category != "catalogue" {
		http.Error(w, "category must be portfolio or catalogue", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// the file's declared media type must be image/* or video/*
	fileType, ok := allowedFileType(header.Header.Get("Content-Type"))
	if !ok {
		http.Error(w, "Only image/video allowed", http.StatusBadRequest)
		return
	}

	filename, err := h.media.Save(r.Context(), category, filepath.Ext(header.Filename), file)
	if err != nil {
		logger.Error("save upload", slog.Any("err", err))
		http.Error(w, "failed to store file", http.StatusInternalServerError)
		return
	}
	fileURL := path.Join(config.StaticPrefix, category, filename)

	var item any
	if category == "catalogue" {
		c := &models.CatalogueItem{
			Name:        title,
			Description: description,
			MediaURL:    fileURL,
		}
		_, err = h.catalogue.CreateCatalogue(r.Context(), c)
		item = c
	} else {
		p := &models.PortfolioItem{
			Title:       title,
			Description: description,
			FileURL:     fileURL,
			FileType:    fileType,
			Category:    category,
		}
		_, err = h.portfolio.CreatePortfolio(r.Context(), p)
		item = p
	}
	if err != nil {
		logger.Error("create upload record", slog.Any("err", err))
		// don't leave the written file orphaned
		if rerr := h.media.Remove(r.Context(), category, filename); rerr != nil {
			logger.Error("remove orphaned upload", slog.Any("err", rerr))
		}
		http.Error(w, "failed to create record", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"message": "Upload successful", "item": item}, http.StatusOK)
}

// allowedFileType maps a declared media type onto "image" or "video".
// Anything else, including an unparseable declaration, is rejected.
func allowedFileType(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	primary, _, found := strings.Cut(mediaType, "/")
	if !found {
		return "", false
	}
	if primary != "image" && primary != "video" {
		return "", false
	}
	return primary, true
}
