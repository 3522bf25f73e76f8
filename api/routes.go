package api

import (
	"net/http"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/config"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/media"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, st store.Store, ms media.Store) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	auth := newAuthorizer(st, cfg.JWTSecret, cfg.TokenDuration)
	systemHandler := &SystemHandler{}
	galleryHandler := NewGalleryHandler(st, st, st)
	adminHandler := NewAdminHandler(auth, st)
	uploadHandler := NewUploadHandler(auth, st, st, ms, cfg.MaxUploadBytes)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/portfolio", galleryHandler.ListPortfolio).Methods("GET")
	r.HandleFunc("/catalogue", galleryHandler.ListCatalogue).Methods("GET")
	r.HandleFunc("/contact", galleryHandler.GetContact).Methods("GET")

	// Admin endpoints (credential-checked in the handlers; the credentials
	// travel in the form body, not a header, so no auth middleware here)
	r.HandleFunc("/admin/upload", uploadHandler.Upload).Methods("POST")
	r.HandleFunc("/admin/init-db", adminHandler.InitDB).Methods("POST")
	r.HandleFunc("/admin/test-auth", adminHandler.TestAuth).Methods("POST")
	r.HandleFunc("/admin/contact", adminHandler.UpdateContact).Methods("PUT")

	// Uploaded media
	r.PathPrefix(config.StaticPrefix + "/").Handler(
		http.StripPrefix(config.StaticPrefix+"/", http.FileServer(http.Dir(ms.Dir()))))

	return r
}
