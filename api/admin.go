package api

import (
	"fmt"
	"net/http"

	"log/slog"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

// AdminHandler serves the credential test, seed and contact edit endpoints.
type AdminHandler struct {
	auth    *authorizer
	store   store.Store
	contact store.ContactStore
}

func NewAdminHandler(auth *authorizer, st store.Store) *AdminHandler {
	return &AdminHandler{auth: auth, store: st, contact: st}
}

// TestAuth verifies form credentials and, on success, issues a bearer token
// accepted by the other admin endpoints.
func (h *AdminHandler) TestAuth(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	ok, err := h.store.VerifyAdmin(r.Context(), username, password)
	if err != nil {
		logger.Error("verify admin credentials", slog.Any("err", err))
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := h.auth.issueToken(username)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"message": "Authenticated", "status": "ok", "token": token}, http.StatusOK)
}

// InitDB seeds default data. The very first call runs open (there is no
// admin to authenticate against yet); once an admin exists the endpoint
// requires admin credentials.
func (h *AdminHandler) InitDB(w http.ResponseWriter, r *http.Request) {
	hasAdmin, err := h.store.HasAdmin(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error initializing database: %v", err), http.StatusInternalServerError)
		return
	}
	if hasAdmin && !h.auth.authorize(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.store.Seed(r.Context()); err != nil {
		logger.Error("seed defaults", slog.Any("err", err))
		http.Error(w, fmt.Sprintf("Error initializing database: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"message": "Database initialized with default data"}, http.StatusOK)
}

// UpdateContact merges submitted form fields into the contact record.
// Fields absent from the form are left untouched.
func (h *AdminHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	if !h.auth.authorize(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	patch := store.ContactPatch{
		Phone:    formField(r, "phone"),
		Whatsapp: formField(r, "whatsapp"),
		Address:  formField(r, "address"),
		MapsURL:  formField(r, "maps_url"),
		Email:    formField(r, "email"),
	}

	c, err := h.contact.UpdateContact(r.Context(), patch)
	if err != nil {
		logger.Error("update contact", slog.Any("err", err))
		http.Error(w, "failed to update contact", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"message": "Contact updated", "contact": c}, http.StatusOK)
}

// formField returns a pointer to the submitted value, or nil when the field
// was not part of the form at all.
func formField(r *http.Request, name string) *string {
	if !r.PostForm.Has(name) {
		return nil
	}
	v := r.PostForm.Get(name)
	return &v
}
