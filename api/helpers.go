package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// parseWindow reads skip/limit pagination query parameters, falling back to
// the listing defaults (skip=0, limit=100).
func parseWindow(r *http.Request) (skip, limit int) {
	skip, limit = 0, 100
	q := r.URL.Query()
	if s := q.Get("skip"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			skip = v
		}
	}
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}
	return skip, limit
}
