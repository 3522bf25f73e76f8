package sqlite

import (
	"log/slog"
	"time"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/db"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

// Store implements the store interfaces on top of the internal DB wrapper.
type Store struct {
	conn   *db.DB
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

func New(conn *db.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{conn: conn, logger: logger}
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

// normalizeWindow applies the listing defaults: skip=0, limit=100.
func normalizeWindow(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return skip, limit
}
