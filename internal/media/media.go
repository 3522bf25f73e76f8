package media

import (
	"context"
	"io"
)

// Store persists uploaded media files. Save returns the generated filename
// (not a full path or URL); callers build public URLs from the static
// prefix, category and filename.
type Store interface {
	Save(ctx context.Context, category, ext string, r io.Reader) (filename string, err error)
	Remove(ctx context.Context, category, filename string) error
	// Dir returns the root directory files are served from.
	Dir() string
}
