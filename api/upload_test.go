package api_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store/mock"
)

// mediaFiles lists the files currently present under dir/category.
func mediaFiles(t *testing.T, dir, category string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(dir, category))
	if err != nil {
		t.Fatalf("read media dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func adminFields(extra map[string]string) map[string]string {
	fields := map[string]string{"username": "admin", "password": "changeme"}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

func TestUpload_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		filename   string
		fileType   string
		wantStatus int
	}{
		{
			name:       "BadCredentials",
			fields:     map[string]string{"username": "admin", "password": "wrong", "title": "Gate"},
			filename:   "gate.jpg",
			fileType:   "image/jpeg",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "NoCredentials",
			fields:     map[string]string{"title": "Gate"},
			filename:   "gate.jpg",
			fileType:   "image/jpeg",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "MissingTitle",
			fields:     adminFields(nil),
			filename:   "gate.jpg",
			fileType:   "image/jpeg",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "BlankTitle",
			fields:     adminFields(map[string]string{"title": "   "}),
			filename:   "gate.jpg",
			fileType:   "image/jpeg",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingFile",
			fields:     adminFields(map[string]string{"title": "Gate"}),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "PDFRejected",
			fields:     adminFields(map[string]string{"title": "Gate"}),
			filename:   "doc.pdf",
			fileType:   "application/pdf",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "TextRejected",
			fields:     adminFields(map[string]string{"title": "Gate"}),
			filename:   "note.txt",
			fileType:   "text/plain",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "UnknownCategory",
			fields:     adminFields(map[string]string{"title": "Gate", "category": "secrets"}),
			filename:   "gate.jpg",
			fileType:   "image/jpeg",
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mock.WithAdmin("admin", "changeme")
			h, ms := newTestServer(t, m)

			body, ct := multipartBody(t, tc.fields, tc.filename, tc.fileType, []byte("payload"))
			w := doRequest(t, h, http.MethodPost, "/admin/upload", body, ct)
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d (body %s)", tc.wantStatus, w.Code, w.Body.String())
			}

			// nothing may reach the disk on a rejected upload
			for _, category := range []string{"portfolio", "catalogue"} {
				if files := mediaFiles(t, ms.Dir(), category); len(files) != 0 {
					t.Fatalf("rejected upload left files on disk: %v", files)
				}
			}
			if len(m.Portfolio) != 0 || len(m.Catalogue) != 0 {
				t.Fatalf("rejected upload created records")
			}
		})
	}
}

func TestUpload_PortfolioImage(t *testing.T) {
	m := mock.WithAdmin("admin", "changeme")
	h, ms := newTestServer(t, m)

	body, ct := multipartBody(t, adminFields(map[string]string{"title": "Steel Gate", "description": "front gate"}), "gate.jpg", "image/jpeg", []byte("jpeg bytes"))
	w := doRequest(t, h, http.MethodPost, "/admin/upload", body, ct)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		Item    struct {
			ID       int64  `json:"id"`
			Title    string `json:"title"`
			FileURL  string `json:"file_url"`
			FileType string `json:"file_type"`
			Category string `json:"category"`
		} `json:"item"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Item.FileType != "image" {
		t.Fatalf("expected file_type image, got %q", resp.Item.FileType)
	}
	if resp.Item.Category != "portfolio" {
		t.Fatalf("expected default category portfolio, got %q", resp.Item.Category)
	}
	if !strings.HasPrefix(resp.Item.FileURL, "/static/portfolio/") || !strings.HasSuffix(resp.Item.FileURL, ".jpg") {
		t.Fatalf("unexpected file_url %q", resp.Item.FileURL)
	}

	files := mediaFiles(t, ms.Dir(), "portfolio")
	if len(files) != 1 {
		t.Fatalf("expected 1 stored file, got %v", files)
	}
	b, err := os.ReadFile(filepath.Join(ms.Dir(), "portfolio", files[0]))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(b) != "jpeg bytes" {
		t.Fatalf("stored bytes differ from upload")
	}

	if len(m.Portfolio) != 1 || m.Portfolio[0].Title != "Steel Gate" {
		t.Fatalf("portfolio record not created: %#v", m.Portfolio)
	}
}

func TestUpload_VideoFileType(t *testing.T) {
	m := mock.WithAdmin("admin", "changeme")
	h, _ := newTestServer(t, m)

	body, ct := multipartBody(t, adminFields(map[string]string{"title": "Welding demo"}), "demo.mp4", "video/mp4", []byte("mp4 bytes"))
	w := doRequest(t, h, http.MethodPost, "/admin/upload", body, ct)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(m.Portfolio) != 1 || m.Portfolio[0].FileType != "video" {
		t.Fatalf("expected video file_type, got %#v", m.Portfolio)
	}
}

func TestUpload_CatalogueCategory(t *testing.T) {
	m := mock.WithAdmin("admin", "changeme")
	h, ms := newTestServer(t, m)

	body, ct := multipartBody(t, adminFields(map[string]string{"title": "Steel Gates", "description": "custom gates", "category": "catalogue"}), "gates.jpg", "image/jpeg", []byte("jpeg"))
	w := doRequest(t, h, http.MethodPost, "/admin/upload", body, ct)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}

	if len(m.Catalogue) != 1 {
		t.Fatalf("catalogue record not created: %#v", m.Catalogue)
	}
	item := m.Catalogue[0]
	if item.Name != "Steel Gates" || item.Description != "custom gates" {
		t.Fatalf("unexpected catalogue item: %#v", item)
	}
	if !strings.HasPrefix(item.MediaURL, "/static/catalogue/") {
		t.Fatalf("unexpected media_url %q", item.MediaURL)
	}
	if len(m.Portfolio) != 0 {
		t.Fatalf("catalogue upload must not create a portfolio record")
	}
	if files := mediaFiles(t, ms.Dir(), "catalogue"); len(files) != 1 {
		t.Fatalf("expected 1 file under catalogue, got %v", files)
	}
}

func TestUpload_RecordFailureRemovesFile(t *testing.T) {
	m := mock.WithAdmin("admin", "changeme")
	m.CreatePortfolioErr = errSentinel
	h, ms := newTestServer(t, m)

	body, ct := multipartBody(t, adminFields(map[string]string{"title": "Gate"}), "gate.jpg", "image/jpeg", []byte("jpeg"))
	w := doRequest(t, h, http.MethodPost, "/admin/upload", body, ct)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	if files := mediaFiles(t, ms.Dir(), "portfolio"); len(files) != 0 {
		t.Fatalf("orphaned file left on disk: %v", files)
	}
}
