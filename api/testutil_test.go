package api_test

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/api"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/config"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/media/local"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

const testSecret = "testsecret"

// newTestServer wires the router against st and a temp media directory.
func newTestServer(t *testing.T, st store.Store) (http.Handler, *local.Store) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:      testSecret,
		TokenDuration:  time.Hour,
		MaxUploadBytes: 50 << 20,
	}
	ms, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("media store: %v", err)
	}
	return api.SetupRoutes(cfg, "test", "now", st, ms), ms
}

// multipartBody builds a multipart form with the given fields and, when
// filename is non-empty, a file part with the supplied content type.
func multipartBody(t *testing.T, fields map[string]string, filename, contentType string, content []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if filename != "" {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
		h["Content-Type"] = []string{contentType}
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func newRequest(t *testing.T, method, path string, body io.Reader, contentType string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func doRequest(t *testing.T, h http.Handler, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(h, newRequest(t, method, path, body, contentType))
}

// errSentinel is injected into mocks to simulate backend failures.
var errSentinel = errors.New("backend exploded")
