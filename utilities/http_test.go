package utilities_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/ralim/nxmissing/utilities"
)

func TestDownloadFileWithVersioning(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	folder := t.TempDir()
	path, err := utilities.DownloadFileWithVersioning(context.Background(), srv.Client(), srv.URL+"/missing-titles.txt", folder)
	if err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(path)
	if err != nil || string(content) != "payload" {
		t.Fatalf("downloaded file mismatch %q %v", content, err)
	}
	// Second request should revalidate and keep the file
	path2, err := utilities.DownloadFileWithVersioning(context.Background(), srv.Client(), srv.URL+"/missing-titles.txt", folder)
	if err != nil {
		t.Fatal(err)
	}
	if path2 != path || hits.Load() != 2 {
		t.Errorf("expected cached path on 304, got %s after %d hits", path2, hits.Load())
	}
	content, _ = os.ReadFile(path2)
	if string(content) != "payload" {
		t.Errorf("cached file should be untouched, got %q", content)
	}
}

func TestDownloadFileWithVersioningDroppedBody(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch hits.Add(1) {
		case 1:
			w.Header().Set("ETag", `"v1"`)
			_, _ = w.Write([]byte("complete"))
		case 2:
			// Promise more than is sent, the server drops the connection after the handler returns
			w.Header().Set("ETag", `"v2"`)
			w.Header().Set("Content-Length", "1000")
			_, _ = w.Write([]byte("trunc"))
		default:
			if r.Header.Get("If-None-Match") == `"v1"` {
				w.WriteHeader(http.StatusNotModified)
				return
			}
			w.Header().Set("ETag", `"v2"`)
			_, _ = w.Write([]byte("fresh"))
		}
	}))
	defer srv.Close()

	folder := t.TempDir()
	fileURL := srv.URL + "/missing-updates.txt"
	path, err := utilities.DownloadFileWithVersioning(context.Background(), srv.Client(), fileURL, folder)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := utilities.DownloadFileWithVersioning(context.Background(), srv.Client(), fileURL, folder); err == nil {
		t.Fatal("short body should fail the download")
	}
	content, _ := os.ReadFile(path)
	if string(content) != "complete" {
		t.Errorf("failed download should keep the last good file, got %q", content)
	}
	etag, _ := os.ReadFile(path + ".etag")
	if string(etag) != `"v1"` {
		t.Errorf("etag should still match the kept file, got %q", etag)
	}

	// Revalidating now must hand back the complete copy
	path, err = utilities.DownloadFileWithVersioning(context.Background(), srv.Client(), fileURL, folder)
	if err != nil {
		t.Fatal(err)
	}
	content, _ = os.ReadFile(path)
	if string(content) != "complete" {
		t.Errorf("revalidated file should be the complete copy, got %q", content)
	}
	entries, _ := os.ReadDir(folder)
	if len(entries) != 2 {
		t.Errorf("only the file and its etag should be in the cache folder, got %d entries", len(entries))
	}
}

func TestDownloadFileWithVersioningBadStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	_, err := utilities.DownloadFileWithVersioning(context.Background(), srv.Client(), srv.URL+"/missing-dlcs.txt", t.TempDir())
	if !errors.Is(err, utilities.ErrBadStatus) {
		t.Errorf("should fail with ErrBadStatus, got %v", err)
	}
}

func TestExists(t *testing.T) {
	t.Parallel()
	tempFile, err := os.CreateTemp("", "TestExists-*")
	if err != nil {
		t.Fatal(err)
	}
	tempFile.Close()

	if !utilities.Exists(tempFile.Name()) {
		t.Error("should work for known exising files")
	}
	if !utilities.Exists("/") {
		t.Error("should work for known exising folder")
	}
	os.Remove(tempFile.Name())
	if utilities.Exists(tempFile.Name()) {
		t.Error("should work for known not-exising files")
	}
}
