package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ralim/nxmissing/utilities"
)

// Source provides the raw bytes of a named data file
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// HTTPSource fetches data files relative to a base URL
// If CacheFolder is set downloads are kept there and revalidated by ETag
type HTTPSource struct {
	BaseURL     string
	Client      *http.Client
	CacheFolder string
}

func NewHTTPSource(baseURL string, client *http.Client, cacheFolder string) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{BaseURL: baseURL, Client: client, CacheFolder: cacheFolder}
}

func (s *HTTPSource) url(name string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + name
}

func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	fileURL := s.url(name)
	if s.CacheFolder != "" {
		return s.fetchCached(ctx, fileURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %v", ErrFetch, fileURL, err)
	}
	response, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %w", ErrFetch, fileURL, err)
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s -> %d %s", ErrFetch, fileURL, response.StatusCode, http.StatusText(response.StatusCode))
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s - %w", ErrFetch, fileURL, err)
	}
	return body, nil
}

func (s *HTTPSource) fetchCached(ctx context.Context, fileURL string) ([]byte, error) {
	if err := os.MkdirAll(s.CacheFolder, 0755); err != nil {
		return nil, fmt.Errorf("%w: cache folder %s - %w", ErrFetch, s.CacheFolder, err)
	}
	path, err := utilities.DownloadFileWithVersioning(ctx, s.Client, fileURL, s.CacheFolder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading cached %s - %w", ErrFetch, path, err)
	}
	return body, nil
}

// DirSource reads data files out of a local folder
type DirSource struct {
	Dir string
}

func (s DirSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %w", ErrFetch, name, err)
	}
	return body, nil
}

// NewSource picks the source type from the location, http(s) URL's are fetched, anything else is a folder
func NewSource(location string, client *http.Client, cacheFolder string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, client, cacheFolder)
	}
	return DirSource{Dir: location}
}

// IsLoadError reports if err is one of the load failures
func IsLoadError(err error) bool {
	return errors.Is(err, ErrFetch) || errors.Is(err, ErrEmptyData) || errors.Is(err, ErrMalformedData)
}
