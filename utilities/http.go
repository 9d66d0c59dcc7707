package utilities

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
)

var ErrBadStatus = errors.New("bad response status")

// DownloadFileWithVersioning fetches fileURL into folder, revalidating against the saved ETag
// A 304 from the server hands back the cached copy from the last successful download
func DownloadFileWithVersioning(ctx context.Context, client *http.Client, fileURL, folder string) (string, error) {
	//Look for <filename>.etag for the etag
	_, fileName := path.Split(fileURL)
	outputFile := path.Join(folder, fileName)
	outputETagFile := outputFile + ".etag"
	existingETag := ""
	if content, err := os.ReadFile(outputETagFile); err == nil && Exists(outputFile) {
		existingETag = string(content)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", fmt.Errorf("cant request %s, newrequest threw -> %w", fileURL, err)
	}
	if len(existingETag) > 0 {
		req.Header.Add("If-None-Match", existingETag)
	}
	if client == nil {
		client = http.DefaultClient
	}
	response, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request for file %s failed -> %w", fileURL, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotModified {
		//Not modified, no-op
		log.Debug().Str("url", fileURL).Msg("Cached copy is current")
		return outputFile, nil
	} else if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: couldn't download file %s -> %d", ErrBadStatus, fileURL, response.StatusCode)
	}

	//Read the whole body before touching the cache, a dropped body leaves the last good file and its etag paired
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("couldn't download file %s, reading body failed -> %w", fileURL, err)
	}
	if err := atomic.WriteFile(outputFile, bytes.NewReader(body)); err != nil {
		return "", fmt.Errorf("couldn't download file, writing to file %s failed; url: %s -> %w", outputFile, fileURL, err)
	}

	etag := response.Header.Get("ETag")
	err = atomic.WriteFile(outputETagFile, strings.NewReader(etag))
	//We dont bubble up etag errors as non-essential
	if err != nil {
		log.Warn().Msgf("Saving ETag for file %s failed with %v, continuing anyway", fileURL, err)
	}
	return outputFile, nil
}

// Exists reports if a file or folder is present at the path
func Exists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		return false
	}
	return true
}
