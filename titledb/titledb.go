package titledb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

/*

This is not actualy a _DB_ but its a close enough name for its intended use case.

Details for a single title are looked up on demand from the info service, and
kept in memory once seen. Nothing is persisted, a restart starts an empty cache.

*/

var (
	ErrFetch           = errors.New("info lookup failed")
	ErrInvalidResponse = errors.New("invalid title info received")
)

// TitleDBEntry is the part of the info service response we use
// Raw keeps the whole object so it can be passed through untouched
type TitleDBEntry struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Publisher   string          `json:"publisher"`
	Description string          `json:"description"`
	Version     json.Number     `json:"version"`
	Size        json.Number     `json:"size"`
	Raw         json.RawMessage `json:"-"`
}

type Client struct {
	infoURL string
	http    *http.Client

	entriesLock sync.RWMutex
	entries     map[string]TitleDBEntry
}

func NewClient(infoURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		infoURL: strings.TrimRight(infoURL, "/"),
		http:    client,
		entries: make(map[string]TitleDBEntry),
	}
}

// Cached returns a previously looked up entry
func (c *Client) Cached(titleID string) (TitleDBEntry, bool) {
	c.entriesLock.RLock()
	defer c.entriesLock.RUnlock()
	value, ok := c.entries[titleID]
	return value, ok
}

// Lookup fetches the details of one title. A cancelled ctx returns the context error,
// which callers should treat as the lookup no longer being wanted rather than a failure
func (c *Client) Lookup(ctx context.Context, titleID string) (TitleDBEntry, error) {
	if entry, ok := c.Cached(titleID); ok {
		return entry, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.infoURL+"/"+titleID, nil)
	if err != nil {
		return TitleDBEntry{}, fmt.Errorf("%w: cant request %s - %v", ErrFetch, titleID, err)
	}
	req.Header.Set("Accept", "application/json")
	response, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return TitleDBEntry{}, ctxErr
		}
		return TitleDBEntry{}, fmt.Errorf("%w: %s - %w", ErrFetch, titleID, err)
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return TitleDBEntry{}, fmt.Errorf("%w: %s -> %d", ErrFetch, titleID, response.StatusCode)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return TitleDBEntry{}, ctxErr
		}
		return TitleDBEntry{}, fmt.Errorf("%w: reading %s - %w", ErrFetch, titleID, err)
	}
	entry, err := ParseEntry(body)
	if err != nil {
		return TitleDBEntry{}, err
	}
	// The result may have arrived after the caller moved on
	if err := ctx.Err(); err != nil {
		return TitleDBEntry{}, err
	}

	c.entriesLock.Lock()
	defer c.entriesLock.Unlock()
	c.entries[titleID] = entry
	return entry, nil
}

// ParseEntry validates an info response, it must be a JSON object with a non-empty string id
func ParseEntry(body []byte) (TitleDBEntry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return TitleDBEntry{}, fmt.Errorf("%w: not a JSON object", ErrInvalidResponse)
	}
	var id string
	if raw, ok := fields["id"]; !ok || json.Unmarshal(raw, &id) != nil || id == "" {
		return TitleDBEntry{}, fmt.Errorf("%w: missing id", ErrInvalidResponse)
	}
	entry := TitleDBEntry{ID: id, Raw: json.RawMessage(body)}
	// The remaining fields are optional, a field with an odd type is just skipped
	_ = json.Unmarshal(fields["name"], &entry.Name)
	_ = json.Unmarshal(fields["publisher"], &entry.Publisher)
	_ = json.Unmarshal(fields["description"], &entry.Description)
	_ = json.Unmarshal(fields["version"], &entry.Version)
	_ = json.Unmarshal(fields["size"], &entry.Size)
	return entry, nil
}

// IsCancelled reports if a lookup error is just the caller giving up on it
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}

func (c *Client) DumpToJSON(writer io.Writer) error {
	c.entriesLock.RLock()
	defer c.entriesLock.RUnlock()
	out := make(map[string]json.RawMessage, len(c.entries))
	for id, entry := range c.entries {
		out[id] = entry.Raw
	}
	data, err := json.Marshal(out)
	if err != nil {
		log.Error().Err(err).Msg("Cant JSON'ify TitleDB")
		return fmt.Errorf("cant JSON'ify TitleDB - %w", err)
	}
	_, err = writer.Write(data)
	return err
}
