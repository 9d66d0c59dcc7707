package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Encoding writes a snapshot back out in the source file formats, so it can be mirrored
// Records are written in ID order so output is stable between runs

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func EncodeTitles(w io.Writer, titles map[string]TitleRecord) error {
	for _, id := range sortedKeys(titles) {
		r := titles[id]
		if _, err := fmt.Fprintf(w, "%s|%s|%s|%d\n", id, r.ReleaseDate, r.Name, r.Size); err != nil {
			return err
		}
	}
	return nil
}

func EncodeDLCs(w io.Writer, dlcs map[string]DLCRecord) error {
	for _, id := range sortedKeys(dlcs) {
		r := dlcs[id]
		if _, err := fmt.Fprintf(w, "%s|%s|%s|%s|%d\n", id, r.ReleaseDate, r.Name, r.BaseGame, r.Size); err != nil {
			return err
		}
	}
	return nil
}

func EncodeUpdates(w io.Writer, updates map[string]UpdateRecord) error {
	for _, id := range sortedKeys(updates) {
		r := updates[id]
		if _, err := fmt.Fprintf(w, "%s|%s|%s|%s\n", id, r.GameName, r.Version, r.ReleaseDate); err != nil {
			return err
		}
	}
	return nil
}

func EncodeOldUpdates(w io.Writer, oldUpdates map[string][]OldUpdateVersion) error {
	data, err := json.MarshalIndent(oldUpdates, "", "  ")
	if err != nil {
		return fmt.Errorf("cant JSON'ify old updates - %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Encode writes the source file for the kind
func (ds *Dataset) Encode(w io.Writer, kind Kind) error {
	switch kind {
	case KindTitles:
		return EncodeTitles(w, ds.Titles)
	case KindDLCs:
		return EncodeDLCs(w, ds.DLCs)
	case KindUpdates:
		return EncodeUpdates(w, ds.Updates)
	case KindOldUpdates:
		return EncodeOldUpdates(w, ds.OldUpdates)
	}
	return fmt.Errorf("unknown kind %q", kind)
}
