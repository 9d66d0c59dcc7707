package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text sources are pipe delimited, one record per line
// Lines that dont have the right number of fields are dropped, the generators emit the odd broken line

const (
	titleFields  = 4 // id | releaseDate | name | size
	dlcFields    = 5 // id | releaseDate | dlcName | baseGame | size
	updateFields = 4 // id | gameName | version | releaseDate
)

func splitRecords(content string, fieldCount int, handle func(parts []string)) {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != fieldCount {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		handle(parts)
	}
}

// parseSize reads the leading base 10 digits of the size column, so "123abc" is 123
// No digits, a negative sign or an overflow is 0
func parseSize(s string) int64 {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	size, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return size
}

func ParseTitles(content string) map[string]TitleRecord {
	result := make(map[string]TitleRecord)
	splitRecords(content, titleFields, func(parts []string) {
		result[parts[0]] = TitleRecord{
			ID:          parts[0],
			ReleaseDate: parts[1],
			Name:        parts[2],
			Size:        parseSize(parts[3]),
		}
	})
	return result
}

func ParseDLCs(content string) map[string]DLCRecord {
	result := make(map[string]DLCRecord)
	splitRecords(content, dlcFields, func(parts []string) {
		result[parts[0]] = DLCRecord{
			ID:          parts[0],
			ReleaseDate: parts[1],
			Name:        parts[2],
			BaseGame:    parts[3],
			Size:        parseSize(parts[4]),
		}
	})
	return result
}

func ParseUpdates(content string) map[string]UpdateRecord {
	result := make(map[string]UpdateRecord)
	splitRecords(content, updateFields, func(parts []string) {
		result[parts[0]] = UpdateRecord{
			ID:          parts[0],
			GameName:    parts[1],
			Version:     parts[2],
			ReleaseDate: parts[3],
		}
	})
	return result
}

// ParseOldUpdates loads the titleID -> []version mapping
// ID's with no versions are dropped so every entry has at least one version
func ParseOldUpdates(data []byte) (map[string][]OldUpdateVersion, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top level is not a JSON object", ErrMalformedData)
	}
	var entries map[string][]OldUpdateVersion
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	for id, versions := range entries {
		if len(versions) == 0 {
			delete(entries, id)
		}
	}
	return entries, nil
}
