package query

import (
	"sort"
	"strconv"

	"github.com/ralim/nxmissing/dataset"
)

// Field names a column of a row, these are also the sort keys used in URL's
type Field string

const (
	FieldID          Field = "id"
	FieldName        Field = "name"
	FieldBaseGame    Field = "base_game"
	FieldVersion     Field = "version"
	FieldReleaseDate Field = "release_date"
	FieldSize        Field = "size"
)

// Row is one displayable line of a table
type Row struct {
	Kind        dataset.Kind `json:"kind"`
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	BaseGame    string       `json:"baseGame,omitempty"`
	Version     string       `json:"version,omitempty"`
	ReleaseDate string       `json:"releaseDate"`
	Size        int64        `json:"size,omitempty"`
}

var columns = map[dataset.Kind][]Field{
	dataset.KindTitles:     {FieldID, FieldName, FieldReleaseDate, FieldSize},
	dataset.KindDLCs:       {FieldID, FieldName, FieldBaseGame, FieldReleaseDate, FieldSize},
	dataset.KindUpdates:    {FieldID, FieldName, FieldVersion, FieldReleaseDate},
	dataset.KindOldUpdates: {FieldID, FieldVersion, FieldReleaseDate},
}

// Columns lists the fields a kind shows, in display order
func Columns(kind dataset.Kind) []Field {
	return columns[kind]
}

// HasColumn reports if the kind displays (and so can sort on) the field
func HasColumn(kind dataset.Kind, field Field) bool {
	for _, f := range columns[kind] {
		if f == field {
			return true
		}
	}
	return false
}

// Value is the string form of a field, empty for absent values
func (r Row) Value(f Field) string {
	switch f {
	case FieldID:
		return r.ID
	case FieldName:
		return r.Name
	case FieldBaseGame:
		return r.BaseGame
	case FieldVersion:
		return r.Version
	case FieldReleaseDate:
		return r.ReleaseDate
	case FieldSize:
		if r.Size == 0 {
			return ""
		}
		return strconv.FormatInt(r.Size, 10)
	}
	return ""
}

func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Flatten turns one kind of the dataset into rows, ordered by ID
// Old updates give one row per version, keeping each ID's version order
func Flatten(ds *dataset.Dataset, kind dataset.Kind) []Row {
	if ds == nil {
		return []Row{}
	}
	var rows []Row
	switch kind {
	case dataset.KindTitles:
		rows = make([]Row, 0, len(ds.Titles))
		for _, id := range sortedIDs(ds.Titles) {
			r := ds.Titles[id]
			rows = append(rows, Row{Kind: kind, ID: id, Name: r.Name, ReleaseDate: r.ReleaseDate, Size: r.Size})
		}
	case dataset.KindDLCs:
		rows = make([]Row, 0, len(ds.DLCs))
		for _, id := range sortedIDs(ds.DLCs) {
			r := ds.DLCs[id]
			rows = append(rows, Row{Kind: kind, ID: id, Name: r.Name, BaseGame: r.BaseGame, ReleaseDate: r.ReleaseDate, Size: r.Size})
		}
	case dataset.KindUpdates:
		rows = make([]Row, 0, len(ds.Updates))
		for _, id := range sortedIDs(ds.Updates) {
			r := ds.Updates[id]
			rows = append(rows, Row{Kind: kind, ID: id, Name: r.GameName, Version: r.Version, ReleaseDate: r.ReleaseDate})
		}
	case dataset.KindOldUpdates:
		rows = make([]Row, 0, len(ds.OldUpdates))
		for _, id := range sortedIDs(ds.OldUpdates) {
			for _, v := range ds.OldUpdates[id] {
				rows = append(rows, Row{Kind: kind, ID: id, Version: v.Version, ReleaseDate: v.ReleaseDate})
			}
		}
	default:
		rows = []Row{}
	}
	return rows
}

// Regroup is the inverse of flattening old updates, rows are grouped by ID in the order seen
func Regroup(rows []Row) map[string][]dataset.OldUpdateVersion {
	result := make(map[string][]dataset.OldUpdateVersion)
	for _, r := range rows {
		result[r.ID] = append(result[r.ID], dataset.OldUpdateVersion{Version: r.Version, ReleaseDate: r.ReleaseDate})
	}
	return result
}
