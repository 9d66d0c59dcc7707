package dataset

// Kind is the record category, and also the tab name used on the web ui
type Kind string

const (
	KindTitles     Kind = "missing-titles"
	KindDLCs       Kind = "missing-dlcs"
	KindUpdates    Kind = "missing-updates"
	KindOldUpdates Kind = "missing-old-updates"
)

// Kinds lists all record kinds in display order
var Kinds = []Kind{KindTitles, KindDLCs, KindUpdates, KindOldUpdates}

// FileName is the source file each kind is loaded from
func (k Kind) FileName() string {
	if k == KindOldUpdates {
		return string(k) + ".json"
	}
	return string(k) + ".txt"
}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

type TitleRecord struct {
	ID          string `json:"id"`
	ReleaseDate string `json:"releaseDate"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
}

type DLCRecord struct {
	ID          string `json:"id"`
	ReleaseDate string `json:"releaseDate"`
	Name        string `json:"name"`
	BaseGame    string `json:"baseGame"`
	Size        int64  `json:"size"`
}

type UpdateRecord struct {
	ID          string `json:"id"`
	GameName    string `json:"gameName"`
	Version     string `json:"version"`
	ReleaseDate string `json:"releaseDate"`
}

// OldUpdateVersion uses the key names of the missing-old-updates.json file
type OldUpdateVersion struct {
	Version     string `json:"Version"`
	ReleaseDate string `json:"Release Date"`
}

// Dataset is one loaded snapshot of all sources. It is never modified after loading.
type Dataset struct {
	Titles     map[string]TitleRecord
	DLCs       map[string]DLCRecord
	Updates    map[string]UpdateRecord
	OldUpdates map[string][]OldUpdateVersion
}

type Counts struct {
	Titles     int `json:"missingTitles"`
	DLCs       int `json:"missingDlcs"`
	Updates    int `json:"missingUpdates"`
	OldUpdates int `json:"missingOldUpdates"`
}

func (c Counts) Total() int {
	return c.Titles + c.DLCs + c.Updates + c.OldUpdates
}

// Of returns the count for the given kind
func (c Counts) Of(kind Kind) int {
	switch kind {
	case KindTitles:
		return c.Titles
	case KindDLCs:
		return c.DLCs
	case KindUpdates:
		return c.Updates
	case KindOldUpdates:
		return c.OldUpdates
	}
	return 0
}

// Counts totals each kind, old updates are counted per version not per ID
func (ds *Dataset) Counts() Counts {
	c := Counts{
		Titles:  len(ds.Titles),
		DLCs:    len(ds.DLCs),
		Updates: len(ds.Updates),
	}
	for _, versions := range ds.OldUpdates {
		c.OldUpdates += len(versions)
	}
	return c
}
