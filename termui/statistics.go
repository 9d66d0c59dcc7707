package termui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ralim/nxmissing/dataset"
	"github.com/rivo/tview"
)

// Tracks dataset statistics
// Used to show an info panel under the task list

type Statistics struct {
	Counts   dataset.Counts
	LoadedAt time.Time

	table  *tview.Table
	parent *TermUI
}

var statisticsRows = []struct {
	label string
	kind  dataset.Kind
}{
	{"Missing Titles", dataset.KindTitles},
	{"Missing DLC", dataset.KindDLCs},
	{"Missing Updates", dataset.KindUpdates},
	{"Missing Old Updates", dataset.KindOldUpdates},
}

// Update shows the counts of a newly loaded snapshot
func (s *Statistics) Update(counts dataset.Counts, loadedAt time.Time) {
	s.Counts = counts
	s.LoadedAt = loadedAt
	s.Redraw()
}

// Follow keeps the panel in step with every successful reload of the store
func (s *Statistics) Follow(store *dataset.Store) {
	store.OnReload(func(ds *dataset.Dataset, loadedAt time.Time) {
		s.Update(ds.Counts(), loadedAt)
	})
}

func (s *Statistics) Redraw() {
	values := make([]string, 0, len(statisticsRows)+2)
	for _, row := range statisticsRows {
		values = append(values, fmt.Sprintf("%d", s.Counts.Of(row.kind)))
	}
	values = append(values, fmt.Sprintf("%d", s.Counts.Total()))
	loaded := "never"
	if !s.LoadedAt.IsZero() {
		loaded = humanize.Time(s.LoadedAt)
	}
	values = append(values, loaded)
	s.parent.update(func() {
		for i, value := range values {
			s.table.SetCellSimple(i, 1, value)
		}
	})
}

func newStatistics(parent *TermUI) *Statistics {
	s := &Statistics{parent: parent}

	s.table = tview.NewTable()
	s.table.SetBorders(true)
	s.table.SetTitle("Statistics")
	s.table.SetFixed(0, 1)
	for i, row := range statisticsRows {
		s.table.SetCellSimple(i, 0, row.label)
		s.table.SetCellSimple(i, 1, "0")
	}
	s.table.SetCellSimple(len(statisticsRows), 0, "Total")
	s.table.SetCellSimple(len(statisticsRows), 1, "0")
	s.table.SetCellSimple(len(statisticsRows)+1, 0, "Loaded")
	s.table.SetCellSimple(len(statisticsRows)+1, 1, "never")
	return s
}
