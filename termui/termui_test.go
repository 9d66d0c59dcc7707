package termui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ralim/nxmissing/dataset"
)

func TestRegisterTaskSorted(t *testing.T) {
	ui := NewTermUI()
	http := ui.RegisterTask(TaskHTTP)
	ui.RegisterTask(TaskDataset)
	ui.RegisterTask(TaskFTP)
	http.UpdateStatus("Listening")

	want := []string{"Task", TaskDataset, TaskFTP, TaskHTTP}
	for row, name := range want {
		if got := ui.statusTable.GetCell(row, 0).Text; got != name {
			t.Errorf("row %d should be %s, got %s", row, name, got)
		}
	}
	if got := ui.statusTable.GetCell(3, 1).Text; got != "Listening" {
		t.Errorf("status should follow the task when sorted, got %s", got)
	}
	if got := ui.statusTable.GetCell(1, 1).Text; got != "Loading..." {
		t.Errorf("new tasks start as loading, got %s", got)
	}
}

func TestStatistics(t *testing.T) {
	ui := NewTermUI()
	ui.Statistics.Update(dataset.Counts{Titles: 3, DLCs: 2, Updates: 1, OldUpdates: 4}, time.Now())
	want := []string{"3", "2", "1", "4", "10"}
	for row, value := range want {
		if got := ui.Statistics.table.GetCell(row, 1).Text; got != value {
			t.Errorf("row %d should be %s, got %s", row, value, got)
		}
	}
	if got := ui.Statistics.table.GetCell(5, 1).Text; got == "never" {
		t.Error("load time should be shown")
	}
}

func TestStatisticsFollowReloads(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("missing-titles.txt", "0100ABCD00000000|2024-01-15|Example Game|1048576\n")
	write("missing-dlcs.txt", "0100ABCD00001001|2024-02-01|Extra Pack|Example Game|2048\n")
	write("missing-updates.txt", "0100ABCD00000800|Example Game|v131072|2024-03-10\n")
	write("missing-old-updates.json", "{}")

	ui := NewTermUI()
	store := dataset.NewStore(dataset.DirSource{Dir: dir})
	ui.Statistics.Follow(store)
	if err := store.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := ui.Statistics.table.GetCell(0, 1).Text; got != "1" {
		t.Errorf("titles should be counted after the first load, got %s", got)
	}

	// A later reload, as the web ui retry does, must refresh the panel
	write("missing-titles.txt", "0100ABCD00000000|2024-01-15|Example Game|1\n0100ABCD00010000|2024-01-16|Second Game|2\n")
	if err := store.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := ui.Statistics.table.GetCell(0, 1).Text; got != "2" {
		t.Errorf("titles should follow the reload, got %s", got)
	}
	if got := ui.Statistics.table.GetCell(4, 1).Text; got != "4" {
		t.Errorf("total should follow the reload, got %s", got)
	}
}
