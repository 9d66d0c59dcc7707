package termui

import "github.com/rivo/tview"

type TaskState struct {
	name        string
	lastStatus  string
	statusTable *tview.Table
	parent      *TermUI
	//Row and col of the status cell
	row int
	col int
}

func (t *TaskState) UpdateStatus(state string) {
	t.lastStatus = state
	row, col := t.row, t.col
	t.parent.update(func() {
		t.statusTable.SetCellSimple(row, col, state)
	})
}

//redraw draws title and contents again
func (t *TaskState) redraw() {
	row, col, name, status := t.row, t.col, t.name, t.lastStatus
	t.parent.update(func() {
		t.statusTable.SetCellSimple(row, col, status)
		t.statusTable.SetCellSimple(row, col-1, name)
	})
}
