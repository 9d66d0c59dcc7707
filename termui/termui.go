package termui

import (
	"sync"

	"github.com/rivo/tview"
)

// TermUI is the wrapper for the basic terminal interface provided
// It shows the logs redirected to the side, along with the program status

type TermUI struct {
	sync.Mutex
	app     *tview.Application
	running bool

	//Logger points to this
	LogsView *tview.TextView

	statusTable *tview.Table
	tasks       []*TaskState
	Statistics  *Statistics
}

func NewTermUI() *TermUI {

	t := &TermUI{
		tasks: []*TaskState{},
		app:   tview.NewApplication(),
	}

	//Logs stream

	t.LogsView = tview.NewTextView()
	t.LogsView.SetText("Loading...\n")
	t.LogsView.SetTextAlign(tview.AlignLeft)
	t.LogsView.SetDynamicColors(true)
	t.LogsView.SetChangedFunc(func() {
		// Draw queues onto the app, which would fill up before Run
		if t.isRunning() {
			t.app.Draw()
		}
	})
	t.LogsView.SetMaxLines(4096)
	t.LogsView.SetWrap(false)
	t.LogsView.SetTitle("Logs")
	t.LogsView.SetBorder(true)

	//Status table

	t.statusTable = tview.NewTable()
	t.statusTable.SetBorders(true)
	t.statusTable.SetTitle("Status")
	t.statusTable.SetFixed(1, 1)
	t.statusTable.SetCellSimple(0, 0, "Task")
	t.statusTable.SetCellSimple(0, 1, "Status")

	t.Statistics = newStatistics(t)

	// Grid

	grid := tview.NewGrid()
	grid.SetRows(-1, -1)
	grid.SetColumns(-1, -2)
	grid.SetBorders(true)

	// Grid contents

	grid.AddItem(t.statusTable, 0, 0, 1, 1, 0, 0, true)
	grid.AddItem(t.Statistics.table, 1, 0, 1, 1, 0, 0, false)
	grid.AddItem(t.LogsView, 0, 1, 2, 1, 0, 0, false)

	t.app.SetRoot(grid, true)
	t.app.SetFocus(grid)
	return t
}

// Run blocks drawing the UI until Stop is called
func (t *TermUI) Run() error {
	t.Lock()
	t.running = true
	t.Unlock()
	return t.app.Run()
}

func (t *TermUI) Stop() {
	t.app.Stop()
}

func (t *TermUI) isRunning() bool {
	t.Lock()
	defer t.Unlock()
	return t.running
}

// update changes the widgets, on the UI goroutine once the app is running
func (t *TermUI) update(change func()) {
	t.Lock()
	running := t.running
	if !running {
		change()
	}
	t.Unlock()
	if running {
		t.app.QueueUpdateDraw(change)
	}
}
