package termui

import "sort"

// Tasks shown in the status table
const (
	TaskDataset = "Dataset"
	TaskHTTP    = "HTTP"
	TaskFTP     = "FTP"
)

func (t *TermUI) RegisterTask(taskName string) *TaskState {
	t.Lock()
	state := &TaskState{
		name:        taskName,
		lastStatus:  "Loading...",
		statusTable: t.statusTable,
		parent:      t,
		row:         len(t.tasks) + 1,
		col:         1,
	}
	t.tasks = append(t.tasks, state)
	tasks := t.sortTasks() // Ensure tasks are sorted
	t.Unlock()

	for _, task := range tasks {
		task.redraw()
	}
	return state
}

// sortTasks sorts tasks alphabetically and renumbers their rows, the caller redraws them
func (t *TermUI) sortTasks() []*TaskState {
	sort.SliceStable(t.tasks, func(i, j int) bool {
		return t.tasks[i].name < t.tasks[j].name
	})
	for i := 0; i < len(t.tasks); i++ {
		t.tasks[i].row = i + 1
	}
	tasks := make([]*TaskState, len(t.tasks))
	copy(tasks, t.tasks)
	return tasks
}
