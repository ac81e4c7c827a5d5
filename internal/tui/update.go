package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayboard/internal/board"
	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/tui/forms"
	"github.com/julianstephens/dayboard/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width-4, max(msg.Height-chrome, 3))
		return m, nil

	case tickMsg:
		if tr, ran := m.engine.Tick(); ran {
			m.status = fmt.Sprintf("New day %s: %d habit task(s) added", tr.Day, tr.InstancesCreated)
		}
		m.reminder.Check(m.engine.Now())
		m.refresh()
		return m, tick(m.poll)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % len(board.Buckets)
		m.refresh()
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab - 1 + len(board.Buckets)) % len(board.Buckets)
		m.refresh()
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return tea.Batch(m.search.Focus(), textinput.Blink), true
	case key.Matches(msg, m.keys.Dismiss):
		switch {
		case m.reminder.Shown():
			m.reminder.Dismiss(m.engine.Now())
			m.status = "Reminder dismissed"
		case m.search.Value() != "":
			m.search.SetValue("")
			m.refresh()
		}
	case key.Matches(msg, m.keys.Add):
		if m.bucket() == board.Habits {
			return m.openHabitForm(), true
		}
		return m.openTaskForm(), true
	case key.Matches(msg, m.keys.Plan):
		return m.openPlanForm(), true
	case key.Matches(msg, m.keys.Edit):
		return m.openEditForm(), true
	case key.Matches(msg, m.keys.Complete):
		m.act("Completed", m.engine.CompleteTask)
	case key.Matches(msg, m.keys.Clear):
		m.act("Cleared", m.engine.ClearWithoutCredit)
	case key.Matches(msg, m.keys.Discard):
		m.act("Discarded", m.engine.DiscardTask)
	case key.Matches(msg, m.keys.Restore):
		m.act("Restored", m.engine.RestoreTask)
	case key.Matches(msg, m.keys.Delete):
		m.act("Deleted", func(id, due string) (models.Task, bool) {
			return models.Task{}, m.engine.DeleteTask(id, due)
		})
	default:
		return nil, false
	}
	return nil, true
}

// act applies an outcome to the selected task and reports the result.
func (m *Model) act(verb string, fn func(id, dueDate string) (models.Task, bool)) {
	item, ok := m.list.Selected()
	if !ok {
		return
	}
	if _, changed := fn(item.ID, item.DueDate); !changed {
		m.status = fmt.Sprintf("%s: no change", item.Title)
		return
	}
	m.status = fmt.Sprintf("%s %q", verb, item.Title)
	m.refresh()
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			return m, nil
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) openForm(kind formKind, f *huh.Form) tea.Cmd {
	m.form = f.WithWidth(max(m.width-4, 40))
	m.formKind = kind
	return m.form.Init()
}

func (m *Model) openTaskForm() tea.Cmd {
	m.taskIn = &forms.TaskInput{Due: m.engine.Today()}
	return m.openForm(formAddTask, forms.NewTaskForm(m.taskIn))
}

func (m *Model) openEditForm() tea.Cmd {
	item, ok := m.list.Selected()
	if !ok {
		return nil
	}
	m.editing = item
	m.taskIn = &forms.TaskInput{Title: item.Title, Description: item.Description, Due: item.DueDate}
	return m.openForm(formEditTask, forms.NewEditForm(m.taskIn))
}

func (m *Model) openHabitForm() tea.Cmd {
	m.habitIn = &forms.HabitInput{}
	return m.openForm(formAddHabit, forms.NewHabitForm(m.habitIn))
}

func (m *Model) openPlanForm() tea.Cmd {
	m.planIn = &forms.PlanInput{}
	m.planDay = utils.Tomorrow(m.engine.Now())
	return m.openForm(formPlan, forms.NewPlanForm(m.planIn, m.planDay))
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.closeForm("Cancelled")
		return m, nil
	}

	f, cmd := m.form.Update(msg)
	if f, ok := f.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm("Cancelled")
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm(status string) {
	m.form = nil
	m.formKind = formNone
	m.status = status
	m.refresh()
}

func (m *Model) submitForm() {
	var status string
	switch m.formKind {
	case formAddTask:
		task, err := m.engine.CreateTask(m.taskIn.NewTask())
		status = fmt.Sprintf("Added %q", task.Title)
		if err != nil {
			status = err.Error()
		}
	case formEditTask:
		in := m.taskIn.NewTask()
		_, ok, err := m.engine.UpdateTask(m.editing.ID, m.editing.DueDate, models.TaskPatch{Title: in.Title, Description: in.Description})
		switch {
		case err != nil:
			status = err.Error()
		case !ok:
			status = "Task no longer exists"
		default:
			status = fmt.Sprintf("Updated %q", in.Title)
		}
	case formAddHabit:
		habit, err := m.engine.CreateHabit(m.habitIn.Spec())
		status = fmt.Sprintf("Added habit %q", habit.Title)
		if err != nil {
			status = err.Error()
		}
	case formPlan:
		status = m.submitPlan()
	}
	m.closeForm(status)
}

// submitPlan adds one task per line for the planned day. Submitting hides
// the reminder and starts its cooldown even when no lines were entered.
func (m *Model) submitPlan() string {
	added := 0
	for _, title := range m.planIn.Titles() {
		if _, err := m.engine.CreateTask(models.NewTask{Title: title, DueDate: m.planDay}); err != nil {
			return err.Error()
		}
		added++
	}
	m.reminder.Submit(m.engine.Now())
	return fmt.Sprintf("Planned %d task(s) for %s", added, m.planDay)
}
