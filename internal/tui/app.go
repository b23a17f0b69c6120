// Package tui is the terminal client for the staff API. It follows the
// Elm architecture: one model, messages for every async result, and a
// pure view over the current state.
//
// Each page walks the same machine: Idle -> Loading -> Loaded | Error.
// Forms add Editing -> Validating -> {Invalid | Submitting ->
// {Success | Failed}}; navigation happens only on Success.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spec-kit/staff-service/internal/domain"
)

// StaffAPI is the service surface the UI depends on. The production
// implementation is client.StaffClient; tests inject a double.
type StaffAPI interface {
	GetStaffs(ctx context.Context) ([]domain.Staff, error)
	GetStaff(ctx context.Context, id int) (*domain.Staff, error)
	AddStaff(ctx context.Context, staff domain.Staff) (*domain.Staff, error)
	UpdateStaff(ctx context.Context, id int, staff domain.Staff) (*domain.Staff, error)
	DeleteStaff(ctx context.Context, id int) (*domain.Staff, error)
}

// page identifies which screen is active.
type page int

const (
	pageList page = iota
	pageDetails
	pageAdd
	pageEdit
)

// loadState is the per-page fetch machine.
type loadState int

const (
	stateIdle loadState = iota
	stateLoading
	stateLoaded
	stateError
)

type staffListMsg struct {
	staffs []domain.Staff
	err    error
}

type staffRecordMsg struct {
	staff *domain.Staff
	err   error
}

type mutationDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

// App is the application model holding all UI state.
type App struct {
	api StaffAPI

	page      page
	listState loadState
	staffs    []domain.Staff
	selected  int

	detailState loadState
	detail      *domain.Staff

	form       staffForm
	submitting bool

	spinner spinner.Model
	errMsg  string
	width   int
	height  int
}

// NewApp creates the model starting on the list page.
func NewApp(api StaffAPI) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &App{
		api:       api,
		page:      pageList,
		listState: stateIdle,
		form:      newStaffForm(),
		spinner:   sp,
	}
}

// Init kicks off the initial list fetch.
func (a *App) Init() tea.Cmd {
	a.listState = stateLoading
	return tea.Batch(a.spinner.Tick, a.fetchListCmd())
}

func (a *App) fetchListCmd() tea.Cmd {
	return func() tea.Msg {
		staffs, err := a.api.GetStaffs(context.Background())
		return staffListMsg{staffs: staffs, err: err}
	}
}

func (a *App) fetchRecordCmd(id int) tea.Cmd {
	return func() tea.Msg {
		staff, err := a.api.GetStaff(context.Background(), id)
		return staffRecordMsg{staff: staff, err: err}
	}
}

func (a *App) addCmd(staff domain.Staff) tea.Cmd {
	return func() tea.Msg {
		_, err := a.api.AddStaff(context.Background(), staff)
		return mutationDoneMsg{err: err}
	}
}

func (a *App) updateCmd(staff domain.Staff) tea.Cmd {
	return func() tea.Msg {
		_, err := a.api.UpdateStaff(context.Background(), staff.ID, staff)
		return mutationDoneMsg{err: err}
	}
}

func (a *App) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := a.api.DeleteStaff(context.Background(), id)
		return deleteDoneMsg{err: err}
	}
}

// Update routes messages to the active page.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.anythingLoading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case staffListMsg:
		if msg.err != nil {
			a.listState = stateError
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.listState = stateLoaded
		a.staffs = msg.staffs
		if a.selected >= len(a.staffs) {
			a.selected = 0
		}
		a.errMsg = ""
		return a, nil

	case staffRecordMsg:
		if msg.err != nil {
			a.detailState = stateError
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.detailState = stateLoaded
		a.detail = msg.staff
		a.errMsg = ""
		if a.page == pageEdit {
			a.form = newStaffForm()
			a.form.populate(*msg.staff)
		}
		return a, nil

	case mutationDoneMsg:
		a.submitting = false
		if msg.err != nil {
			// stay on the form; the failure must remain observable
			a.errMsg = msg.err.Error()
			return a, nil
		}
		return a, a.navigateToList()

	case deleteDoneMsg:
		if msg.err != nil {
			// no navigation on a failed delete
			a.errMsg = msg.err.Error()
			return a, nil
		}
		return a, a.navigateToList()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.page == pageAdd || a.page == pageEdit {
		return a, a.form.update(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	switch a.page {
	case pageList:
		return a.handleListKey(msg)
	case pageDetails:
		return a.handleDetailsKey(msg)
	case pageAdd, pageEdit:
		return a.handleFormKey(msg)
	}
	return a, nil
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.selected > 0 {
			a.selected--
		}
	case "down", "j":
		if a.selected < len(a.staffs)-1 {
			a.selected++
		}
	case "r":
		a.listState = stateLoading
		return a, tea.Batch(a.spinner.Tick, a.fetchListCmd())
	case "a":
		a.page = pageAdd
		a.form = newStaffForm()
		a.errMsg = ""
	case "enter":
		if len(a.staffs) > 0 {
			a.page = pageDetails
			a.detailState = stateLoading
			a.errMsg = ""
			return a, tea.Batch(a.spinner.Tick, a.fetchRecordCmd(a.staffs[a.selected].ID))
		}
	case "e":
		if len(a.staffs) > 0 {
			a.page = pageEdit
			a.detailState = stateLoading
			a.errMsg = ""
			return a, tea.Batch(a.spinner.Tick, a.fetchRecordCmd(a.staffs[a.selected].ID))
		}
	}
	return a, nil
}

func (a *App) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return a, a.navigateToList()
	case "d":
		if a.detail != nil {
			return a, a.deleteCmd(a.detail.ID)
		}
	case "e":
		if a.detail != nil {
			a.page = pageEdit
			a.form = newStaffForm()
			a.form.populate(*a.detail)
			a.errMsg = ""
		}
	}
	return a, nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, a.navigateToList()
	case "tab", "down":
		a.form.focusNext()
		return a, nil
	case "shift+tab", "up":
		a.form.focusPrev()
		return a, nil
	case "enter":
		return a, a.submitForm()
	}
	return a, a.form.update(msg)
}

// submitForm validates locally first; the service is only called for a
// submittable record.
func (a *App) submitForm() tea.Cmd {
	if a.submitting {
		return nil
	}
	if !a.form.validate() {
		return nil
	}
	a.submitting = true
	a.errMsg = ""
	record := a.form.record()
	if a.page == pageEdit {
		return a.updateCmd(record)
	}
	return a.addCmd(record)
}

func (a *App) navigateToList() tea.Cmd {
	a.page = pageList
	a.listState = stateLoading
	a.detail = nil
	a.detailState = stateIdle
	a.submitting = false
	a.errMsg = ""
	return tea.Batch(a.spinner.Tick, a.fetchListCmd())
}

func (a *App) anythingLoading() bool {
	return a.listState == stateLoading || a.detailState == stateLoading || a.submitting
}

// Run starts the program.
func Run(api StaffAPI) error {
	program := tea.NewProgram(NewApp(api), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
