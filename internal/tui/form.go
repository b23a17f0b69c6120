package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/validation"
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldCount
)

var fieldKeys = [fieldCount]string{"name", "email", "phoneNumber"}
var fieldLabels = [fieldCount]string{"Name", "Email", "Phone"}

// staffForm collects the three editable fields plus their inline errors.
// It backs both the add and the edit page.
type staffForm struct {
	inputs    [fieldCount]textinput.Model
	focused   int
	fieldErrs validation.FieldErrors
	editingID int
}

func newStaffForm() staffForm {
	var f staffForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = 80
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Focus()
	f.fieldErrs = validation.FieldErrors{}
	return f
}

// populate fills the form from an existing record for the edit page.
func (f *staffForm) populate(staff domain.Staff) {
	f.editingID = staff.ID
	f.inputs[fieldName].SetValue(staff.Name)
	f.inputs[fieldEmail].SetValue(staff.Email)
	f.inputs[fieldPhone].SetValue(staff.PhoneNumber)
}

func (f *staffForm) record() domain.Staff {
	return domain.Staff{
		ID:          f.editingID,
		Name:        strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:       strings.TrimSpace(f.inputs[fieldEmail].Value()),
		PhoneNumber: strings.TrimSpace(f.inputs[fieldPhone].Value()),
	}
}

// validate runs the field rules and stores the result for rendering.
// It reports whether the record is submittable.
func (f *staffForm) validate() bool {
	f.fieldErrs = validation.ValidateStaff(f.record())
	return len(f.fieldErrs) == 0
}

func (f *staffForm) focusNext() {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + 1) % fieldCount
	f.inputs[f.focused].Focus()
}

func (f *staffForm) focusPrev() {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + fieldCount - 1) % fieldCount
	f.inputs[f.focused].Focus()
}

func (f *staffForm) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range f.inputs {
		var cmd tea.Cmd
		f.inputs[i], cmd = f.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
