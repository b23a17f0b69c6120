package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230"))
	cardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			Padding(0, 1).MarginBottom(1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("62"))
	errStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	fieldErrStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).PaddingLeft(2)
	hintStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle        = lipgloss.NewStyle().Bold(true)
)

// View renders the active page.
func (a *App) View() string {
	var b strings.Builder

	switch a.page {
	case pageList:
		a.viewList(&b)
	case pageDetails:
		a.viewDetails(&b)
	case pageAdd:
		a.viewForm(&b, "Add Staff")
	case pageEdit:
		a.viewForm(&b, "Edit Staff")
	}

	if a.errMsg != "" {
		b.WriteString("\n" + errStyle.Render(a.errMsg) + "\n")
	}
	return b.String()
}

func (a *App) viewList(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Staff") + "\n\n")

	if a.listState == stateLoading || a.listState == stateIdle {
		b.WriteString(a.spinner.View() + " Loading staff...\n")
		return
	}
	if a.listState == stateError {
		b.WriteString(hintStyle.Render("press r to retry, q to quit") + "\n")
		return
	}

	if len(a.staffs) == 0 {
		b.WriteString(hintStyle.Render("no staff records") + "\n")
	}
	for i, s := range a.staffs {
		card := fmt.Sprintf("%s\n%s · %s", labelStyle.Render(s.Name), s.Email, s.PhoneNumber)
		if i == a.selected {
			b.WriteString(selectedCardStyle.Render(card) + "\n")
		} else {
			b.WriteString(cardStyle.Render(card) + "\n")
		}
	}
	b.WriteString(hintStyle.Render("enter details · a add · e edit · r refresh · q quit") + "\n")
}

func (a *App) viewDetails(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Staff Details") + "\n\n")

	if a.detailState == stateLoading {
		b.WriteString(a.spinner.View() + " Loading record...\n")
		return
	}
	if a.detail == nil {
		b.WriteString(hintStyle.Render("esc back") + "\n")
		return
	}

	s := a.detail
	b.WriteString(fmt.Sprintf("%s %d\n", labelStyle.Render("Id:"), s.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Name:"), s.Name))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Email:"), s.Email))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Phone:"), s.PhoneNumber))
	if !s.StartingDate.IsZero() {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Started:"), s.StartingDate.Format("2006-01-02")))
	}
	b.WriteString("\n" + hintStyle.Render("e edit · d delete · esc back") + "\n")
}

func (a *App) viewForm(b *strings.Builder, title string) {
	b.WriteString(titleStyle.Render(title) + "\n\n")

	if a.page == pageEdit && a.detailState == stateLoading {
		b.WriteString(a.spinner.View() + " Loading record...\n")
		return
	}

	for i := range a.form.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i]) + "\n")
		b.WriteString(a.form.inputs[i].View() + "\n")
		if msg, ok := a.form.fieldErrs[fieldKeys[i]]; ok {
			b.WriteString(fieldErrStyle.Render(msg) + "\n")
		}
	}

	if a.submitting {
		b.WriteString("\n" + a.spinner.View() + " Saving...\n")
	} else {
		b.WriteString("\n" + hintStyle.Render("enter save · tab next field · esc cancel") + "\n")
	}
}
