package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model. It owns the form and the app-level keys
// (submit and quit); everything else goes to the form.
type AppModel struct {
	Form *FormView
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(form *FormView) *AppModel {
	return &AppModel{Form: form}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Form.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, a.Form.Keys.Quit):
			a.Form.aborted = true
			a.Form.Close()
			return a, tea.Quit
		case key.Matches(msg, a.Form.Keys.Submit):
			a.Form.submitted = true
			a.Form.Close()
			return a, tea.Quit
		}
	}

	v, cmd := a.Form.Update(msg)
	if f, ok := v.(*FormView); ok {
		a.Form = f
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Form.View()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
