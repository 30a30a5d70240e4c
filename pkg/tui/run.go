package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
)

// Run starts the interactive view and blocks until the user quits.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
