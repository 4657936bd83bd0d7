// Package core wires the TUI model, handlers, and renderer into one
// tea.Model. This is the single entry point for the Bubble Tea
// application.
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/nvelliott/flyt/internal/app"
	"github.com/nvelliott/flyt/internal/config"
	"github.com/nvelliott/flyt/internal/events"
	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/handlers"
	"github.com/nvelliott/flyt/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// It delegates updates to the handlers package and rendering to the
// render package.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(ctx context.Context, application *app.App, cfg *config.Config, eventChan <-chan events.Event) *App {
	model := tui.InitialModel(ctx, application, cfg, eventChan)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update handles all messages and updates the model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := handlers.Update(a.model, msg)
	return a, cmd
}

// View renders the current state of the application.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
