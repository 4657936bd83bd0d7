package app

import (
	"github.com/nvelliott/flyt/internal/events"
	issueservice "github.com/nvelliott/flyt/internal/services/issue"
	"github.com/nvelliott/flyt/internal/store"
	"github.com/nvelliott/flyt/internal/workflow"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	store store.IssueStore

	// Event system for live updates across instances
	eventClient events.Publisher

	// Workflow model parsed from config
	model *workflow.Model

	// Service layer (business logic)
	IssueService issueservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(st store.IssueStore, eventClient events.Publisher, model *workflow.Model) *App {
	return &App{
		store:        st,
		eventClient:  eventClient,
		model:        model,
		IssueService: issueservice.NewService(st, eventClient, model),
	}
}

// Store returns the underlying issue store for direct database access.
func (a *App) Store() store.IssueStore {
	return a.store
}

// Model returns the workflow model the app was configured with.
func (a *App) Model() *workflow.Model {
	return a.model
}

// Events returns the event client, which may be nil in single-instance mode.
func (a *App) Events() events.Publisher {
	return a.eventClient
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.eventClient != nil {
		return a.eventClient.Close()
	}
	return nil
}
