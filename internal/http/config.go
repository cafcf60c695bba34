package http

import (
	"github.com/nafeer/studio/internal/persistence"
	"github.com/nafeer/studio/internal/scheduler"
	"github.com/nafeer/studio/internal/store"
	"github.com/nafeer/studio/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Store      *store.Store
	Repository *persistence.Repository
	Saver      *persistence.Saver

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Autosave scheduler (optional)
	Autosave *scheduler.AutosaveScheduler

	// Workspace snapshot row key
	WorkspaceKey string

	// Application info
	Version string
}
