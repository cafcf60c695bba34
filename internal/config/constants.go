package config

const (
	// DefaultDatabasePath is the default path for the snapshot database
	DefaultDatabasePath = "./studio.db"

	// DefaultWorkspaceKey names the snapshot row used when no workspace is configured
	DefaultWorkspaceKey = "workspace"
)
