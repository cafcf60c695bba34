package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// WorkspaceSaver persists the current workspace state.
type WorkspaceSaver interface {
	SaveWorkspace() (int, error)
}

// SaveSnapshotTask persists the current workspace document to the snapshot
// database. Reason records what triggered the save for the task log.
type SaveSnapshotTask struct {
	Reason string `json:"reason"`
}

// Config returns the queue configuration for snapshot saves.
func (t SaveSnapshotTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "save_snapshot",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SaveSnapshotProcessor creates a processor function for SaveSnapshotTask.
func SaveSnapshotProcessor(saver WorkspaceSaver) backlite.QueueProcessor[SaveSnapshotTask] {
	return func(ctx context.Context, task SaveSnapshotTask) error {
		if saver == nil {
			return fmt.Errorf("workspace saver not configured")
		}

		size, err := saver.SaveWorkspace()
		if err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}

		log.Printf("[TASK] Saved workspace snapshot (%d bytes, reason=%s)", size, task.Reason)
		return nil
	}
}

// NewSaveSnapshotQueue creates a backlite queue for snapshot save tasks.
func NewSaveSnapshotQueue(saver WorkspaceSaver) backlite.Queue {
	return backlite.NewQueue(SaveSnapshotProcessor(saver))
}
