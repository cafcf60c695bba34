package http

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/exporters"
	"github.com/nafeer/studio/internal/importers"
	"github.com/nafeer/studio/internal/persistence"
	"github.com/nafeer/studio/internal/scheduler"
	"github.com/nafeer/studio/internal/store"
	"github.com/nafeer/studio/internal/tasks"
)

// ExchangeController handles whole-workspace operations: export, import,
// reset, and explicit saves.
type ExchangeController struct {
	store      *store.Store
	repo       *persistence.Repository
	saver      *persistence.Saver
	taskClient *tasks.Client
	autosave   *scheduler.AutosaveScheduler
	key        string
}

func NewExchangeController(cfg RouterConfig) *ExchangeController {
	return &ExchangeController{
		store:      cfg.Store,
		repo:       cfg.Repository,
		saver:      cfg.Saver,
		taskClient: cfg.TaskClient,
		autosave:   cfg.Autosave,
		key:        cfg.WorkspaceKey,
	}
}

// Export returns the full workspace as a nested JSON document
// GET /api/export
func (ec *ExchangeController) Export(c *gin.Context) {
	data, err := exporters.Marshal(ec.store.Snapshot())
	if err != nil {
		respondInternalError(c, err, "export workspace")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="curriculum.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// Import replaces the entire workspace with an uploaded document. The
// document is validated first; a malformed upload leaves the store untouched.
// POST /api/import
func (ec *ExchangeController) Import(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBadRequest(c, "failed to read request body")
		return
	}

	if err := importers.Apply(ec.store, data); err != nil {
		if errors.Is(err, importers.ErrMalformedDocument) {
			respondBadRequest(c, err.Error())
			return
		}
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	log.Printf("Imported workspace document (%d bytes)", len(data))
	respondSuccess(c, "workspace imported")
}

// Reset clears every table, including the subject
// POST /api/reset
func (ec *ExchangeController) Reset(c *gin.Context) {
	ec.store.ResetAll()
	respondSuccess(c, "workspace reset")
}

// Save persists the current workspace. With the task queue enabled the save
// runs in the background; otherwise it is synchronous.
// POST /api/save
func (ec *ExchangeController) Save(c *gin.Context) {
	if ec.taskClient != nil {
		ids, err := ec.taskClient.Add(tasks.SaveSnapshotTask{Reason: "api"}).Save()
		if err != nil {
			respondInternalError(c, err, "enqueue save task")
			return
		}
		respondAccepted(c, "save queued", gin.H{"task_id": ids[0]})
		return
	}

	size, err := ec.saver.SaveWorkspace()
	if err != nil {
		respondInternalError(c, err, "save workspace")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "workspace saved", Data: gin.H{"bytes": size}})
}

// Workspace reports persistence metadata: last save time and the autosave
// schedule state.
// GET /api/workspace
func (ec *ExchangeController) Workspace(c *gin.Context) {
	info := gin.H{
		"key":             ec.key,
		"autosaveRunning": false,
	}

	if ec.repo != nil {
		updatedAt, err := ec.repo.UpdatedAt(ec.key)
		switch {
		case err == nil:
			info["lastSavedAt"] = updatedAt.Format(time.RFC3339)
		case errors.Is(err, persistence.ErrNoSnapshot):
			info["lastSavedAt"] = nil
		default:
			respondInternalError(c, err, "read workspace metadata")
			return
		}
	}

	if ec.autosave != nil {
		info["autosaveRunning"] = ec.autosave.IsRunning()
		if next := ec.autosave.NextRunTime(); next != nil {
			info["nextAutosaveAt"] = next.Format(time.RFC3339)
		}
	}

	c.JSON(http.StatusOK, info)
}
