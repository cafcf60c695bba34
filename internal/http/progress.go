package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/status"
	"github.com/nafeer/studio/internal/store"
)

// ProgressController reports derived authoring progress across the
// curriculum tree.
type ProgressController struct {
	store *store.Store
}

func NewProgressController(st *store.Store) *ProgressController {
	return &ProgressController{store: st}
}

type unitProgressEntry struct {
	UnitID   string          `json:"unitId"`
	Title    string          `json:"title"`
	Order    int             `json:"order"`
	Progress status.Progress `json:"progress"`
}

// GetProgress returns subject-wide progress plus a per-unit breakdown
// GET /api/progress
func (pc *ProgressController) GetProgress(c *gin.Context) {
	snap := pc.store.Snapshot()

	units := make([]unitProgressEntry, 0, len(snap.Units))
	for _, u := range snap.Units {
		units = append(units, unitProgressEntry{
			UnitID:   u.ID,
			Title:    u.Title,
			Order:    u.Order,
			Progress: status.UnitProgress(snap, u.ID),
		})
	}
	sort.SliceStable(units, func(i, j int) bool { return units[i].Order < units[j].Order })

	c.JSON(http.StatusOK, gin.H{
		"subject": status.SubjectProgress(snap),
		"units":   units,
	})
}

// GetUnitProgress returns progress over one unit's lessons
// GET /api/units/:id/progress
func (pc *ProgressController) GetUnitProgress(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	snap := pc.store.Snapshot()
	found := false
	for _, u := range snap.Units {
		if u.ID == id {
			found = true
			break
		}
	}
	if !found {
		respondNotFound(c, "unit")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"unitId":   id,
		"progress": status.UnitProgress(snap, id),
	})
}

// GetStatuses returns the derived status of every lesson in one response,
// keyed by lesson id
// GET /api/progress/lessons
func (pc *ProgressController) GetStatuses(c *gin.Context) {
	snap := pc.store.Snapshot()

	statuses := make(map[string]status.LessonStatus, len(snap.Lessons))
	for _, l := range snap.Lessons {
		statuses[l.ID] = status.ForLesson(l.ID, snap.Sections, snap.Blocks, l)
	}
	c.JSON(http.StatusOK, statuses)
}
