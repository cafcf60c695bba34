package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/catalog"
	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/store"
)

// SubjectStore defines store operations for subject assignment.
type SubjectStore interface {
	Subject() *entities.Subject
	SetSubject(subject entities.Subject) entities.Subject
	Replace(snap store.Snapshot)
}

type SubjectController struct {
	store SubjectStore
}

func NewSubjectController(store SubjectStore) *SubjectController {
	return &SubjectController{store: store}
}

// GetSubject returns the currently assigned subject, or null
// GET /api/subject
func (sc *SubjectController) GetSubject(c *gin.Context) {
	c.JSON(http.StatusOK, sc.store.Subject())
}

// SetSubject assigns the workspace subject. Existing curriculum content is
// kept; use Scaffold to start from the catalog template instead.
// PUT /api/subject
func (sc *SubjectController) SetSubject(c *gin.Context) {
	var req struct {
		NameAr   string         `json:"nameAr" binding:"required"`
		NameEn   string         `json:"nameEn"`
		Track    entities.Track `json:"path"`
		IsMajor  bool           `json:"isMajor"`
		ColorHex string         `json:"colorHex"`
		Order    int            `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "nameAr is required")
		return
	}

	subject := sc.store.SetSubject(entities.Subject{
		NameAr:   req.NameAr,
		NameEn:   entities.OptString(req.NameEn),
		Track:    req.Track,
		IsMajor:  req.IsMajor,
		ColorHex: entities.OptString(req.ColorHex),
		Order:    req.Order,
	})
	c.JSON(http.StatusOK, subject)
}

// GetCatalog returns the static subject catalog
// GET /api/catalog
func (sc *SubjectController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Subjects)
}

// Scaffold replaces the whole workspace with the catalog template for a
// subject: its units and empty lessons, with deterministic ids.
// POST /api/subject/scaffold
func (sc *SubjectController) Scaffold(c *gin.Context) {
	var req struct {
		SubjectID string `json:"subjectId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "subjectId is required")
		return
	}

	snap, err := catalog.Scaffold(req.SubjectID)
	if err != nil {
		respondError(c, http.StatusNotFound, err.Error())
		return
	}

	sc.store.Replace(snap)
	c.JSON(http.StatusOK, gin.H{
		"subject": snap.Subject,
		"units":   len(snap.Units),
		"lessons": len(snap.Lessons),
	})
}
