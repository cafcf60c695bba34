package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/status"
)

// LessonStore defines store operations for lesson management.
type LessonStore interface {
	AddLesson(lesson entities.Lesson) entities.Lesson
	Lessons() []entities.Lesson
	LessonsByUnit(unitID string) []entities.Lesson
	LessonByID(id string) (entities.Lesson, bool)
	UpdateLesson(id string, mutate func(*entities.Lesson)) error
	DeleteLesson(id string)
	UnitByID(id string) (entities.Unit, bool)
	SectionsByLesson(lessonID string) []entities.Section
	Sections() []entities.Section
	Blocks() []entities.Block
}

type LessonsController struct {
	store LessonStore
}

func NewLessonsController(store LessonStore) *LessonsController {
	return &LessonsController{store: store}
}

// GetAllLessons returns all lessons, optionally filtered by unit
// GET /api/lessons?unitId=
func (lc *LessonsController) GetAllLessons(c *gin.Context) {
	if unitID := c.Query("unitId"); unitID != "" {
		c.JSON(http.StatusOK, lc.store.LessonsByUnit(unitID))
		return
	}
	c.JSON(http.StatusOK, lc.store.Lessons())
}

// GetLesson returns one lesson by ID
// GET /api/lessons/:id
func (lc *LessonsController) GetLesson(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	lesson, found := lc.store.LessonByID(id)
	if !found {
		respondNotFound(c, "lesson")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// CreateLesson creates a new lesson under a unit
// POST /api/lessons
func (lc *LessonsController) CreateLesson(c *gin.Context) {
	var req struct {
		UnitID           string `json:"unitId" binding:"required"`
		Title            string `json:"title"`
		EstimatedMinutes int    `json:"estimatedMinutes"`
		Summary          string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "unitId is required")
		return
	}

	if _, found := lc.store.UnitByID(req.UnitID); !found {
		respondNotFound(c, "unit")
		return
	}

	lesson := lc.store.AddLesson(entities.Lesson{
		UnitID:           req.UnitID,
		Title:            req.Title,
		EstimatedMinutes: req.EstimatedMinutes,
		Summary:          entities.OptString(req.Summary),
	})
	respondCreated(c, lesson)
}

// UpdateLesson applies a partial update to a lesson
// PATCH /api/lessons/:id
func (lc *LessonsController) UpdateLesson(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title            *string `json:"title"`
		Order            *int    `json:"order"`
		EstimatedMinutes *int    `json:"estimatedMinutes"`
		Summary          *string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid lesson payload")
		return
	}

	err := lc.store.UpdateLesson(id, func(l *entities.Lesson) {
		if req.Title != nil {
			l.Title = *req.Title
		}
		if req.Order != nil {
			l.Order = *req.Order
		}
		if req.EstimatedMinutes != nil {
			l.EstimatedMinutes = *req.EstimatedMinutes
		}
		if req.Summary != nil {
			l.Summary = entities.OptString(*req.Summary)
		}
	})
	if err != nil {
		respondStoreError(c, err, "update lesson")
		return
	}

	lesson, _ := lc.store.LessonByID(id)
	c.JSON(http.StatusOK, lesson)
}

// DeleteLesson removes a lesson, its sections and their blocks
// DELETE /api/lessons/:id
func (lc *LessonsController) DeleteLesson(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	lc.store.DeleteLesson(id)
	respondSuccess(c, "lesson deleted")
}

// GetLessonSections returns the sections of a lesson
// GET /api/lessons/:id/sections
func (lc *LessonsController) GetLessonSections(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if _, found := lc.store.LessonByID(id); !found {
		respondNotFound(c, "lesson")
		return
	}
	c.JSON(http.StatusOK, lc.store.SectionsByLesson(id))
}

// GetLessonStatus derives a lesson's authoring status from its content
// GET /api/lessons/:id/status
func (lc *LessonsController) GetLessonStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	lesson, found := lc.store.LessonByID(id)
	if !found {
		respondNotFound(c, "lesson")
		return
	}

	st := status.ForLesson(id, lc.store.Sections(), lc.store.Blocks(), lesson)
	c.JSON(http.StatusOK, gin.H{"lessonId": id, "status": st})
}
