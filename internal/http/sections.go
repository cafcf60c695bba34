package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/entities"
)

// SectionStore defines store operations for section management.
type SectionStore interface {
	AddSection(section entities.Section) entities.Section
	Sections() []entities.Section
	SectionsByLesson(lessonID string) []entities.Section
	SectionByID(id string) (entities.Section, bool)
	UpdateSection(id string, mutate func(*entities.Section)) error
	DeleteSection(id string)
	LessonByID(id string) (entities.Lesson, bool)
	BlocksBySection(sectionID string) []entities.Block
	LinkConceptToSection(sectionID, conceptID string) error
	UnlinkConceptFromSection(sectionID, conceptID string) error
	ConceptByID(id string) (entities.Concept, bool)
}

type SectionsController struct {
	store SectionStore
}

func NewSectionsController(store SectionStore) *SectionsController {
	return &SectionsController{store: store}
}

// GetAllSections returns all sections, optionally filtered by lesson
// GET /api/sections?lessonId=
func (sc *SectionsController) GetAllSections(c *gin.Context) {
	if lessonID := c.Query("lessonId"); lessonID != "" {
		c.JSON(http.StatusOK, sc.store.SectionsByLesson(lessonID))
		return
	}
	c.JSON(http.StatusOK, sc.store.Sections())
}

// GetSection returns one section by ID
// GET /api/sections/:id
func (sc *SectionsController) GetSection(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	section, found := sc.store.SectionByID(id)
	if !found {
		respondNotFound(c, "section")
		return
	}
	c.JSON(http.StatusOK, section)
}

// CreateSection creates a new section under a lesson
// POST /api/sections
func (sc *SectionsController) CreateSection(c *gin.Context) {
	var req struct {
		LessonID     string                `json:"lessonId" binding:"required"`
		Title        string                `json:"title"`
		LearningType entities.LearningType `json:"learningType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "lessonId is required")
		return
	}

	if _, found := sc.store.LessonByID(req.LessonID); !found {
		respondNotFound(c, "lesson")
		return
	}

	section := sc.store.AddSection(entities.Section{
		LessonID:     req.LessonID,
		Title:        req.Title,
		LearningType: req.LearningType,
	})
	respondCreated(c, section)
}

// UpdateSection applies a partial update to a section
// PATCH /api/sections/:id
func (sc *SectionsController) UpdateSection(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title        *string                `json:"title"`
		Order        *int                   `json:"order"`
		LearningType *entities.LearningType `json:"learningType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid section payload")
		return
	}

	err := sc.store.UpdateSection(id, func(sec *entities.Section) {
		if req.Title != nil {
			sec.Title = *req.Title
		}
		if req.Order != nil {
			sec.Order = *req.Order
		}
		if req.LearningType != nil {
			sec.LearningType = *req.LearningType
		}
	})
	if err != nil {
		respondStoreError(c, err, "update section")
		return
	}

	section, _ := sc.store.SectionByID(id)
	c.JSON(http.StatusOK, section)
}

// DeleteSection removes a section and its blocks
// DELETE /api/sections/:id
func (sc *SectionsController) DeleteSection(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	sc.store.DeleteSection(id)
	respondSuccess(c, "section deleted")
}

// GetSectionBlocks returns the blocks of a section
// GET /api/sections/:id/blocks
func (sc *SectionsController) GetSectionBlocks(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if _, found := sc.store.SectionByID(id); !found {
		respondNotFound(c, "section")
		return
	}
	c.JSON(http.StatusOK, sc.store.BlocksBySection(id))
}

// LinkConcept attaches a concept to a section
// POST /api/sections/:id/concepts
func (sc *SectionsController) LinkConcept(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		ConceptID string `json:"conceptId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "conceptId is required")
		return
	}

	if _, found := sc.store.ConceptByID(req.ConceptID); !found {
		respondNotFound(c, "concept")
		return
	}

	if err := sc.store.LinkConceptToSection(id, req.ConceptID); err != nil {
		respondStoreError(c, err, "link concept to section")
		return
	}

	section, _ := sc.store.SectionByID(id)
	c.JSON(http.StatusOK, section)
}

// UnlinkConcept detaches a concept from a section
// DELETE /api/sections/:id/concepts/:conceptId
func (sc *SectionsController) UnlinkConcept(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	conceptID, ok := idParam(c, "conceptId")
	if !ok {
		return
	}

	if err := sc.store.UnlinkConceptFromSection(id, conceptID); err != nil {
		respondStoreError(c, err, "unlink concept from section")
		return
	}

	section, _ := sc.store.SectionByID(id)
	c.JSON(http.StatusOK, section)
}
