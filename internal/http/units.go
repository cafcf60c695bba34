package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/entities"
)

// UnitStore defines store operations for unit management.
type UnitStore interface {
	AddUnit(unit entities.Unit) entities.Unit
	Units() []entities.Unit
	UnitByID(id string) (entities.Unit, bool)
	UpdateUnit(id string, mutate func(*entities.Unit)) error
	DeleteUnit(id string)
	LessonsByUnit(unitID string) []entities.Lesson
}

type UnitsController struct {
	store UnitStore
}

func NewUnitsController(store UnitStore) *UnitsController {
	return &UnitsController{store: store}
}

// GetAllUnits returns all units
// GET /api/units
func (uc *UnitsController) GetAllUnits(c *gin.Context) {
	c.JSON(http.StatusOK, uc.store.Units())
}

// GetUnit returns one unit by ID
// GET /api/units/:id
func (uc *UnitsController) GetUnit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	unit, found := uc.store.UnitByID(id)
	if !found {
		respondNotFound(c, "unit")
		return
	}
	c.JSON(http.StatusOK, unit)
}

// CreateUnit creates a new unit at the end of the subject
// POST /api/units
func (uc *UnitsController) CreateUnit(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid unit payload")
		return
	}

	unit := uc.store.AddUnit(entities.Unit{
		Title:       req.Title,
		Description: entities.OptString(req.Description),
	})
	respondCreated(c, unit)
}

// UpdateUnit applies a partial update to a unit
// PATCH /api/units/:id
func (uc *UnitsController) UpdateUnit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Order       *int    `json:"order"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid unit payload")
		return
	}

	err := uc.store.UpdateUnit(id, func(u *entities.Unit) {
		if req.Title != nil {
			u.Title = *req.Title
		}
		if req.Order != nil {
			u.Order = *req.Order
		}
		if req.Description != nil {
			u.Description = entities.OptString(*req.Description)
		}
	})
	if err != nil {
		respondStoreError(c, err, "update unit")
		return
	}

	unit, _ := uc.store.UnitByID(id)
	c.JSON(http.StatusOK, unit)
}

// DeleteUnit removes a unit and everything under it
// DELETE /api/units/:id
func (uc *UnitsController) DeleteUnit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	uc.store.DeleteUnit(id)
	respondSuccess(c, "unit deleted")
}

// GetUnitLessons returns the lessons that belong to a unit
// GET /api/units/:id/lessons
func (uc *UnitsController) GetUnitLessons(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if _, found := uc.store.UnitByID(id); !found {
		respondNotFound(c, "unit")
		return
	}
	c.JSON(http.StatusOK, uc.store.LessonsByUnit(id))
}
