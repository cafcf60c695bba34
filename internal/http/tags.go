package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/entities"
)

// TagStore defines store operations for tag management.
type TagStore interface {
	AddTag(tag entities.Tag) entities.Tag
	Tags() []entities.Tag
	TagByID(id string) (entities.Tag, bool)
	UpdateTag(id string, mutate func(*entities.Tag)) error
	DeleteTag(id string)
}

type TagsController struct {
	store TagStore
}

func NewTagsController(store TagStore) *TagsController {
	return &TagsController{store: store}
}

// GetAllTags returns all tags
// GET /api/tags
func (tc *TagsController) GetAllTags(c *gin.Context) {
	c.JSON(http.StatusOK, tc.store.Tags())
}

// CreateTag creates a new tag
// POST /api/tags
func (tc *TagsController) CreateTag(c *gin.Context) {
	var req struct {
		NameAr string `json:"nameAr" binding:"required"`
		NameEn string `json:"nameEn"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "nameAr is required")
		return
	}

	tag := tc.store.AddTag(entities.Tag{
		NameAr: req.NameAr,
		NameEn: entities.OptString(req.NameEn),
	})
	respondCreated(c, tag)
}

// UpdateTag applies a partial update to a tag
// PATCH /api/tags/:id
func (tc *TagsController) UpdateTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		NameAr *string `json:"nameAr"`
		NameEn *string `json:"nameEn"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid tag payload")
		return
	}

	err := tc.store.UpdateTag(id, func(t *entities.Tag) {
		if req.NameAr != nil {
			t.NameAr = *req.NameAr
		}
		if req.NameEn != nil {
			t.NameEn = entities.OptString(*req.NameEn)
		}
	})
	if err != nil {
		respondStoreError(c, err, "update tag")
		return
	}

	tag, _ := tc.store.TagByID(id)
	c.JSON(http.StatusOK, tag)
}

// DeleteTag removes a tag and detaches it from all concepts
// DELETE /api/tags/:id
func (tc *TagsController) DeleteTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	tc.store.DeleteTag(id)
	respondSuccess(c, "tag deleted")
}
