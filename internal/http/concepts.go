package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/entities"
)

// ConceptStore defines store operations for concept management.
type ConceptStore interface {
	AddConcept(concept entities.Concept) entities.Concept
	Concepts() []entities.Concept
	ConceptByID(id string) (entities.Concept, bool)
	UpdateConcept(id string, mutate func(*entities.Concept)) error
	DeleteConcept(id string)
	LinkTagToConcept(conceptID, tagID string) error
	UnlinkTagFromConcept(conceptID, tagID string) error
	TagByID(id string) (entities.Tag, bool)
	FeedItemsByConcept(conceptID string) []entities.FeedItem
}

type ConceptsController struct {
	store ConceptStore
}

func NewConceptsController(store ConceptStore) *ConceptsController {
	return &ConceptsController{store: store}
}

// GetAllConcepts returns all concepts
// GET /api/concepts
func (cc *ConceptsController) GetAllConcepts(c *gin.Context) {
	c.JSON(http.StatusOK, cc.store.Concepts())
}

// GetConcept returns one concept by ID
// GET /api/concepts/:id
func (cc *ConceptsController) GetConcept(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	concept, found := cc.store.ConceptByID(id)
	if !found {
		respondNotFound(c, "concept")
		return
	}
	c.JSON(http.StatusOK, concept)
}

// CreateConcept creates a new concept
// POST /api/concepts
func (cc *ConceptsController) CreateConcept(c *gin.Context) {
	var req struct {
		Type            entities.ConceptType `json:"type"`
		TitleAr         string               `json:"titleAr" binding:"required"`
		TitleEn         string               `json:"titleEn"`
		Definition      string               `json:"definition"`
		ShortDefinition string               `json:"shortDefinition"`
		Formula         string               `json:"formula"`
		ImageURL        string               `json:"imageUrl"`
		Difficulty      int                  `json:"difficulty"`
		ExtraData       entities.RawJSON     `json:"extraData"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "titleAr is required")
		return
	}

	concept := cc.store.AddConcept(entities.Concept{
		Type:            req.Type,
		TitleAr:         req.TitleAr,
		TitleEn:         entities.OptString(req.TitleEn),
		Definition:      req.Definition,
		ShortDefinition: entities.OptString(req.ShortDefinition),
		Formula:         entities.OptString(req.Formula),
		ImageURL:        entities.OptString(req.ImageURL),
		Difficulty:      req.Difficulty,
		ExtraData:       req.ExtraData,
	})
	respondCreated(c, concept)
}

// UpdateConcept applies a partial update to a concept
// PATCH /api/concepts/:id
func (cc *ConceptsController) UpdateConcept(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Type            *entities.ConceptType `json:"type"`
		TitleAr         *string               `json:"titleAr"`
		TitleEn         *string               `json:"titleEn"`
		Definition      *string               `json:"definition"`
		ShortDefinition *string               `json:"shortDefinition"`
		Formula         *string               `json:"formula"`
		ImageURL        *string               `json:"imageUrl"`
		Difficulty      *int                  `json:"difficulty"`
		ExtraData       entities.RawJSON      `json:"extraData"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid concept payload")
		return
	}

	err := cc.store.UpdateConcept(id, func(k *entities.Concept) {
		if req.Type != nil {
			k.Type = *req.Type
		}
		if req.TitleAr != nil {
			k.TitleAr = *req.TitleAr
		}
		if req.TitleEn != nil {
			k.TitleEn = entities.OptString(*req.TitleEn)
		}
		if req.Definition != nil {
			k.Definition = *req.Definition
		}
		if req.ShortDefinition != nil {
			k.ShortDefinition = entities.OptString(*req.ShortDefinition)
		}
		if req.Formula != nil {
			k.Formula = entities.OptString(*req.Formula)
		}
		if req.ImageURL != nil {
			k.ImageURL = entities.OptString(*req.ImageURL)
		}
		if req.Difficulty != nil {
			k.Difficulty = *req.Difficulty
		}
		if req.ExtraData != nil {
			k.ExtraData = req.ExtraData
		}
	})
	if err != nil {
		respondStoreError(c, err, "update concept")
		return
	}

	concept, _ := cc.store.ConceptByID(id)
	c.JSON(http.StatusOK, concept)
}

// DeleteConcept removes a concept and every reference to it: section links,
// block references, its feed items, and question links
// DELETE /api/concepts/:id
func (cc *ConceptsController) DeleteConcept(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	cc.store.DeleteConcept(id)
	respondSuccess(c, "concept deleted")
}

// GetConceptFeedItems returns the feed items derived from a concept
// GET /api/concepts/:id/feed-items
func (cc *ConceptsController) GetConceptFeedItems(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if _, found := cc.store.ConceptByID(id); !found {
		respondNotFound(c, "concept")
		return
	}
	c.JSON(http.StatusOK, cc.store.FeedItemsByConcept(id))
}

// LinkTag attaches a tag to a concept
// POST /api/concepts/:id/tags
func (cc *ConceptsController) LinkTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		TagID string `json:"tagId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "tagId is required")
		return
	}

	if _, found := cc.store.TagByID(req.TagID); !found {
		respondNotFound(c, "tag")
		return
	}

	if err := cc.store.LinkTagToConcept(id, req.TagID); err != nil {
		respondStoreError(c, err, "link tag to concept")
		return
	}

	concept, _ := cc.store.ConceptByID(id)
	c.JSON(http.StatusOK, concept)
}

// UnlinkTag detaches a tag from a concept
// DELETE /api/concepts/:id/tags/:tagId
func (cc *ConceptsController) UnlinkTag(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	tagID, ok := idParam(c, "tagId")
	if !ok {
		return
	}

	if err := cc.store.UnlinkTagFromConcept(id, tagID); err != nil {
		respondStoreError(c, err, "unlink tag from concept")
		return
	}

	concept, _ := cc.store.ConceptByID(id)
	c.JSON(http.StatusOK, concept)
}
