package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/entities"
)

// FeedItemStore defines store operations for feed item management.
type FeedItemStore interface {
	AddFeedItem(item entities.FeedItem) entities.FeedItem
	FeedItems() []entities.FeedItem
	FeedItemsByConcept(conceptID string) []entities.FeedItem
	FeedItemByID(id string) (entities.FeedItem, bool)
	UpdateFeedItem(id string, mutate func(*entities.FeedItem)) error
	DeleteFeedItem(id string)
	ConceptByID(id string) (entities.Concept, bool)
}

type FeedItemsController struct {
	store FeedItemStore
}

func NewFeedItemsController(store FeedItemStore) *FeedItemsController {
	return &FeedItemsController{store: store}
}

// GetAllFeedItems returns all feed items, optionally filtered by concept
// GET /api/feed-items?conceptId=
func (fc *FeedItemsController) GetAllFeedItems(c *gin.Context) {
	if conceptID := c.Query("conceptId"); conceptID != "" {
		c.JSON(http.StatusOK, fc.store.FeedItemsByConcept(conceptID))
		return
	}
	c.JSON(http.StatusOK, fc.store.FeedItems())
}

// GetFeedItem returns one feed item by ID
// GET /api/feed-items/:id
func (fc *FeedItemsController) GetFeedItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	item, found := fc.store.FeedItemByID(id)
	if !found {
		respondNotFound(c, "feed item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateFeedItem creates a new feed item for a concept
// POST /api/feed-items
func (fc *FeedItemsController) CreateFeedItem(c *gin.Context) {
	var req struct {
		ConceptID       string                    `json:"conceptId" binding:"required"`
		Type            entities.FeedItemType     `json:"type"`
		ContentAr       string                    `json:"contentAr"`
		Back            string                    `json:"back"`
		ContentEn       string                    `json:"contentEn"`
		ImageURL        string                    `json:"imageUrl"`
		InteractionType *entities.InteractionType `json:"interactionType"`
		CorrectAnswer   string                    `json:"correctAnswer"`
		Options         []string                  `json:"options"`
		Explanation     string                    `json:"explanation"`
		QuestionID      string                    `json:"questionId"`
		Priority        int                       `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "conceptId is required")
		return
	}

	if _, found := fc.store.ConceptByID(req.ConceptID); !found {
		respondNotFound(c, "concept")
		return
	}

	item := fc.store.AddFeedItem(entities.FeedItem{
		ConceptID:       req.ConceptID,
		Type:            req.Type,
		ContentAr:       req.ContentAr,
		Back:            entities.OptString(req.Back),
		ContentEn:       entities.OptString(req.ContentEn),
		ImageURL:        entities.OptString(req.ImageURL),
		InteractionType: req.InteractionType,
		CorrectAnswer:   entities.OptString(req.CorrectAnswer),
		Options:         req.Options,
		Explanation:     entities.OptString(req.Explanation),
		QuestionID:      entities.OptString(req.QuestionID),
		Priority:        req.Priority,
	})
	respondCreated(c, item)
}

// UpdateFeedItem applies a partial update to a feed item
// PATCH /api/feed-items/:id
func (fc *FeedItemsController) UpdateFeedItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Type            *entities.FeedItemType    `json:"type"`
		ContentAr       *string                   `json:"contentAr"`
		Back            *string                   `json:"back"`
		ContentEn       *string                   `json:"contentEn"`
		ImageURL        *string                   `json:"imageUrl"`
		InteractionType *entities.InteractionType `json:"interactionType"`
		CorrectAnswer   *string                   `json:"correctAnswer"`
		Options         []string                  `json:"options"`
		Explanation     *string                   `json:"explanation"`
		QuestionID      *string                   `json:"questionId"`
		Priority        *int                      `json:"priority"`
		Order           *int                      `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid feed item payload")
		return
	}

	err := fc.store.UpdateFeedItem(id, func(f *entities.FeedItem) {
		if req.Type != nil {
			f.Type = *req.Type
		}
		if req.ContentAr != nil {
			f.ContentAr = *req.ContentAr
		}
		if req.Back != nil {
			f.Back = entities.OptString(*req.Back)
		}
		if req.ContentEn != nil {
			f.ContentEn = entities.OptString(*req.ContentEn)
		}
		if req.ImageURL != nil {
			f.ImageURL = entities.OptString(*req.ImageURL)
		}
		if req.InteractionType != nil {
			f.InteractionType = req.InteractionType
		}
		if req.CorrectAnswer != nil {
			f.CorrectAnswer = entities.OptString(*req.CorrectAnswer)
		}
		if req.Options != nil {
			f.Options = req.Options
		}
		if req.Explanation != nil {
			f.Explanation = entities.OptString(*req.Explanation)
		}
		if req.QuestionID != nil {
			f.QuestionID = entities.OptString(*req.QuestionID)
		}
		if req.Priority != nil {
			f.Priority = *req.Priority
		}
		if req.Order != nil {
			f.Order = *req.Order
		}
	})
	if err != nil {
		respondStoreError(c, err, "update feed item")
		return
	}

	item, _ := fc.store.FeedItemByID(id)
	c.JSON(http.StatusOK, item)
}

// DeleteFeedItem removes a feed item
// DELETE /api/feed-items/:id
func (fc *FeedItemsController) DeleteFeedItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	fc.store.DeleteFeedItem(id)
	respondSuccess(c, "feed item deleted")
}
