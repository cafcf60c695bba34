package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/entities"
)

// BlockStore defines store operations for content block management.
type BlockStore interface {
	AddBlock(block entities.Block) entities.Block
	Blocks() []entities.Block
	BlocksBySection(sectionID string) []entities.Block
	BlockByID(id string) (entities.Block, bool)
	UpdateBlock(id string, mutate func(*entities.Block)) error
	DeleteBlock(id string)
	SectionByID(id string) (entities.Section, bool)
}

type BlocksController struct {
	store BlockStore
}

func NewBlocksController(store BlockStore) *BlocksController {
	return &BlocksController{store: store}
}

// GetAllBlocks returns all content blocks, optionally filtered by section
// GET /api/blocks?sectionId=
func (bc *BlocksController) GetAllBlocks(c *gin.Context) {
	if sectionID := c.Query("sectionId"); sectionID != "" {
		c.JSON(http.StatusOK, bc.store.BlocksBySection(sectionID))
		return
	}
	c.JSON(http.StatusOK, bc.store.Blocks())
}

// GetBlock returns one block by ID
// GET /api/blocks/:id
func (bc *BlocksController) GetBlock(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	block, found := bc.store.BlockByID(id)
	if !found {
		respondNotFound(c, "block")
		return
	}
	c.JSON(http.StatusOK, block)
}

// CreateBlock creates a new content block under a section
// POST /api/blocks
func (bc *BlocksController) CreateBlock(c *gin.Context) {
	var req struct {
		SectionID  string             `json:"sectionId" binding:"required"`
		Type       entities.BlockType `json:"type" binding:"required"`
		Content    string             `json:"content"`
		ConceptRef string             `json:"conceptRef"`
		Caption    string             `json:"caption"`
		Metadata   entities.RawJSON   `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "sectionId and type are required")
		return
	}

	if _, found := bc.store.SectionByID(req.SectionID); !found {
		respondNotFound(c, "section")
		return
	}

	block := bc.store.AddBlock(entities.Block{
		SectionID:  req.SectionID,
		Type:       req.Type,
		Content:    req.Content,
		ConceptRef: entities.OptString(req.ConceptRef),
		Caption:    entities.OptString(req.Caption),
		Metadata:   req.Metadata,
	})
	respondCreated(c, block)
}

// UpdateBlock applies a partial update to a block
// PATCH /api/blocks/:id
func (bc *BlocksController) UpdateBlock(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Type       *entities.BlockType `json:"type"`
		Content    *string             `json:"content"`
		Order      *int                `json:"order"`
		ConceptRef *string             `json:"conceptRef"`
		Caption    *string             `json:"caption"`
		Metadata   entities.RawJSON    `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid block payload")
		return
	}

	err := bc.store.UpdateBlock(id, func(b *entities.Block) {
		if req.Type != nil {
			b.Type = *req.Type
		}
		if req.Content != nil {
			b.Content = *req.Content
		}
		if req.Order != nil {
			b.Order = *req.Order
		}
		if req.ConceptRef != nil {
			b.ConceptRef = entities.OptString(*req.ConceptRef)
		}
		if req.Caption != nil {
			b.Caption = entities.OptString(*req.Caption)
		}
		if req.Metadata != nil {
			b.Metadata = req.Metadata
		}
	})
	if err != nil {
		respondStoreError(c, err, "update block")
		return
	}

	block, _ := bc.store.BlockByID(id)
	c.JSON(http.StatusOK, block)
}

// DeleteBlock removes a block
// DELETE /api/blocks/:id
func (bc *BlocksController) DeleteBlock(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	bc.store.DeleteBlock(id)
	respondSuccess(c, "block deleted")
}
