// Package entities defines the normalized curriculum data model: the
// unit → lesson → section → block tree plus the knowledge artifacts
// (tags, concepts, feed items, quiz-bank questions, exams) that reference it.
//
// All entities use opaque string IDs unique within their table. Order fields
// are 1-based and assigned at creation time as "sibling count + 1"; they are
// never renumbered on delete, so consumers must sort by order rather than
// assume density.
package entities

// BlockType enumerates the atomic content element kinds inside a section.
type BlockType string

const (
	BlockText         BlockType = "TEXT"
	BlockHeading      BlockType = "HEADING"
	BlockImage        BlockType = "IMAGE"
	BlockGIF          BlockType = "GIF"
	BlockFormula      BlockType = "FORMULA"
	BlockHighlightBox BlockType = "HIGHLIGHT_BOX"
	BlockExample      BlockType = "EXAMPLE"
	BlockTip          BlockType = "TIP"
	BlockList         BlockType = "LIST"
	BlockTable        BlockType = "TABLE"
	BlockQuote        BlockType = "QUOTE"
	BlockDivider      BlockType = "DIVIDER"
)

// LearningType tags a section with its learning mode.
type LearningType string

const (
	LearningUnderstanding LearningType = "UNDERSTANDING"
	LearningMemorization  LearningType = "MEMORIZATION"
	LearningHybrid        LearningType = "HYBRID"
)

// Unit is a top-level curriculum grouping (a chapter) containing lessons.
type Unit struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Order       int     `json:"order"`
	Description *string `json:"description"`
}

// Lesson is a single teachable session inside a unit.
type Lesson struct {
	ID               string  `json:"id"`
	UnitID           string  `json:"unitId"`
	Title            string  `json:"title"`
	Order            int     `json:"order"`
	EstimatedMinutes int     `json:"estimatedMinutes"`
	Summary          *string `json:"summary"`
}

// Section is a sub-topic inside a lesson, linked to concepts and holding
// content blocks.
type Section struct {
	ID           string       `json:"id"`
	LessonID     string       `json:"lessonId"`
	Title        string       `json:"title"`
	Order        int          `json:"order"`
	LearningType LearningType `json:"learningType"`
	ConceptIDs   []string     `json:"conceptIds"`
}

// Block is an atomic content element inside a section. Metadata is an opaque
// JSON payload whose shape depends on the block type (e.g. list style, table
// dimensions); the store never inspects it.
type Block struct {
	ID         string    `json:"id"`
	SectionID  string    `json:"sectionId"`
	Type       BlockType `json:"type"`
	Content    string    `json:"content"`
	Order      int       `json:"order"`
	ConceptRef *string   `json:"conceptRef"`
	Caption    *string   `json:"caption"`
	Metadata   RawJSON   `json:"metadata"`
}
