// Package exporters builds the versioned nested wire document consumed by
// the downstream learning application. The document shape is a stable
// contract: field names, nesting, and null-versus-omitted semantics must not
// change, and every declared field is always present (optionals as explicit
// nulls).
package exporters

import "github.com/nafeer/studio/internal/entities"

// Version tags exported documents. The consumer treats it as opaque and only
// uses it for forward-compatibility detection.
const Version = "1.0"

// Document is the top-level export shape. The flat tables (tags, concepts,
// questions, exams, feedItems) reuse the entity wire encoding directly; the
// curriculum tree is nested unit → lesson → section → block, with child
// foreign keys dropped because the nesting itself carries them.
type Document struct {
	Version   string              `json:"version"`
	Subject   *entities.Subject   `json:"subject"`
	Tags      []entities.Tag      `json:"tags"`
	Concepts  []entities.Concept  `json:"concepts"`
	Units     []UnitDoc           `json:"units"`
	Questions []entities.Question `json:"questions"`
	Exams     []entities.Exam     `json:"exams"`
	FeedItems []entities.FeedItem `json:"feedItems"`
}

// UnitDoc is a unit with its lessons nested, ordered by the lesson order
// field ascending.
type UnitDoc struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Order       int         `json:"order"`
	Description *string     `json:"description"`
	Lessons     []LessonDoc `json:"lessons"`
}

// LessonDoc is a lesson with its sections nested. The unitId foreign key is
// intentionally absent; the importer re-attaches it from the parent unit.
type LessonDoc struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Order            int          `json:"order"`
	EstimatedMinutes int          `json:"estimatedMinutes"`
	Summary          *string      `json:"summary"`
	Sections         []SectionDoc `json:"sections"`
}

// SectionDoc is a section with its blocks nested.
type SectionDoc struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Order        int                   `json:"order"`
	LearningType entities.LearningType `json:"learningType"`
	ConceptIDs   []string              `json:"conceptIds"`
	Blocks       []BlockDoc            `json:"blocks"`
}

// BlockDoc is a block without its sectionId foreign key.
type BlockDoc struct {
	ID         string             `json:"id"`
	Type       entities.BlockType `json:"type"`
	Content    string             `json:"content"`
	Order      int                `json:"order"`
	ConceptRef *string            `json:"conceptRef"`
	Caption    *string            `json:"caption"`
	Metadata   entities.RawJSON   `json:"metadata"`
}
