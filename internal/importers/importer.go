// Package importers parses an export document and replaces the store's
// normalized tables with its contents. Import is all-or-nothing: the full
// table set is built and validated before a single store mutation happens,
// so malformed input leaves the store exactly as it was.
package importers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/exporters"
	"github.com/nafeer/studio/internal/store"
)

// ErrMalformedDocument is returned when the input is not valid JSON or does
// not match the expected top-level document shape.
var ErrMalformedDocument = errors.New("malformed document")

// Parse decodes and shape-checks a wire document. The units key must be
// present (an empty curriculum exports as an empty array, never as a missing
// key); other tables default to empty when absent.
func Parse(data []byte) (*exporters.Document, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if _, ok := keys["units"]; !ok {
		return nil, fmt.Errorf("%w: missing units", ErrMalformedDocument)
	}

	var doc exporters.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}

// Flatten converts the nested document back into normalized tables,
// re-attaching each child's foreign key from its parent's id, and validates
// the flat tables (question answer variants, feed item concept references).
func Flatten(doc *exporters.Document) (store.Snapshot, error) {
	snap := store.Snapshot{
		Subject:   doc.Subject,
		Units:     make([]entities.Unit, 0, len(doc.Units)),
		Lessons:   []entities.Lesson{},
		Sections:  []entities.Section{},
		Blocks:    []entities.Block{},
		Tags:      doc.Tags,
		Concepts:  doc.Concepts,
		FeedItems: doc.FeedItems,
		Questions: doc.Questions,
		Exams:     doc.Exams,
	}
	if snap.Tags == nil {
		snap.Tags = []entities.Tag{}
	}
	if snap.Concepts == nil {
		snap.Concepts = []entities.Concept{}
	}
	if snap.FeedItems == nil {
		snap.FeedItems = []entities.FeedItem{}
	}
	if snap.Questions == nil {
		snap.Questions = []entities.Question{}
	}
	if snap.Exams == nil {
		snap.Exams = []entities.Exam{}
	}

	for _, u := range doc.Units {
		snap.Units = append(snap.Units, entities.Unit{
			ID:          u.ID,
			Title:       u.Title,
			Order:       u.Order,
			Description: u.Description,
		})
		for _, l := range u.Lessons {
			snap.Lessons = append(snap.Lessons, entities.Lesson{
				ID:               l.ID,
				UnitID:           u.ID,
				Title:            l.Title,
				Order:            l.Order,
				EstimatedMinutes: l.EstimatedMinutes,
				Summary:          l.Summary,
			})
			for _, sec := range l.Sections {
				conceptIDs := sec.ConceptIDs
				if conceptIDs == nil {
					conceptIDs = []string{}
				}
				snap.Sections = append(snap.Sections, entities.Section{
					ID:           sec.ID,
					LessonID:     l.ID,
					Title:        sec.Title,
					Order:        sec.Order,
					LearningType: sec.LearningType,
					ConceptIDs:   conceptIDs,
				})
				for _, b := range sec.Blocks {
					snap.Blocks = append(snap.Blocks, entities.Block{
						ID:         b.ID,
						SectionID:  sec.ID,
						Type:       b.Type,
						Content:    b.Content,
						Order:      b.Order,
						ConceptRef: b.ConceptRef,
						Caption:    b.Caption,
						Metadata:   b.Metadata,
					})
				}
			}
		}
	}

	for i := range snap.Concepts {
		if snap.Concepts[i].TagIDs == nil {
			snap.Concepts[i].TagIDs = []string{}
		}
	}
	for i := range snap.Exams {
		if snap.Exams[i].QuestionIDs == nil {
			snap.Exams[i].QuestionIDs = []string{}
		}
	}
	for i, q := range snap.Questions {
		if q.ConceptIDs == nil {
			snap.Questions[i].ConceptIDs = []string{}
		}
		if err := q.Validate(); err != nil {
			return store.Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}

	return snap, nil
}

// Apply parses data and, only after the whole document flattens and
// validates, swaps the store's tables in one atomic replace.
func Apply(st *store.Store, data []byte) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	snap, err := Flatten(doc)
	if err != nil {
		return err
	}
	st.Replace(snap)
	return nil
}
