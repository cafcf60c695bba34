package exporters

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/store"
)

// Export converts a store snapshot into the nested wire document. Units,
// lessons, sections and blocks are each ordered by their order field
// ascending; every list field is emitted as a list (never null) and every
// optional scalar as an explicit null.
func Export(snap store.Snapshot) *Document {
	doc := &Document{
		Version:   Version,
		Subject:   snap.Subject,
		Tags:      snap.Tags,
		Concepts:  make([]entities.Concept, len(snap.Concepts)),
		Units:     make([]UnitDoc, 0, len(snap.Units)),
		Questions: make([]entities.Question, len(snap.Questions)),
		Exams:     make([]entities.Exam, len(snap.Exams)),
		FeedItems: snap.FeedItems,
	}
	if doc.Tags == nil {
		doc.Tags = []entities.Tag{}
	}
	if doc.FeedItems == nil {
		doc.FeedItems = []entities.FeedItem{}
	}

	for i, c := range snap.Concepts {
		if c.TagIDs == nil {
			c.TagIDs = []string{}
		}
		doc.Concepts[i] = c
	}
	for i, q := range snap.Questions {
		if q.ConceptIDs == nil {
			q.ConceptIDs = []string{}
		}
		doc.Questions[i] = q
	}
	for i, e := range snap.Exams {
		if e.QuestionIDs == nil {
			e.QuestionIDs = []string{}
		}
		doc.Exams[i] = e
	}

	units := append([]entities.Unit(nil), snap.Units...)
	sort.SliceStable(units, func(i, j int) bool { return units[i].Order < units[j].Order })

	for _, u := range units {
		doc.Units = append(doc.Units, UnitDoc{
			ID:          u.ID,
			Title:       u.Title,
			Order:       u.Order,
			Description: u.Description,
			Lessons:     exportLessons(snap, u.ID),
		})
	}

	return doc
}

// Marshal serializes a store snapshot to the wire document JSON.
func Marshal(snap store.Snapshot) ([]byte, error) {
	data, err := json.Marshal(Export(snap))
	if err != nil {
		return nil, fmt.Errorf("marshal export document: %w", err)
	}
	return data, nil
}

func exportLessons(snap store.Snapshot, unitID string) []LessonDoc {
	lessons := make([]entities.Lesson, 0)
	for _, l := range snap.Lessons {
		if l.UnitID == unitID {
			lessons = append(lessons, l)
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })

	out := make([]LessonDoc, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, LessonDoc{
			ID:               l.ID,
			Title:            l.Title,
			Order:            l.Order,
			EstimatedMinutes: l.EstimatedMinutes,
			Summary:          l.Summary,
			Sections:         exportSections(snap, l.ID),
		})
	}
	return out
}

func exportSections(snap store.Snapshot, lessonID string) []SectionDoc {
	sections := make([]entities.Section, 0)
	for _, sec := range snap.Sections {
		if sec.LessonID == lessonID {
			sections = append(sections, sec)
		}
	}
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })

	out := make([]SectionDoc, 0, len(sections))
	for _, sec := range sections {
		conceptIDs := sec.ConceptIDs
		if conceptIDs == nil {
			conceptIDs = []string{}
		}
		out = append(out, SectionDoc{
			ID:           sec.ID,
			Title:        sec.Title,
			Order:        sec.Order,
			LearningType: sec.LearningType,
			ConceptIDs:   conceptIDs,
			Blocks:       exportBlocks(snap, sec.ID),
		})
	}
	return out
}

func exportBlocks(snap store.Snapshot, sectionID string) []BlockDoc {
	blocks := make([]entities.Block, 0)
	for _, b := range snap.Blocks {
		if b.SectionID == sectionID {
			blocks = append(blocks, b)
		}
	}
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].Order < blocks[j].Order })

	out := make([]BlockDoc, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, BlockDoc{
			ID:         b.ID,
			Type:       b.Type,
			Content:    b.Content,
			Order:      b.Order,
			ConceptRef: b.ConceptRef,
			Caption:    b.Caption,
			Metadata:   b.Metadata,
		})
	}
	return out
}
