package store

import "github.com/nafeer/studio/internal/entities"

// ─── Units ───────────────────────────────────────────────────────────────────

// AddUnit appends a unit, assigning an id if absent and order as the current
// unit count + 1. Returns the created record.
func (s *Store) AddUnit(unit entities.Unit) entities.Unit {
	s.mu.Lock()
	if unit.ID == "" {
		unit.ID = s.newID("unit")
	}
	unit.Order = len(s.units) + 1
	s.units = append(s.units, unit)
	s.mu.Unlock()
	s.notify()
	return unit
}

// Units returns a copy of the unit table in insertion order. Consumers sort
// by Order; gaps after deletes are expected.
func (s *Store) Units() []entities.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Unit(nil), s.units...)
}

// UnitByID looks up a unit.
func (s *Store) UnitByID(id string) (entities.Unit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.units {
		if u.ID == id {
			return u, true
		}
	}
	return entities.Unit{}, false
}

// UpdateUnit applies mutate to the unit with the given id. The id itself is
// immutable; changes to it are discarded.
func (s *Store) UpdateUnit(id string, mutate func(*entities.Unit)) error {
	s.mu.Lock()
	found := false
	for i := range s.units {
		if s.units[i].ID == id {
			mutate(&s.units[i])
			s.units[i].ID = id
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return notFound("unit", id)
	}
	s.notify()
	return nil
}

// DeleteUnit removes a unit and cascades three levels deep: its lessons,
// their sections, and those sections' blocks. Deleting a missing id is a
// no-op. Sibling order values are not renumbered.
func (s *Store) DeleteUnit(id string) {
	s.mu.Lock()
	lessonIDs := make(map[string]bool)
	for _, l := range s.lessons {
		if l.UnitID == id {
			lessonIDs[l.ID] = true
		}
	}
	sectionIDs := make(map[string]bool)
	for _, sec := range s.sections {
		if lessonIDs[sec.LessonID] {
			sectionIDs[sec.ID] = true
		}
	}

	s.units = filterUnits(s.units, func(u entities.Unit) bool { return u.ID != id })
	s.lessons = filterLessons(s.lessons, func(l entities.Lesson) bool { return l.UnitID != id })
	s.sections = filterSections(s.sections, func(sec entities.Section) bool { return !lessonIDs[sec.LessonID] })
	s.blocks = filterBlocks(s.blocks, func(b entities.Block) bool { return !sectionIDs[b.SectionID] })
	s.mu.Unlock()
	s.notify()
}

// ─── Lessons ─────────────────────────────────────────────────────────────────

// AddLesson appends a lesson; order counts only siblings within the same
// unit. EstimatedMinutes defaults to 15.
func (s *Store) AddLesson(lesson entities.Lesson) entities.Lesson {
	s.mu.Lock()
	if lesson.ID == "" {
		lesson.ID = s.newID("lesson")
	}
	siblings := 0
	for _, l := range s.lessons {
		if l.UnitID == lesson.UnitID {
			siblings++
		}
	}
	lesson.Order = siblings + 1
	if lesson.EstimatedMinutes == 0 {
		lesson.EstimatedMinutes = 15
	}
	s.lessons = append(s.lessons, lesson)
	s.mu.Unlock()
	s.notify()
	return lesson
}

// Lessons returns a copy of the lesson table.
func (s *Store) Lessons() []entities.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Lesson(nil), s.lessons...)
}

// LessonsByUnit returns the lessons belonging to a unit.
func (s *Store) LessonsByUnit(unitID string) []entities.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Lesson
	for _, l := range s.lessons {
		if l.UnitID == unitID {
			out = append(out, l)
		}
	}
	return out
}

// LessonByID looks up a lesson.
func (s *Store) LessonByID(id string) (entities.Lesson, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.lessons {
		if l.ID == id {
			return l, true
		}
	}
	return entities.Lesson{}, false
}

// UpdateLesson applies mutate to the lesson with the given id.
func (s *Store) UpdateLesson(id string, mutate func(*entities.Lesson)) error {
	s.mu.Lock()
	found := false
	for i := range s.lessons {
		if s.lessons[i].ID == id {
			mutate(&s.lessons[i])
			s.lessons[i].ID = id
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return notFound("lesson", id)
	}
	s.notify()
	return nil
}

// DeleteLesson removes a lesson and cascades to its sections and their
// blocks.
func (s *Store) DeleteLesson(id string) {
	s.mu.Lock()
	sectionIDs := make(map[string]bool)
	for _, sec := range s.sections {
		if sec.LessonID == id {
			sectionIDs[sec.ID] = true
		}
	}

	s.lessons = filterLessons(s.lessons, func(l entities.Lesson) bool { return l.ID != id })
	s.sections = filterSections(s.sections, func(sec entities.Section) bool { return sec.LessonID != id })
	s.blocks = filterBlocks(s.blocks, func(b entities.Block) bool { return !sectionIDs[b.SectionID] })
	s.mu.Unlock()
	s.notify()
}

// ─── Sections ────────────────────────────────────────────────────────────────

// AddSection appends a section; order counts siblings within the same
// lesson. ConceptIDs materializes as an empty list and learningType defaults
// to UNDERSTANDING.
func (s *Store) AddSection(section entities.Section) entities.Section {
	s.mu.Lock()
	if section.ID == "" {
		section.ID = s.newID("sec")
	}
	siblings := 0
	for _, sec := range s.sections {
		if sec.LessonID == section.LessonID {
			siblings++
		}
	}
	section.Order = siblings + 1
	if section.ConceptIDs == nil {
		section.ConceptIDs = []string{}
	}
	if section.LearningType == "" {
		section.LearningType = entities.LearningUnderstanding
	}
	s.sections = append(s.sections, section)
	s.mu.Unlock()
	s.notify()
	return section
}

// Sections returns a copy of the section table.
func (s *Store) Sections() []entities.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Section(nil), s.sections...)
}

// SectionsByLesson returns the sections belonging to a lesson.
func (s *Store) SectionsByLesson(lessonID string) []entities.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Section
	for _, sec := range s.sections {
		if sec.LessonID == lessonID {
			out = append(out, sec)
		}
	}
	return out
}

// SectionByID looks up a section.
func (s *Store) SectionByID(id string) (entities.Section, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return entities.Section{}, false
}

// UpdateSection applies mutate to the section with the given id.
func (s *Store) UpdateSection(id string, mutate func(*entities.Section)) error {
	s.mu.Lock()
	found := false
	for i := range s.sections {
		if s.sections[i].ID == id {
			mutate(&s.sections[i])
			s.sections[i].ID = id
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return notFound("section", id)
	}
	s.notify()
	return nil
}

// DeleteSection removes a section and its blocks. Sections are a cascade
// leaf upward: nothing else references them.
func (s *Store) DeleteSection(id string) {
	s.mu.Lock()
	s.sections = filterSections(s.sections, func(sec entities.Section) bool { return sec.ID != id })
	s.blocks = filterBlocks(s.blocks, func(b entities.Block) bool { return b.SectionID != id })
	s.mu.Unlock()
	s.notify()
}

// LinkConceptToSection adds a concept to a section's concept list.
// Idempotent; returns ErrNotFound when the section does not exist.
func (s *Store) LinkConceptToSection(sectionID, conceptID string) error {
	return s.UpdateSection(sectionID, func(sec *entities.Section) {
		sec.ConceptIDs = appendUnique(sec.ConceptIDs, conceptID)
	})
}

// UnlinkConceptFromSection removes a concept from a section's concept list.
// Removing an absent link is a no-op.
func (s *Store) UnlinkConceptFromSection(sectionID, conceptID string) error {
	return s.UpdateSection(sectionID, func(sec *entities.Section) {
		sec.ConceptIDs = removeID(sec.ConceptIDs, conceptID)
	})
}

// ─── Blocks ──────────────────────────────────────────────────────────────────

// AddBlock appends a block; order counts siblings within the same section.
func (s *Store) AddBlock(block entities.Block) entities.Block {
	s.mu.Lock()
	if block.ID == "" {
		block.ID = s.newID("block")
	}
	siblings := 0
	for _, b := range s.blocks {
		if b.SectionID == block.SectionID {
			siblings++
		}
	}
	block.Order = siblings + 1
	s.blocks = append(s.blocks, block)
	s.mu.Unlock()
	s.notify()
	return block
}

// Blocks returns a copy of the block table.
func (s *Store) Blocks() []entities.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Block(nil), s.blocks...)
}

// BlocksBySection returns the blocks belonging to a section.
func (s *Store) BlocksBySection(sectionID string) []entities.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Block
	for _, b := range s.blocks {
		if b.SectionID == sectionID {
			out = append(out, b)
		}
	}
	return out
}

// BlockByID looks up a block.
func (s *Store) BlockByID(id string) (entities.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.blocks {
		if b.ID == id {
			return b, true
		}
	}
	return entities.Block{}, false
}

// UpdateBlock applies mutate to the block with the given id.
func (s *Store) UpdateBlock(id string, mutate func(*entities.Block)) error {
	s.mu.Lock()
	found := false
	for i := range s.blocks {
		if s.blocks[i].ID == id {
			mutate(&s.blocks[i])
			s.blocks[i].ID = id
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return notFound("block", id)
	}
	s.notify()
	return nil
}

// DeleteBlock removes a block.
func (s *Store) DeleteBlock(id string) {
	s.mu.Lock()
	s.blocks = filterBlocks(s.blocks, func(b entities.Block) bool { return b.ID != id })
	s.mu.Unlock()
	s.notify()
}

// ─── filter helpers ──────────────────────────────────────────────────────────

func filterUnits(in []entities.Unit, keep func(entities.Unit) bool) []entities.Unit {
	out := make([]entities.Unit, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func filterLessons(in []entities.Lesson, keep func(entities.Lesson) bool) []entities.Lesson {
	out := make([]entities.Lesson, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func filterSections(in []entities.Section, keep func(entities.Section) bool) []entities.Section {
	out := make([]entities.Section, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func filterBlocks(in []entities.Block, keep func(entities.Block) bool) []entities.Block {
	out := make([]entities.Block, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
