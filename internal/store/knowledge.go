package store

import "github.com/nafeer/studio/internal/entities"

// ─── Tags ────────────────────────────────────────────────────────────────────

// AddTag appends a tag, assigning an id if absent.
func (s *Store) AddTag(tag entities.Tag) entities.Tag {
	s.mu.Lock()
	if tag.ID == "" {
		tag.ID = s.newID("tag")
	}
	s.tags = append(s.tags, tag)
	s.mu.Unlock()
	s.notify()
	return tag
}

// Tags returns a copy of the tag table.
func (s *Store) Tags() []entities.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Tag(nil), s.tags...)
}

// TagByID looks up a tag.
func (s *Store) TagByID(id string) (entities.Tag, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tags {
		if t.ID == id {
			return t, true
		}
	}
	return entities.Tag{}, false
}

// UpdateTag applies mutate to the tag with the given id.
func (s *Store) UpdateTag(id string, mutate func(*entities.Tag)) error {
	s.mu.Lock()
	found := false
	for i := range s.tags {
		if s.tags[i].ID == id {
			mutate(&s.tags[i])
			s.tags[i].ID = id
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return notFound("tag", id)
	}
	s.notify()
	return nil
}

// DeleteTag removes a tag and unlinks it from every concept. Concepts
// themselves are never cascade-deleted by a tag removal.
func (s *Store) DeleteTag(id string) {
	s.mu.Lock()
	s.tags = filterTags(s.tags, func(t entities.Tag) bool { return t.ID != id })
	for i := range s.concepts {
		s.concepts[i].TagIDs = removeID(s.concepts[i].TagIDs, id)
	}
	s.mu.Unlock()
	s.notify()
}

// ─── Concepts ────────────────────────────────────────────────────────────────

// AddConcept appends a concept. TagIDs materializes as an empty list and
// difficulty defaults to 1.
func (s *Store) AddConcept(concept entities.Concept) entities.Concept {
	s.mu.Lock()
	if concept.ID == "" {
		concept.ID = s.newID("concept")
	}
	if concept.TagIDs == nil {
		concept.TagIDs = []string{}
	}
	if concept.Difficulty == 0 {
		concept.Difficulty = 1
	}
	s.concepts = append(s.concepts, concept)
	s.mu.Unlock()
	s.notify()
	return concept
}

// Concepts returns a copy of the concept table.
func (s *Store) Concepts() []entities.Concept {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Concept(nil), s.concepts...)
}

// ConceptByID looks up a concept.
func (s *Store) ConceptByID(id string) (entities.Concept, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.concepts {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Concept{}, false
}

// UpdateConcept applies mutate to the concept with the given id.
func (s *Store) UpdateConcept(id string, mutate func(*entities.Concept)) error {
	s.mu.Lock()
	found := false
	for i := range s.concepts {
		if s.concepts[i].ID == id {
			mutate(&s.concepts[i])
			s.concepts[i].ID = id
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return notFound("concept", id)
	}
	s.notify()
	return nil
}

// DeleteConcept removes a concept and fans out across every table that can
// reference it: the concept is dropped from each section's and question's
// concept list, block references to it are nulled, and its feed items,
// which cannot exist without the concept, are deleted.
func (s *Store) DeleteConcept(id string) {
	s.mu.Lock()
	s.concepts = filterConcepts(s.concepts, func(c entities.Concept) bool { return c.ID != id })
	for i := range s.sections {
		s.sections[i].ConceptIDs = removeID(s.sections[i].ConceptIDs, id)
	}
	for i := range s.blocks {
		if s.blocks[i].ConceptRef != nil && *s.blocks[i].ConceptRef == id {
			s.blocks[i].ConceptRef = nil
		}
	}
	s.feedItems = filterFeedItems(s.feedItems, func(f entities.FeedItem) bool { return f.ConceptID != id })
	for i := range s.questions {
		s.questions[i].ConceptIDs = removeID(s.questions[i].ConceptIDs, id)
	}
	s.mu.Unlock()
	s.notify()
}

// LinkTagToConcept adds a tag to a concept's tag list. Idempotent; returns
// ErrNotFound when the concept does not exist.
func (s *Store) LinkTagToConcept(conceptID, tagID string) error {
	return s.UpdateConcept(conceptID, func(c *entities.Concept) {
		c.TagIDs = appendUnique(c.TagIDs, tagID)
	})
}

// UnlinkTagFromConcept removes a tag from a concept's tag list.
func (s *Store) UnlinkTagFromConcept(conceptID, tagID string) error {
	return s.UpdateConcept(conceptID, func(c *entities.Concept) {
		c.TagIDs = removeID(c.TagIDs, tagID)
	})
}

// ─── Feed items ──────────────────────────────────────────────────────────────

// AddFeedItem appends a feed item. Order counts existing siblings for the
// same concept, zero-based unlike the curriculum tables; the feed consumer
// treats it as a plain sort key. Priority defaults to 1.
func (s *Store) AddFeedItem(item entities.FeedItem) entities.FeedItem {
	s.mu.Lock()
	if item.ID == "" {
		item.ID = s.newID("feed")
	}
	siblings := 0
	for _, f := range s.feedItems {
		if f.ConceptID == item.ConceptID {
			siblings++
		}
	}
	item.Order = siblings
	if item.Priority == 0 {
		item.Priority = 1
	}
	s.feedItems = append(s.feedItems, item)
	s.mu.Unlock()
	s.notify()
	return item
}

// FeedItems returns a copy of the feed item table.
func (s *Store) FeedItems() []entities.FeedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.FeedItem(nil), s.feedItems...)
}

// FeedItemsByConcept returns the feed items derived from a concept.
func (s *Store) FeedItemsByConcept(conceptID string) []entities.FeedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.FeedItem
	for _, f := range s.feedItems {
		if f.ConceptID == conceptID {
			out = append(out, f)
		}
	}
	return out
}

// FeedItemByID looks up a feed item.
func (s *Store) FeedItemByID(id string) (entities.FeedItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.feedItems {
		if f.ID == id {
			return f, true
		}
	}
	return entities.FeedItem{}, false
}

// UpdateFeedItem applies mutate to the feed item with the given id.
func (s *Store) UpdateFeedItem(id string, mutate func(*entities.FeedItem)) error {
	s.mu.Lock()
	found := false
	for i := range s.feedItems {
		if s.feedItems[i].ID == id {
			mutate(&s.feedItems[i])
			s.feedItems[i].ID = id
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return notFound("feed item", id)
	}
	s.notify()
	return nil
}

// DeleteFeedItem removes a feed item.
func (s *Store) DeleteFeedItem(id string) {
	s.mu.Lock()
	s.feedItems = filterFeedItems(s.feedItems, func(f entities.FeedItem) bool { return f.ID != id })
	s.mu.Unlock()
	s.notify()
}

func filterTags(in []entities.Tag, keep func(entities.Tag) bool) []entities.Tag {
	out := make([]entities.Tag, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func filterConcepts(in []entities.Concept, keep func(entities.Concept) bool) []entities.Concept {
	out := make([]entities.Concept, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func filterFeedItems(in []entities.FeedItem, keep func(entities.FeedItem) bool) []entities.FeedItem {
	out := make([]entities.FeedItem, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
