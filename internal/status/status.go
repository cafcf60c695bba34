// Package status derives lesson completion state and aggregate progress from
// a table snapshot. Everything here is a pure function over the input,
// cheap enough to recompute on every read.
package status

import (
	"math"
	"strings"

	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/store"
)

// LessonStatus is the four-state completion machine. The state is recomputed
// from scratch on every call; there is no stored transition.
type LessonStatus string

const (
	Empty   LessonStatus = "empty"   // no sections at all
	Started LessonStatus = "started" // has sections but no blocks yet
	Partial LessonStatus = "partial" // has blocks but no summary
	Done    LessonStatus = "done"    // has blocks + summary
)

// ForLesson resolves the lesson's completion state. Precedence is strict:
// the section check runs first, then blocks, then the summary; a lesson
// with sections and blocks but a blank summary is partial no matter what.
func ForLesson(lessonID string, sections []entities.Section, blocks []entities.Block, lesson entities.Lesson) LessonStatus {
	sectionIDs := make(map[string]bool)
	for _, sec := range sections {
		if sec.LessonID == lessonID {
			sectionIDs[sec.ID] = true
		}
	}
	if len(sectionIDs) == 0 {
		return Empty
	}

	totalBlocks := 0
	for _, b := range blocks {
		if sectionIDs[b.SectionID] {
			totalBlocks++
		}
	}
	if totalBlocks == 0 {
		return Started
	}

	if lesson.Summary == nil || strings.TrimSpace(*lesson.Summary) == "" {
		return Partial
	}
	return Done
}

// Progress aggregates completion over a list of lessons.
type Progress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
	Pct   int `json:"pct"`
}

// Compute counts how many of the given lessons resolve to done and returns
// the rounded percentage. An empty list yields 0/0/0 rather than dividing
// by zero.
func Compute(lessonIDs []string, sections []entities.Section, blocks []entities.Block, lessons map[string]entities.Lesson) Progress {
	total := len(lessonIDs)
	if total == 0 {
		return Progress{}
	}

	done := 0
	for _, id := range lessonIDs {
		if ForLesson(id, sections, blocks, lessons[id]) == Done {
			done++
		}
	}

	return Progress{
		Done:  done,
		Total: total,
		Pct:   int(math.Round(float64(done) / float64(total) * 100)),
	}
}

// ForSnapshot resolves a single lesson's status against a store snapshot.
func ForSnapshot(snap store.Snapshot, lessonID string) (LessonStatus, bool) {
	for _, l := range snap.Lessons {
		if l.ID == lessonID {
			return ForLesson(lessonID, snap.Sections, snap.Blocks, l), true
		}
	}
	return "", false
}

// UnitProgress aggregates progress over one unit's lessons.
func UnitProgress(snap store.Snapshot, unitID string) Progress {
	var ids []string
	lessons := make(map[string]entities.Lesson)
	for _, l := range snap.Lessons {
		if l.UnitID == unitID {
			ids = append(ids, l.ID)
			lessons[l.ID] = l
		}
	}
	return Compute(ids, snap.Sections, snap.Blocks, lessons)
}

// SubjectProgress aggregates progress over every lesson in the snapshot.
func SubjectProgress(snap store.Snapshot) Progress {
	ids := make([]string, 0, len(snap.Lessons))
	lessons := make(map[string]entities.Lesson, len(snap.Lessons))
	for _, l := range snap.Lessons {
		ids = append(ids, l.ID)
		lessons[l.ID] = l
	}
	return Compute(ids, snap.Sections, snap.Blocks, lessons)
}
