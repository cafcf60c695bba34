package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/store"
)

func strPtr(s string) *string { return &s }

func TestForLessonPrecedence(t *testing.T) {
	lesson := entities.Lesson{ID: "l1", Summary: strPtr("ملخص")}
	section := entities.Section{ID: "s1", LessonID: "l1"}
	block := entities.Block{ID: "b1", SectionID: "s1"}

	tests := []struct {
		name     string
		sections []entities.Section
		blocks   []entities.Block
		lesson   entities.Lesson
		want     LessonStatus
	}{
		{"no sections", nil, nil, lesson, Empty},
		{"sections but no blocks", []entities.Section{section}, nil, lesson, Started},
		{"blocks but nil summary", []entities.Section{section}, []entities.Block{block}, entities.Lesson{ID: "l1"}, Partial},
		{"blocks and summary", []entities.Section{section}, []entities.Block{block}, lesson, Done},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForLesson("l1", tt.sections, tt.blocks, tt.lesson)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForLessonWhitespaceSummaryIsPartial(t *testing.T) {
	lesson := entities.Lesson{ID: "l1", Summary: strPtr("   \n\t ")}
	sections := []entities.Section{{ID: "s1", LessonID: "l1"}}
	blocks := []entities.Block{{ID: "b1", SectionID: "s1"}}

	assert.Equal(t, Partial, ForLesson("l1", sections, blocks, lesson))
}

func TestForLessonIgnoresOtherLessonsContent(t *testing.T) {
	// Sections and blocks belonging to a sibling lesson must not count.
	sections := []entities.Section{{ID: "s2", LessonID: "l2"}}
	blocks := []entities.Block{{ID: "b2", SectionID: "s2"}}

	assert.Equal(t, Empty, ForLesson("l1", sections, blocks, entities.Lesson{ID: "l1"}))
}

func TestForLessonStrictPrecedenceOverSummary(t *testing.T) {
	// A summary alone never advances the state past the block check.
	lesson := entities.Lesson{ID: "l1", Summary: strPtr("مكتوب مسبقا")}
	sections := []entities.Section{{ID: "s1", LessonID: "l1"}}

	assert.Equal(t, Started, ForLesson("l1", sections, nil, lesson))
}

func TestComputeRoundsPercentage(t *testing.T) {
	// One of three lessons done: 33.33 rounds to 33.
	sections := []entities.Section{{ID: "s1", LessonID: "l1"}}
	blocks := []entities.Block{{ID: "b1", SectionID: "s1"}}
	lessons := map[string]entities.Lesson{
		"l1": {ID: "l1", Summary: strPtr("تم")},
		"l2": {ID: "l2"},
		"l3": {ID: "l3"},
	}

	got := Compute([]string{"l1", "l2", "l3"}, sections, blocks, lessons)
	assert.Equal(t, Progress{Done: 1, Total: 3, Pct: 33}, got)
}

func TestComputeRoundsHalfUp(t *testing.T) {
	// Two of three done: 66.67 rounds to 67.
	sections := []entities.Section{
		{ID: "s1", LessonID: "l1"},
		{ID: "s2", LessonID: "l2"},
	}
	blocks := []entities.Block{
		{ID: "b1", SectionID: "s1"},
		{ID: "b2", SectionID: "s2"},
	}
	lessons := map[string]entities.Lesson{
		"l1": {ID: "l1", Summary: strPtr("تم")},
		"l2": {ID: "l2", Summary: strPtr("تم")},
		"l3": {ID: "l3"},
	}

	got := Compute([]string{"l1", "l2", "l3"}, sections, blocks, lessons)
	assert.Equal(t, Progress{Done: 2, Total: 3, Pct: 67}, got)
}

func TestComputeEmptyList(t *testing.T) {
	assert.Equal(t, Progress{}, Compute(nil, nil, nil, nil))
}

func TestForSnapshot(t *testing.T) {
	snap := store.Snapshot{
		Lessons:  []entities.Lesson{{ID: "l1", UnitID: "u1"}},
		Sections: []entities.Section{{ID: "s1", LessonID: "l1"}},
	}

	got, ok := ForSnapshot(snap, "l1")
	require.True(t, ok)
	assert.Equal(t, Started, got)

	_, ok = ForSnapshot(snap, "missing")
	assert.False(t, ok)
}

func TestUnitProgressScopesToUnit(t *testing.T) {
	snap := store.Snapshot{
		Lessons: []entities.Lesson{
			{ID: "l1", UnitID: "u1", Summary: strPtr("تم")},
			{ID: "l2", UnitID: "u1"},
			{ID: "l3", UnitID: "u2", Summary: strPtr("تم")},
		},
		Sections: []entities.Section{
			{ID: "s1", LessonID: "l1"},
			{ID: "s3", LessonID: "l3"},
		},
		Blocks: []entities.Block{
			{ID: "b1", SectionID: "s1"},
			{ID: "b3", SectionID: "s3"},
		},
	}

	assert.Equal(t, Progress{Done: 1, Total: 2, Pct: 50}, UnitProgress(snap, "u1"))
	assert.Equal(t, Progress{Done: 1, Total: 1, Pct: 100}, UnitProgress(snap, "u2"))
	assert.Equal(t, Progress{}, UnitProgress(snap, "empty-unit"))
}

func TestSubjectProgressCoversAllLessons(t *testing.T) {
	snap := store.Snapshot{
		Lessons: []entities.Lesson{
			{ID: "l1", UnitID: "u1", Summary: strPtr("تم")},
			{ID: "l2", UnitID: "u2"},
		},
		Sections: []entities.Section{{ID: "s1", LessonID: "l1"}},
		Blocks:   []entities.Block{{ID: "b1", SectionID: "s1"}},
	}

	assert.Equal(t, Progress{Done: 1, Total: 2, Pct: 50}, SubjectProgress(snap))
}
