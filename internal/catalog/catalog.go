// Package catalog is the static subject catalog: every subject a contributor
// can be assigned, its track, and its unit/lesson template structure.
//
// IDs here are immutable. The mobile app and exported documents key off these
// strings, so they must never be renamed. Scaffolded unit and lesson IDs are
// deterministic (`<subjectId>_U<n>`, `<subjectId>_U<n>_L<m>`) so they stay
// stable across contributors.
package catalog

import (
	"fmt"

	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/store"
)

// UnitTemplate describes one templated unit: its position, display title,
// and the target number of lessons contributors fill in order.
type UnitTemplate struct {
	Order       int    `json:"order"`
	TitleAr     string `json:"titleAr"`
	LessonCount int    `json:"lessonCount"`
}

// Entry is one subject in the catalog.
type Entry struct {
	ID       string         `json:"id"`
	NameAr   string         `json:"nameAr"`
	NameEn   string         `json:"nameEn"`
	Track    entities.Track `json:"track"`
	IsMajor  bool           `json:"isMajor"`
	ColorHex string         `json:"colorHex"`
	Order    int            `json:"order"`
	Units    []UnitTemplate `json:"units"`
}

var unitOrdinals = []string{
	"الوحدة الأولى", "الوحدة الثانية", "الوحدة الثالثة", "الوحدة الرابعة",
	"الوحدة الخامسة", "الوحدة السادسة", "الوحدة السابعة", "الوحدة الثامنة",
}

// uniformUnits builds the common "n units of m lessons each" template.
func uniformUnits(count, lessonCount int) []UnitTemplate {
	units := make([]UnitTemplate, count)
	for i := 0; i < count; i++ {
		units[i] = UnitTemplate{Order: i + 1, TitleAr: unitOrdinals[i], LessonCount: lessonCount}
	}
	return units
}

// Subjects lists every subject in board order. COMMON subjects are taken by
// all students; SCIENCE/LITERARY are track-required unless IsMajor, in which
// case the student picks one within their track.
var Subjects = []Entry{
	{ID: "QURAN", NameAr: "قرآن كريم", NameEn: "Quran", Track: entities.TrackCommon, ColorHex: "#10b981", Order: 1, Units: uniformUnits(6, 4)},
	{ID: "ARABIC", NameAr: "لغة عربية", NameEn: "Arabic Language", Track: entities.TrackCommon, ColorHex: "#f97316", Order: 2, Units: uniformUnits(7, 5)},
	{ID: "ENGLISH", NameAr: "لغة إنجليزية", NameEn: "English Language", Track: entities.TrackCommon, ColorHex: "#3b82f6", Order: 3, Units: uniformUnits(8, 5)},
	{ID: "MATH", NameAr: "رياضيات", NameEn: "Mathematics", Track: entities.TrackCommon, ColorHex: "#d9a441", Order: 4, Units: uniformUnits(8, 5)},
	{ID: "PHYSICS", NameAr: "فيزياء", NameEn: "Physics", Track: entities.TrackScience, ColorHex: "#06b6d4", Order: 5, Units: uniformUnits(6, 4)},
	{ID: "CHEMISTRY", NameAr: "كيمياء", NameEn: "Chemistry", Track: entities.TrackScience, ColorHex: "#a855f7", Order: 6, Units: uniformUnits(6, 4)},
	{ID: "BIOLOGY", NameAr: "أحياء", NameEn: "Biology", Track: entities.TrackScience, IsMajor: true, ColorHex: "#22c55e", Order: 7, Units: uniformUnits(7, 5)},
	{ID: "ENGINEERING_SCI", NameAr: "علوم هندسة", NameEn: "Engineering Sciences", Track: entities.TrackScience, IsMajor: true, ColorHex: "#f59e0b", Order: 8, Units: uniformUnits(6, 4)},
	{ID: "CS", NameAr: "علوم حاسوب", NameEn: "Computer Science", Track: entities.TrackScience, IsMajor: true, ColorHex: "#6366f1", Order: 9, Units: uniformUnits(6, 4)},
	{ID: "HISTORY", NameAr: "تاريخ", NameEn: "History", Track: entities.TrackLiterary, ColorHex: "#eab308", Order: 10, Units: uniformUnits(6, 4)},
	{ID: "GEOGRAPHY", NameAr: "جغرافيا", NameEn: "Geography", Track: entities.TrackLiterary, ColorHex: "#14b8a6", Order: 11, Units: uniformUnits(6, 4)},
	{ID: "ISLAMIC_STUDIES", NameAr: "دراسات إسلامية", NameEn: "Islamic Studies", Track: entities.TrackLiterary, IsMajor: true, ColorHex: "#fbbf24", Order: 12, Units: uniformUnits(6, 4)},
	{ID: "MILITARY_SCI", NameAr: "علوم عسكرية", NameEn: "Military Sciences", Track: entities.TrackLiterary, IsMajor: true, ColorHex: "#64748b", Order: 13, Units: uniformUnits(5, 4)},
}

// Find returns the catalog entry for a subject id.
func Find(id string) (Entry, bool) {
	for _, e := range Subjects {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// TotalLessons sums the lesson targets across a subject's units.
func TotalLessons(id string) int {
	entry, ok := Find(id)
	if !ok {
		return 0
	}
	total := 0
	for _, u := range entry.Units {
		total += u.LessonCount
	}
	return total
}

// Scaffold builds the pre-loaded editor state for a freshly assigned
// subject: exactly the template's units and empty lessons, so progress
// tracking is deterministic from day one. The result replaces the whole
// store state.
func Scaffold(subjectID string) (store.Snapshot, error) {
	entry, ok := Find(subjectID)
	if !ok {
		return store.Snapshot{}, fmt.Errorf("catalog: unknown subject %q", subjectID)
	}

	nameEn := entry.NameEn
	colorHex := entry.ColorHex
	snap := store.Snapshot{
		Subject: &entities.Subject{
			ID:       entry.ID,
			NameAr:   entry.NameAr,
			NameEn:   &nameEn,
			Track:    entry.Track,
			IsMajor:  entry.IsMajor,
			ColorHex: &colorHex,
			Order:    entry.Order,
		},
		Units:     []entities.Unit{},
		Lessons:   []entities.Lesson{},
		Sections:  []entities.Section{},
		Blocks:    []entities.Block{},
		Tags:      []entities.Tag{},
		Concepts:  []entities.Concept{},
		FeedItems: []entities.FeedItem{},
		Questions: []entities.Question{},
		Exams:     []entities.Exam{},
	}

	for _, tmpl := range entry.Units {
		unitID := fmt.Sprintf("%s_U%d", entry.ID, tmpl.Order)
		snap.Units = append(snap.Units, entities.Unit{
			ID:    unitID,
			Title: tmpl.TitleAr,
			Order: tmpl.Order,
		})
		for l := 1; l <= tmpl.LessonCount; l++ {
			snap.Lessons = append(snap.Lessons, entities.Lesson{
				ID:               fmt.Sprintf("%s_L%d", unitID, l),
				UnitID:           unitID,
				Title:            fmt.Sprintf("الدرس %d", l),
				Order:            l,
				EstimatedMinutes: 15,
			})
		}
	}

	return snap, nil
}
