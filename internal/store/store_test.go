package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nafeer/studio/internal/entities"
)

func strPtr(s string) *string { return &s }

func TestAddUnitAssignsIDAndOrder(t *testing.T) {
	st := New()

	u1 := st.AddUnit(entities.Unit{Title: "الوحدة الأولى"})
	u2 := st.AddUnit(entities.Unit{Title: "الوحدة الثانية"})

	assert.NotEmpty(t, u1.ID)
	assert.NotEqual(t, u1.ID, u2.ID)
	assert.Equal(t, 1, u1.Order)
	assert.Equal(t, 2, u2.Order)
}

func TestAddUnitKeepsProvidedID(t *testing.T) {
	st := New()

	u := st.AddUnit(entities.Unit{ID: "PHYSICS_U1", Title: "الوحدة الأولى"})
	assert.Equal(t, "PHYSICS_U1", u.ID)
}

func TestOrderNotRenumberedAfterDelete(t *testing.T) {
	st := New()

	u1 := st.AddUnit(entities.Unit{Title: "a"})
	u2 := st.AddUnit(entities.Unit{Title: "b"})
	st.DeleteUnit(u1.ID)

	u3 := st.AddUnit(entities.Unit{Title: "c"})

	got, ok := st.UnitByID(u2.ID)
	require.True(t, ok)
	assert.Equal(t, 2, got.Order, "survivors keep their order")
	assert.Equal(t, 2, u3.Order, "new order counts current siblings + 1")
}

func TestLessonOrderCountsOnlySiblings(t *testing.T) {
	st := New()

	u1 := st.AddUnit(entities.Unit{Title: "a"})
	u2 := st.AddUnit(entities.Unit{Title: "b"})

	l1 := st.AddLesson(entities.Lesson{UnitID: u1.ID, Title: "one"})
	l2 := st.AddLesson(entities.Lesson{UnitID: u1.ID, Title: "two"})
	other := st.AddLesson(entities.Lesson{UnitID: u2.ID, Title: "other"})

	assert.Equal(t, 1, l1.Order)
	assert.Equal(t, 2, l2.Order)
	assert.Equal(t, 1, other.Order)
	assert.Equal(t, 15, l1.EstimatedMinutes)
}

func TestUpdateRetainsID(t *testing.T) {
	st := New()
	u := st.AddUnit(entities.Unit{Title: "before"})

	err := st.UpdateUnit(u.ID, func(unit *entities.Unit) {
		unit.Title = "after"
		unit.ID = "hijacked"
	})
	require.NoError(t, err)

	got, ok := st.UnitByID(u.ID)
	require.True(t, ok)
	assert.Equal(t, "after", got.Title)

	_, ok = st.UnitByID("hijacked")
	assert.False(t, ok)
}

func TestUpdateMissingReturnsErrNotFound(t *testing.T) {
	st := New()

	err := st.UpdateUnit("nope", func(*entities.Unit) {})
	assert.ErrorIs(t, err, ErrNotFound)

	err = st.UpdateLesson("nope", func(*entities.Lesson) {})
	assert.ErrorIs(t, err, ErrNotFound)

	err = st.UpdateQuestion("nope", func(*entities.Question) {})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	st := New()
	st.AddUnit(entities.Unit{Title: "keep"})

	st.DeleteUnit("missing")
	st.DeleteLesson("missing")
	st.DeleteConcept("missing")

	assert.Len(t, st.Units(), 1)
}

func TestDeleteUnitCascadesThreeLevels(t *testing.T) {
	st := New()

	unit := st.AddUnit(entities.Unit{Title: "doomed"})
	keepUnit := st.AddUnit(entities.Unit{Title: "keep"})

	lesson := st.AddLesson(entities.Lesson{UnitID: unit.ID, Title: "l"})
	keepLesson := st.AddLesson(entities.Lesson{UnitID: keepUnit.ID, Title: "kl"})

	section := st.AddSection(entities.Section{LessonID: lesson.ID, Title: "s"})
	keepSection := st.AddSection(entities.Section{LessonID: keepLesson.ID, Title: "ks"})

	block := st.AddBlock(entities.Block{SectionID: section.ID, Type: entities.BlockText, Content: "b"})
	keepBlock := st.AddBlock(entities.Block{SectionID: keepSection.ID, Type: entities.BlockText, Content: "kb"})

	st.DeleteUnit(unit.ID)

	_, ok := st.LessonByID(lesson.ID)
	assert.False(t, ok, "lesson should cascade")
	_, ok = st.SectionByID(section.ID)
	assert.False(t, ok, "section should cascade")
	_, ok = st.BlockByID(block.ID)
	assert.False(t, ok, "block should cascade")

	_, ok = st.LessonByID(keepLesson.ID)
	assert.True(t, ok)
	_, ok = st.SectionByID(keepSection.ID)
	assert.True(t, ok)
	_, ok = st.BlockByID(keepBlock.ID)
	assert.True(t, ok)
}

func TestDeleteLessonCascades(t *testing.T) {
	st := New()

	unit := st.AddUnit(entities.Unit{Title: "u"})
	lesson := st.AddLesson(entities.Lesson{UnitID: unit.ID, Title: "l"})
	section := st.AddSection(entities.Section{LessonID: lesson.ID, Title: "s"})
	block := st.AddBlock(entities.Block{SectionID: section.ID, Type: entities.BlockText})

	st.DeleteLesson(lesson.ID)

	_, ok := st.UnitByID(unit.ID)
	assert.True(t, ok, "parent unit survives")
	_, ok = st.SectionByID(section.ID)
	assert.False(t, ok)
	_, ok = st.BlockByID(block.ID)
	assert.False(t, ok)
}

func TestDeleteSectionCascadesToBlocks(t *testing.T) {
	st := New()

	unit := st.AddUnit(entities.Unit{Title: "u"})
	lesson := st.AddLesson(entities.Lesson{UnitID: unit.ID, Title: "l"})
	section := st.AddSection(entities.Section{LessonID: lesson.ID, Title: "s"})
	block := st.AddBlock(entities.Block{SectionID: section.ID, Type: entities.BlockText})

	st.DeleteSection(section.ID)

	_, ok := st.BlockByID(block.ID)
	assert.False(t, ok)
	_, ok = st.LessonByID(lesson.ID)
	assert.True(t, ok)
}

func TestDeleteConceptFanOut(t *testing.T) {
	st := New()

	unit := st.AddUnit(entities.Unit{Title: "u"})
	lesson := st.AddLesson(entities.Lesson{UnitID: unit.ID, Title: "l"})
	section := st.AddSection(entities.Section{LessonID: lesson.ID, Title: "s"})

	concept := st.AddConcept(entities.Concept{Type: entities.ConceptDefinition, TitleAr: "مفهوم"})
	other := st.AddConcept(entities.Concept{Type: entities.ConceptFact, TitleAr: "آخر"})

	require.NoError(t, st.LinkConceptToSection(section.ID, concept.ID))
	require.NoError(t, st.LinkConceptToSection(section.ID, other.ID))

	block := st.AddBlock(entities.Block{
		SectionID:  section.ID,
		Type:       entities.BlockText,
		ConceptRef: strPtr(concept.ID),
	})

	item := st.AddFeedItem(entities.FeedItem{ConceptID: concept.ID, Type: entities.FeedDefinition})
	otherItem := st.AddFeedItem(entities.FeedItem{ConceptID: other.ID, Type: entities.FeedFact})

	question := st.AddQuestion(entities.Question{TextAr: "سؤال"})
	require.NoError(t, st.LinkConceptToQuestion(question.ID, concept.ID))

	st.DeleteConcept(concept.ID)

	// Section keeps only the surviving link
	sec, _ := st.SectionByID(section.ID)
	assert.Equal(t, []string{other.ID}, sec.ConceptIDs)

	// Block survives with its reference nulled
	b, ok := st.BlockByID(block.ID)
	require.True(t, ok)
	assert.Nil(t, b.ConceptRef)

	// Feed items of the concept are gone; others stay
	_, ok = st.FeedItemByID(item.ID)
	assert.False(t, ok)
	_, ok = st.FeedItemByID(otherItem.ID)
	assert.True(t, ok)

	// Question survives without the link
	q, ok := st.QuestionByID(question.ID)
	require.True(t, ok)
	assert.Empty(t, q.ConceptIDs)
}

func TestDeleteTagUnlinksFromConcepts(t *testing.T) {
	st := New()

	tag := st.AddTag(entities.Tag{NameAr: "وسم"})
	concept := st.AddConcept(entities.Concept{TitleAr: "مفهوم"})
	require.NoError(t, st.LinkTagToConcept(concept.ID, tag.ID))

	st.DeleteTag(tag.ID)

	got, _ := st.ConceptByID(concept.ID)
	assert.Empty(t, got.TagIDs)
	assert.Empty(t, st.Tags())
}

func TestLinkIdempotence(t *testing.T) {
	st := New()

	unit := st.AddUnit(entities.Unit{})
	lesson := st.AddLesson(entities.Lesson{UnitID: unit.ID})
	section := st.AddSection(entities.Section{LessonID: lesson.ID})
	concept := st.AddConcept(entities.Concept{TitleAr: "c"})

	require.NoError(t, st.LinkConceptToSection(section.ID, concept.ID))
	require.NoError(t, st.LinkConceptToSection(section.ID, concept.ID))

	sec, _ := st.SectionByID(section.ID)
	assert.Equal(t, []string{concept.ID}, sec.ConceptIDs)

	// Unlinking twice is also safe
	require.NoError(t, st.UnlinkConceptFromSection(section.ID, concept.ID))
	require.NoError(t, st.UnlinkConceptFromSection(section.ID, concept.ID))

	sec, _ = st.SectionByID(section.ID)
	assert.Empty(t, sec.ConceptIDs)
}

func TestLinkToMissingParent(t *testing.T) {
	st := New()

	err := st.LinkConceptToSection("missing", "c1")
	assert.ErrorIs(t, err, ErrNotFound)

	err = st.AddQuestionToExam("missing", "q1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedItemOrderIsZeroBased(t *testing.T) {
	st := New()

	concept := st.AddConcept(entities.Concept{TitleAr: "c"})
	first := st.AddFeedItem(entities.FeedItem{ConceptID: concept.ID})
	second := st.AddFeedItem(entities.FeedItem{ConceptID: concept.ID})

	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)
	assert.Equal(t, 1, first.Priority)
}

func TestQuestionDefaults(t *testing.T) {
	st := New()

	q := st.AddQuestion(entities.Question{TextAr: "نص"})

	assert.Equal(t, entities.QuestionMCQ, q.Type)
	assert.Equal(t, entities.AnswerText, q.CorrectAnswer.Kind)
	assert.Equal(t, 1, q.Difficulty)
	assert.Equal(t, 1, q.Points)
	assert.Equal(t, 60, q.EstimatedSeconds)
	assert.Equal(t, entities.CognitiveRecall, q.CognitiveLevel)
	assert.Equal(t, entities.SourceOriginal, q.Source)
	assert.NotNil(t, q.ConceptIDs)
}

func TestDeleteQuestionRemovesFromExams(t *testing.T) {
	st := New()

	q1 := st.AddQuestion(entities.Question{TextAr: "a"})
	q2 := st.AddQuestion(entities.Question{TextAr: "b"})

	exam := st.AddExam(entities.Exam{TitleAr: "امتحان"})
	require.NoError(t, st.AddQuestionToExam(exam.ID, q1.ID))
	require.NoError(t, st.AddQuestionToExam(exam.ID, q2.ID))

	st.DeleteQuestion(q1.ID)

	got, _ := st.ExamByID(exam.ID)
	assert.Equal(t, []string{q2.ID}, got.QuestionIDs)
}

func TestDeleteExamKeepsQuestions(t *testing.T) {
	st := New()

	q := st.AddQuestion(entities.Question{TextAr: "a"})
	exam := st.AddExam(entities.Exam{TitleAr: "امتحان"})
	require.NoError(t, st.AddQuestionToExam(exam.ID, q.ID))

	st.DeleteExam(exam.ID)

	_, ok := st.QuestionByID(q.ID)
	assert.True(t, ok, "exam deletion never touches the quiz bank")
}

func TestSetSubjectKeepsContent(t *testing.T) {
	st := New()
	st.AddUnit(entities.Unit{Title: "u"})

	subject := st.SetSubject(entities.Subject{NameAr: "فيزياء", Track: entities.TrackScience})

	assert.NotEmpty(t, subject.ID)
	assert.Len(t, st.Units(), 1, "assigning a subject never clears tables")

	got := st.Subject()
	require.NotNil(t, got)
	assert.Equal(t, "فيزياء", got.NameAr)
}

func TestResetAllClearsEverything(t *testing.T) {
	st := New()

	st.SetSubject(entities.Subject{NameAr: "كيمياء"})
	unit := st.AddUnit(entities.Unit{Title: "u"})
	lesson := st.AddLesson(entities.Lesson{UnitID: unit.ID})
	section := st.AddSection(entities.Section{LessonID: lesson.ID})
	st.AddBlock(entities.Block{SectionID: section.ID})
	st.AddTag(entities.Tag{NameAr: "t"})
	concept := st.AddConcept(entities.Concept{TitleAr: "c"})
	st.AddFeedItem(entities.FeedItem{ConceptID: concept.ID})
	st.AddQuestion(entities.Question{TextAr: "q"})
	st.AddExam(entities.Exam{TitleAr: "e"})

	st.ResetAll()

	assert.Nil(t, st.Subject())
	assert.Empty(t, st.Units())
	assert.Empty(t, st.Lessons())
	assert.Empty(t, st.Sections())
	assert.Empty(t, st.Blocks())
	assert.Empty(t, st.Tags())
	assert.Empty(t, st.Concepts())
	assert.Empty(t, st.FeedItems())
	assert.Empty(t, st.Questions())
	assert.Empty(t, st.Exams())
}

func TestSnapshotIsDetachedCopy(t *testing.T) {
	st := New()
	unit := st.AddUnit(entities.Unit{Title: "before"})

	snap := st.Snapshot()
	require.NoError(t, st.UpdateUnit(unit.ID, func(u *entities.Unit) { u.Title = "after" }))

	assert.Equal(t, "before", snap.Units[0].Title, "snapshot must not see later writes")
}

func TestReplaceSwapsAllTables(t *testing.T) {
	st := New()
	st.AddUnit(entities.Unit{Title: "old"})

	st.Replace(Snapshot{
		Units: []entities.Unit{{ID: "u_new", Title: "new", Order: 1}},
	})

	units := st.Units()
	require.Len(t, units, 1)
	assert.Equal(t, "u_new", units[0].ID)
	assert.Empty(t, st.Lessons())
}

func TestSubscribeNotifiesOnEveryMutation(t *testing.T) {
	st := New()

	var fired int
	unsubscribe := st.Subscribe(func() { fired++ })

	unit := st.AddUnit(entities.Unit{Title: "u"})
	require.NoError(t, st.UpdateUnit(unit.ID, func(u *entities.Unit) { u.Title = "v" }))
	st.DeleteUnit(unit.ID)

	assert.Equal(t, 3, fired)

	unsubscribe()
	st.AddUnit(entities.Unit{Title: "w"})
	assert.Equal(t, 3, fired, "unsubscribed observers stay silent")
}

func TestObserverCanReadStore(t *testing.T) {
	st := New()

	var seen int
	st.Subscribe(func() { seen = len(st.Units()) })

	st.AddUnit(entities.Unit{Title: "u"})
	assert.Equal(t, 1, seen, "observers may read the store without deadlocking")
}

func TestLessonLifecycleScenario(t *testing.T) {
	st := New()

	unit := st.AddUnit(entities.Unit{Title: "الوحدة الأولى"})
	lesson := st.AddLesson(entities.Lesson{UnitID: unit.ID, Title: "درس"})

	section := st.AddSection(entities.Section{LessonID: lesson.ID, Title: "مدخل"})
	assert.Equal(t, entities.LearningUnderstanding, section.LearningType)

	st.AddBlock(entities.Block{SectionID: section.ID, Type: entities.BlockText, Content: "شرح"})
	require.NoError(t, st.UpdateLesson(lesson.ID, func(l *entities.Lesson) {
		l.Summary = strPtr("خلاصة الدرس")
	}))

	got, _ := st.LessonByID(lesson.ID)
	require.NotNil(t, got.Summary)

	// Deleting the unit tears the whole branch down
	st.DeleteUnit(unit.ID)
	assert.Empty(t, st.Lessons())
	assert.Empty(t, st.Sections())
	assert.Empty(t, st.Blocks())
}
