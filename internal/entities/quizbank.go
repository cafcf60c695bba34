package entities

import "fmt"

// QuestionType enumerates the answer formats in the quiz bank.
type QuestionType string

const (
	QuestionTrueFalse   QuestionType = "TRUE_FALSE"
	QuestionMCQ         QuestionType = "MCQ"
	QuestionFillBlank   QuestionType = "FILL_BLANK"
	QuestionMatch       QuestionType = "MATCH"
	QuestionShortAnswer QuestionType = "SHORT_ANSWER"
	QuestionExplain     QuestionType = "EXPLAIN"
	QuestionList        QuestionType = "LIST"
	QuestionTable       QuestionType = "TABLE"
	QuestionFigure      QuestionType = "FIGURE"
	QuestionCompare     QuestionType = "COMPARE"
	QuestionOrder       QuestionType = "ORDER"
)

// QuestionSource records where a question came from.
type QuestionSource string

const (
	SourceMinistryFinal     QuestionSource = "MINISTRY_FINAL"
	SourceMinistrySemifinal QuestionSource = "MINISTRY_SEMIFINAL"
	SourceSchoolExam        QuestionSource = "SCHOOL_EXAM"
	SourceRevisionSheet     QuestionSource = "REVISION_SHEET"
	SourceTeacherContrib    QuestionSource = "TEACHER_CONTRIB"
	SourceOriginal          QuestionSource = "ORIGINAL"
)

// CognitiveLevel classifies a question on a simplified Bloom scale.
type CognitiveLevel string

const (
	CognitiveRecall     CognitiveLevel = "RECALL"
	CognitiveUnderstand CognitiveLevel = "UNDERSTAND"
	CognitiveApply      CognitiveLevel = "APPLY"
	CognitiveAnalyze    CognitiveLevel = "ANALYZE"
)

// ExamSource and ExamType describe exam provenance and cadence.
type ExamSource string

const (
	ExamMinistry ExamSource = "MINISTRY"
	ExamSchool   ExamSource = "SCHOOL"
	ExamPractice ExamSource = "PRACTICE"
	ExamCustom   ExamSource = "CUSTOM"
)

type ExamType string

const (
	ExamMonthly   ExamType = "MONTHLY"
	ExamSemiFinal ExamType = "SEMI_FINAL"
	ExamFinal     ExamType = "FINAL"
)

// Question is a quiz-bank item. CorrectAnswer and Options are tagged unions
// whose active variant must agree with the question type (see Validate).
type Question struct {
	ID               string         `json:"id"`
	Type             QuestionType   `json:"type"`
	TextAr           string         `json:"textAr"`
	TextEn           *string        `json:"textEn"`
	CorrectAnswer    AnswerValue    `json:"correctAnswer"`
	Options          AnswerValue    `json:"options"`
	Explanation      *string        `json:"explanation"`
	ImageURL         *string        `json:"imageUrl"`
	TableData        TableGrid      `json:"tableData"`
	Difficulty       int            `json:"difficulty"`
	Points           int            `json:"points"`
	EstimatedSeconds int            `json:"estimatedSeconds"`
	CognitiveLevel   CognitiveLevel `json:"cognitiveLevel"`
	Source           QuestionSource `json:"source"`
	SourceExamID     *string        `json:"sourceExamId"`
	SourceDetails    *string        `json:"sourceDetails"`
	SourceYear       *int           `json:"sourceYear"`
	FeedEligible     bool           `json:"feedEligible"`
	UnitID           *string        `json:"unitId"`
	LessonID         *string        `json:"lessonId"`
	ConceptIDs       []string       `json:"conceptIds"`
}

// Validate checks that the answer payload variants agree with the declared
// question type. Called at the import boundary; the in-memory store trusts
// its callers.
func (q Question) Validate() error {
	wantAnswer := AnswerText
	wantOptions := AnswerNone
	switch q.Type {
	case QuestionList, QuestionOrder:
		wantAnswer = AnswerList
	case QuestionMatch:
		wantAnswer = AnswerPairs
		wantOptions = AnswerPairs
	case QuestionMCQ:
		wantOptions = AnswerList
	}

	if q.CorrectAnswer.Kind != AnswerNone && q.CorrectAnswer.Kind != wantAnswer {
		return fmt.Errorf("question %s: %s answer must be %s, got %s", q.ID, q.Type, wantAnswer, q.CorrectAnswer.Kind)
	}
	if q.Options.Kind != AnswerNone && q.Options.Kind != wantOptions {
		return fmt.Errorf("question %s: %s options must be %s, got %s", q.ID, q.Type, wantOptions, q.Options.Kind)
	}
	return nil
}

// Exam is an ordered collection of questions with provenance metadata.
// SectionsJSON is an opaque per-exam layout payload the store passes through.
type Exam struct {
	ID           string     `json:"id"`
	TitleAr      string     `json:"titleAr"`
	TitleEn      *string    `json:"titleEn"`
	Source       ExamSource `json:"source"`
	Year         *int       `json:"year"`
	SchoolName   *string    `json:"schoolName"`
	Duration     *int       `json:"duration"`
	TotalPoints  *int       `json:"totalPoints"`
	Description  *string    `json:"description"`
	ExamType     *ExamType  `json:"examType"`
	QuestionIDs  []string   `json:"questionIds"`
	SectionsJSON RawJSON    `json:"sectionsJson"`
}
