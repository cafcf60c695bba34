package entities

import "encoding/json"

// RawJSON is an opaque JSON payload carried through the store untouched.
// A nil value serializes as an explicit null, which the wire contract
// requires for absent optional fields.
type RawJSON = json.RawMessage

// Tag is a free-form label attached to concepts.
type Tag struct {
	ID     string  `json:"id"`
	NameAr string  `json:"nameAr"`
	NameEn *string `json:"nameEn"`
}

// ConceptType enumerates the kinds of atomic knowledge units.
type ConceptType string

const (
	ConceptDefinition  ConceptType = "DEFINITION"
	ConceptFormula     ConceptType = "FORMULA"
	ConceptDate        ConceptType = "DATE"
	ConceptPerson      ConceptType = "PERSON"
	ConceptLaw         ConceptType = "LAW"
	ConceptFact        ConceptType = "FACT"
	ConceptProcess     ConceptType = "PROCESS"
	ConceptComparison  ConceptType = "COMPARISON"
	ConceptPlace       ConceptType = "PLACE"
	ConceptCauseEffect ConceptType = "CAUSE_EFFECT"
)

// Concept is an atomic unit of knowledge referenced by sections, blocks,
// feed items and questions.
type Concept struct {
	ID              string      `json:"id"`
	Type            ConceptType `json:"type"`
	TitleAr         string      `json:"titleAr"`
	TitleEn         *string     `json:"titleEn"`
	Definition      string      `json:"definition"`
	ShortDefinition *string     `json:"shortDefinition"`
	Formula         *string     `json:"formula"`
	ImageURL        *string     `json:"imageUrl"`
	Difficulty      int         `json:"difficulty"` // 1-5
	ExtraData       RawJSON     `json:"extraData"`
	TagIDs          []string    `json:"tagIds"`
}

// FeedItemType enumerates spaced-repetition card kinds.
type FeedItemType string

const (
	FeedDefinition FeedItemType = "DEFINITION"
	FeedFormula    FeedItemType = "FORMULA"
	FeedDate       FeedItemType = "DATE"
	FeedFact       FeedItemType = "FACT"
	FeedRule       FeedItemType = "RULE"
	FeedTip        FeedItemType = "TIP"
	FeedMiniQuiz   FeedItemType = "MINI_QUIZ"
	FeedFlashCard  FeedItemType = "FLASH_CARD"
)

// InteractionType describes how a feed item is answered in the app.
type InteractionType string

const (
	InteractTapConfirm InteractionType = "TAP_CONFIRM"
	InteractSwipeTF    InteractionType = "SWIPE_TF"
	InteractMCQ        InteractionType = "MCQ"
	InteractMatch      InteractionType = "MATCH"
)

// FeedItem is a short review card derived from a concept. Feed items are
// existence-dependent on their concept: deleting the concept deletes them.
type FeedItem struct {
	ID              string           `json:"id"`
	ConceptID       string           `json:"conceptId"`
	Type            FeedItemType     `json:"type"`
	ContentAr       string           `json:"contentAr"`
	Back            *string          `json:"back"` // flash-card reverse face
	ContentEn       *string          `json:"contentEn"`
	ImageURL        *string          `json:"imageUrl"`
	InteractionType *InteractionType `json:"interactionType"`
	CorrectAnswer   *string          `json:"correctAnswer"`
	Options         []string         `json:"options"`
	Explanation     *string          `json:"explanation"`
	QuestionID      *string          `json:"questionId"` // optional quiz-bank link
	Priority        int              `json:"priority"`   // 1-5
	Order           int              `json:"order"`
}
