package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/entities"
)

// QuestionStore defines store operations for the quiz bank.
type QuestionStore interface {
	AddQuestion(q entities.Question) entities.Question
	Questions() []entities.Question
	QuestionByID(id string) (entities.Question, bool)
	UpdateQuestion(id string, mutate func(*entities.Question)) error
	DeleteQuestion(id string)
	LinkConceptToQuestion(questionID, conceptID string) error
	UnlinkConceptFromQuestion(questionID, conceptID string) error
	ConceptByID(id string) (entities.Concept, bool)
}

type QuestionsController struct {
	store QuestionStore
}

func NewQuestionsController(store QuestionStore) *QuestionsController {
	return &QuestionsController{store: store}
}

// GetAllQuestions returns all quiz bank questions
// GET /api/questions
func (qc *QuestionsController) GetAllQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, qc.store.Questions())
}

// GetQuestion returns one question by ID
// GET /api/questions/:id
func (qc *QuestionsController) GetQuestion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	question, found := qc.store.QuestionByID(id)
	if !found {
		respondNotFound(c, "question")
		return
	}
	c.JSON(http.StatusOK, question)
}

// CreateQuestion creates a new question. The payload is the question record
// itself; id, and any omitted defaults, are assigned by the store.
// POST /api/questions
func (qc *QuestionsController) CreateQuestion(c *gin.Context) {
	var q entities.Question
	if err := c.ShouldBindJSON(&q); err != nil {
		respondBadRequest(c, "invalid question payload")
		return
	}
	q.ID = ""

	if err := q.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondCreated(c, qc.store.AddQuestion(q))
}

// UpdateQuestion applies a partial update to a question
// PATCH /api/questions/:id
func (qc *QuestionsController) UpdateQuestion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Type             *entities.QuestionType   `json:"type"`
		TextAr           *string                  `json:"textAr"`
		TextEn           *string                  `json:"textEn"`
		CorrectAnswer    *entities.AnswerValue    `json:"correctAnswer"`
		Options          *entities.AnswerValue    `json:"options"`
		Explanation      *string                  `json:"explanation"`
		ImageURL         *string                  `json:"imageUrl"`
		TableData        entities.TableGrid       `json:"tableData"`
		Difficulty       *int                     `json:"difficulty"`
		Points           *int                     `json:"points"`
		EstimatedSeconds *int                     `json:"estimatedSeconds"`
		CognitiveLevel   *entities.CognitiveLevel `json:"cognitiveLevel"`
		Source           *entities.QuestionSource `json:"source"`
		SourceExamID     *string                  `json:"sourceExamId"`
		SourceDetails    *string                  `json:"sourceDetails"`
		SourceYear       *int                     `json:"sourceYear"`
		FeedEligible     *bool                    `json:"feedEligible"`
		UnitID           *string                  `json:"unitId"`
		LessonID         *string                  `json:"lessonId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid question payload")
		return
	}

	err := qc.store.UpdateQuestion(id, func(q *entities.Question) {
		if req.Type != nil {
			q.Type = *req.Type
		}
		if req.TextAr != nil {
			q.TextAr = *req.TextAr
		}
		if req.TextEn != nil {
			q.TextEn = entities.OptString(*req.TextEn)
		}
		if req.CorrectAnswer != nil {
			q.CorrectAnswer = *req.CorrectAnswer
		}
		if req.Options != nil {
			q.Options = *req.Options
		}
		if req.Explanation != nil {
			q.Explanation = entities.OptString(*req.Explanation)
		}
		if req.ImageURL != nil {
			q.ImageURL = entities.OptString(*req.ImageURL)
		}
		if req.TableData != nil {
			q.TableData = req.TableData
		}
		if req.Difficulty != nil {
			q.Difficulty = *req.Difficulty
		}
		if req.Points != nil {
			q.Points = *req.Points
		}
		if req.EstimatedSeconds != nil {
			q.EstimatedSeconds = *req.EstimatedSeconds
		}
		if req.CognitiveLevel != nil {
			q.CognitiveLevel = *req.CognitiveLevel
		}
		if req.Source != nil {
			q.Source = *req.Source
		}
		if req.SourceExamID != nil {
			q.SourceExamID = entities.OptString(*req.SourceExamID)
		}
		if req.SourceDetails != nil {
			q.SourceDetails = entities.OptString(*req.SourceDetails)
		}
		if req.SourceYear != nil {
			q.SourceYear = entities.OptInt(*req.SourceYear)
		}
		if req.FeedEligible != nil {
			q.FeedEligible = *req.FeedEligible
		}
		if req.UnitID != nil {
			q.UnitID = entities.OptString(*req.UnitID)
		}
		if req.LessonID != nil {
			q.LessonID = entities.OptString(*req.LessonID)
		}
	})
	if err != nil {
		respondStoreError(c, err, "update question")
		return
	}

	question, _ := qc.store.QuestionByID(id)
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion removes a question and drops it from all exams
// DELETE /api/questions/:id
func (qc *QuestionsController) DeleteQuestion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	qc.store.DeleteQuestion(id)
	respondSuccess(c, "question deleted")
}

// LinkConcept attaches a concept to a question
// POST /api/questions/:id/concepts
func (qc *QuestionsController) LinkConcept(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		ConceptID string `json:"conceptId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "conceptId is required")
		return
	}

	if _, found := qc.store.ConceptByID(req.ConceptID); !found {
		respondNotFound(c, "concept")
		return
	}

	if err := qc.store.LinkConceptToQuestion(id, req.ConceptID); err != nil {
		respondStoreError(c, err, "link concept to question")
		return
	}

	question, _ := qc.store.QuestionByID(id)
	c.JSON(http.StatusOK, question)
}

// UnlinkConcept detaches a concept from a question
// DELETE /api/questions/:id/concepts/:conceptId
func (qc *QuestionsController) UnlinkConcept(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	conceptID, ok := idParam(c, "conceptId")
	if !ok {
		return
	}

	if err := qc.store.UnlinkConceptFromQuestion(id, conceptID); err != nil {
		respondStoreError(c, err, "unlink concept from question")
		return
	}

	question, _ := qc.store.QuestionByID(id)
	c.JSON(http.StatusOK, question)
}
