package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/entities"
)

// ExamStore defines store operations for exam management.
type ExamStore interface {
	AddExam(exam entities.Exam) entities.Exam
	Exams() []entities.Exam
	ExamByID(id string) (entities.Exam, bool)
	UpdateExam(id string, mutate func(*entities.Exam)) error
	DeleteExam(id string)
	AddQuestionToExam(examID, questionID string) error
	RemoveQuestionFromExam(examID, questionID string) error
	QuestionByID(id string) (entities.Question, bool)
}

type ExamsController struct {
	store ExamStore
}

func NewExamsController(store ExamStore) *ExamsController {
	return &ExamsController{store: store}
}

// GetAllExams returns all exams
// GET /api/exams
func (ec *ExamsController) GetAllExams(c *gin.Context) {
	c.JSON(http.StatusOK, ec.store.Exams())
}

// GetExam returns one exam by ID
// GET /api/exams/:id
func (ec *ExamsController) GetExam(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	exam, found := ec.store.ExamByID(id)
	if !found {
		respondNotFound(c, "exam")
		return
	}
	c.JSON(http.StatusOK, exam)
}

// CreateExam creates a new exam
// POST /api/exams
func (ec *ExamsController) CreateExam(c *gin.Context) {
	var exam entities.Exam
	if err := c.ShouldBindJSON(&exam); err != nil {
		respondBadRequest(c, "invalid exam payload")
		return
	}
	exam.ID = ""

	respondCreated(c, ec.store.AddExam(exam))
}

// UpdateExam applies a partial update to an exam
// PATCH /api/exams/:id
func (ec *ExamsController) UpdateExam(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		TitleAr      *string              `json:"titleAr"`
		TitleEn      *string              `json:"titleEn"`
		Source       *entities.ExamSource `json:"source"`
		Year         *int                 `json:"year"`
		SchoolName   *string              `json:"schoolName"`
		Duration     *int                 `json:"duration"`
		TotalPoints  *int                 `json:"totalPoints"`
		Description  *string              `json:"description"`
		ExamType     *entities.ExamType   `json:"examType"`
		SectionsJSON entities.RawJSON     `json:"sectionsJson"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid exam payload")
		return
	}

	err := ec.store.UpdateExam(id, func(e *entities.Exam) {
		if req.TitleAr != nil {
			e.TitleAr = *req.TitleAr
		}
		if req.TitleEn != nil {
			e.TitleEn = entities.OptString(*req.TitleEn)
		}
		if req.Source != nil {
			e.Source = *req.Source
		}
		if req.Year != nil {
			e.Year = entities.OptInt(*req.Year)
		}
		if req.SchoolName != nil {
			e.SchoolName = entities.OptString(*req.SchoolName)
		}
		if req.Duration != nil {
			e.Duration = entities.OptInt(*req.Duration)
		}
		if req.TotalPoints != nil {
			e.TotalPoints = entities.OptInt(*req.TotalPoints)
		}
		if req.Description != nil {
			e.Description = entities.OptString(*req.Description)
		}
		if req.ExamType != nil {
			e.ExamType = req.ExamType
		}
		if req.SectionsJSON != nil {
			e.SectionsJSON = req.SectionsJSON
		}
	})
	if err != nil {
		respondStoreError(c, err, "update exam")
		return
	}

	exam, _ := ec.store.ExamByID(id)
	c.JSON(http.StatusOK, exam)
}

// DeleteExam removes an exam. Its questions stay in the quiz bank.
// DELETE /api/exams/:id
func (ec *ExamsController) DeleteExam(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ec.store.DeleteExam(id)
	respondSuccess(c, "exam deleted")
}

// AddQuestion appends a quiz bank question to an exam
// POST /api/exams/:id/questions
func (ec *ExamsController) AddQuestion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		QuestionID string `json:"questionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "questionId is required")
		return
	}

	if _, found := ec.store.QuestionByID(req.QuestionID); !found {
		respondNotFound(c, "question")
		return
	}

	if err := ec.store.AddQuestionToExam(id, req.QuestionID); err != nil {
		respondStoreError(c, err, "add question to exam")
		return
	}

	exam, _ := ec.store.ExamByID(id)
	c.JSON(http.StatusOK, exam)
}

// RemoveQuestion drops a question from an exam
// DELETE /api/exams/:id/questions/:questionId
func (ec *ExamsController) RemoveQuestion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	questionID, ok := idParam(c, "questionId")
	if !ok {
		return
	}

	if err := ec.store.RemoveQuestionFromExam(id, questionID); err != nil {
		respondStoreError(c, err, "remove question from exam")
		return
	}

	exam, _ := ec.store.ExamByID(id)
	c.JSON(http.StatusOK, exam)
}
