package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Repository, cfg.Version)
	subject := NewSubjectController(cfg.Store)
	units := NewUnitsController(cfg.Store)
	lessons := NewLessonsController(cfg.Store)
	sections := NewSectionsController(cfg.Store)
	blocks := NewBlocksController(cfg.Store)
	tags := NewTagsController(cfg.Store)
	concepts := NewConceptsController(cfg.Store)
	feedItems := NewFeedItemsController(cfg.Store)
	questions := NewQuestionsController(cfg.Store)
	exams := NewExamsController(cfg.Store)
	progress := NewProgressController(cfg.Store)
	exchange := NewExchangeController(cfg)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Subject and catalog endpoints
	router.GET("/api/subject", subject.GetSubject)
	router.PUT("/api/subject", subject.SetSubject)
	router.GET("/api/catalog", subject.GetCatalog)
	router.POST("/api/subject/scaffold", subject.Scaffold)

	// Curriculum tree endpoints
	router.GET("/api/units", units.GetAllUnits)
	router.POST("/api/units", units.CreateUnit)
	router.GET("/api/units/:id", units.GetUnit)
	router.PATCH("/api/units/:id", units.UpdateUnit)
	router.DELETE("/api/units/:id", units.DeleteUnit)
	router.GET("/api/units/:id/lessons", units.GetUnitLessons)
	router.GET("/api/units/:id/progress", progress.GetUnitProgress)

	router.GET("/api/lessons", lessons.GetAllLessons)
	router.POST("/api/lessons", lessons.CreateLesson)
	router.GET("/api/lessons/:id", lessons.GetLesson)
	router.PATCH("/api/lessons/:id", lessons.UpdateLesson)
	router.DELETE("/api/lessons/:id", lessons.DeleteLesson)
	router.GET("/api/lessons/:id/sections", lessons.GetLessonSections)
	router.GET("/api/lessons/:id/status", lessons.GetLessonStatus)

	router.GET("/api/sections", sections.GetAllSections)
	router.POST("/api/sections", sections.CreateSection)
	router.GET("/api/sections/:id", sections.GetSection)
	router.PATCH("/api/sections/:id", sections.UpdateSection)
	router.DELETE("/api/sections/:id", sections.DeleteSection)
	router.GET("/api/sections/:id/blocks", sections.GetSectionBlocks)
	router.POST("/api/sections/:id/concepts", sections.LinkConcept)
	router.DELETE("/api/sections/:id/concepts/:conceptId", sections.UnlinkConcept)

	router.GET("/api/blocks", blocks.GetAllBlocks)
	router.POST("/api/blocks", blocks.CreateBlock)
	router.GET("/api/blocks/:id", blocks.GetBlock)
	router.PATCH("/api/blocks/:id", blocks.UpdateBlock)
	router.DELETE("/api/blocks/:id", blocks.DeleteBlock)

	// Knowledge base endpoints
	router.GET("/api/tags", tags.GetAllTags)
	router.POST("/api/tags", tags.CreateTag)
	router.PATCH("/api/tags/:id", tags.UpdateTag)
	router.DELETE("/api/tags/:id", tags.DeleteTag)

	router.GET("/api/concepts", concepts.GetAllConcepts)
	router.POST("/api/concepts", concepts.CreateConcept)
	router.GET("/api/concepts/:id", concepts.GetConcept)
	router.PATCH("/api/concepts/:id", concepts.UpdateConcept)
	router.DELETE("/api/concepts/:id", concepts.DeleteConcept)
	router.GET("/api/concepts/:id/feed-items", concepts.GetConceptFeedItems)
	router.POST("/api/concepts/:id/tags", concepts.LinkTag)
	router.DELETE("/api/concepts/:id/tags/:tagId", concepts.UnlinkTag)

	router.GET("/api/feed-items", feedItems.GetAllFeedItems)
	router.POST("/api/feed-items", feedItems.CreateFeedItem)
	router.GET("/api/feed-items/:id", feedItems.GetFeedItem)
	router.PATCH("/api/feed-items/:id", feedItems.UpdateFeedItem)
	router.DELETE("/api/feed-items/:id", feedItems.DeleteFeedItem)

	// Quiz bank endpoints
	router.GET("/api/questions", questions.GetAllQuestions)
	router.POST("/api/questions", questions.CreateQuestion)
	router.GET("/api/questions/:id", questions.GetQuestion)
	router.PATCH("/api/questions/:id", questions.UpdateQuestion)
	router.DELETE("/api/questions/:id", questions.DeleteQuestion)
	router.POST("/api/questions/:id/concepts", questions.LinkConcept)
	router.DELETE("/api/questions/:id/concepts/:conceptId", questions.UnlinkConcept)

	router.GET("/api/exams", exams.GetAllExams)
	router.POST("/api/exams", exams.CreateExam)
	router.GET("/api/exams/:id", exams.GetExam)
	router.PATCH("/api/exams/:id", exams.UpdateExam)
	router.DELETE("/api/exams/:id", exams.DeleteExam)
	router.POST("/api/exams/:id/questions", exams.AddQuestion)
	router.DELETE("/api/exams/:id/questions/:questionId", exams.RemoveQuestion)

	// Progress endpoints
	router.GET("/api/progress", progress.GetProgress)
	router.GET("/api/progress/lessons", progress.GetStatuses)

	// Workspace exchange endpoints
	router.GET("/api/export", exchange.Export)
	router.POST("/api/import", exchange.Import)
	router.POST("/api/reset", exchange.Reset)
	router.POST("/api/save", exchange.Save)
	router.GET("/api/workspace", exchange.Workspace)

	return router
}
