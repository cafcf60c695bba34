package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/store"
)

func setupLessonsRouter(t *testing.T) (*store.Store, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	controller := NewLessonsController(st)
	router := gin.New()
	router.POST("/api/lessons", controller.CreateLesson)
	router.GET("/api/lessons/:id", controller.GetLesson)
	router.PATCH("/api/lessons/:id", controller.UpdateLesson)
	router.DELETE("/api/lessons/:id", controller.DeleteLesson)
	router.GET("/api/lessons/:id/status", controller.GetLessonStatus)
	return st, router
}

func TestLessonsController_CreateLesson(t *testing.T) {
	t.Run("creates under an existing unit", func(t *testing.T) {
		st, router := setupLessonsRouter(t)
		unit := st.AddUnit(entities.Unit{Title: "وحدة"})

		body := bytes.NewBufferString(`{"unitId": "` + unit.ID + `", "title": "درس"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/lessons", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var lesson entities.Lesson
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lesson))
		assert.Equal(t, unit.ID, lesson.UnitID)
		assert.Equal(t, 1, lesson.Order)
		assert.Equal(t, 15, lesson.EstimatedMinutes)
	})

	t.Run("400 when unitId is missing", func(t *testing.T) {
		_, router := setupLessonsRouter(t)

		body := bytes.NewBufferString(`{"title": "درس"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/lessons", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("404 for an unknown unit", func(t *testing.T) {
		_, router := setupLessonsRouter(t)

		body := bytes.NewBufferString(`{"unitId": "missing", "title": "درس"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/lessons", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLessonsController_GetLessonStatus(t *testing.T) {
	statusOf := func(t *testing.T, router *gin.Engine, lessonID string) string {
		t.Helper()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/lessons/"+lessonID+"/status", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			LessonID string `json:"lessonId"`
			Status   string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Status
	}

	t.Run("tracks the authoring lifecycle", func(t *testing.T) {
		st, router := setupLessonsRouter(t)
		unit := st.AddUnit(entities.Unit{Title: "وحدة"})
		lesson := st.AddLesson(entities.Lesson{UnitID: unit.ID, Title: "درس"})

		assert.Equal(t, "empty", statusOf(t, router, lesson.ID))

		section := st.AddSection(entities.Section{LessonID: lesson.ID, Title: "مدخل"})
		assert.Equal(t, "started", statusOf(t, router, lesson.ID))

		st.AddBlock(entities.Block{SectionID: section.ID, Type: entities.BlockText, Content: "شرح"})
		assert.Equal(t, "partial", statusOf(t, router, lesson.ID))

		require.NoError(t, st.UpdateLesson(lesson.ID, func(l *entities.Lesson) {
			l.Summary = entities.OptString("خلاصة")
		}))
		assert.Equal(t, "done", statusOf(t, router, lesson.ID))
	})

	t.Run("404 for a missing lesson", func(t *testing.T) {
		_, router := setupLessonsRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/lessons/missing/status", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLessonsController_UpdateLesson(t *testing.T) {
	t.Run("clearing the summary demotes the lesson", func(t *testing.T) {
		st, router := setupLessonsRouter(t)
		unit := st.AddUnit(entities.Unit{Title: "وحدة"})
		lesson := st.AddLesson(entities.Lesson{UnitID: unit.ID, Title: "درس", Summary: entities.OptString("خلاصة")})
		section := st.AddSection(entities.Section{LessonID: lesson.ID})
		st.AddBlock(entities.Block{SectionID: section.ID, Type: entities.BlockText})

		body := bytes.NewBufferString(`{"summary": ""}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/lessons/"+lesson.ID, body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		got, _ := st.LessonByID(lesson.ID)
		assert.Nil(t, got.Summary)
	})
}
