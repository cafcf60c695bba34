package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/persistence"
	"github.com/nafeer/studio/internal/store"
)

func setupExchangeRouter(t *testing.T) (*store.Store, *persistence.Repository, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	repo, err := persistence.NewRepository(filepath.Join(t.TempDir(), "studio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	controller := NewExchangeController(RouterConfig{
		Store:        st,
		Repository:   repo,
		Saver:        persistence.NewSaver(st, repo, "workspace"),
		WorkspaceKey: "workspace",
	})

	router := gin.New()
	router.GET("/api/export", controller.Export)
	router.POST("/api/import", controller.Import)
	router.POST("/api/reset", controller.Reset)
	router.POST("/api/save", controller.Save)
	router.GET("/api/workspace", controller.Workspace)
	return st, repo, router
}

func TestExchangeController_Export(t *testing.T) {
	t.Run("returns the nested document as an attachment", func(t *testing.T) {
		st, _, router := setupExchangeRouter(t)
		st.SetSubject(entities.Subject{NameAr: "فيزياء", Track: entities.TrackScience})
		unit := st.AddUnit(entities.Unit{Title: "وحدة"})
		st.AddLesson(entities.Lesson{UnitID: unit.ID, Title: "درس"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/export", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "curriculum.json")

		var doc map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "1.0", doc["version"])

		units := doc["units"].([]any)
		require.Len(t, units, 1)
		lessons := units[0].(map[string]any)["lessons"].([]any)
		assert.Len(t, lessons, 1)
	})
}

func TestExchangeController_Import(t *testing.T) {
	t.Run("replaces the workspace", func(t *testing.T) {
		st, _, router := setupExchangeRouter(t)
		st.AddUnit(entities.Unit{Title: "قديم"})

		body := bytes.NewBufferString(`{
			"version": "1.0",
			"subject": {"id": "PHYSICS", "nameAr": "فيزياء", "nameEn": null, "path": "SCIENCE", "isMajor": false, "colorHex": null, "order": 5},
			"units": [{"id": "u1", "title": "مستورد", "order": 1, "description": null, "lessons": []}]
		}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/import", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		units := st.Units()
		require.Len(t, units, 1)
		assert.Equal(t, "مستورد", units[0].Title)
	})

	t.Run("400 for a document without units", func(t *testing.T) {
		st, _, router := setupExchangeRouter(t)
		st.AddUnit(entities.Unit{Title: "يبقى"})

		body := bytes.NewBufferString(`{"version": "1.0"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/import", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, st.Units(), 1, "failed import leaves the store untouched")
	})
}

func TestExchangeController_Reset(t *testing.T) {
	t.Run("clears every table", func(t *testing.T) {
		st, _, router := setupExchangeRouter(t)
		st.SetSubject(entities.Subject{NameAr: "فيزياء"})
		st.AddUnit(entities.Unit{Title: "وحدة"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/reset", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, st.Subject())
		assert.Empty(t, st.Units())
	})
}

func TestExchangeController_Save(t *testing.T) {
	t.Run("saves synchronously without a task queue", func(t *testing.T) {
		st, repo, router := setupExchangeRouter(t)
		st.AddUnit(entities.Unit{Title: "وحدة"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/save", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "workspace saved", resp.Message)

		saved, err := repo.Load("workspace")
		require.NoError(t, err)
		assert.Contains(t, string(saved), "وحدة")
	})
}

func TestExchangeController_Workspace(t *testing.T) {
	t.Run("reports null lastSavedAt before the first save", func(t *testing.T) {
		_, _, router := setupExchangeRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/workspace", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var info map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.Equal(t, "workspace", info["key"])
		assert.Nil(t, info["lastSavedAt"])
		assert.Equal(t, false, info["autosaveRunning"])
	})

	t.Run("reports the save timestamp afterwards", func(t *testing.T) {
		_, repo, router := setupExchangeRouter(t)
		require.NoError(t, repo.Save("workspace", []byte(`{"units": []}`)))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/workspace", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var info map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.NotNil(t, info["lastSavedAt"])
	})
}
