package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/importers"
	"github.com/nafeer/studio/internal/store"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "studio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestLoadMissingWorkspace(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Load("workspace")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSaveAndLoad(t *testing.T) {
	repo := newTestRepository(t)

	doc := []byte(`{"version": "1.0", "units": []}`)
	require.NoError(t, repo.Save("workspace", doc))

	got, err := repo.Load("workspace")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestSaveOverwritesExistingRow(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Save("workspace", []byte(`{"units": []}`)))
	require.NoError(t, repo.Save("workspace", []byte(`{"units": [{"id": "u1"}]}`)))

	got, err := repo.Load("workspace")
	require.NoError(t, err)
	assert.Contains(t, string(got), "u1")
}

func TestWorkspaceKeysAreIndependent(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Save("physics", []byte(`{"units": [1]}`)))
	require.NoError(t, repo.Save("chemistry", []byte(`{"units": [2]}`)))

	phys, err := repo.Load("physics")
	require.NoError(t, err)
	chem, err := repo.Load("chemistry")
	require.NoError(t, err)
	assert.NotEqual(t, phys, chem)
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Save("workspace", []byte(`{"units": []}`)))
	require.NoError(t, repo.Delete("workspace"))

	_, err := repo.Load("workspace")
	assert.ErrorIs(t, err, ErrNoSnapshot)

	// Deleting an absent row is not an error.
	require.NoError(t, repo.Delete("workspace"))
}

func TestUpdatedAt(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.UpdatedAt("workspace")
	assert.ErrorIs(t, err, ErrNoSnapshot)

	before := time.Now().Add(-time.Second)
	require.NoError(t, repo.Save("workspace", []byte(`{"units": []}`)))

	got, err := repo.UpdatedAt("workspace")
	require.NoError(t, err)
	assert.True(t, got.After(before))
}

func TestPing(t *testing.T) {
	repo := newTestRepository(t)
	assert.NoError(t, repo.Ping())
}

func TestSaverRoundTrip(t *testing.T) {
	repo := newTestRepository(t)

	st := store.New()
	st.SetSubject(entities.Subject{NameAr: "فيزياء", Track: entities.TrackScience})
	unit := st.AddUnit(entities.Unit{Title: "الوحدة الأولى"})
	st.AddLesson(entities.Lesson{UnitID: unit.ID, Title: "درس"})

	saver := NewSaver(st, repo, "")
	size, err := saver.SaveWorkspace()
	require.NoError(t, err)
	assert.Greater(t, size, 0)

	// Key defaults when empty.
	data, err := repo.Load(DefaultWorkspaceKey)
	require.NoError(t, err)
	assert.Len(t, data, size)

	restored := store.New()
	require.NoError(t, importers.Apply(restored, data))

	subject := restored.Subject()
	require.NotNil(t, subject)
	assert.Equal(t, "فيزياء", subject.NameAr)
	assert.Len(t, restored.Lessons(), 1)
}
