package persistence

import (
	"fmt"

	"github.com/nafeer/studio/internal/exporters"
	"github.com/nafeer/studio/internal/store"
)

// Saver serializes the current store state and writes it to the repository.
// It backs both the autosave schedule and explicit save requests.
type Saver struct {
	store *store.Store
	repo  *Repository
	key   string
}

func NewSaver(st *store.Store, repo *Repository, key string) *Saver {
	if key == "" {
		key = DefaultWorkspaceKey
	}
	return &Saver{store: st, repo: repo, key: key}
}

// SaveWorkspace exports the full workspace document and upserts it. Returns
// the document size in bytes.
func (s *Saver) SaveWorkspace() (int, error) {
	data, err := exporters.Marshal(s.store.Snapshot())
	if err != nil {
		return 0, fmt.Errorf("marshal workspace: %w", err)
	}
	if err := s.repo.Save(s.key, data); err != nil {
		return 0, fmt.Errorf("persist workspace: %w", err)
	}
	return len(data), nil
}
