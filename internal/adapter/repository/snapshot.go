package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/model"
)

// StorageKey is the fixed key the full AppState snapshot is written under.
// A reload of the same session always resolves to the same record.
const StorageKey = "resume-builder-storage"

// ErrNoSnapshot is returned by Load when no snapshot has been written yet.
var ErrNoSnapshot = errors.New("no snapshot")

// SnapshotRepo persists the full AppState under the fixed storage key.
type SnapshotRepo interface {
	Save(state model.AppState) error
	Load() (model.AppState, error)
	Delete() error
}

// FileSnapshotRepo stores the snapshot as a JSON file in a local state
// directory. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated snapshot behind.
type FileSnapshotRepo struct {
	dir string
}

func NewFileSnapshotRepo(dir string) (*FileSnapshotRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	return &FileSnapshotRepo{dir: dir}, nil
}

func (r *FileSnapshotRepo) path() string {
	return filepath.Join(r.dir, StorageKey+".json")
}

func (r *FileSnapshotRepo) Save(state model.AppState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, StorageKey+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, r.path())
}

// Load reads and schema-validates the snapshot. Both a missing file and an
// invalid snapshot leave the caller on the initial empty state; only the
// invalid case reports why.
func (r *FileSnapshotRepo) Load() (model.AppState, error) {
	b, err := os.ReadFile(r.path())
	if err != nil {
		if os.IsNotExist(err) {
			return model.AppState{}, ErrNoSnapshot
		}
		return model.AppState{}, err
	}

	if err := model.ValidateSnapshot(b); err != nil {
		return model.AppState{}, err
	}

	var state model.AppState
	if err := json.Unmarshal(b, &state); err != nil {
		return model.AppState{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return state, nil
}

func (r *FileSnapshotRepo) Delete() error {
	err := os.Remove(r.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
