package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/selquery/selq/internal/errors"
	"github.com/selquery/selq/pkg/types"
)

// DefaultDataFile is where inspection data is stored unless configured
const DefaultDataFile = ".selq/inspection.json"

// Store handles persistence of inspection data
type Store struct {
	filePath string
}

// NewStore creates a new inspection store
func NewStore(filePath string) *Store {
	if filePath == "" {
		filePath = DefaultDataFile
	}
	return &Store{
		filePath: filePath,
	}
}

// Save writes inspection data to disk as JSON
func (s *Store) Save(inspection *types.Inspection) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewStoreError("save", s.filePath, err.Error())
	}

	data, err := json.MarshalIndent(inspection, "", "  ")
	if err != nil {
		return errors.NewStoreError("save", s.filePath, err.Error())
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return errors.NewStoreError("save", s.filePath, err.Error())
	}

	return nil
}

// Load reads inspection data from disk
func (s *Store) Load() (*types.Inspection, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil, errors.NewStoreError("load", s.filePath, "file not found, run inspect first")
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, errors.NewStoreError("load", s.filePath, err.Error())
	}

	var inspection types.Inspection
	if err := json.Unmarshal(data, &inspection); err != nil {
		return nil, errors.NewStoreError("load", s.filePath, err.Error())
	}

	return &inspection, nil
}

// Exists checks if the inspection file exists
func (s *Store) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Delete removes the inspection file
func (s *Store) Delete() error {
	if !s.Exists() {
		return nil
	}
	if err := os.Remove(s.filePath); err != nil {
		return errors.NewStoreError("delete", s.filePath, err.Error())
	}
	return nil
}

// Path returns the file path where inspection data is stored
func (s *Store) Path() string {
	return s.filePath
}
