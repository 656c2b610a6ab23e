package snapshot

// store.go — Per-run artifact directory.
//
// Directory layout:
//
//	<dir>/
//	    model.yaml    # integration model snapshot (in and out)
//	    report.yaml   # run report for the reporting stage

import (
	"fmt"
	"os"
	"path/filepath"

	"buslift/pkg/model"
)

const (
	modelFile  = "model.yaml"
	reportFile = "report.yaml"
)

// Store is one run's artifact directory.
type Store struct {
	Dir string
}

// Init creates a new artifact directory and errors if it already exists.
func Init(dir string) (*Store, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("artifact store %q already exists", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact store: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// Open opens an existing artifact directory. Returns an error if not found.
func Open(dir string) (*Store, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("artifact store %q not found", dir)
	}
	return &Store{Dir: dir}, nil
}

// ModelPath returns the path of the model snapshot inside the store.
func (s *Store) ModelPath() string { return filepath.Join(s.Dir, modelFile) }

// ReportPath returns the path of the run report inside the store.
func (s *Store) ReportPath() string { return filepath.Join(s.Dir, reportFile) }

// LoadModel reads the store's model snapshot.
func (s *Store) LoadModel() (*model.IntegrationModel, error) {
	return LoadModel(s.ModelPath())
}

// WriteModel writes the store's model snapshot.
func (s *Store) WriteModel(m *model.IntegrationModel) error {
	return WriteModel(s.ModelPath(), m)
}

// WriteReport writes the store's run report.
func (s *Store) WriteReport(rep Report) error {
	return WriteReport(s.ReportPath(), rep)
}
