package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ai-app-builder-backend/internal/models"
)

const (
	usersFile    = "users.json"
	projectsFile = "projects.json"
)

// UsersDoc is the on-disk shape of the users collection.
type UsersDoc struct {
	Users []models.User `json:"users"`
}

// ProjectsDoc is the on-disk shape of the projects collection.
type ProjectsDoc struct {
	Projects []models.Project `json:"projects"`
}

// Store persists the two collections as indent-formatted JSON files under a
// data directory. Files are lazily created with their empty shape on first
// access. All mutations are funneled through a single writer lock and every
// rewrite goes to a temp file followed by a rename, so a crashed write never
// leaves a truncated collection behind.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Users returns the current users document.
func (s *Store) Users() (UsersDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc UsersDoc
	if err := s.read(usersFile, &doc, emptyUsers); err != nil {
		return UsersDoc{}, err
	}
	return doc, nil
}

// Projects returns the current projects document.
func (s *Store) Projects() (ProjectsDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc ProjectsDoc
	if err := s.read(projectsFile, &doc, emptyProjects); err != nil {
		return ProjectsDoc{}, err
	}
	return doc, nil
}

// UpdateUsers runs fn against the current users document and persists the
// result. The writer lock is held across the read-modify-write cycle, so
// concurrent updates cannot lose each other. If fn returns an error nothing
// is written and the error is returned unchanged.
func (s *Store) UpdateUsers(fn func(*UsersDoc) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc UsersDoc
	if err := s.read(usersFile, &doc, emptyUsers); err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.write(usersFile, doc)
}

// UpdateProjects is UpdateUsers for the projects collection.
func (s *Store) UpdateProjects(fn func(*ProjectsDoc) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc ProjectsDoc
	if err := s.read(projectsFile, &doc, emptyProjects); err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.write(projectsFile, doc)
}

func emptyUsers() interface{}    { return UsersDoc{Users: []models.User{}} }
func emptyProjects() interface{} { return ProjectsDoc{Projects: []models.Project{}} }

// ensure creates the data directory and seeds the collection file with its
// empty shape when missing.
func (s *Store) ensure(name string, empty func() interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return s.writeRaw(name, empty())
}

func (s *Store) read(name string, out interface{}, empty func() interface{}) error {
	if err := s.ensure(name, empty); err != nil {
		return err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(name string, doc interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	return s.writeRaw(name, doc)
}

// writeRaw replaces the collection file atomically: encode to a temp file in
// the same directory, then rename over the target.
func (s *Store) writeRaw(name string, doc interface{}) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
