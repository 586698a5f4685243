// Package store provides durable CRUD over the Project collection and
// the current-project pointer. The whole collection is persisted as one
// JSON blob under a fixed key, the pointer as a plain string under a
// second key, matching the layout the product has always used.
//
// Failure semantics: read/parse failures degrade to an empty collection
// and are logged, never raised; write failures are returned to the
// caller so a "could not save" signal can reach the user.
//
// The KV holds the whole collection under one key, so every mutation is
// a read-modify-write cycle; a RWMutex serializes those cycles against
// each other and against readers.
package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// Storage keys, fixed for backward compatibility with existing data dirs.
const (
	projectsKey = "launchpad_projects"
	currentKey  = "launchpad_current_project_id"
)

// Store owns the Project collection.
type Store struct {
	mu     sync.RWMutex
	kv     KV
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store over the given KV.
func New(kv KV, logger *zap.Logger, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv backend is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{kv: kv, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// List returns all projects. Missing or corrupt storage degrades to an
// empty list.
func (s *Store) List() []venture.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// load reads the collection. Callers hold at least the read lock.
func (s *Store) load() []venture.Project {
	raw, ok, err := s.kv.Get(projectsKey)
	if err != nil {
		s.logger.Error("failed to load projects", zap.Error(err))
		return []venture.Project{}
	}
	if !ok {
		return []venture.Project{}
	}

	var projects []venture.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		s.logger.Error("corrupt project storage, starting empty", zap.Error(err))
		return []venture.Project{}
	}
	return projects
}

// Get returns one project by id, upgraded to the current schema version.
// Upgrades are persisted best-effort; a failed persist does not fail the
// read.
func (s *Store) Get(id string) (*venture.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		if venture.Migrate(&projects[i]) {
			if err := s.save(projects); err != nil {
				s.logger.Warn("failed to persist schema upgrade",
					zap.String("project_id", id), zap.Error(err))
			}
		}
		p := projects[i]
		return &p, nil
	}
	return nil, fmt.Errorf("%w: %s", venture.ErrProjectNotFound, id)
}

// Create adds a project with default data, persists it, and makes it
// current.
func (s *Store) Create(name string) (*venture.Project, error) {
	p, err := venture.NewProject(name, s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects := append(s.load(), *p)
	if err := s.save(projects); err != nil {
		return nil, err
	}
	if err := s.setCurrent(p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// Update shallow-merges the patch into the project's data, phase by
// phase, bumps LastUpdated, and persists. Badges are re-derived from the
// merged data unless the patch sets them explicitly.
func (s *Store) Update(id string, patch venture.DataPatch) (*venture.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		venture.Migrate(&projects[i])
		patch.ApplyTo(&projects[i].Data)
		if patch.Badges == nil {
			projects[i].Data.Badges = venture.Badges(&projects[i].Data)
		}
		projects[i].LastUpdated = s.now()
		if err := s.save(projects); err != nil {
			return nil, err
		}
		p := projects[i]
		return &p, nil
	}
	return nil, fmt.Errorf("%w: %s", venture.ErrProjectNotFound, id)
}

// Rename updates the project name and bumps LastUpdated.
func (s *Store) Rename(id, newName string) (*venture.Project, error) {
	if newName == "" {
		return nil, venture.ErrEmptyProjectName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		projects[i].Name = newName
		projects[i].LastUpdated = s.now()
		if err := s.save(projects); err != nil {
			return nil, err
		}
		p := projects[i]
		return &p, nil
	}
	return nil, fmt.Errorf("%w: %s", venture.ErrProjectNotFound, id)
}

// Delete removes the project. If it was current, the pointer is cleared.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()
	filtered := projects[:0]
	found := false
	for _, p := range projects {
		if p.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, p)
	}
	if !found {
		return fmt.Errorf("%w: %s", venture.ErrProjectNotFound, id)
	}
	if err := s.save(filtered); err != nil {
		return err
	}

	cur, err := s.currentID()
	if err != nil {
		// The project is gone either way; a stale pointer degrades to
		// "nothing selected" on the next successful read.
		s.logger.Warn("failed to read current project during delete",
			zap.String("project_id", id), zap.Error(err))
		return nil
	}
	if cur == id {
		if err := s.kv.Delete(currentKey); err != nil {
			return fmt.Errorf("failed to clear current project: %w", err)
		}
	}
	return nil
}

// CurrentID returns the current-project pointer, or "" when unset.
func (s *Store) CurrentID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentID()
}

func (s *Store) currentID() (string, error) {
	raw, ok, err := s.kv.Get(currentKey)
	if err != nil {
		return "", fmt.Errorf("failed to read current project: %w", err)
	}
	if !ok {
		return "", nil
	}
	return string(raw), nil
}

// SetCurrentID sets the current-project pointer.
func (s *Store) SetCurrentID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCurrent(id)
}

func (s *Store) setCurrent(id string) error {
	if id == "" {
		return venture.ErrInvalidProjectID
	}
	if err := s.kv.Set(currentKey, []byte(id)); err != nil {
		return fmt.Errorf("failed to set current project: %w", err)
	}
	return nil
}

func (s *Store) save(projects []venture.Project) error {
	raw, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}
	if err := s.kv.Set(projectsKey, raw); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}
