// Package session ties long-running generation work to the project it
// was started for. Every dispatched task is tagged with its project id;
// when the task finishes, the write is applied only if that project is
// still the current one. A result arriving after the user switched
// projects is discarded, never written into the wrong project.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/store"
	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// ErrStaleProject is returned when a task's result arrives after the
// current project changed. The result is dropped, not persisted.
var ErrStaleProject = errors.New("project changed before result arrived")

// Task produces a patch to apply to the project it was dispatched for.
// Returning an empty patch persists nothing.
type Task func(ctx context.Context, project *venture.Project) (venture.DataPatch, error)

// Session dispatches project-tagged work over the store.
type Session struct {
	store  *store.Store
	logger *zap.Logger
}

// New creates a Session.
func New(st *store.Store, logger *zap.Logger) (*Session, error) {
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{store: st, logger: logger}, nil
}

// Current returns the current project, upgraded to the latest schema.
// Returns venture.ErrProjectNotFound when no project is selected or the
// pointer is dangling.
func (s *Session) Current() (*venture.Project, error) {
	id, err := s.store.CurrentID()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, venture.ErrProjectNotFound
	}
	return s.store.Get(id)
}

// Use switches the current project.
func (s *Session) Use(id string) (*venture.Project, error) {
	p, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetCurrentID(p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// Dispatch runs the task against the named project and persists its
// patch, but only if that project is still current when the task
// finishes. A stale result returns ErrStaleProject and writes nothing.
func (s *Session) Dispatch(ctx context.Context, projectID string, task Task) (*venture.Project, error) {
	project, err := s.store.Get(projectID)
	if err != nil {
		return nil, err
	}

	patch, err := task(ctx, project)
	if err != nil {
		return nil, err
	}

	current, err := s.store.CurrentID()
	if err != nil {
		return nil, err
	}
	if current != projectID {
		s.logger.Info("discarding stale generation result",
			zap.String("project_id", projectID),
			zap.String("current_id", current))
		return nil, fmt.Errorf("%w: %s", ErrStaleProject, projectID)
	}

	if patch.IsEmpty() {
		return project, nil
	}
	return s.store.Update(projectID, patch)
}
