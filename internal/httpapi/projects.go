package httpapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// ProjectSummary is one row of the project list.
type ProjectSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Progress    int       `json:"progress"`
	Badges      []string  `json:"badges"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
	Current     bool      `json:"current"`
}

func (s *Server) handleListProjects(c echo.Context) error {
	current, err := s.store.CurrentID()
	if err != nil {
		s.logger.Warn("failed to read current project", zap.Error(err))
	}

	projects := s.store.List()
	summaries := make([]ProjectSummary, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		summaries = append(summaries, ProjectSummary{
			ID:          p.ID,
			Name:        p.Name,
			Progress:    venture.Progress(&p.Data),
			Badges:      venture.Badges(&p.Data),
			CreatedAt:   p.CreatedAt,
			LastUpdated: p.LastUpdated,
			Current:     p.ID == current,
		})
	}
	return c.JSON(http.StatusOK, summaries)
}

// CreateProjectRequest is the request body for POST /api/v1/projects.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateProject(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := s.store.Create(req.Name)
	if err != nil {
		s.logger.Warn("failed to create project", zap.Error(err))
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) handleGetProject(c echo.Context) error {
	p, err := s.store.Get(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleCurrentProject(c echo.Context) error {
	p, err := s.session.Current()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// SelectProjectRequest is the request body for PUT /api/v1/projects/current.
type SelectProjectRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleSelectProject(c echo.Context) error {
	var req SelectProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := s.session.Use(req.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// RenameProjectRequest is the request body for PATCH /api/v1/projects/:id.
type RenameProjectRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleRenameProject(c echo.Context) error {
	var req RenameProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := s.store.Rename(c.Param("id"), req.Name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleDeleteProject(c echo.Context) error {
	if err := s.store.Delete(c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleSaveIdea(c echo.Context) error {
	var idea venture.IdeaPhase
	if err := c.Bind(&idea); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if idea.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "idea description is required")
	}
	idea.IsComplete = true

	p, err := s.store.Update(c.Param("id"), venture.DataPatch{Idea: &idea})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// SelectNameRequest is the request body for PUT /api/v1/projects/:id/name.
type SelectNameRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleSelectName(c echo.Context) error {
	var req SelectNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	current, err := s.store.Get(c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	// Carry the existing suggestions; the patch replaces the phase wholesale.
	naming := current.Data.Naming
	naming.SelectedName = req.Name

	p, err := s.store.Update(current.ID, venture.DataPatch{Naming: &naming})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}
