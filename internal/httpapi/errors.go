package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fyrsmithlabs/launchpad/internal/genai"
	"github.com/fyrsmithlabs/launchpad/internal/session"
	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// httpError maps domain errors onto HTTP statuses. Unknown errors
// become 500s with a generic message; the detail stays in the logs.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, venture.ErrProjectNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	case errors.Is(err, venture.ErrEmptyProjectName),
		errors.Is(err, venture.ErrInvalidProjectID):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrStaleProject):
		return echo.NewHTTPError(http.StatusConflict, "project changed while generating; result discarded")
	case errors.Is(err, genai.ErrMissingAPIKey):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "generative API key not configured")
	case errors.Is(err, genai.ErrRateLimited):
		return echo.NewHTTPError(http.StatusTooManyRequests, "model provider rate limit exceeded")
	case errors.Is(err, genai.ErrMalformedResponse):
		return echo.NewHTTPError(http.StatusBadGateway, "model returned an unusable response")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
