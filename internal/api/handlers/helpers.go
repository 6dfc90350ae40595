package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// requestID returns the request ID set by the validation middleware
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok {
		return id
	}
	return utils.GenerateRequestID()
}

// respondError maps an application error to its HTTP response. Errors that
// carry no classification become opaque 500s.
func respondError(c echo.Context, err error) error {
	reqID := requestID(c)

	if cerr, ok := utils.AsCustomError(err); ok {
		return c.JSON(cerr.Code, models.ErrorResponse{
			Success:    false,
			Error:      cerr.Message,
			Suggestion: cerr.Suggestion,
			Details:    cerr.Detail,
			RequestID:  reqID,
		})
	}

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success:   false,
		Error:     "Internal server error",
		RequestID: reqID,
	})
}
