package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// maxBodySize bounds request bodies. Analyze requests carry a CV file as
// multipart form data, so the limit is generous.
const maxBodySize = 10 * 1024 * 1024

// RequestValidation middleware tags every request with an ID and rejects
// oversized bodies before any handler work.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost || c.Request().Method == http.MethodPut {
				if c.Request().ContentLength > maxBodySize {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Success:   false,
						Error:     "Request body too large",
						RequestID: requestID,
					})
				}
			}

			return next(c)
		}
	}
}
