package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jobdeck/internal/store"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// ListApplicationsHandler returns every tracked application
func ListApplicationsHandler(s *store.ExcelStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		apps, err := s.ReadAll()
		if err != nil {
			return respondError(c, err)
		}
		if apps == nil {
			apps = []models.Application{}
		}

		return c.JSON(http.StatusOK, models.ApplicationListResponse{
			Success:      true,
			Applications: apps,
		})
	}
}

// CreateApplicationHandler stores a new application
func CreateApplicationHandler(s *store.ExcelStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := bindApplication(c)
		if err != nil {
			return respondError(c, err)
		}

		created, err := s.Create(applicationFromRequest(req))
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusCreated, models.ApplicationResponse{
			Success:     true,
			Application: &created,
		})
	}
}

// UpdateApplicationHandler replaces an application by ID
func UpdateApplicationHandler(s *store.ExcelStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return respondError(c, err)
		}

		req, err := bindApplication(c)
		if err != nil {
			return respondError(c, err)
		}

		updated, err := s.Update(id, applicationFromRequest(req))
		if err != nil {
			return applicationStoreError(c, err)
		}

		return c.JSON(http.StatusOK, models.ApplicationResponse{
			Success:     true,
			Application: &updated,
		})
	}
}

// DeleteApplicationHandler removes an application by ID
func DeleteApplicationHandler(s *store.ExcelStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return respondError(c, err)
		}

		if err := s.Delete(id); err != nil {
			return applicationStoreError(c, err)
		}

		return c.JSON(http.StatusOK, models.ApplicationResponse{Success: true})
	}
}

func bindApplication(c echo.Context) (models.ApplicationRequest, error) {
	var req models.ApplicationRequest
	if err := c.Bind(&req); err != nil {
		return req, utils.NewInvalidRequestError("Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return req, utils.NewInvalidRequestError("Company and position are required")
	}
	return req, nil
}

func applicationFromRequest(req models.ApplicationRequest) models.Application {
	return models.Application{
		Company:     req.Company,
		Position:    req.Position,
		Location:    req.Location,
		DateApplied: req.DateApplied,
		Status:      req.Status,
		Salary:      req.Salary,
		Contact:     req.Contact,
		JobURL:      req.JobURL,
		Notes:       req.Notes,
	}
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, utils.NewInvalidRequestError("Invalid application ID")
	}
	return id, nil
}

func applicationStoreError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success:   false,
			Error:     "Application not found",
			RequestID: requestID(c),
		})
	}
	return respondError(c, err)
}
