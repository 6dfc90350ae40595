package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"jobdeck/internal/pdf"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// GenerateCVPDFHandler renders the tailored CV as a downloadable PDF
func GenerateCVPDFHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.DocumentRequest
		if err := c.Bind(&req); err != nil {
			return respondError(c, utils.NewInvalidRequestError("Invalid request format"))
		}
		if req.TailoredCV == "" {
			return respondError(c, utils.NewInvalidRequestError("tailoredCV is required"))
		}

		data, err := pdf.RenderCV(req.TailoredCV, req.CompanyName, req.Position)
		if err != nil {
			return respondError(c, err)
		}

		return sendPDF(c, "tailored-cv.pdf", data)
	}
}

// GenerateCoverLetterPDFHandler renders the cover letter as a PDF
func GenerateCoverLetterPDFHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.DocumentRequest
		if err := c.Bind(&req); err != nil {
			return respondError(c, utils.NewInvalidRequestError("Invalid request format"))
		}
		if req.CoverLetter == "" {
			return respondError(c, utils.NewInvalidRequestError("coverLetter is required"))
		}

		data, err := pdf.RenderCoverLetter(req.CoverLetter, req.CompanyName, req.Position)
		if err != nil {
			return respondError(c, err)
		}

		return sendPDF(c, "cover-letter.pdf", data)
	}
}

// GeneratePackagePDFHandler renders the CV and cover letter as one PDF
func GeneratePackagePDFHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.DocumentRequest
		if err := c.Bind(&req); err != nil {
			return respondError(c, utils.NewInvalidRequestError("Invalid request format"))
		}
		if req.TailoredCV == "" || req.CoverLetter == "" {
			return respondError(c, utils.NewInvalidRequestError("tailoredCV and coverLetter are required"))
		}

		data, err := pdf.RenderPackage(req.TailoredCV, req.CoverLetter, req.CompanyName, req.Position)
		if err != nil {
			return respondError(c, err)
		}

		return sendPDF(c, "application-package.pdf", data)
	}
}

func sendPDF(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
