// Package pdf renders the generated documents as downloadable PDFs.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 18.0
	bodySize   = 11.0
	titleSize  = 20.0
)

// RenderCV renders a tailored CV as a standalone PDF
func RenderCV(content, company, position string) ([]byte, error) {
	doc := newDocument()
	writeTitledPage(doc, "Curriculum Vitae", company, position, content)
	return output(doc)
}

// RenderCoverLetter renders a cover letter as a standalone PDF
func RenderCoverLetter(content, company, position string) ([]byte, error) {
	doc := newDocument()
	writeTitledPage(doc, "Cover Letter", company, position, content)
	return output(doc)
}

// RenderPackage renders the CV and the cover letter as one two-part PDF
func RenderPackage(cvContent, coverLetter, company, position string) ([]byte, error) {
	doc := newDocument()
	writeTitledPage(doc, "Curriculum Vitae", company, position, cvContent)
	writeTitledPage(doc, "Cover Letter", company, position, coverLetter)
	return output(doc)
}

func newDocument() *gofpdf.Fpdf {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	return doc
}

// writeTitledPage adds one page with a centered title, the position and
// company lines, the justified body text, and a generation-date footer.
func writeTitledPage(doc *gofpdf.Fpdf, title, company, position, content string) {
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", titleSize)
	doc.CellFormat(0, 12, tr(title), "", 1, "C", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 12)
	if position != "" {
		doc.CellFormat(0, 6, tr("Position: "+position), "", 1, "C", false, 0, "")
	}
	if company != "" {
		doc.CellFormat(0, 6, tr("Company: "+company), "", 1, "C", false, 0, "")
	}
	doc.Ln(8)

	doc.SetFont("Helvetica", "", bodySize)
	doc.MultiCell(0, 5.5, tr(content), "", "J", false)

	doc.Ln(8)
	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(0, 5, tr(fmt.Sprintf("Generated on %s", time.Now().Format("2006-01-02"))), "", 1, "C", false, 0, "")
}

// output finalizes the document on every path and returns its bytes
func output(doc *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
