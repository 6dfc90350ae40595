// Package cv turns uploaded CV files into plain text for prompt building.
package cv

import (
	"bytes"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"

	"jobdeck/internal/logging"
	"jobdeck/pkg/utils"
)

// Extractor converts uploaded CV documents to plain text
type Extractor struct {
	logger logging.Logger
}

// NewExtractor creates a new CV text extractor
func NewExtractor() *Extractor {
	return &Extractor{logger: logging.GetGlobalLogger()}
}

// ExtractText extracts the text content from a CV file. PDF and word
// processor formats go through docconv; plain text passes through.
func (e *Extractor) ExtractText(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.Convert(bytes.NewReader(data), docconv.MimeTypeByExtension(filename), true)
		if err != nil {
			e.logger.Error("CV conversion failed", map[string]interface{}{
				"filename": filename,
				"error":    err.Error(),
			})
			return "", utils.NewDocumentParseError(err.Error())
		}
		if strings.TrimSpace(res.Body) == "" {
			return "", utils.NewDocumentParseError("document contains no extractable text")
		}
		return res.Body, nil

	case ".txt":
		text := string(data)
		if strings.TrimSpace(text) == "" {
			return "", utils.NewDocumentParseError("file is empty")
		}
		return text, nil

	default:
		return "", utils.NewDocumentParseError("unsupported file type: " + ext)
	}
}
