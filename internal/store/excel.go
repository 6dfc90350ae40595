// Package store persists tracked job applications in a spreadsheet. The
// file doubles as the user-facing export, so rows keep human-readable
// headers and column widths.
package store

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
)

const sheetName = "Applications"

var headers = []string{
	"ID", "Company", "Position", "Location", "Date Applied",
	"Status", "Salary Range", "Contact Person", "Job URL", "Notes",
}

var columnWidths = map[string]float64{
	"A": 15, "B": 20, "C": 25, "D": 15, "E": 14,
	"F": 14, "G": 15, "H": 20, "I": 40, "J": 50,
}

// ErrNotFound is returned when an application ID does not exist
var ErrNotFound = errors.New("application not found")

// ExcelStore reads and writes applications to an xlsx file. All
// operations rewrite the whole sheet; the mutex serializes them.
type ExcelStore struct {
	path   string
	mu     sync.Mutex
	logger logging.Logger
}

// NewExcelStore opens the store at path, creating an empty spreadsheet
// with headers when the file does not exist yet.
func NewExcelStore(path string) (*ExcelStore, error) {
	s := &ExcelStore{
		path:   path,
		logger: logging.GetGlobalLogger(),
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeAll(nil); err != nil {
			return nil, fmt.Errorf("failed to initialize store: %w", err)
		}
		s.logger.Info("Created application store", map[string]interface{}{
			"path": path,
		})
	}

	return s, nil
}

// ReadAll returns every stored application in sheet order
func (s *ExcelStore) ReadAll() ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

// Create stores a new application, assigning an ID and defaults for the
// applied date and status when they are missing.
func (s *ExcelStore) Create(app models.Application) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.readAll()
	if err != nil {
		return models.Application{}, err
	}

	if app.ID == 0 {
		app.ID = time.Now().UnixMilli()
	}
	if app.DateApplied == "" {
		app.DateApplied = time.Now().Format("2006-01-02")
	}
	if app.Status == "" {
		app.Status = "Applied"
	}

	apps = append(apps, app)
	if err := s.writeAll(apps); err != nil {
		return models.Application{}, err
	}

	s.logger.Info("Application created", map[string]interface{}{
		"id":      app.ID,
		"company": app.Company,
	})
	return app, nil
}

// Update replaces the application with the given ID
func (s *ExcelStore) Update(id int64, app models.Application) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.readAll()
	if err != nil {
		return models.Application{}, err
	}

	for i := range apps {
		if apps[i].ID == id {
			app.ID = id
			if app.DateApplied == "" {
				app.DateApplied = apps[i].DateApplied
			}
			apps[i] = app
			if err := s.writeAll(apps); err != nil {
				return models.Application{}, err
			}
			return app, nil
		}
	}

	return models.Application{}, ErrNotFound
}

// Delete removes the application with the given ID
func (s *ExcelStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.readAll()
	if err != nil {
		return err
	}

	for i := range apps {
		if apps[i].ID == id {
			apps = append(apps[:i], apps[i+1:]...)
			return s.writeAll(apps)
		}
	}

	return ErrNotFound
}

func (s *ExcelStore) readAll() ([]models.Application, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	var apps []models.Application
	for i, row := range rows {
		if i == 0 {
			continue
		}

		id, err := strconv.ParseInt(cell(row, 0), 10, 64)
		if err != nil {
			continue
		}

		apps = append(apps, models.Application{
			ID:          id,
			Company:     cell(row, 1),
			Position:    cell(row, 2),
			Location:    cell(row, 3),
			DateApplied: cell(row, 4),
			Status:      cell(row, 5),
			Salary:      cell(row, 6),
			Contact:     cell(row, 7),
			JobURL:      cell(row, 8),
			Notes:       cell(row, 9),
		})
	}

	return apps, nil
}

func (s *ExcelStore) writeAll(apps []models.Application) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, app := range apps {
		row := []interface{}{
			strconv.FormatInt(app.ID, 10),
			app.Company, app.Position, app.Location, app.DateApplied,
			app.Status, app.Salary, app.Contact, app.JobURL, app.Notes,
		}
		addr := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, addr, &row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}
	return nil
}

// cell reads a column by index, tolerating short rows from trailing
// empty cells that the reader drops.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
