// Package workbook decodes an .xlsx estate workbook into raw sheet rows for
// normalization.
package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/estateworks/estates-go/internal/portfolio"
)

// Sheet names expected in the workbook. Projects and Tasks are mandatory;
// the rest degrade to empty row sets when absent.
const (
	SheetProjects    = "Projects"
	SheetTasks       = "Tasks"
	SheetContractors = "Contractors"
	SheetWarnings    = "HealthAndSafety"
	SheetLinks       = "ProjectContractors"
)

// Load opens the workbook at path and extracts its raw sheet rows.
func Load(path string) (portfolio.Input, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return portfolio.Input{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// ReadFrom decodes a workbook from a reader.
func ReadFrom(r io.Reader) (portfolio.Input, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return portfolio.Input{}, fmt.Errorf("failed to decode workbook: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read extracts the five sheets from an open workbook. It fails only when a
// mandatory sheet is missing or a sheet cannot be decoded; row content is
// passed through untouched for the normalizer to judge.
func Read(f *excelize.File) (portfolio.Input, error) {
	var in portfolio.Input
	var err error

	if in.Projects, err = sheetRows(f, SheetProjects, true); err != nil {
		return portfolio.Input{}, err
	}
	if in.Tasks, err = sheetRows(f, SheetTasks, true); err != nil {
		return portfolio.Input{}, err
	}
	if in.Contractors, err = sheetRows(f, SheetContractors, false); err != nil {
		return portfolio.Input{}, err
	}
	if in.Warnings, err = sheetRows(f, SheetWarnings, false); err != nil {
		return portfolio.Input{}, err
	}
	if in.Links, err = sheetRows(f, SheetLinks, false); err != nil {
		return portfolio.Input{}, err
	}
	return in, nil
}

// sheetRows reads a sheet into header-keyed rows. The first row is the
// header; fully empty rows are skipped.
func sheetRows(f *excelize.File, name string, required bool) ([]portfolio.Row, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		if required {
			return nil, fmt.Errorf("missing required sheet %q", name)
		}
		return nil, nil
	}

	cells, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	// A sheet that exists but has no cells yields an empty row set, even
	// for the mandatory sheets.
	if len(cells) == 0 {
		return nil, nil
	}

	header := cells[0]
	rows := make([]portfolio.Row, 0, len(cells)-1)
	for _, record := range cells[1:] {
		row := make(portfolio.Row, len(header))
		empty := true
		for i, col := range header {
			col = strings.TrimSpace(col)
			if col == "" || i >= len(record) {
				continue
			}
			value := strings.TrimSpace(record[i])
			if value != "" {
				empty = false
			}
			row[col] = value
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
