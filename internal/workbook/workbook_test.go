package workbook

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/estateworks/estates-go/internal/portfolio"
)

// writeWorkbook builds a real .xlsx file with the given sheets, each sheet a
// header row plus data rows.
func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("new sheet %s: %v", name, err)
			}
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "estate.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		SheetProjects: {
			{"ID", "Name", "Site", "Status", "Budget"},
			{1, "Roof Replacement", "North", "Planned", 1000},
			{2, "Boiler Upgrade", "South", "", ""},
		},
		SheetTasks: {
			{"ProjectID", "Title", "Phase", "Status"},
			{1, "Survey", "Pre", "Done"},
		},
		SheetContractors: {
			{"ContractorID", "Name", "Preferred"},
			{10, "Acme", "yes"},
		},
	})

	input, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(input.Projects) != 2 {
		t.Fatalf("project rows = %d, want 2", len(input.Projects))
	}
	if got := input.Projects[0].Text("Name"); got != "Roof Replacement" {
		t.Errorf("Name = %q", got)
	}
	if got := input.Projects[0].Int("ID"); got != 1 {
		t.Errorf("ID = %d", got)
	}
	if len(input.Tasks) != 1 {
		t.Errorf("task rows = %d, want 1", len(input.Tasks))
	}
	if len(input.Contractors) != 1 {
		t.Errorf("contractor rows = %d, want 1", len(input.Contractors))
	}
	// Absent optional sheets degrade to empty.
	if len(input.Warnings) != 0 || len(input.Links) != 0 {
		t.Errorf("optional sheets not empty: %d warnings, %d links", len(input.Warnings), len(input.Links))
	}

	// The rows feed straight into normalization.
	snap := portfolio.Normalize(input)
	if len(snap.Projects) != 2 || len(snap.Projects[0].PhaseTasks) != 1 {
		t.Errorf("normalized graph = %+v", snap)
	}
}

func TestLoadMissingRequiredSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		SheetProjects: {
			{"ID", "Name"},
			{1, "Roof"},
		},
	})

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing Tasks sheet")
	}
	if !strings.Contains(err.Error(), "missing required sheet") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadEmptyRequiredSheet(t *testing.T) {
	// A mandatory sheet that exists but has no cells at all is not an
	// error; it just yields zero rows.
	path := writeWorkbook(t, map[string][][]interface{}{
		SheetProjects: {
			{"ID", "Name"},
			{1, "Roof"},
		},
		SheetTasks: {},
	})

	input, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(input.Projects) != 1 {
		t.Errorf("project rows = %d, want 1", len(input.Projects))
	}
	if len(input.Tasks) != 0 {
		t.Errorf("empty Tasks sheet produced %d rows", len(input.Tasks))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSheetRowsSkipsEmptyRows(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		SheetProjects: {
			{"ID", "Name"},
			{1, "Roof"},
			{"", ""},
			{2, "Boiler"},
		},
		SheetTasks: {
			{"ProjectID", "Title"},
		},
	})

	input, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(input.Projects) != 2 {
		t.Errorf("project rows = %d, want 2 (empty row skipped)", len(input.Projects))
	}
	if len(input.Tasks) != 0 {
		t.Errorf("header-only sheet produced %d rows", len(input.Tasks))
	}
}
