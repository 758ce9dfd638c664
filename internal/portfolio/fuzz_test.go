package portfolio

import (
	"math"
	"strings"
	"testing"
)

// FuzzRowCoercion tests cell coercion with arbitrary input.
// Messy spreadsheet text must never panic or produce a non-finite number.
func FuzzRowCoercion(f *testing.F) {
	// Seed corpus with realistic cell values
	f.Add("3")
	f.Add("3.0")
	f.Add("-2")
	f.Add("0")
	f.Add("")
	f.Add("  42  ")
	f.Add("1200.50")
	f.Add("abc")
	f.Add("1,000")

	// Edge cases
	f.Add("NaN")
	f.Add("+Inf")
	f.Add("-inf")
	f.Add("1e999")
	f.Add("1e300")
	f.Add("0x10")
	f.Add("12.5.3")
	f.Add("\x00")
	f.Add("\ufeff7")
	f.Add(strings.Repeat("9", 1000))

	f.Fuzz(func(t *testing.T, cell string) {
		row := Row{"V": cell}

		// Coercion should never panic on any input
		v := row.Float("V")
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Float(%q) = %v, want finite", cell, v)
		}
		_ = row.Int("V")
		_ = row.Text("V")
	})
}

// FuzzNormalize tests normalization with arbitrary cell text across all five
// sheets. Malformed rows are dropped or coerced, never panic, and the
// resulting graph always honors the id invariants.
func FuzzNormalize(f *testing.F) {
	// Seed corpus with valid and near-valid rows
	f.Add("1", "Roof", "Planned", "1000", "1", "Survey", "Pre", "Done")
	f.Add("2.0", "Boiler", "In Progress", "0", "2", "Fit", "During", "In Progress")
	f.Add("3", "", "", "", "3", "", "", "")

	// Rows that should be dropped or defaulted
	f.Add("0", "No ID", "Planned", "100", "-1", "Orphan", "Pre", "Done")
	f.Add("abc", "Bad ID", "Nonsense", "NaN", "1", "Task", "Handover", "???")
	f.Add("-7", "Negative", "Completed", "+Inf", "99", "Dangling", "Post", "Done")

	// Hostile text
	f.Add("\x00", "\ufeff", strings.Repeat("A", 5000), "1e999", "1", "\x00\x00", "\t\n", "\r")

	f.Fuzz(func(t *testing.T, id, name, status, budget, taskPID, title, phase, taskStatus string) {
		// Normalization should not panic on any input
		snap := Normalize(Input{
			Projects:    []Row{{"ID": id, "Name": name, "Status": status, "Budget": budget, "ProjectedSpend": budget}},
			Tasks:       []Row{{"ProjectID": taskPID, "Title": title, "Phase": phase, "Status": taskStatus}},
			Contractors: []Row{{"ContractorID": id, "Name": name, "Preferred": status}},
			Warnings:    []Row{{"HSID": taskPID, "ProjectID": id, "Severity": phase, "WarningType": title}},
			Links:       []Row{{"LinkID": id, "ProjectID": taskPID, "ContractorID": id}},
		})

		for _, p := range snap.Projects {
			if p.ID <= 0 {
				t.Errorf("project with id %d survived normalization", p.ID)
			}
			if math.IsNaN(p.Budget) || math.IsInf(p.Budget, 0) {
				t.Errorf("non-finite budget %v survived normalization", p.Budget)
			}
			if p.PhaseTasks == nil {
				t.Error("project with nil PhaseTasks")
			}
			for _, task := range p.PhaseTasks {
				if task.Status == "" || task.Phase == "" {
					t.Errorf("task without defaults: %+v", task)
				}
			}
		}
		for _, c := range snap.Contractors {
			if c.ContractorID <= 0 {
				t.Errorf("contractor with id %d survived normalization", c.ContractorID)
			}
		}
		for _, w := range snap.Warnings {
			if w.ID <= 0 {
				t.Errorf("warning with id %d survived normalization", w.ID)
			}
		}
		for _, l := range snap.Links {
			if l.LinkID <= 0 || l.ProjectID <= 0 || l.ContractorID <= 0 {
				t.Errorf("incomplete link survived normalization: %+v", l)
			}
		}

		// The graph should be usable by the query layer without panicking
		store := NewStore()
		store.Replace(snap)
		_ = store.Stats()
		_ = Sites(snap.Projects)
		_ = TopRisks(snap.Projects, 5)
		_ = Hotspots(snap.Projects, snap.Warnings, 5)
		_ = ContractorUsageRanking(snap.Contractors, snap.Links, snap.Projects, 8)
		_ = TradeUsage(snap.Contractors, snap.Links)
	})
}
