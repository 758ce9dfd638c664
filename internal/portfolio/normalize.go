package portfolio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Row is a single spreadsheet row, keyed by column header. Values arrive as
// loosely-typed cell text; all coercion happens here.
type Row map[string]string

// Text returns the trimmed cell value for a column, or "" when absent.
func (r Row) Text(col string) string {
	return strings.TrimSpace(r[col])
}

// Float returns the numeric cell value for a column, or 0 when absent or
// unparseable. ParseFloat accepts "NaN" and "Inf" literals; those coerce to
// 0 too, so consumers never see a non-finite value.
func (r Row) Float(col string) float64 {
	f, err := strconv.ParseFloat(r.Text(col), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Int returns the cell value as an integer, or 0 when absent or unparseable.
// Spreadsheet decoders sometimes render integer ids as "3.0", so this parses
// through float. Values outside the int32 range coerce to 0 like
// unparseable ones.
func (r Row) Int(col string) int {
	f := r.Float(col)
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// Input holds the raw row sequences of the five workbook sheets. Projects and
// Tasks are mandatory upstream; the other three default to empty.
type Input struct {
	Projects    []Row
	Tasks       []Row
	Contractors []Row
	Warnings    []Row
	Links       []Row
}

// Snapshot is a fully normalized entity graph, ready to replace the store's
// contents wholesale.
type Snapshot struct {
	Projects    []*Project
	Contractors []*Contractor
	Warnings    []*Warning
	Links       []*Link
}

// Normalize converts raw sheet rows into the normalized entity graph.
//
// It is total: malformed rows are dropped or coerced, never reported as
// errors, so partial spreadsheets still produce whatever is valid.
func Normalize(in Input) *Snapshot {
	byID := make(map[int]*Project)
	order := make([]int, 0, len(in.Projects))

	for _, row := range in.Projects {
		id := row.Int("ID")
		if id <= 0 {
			continue
		}
		status := ProjectStatus(row.Text("Status"))
		if status == "" {
			status = ProjectPlanned
		}
		if _, seen := byID[id]; !seen {
			order = append(order, id)
		}
		// Last write wins on duplicate ids; position stays at first occurrence.
		byID[id] = &Project{
			ID:               id,
			Name:             row.Text("Name"),
			AssetType:        row.Text("AssetType"),
			AssetName:        row.Text("AssetName"),
			Site:             row.Text("Site"),
			BuildingOrArea:   row.Text("BuildingOrArea"),
			Status:           status,
			StartDate:        row.Text("StartDate"),
			EndDate:          row.Text("EndDate"),
			Owner:            row.Text("Owner"),
			LeadUser:         row.Text("LeadUser"),
			CurrentSpend:     row.Float("CurrentSpend"),
			ProjectedSpend:   row.Float("ProjectedSpend"),
			Budget:           row.Float("Budget"),
			BaselineEstimate: row.Float("BaselineEstimate"),
			RiskRating:       row.Text("RiskRating"),
			RiskSummary:      row.Text("RiskSummary"),
			PhaseTasks:       []*Task{},
		}
	}

	for _, row := range in.Tasks {
		pid := row.Int("ProjectID")
		project := byID[pid]
		if pid <= 0 || project == nil {
			continue
		}
		phase := Phase(row.Text("Phase"))
		if phase == "" {
			phase = PhasePre
		}
		status := TaskStatus(row.Text("Status"))
		if status == "" {
			status = TaskNotStarted
		}
		title := row.Text("Title")
		project.PhaseTasks = append(project.PhaseTasks, &Task{
			ID:       fmt.Sprintf("%d-%s", pid, title),
			Phase:    phase,
			Title:    title,
			Assignee: row.Text("Assignee"),
			Due:      row.Text("DueDate"),
			Status:   status,
		})
	}

	projects := make([]*Project, 0, len(order))
	for _, id := range order {
		projects = append(projects, byID[id])
	}

	contractors := make([]*Contractor, 0, len(in.Contractors))
	for _, row := range in.Contractors {
		id := row.Int("ContractorID")
		if id <= 0 {
			continue
		}
		contractors = append(contractors, &Contractor{
			ContractorID:   id,
			Name:           row.Text("Name"),
			Company:        row.Text("Company"),
			Trade:          row.Text("Trade"),
			Phone:          row.Text("Phone"),
			Email:          row.Text("Email"),
			Accreditations: row.Text("Accreditations"),
			Preferred:      parsePreferred(row.Text("Preferred")),
			Notes:          row.Text("Notes"),
		})
	}

	warnings := make([]*Warning, 0, len(in.Warnings))
	for _, row := range in.Warnings {
		id := row.Int("HSID")
		if id <= 0 {
			continue
		}
		// ProjectID is kept as given; it may not resolve to a loaded project.
		warnings = append(warnings, &Warning{
			ID:              id,
			ProjectID:       row.Int("ProjectID"),
			WarningType:     row.Text("WarningType"),
			Description:     row.Text("Description"),
			Severity:        row.Text("Severity"),
			Location:        row.Text("Location"),
			ControlMeasures: row.Text("ControlMeasures"),
			Notes:           row.Text("Notes"),
		})
	}

	links := make([]*Link, 0, len(in.Links))
	for _, row := range in.Links {
		link := &Link{
			LinkID:       row.Int("LinkID"),
			ProjectID:    row.Int("ProjectID"),
			ContractorID: row.Int("ContractorID"),
			Role:         row.Text("Role"),
			Notes:        row.Text("Notes"),
		}
		if link.LinkID <= 0 || link.ProjectID <= 0 || link.ContractorID <= 0 {
			continue
		}
		links = append(links, link)
	}

	return &Snapshot{
		Projects:    projects,
		Contractors: contractors,
		Warnings:    warnings,
		Links:       links,
	}
}

// parsePreferred coerces the Preferred column to a boolean via a
// case-insensitive match against the accepted literals.
func parsePreferred(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}
