package portfolio

import (
	"math"
	"sort"
	"time"
)

// FilterAll is the wildcard value for status and site filters.
const FilterAll = "all"

// Stats summarizes the whole loaded portfolio. Tasks with an unbucketed
// phase still count here even though they render in no phase column.
type Stats struct {
	ProjectCount   int `json:"projectCount"`
	TaskCount      int `json:"taskCount"`
	CompletedCount int `json:"completedCount"`
	Progress       int `json:"progress"`
}

// FilteredProjects returns projects matching both filters, in insertion
// order. "all" matches everything.
func (s *Store) FilteredProjects(statusFilter, siteFilter string) []*Project {
	var out []*Project
	for _, p := range s.Projects() {
		if statusFilter != FilterAll && string(p.Status) != statusFilter {
			continue
		}
		if siteFilter != FilterAll && p.Site != siteFilter {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ProgrammeProjects returns the status-unfiltered project set for the
// programme views, optionally restricted by site.
func (s *Store) ProgrammeProjects(siteFilter string) []*Project {
	return s.FilteredProjects(FilterAll, siteFilter)
}

// Stats computes the portfolio summary across all projects' tasks.
func (s *Store) Stats() Stats {
	stats := Stats{}
	for _, p := range s.Projects() {
		stats.ProjectCount++
		for _, t := range p.PhaseTasks {
			stats.TaskCount++
			if t.Status.IsDone() {
				stats.CompletedCount++
			}
		}
	}
	if stats.TaskCount > 0 {
		stats.Progress = int(math.Round(100 * float64(stats.CompletedCount) / float64(stats.TaskCount)))
	}
	return stats
}

// WarningsFor returns the H&S warnings referencing the given project, in
// source order.
func (s *Store) WarningsFor(projectID int) []*Warning {
	var out []*Warning
	for _, w := range s.Warnings() {
		if w.ProjectID == projectID {
			out = append(out, w)
		}
	}
	return out
}

// LinksFor returns the links referencing the given project, in source order.
func (s *Store) LinksFor(projectID int) []*Link {
	var out []*Link
	for _, l := range s.Links() {
		if l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	return out
}

// ContractorsFor joins the project's links against the contractor set. A
// link whose contractor was never loaded still yields a row, with empty
// contractor fields.
func (s *Store) ContractorsFor(projectID int) []ProjectContractor {
	contractors := s.Contractors()
	var out []ProjectContractor
	for _, link := range s.LinksFor(projectID) {
		row := ProjectContractor{
			LinkID:       link.LinkID,
			ProjectID:    link.ProjectID,
			Role:         link.Role,
			Notes:        link.Notes,
			ContractorID: link.ContractorID,
		}
		for _, c := range contractors {
			if c.ContractorID == link.ContractorID {
				row.Name = c.Name
				row.Company = c.Company
				row.Trade = c.Trade
				row.Phone = c.Phone
				row.Email = c.Email
				row.Accreditations = c.Accreditations
				row.Preferred = c.Preferred
				break
			}
		}
		out = append(out, row)
	}
	return out
}

// Sites returns the distinct non-empty sites across the given projects,
// sorted, for populating the site filter.
func Sites(projects []*Project) []string {
	seen := make(map[string]bool)
	var sites []string
	for _, p := range projects {
		if p.Site != "" && !seen[p.Site] {
			seen[p.Site] = true
			sites = append(sites, p.Site)
		}
	}
	sort.Strings(sites)
	return sites
}

// TopRisks returns up to n projects ranked by risk weight descending. Ties
// keep original order.
func TopRisks(projects []*Project, n int) []*Project {
	ranked := append([]*Project(nil), projects...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return RiskWeight(ranked[i].RiskRating) > RiskWeight(ranked[j].RiskRating)
	})
	return truncate(ranked, n)
}

// HighestSeverity returns the warning with the highest severity weight, with
// a first-element tie-break. Nil for an empty input.
func HighestSeverity(warnings []*Warning) *Warning {
	if len(warnings) == 0 {
		return nil
	}
	highest := warnings[0]
	for _, w := range warnings[1:] {
		if SeverityWeight(w.Severity) > SeverityWeight(highest.Severity) {
			highest = w
		}
	}
	return highest
}

// Hotspot is a project surfaced for carrying at least one Medium-or-higher
// severity H&S warning.
type Hotspot struct {
	Project      *Project `json:"project"`
	Severity     string   `json:"severity"`
	WarningTypes []string `json:"warningTypes"`
}

// Hotspots ranks the given projects by their highest warning severity,
// keeping only those whose highest severity weighs at least Medium, top n
// descending. Warning types are distinct, in first-seen order.
func Hotspots(projects []*Project, warnings []*Warning, n int) []Hotspot {
	byProject := make(map[int][]*Warning)
	for _, w := range warnings {
		byProject[w.ProjectID] = append(byProject[w.ProjectID], w)
	}

	var out []Hotspot
	for _, p := range projects {
		ws := byProject[p.ID]
		highest := HighestSeverity(ws)
		if highest == nil || SeverityWeight(highest.Severity) < 2 {
			continue
		}
		seen := make(map[string]bool)
		var types []string
		for _, w := range ws {
			if w.WarningType != "" && !seen[w.WarningType] {
				seen[w.WarningType] = true
				types = append(types, w.WarningType)
			}
		}
		out = append(out, Hotspot{Project: p, Severity: highest.Severity, WarningTypes: types})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return SeverityWeight(out[i].Severity) > SeverityWeight(out[j].Severity)
	})
	return truncate(out, n)
}

// ContractorUsage is a contractor with the number of distinct projects it is
// linked to within some project set.
type ContractorUsage struct {
	Contractor   *Contractor `json:"contractor"`
	ProjectCount int         `json:"projectCount"`
}

// ContractorUsageRanking counts, per contractor, the distinct projects it is
// linked to within the given project set. Contractors with no usage are
// excluded; the rest rank by count descending (stable, source order on
// ties), top n.
func ContractorUsageRanking(contractors []*Contractor, links []*Link, projects []*Project, n int) []ContractorUsage {
	inSet := make(map[int]bool, len(projects))
	for _, p := range projects {
		inSet[p.ID] = true
	}
	usage := make(map[int]map[int]bool)
	for _, link := range links {
		if !inSet[link.ProjectID] {
			continue
		}
		if usage[link.ContractorID] == nil {
			usage[link.ContractorID] = make(map[int]bool)
		}
		usage[link.ContractorID][link.ProjectID] = true
	}

	var out []ContractorUsage
	for _, c := range contractors {
		if count := len(usage[c.ContractorID]); count > 0 {
			out = append(out, ContractorUsage{Contractor: c, ProjectCount: count})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProjectCount > out[j].ProjectCount
	})
	return truncate(out, n)
}

// CountSeries is a label-aligned count series for charting. Labels appear in
// first-seen order, never map order.
type CountSeries struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

func (cs *CountSeries) bump(label string) {
	for i, l := range cs.Labels {
		if l == label {
			cs.Values[i]++
			return
		}
	}
	cs.Labels = append(cs.Labels, label)
	cs.Values = append(cs.Values, 1)
}

// ProjectsBySite counts projects per site, defaulting empty sites to
// "Unknown".
func ProjectsBySite(projects []*Project) CountSeries {
	var cs CountSeries
	for _, p := range projects {
		cs.bump(orDefault(p.Site, "Unknown"))
	}
	return cs
}

// ProjectsByAssetType counts projects per asset type, defaulting empty types
// to "Unknown".
func ProjectsByAssetType(projects []*Project) CountSeries {
	var cs CountSeries
	for _, p := range projects {
		cs.bump(orDefault(p.AssetType, "Unknown"))
	}
	return cs
}

// TasksByAssignee counts tasks per assignee across the given projects,
// defaulting empty assignees to "Unassigned".
func TasksByAssignee(projects []*Project) CountSeries {
	var cs CountSeries
	for _, p := range projects {
		for _, t := range p.PhaseTasks {
			cs.bump(orDefault(t.Assignee, "Unassigned"))
		}
	}
	return cs
}

// TradeUsage counts distinct projects per contractor trade across the given
// links, defaulting empty trades to "Other". Links whose contractor was
// never loaded also land in "Other".
func TradeUsage(contractors []*Contractor, links []*Link) CountSeries {
	byID := make(map[int]*Contractor, len(contractors))
	for _, c := range contractors {
		byID[c.ContractorID] = c
	}
	labels := []string{}
	perTrade := make(map[string]map[int]bool)
	for _, link := range links {
		trade := "Other"
		if c := byID[link.ContractorID]; c != nil && c.Trade != "" {
			trade = c.Trade
		}
		if perTrade[trade] == nil {
			perTrade[trade] = make(map[int]bool)
			labels = append(labels, trade)
		}
		perTrade[trade][link.ProjectID] = true
	}
	cs := CountSeries{}
	for _, trade := range labels {
		cs.Labels = append(cs.Labels, trade)
		cs.Values = append(cs.Values, len(perTrade[trade]))
	}
	return cs
}

// TimelineEntry is a project with parsed start/end dates for the timeline
// chart.
type TimelineEntry struct {
	Project  *Project      `json:"project"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Duration time.Duration `json:"duration"`
}

// Timeline returns the projects that carry both dates in parseable ISO form,
// sorted by start date ascending.
func Timeline(projects []*Project) []TimelineEntry {
	var out []TimelineEntry
	for _, p := range projects {
		if p.StartDate == "" || p.EndDate == "" {
			continue
		}
		start, err := time.Parse("2006-01-02", p.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse("2006-01-02", p.EndDate)
		if err != nil {
			continue
		}
		out = append(out, TimelineEntry{Project: p, Start: start, End: end, Duration: end.Sub(start)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// SpendRow is one row of the programme spend table.
type SpendRow struct {
	Name      string  `json:"name"`
	Budget    float64 `json:"budget"`
	Baseline  float64 `json:"baseline"`
	Projected float64 `json:"projected"`
	Current   float64 `json:"current"`
	Variance  float64 `json:"variance"`
}

// SpendTable returns per-project spend figures in project order. Variance is
// projected spend against budget.
func SpendTable(projects []*Project) []SpendRow {
	rows := make([]SpendRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, SpendRow{
			Name:      p.Name,
			Budget:    p.Budget,
			Baseline:  p.BaselineEstimate,
			Projected: p.ProjectedSpend,
			Current:   p.CurrentSpend,
			Variance:  p.Variance(),
		})
	}
	return rows
}

// SeverityCounts is the H&S heatmap: warning counts per severity band within
// some project set. Unrecognized severities count nowhere.
type SeverityCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// SeverityHeatmap counts warnings per severity band, restricted to warnings
// referencing the given projects.
func SeverityHeatmap(projects []*Project, warnings []*Warning) SeverityCounts {
	inSet := make(map[int]bool, len(projects))
	for _, p := range projects {
		inSet[p.ID] = true
	}
	var counts SeverityCounts
	for _, w := range warnings {
		if !inSet[w.ProjectID] {
			continue
		}
		switch SeverityWeight(w.Severity) {
		case 1:
			counts.Low++
		case 2:
			counts.Medium++
		case 3:
			counts.High++
		}
	}
	return counts
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func truncate[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
