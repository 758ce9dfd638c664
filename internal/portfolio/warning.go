package portfolio

import "strings"

// Warning is a Health & Safety record. ProjectID is a weak reference and may
// not resolve to a loaded project.
type Warning struct {
	ID              int    `json:"id"`
	ProjectID       int    `json:"projectId"`
	WarningType     string `json:"warningType"`
	Description     string `json:"description"`
	Severity        string `json:"severity"`
	Location        string `json:"location"`
	ControlMeasures string `json:"controlMeasures"`
	Notes           string `json:"notes"`
}

// ordinalWeight maps the qualitative High/Medium/Low labels onto a total
// ordering for ranking. Anything else weighs 0.
func ordinalWeight(label string) int {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "high":
		return 3
	case "medium":
		return 2
	case "low":
		return 1
	default:
		return 0
	}
}

// RiskWeight returns the ranking weight of a project risk rating,
// case-insensitive.
func RiskWeight(rating string) int {
	return ordinalWeight(rating)
}

// SeverityWeight returns the ranking weight of an H&S severity,
// case-insensitive.
func SeverityWeight(severity string) int {
	return ordinalWeight(severity)
}
