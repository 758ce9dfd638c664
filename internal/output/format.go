// Package output provides terminal formatting utilities for the estates CLI.
package output

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	White  = "\033[37m"
)

var useColor = true

// DisableColor disables colored output.
func DisableColor() {
	useColor = false
}

// EnableColor enables colored output.
func EnableColor() {
	useColor = true
}

// IsColorEnabled returns whether color output is enabled.
func IsColorEnabled() bool {
	return useColor && isTerminal()
}

func isTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Color applies a color to text if color is enabled.
func Color(text, color string) string {
	if !IsColorEnabled() {
		return text
	}
	return color + text + Reset
}

// StatusColor returns the color for a project or task status.
func StatusColor(status string) string {
	switch status {
	case "Completed", "Done":
		return Green
	case "In Progress":
		return Cyan
	case "Planned", "Not Started":
		return Yellow
	default:
		return White
	}
}

// SeverityColor returns the color for a risk rating or H&S severity.
func SeverityColor(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "high":
		return Red
	case "medium":
		return Yellow
	case "low":
		return Green
	default:
		return White
	}
}

// Header renders a section header padded to the given width.
func Header(title string, width int) string {
	if len(title) >= width {
		return Color(title, Bold)
	}
	pad := width - len(title) - 1
	return Color(title, Bold) + " " + strings.Repeat("=", pad)
}

// ProgressBar creates a visual progress bar for a 0-100 percentage.
func ProgressBar(percent float64, width int) string {
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	done := strings.Repeat("█", filled)
	rest := strings.Repeat("░", width-filled)
	return "[" + Color(done, Green) + rest + "]"
}

// FormatPercent formats a percentage with no decimal places.
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(percent)))
}

// FormatMoney formats an amount in pounds with thousands separators and no
// pence.
func FormatMoney(amount float64) string {
	neg := amount < 0
	n := int64(math.Round(math.Abs(amount)))
	digits := strconv.FormatInt(n, 10)

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString("£")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return sb.String()
}

// FormatDate renders an ISO date as "02 Jan 2006". Empty or unparseable
// dates render as "TBC", matching the dashboard.
func FormatDate(iso string) string {
	if iso == "" {
		return "TBC"
	}
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "TBC"
	}
	return d.Format("02 Jan 2006")
}
