package cmd

import (
	"github.com/spf13/cobra"

	"github.com/estateworks/estates-go/internal/output"
	"github.com/estateworks/estates-go/internal/portfolio"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show portfolio summary statistics",
	Long: `Display the portfolio summary: project count, task completion across all
projects, and overall progress.`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	width := 60
	stats := store.Stats()

	cmd.Println(output.Header("Portfolio Status", width))
	cmd.Println()
	cmd.Printf("Progress: %s  %s\n", output.ProgressBar(float64(stats.Progress), 40), output.FormatPercent(float64(stats.Progress)))
	cmd.Println()
	cmd.Printf("%d projects, %d tasks (%d done)\n", stats.ProjectCount, stats.TaskCount, stats.CompletedCount)

	counts := make(map[portfolio.ProjectStatus]int)
	for _, p := range store.Projects() {
		counts[p.Status]++
	}
	cmd.Println()
	for _, status := range []portfolio.ProjectStatus{portfolio.ProjectPlanned, portfolio.ProjectInProgress, portfolio.ProjectCompleted} {
		label := output.Color(status.String(), output.StatusColor(status.String()))
		cmd.Printf("%s: %d\n", label, counts[status])
	}

	return nil
}
