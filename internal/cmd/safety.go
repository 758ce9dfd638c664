package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/estateworks/estates-go/internal/output"
	"github.com/estateworks/estates-go/internal/portfolio"
)

var safetySite string

var safetyCmd = &cobra.Command{
	Use:   "safety",
	Short: "Show Health & Safety hotspots and the severity heatmap",
	Long: `List the projects carrying Medium-or-higher severity Health & Safety
warnings, ranked by severity, plus warning counts per severity band.`,
	RunE: runSafety,
}

func init() {
	safetyCmd.Flags().StringVar(&safetySite, "site", "all", "filter by site")
}

func runSafety(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	projects := store.ProgrammeProjects(safetySite)
	warnings := store.Warnings()

	if len(warnings) == 0 {
		cmd.Println("No Health & Safety warnings loaded from the workbook.")
		return nil
	}

	cmd.Println(output.Header("H&S Hotspots", 60))
	cmd.Println()
	hotspots := portfolio.Hotspots(projects, warnings, cfg.Estates.Rankings.TopHotspots)
	if len(hotspots) == 0 {
		cmd.Println("No High or Medium severity H&S warnings found.")
	}
	for _, h := range hotspots {
		types := strings.Join(h.WarningTypes, ", ")
		if types == "" {
			types = "No warning types"
		}
		cmd.Printf("%s  [%s]\n", h.Project.Name, output.Color(h.Severity, output.SeverityColor(h.Severity)))
		cmd.Printf("    %s · %s\n", h.Project.Site, types)
	}

	counts := portfolio.SeverityHeatmap(projects, warnings)
	cmd.Println()
	cmd.Println(output.Header("Severity Heatmap", 60))
	cmd.Println()
	cmd.Printf("%s: %d  %s: %d  %s: %d\n",
		output.Color("Low", output.SeverityColor("Low")), counts.Low,
		output.Color("Medium", output.SeverityColor("Medium")), counts.Medium,
		output.Color("High", output.SeverityColor("High")), counts.High)
	return nil
}
