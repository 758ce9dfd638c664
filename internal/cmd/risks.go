package cmd

import (
	"github.com/spf13/cobra"

	"github.com/estateworks/estates-go/internal/output"
	"github.com/estateworks/estates-go/internal/portfolio"
)

var risksSite string

var risksCmd = &cobra.Command{
	Use:   "risks",
	Short: "Show the highest-risk projects",
	RunE:  runRisks,
}

func init() {
	risksCmd.Flags().StringVar(&risksSite, "site", "all", "filter by site")
}

func runRisks(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	projects := store.ProgrammeProjects(risksSite)
	if len(projects) == 0 {
		cmd.Println("No projects loaded.")
		return nil
	}

	cmd.Println(output.Header("Top Risks", 60))
	cmd.Println()
	for _, p := range portfolio.TopRisks(projects, cfg.Estates.Rankings.TopRisks) {
		rating := p.RiskRating
		if rating == "" {
			rating = "N/A"
		}
		summary := p.RiskSummary
		if summary == "" {
			summary = "No risk summary provided."
		}
		cmd.Printf("%s  [%s]\n", p.Name, output.Color(rating, output.SeverityColor(rating)))
		cmd.Printf("    %s\n", summary)
	}
	return nil
}
