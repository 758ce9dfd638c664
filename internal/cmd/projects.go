package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/estateworks/estates-go/internal/output"
)

var (
	projectsStatus string
	projectsSite   string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects, optionally filtered by status and site",
	RunE:  runProjects,
}

func init() {
	projectsCmd.Flags().StringVar(&projectsStatus, "status", "all", "filter by status (Planned, In Progress, Completed)")
	projectsCmd.Flags().StringVar(&projectsSite, "site", "all", "filter by site")
}

func runProjects(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	projects := store.FilteredProjects(projectsStatus, projectsSite)
	if len(projects) == 0 {
		cmd.Println("No projects match this filter.")
		return nil
	}

	table := output.NewTable("ID", "Name", "Site", "Asset", "Status", "Start", "End", "Budget", "Projected")
	for _, p := range projects {
		table.AddRow(
			strconv.Itoa(p.ID),
			p.Name,
			p.Site,
			p.AssetType,
			output.Color(p.Status.String(), output.StatusColor(p.Status.String())),
			output.FormatDate(p.StartDate),
			output.FormatDate(p.EndDate),
			output.FormatMoney(p.Budget),
			output.FormatMoney(p.ProjectedSpend),
		)
	}
	cmd.Print(table.Render())
	cmd.Printf("\n%d project(s)\n", len(projects))
	return nil
}
