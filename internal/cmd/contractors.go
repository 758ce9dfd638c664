package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/estateworks/estates-go/internal/output"
	"github.com/estateworks/estates-go/internal/portfolio"
)

var contractorsSite string

var contractorsCmd = &cobra.Command{
	Use:   "contractors",
	Short: "Show contractor usage across the portfolio",
	RunE:  runContractors,
}

func init() {
	contractorsCmd.Flags().StringVar(&contractorsSite, "site", "all", "filter by site")
}

func runContractors(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	projects := store.ProgrammeProjects(contractorsSite)
	usage := portfolio.ContractorUsageRanking(store.Contractors(), store.Links(), projects, cfg.Estates.Rankings.TopContractors)
	if len(usage) == 0 {
		cmd.Println("No contractors assigned to projects.")
		return nil
	}

	table := output.NewTable("Contractor", "Company", "Trade", "Projects", "Preferred")
	for _, u := range usage {
		preferred := ""
		if u.Contractor.Preferred {
			preferred = "yes"
		}
		table.AddRow(u.Contractor.Name, u.Contractor.Company, u.Contractor.Trade, strconv.Itoa(u.ProjectCount), preferred)
	}
	cmd.Print(table.Render())

	trades := portfolio.TradeUsage(store.Contractors(), store.Links())
	if len(trades.Labels) > 0 {
		cmd.Println()
		cmd.Println(output.Header("Projects per Trade", 40))
		for i, trade := range trades.Labels {
			cmd.Printf("%s: %d\n", trade, trades.Values[i])
		}
	}
	return nil
}
