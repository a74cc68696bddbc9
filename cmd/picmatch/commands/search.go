package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
)

func searchCmd() *cobra.Command {
	var (
		city   string
		style  string
		budget float64
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the photographer catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ports.PhotographerFilter{
				City:      city,
				Style:     domain.Style(style),
				MaxBudget: budget,
			}
			results := appCtx.Catalog.Search(cmd.Context(), filter)
			if len(results) == 0 {
				fmt.Println("No photographers match.")
				return nil
			}
			for _, p := range results {
				styles := make([]string, len(p.Styles))
				for i, s := range p.Styles {
					styles[i] = string(s)
				}
				fmt.Printf("%-4s %-14s %-12s %-28s $%.0f-%.0f  %.1f★ (%d reviews)\n",
					p.ID, p.Name, p.City, strings.Join(styles, ", "),
					p.PriceRange.Min, p.PriceRange.Max, p.Rating, p.ReviewCount)
				for _, pkg := range p.Packages {
					fmt.Printf("     %-6s %-22s $%-6.0f %gh\n", pkg.ID, pkg.Name, pkg.Price, pkg.DurationHours)
				}
			}
			fmt.Printf("\nCities: %s\n", strings.Join(appCtx.Catalog.Cities(cmd.Context()), ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "filter by city (exact match)")
	cmd.Flags().StringVar(&style, "style", "", "filter by style (wedding|portrait|event|fashion|landscape)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "keep photographers whose max price fits the budget")
	return cmd
}
