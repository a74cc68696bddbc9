package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/picmatch/marketplace/internal/core/ports"
)

func accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the seeded demo accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Clients:")
			for _, c := range appCtx.Users.ListClients(cmd.Context()) {
				fmt.Printf("  %-4s %-16s %s\n", c.ID, c.Name, c.Email)
			}
			fmt.Println("Photographers:")
			for _, p := range appCtx.Catalog.Search(cmd.Context(), ports.PhotographerFilter{}) {
				fmt.Printf("  %-4s %-16s %s\n", p.ID, p.Name, p.Email)
			}
			fmt.Println("\nSeeded passwords: client123 / photo123 / admin123 (admin@picmatch.test)")
			return nil
		},
	}
}
