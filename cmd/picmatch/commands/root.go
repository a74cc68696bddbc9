// Package commands implements the picmatch CLI, the in-process caller
// standing in for a browser front-end. Every command works against a
// freshly seeded in-memory store; nothing persists between runs.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/picmatch/marketplace/internal/core/ports"
	"github.com/picmatch/marketplace/internal/core/service"
	"github.com/picmatch/marketplace/internal/infrastructure/config"
	"github.com/picmatch/marketplace/internal/infrastructure/memory"
	"github.com/picmatch/marketplace/pkg/logger"
)

// app bundles the wired services for the command implementations.
type app struct {
	Users     ports.UserRepository
	Auth      ports.AuthService
	Catalog   ports.CatalogService
	Bookings  ports.BookingService
	Messaging ports.MessagingService
	Reviews   ports.ReviewService
	Payments  ports.PaymentService
	Admin     ports.AdminService
}

var appCtx *app

func Execute() error {
	root := &cobra.Command{
		Use:   "picmatch",
		Short: "Photographer marketplace demo",
		Long:  "Browse the seeded photographer catalog and walk a booking through payment, chat and review.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

			store := memory.Seed()
			appCtx = &app{
				Users:     store,
				Auth:      service.NewAuthService(store, log),
				Catalog:   service.NewCatalogService(store, store, log),
				Bookings:  service.NewBookingService(store, store, store, log),
				Messaging: service.NewMessagingService(store, store, store, store, log),
				Reviews:   service.NewReviewService(store, store, store, log),
				Payments:  service.NewPaymentService(store, store, log),
				Admin:     service.NewAdminService(store, store, store, store, log),
			}
			return nil
		},
	}

	root.AddCommand(searchCmd(), accountsCmd(), demoCmd())
	return root.Execute()
}
