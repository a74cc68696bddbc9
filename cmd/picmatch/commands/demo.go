package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
)

// demoCmd walks the full marketplace story against the seeded store:
// login, booking, payment, chat, review, then the dashboards.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the end-to-end booking scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, err := appCtx.Auth.Login(ctx, "alice@picmatch.test", "client123")
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", session.Name, session.Role)

			price, err := appCtx.Bookings.Quote(ctx, "p1", "pkg1")
			if err != nil {
				return err
			}
			booking, err := appCtx.Bookings.Create(ctx, ports.CreateBookingInput{
				PhotographerID: "p1",
				ClientID:       session.ID,
				PackageID:      "pkg1",
				Date:           time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
				TotalPrice:     price,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created booking %s (%s, $%.0f)\n", booking.ID, booking.Status, booking.TotalPrice)

			if _, err := appCtx.Messaging.Post(ctx, ports.PostMessageInput{
				BookingID: booking.ID,
				From:      domain.FromClient,
				Content:   "Hi! Looking forward to the shoot.",
			}); err != nil {
				return err
			}

			payment, err := appCtx.Payments.Process(ctx, ports.ProcessPaymentInput{
				BookingID: booking.ID,
				Outcome:   domain.PaymentSuccess,
				Amount:    booking.TotalPrice,
			})
			if err != nil {
				return err
			}
			confirmed, err := appCtx.Bookings.Get(ctx, booking.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Payment %s (%s, ref %s) — booking now %s\n",
				payment.ID, payment.Status, payment.TransactionRef, confirmed.Status)

			if _, err := appCtx.Reviews.Submit(ctx, ports.SubmitReviewInput{
				BookingID:      booking.ID,
				PhotographerID: "p1",
				ClientID:       session.ID,
				Rating:         5,
				Comment:        "Fantastic work!",
			}); err != nil {
				return err
			}
			profile, err := appCtx.Catalog.Profile(ctx, "p1")
			if err != nil {
				return err
			}
			fmt.Printf("%s now rated %.1f over %d reviews\n",
				profile.Photographer.Name, profile.Photographer.Rating, profile.Photographer.ReviewCount)

			thread, err := appCtx.Messaging.Thread(ctx, booking.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Thread %s (%s ↔ %s): %d message(s)\n",
				booking.ID, thread.ClientName, thread.PhotographerName, len(thread.Messages))

			appCtx.Auth.Logout()

			if _, err := appCtx.Auth.Login(ctx, "admin@picmatch.test", "admin123"); err != nil {
				return err
			}
			if err := appCtx.Auth.Authorize(domain.RoleAdmin); err != nil {
				return err
			}
			overview := appCtx.Admin.Overview(ctx)
			fmt.Printf("Admin overview: %d photographers, %d clients, %d bookings, %d payments\n",
				overview.Counts.Photographers, overview.Counts.Clients,
				overview.Counts.Bookings, overview.Counts.Payments)
			return nil
		},
	}
}
