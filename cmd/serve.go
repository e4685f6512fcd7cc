package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/uaetax/tax-calculator/internal/notify"
	"github.com/uaetax/tax-calculator/internal/server"
)

var servePort int

// serveCmd exposes the calculators and lead capture over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators and lead capture over HTTP",
	Long: `Starts an HTTP server exposing every calculator as a JSON endpoint
under /v1/calculations plus lead capture at /v1/leads. Lead delivery
uses the email relay accounts configured via EMAIL_RELAY_* environment
variables; without them the lead endpoint is not registered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		relay := notify.NewRelayClient("https://api.emailjs.com", nil)
		dispatcher := notify.DispatcherFromEnv(relay, engine.Logger)
		if !dispatcher.Primary.Configured() {
			dispatcher = nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, server.Config{
			Port:       servePort,
			Engine:     engine,
			Dispatcher: dispatcher,
		})
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "listen port")
	rootCmd.AddCommand(serveCmd)
}
