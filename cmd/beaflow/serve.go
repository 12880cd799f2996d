package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zonder-ai/beaflow"
	httpAdapter "github.com/zonder-ai/beaflow/internal/adapters/http"
	"github.com/zonder-ai/beaflow/internal/logging"
	"github.com/zonder-ai/beaflow/internal/presentation/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local flow inspection server",
	Long: `Builds the conversation flow and serves it over HTTP for review:
GET /flow (deploy-ready JSON), GET /flow.mmd (Mermaid topology),
GET /healthz and GET /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			tui.Fail("Config error: %v", err)
			os.Exit(1)
		}

		doc, err := beaflow.Build(cfg)
		if err != nil {
			tui.Fail("Build error: %v", err)
			os.Exit(1)
		}

		logger := logging.New(logging.ParseLevel(os.Getenv("BEAFLOW_LOG")))
		handler := httpAdapter.NewHandler(doc, logger)

		port, _ := cmd.Flags().GetString("port")
		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			tui.Info("Serving flow inspection on %s", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			tui.Fail("Server error: %v", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
		}
	},
}

func init() {
	serveCmd.Flags().String("port", "8787", "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
