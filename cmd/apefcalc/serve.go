package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/apeftrust/investment-calculator/internal/calculation"
	"github.com/apeftrust/investment-calculator/internal/server"
	"github.com/spf13/cobra"
)

var (
	flagAddr    string
	flagMaxDays int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve projections over HTTP",
	Long: "Serve projections over HTTP:\n" +
		"  POST /projection  one projection as JSON\n" +
		"  POST /compare     a scenario configuration, answered in any report format\n" +
		"  GET  /healthz     liveness",
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().IntVar(&flagMaxDays, "max-days", server.DefaultMaxDays, "Longest projection a request may ask for, in days")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// the server always logs requests; --verbose adds engine detail
	level := calculation.LevelInfo
	if flagVerbose {
		level = calculation.LevelDebug
	}
	logger := calculation.NewWriterLogger(cmd.ErrOrStderr(), level)

	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logger)

	handler := server.NewProjectionHandler(engine, logger)
	handler.SetLimits(server.DefaultMaxBodyBytes, flagMaxDays)

	srv := server.New(flagAddr, server.Routes(handler), logger)
	return srv.Run(ctx)
}
