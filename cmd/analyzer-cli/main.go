package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang-stock-analyzer/internal/analyzer/app"
	"golang-stock-analyzer/internal/analyzer/delivery/cli"

	"github.com/spf13/cobra"
)

var (
	configPath string
	noColor    bool
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Analyze stocks from the terminal",
	Long:  "Without arguments, starts an interactive prompt; type 'exit' to quit. With arguments, analyzes that single query.",
	RunE:  runAsk,

	SilenceUsage: true,
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, appLogger, analyzer, cleanup, err := app.Setup(ctx, configPath)
	if err != nil {
		log.Fatalf("Failed to start analyzer: %v", err)
	}
	defer cleanup()

	runner := cli.NewRunner(analyzer, cmd.InOrStdin(), cmd.OutOrStdout(), appLogger)
	if noColor {
		runner.DisableColor()
	}

	if len(args) > 0 {
		if !runner.RunOnce(ctx, strings.Join(args, " ")) {
			return fmt.Errorf("analysis failed")
		}
		return nil
	}
	return runner.Run(ctx)
}

func main() {
	rootCmd := &cobra.Command{Use: "analyzer-cli"}

	askCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-analyzer.yaml", "Path to the configuration file")
	askCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(askCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analyzer-cli: %s\n", err)
		os.Exit(1)
	}
}
