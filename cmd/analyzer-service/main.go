package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-analyzer/internal/analyzer/app"
	delivery "golang-stock-analyzer/internal/analyzer/delivery/http"
	_ "golang-stock-analyzer/internal/analyzer/docs"
	"golang-stock-analyzer/pkg/logger"
	"golang-stock-analyzer/web"

	"github.com/spf13/cobra"
)

var (
	configPath string
	port       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the stock analyzer HTTP service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, analyzer, cleanup, err := app.Setup(ctx, configPath)
	if err != nil {
		log.Fatalf("Failed to start analyzer service: %v", err)
	}
	defer cleanup()

	if cmd.Flags().Changed("port") {
		cfg.API.Port = port
	}

	appLogger.Info("Starting Analyzer Service",
		logger.Field("name", cfg.App.Name),
		logger.StringField("llm_provider", cfg.LLM.Provider),
		logger.StringField("news_provider", cfg.News.Provider),
		logger.Field("apis_configured", cfg.APIsConfigured()),
	)

	e := delivery.NewServer(analyzer, cfg.APIsConfigured(), web.StaticFS(), appLogger)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Stock Analyzer API
// @version 1.0
// @description Real-time stock analysis with AI-powered insights.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "analyzer-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-analyzer.yaml", "Path to the configuration file")
	serveCmd.Flags().IntVarP(&port, "port", "p", 8000, "Port to listen on (overrides api.port)")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analyzer-service CLI: %s\n", err)
		os.Exit(1)
	}
}
