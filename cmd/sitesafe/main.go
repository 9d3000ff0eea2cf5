// Package main is the entry point for the SiteSafe application.
// SiteSafe renders Construction Phase Plan documents to PDF, either as an
// HTTP service or as a one-shot command line render.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sitesafe/sitesafe/consts"
	"github.com/sitesafe/sitesafe/internal/config"
	"github.com/sitesafe/sitesafe/internal/model"
	"github.com/sitesafe/sitesafe/internal/report"
	"github.com/sitesafe/sitesafe/internal/server"
	"github.com/sitesafe/sitesafe/pkg/logger"
)

// Build information - set via ldflags during build
// These variables are linked to consts package for global access
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// init synchronizes build info to consts package for global access
func init() {
	consts.Version = Version
	consts.BuildTime = BuildTime
	consts.GitCommit = GitCommit
}

// configPath holds the path to the configuration file
var configPath string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sitesafe",
	Short: "SiteSafe - Construction Phase Plan PDF generation service",
	Long: `SiteSafe turns stored Construction Phase Plan records into branded,
paginated PDF documents. Run it as an HTTP service or render a single
document from a JSON file.`,
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SiteSafe server",
	Long:  `Start the HTTP server exposing the PDF generation API.`,
	Run:   runServe,
}

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <input.json>",
	Short: "Render a single document from a JSON file",
	Long: `Render one Construction Phase Plan to PDF without starting the server.

The input file must contain a JSON object with "document" and
"company_profile" keys, the same shape the HTTP API accepts.`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("SiteSafe %s\n", Version)
		fmt.Printf("  Build Time: %s\n", BuildTime)
		fmt.Printf("  Git Commit: %s\n", GitCommit)
	},
}

func init() {
	// Disable auto-generated completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: config/sitesafe.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)

	serveCmd.Flags().String("host", "", "server host (overrides config)")
	serveCmd.Flags().Int("port", 0, "server port (overrides config)")
	serveCmd.Flags().Bool("debug", false, "enable debug mode")

	renderCmd.Flags().StringP("output", "o", "", "output file path (default: <output_dir>/<input>.pdf)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runServe starts the SiteSafe server
func runServe(cmd *cobra.Command, args []string) {
	consts.SetStartedAt(time.Now())

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Server.Debug = true
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "text"
	}

	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting SiteSafe",
		zap.String("version", Version),
	)

	generator := report.NewGenerator(report.Options{
		LogoTimeout: time.Duration(cfg.Report.LogoTimeout) * time.Second,
	})

	srv := server.New(cfg, generator)
	srv.SetupRoutes()

	if err := srv.Start(); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	logger.Info("SiteSafe server is running",
		zap.String("address", cfg.Server.Address()),
	)

	srv.WaitForShutdown()

	logger.Info("SiteSafe stopped")
}

// renderInput mirrors the HTTP request body for file-based rendering
type renderInput struct {
	Document       *model.ReportDocument `json:"document"`
	CompanyProfile *model.CompanyProfile `json:"company_profile"`
}

// runRender renders one document from a JSON file
func runRender(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// CLI renders log to the console only
	cfg.Logging.File = ""
	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	inputPath := args[0]
	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input file: %v\n", err)
		os.Exit(1)
	}

	var input renderInput
	if err := json.Unmarshal(data, &input); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse input file: %v\n", err)
		os.Exit(1)
	}

	generator := report.NewGenerator(report.Options{
		LogoTimeout: time.Duration(cfg.Report.LogoTimeout) * time.Second,
	})

	res, err := generator.GenerateResult(context.Background(), input.Document, input.CompanyProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		base := filepath.Base(inputPath)
		name := base[:len(base)-len(filepath.Ext(base))] + ".pdf"
		outputPath = filepath.Join(cfg.Report.OutputDir, name)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outputPath, res.PDF, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %s (%d pages, %d bytes)\n", outputPath, res.Pages, len(res.PDF))
}

// loadConfig loads configuration from the config file, falling back to
// defaults when no file is present
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = "config/sitesafe.yaml"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}
