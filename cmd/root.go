package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/catseek/catalogue"
	"github.com/s0up4200/catseek/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *catalogue.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "catseek",
	Short: "Search the NLB library catalogue from the command line",
	Long: `catseek is a CLI around the NLB catalogue search API. It searches
titles by keyword with optional filters (material type, audience,
location, language, publish date, availability, fiction) and prints
the matching records and facet counts.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information for the CLI
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the catalogue client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create catalogue client
	opts := []catalogue.Option{
		catalogue.WithTimeout(cfg.API.Timeout),
		catalogue.WithRetry(retryPolicy(cfg.Retry)),
	}
	if !cfg.API.RaiseOnUnexpectedStatus {
		opts = append(opts, catalogue.WithoutUnexpectedStatusErrors())
	}

	client, err = catalogue.NewClient(cfg.API.URL, catalogue.StaticToken(cfg.API.Token), logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create catalogue client: %w", err)
	}

	return nil
}

// retryPolicy maps the retry config onto the client's policy
func retryPolicy(cfg config.RetryConfig) catalogue.RetryPolicy {
	policy := catalogue.RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		Delay:       cfg.Delay,
		MaxDelay:    cfg.MaxDelay,
		MaxJitter:   cfg.Jitter,
		Statuses:    cfg.Statuses,
	}
	if len(policy.Statuses) == 0 {
		policy.Statuses = catalogue.DefaultRetryPolicy().Statuses
	}
	return policy
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the catalogue API",
	Long:  `Issue a minimal search against the catalogue API to verify the base URL and token.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", cfg.API.URL)

	payload, err := client.SearchTitles(cmd.Context(), catalogue.SearchRequest{
		Keywords: "the",
		Limit:    1,
	})
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}

	switch p := payload.(type) {
	case *catalogue.SearchTitlesResponse:
		fmt.Println("✓ Connection successful!")
		fmt.Printf("- Total records for test query: %d\n", p.TotalRecords)
	case *catalogue.Unauthorized:
		return fmt.Errorf("authentication failed: %s", p.Message)
	default:
		return fmt.Errorf("catalogue API returned %T", payload)
	}

	return nil
}
