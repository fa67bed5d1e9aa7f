package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/disgo/config"
	"github.com/s0up4200/disgo/dispatch"
	"github.com/s0up4200/disgo/environment"
)

var (
	version   = "dev"
	buildTime = "unknown"

	cfgFile     string
	envOverride string
	cfg         *config.Config
	logger      zerolog.Logger
	client      *dispatch.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "disgo",
	Short: "Query a Dispatch Labs node from the command line",
	Long: `disgo talks to the Disgo HTTP API of a Dispatch Labs node. It lists and
fetches transactions, receipts, accounts and delegates and prints them as JSON.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build information reported by --version and used by update
func SetVersion(v, built string) {
	version = v
	buildTime = built
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
	rootCmd.PersistentFlags().StringVarP(&envOverride, "env", "e", "", "environment to use (production, sandbox)")

	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(delegatesCmd)
	rootCmd.AddCommand(environmentsCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp loads the configuration and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	if envOverride != "" {
		cfg.Client.Environment = envOverride
	}

	clientCfg, err := cfg.Client.Configuration()
	if err != nil {
		return err
	}

	client, err = dispatch.NewClient(clientCfg, logger, dispatch.WithUserAgent("disgo-cli/"+version))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	baseURL, _ := clientCfg.BaseURL()
	logger.Debug().
		Str("environment", clientCfg.Environment().String()).
		Stringer("base_url", baseURL).
		Msg("Client ready")

	return nil
}

// setupLogger configures the zerolog logger. Colour is only used when out is a terminal.
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	fd := out.Fd()
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// environmentsCmd lists the known environments
var environmentsCmd = &cobra.Command{
	Use:   "environments",
	Short: "List the known environments and their base URLs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		type entry struct {
			Name    string `json:"name"`
			BaseURL string `json:"baseUrl"`
			Active  bool   `json:"active"`
		}

		active, _ := environment.Parse(cfg.Client.Environment)
		var out []entry
		for _, env := range environment.All() {
			u, err := environment.BaseURL(env)
			if err != nil {
				return err
			}
			out = append(out, entry{Name: env.String(), BaseURL: u.String(), Active: env == active})
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}
