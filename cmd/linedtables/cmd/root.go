package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/frankvdh/pdflinedtables/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Definition file path from the --defs flag, shared by subcommands.
var defsFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "linedtables",
	Short: "Extract tables delimited by ruled lines from PDF files",
	Long: `Reconstruct tabular data from PDF files whose tables are delimited by
vector graphics (ruled lines and filled heading bands) rather than by
text layout.

Tables are described in a YAML definition file: a heading fill color
locates each table, the ruled lines carve it into cells, and the glyphs
inside each cell become its text. Tables that continue across pages are
followed and stitched back together.

Examples:
  linedtables extract notam.pdf --defs linedtables.yaml
  linedtables extract supplement.pdf --format csv -o tables.csv
  linedtables defs linedtables.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.PersistentFlags().GetBool("version")
		if v {
			ver, commit, date := version.Info()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "linedtables %s (commit: %s, built: %s)\n", ver, commit, date)
			return nil
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCommand returns the root command for testing purposes.
// This allows tests to execute commands without calling os.Exit().
func GetRootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&defsFile, "defs", "d", "",
		"table definition file (default is linedtables.yaml in ., $HOME/.config/linedtables)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("version", false, "print version information and exit")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
	}
}

// initLogging configures the default slog logger from the global flags.
func initLogging(cmd *cobra.Command) {
	var logLevel slog.Level

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		level, _ := cmd.Flags().GetString("log-level")
		switch level {
		case "debug":
			logLevel = slog.LevelDebug
		case "info":
			logLevel = slog.LevelInfo
		case "warn":
			logLevel = slog.LevelWarn
		case "error":
			logLevel = slog.LevelError
		default:
			logLevel = slog.LevelInfo
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}
