package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/frankvdh/pdflinedtables"
	"github.com/spf13/cobra"
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract [file...]",
	Short: "Extract tables from PDF files",
	Long: `Extract tables from PDF files using a YAML table definition file.

Each definition names a table, gives the heading fill colors that locate
it and an optional end pattern that terminates it. The definitions are
extracted in the order they appear in the file, carrying the page
position forward from one table to the next.

Examples:
  linedtables extract notam.pdf
  linedtables extract supplement.pdf --defs defs.yaml --format json
  linedtables extract a.pdf b.pdf --table waypoints -o out.csv`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("format", "f", "text", "output format (text, csv, json)")
	extractCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().Int("start-page", 0, "zero-based page to start searching from")
	extractCmd.Flags().StringP("table", "t", "", "extract only the named table definition")
}

// extractConfig holds the validated flag values for the extract command.
type extractConfig struct {
	format     string
	outputFile string
	startPage  int
	tableName  string
}

func parseExtractConfig(cmd *cobra.Command) (*extractConfig, error) {
	cfg := &extractConfig{}
	cfg.format, _ = cmd.Flags().GetString("format")
	cfg.outputFile, _ = cmd.Flags().GetString("output")
	cfg.startPage, _ = cmd.Flags().GetInt("start-page")
	cfg.tableName, _ = cmd.Flags().GetString("table")

	switch cfg.format {
	case "text", "csv", "json":
	default:
		return nil, fmt.Errorf("invalid format: %s (must be text, csv or json)", cfg.format)
	}
	if cfg.startPage < 0 {
		return nil, fmt.Errorf("invalid start-page: %d (must be >= 0)", cfg.startPage)
	}
	return cfg, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := parseExtractConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.outputFile != "" {
		f, err := os.Create(cfg.outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	var all []fileTables
	for _, path := range args {
		tables, err := extractFile(path, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, fileTables{File: path, Tables: tables})
	}

	return writeTables(out, cfg.format, all)
}

// fileTables pairs an input file with the tables extracted from it.
type fileTables struct {
	File   string                 `json:"file"`
	Tables []pdflinedtables.Table `json:"tables"`
}

func extractFile(path string, cfg *extractConfig) ([]pdflinedtables.Table, error) {
	ex := pdflinedtables.Open(path).
		WithDefinitionFile(defsFile).
		StartPage(cfg.startPage)

	tables, err := ex.Tables()
	if err != nil {
		return nil, err
	}
	if cfg.tableName == "" {
		return tables, nil
	}
	for _, t := range tables {
		if t.Name == cfg.tableName {
			return []pdflinedtables.Table{t}, nil
		}
	}
	return nil, fmt.Errorf("no table named %q in definition file", cfg.tableName)
}

func writeTables(w io.Writer, format string, files []fileTables) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	case "csv":
		return writeCSV(w, files)
	default:
		return writeText(w, files)
	}
}

// writeCSV emits one record per row. A table header record precedes each
// table so multiple tables in one stream stay distinguishable.
func writeCSV(w io.Writer, files []fileTables) error {
	cw := csv.NewWriter(w)
	for _, ft := range files {
		for _, t := range ft.Tables {
			if err := cw.Write([]string{"#", ft.File, t.Name}); err != nil {
				return err
			}
			for _, row := range t.Rows {
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeText(w io.Writer, files []fileTables) error {
	for _, ft := range files {
		for _, t := range ft.Tables {
			if _, err := fmt.Fprintf(w, "%s: %s (%d rows, ends on page %d)\n",
				ft.File, t.Name, len(t.Rows), t.Page+1); err != nil {
				return err
			}
			for _, row := range t.Rows {
				if _, err := fmt.Fprintln(w, strings.Join(row, " | ")); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
