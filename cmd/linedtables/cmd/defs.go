package cmd

import (
	"fmt"

	"github.com/frankvdh/pdflinedtables/internal/tabledef"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// defsCmd represents the defs command.
var defsCmd = &cobra.Command{
	Use:   "defs [file]",
	Short: "Validate and print a table definition file",
	Long: `Validate a YAML table definition file and print the definitions with
all defaults applied.

Validation checks names, heading colors, end patterns, tolerances and
forced rotations. The printed form shows the effective value of every
field, including defaults the file left out.

Examples:
  linedtables defs
  linedtables defs linedtables.yaml
  linedtables defs --quiet defs.yaml`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runDefs,
}

func init() {
	rootCmd.AddCommand(defsCmd)

	defsCmd.Flags().BoolP("quiet", "q", false, "validate only, print nothing on success")
}

func runDefs(cmd *cobra.Command, args []string) error {
	path := defsFile
	if len(args) > 0 {
		path = args[0]
	}

	loader := tabledef.NewLoader()
	file, err := loader.LoadFile(path)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet {
		return nil
	}

	out := cmd.OutOrStdout()
	if used := loader.ConfigFileUsed(); used != "" {
		if _, err := fmt.Fprintf(out, "# %s: %d table(s)\n", used, len(file.Tables)); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal definitions: %w", err)
	}
	_, err = out.Write(data)
	return err
}
