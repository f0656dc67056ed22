package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chriserin/puml/internal/parser"
	"github.com/chriserin/puml/internal/ui"
)

var jsonFlag bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a diagram file and print its classes, interfaces and enums",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunParse(cmd.OutOrStdout(), args[0], jsonFlag)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the parsed document as JSON")
	rootCmd.AddCommand(parseCmd)
}

// RunParse parses one file. Every malformed element is printed and the
// command fails; nothing else is printed in that case.
func RunParse(w io.Writer, path string, asJSON bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	rest, doc, parseErrors := parser.Parse(string(content))
	if len(parseErrors) > 0 {
		for _, pe := range parseErrors {
			ui.DiagnosticLine(w, path, pe.Line, pe.Message)
		}
		return fmt.Errorf("%s: %d malformed elements", path, len(parseErrors))
	}
	if rest != "" {
		log.WithField("file", path).Debugf("unparsed trailing text %q", rest)
	}

	if asJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	ui.Document(w, doc)
	return nil
}
