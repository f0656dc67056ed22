package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/puml/internal/config"
	"github.com/chriserin/puml/internal/db"
	"github.com/chriserin/puml/internal/ui"
)

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "List malformed elements found by the last sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunErrors(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(errorsCmd)
}

// RunErrors prints the parse errors stored by the last sync, one per line.
func RunErrors(w io.Writer) error {
	if err := requireProject(); err != nil {
		return err
	}

	sqlDB, err := db.Open(config.DBPath("."))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT f.file_path, p.line, p.message
		FROM parse_errors p
		JOIN files f ON p.file_id = f.id
		ORDER BY f.file_path, p.line
	`)
	if err != nil {
		return fmt.Errorf("querying parse errors: %w", err)
	}
	defer rows.Close()

	var found bool
	for rows.Next() {
		var filePath, message string
		var line int
		if err := rows.Scan(&filePath, &line, &message); err != nil {
			return fmt.Errorf("scanning parse error: %w", err)
		}
		ui.DiagnosticLine(w, filePath, line, message)
		found = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if !found {
		fmt.Fprintln(w, "no parse errors")
	}

	return nil
}
