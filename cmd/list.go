package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/puml/internal/config"
	"github.com/chriserin/puml/internal/db"
	"github.com/chriserin/puml/internal/ui"
)

var kindFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored classes, interfaces and enums",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), kindFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&kindFlag, "kind", "", "Filter by kind (class, interface, enum)")
	rootCmd.AddCommand(listCmd)
}

type listRow struct {
	kind     string
	name     string
	filePath string
	members  int
}

func RunList(w io.Writer, kind string) error {
	switch kind {
	case "", "class", "interface", "enum":
	default:
		return fmt.Errorf("unknown kind %q: want class, interface or enum", kind)
	}

	if err := requireProject(); err != nil {
		return err
	}

	sqlDB, err := db.Open(config.DBPath("."))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT e.kind, e.name, f.file_path,
			(SELECT COUNT(*) FROM members m WHERE m.element_id = e.id) AS member_count
		FROM elements e
		JOIN files f ON e.file_id = f.id
		WHERE ? = '' OR e.kind = ?
		ORDER BY f.file_path, e.position
	`, kind, kind)
	if err != nil {
		return fmt.Errorf("querying elements: %w", err)
	}
	defer rows.Close()

	var results []listRow
	for rows.Next() {
		var r listRow
		if err := rows.Scan(&r.kind, &r.name, &r.filePath, &r.members); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	// Compute column widths
	kindWidth, nameWidth, fileWidth := 0, 0, 0
	for _, r := range results {
		kindWidth = max(kindWidth, len(r.kind))
		nameWidth = max(nameWidth, len(r.name))
		fileWidth = max(fileWidth, len(r.filePath))
	}

	for _, r := range results {
		ui.ListRow(w, r.kind, r.name, r.filePath, r.members, kindWidth, nameWidth, fileWidth)
	}

	return nil
}
