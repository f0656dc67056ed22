package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/puml/internal/config"
	"github.com/chriserin/puml/internal/db"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show counts of tracked files and parsed elements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStatus(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func RunStatus(w io.Writer) error {
	if err := requireProject(); err != nil {
		return err
	}

	sqlDB, err := db.Open(config.DBPath("."))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var files, failing int
	err = sqlDB.QueryRow(`
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE EXISTS (SELECT 1 FROM parse_errors p WHERE p.file_id = f.id))
		FROM files f
	`).Scan(&files, &failing)
	if err != nil {
		return fmt.Errorf("counting files: %w", err)
	}

	fmt.Fprintf(w, "Files: %d\n", files)
	if files == 0 {
		return nil
	}

	counts := map[string]int{}
	rows, err := sqlDB.Query(`SELECT kind, COUNT(*) FROM elements GROUP BY kind`)
	if err != nil {
		return fmt.Errorf("querying element counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var cnt int
		if err := rows.Scan(&kind, &cnt); err != nil {
			return fmt.Errorf("scanning count row: %w", err)
		}
		counts[kind] = cnt
	}
	if err := rows.Err(); err != nil {
		return err
	}

	fmt.Fprintf(w, "  classes: %d\n", counts["class"])
	fmt.Fprintf(w, "  interfaces: %d\n", counts["interface"])
	fmt.Fprintf(w, "  enums: %d\n", counts["enum"])
	if failing > 0 {
		fmt.Fprintf(w, "Files with errors: %d\n", failing)
	}
	return nil
}
