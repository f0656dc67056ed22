package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/puml/internal/config"
	"github.com/chriserin/puml/internal/db"
	"github.com/chriserin/puml/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the members of a stored class, interface or enum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

type shownElement struct {
	id       int64
	kind     string
	filePath string
}

// RunShow prints every stored element with the given name. The same name may
// be declared in several files.
func RunShow(w io.Writer, name string) error {
	if err := requireProject(); err != nil {
		return err
	}

	sqlDB, err := db.Open(config.DBPath("."))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT e.id, e.kind, f.file_path
		FROM elements e
		JOIN files f ON e.file_id = f.id
		WHERE e.name = ?
		ORDER BY f.file_path, e.position
	`, name)
	if err != nil {
		return fmt.Errorf("querying elements: %w", err)
	}
	var elements []shownElement
	for rows.Next() {
		var e shownElement
		if err := rows.Scan(&e.id, &e.kind, &e.filePath); err != nil {
			rows.Close()
			return fmt.Errorf("scanning element: %w", err)
		}
		elements = append(elements, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if len(elements) == 0 {
		return fmt.Errorf("%s not found", name)
	}

	for i, e := range elements {
		if i > 0 {
			fmt.Fprintln(w)
		}
		ui.ShowHeader(w, e.kind, name, e.filePath)

		members, err := sqlDB.Query(`SELECT signature FROM members WHERE element_id = ? ORDER BY position`, e.id)
		if err != nil {
			return fmt.Errorf("querying members of %s: %w", name, err)
		}
		for members.Next() {
			var signature string
			if err := members.Scan(&signature); err != nil {
				members.Close()
				return fmt.Errorf("scanning member: %w", err)
			}
			ui.MemberLine(w, signature)
		}
		members.Close()
		if err := members.Err(); err != nil {
			return err
		}
	}

	return nil
}
