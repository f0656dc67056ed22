package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chriserin/puml/internal/config"
	"github.com/chriserin/puml/internal/db"
	"github.com/chriserin/puml/internal/discover"
	"github.com/chriserin/puml/internal/parser"
	"github.com/chriserin/puml/internal/ui"
)

var progressFlag bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Parse every diagram file in the project and store the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		var progress io.Writer
		if progressFlag {
			progress = cmd.ErrOrStderr()
		}
		return RunSync(cmd.OutOrStdout(), currentConfig(), progress)
	},
}

func init() {
	syncCmd.Flags().BoolVar(&progressFlag, "progress", false, "Show a progress bar on stderr")
	rootCmd.AddCommand(syncCmd)
}

// RunSync parses the files selected by cfg and records them in the database.
// A progress bar is drawn on progress when it is not nil.
func RunSync(w io.Writer, cfg *config.Config, progress io.Writer) error {
	if err := requireProject(); err != nil {
		return err
	}

	sqlDB, err := db.Open(config.DBPath("."))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	paths, err := discover.Files(".", discover.Options{
		Includes:         cfg.Sync.Includes,
		Excludes:         cfg.Sync.Excludes,
		RespectGitignore: cfg.Sync.RespectGitignore,
	})
	if err != nil {
		return fmt.Errorf("scanning for diagrams: %w", err)
	}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("Parsing"),
			progressbar.OptionClearOnFinish(),
		)
	}

	present := make(map[string]bool, len(paths))
	for _, path := range paths {
		present[path] = true

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		_, doc, parseErrors := parser.Parse(string(content))
		pf := parser.Transform(doc, path, parseErrors)

		entry := log.WithFields(log.Fields{"file": path})
		if doc != nil {
			entry.WithFields(log.Fields{
				"classes":    len(doc.Classes),
				"interfaces": len(doc.Interfaces),
				"enums":      len(doc.Enums),
			}).Debug("parsed diagram")
		} else {
			entry.WithField("errors", len(parseErrors)).Warn("diagram has malformed elements")
		}

		isNew, err := db.SaveFile(sqlDB, path, pf)
		if err != nil {
			return err
		}

		switch {
		case len(parseErrors) > 0:
			ui.ErrLine(w, path, len(parseErrors))
		case isNew:
			ui.NewLine(w, path)
		default:
			ui.TrkLine(w, path)
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	removed, err := db.PruneFiles(sqlDB, present)
	if err != nil {
		return fmt.Errorf("removing deleted files: %w", err)
	}
	for _, path := range removed {
		log.WithField("file", path).Debug("file no longer present")
		ui.DelLine(w, path)
	}

	ui.SummaryLine(w, len(paths))
	return nil
}
