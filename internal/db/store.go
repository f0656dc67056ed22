package db

import (
	"database/sql"
	"fmt"

	"github.com/chriserin/puml/internal/parser"
)

// SaveFile records the parse result of one diagram file, replacing whatever
// was stored for it before. It reports whether the file was seen for the
// first time.
func SaveFile(sqlDB *sql.DB, path string, pf *parser.ParsedFile) (bool, error) {
	tx, err := sqlDB.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning save of %s: %w", path, err)
	}
	defer tx.Rollback()

	isNew := false
	var fileID int64
	err = tx.QueryRow(`SELECT id FROM files WHERE file_path = ?`, path).Scan(&fileID)
	if err == sql.ErrNoRows {
		res, err := tx.Exec(`INSERT INTO files (file_path) VALUES (?)`, path)
		if err != nil {
			return false, fmt.Errorf("inserting %s: %w", path, err)
		}
		if fileID, err = res.LastInsertId(); err != nil {
			return false, err
		}
		isNew = true
	} else if err != nil {
		return false, fmt.Errorf("querying %s: %w", path, err)
	} else {
		if err := clearFile(tx, fileID); err != nil {
			return false, fmt.Errorf("clearing %s: %w", path, err)
		}
		if _, err := tx.Exec(`UPDATE files SET updated_at = datetime('now') WHERE id = ?`, fileID); err != nil {
			return false, fmt.Errorf("updating %s: %w", path, err)
		}
	}

	for i, el := range pf.Elements {
		res, err := tx.Exec(`INSERT INTO elements (file_id, kind, name, position) VALUES (?, ?, ?, ?)`,
			fileID, el.Kind, el.Name, i)
		if err != nil {
			return false, fmt.Errorf("inserting %s %s: %w", el.Kind, el.Name, err)
		}
		elementID, err := res.LastInsertId()
		if err != nil {
			return false, err
		}
		for j, m := range el.Members {
			_, err := tx.Exec(`INSERT INTO members (element_id, kind, name, type, accessibility, modifier, signature, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				elementID, m.Kind, m.Name, m.Type, m.Accessibility, m.Modifier, m.Signature, j)
			if err != nil {
				return false, fmt.Errorf("inserting member %s of %s: %w", m.Name, el.Name, err)
			}
		}
	}

	for _, pe := range pf.Errors {
		_, err := tx.Exec(`INSERT INTO parse_errors (file_id, line, element, message) VALUES (?, ?, ?, ?)`,
			fileID, pe.Line, pe.Element, pe.Message)
		if err != nil {
			return false, fmt.Errorf("inserting parse error for %s: %w", path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing %s: %w", path, err)
	}
	return isNew, nil
}

// PruneFiles deletes tracked files that are not in present and returns their paths.
func PruneFiles(sqlDB *sql.DB, present map[string]bool) ([]string, error) {
	rows, err := sqlDB.Query(`SELECT id, file_path FROM files ORDER BY file_path`)
	if err != nil {
		return nil, fmt.Errorf("querying files: %w", err)
	}
	type tracked struct {
		id   int64
		path string
	}
	var stale []tracked
	for rows.Next() {
		var f tracked
		if err := rows.Scan(&f.id, &f.path); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning file row: %w", err)
		}
		if !present[f.path] {
			stale = append(stale, f)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var removed []string
	for _, f := range stale {
		tx, err := sqlDB.Begin()
		if err != nil {
			return removed, err
		}
		if err := clearFile(tx, f.id); err != nil {
			tx.Rollback()
			return removed, fmt.Errorf("clearing %s: %w", f.path, err)
		}
		if _, err := tx.Exec(`DELETE FROM files WHERE id = ?`, f.id); err != nil {
			tx.Rollback()
			return removed, fmt.Errorf("deleting %s: %w", f.path, err)
		}
		if err := tx.Commit(); err != nil {
			return removed, err
		}
		removed = append(removed, f.path)
	}
	return removed, nil
}

func clearFile(tx *sql.Tx, fileID int64) error {
	if _, err := tx.Exec(`DELETE FROM members WHERE element_id IN (SELECT id FROM elements WHERE file_id = ?)`, fileID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM elements WHERE file_id = ?`, fileID); err != nil {
		return err
	}
	_, err := tx.Exec(`DELETE FROM parse_errors WHERE file_id = ?`, fileID)
	return err
}
