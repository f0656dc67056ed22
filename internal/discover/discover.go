// Package discover finds diagram files in a project.
package discover

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Options selects files by glob. Patterns are matched against
// slash-separated paths relative to the root.
type Options struct {
	Includes         []string
	Excludes         []string
	RespectGitignore bool
}

// Files returns the relative, slash-separated paths of files under root that
// match an include pattern and no exclude pattern, sorted.
func Files(root string, opts Options) ([]string, error) {
	var gi *ignore.GitIgnore
	if opts.RespectGitignore {
		gi = loadGitignore(root)
	}

	var results []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if matchAny(opts.Excludes, rel+"/") || (gi != nil && gi.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip symlinks
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		if matchAny(opts.Includes, rel) && !matchAny(opts.Excludes, rel) {
			results = append(results, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(results)
	return results, nil
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
		// "dir/**" patterns also match the directory itself
		if strings.HasSuffix(path, "/") {
			if matched, err := doublestar.Match(pattern, strings.TrimSuffix(path, "/")); err == nil && matched {
				return true
			}
		}
	}
	return false
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
