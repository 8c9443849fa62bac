package completion

import (
	"os"
	"path/filepath"
	"strings"
)

// externalCommandCompletion scans the search-path directories for
// executables whose name starts with prefix. Earlier directories shadow
// later ones; unreadable directories are skipped. A missing or malformed
// PATH value is treated as empty.
func (e *Engine) externalCommandCompletion(prefix string) []string {
	var executables []string

	paths, ok := e.state.EnvVars["PATH"]
	if !ok {
		return executables
	}
	list, err := paths.AsList()
	if err != nil {
		return executables
	}

	seen := make(map[string]bool)
	for _, p := range list {
		dir, err := p.AsString()
		if err != nil {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if seen[name] || !strings.HasPrefix(name, prefix) {
				continue
			}
			if !isExecutable(filepath.Join(dir, name)) {
				continue
			}
			seen[name] = true
			executables = append(executables, name)
		}
	}

	return executables
}

// isExecutable reports whether the path resolves to a regular file with
// any execute bit set. Symlinks are followed.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
