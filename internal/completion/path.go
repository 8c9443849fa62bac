package completion

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/koi-shell/koi/internal/syntax"
)

const sep = string(filepath.Separator)

// fileCandidate is an untranslated path suggestion: the original token
// span plus the replacement text.
type fileCandidate struct {
	span syntax.Span
	text string
}

// filePathCompletion lists the entries of the directory the partial path
// points into and keeps those matching its final name portion. Every
// candidate replaces the whole original span. Unreadable directories
// contribute nothing.
func filePathCompletion(sp syntax.Span, partial, cwd string) []fileCandidate {
	// Naive single-character quote strip, not full quote parsing.
	partial = strings.TrimPrefix(partial, `"`)
	partial = strings.TrimSuffix(partial, `"`)

	baseDirName, partial := splitPartial(partial)

	baseDir := expandPathWith(baseDirName, cwd)
	// An explicitly-empty base must not silently fall back to listing
	// the current directory.
	if baseDir == "" {
		return nil
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil
	}

	var out []fileCandidate
	for _, entry := range entries {
		fileName := entry.Name()
		if !matches(partial, fileName) {
			continue
		}
		path := baseDirName + fileName
		if entry.IsDir() {
			path += sep
		}
		if strings.Contains(path, " ") {
			path = `"` + path + `"`
		}
		out = append(out, fileCandidate{span: sp, text: path})
	}
	return out
}

// splitPartial splits a partial path on its last separator into a base
// directory portion, normalized to the platform separator with exactly
// one trailing separator, and the name portion. Without a separator the
// base is the current-directory marker.
func splitPartial(partial string) (string, string) {
	idx := strings.LastIndexFunc(partial, isSeparator)
	if idx < 0 {
		return "." + sep, partial
	}
	base := normalizeSeparators(partial[:idx])
	return base + sep, partial[idx+1:]
}

func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}

func normalizeSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return filepath.Separator
		}
		return r
	}, s)
}

// expandPathWith resolves a base directory portion against the working
// directory into an absolute path. A relative base with no working
// directory to resolve against yields the empty string, as does an
// unresolvable home reference.
func expandPathWith(path, cwd string) string {
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~"+sep) {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Clean(filepath.Join(home, path[1:]))
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if cwd == "" {
		return ""
	}
	return filepath.Clean(filepath.Join(cwd, path))
}

// matches is the path matcher: a case-insensitive prefix test.
func matches(partial, from string) bool {
	return strings.HasPrefix(strings.ToLower(from), strings.ToLower(partial))
}
