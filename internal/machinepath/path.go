// Package machinepath reads and rewrites the machine-scope PATH.
//
// The string helpers operate on raw PATH values so the registry-backed store
// and test fakes share the same semantics.
package machinepath

import (
	"errors"
	"strings"
)

// Separator is the Windows PATH list separator.
const Separator = ";"

// ErrUnsupported is returned by the system store on non-Windows hosts.
var ErrUnsupported = errors.New("machine PATH is only available on Windows")

// Store is the persistent machine-scope PATH.
type Store interface {
	ReadMachinePath() (string, error)
	WriteMachinePath(value string) error
}

// Contains reports whether dir occurs anywhere in pathValue, ignoring case.
// A plain substring match is used, so "C:\Program Files\UnRAR" also matches
// "C:\Program Files\UnRAR\bin".
func Contains(pathValue, dir string) bool {
	if dir == "" {
		return false
	}
	return strings.Contains(strings.ToLower(pathValue), strings.ToLower(dir))
}

// Append returns pathValue with trailing separators trimmed, followed by a
// separator and dir. An empty pathValue yields dir alone.
func Append(pathValue, dir string) string {
	trimmed := strings.TrimRight(pathValue, Separator)
	if trimmed == "" {
		return dir
	}
	return trimmed + Separator + dir
}

// Remove drops every entry equal to dir (case-insensitive, trailing slashes
// ignored). Empty entries are preserved so unrelated parts of the value are
// untouched. It reports whether anything was removed.
func Remove(pathValue, dir string) (string, bool) {
	target := normalizeEntry(dir)
	if target == "" {
		return pathValue, false
	}
	entries := strings.Split(pathValue, Separator)
	kept := entries[:0:0]
	removed := false
	for _, entry := range entries {
		if normalizeEntry(entry) == target {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	if !removed {
		return pathValue, false
	}
	return strings.Join(kept, Separator), true
}

// Entries splits pathValue into its non-empty entries.
func Entries(pathValue string) []string {
	var out []string
	for _, entry := range strings.Split(pathValue, Separator) {
		if strings.TrimSpace(entry) != "" {
			out = append(out, entry)
		}
	}
	return out
}

func normalizeEntry(entry string) string {
	entry = strings.TrimSpace(entry)
	entry = strings.Trim(entry, `"`)
	entry = strings.TrimRight(entry, `\/`)
	return strings.ToLower(entry)
}

// Register adds dir to the store unless it is already present. It reports
// whether the store was written.
func Register(store Store, dir string) (bool, error) {
	current, err := store.ReadMachinePath()
	if err != nil {
		return false, err
	}
	if Contains(current, dir) {
		return false, nil
	}
	if err := store.WriteMachinePath(Append(current, dir)); err != nil {
		return false, err
	}
	return true, nil
}

// Unregister removes dir entries from the store. It reports whether the store
// was written.
func Unregister(store Store, dir string) (bool, error) {
	current, err := store.ReadMachinePath()
	if err != nil {
		return false, err
	}
	updated, removed := Remove(current, dir)
	if !removed {
		return false, nil
	}
	if err := store.WriteMachinePath(updated); err != nil {
		return false, err
	}
	return true, nil
}
