// Package lockfile keeps two installer runs from touching the same
// directories at once.
package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// StaleAfter is the age at which a lock is ignored even if its owner looks alive.
const StaleAfter = 30 * time.Minute

// ErrLocked is returned when another live run holds the lock.
var ErrLocked = errors.New("another unrar-setup run is already in progress")

type Lock struct {
	path string
}

// Acquire creates path exclusively. A lock left by a dead process or older
// than StaleAfter is replaced.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	if held(path) {
		return nil, ErrLocked
	}
	_ = os.Remove(path)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("create lock file: %w", err)
	}
	_, _ = fmt.Fprintf(file, "%d\n%d\n", os.Getpid(), time.Now().Unix())
	file.Close()

	return &Lock{path: path}, nil
}

// Release removes the lock file. It is safe on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.path == "" {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove lock file: %w", err)
	}
	return nil
}

func held(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 2 {
		return false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return false
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(lines[1]), 10, 64)
	if err != nil {
		return false
	}
	if time.Since(time.Unix(ts, 0)) >= StaleAfter {
		return false
	}
	return processAlive(pid)
}
