package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unrar-setup.lock")

	lock, err := Acquire(path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = Acquire(path)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, lock.Release())
	assert.NoFileExists(t, path)

	again, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestAcquireReplacesStaleLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unrar-setup.lock")
	old := time.Now().Add(-2 * StaleAfter).Unix()
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("%d\n%d\n", os.Getpid(), old)), 0o600))

	lock, err := Acquire(path)
	require.NoError(t, err)
	defer lock.Release()
}

func TestAcquireReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unrar-setup.lock")
	require.NoError(t, os.WriteFile(path, []byte("not a lock"), 0o600))

	lock, err := Acquire(path)
	require.NoError(t, err)
	defer lock.Release()
}

func TestReleaseNil(t *testing.T) {
	var l *Lock
	assert.NoError(t, l.Release())
}
