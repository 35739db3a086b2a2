package testutils

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnvironment mimics the directories the installer touches on a Windows
// host, rooted in a per-test temporary directory.
type TestEnvironment struct {
	Root         string
	TempDir      string
	ProgramFiles string
	InstallDir   string
	DownloadPath string
	Env          map[string]string
}

func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	tempDir := filepath.Join(root, "Temp")
	programFiles := filepath.Join(root, "Program Files")

	for _, dir := range []string{tempDir, programFiles} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	return &TestEnvironment{
		Root:         root,
		TempDir:      tempDir,
		ProgramFiles: programFiles,
		InstallDir:   filepath.Join(programFiles, "UnRAR"),
		DownloadPath: filepath.Join(tempDir, "unrar-setup-package.exe"),
		Env: map[string]string{
			"TEMP":                   tempDir,
			"ProgramFiles":           programFiles,
			"PROCESSOR_ARCHITECTURE": "AMD64",
		},
	}
}

// Getenv looks values up in Env, like os.Getenv.
func (e *TestEnvironment) Getenv(key string) string {
	return e.Env[key]
}

// WriteFakePackage drops a placeholder SFX at DownloadPath.
func (e *TestEnvironment) WriteFakePackage(t *testing.T) {
	t.Helper()
	if err := os.WriteFile(e.DownloadPath, []byte("MZ fake sfx"), 0o755); err != nil {
		t.Fatalf("failed to write fake package: %v", err)
	}
}

// FileExists is a small assertion helper for tests.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
