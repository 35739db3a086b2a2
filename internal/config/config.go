// Package config resolves installer settings from the process environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Thunder-Compute/unrar-setup/internal/unrar"
)

const (
	EnvArch        = "PROCESSOR_ARCHITECTURE"
	EnvTemp        = "TEMP"
	EnvProgramFile = "ProgramFiles"

	EnvX64URL      = "UNRAR_SETUP_X64_URL"
	EnvX86URL      = "UNRAR_SETUP_X86_URL"
	EnvNoTelemetry = "UNRAR_SETUP_NO_TELEMETRY"

	defaultProgramFiles = `C:\Program Files`
	installDirName      = "UnRAR"
	downloadFileName    = "unrar-setup-package.exe"
	lockFileName        = "unrar-setup.lock"
)

// Config holds every value a run depends on.
type Config struct {
	Arch         unrar.Arch
	Packages     unrar.Packages
	InstallDir   string
	DownloadPath string
	LockPath     string
	Telemetry    bool
}

// Load reads the real process environment.
func Load() Config {
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) Config {
	tempDir := strings.TrimSpace(getenv(EnvTemp))
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	programFiles := strings.TrimSpace(getenv(EnvProgramFile))
	if programFiles == "" {
		programFiles = defaultProgramFiles
	}

	pkgs := unrar.DefaultPackages()
	if v := strings.TrimSpace(getenv(EnvX64URL)); v != "" {
		pkgs.X64URL = v
	}
	if v := strings.TrimSpace(getenv(EnvX86URL)); v != "" {
		pkgs.X86URL = v
	}

	return Config{
		Arch:         unrar.ParseArch(getenv(EnvArch)),
		Packages:     pkgs,
		InstallDir:   joinPath(programFiles, installDirName),
		DownloadPath: joinPath(tempDir, downloadFileName),
		LockPath:     joinPath(tempDir, lockFileName),
		Telemetry:    getenv(EnvNoTelemetry) != "1",
	}
}

// PackageURL is the download location for the configured architecture.
func (c Config) PackageURL() string {
	return c.Packages.URLFor(c.Arch)
}

// joinPath keeps Windows-style roots intact when the tool is exercised on
// another OS, where filepath.Join would use '/'.
func joinPath(dir, name string) string {
	if strings.Contains(dir, `\`) && !strings.Contains(dir, "/") {
		return strings.TrimRight(dir, `\`) + `\` + name
	}
	return filepath.Join(dir, name)
}
