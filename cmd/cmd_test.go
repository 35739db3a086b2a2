package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/Thunder-Compute/unrar-setup/internal/install"
	"github.com/Thunder-Compute/unrar-setup/internal/lockfile"
	"github.com/Thunder-Compute/unrar-setup/internal/unrar"
	"github.com/Thunder-Compute/unrar-setup/sentry"
	"github.com/stretchr/testify/assert"
)

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"elevation", &install.StepError{Step: install.StepElevate, Err: install.ErrElevationDenied}, "elevation_error"},
		{"lock", &install.StepError{Step: install.StepLock, Err: lockfile.ErrLocked}, "lock_error"},
		{"http status", &install.StepError{Step: install.StepDownload, Err: errors.New("unexpected status code: 404")}, "download_error"},
		{"network", &install.StepError{Step: install.StepDownload, Err: errors.New("dial tcp: no such host")}, "network_error"},
		{"extract", &install.StepError{Step: install.StepExtract, Err: &install.ExitCodeError{Code: 2}}, "extraction_error"},
		{"path", &install.StepError{Step: install.StepRegister, Err: errors.New("access denied")}, "path_error"},
		{"remove", &install.StepError{Step: install.StepRemove, Err: errors.New("in use")}, "remove_error"},
		{"wrapped", fmt.Errorf("run: %w", &install.StepError{Step: install.StepExtract, Err: errors.New("x")}), "extraction_error"},
		{"plain", errors.New("boom"), "unknown_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getErrorType(tt.err))
		})
	}
}

func TestIsUserError(t *testing.T) {
	assert.True(t, isUserError(&install.StepError{Step: install.StepElevate, Err: install.ErrElevationDenied}))
	assert.True(t, isUserError(&install.StepError{Step: install.StepRemove, Err: install.ErrNotManaged}))
	assert.True(t, isUserError(&install.StepError{Step: install.StepLock, Err: lockfile.ErrLocked}))
	assert.False(t, isUserError(&install.StepError{Step: install.StepDownload, Err: errors.New("unexpected status code: 500")}))
}

func TestGetLogLevelForError(t *testing.T) {
	assert.Equal(t, sentry.LevelWarning, getLogLevelForError(&install.StepError{Step: install.StepDownload, Err: errors.New("connection reset")}))
	assert.Equal(t, sentry.LevelError, getLogLevelForError(&install.StepError{Step: install.StepExtract, Err: errors.New("x")}))
}

func TestConsolePrinter(t *testing.T) {
	var out bytes.Buffer
	p := consolePrinter{out: &out}

	p.Info("Downloading UnRAR")
	p.Success("UNRAR 7.01 freeware")
	p.Warn("Open a new terminal")
	p.Info("")

	got := out.String()
	assert.Contains(t, got, "Downloading UnRAR")
	assert.Contains(t, got, "✓ UNRAR 7.01 freeware")
	assert.Contains(t, got, "⚠ Open a new terminal")
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestRenderStatusInstalled(t *testing.T) {
	var out bytes.Buffer
	renderStatus(&out, install.Status{
		InstallDir: `C:\Program Files\UnRAR`,
		DirExists:  true,
		Executable: `C:\Program Files\UnRAR\UnRAR.exe`,
		Version:    semver.MustParse("7.1.0"),
		Receipt: &unrar.Receipt{
			Arch:         unrar.ArchAMD64,
			Flavor:       "x64",
			PackageURL:   unrar.DefaultX64URL,
			SetupVersion: "1.2.0",
			InstalledAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		OnMachinePath: true,
	})

	got := out.String()
	assert.Contains(t, got, `C:\Program Files\UnRAR`)
	assert.Contains(t, got, "7.01")
	assert.Contains(t, got, "x64 ("+unrar.DefaultX64URL+")")
	assert.Contains(t, got, "unrar-setup 1.2.0")
	assert.Contains(t, got, "registered")
	assert.Contains(t, got, "unrar not found on PATH")
}

func TestRenderStatusNotInstalled(t *testing.T) {
	var out bytes.Buffer
	renderStatus(&out, install.Status{
		InstallDir:     `D:\Tools\UnRAR`,
		MachinePathErr: errors.New("machine PATH is only available on Windows"),
		SessionPath:    "/usr/bin/unrar",
	})

	got := out.String()
	assert.Contains(t, got, "no")
	assert.NotContains(t, got, "Version")
	assert.Contains(t, got, "only available on Windows")
	assert.Contains(t, got, "/usr/bin/unrar")
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"install", "status", "uninstall", "completion"} {
		c, _, err := rootCmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, c.Name())
		}
	}

	for _, c := range []string{"install", "uninstall"} {
		sub, _, _ := rootCmd.Find([]string{c})
		f := sub.Flags().Lookup(flagElevatedChild)
		if assert.NotNil(t, f, c) {
			assert.True(t, f.Hidden)
		}
	}
	assert.NotNil(t, rootCmd.Flags().Lookup(flagKeepDownload))
	assert.NotNil(t, rootCmd.Flags().Lookup(flagInstallDir))
}

func TestLoadConfigHonoursInstallDirFlag(t *testing.T) {
	t.Cleanup(func() { installDir = "" })
	installDir = `E:\UnRAR`
	assert.Equal(t, `E:\UnRAR`, loadConfig().InstallDir)
}
