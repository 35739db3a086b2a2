package install

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/Thunder-Compute/unrar-setup/internal/testutils"
	"github.com/Thunder-Compute/unrar-setup/internal/unrar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedInstall(t *testing.T, withReceipt bool) *testutils.TestEnvironment {
	t.Helper()
	env := testutils.SetupTestEnvironment(t)
	require.NoError(t, os.MkdirAll(env.InstallDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.InstallDir, unrar.ExecutableName), []byte("MZ"), 0o755))
	if withReceipt {
		require.NoError(t, unrar.WriteReceipt(env.InstallDir, unrar.Receipt{Arch: unrar.ArchAMD64}))
	}
	return env
}

func TestUninstallRemovesPathAndDirectory(t *testing.T) {
	env := populatedInstall(t, true)
	paths := &testutils.MockPathStore{Value: `C:\Windows;` + env.InstallDir + `;C:\Tools`}
	u := &Uninstaller{
		Elevator: &testutils.MockElevator{Elevated: true},
		Paths:    paths,
		Printer:  TextPrinter{W: &bytes.Buffer{}},
	}

	res, err := u.Run(context.Background(), UninstallOptions{InstallDir: env.InstallDir})
	require.NoError(t, err)

	assert.True(t, res.PathUpdated)
	assert.True(t, res.Removed)
	assert.Equal(t, `C:\Windows;C:\Tools`, paths.Value)
	assert.NoDirExists(t, env.InstallDir)
}

func TestUninstallRefusesUnmanagedDirectory(t *testing.T) {
	env := populatedInstall(t, false)
	paths := &testutils.MockPathStore{Value: env.InstallDir}
	u := &Uninstaller{
		Elevator: &testutils.MockElevator{Elevated: true},
		Paths:    paths,
		Printer:  TextPrinter{W: &bytes.Buffer{}},
	}

	_, err := u.Run(context.Background(), UninstallOptions{InstallDir: env.InstallDir})
	assert.ErrorIs(t, err, ErrNotManaged)
	assert.DirExists(t, env.InstallDir)
	assert.Empty(t, paths.Writes)

	res, err := u.Run(context.Background(), UninstallOptions{InstallDir: env.InstallDir, Force: true})
	require.NoError(t, err)
	assert.True(t, res.Removed)
}

func TestUninstallMissingDirectory(t *testing.T) {
	env := testutils.SetupTestEnvironment(t)
	out := &bytes.Buffer{}
	u := &Uninstaller{
		Elevator: &testutils.MockElevator{Elevated: true},
		Paths:    &testutils.MockPathStore{Value: `C:\Windows`},
		Printer:  TextPrinter{W: out},
	}

	res, err := u.Run(context.Background(), UninstallOptions{InstallDir: env.InstallDir})
	require.NoError(t, err)
	assert.False(t, res.Removed)
	assert.False(t, res.PathUpdated)
	assert.Contains(t, out.String(), "nothing to remove")
}

func TestUninstallRequestsElevation(t *testing.T) {
	env := populatedInstall(t, true)
	el := &testutils.MockElevator{}
	paths := &testutils.MockPathStore{Value: env.InstallDir}
	u := &Uninstaller{Elevator: el, Paths: paths, Printer: TextPrinter{W: &bytes.Buffer{}}}

	res, err := u.Run(context.Background(), UninstallOptions{InstallDir: env.InstallDir})
	require.NoError(t, err)
	assert.True(t, res.Relaunched)
	assert.Equal(t, 1, el.RerunRequests)
	assert.Zero(t, paths.Reads)
	assert.DirExists(t, env.InstallDir)
}

func TestUninstallPathFailure(t *testing.T) {
	env := populatedInstall(t, true)
	u := &Uninstaller{
		Elevator: &testutils.MockElevator{Elevated: true},
		Paths:    &testutils.MockPathStore{ReadErr: errors.New("registry unavailable")},
		Printer:  TextPrinter{W: &bytes.Buffer{}},
	}

	_, err := u.Run(context.Background(), UninstallOptions{InstallDir: env.InstallDir})
	assert.Equal(t, StepRegister, FailedStep(err))
	assert.DirExists(t, env.InstallDir)
}

func TestInspect(t *testing.T) {
	env := populatedInstall(t, true)
	runner := &testutils.MockRunner{
		OutputFunc: func(ctx context.Context, path string, args ...string) ([]byte, error) {
			return []byte(bannerOutput), nil
		},
	}
	in := &Inspector{
		Runner: runner,
		Paths:  &testutils.MockPathStore{Value: `C:\Windows;` + env.InstallDir},
		LookPath: func(string) (string, error) {
			return "", exec.ErrNotFound
		},
	}

	st := in.Inspect(context.Background(), env.InstallDir)

	assert.True(t, st.DirExists)
	assert.True(t, st.Installed())
	require.NotNil(t, st.Receipt)
	assert.Equal(t, unrar.ArchAMD64, st.Receipt.Arch)
	require.NotNil(t, st.Version)
	assert.Equal(t, "7.1.0", st.Version.String())
	assert.True(t, st.OnMachinePath)
	assert.NoError(t, st.MachinePathErr)
	assert.Empty(t, st.SessionPath)
	require.Len(t, runner.Outputs, 1)
	assert.Equal(t, filepath.Join(env.InstallDir, unrar.ExecutableName), runner.Outputs[0].Path)
}

func TestInspectNothingInstalled(t *testing.T) {
	env := testutils.SetupTestEnvironment(t)
	runner := &testutils.MockRunner{}
	in := &Inspector{
		Runner:   runner,
		Paths:    &testutils.MockPathStore{ReadErr: errors.New("unsupported")},
		LookPath: func(string) (string, error) { return "/usr/bin/unrar", nil },
	}

	st := in.Inspect(context.Background(), env.InstallDir)

	assert.False(t, st.DirExists)
	assert.False(t, st.Installed())
	assert.Nil(t, st.Receipt)
	assert.Error(t, st.MachinePathErr)
	assert.Equal(t, "/usr/bin/unrar", st.SessionPath)
	assert.Empty(t, runner.Outputs)
}
