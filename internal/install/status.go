package install

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/Thunder-Compute/unrar-setup/internal/machinepath"
	"github.com/Thunder-Compute/unrar-setup/internal/unrar"
)

// Status is a read-only snapshot of an installation.
type Status struct {
	InstallDir string
	DirExists  bool
	Receipt    *unrar.Receipt

	Executable string
	Banner     string
	Version    *semver.Version

	OnMachinePath  bool
	MachinePathErr error

	// SessionPath is where the current process resolves unrar, if anywhere.
	SessionPath string
}

// Installed reports whether UnRAR.exe was found in the install directory.
func (s Status) Installed() bool {
	return s.Executable != ""
}

// Inspector gathers a Status without modifying anything, so it never needs
// administrative rights.
type Inspector struct {
	Runner   Runner
	Paths    machinepath.Store
	LookPath func(file string) (string, error)
}

func (i *Inspector) Inspect(ctx context.Context, installDir string) Status {
	st := Status{InstallDir: installDir}

	if info, err := os.Stat(installDir); err == nil && info.IsDir() {
		st.DirExists = true
	}
	if st.DirExists {
		if r, err := unrar.ReadReceipt(installDir); err == nil {
			st.Receipt = r
		}
		exe := filepath.Join(installDir, unrar.ExecutableName)
		if _, err := os.Stat(exe); err == nil {
			st.Executable = exe
			if out, err := i.Runner.Output(ctx, exe); err == nil {
				if banner, ok := unrar.FindBanner(out); ok {
					st.Banner = banner
					st.Version, _ = unrar.ParseBannerVersion(banner)
				}
			}
		}
	}

	value, err := i.Paths.ReadMachinePath()
	if err != nil {
		st.MachinePathErr = err
	} else {
		st.OnMachinePath = machinepath.Contains(value, installDir)
	}

	if p, err := i.LookPath(unrar.CommandName); err == nil {
		st.SessionPath = p
	}
	return st
}
