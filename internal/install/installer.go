// Package install drives the UnRAR setup: elevation, package download,
// silent extraction, machine PATH registration and verification.
package install

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Thunder-Compute/unrar-setup/internal/lockfile"
	"github.com/Thunder-Compute/unrar-setup/internal/machinepath"
	"github.com/Thunder-Compute/unrar-setup/internal/sfx"
	"github.com/Thunder-Compute/unrar-setup/internal/unrar"
)

// Options fixes what a single run does.
type Options struct {
	Arch         unrar.Arch
	Packages     unrar.Packages
	InstallDir   string
	DownloadPath string
	// LockPath enables the single-run lock when non-empty.
	LockPath string
	// KeepDownload leaves the package in place after the run.
	KeepDownload bool
	// ElevatedChild marks the copy started by RequestElevatedRerun.
	ElevatedChild bool
}

// Result describes a finished run.
type Result struct {
	Relaunched  bool
	PackageURL  string
	PathUpdated bool
	// Resolved is where the current session finds unrar, empty if it does not.
	Resolved string
	Banner   string
}

// Installer wires the collaborators for a run.
type Installer struct {
	Elevator Elevator
	Fetcher  Fetcher
	Runner   Runner
	Paths    machinepath.Store
	Printer  Printer

	// LookPath resolves a command against the current process PATH.
	LookPath func(file string) (string, error)
	// Busy wraps the extraction wait, e.g. with a spinner. Nil runs fn directly.
	Busy func(label string, fn func() error) error
	// OnStep is called as each step starts.
	OnStep func(Step)

	SetupVersion string
	Now          func() time.Time
}

// Run performs the installation. Every failure is returned as a *StepError.
func (in *Installer) Run(ctx context.Context, opts Options) (*Result, error) {
	notify(in.OnStep, StepElevate)
	relaunched, err := ensureElevated(in.Elevator, opts.ElevatedChild, in.Printer)
	if err != nil {
		return nil, err
	}
	if relaunched {
		return &Result{Relaunched: true}, nil
	}

	if opts.LockPath != "" {
		notify(in.OnStep, StepLock)
		lock, err := lockfile.Acquire(opts.LockPath)
		if err != nil {
			return nil, &StepError{Step: StepLock, Err: err}
		}
		defer lock.Release()
	}

	res := &Result{PackageURL: opts.Packages.URLFor(opts.Arch)}

	if !opts.KeepDownload {
		defer func() {
			notify(in.OnStep, StepCleanup)
			_ = os.Remove(opts.DownloadPath)
		}()
	}

	notify(in.OnStep, StepDownload)
	in.Printer.Info(fmt.Sprintf("Downloading UnRAR (%s) from %s", unrar.Flavor(opts.Arch), res.PackageURL))
	if err := in.Fetcher.Download(ctx, res.PackageURL, opts.DownloadPath); err != nil {
		return nil, &StepError{Step: StepDownload, Err: err}
	}

	notify(in.OnStep, StepExtract)
	if err := in.extract(ctx, opts); err != nil {
		return nil, &StepError{Step: StepExtract, Err: err}
	}
	in.Printer.Success(fmt.Sprintf("UnRAR extracted to %s", opts.InstallDir))
	in.writeReceipt(opts, res.PackageURL)

	notify(in.OnStep, StepRegister)
	updated, err := machinepath.Register(in.Paths, opts.InstallDir)
	if err != nil {
		return nil, &StepError{Step: StepRegister, Err: err}
	}
	res.PathUpdated = updated
	if updated {
		in.Printer.Info(fmt.Sprintf("Added %s to the machine PATH", opts.InstallDir))
	}

	notify(in.OnStep, StepVerify)
	in.verify(ctx, res)

	return res, nil
}

func (in *Installer) extract(ctx context.Context, opts Options) error {
	if err := os.MkdirAll(opts.InstallDir, 0o755); err != nil {
		return fmt.Errorf("create install directory: %w", err)
	}

	run := func() error {
		code, err := in.Runner.Run(ctx, opts.DownloadPath, sfx.ExtractArgs(opts.InstallDir)...)
		if err != nil {
			return fmt.Errorf("start package: %w", err)
		}
		if code != 0 {
			return &ExitCodeError{Code: code}
		}
		return nil
	}

	if in.Busy != nil {
		return in.Busy("Extracting UnRAR to "+opts.InstallDir, run)
	}
	return run()
}

func (in *Installer) writeReceipt(opts Options, url string) {
	now := time.Now
	if in.Now != nil {
		now = in.Now
	}
	r := unrar.Receipt{
		Arch:         opts.Arch,
		Flavor:       unrar.Flavor(opts.Arch),
		PackageURL:   url,
		SetupVersion: in.SetupVersion,
		InstalledAt:  now().UTC(),
	}
	if err := unrar.WriteReceipt(opts.InstallDir, r); err != nil {
		in.Printer.Warn(fmt.Sprintf("Could not record install details: %v", err))
	}
}

// verify never fails the run: a missing PATH entry in this session is expected
// because machine PATH changes only reach new processes.
func (in *Installer) verify(ctx context.Context, res *Result) {
	path, err := in.LookPath(unrar.CommandName)
	if err != nil {
		in.Printer.Warn("UnRAR is installed but not visible in this session yet. Open a new terminal for the PATH change to take effect.")
		return
	}
	res.Resolved = path

	out, err := in.Runner.Output(ctx, path)
	if err != nil {
		in.Printer.Warn(fmt.Sprintf("Could not run %s: %v", path, err))
		return
	}
	banner, ok := unrar.FindBanner(out)
	if !ok {
		in.Printer.Warn(fmt.Sprintf("%s did not print a version banner", path))
		return
	}
	res.Banner = banner
	in.Printer.Success(banner)
}
