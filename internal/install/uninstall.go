package install

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Thunder-Compute/unrar-setup/internal/lockfile"
	"github.com/Thunder-Compute/unrar-setup/internal/machinepath"
	"github.com/Thunder-Compute/unrar-setup/internal/unrar"
)

type UninstallOptions struct {
	InstallDir    string
	LockPath      string
	Force         bool
	ElevatedChild bool
}

type UninstallResult struct {
	Relaunched  bool
	PathUpdated bool
	Removed     bool
}

// Uninstaller reverses an install: PATH entry first, then the directory.
type Uninstaller struct {
	Elevator Elevator
	Paths    machinepath.Store
	Printer  Printer
	OnStep   func(Step)
}

func (u *Uninstaller) Run(ctx context.Context, opts UninstallOptions) (*UninstallResult, error) {
	notify(u.OnStep, StepElevate)
	relaunched, err := ensureElevated(u.Elevator, opts.ElevatedChild, u.Printer)
	if err != nil {
		return nil, err
	}
	if relaunched {
		return &UninstallResult{Relaunched: true}, nil
	}

	if opts.LockPath != "" {
		notify(u.OnStep, StepLock)
		lock, err := lockfile.Acquire(opts.LockPath)
		if err != nil {
			return nil, &StepError{Step: StepLock, Err: err}
		}
		defer lock.Release()
	}

	res := &UninstallResult{}

	info, statErr := os.Stat(opts.InstallDir)
	exists := statErr == nil && info.IsDir()
	if exists && !opts.Force && !unrar.HasReceipt(opts.InstallDir) {
		return nil, &StepError{Step: StepRemove, Err: ErrNotManaged}
	}

	notify(u.OnStep, StepRegister)
	updated, err := machinepath.Unregister(u.Paths, opts.InstallDir)
	if err != nil {
		return nil, &StepError{Step: StepRegister, Err: err}
	}
	res.PathUpdated = updated
	if updated {
		u.Printer.Info(fmt.Sprintf("Removed %s from the machine PATH", opts.InstallDir))
	}

	notify(u.OnStep, StepRemove)
	if !exists {
		if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
			return nil, &StepError{Step: StepRemove, Err: statErr}
		}
		u.Printer.Info(fmt.Sprintf("%s does not exist; nothing to remove", opts.InstallDir))
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, &StepError{Step: StepRemove, Err: err}
	}
	if err := os.RemoveAll(opts.InstallDir); err != nil {
		return nil, &StepError{Step: StepRemove, Err: err}
	}
	res.Removed = true
	u.Printer.Success(fmt.Sprintf("Removed %s", opts.InstallDir))
	return res, nil
}
