package install

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Elevator checks for and requests administrative rights.
type Elevator interface {
	IsElevated() bool
	RequestElevatedRerun() error
}

// Fetcher downloads url into dest.
type Fetcher interface {
	Download(ctx context.Context, url, dest string) error
}

// Runner starts child processes.
type Runner interface {
	Run(ctx context.Context, path string, args ...string) (int, error)
	Output(ctx context.Context, path string, args ...string) ([]byte, error)
}

// Printer receives user-facing progress lines.
type Printer interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
}

// TextPrinter writes unstyled lines to W.
type TextPrinter struct {
	W io.Writer
}

func (p TextPrinter) Info(msg string)    { fmt.Fprintln(p.W, msg) }
func (p TextPrinter) Success(msg string) { fmt.Fprintln(p.W, msg) }
func (p TextPrinter) Warn(msg string)    { fmt.Fprintln(p.W, msg) }

// Step names one stage of a run.
type Step string

const (
	StepElevate  Step = "elevate"
	StepLock     Step = "lock"
	StepDownload Step = "download"
	StepExtract  Step = "extract"
	StepRegister Step = "register-path"
	StepVerify   Step = "verify"
	StepCleanup  Step = "cleanup"
	StepRemove   Step = "remove"
)

// StepError reports which step stopped a run.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	switch e.Step {
	case StepElevate:
		return fmt.Sprintf("elevation failed: %v", e.Err)
	case StepDownload:
		return fmt.Sprintf("download failed: %v", e.Err)
	case StepExtract:
		return fmt.Sprintf("installation failed: %v", e.Err)
	case StepRegister:
		return fmt.Sprintf("updating machine PATH failed: %v", e.Err)
	case StepRemove:
		return fmt.Sprintf("removing install directory failed: %v", e.Err)
	default:
		return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
	}
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// FailedStep returns the step recorded in err, or "" if err is not a StepError.
func FailedStep(err error) Step {
	var se *StepError
	if errors.As(err, &se) {
		return se.Step
	}
	return ""
}

var (
	// ErrElevationDenied is returned by a relaunched copy that still lacks
	// administrative rights.
	ErrElevationDenied = errors.New("administrator rights were not granted")

	// ErrNotManaged guards against deleting a directory this tool did not create.
	ErrNotManaged = errors.New("directory has no install receipt; rerun with --force to remove it anyway")
)

// ExitCodeError is returned when the package exits non-zero.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("package exited with code %d", e.Code)
}

func notify(onStep func(Step), s Step) {
	if onStep != nil {
		onStep(s)
	}
}

// ensureElevated returns relaunched=true when an elevated copy was requested
// and the caller must stop.
func ensureElevated(el Elevator, child bool, p Printer) (relaunched bool, err error) {
	if el.IsElevated() {
		return false, nil
	}
	if child {
		return false, &StepError{Step: StepElevate, Err: ErrElevationDenied}
	}
	p.Info("Administrator rights are required; requesting elevation...")
	if err := el.RequestElevatedRerun(); err != nil {
		return false, &StepError{Step: StepElevate, Err: err}
	}
	return true, nil
}
