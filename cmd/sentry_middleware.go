package cmd

import (
	"time"

	"github.com/Thunder-Compute/unrar-setup/internal/install"
	"github.com/Thunder-Compute/unrar-setup/internal/version"
	"github.com/Thunder-Compute/unrar-setup/sentry"
	"github.com/spf13/cobra"
)

// CaptureCommandError reports a failed run, skipping user errors.
func CaptureCommandError(cmd *cobra.Command, err error) {
	if err == nil || isUserError(err) {
		return
	}

	eventID := sentry.CaptureError(err, &sentry.EventOptions{
		Tags: map[string]string{
			"command":    cmd.Name(),
			"version":    version.BuildVersion,
			"error_type": getErrorType(err),
			"step":       string(install.FailedStep(err)),
		},
		Level: ptr(getLogLevelForError(err)),
	})

	if eventID != nil {
		// os.Exit skips deferred flushes in main.
		sentry.Flush(2 * time.Second)
	}
}

// ptr is a helper to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}

// getLogLevelForError downgrades failures outside this machine's control.
func getLogLevelForError(err error) sentry.Level {
	if install.FailedStep(err) == install.StepDownload && isNetworkError(err) {
		return sentry.LevelWarning
	}
	return sentry.LevelError
}
