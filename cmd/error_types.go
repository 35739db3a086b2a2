package cmd

import (
	"errors"
	"strings"

	"github.com/Thunder-Compute/unrar-setup/internal/install"
	"github.com/Thunder-Compute/unrar-setup/internal/lockfile"
)

// getErrorType categorizes errors for better Sentry grouping
func getErrorType(err error) string {
	switch install.FailedStep(err) {
	case install.StepElevate:
		return "elevation_error"
	case install.StepLock:
		return "lock_error"
	case install.StepDownload:
		if isNetworkError(err) {
			return "network_error"
		}
		return "download_error"
	case install.StepExtract:
		return "extraction_error"
	case install.StepRegister:
		return "path_error"
	case install.StepRemove:
		return "remove_error"
	default:
		return "unknown_error"
	}
}

func isNetworkError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "dial") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "no route to host")
}

// isUserError marks failures the user caused or can fix alone. They are
// shown but not reported.
func isUserError(err error) bool {
	return errors.Is(err, install.ErrElevationDenied) ||
		errors.Is(err, install.ErrNotManaged) ||
		errors.Is(err, lockfile.ErrLocked)
}
