//go:build windows

package elevate

import (
	"errors"
	"fmt"
	"os/exec"
	"unsafe"

	"golang.org/x/sys/windows"
)

// isElevated queries the elevation flag of the current process token.
func isElevated() bool {
	token := windows.GetCurrentProcessToken()
	defer token.Close()

	var elevation struct {
		TokenIsElevated uint32
	}
	var outLen uint32
	err := windows.GetTokenInformation(
		token,
		windows.TokenElevation,
		(*byte)(unsafe.Pointer(&elevation)),
		uint32(unsafe.Sizeof(elevation)),
		&outLen,
	)
	if err != nil {
		return false
	}
	return elevation.TokenIsElevated != 0
}

func launchPowerShell(psCommand string) error {
	cmd := exec.Command("powershell.exe",
		"-NoProfile",
		"-NonInteractive",
		"-ExecutionPolicy", "Bypass",
		"-Command",
		psCommand,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Start-Process fails this way when the UAC prompt is declined.
			return fmt.Errorf("powershell exited with code %d: %s", exitErr.ExitCode(), trimOutput(out))
		}
		return err
	}
	return nil
}
