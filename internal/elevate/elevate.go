// Package elevate checks for administrative rights and relaunches the current
// executable through UAC when they are missing.
package elevate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ChildFlag is appended to the relaunched command line so the elevated copy
// knows it must not request elevation again.
const ChildFlag = "--elevated-child"

// ErrUnsupported is returned when relaunching is not possible on this OS.
var ErrUnsupported = errors.New("elevation is only supported on Windows")

// Elevator relaunches the current executable with the given arguments.
type Elevator struct {
	args       []string
	executable func() (string, error)
	launch     func(psCommand string) error
}

// New returns an Elevator that reruns the program with args plus ChildFlag.
func New(args []string) *Elevator {
	return &Elevator{
		args:       append([]string(nil), args...),
		executable: currentExecutable,
		launch:     launchPowerShell,
	}
}

// IsElevated reports whether the process holds administrative rights.
func (e *Elevator) IsElevated() bool {
	return isElevated()
}

// RequestElevatedRerun starts an elevated copy of the program and returns as
// soon as the request is issued. It never waits for the elevated process.
func (e *Elevator) RequestElevatedRerun() error {
	exe, err := e.executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	if err := e.launch(BuildPowerShellCommand(exe, ChildArgs(e.args))); err != nil {
		return fmt.Errorf("request elevation: %w", err)
	}
	return nil
}

// ChildArgs returns args with ChildFlag appended exactly once.
func ChildArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	for _, a := range args {
		if a != ChildFlag {
			out = append(out, a)
		}
	}
	return append(out, ChildFlag)
}

// BuildPowerShellCommand builds a one-liner that triggers the UAC prompt for
// exe. Start-Process is not given -Wait.
func BuildPowerShellCommand(exe string, args []string) string {
	cmd := fmt.Sprintf("Start-Process -FilePath %s -Verb RunAs", psQuote(exe))
	if len(args) > 0 {
		quoted := make([]string, len(args))
		for i, a := range args {
			quoted[i] = quoteWindowsArg(a)
		}
		cmd += " -ArgumentList " + psQuote(strings.Join(quoted, " "))
	}
	return cmd
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, `'`, `''`) + "'"
}

// quoteWindowsArg follows the CommandLineToArgvW rules.
func quoteWindowsArg(s string) string {
	if s == "" {
		return `""`
	}
	if !strings.ContainsAny(s, " \t\"") {
		return s
	}

	var b strings.Builder
	b.WriteByte('"')
	backslashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			backslashes++
		case '"':
			b.WriteString(strings.Repeat(`\`, backslashes*2+1))
			b.WriteByte('"')
			backslashes = 0
		default:
			b.WriteString(strings.Repeat(`\`, backslashes))
			backslashes = 0
			b.WriteByte(c)
		}
	}
	b.WriteString(strings.Repeat(`\`, backslashes*2))
	b.WriteByte('"')
	return b.String()
}

func currentExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

func trimOutput(out []byte) string {
	s := strings.TrimSpace(string(out))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
