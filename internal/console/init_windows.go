//go:build windows

// Package console prepares the Windows console for styled output.
package console

import (
	"os"

	"golang.org/x/sys/windows"
)

const (
	codePageUTF8                    = 65001
	enableVirtualTerminalProcessing = 0x0004
)

// Init switches the console to UTF-8 and turns on ANSI escape handling for
// stdout and stderr. Errors are ignored: a redirected handle has no console mode.
func Init() {
	_ = windows.SetConsoleOutputCP(codePageUTF8)
	_ = windows.SetConsoleCP(codePageUTF8)

	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		enableVT(windows.Handle(f.Fd()))
	}
}

func enableVT(handle windows.Handle) {
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return
	}
	if mode&enableVirtualTerminalProcessing != 0 {
		return
	}
	_ = windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing)
}
