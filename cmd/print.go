package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Thunder-Compute/unrar-setup/tui"
)

func PrintError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
	}
}

func PrintSuccess(message string) {
	if message != "" {
		fmt.Println(tui.RenderSuccess(message))
	}
}

// consolePrinter renders installer progress lines with the tui styles.
type consolePrinter struct {
	out io.Writer
}

func (p consolePrinter) Info(msg string) {
	if msg != "" {
		fmt.Fprintln(p.out, tui.RenderInfo(msg))
	}
}

func (p consolePrinter) Success(msg string) {
	if msg != "" {
		fmt.Fprintln(p.out, tui.RenderSuccessSimple(msg))
	}
}

func (p consolePrinter) Warn(msg string) {
	if msg != "" {
		fmt.Fprintln(p.out, tui.RenderWarningSimple(msg))
	}
}
