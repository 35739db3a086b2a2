package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Thunder-Compute/unrar-setup/internal/install"
	"github.com/Thunder-Compute/unrar-setup/internal/machinepath"
	"github.com/Thunder-Compute/unrar-setup/internal/sfx"
	"github.com/Thunder-Compute/unrar-setup/internal/unrar"
	"github.com/Thunder-Compute/unrar-setup/tui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where UnRAR is installed and whether it is on PATH",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		in := &install.Inspector{
			Runner:   sfx.ExecRunner{},
			Paths:    machinepath.NewSystemStore(),
			LookPath: exec.LookPath,
		}
		renderStatus(os.Stdout, in.Inspect(cmd.Context(), cfg.InstallDir))
		return nil
	},
}

func init() {
	addInstallDirFlag(statusCmd)
	rootCmd.AddCommand(statusCmd)
}

func renderStatus(out io.Writer, st install.Status) {
	var b strings.Builder

	line := func(key, value string) {
		b.WriteString(tui.RenderKeyValue(key, value))
		b.WriteString("\n")
	}

	line("Install directory", st.InstallDir)
	switch {
	case st.Installed():
		line("Installed", tui.RenderSuccessSimple("yes"))
	case st.DirExists:
		line("Installed", tui.RenderWarningSimple(unrar.ExecutableName+" missing"))
	default:
		line("Installed", "no")
	}

	if st.Version != nil {
		line("Version", unrar.DisplayVersion(st.Version))
	} else if st.Installed() {
		line("Version", tui.RenderSubtle("unknown"))
	}

	if r := st.Receipt; r != nil {
		line("Package", fmt.Sprintf("%s (%s)", r.Flavor, r.PackageURL))
		line("Installed at", r.InstalledAt.Local().Format(time.RFC1123))
		if r.SetupVersion != "" {
			line("Installed by", "unrar-setup "+r.SetupVersion)
		}
	}

	switch {
	case st.MachinePathErr != nil:
		line("Machine PATH", tui.RenderWarningSimple(st.MachinePathErr.Error()))
	case st.OnMachinePath:
		line("Machine PATH", tui.RenderSuccessSimple("registered"))
	default:
		line("Machine PATH", "not registered")
	}

	if st.SessionPath != "" {
		line("This session", st.SessionPath)
	} else {
		line("This session", tui.RenderSubtle("unrar not found on PATH"))
	}

	fmt.Fprint(out, b.String())
}
