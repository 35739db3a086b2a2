package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"

	"github.com/Thunder-Compute/unrar-setup/internal/config"
	"github.com/Thunder-Compute/unrar-setup/internal/download"
	"github.com/Thunder-Compute/unrar-setup/internal/elevate"
	"github.com/Thunder-Compute/unrar-setup/internal/install"
	"github.com/Thunder-Compute/unrar-setup/internal/machinepath"
	"github.com/Thunder-Compute/unrar-setup/internal/sfx"
	"github.com/Thunder-Compute/unrar-setup/internal/version"
	"github.com/Thunder-Compute/unrar-setup/sentry"
	"github.com/Thunder-Compute/unrar-setup/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	flagInstallDir    = "install-dir"
	flagKeepDownload  = "keep-download"
	flagElevatedChild = "elevated-child"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Download UnRAR and add it to the machine PATH",
	Long: "Download the UnRAR package matching this CPU, extract it silently and\n" +
		"register the install directory on the machine PATH. Requires administrator rights.",
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	addInstallFlags(installCmd)
	rootCmd.AddCommand(installCmd)
}

var (
	installDir    string
	keepDownload  bool
	elevatedChild bool
)

func addInstallFlags(cmd *cobra.Command) {
	addInstallDirFlag(cmd)
	cmd.Flags().BoolVar(&keepDownload, flagKeepDownload, false, "Keep the downloaded package after installing")
	addElevatedChildFlag(cmd)
}

func addInstallDirFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&installDir, flagInstallDir, "", `Install directory (default "%ProgramFiles%\UnRAR")`)
}

func addElevatedChildFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&elevatedChild, flagElevatedChild, false, "Marks the copy started after the UAC prompt")
	_ = cmd.Flags().MarkHidden(flagElevatedChild)
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	in := &install.Installer{
		Elevator:     elevate.New(os.Args[1:]),
		Fetcher:      download.NewDownloader(os.Stderr),
		Runner:       sfx.ExecRunner{},
		Paths:        machinepath.NewSystemStore(),
		Printer:      consolePrinter{out: os.Stdout},
		LookPath:     exec.LookPath,
		Busy:         busy,
		OnStep:       stepBreadcrumb,
		SetupVersion: version.BuildVersion,
	}

	res, err := in.Run(cmd.Context(), install.Options{
		Arch:          cfg.Arch,
		Packages:      cfg.Packages,
		InstallDir:    cfg.InstallDir,
		DownloadPath:  cfg.DownloadPath,
		LockPath:      cfg.LockPath,
		KeepDownload:  keepDownload,
		ElevatedChild: elevatedChild,
	})
	if err != nil {
		CaptureCommandError(cmd, err)
		return err
	}
	if res.Relaunched {
		printRelaunched()
		return nil
	}

	PrintSuccess(fmt.Sprintf("UnRAR is installed in %s", cfg.InstallDir))
	if keepDownload {
		fmt.Println(tui.RenderSubtle("Package kept at " + cfg.DownloadPath))
	}
	return nil
}

func printRelaunched() {
	fmt.Println(tui.RenderSubtle("Continuing in the elevated window."))
}

func loadConfig() config.Config {
	cfg := config.Load()
	if installDir != "" {
		cfg.InstallDir = installDir
	}
	return cfg
}

func busy(label string, fn func() error) error {
	return tui.RunBusy(os.Stdout, label, fn)
}

func stepBreadcrumb(step install.Step) {
	sentry.AddBreadcrumb("install", string(step), sentry.LevelInfo)
}

// pauseIfElevatedChild keeps the elevated console window open until the
// user has read the result; Windows closes it as soon as the process exits.
func pauseIfElevatedChild() {
	if !elevatedChild || !isatty.IsTerminal(os.Stdin.Fd()) {
		return
	}
	fmt.Print(tui.RenderSubtle("Press Enter to close this window."))
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
