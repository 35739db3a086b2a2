package cmd

import (
	"os"

	"github.com/Thunder-Compute/unrar-setup/internal/elevate"
	"github.com/Thunder-Compute/unrar-setup/internal/install"
	"github.com/Thunder-Compute/unrar-setup/internal/machinepath"
	"github.com/Thunder-Compute/unrar-setup/sentry"
	"github.com/spf13/cobra"
)

var forceUninstall bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove UnRAR and its machine PATH entry",
	Long: "Remove the install directory from the machine PATH and delete it.\n" +
		"Directories without an install receipt are left alone unless --force is given.",
	Args: cobra.NoArgs,
	RunE: runUninstall,
}

func init() {
	addInstallDirFlag(uninstallCmd)
	uninstallCmd.Flags().BoolVar(&forceUninstall, "force", false, "Remove the directory even if unrar-setup did not create it")
	addElevatedChildFlag(uninstallCmd)
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	u := &install.Uninstaller{
		Elevator: elevate.New(os.Args[1:]),
		Paths:    machinepath.NewSystemStore(),
		Printer:  consolePrinter{out: os.Stdout},
		OnStep: func(step install.Step) {
			sentry.AddBreadcrumb("uninstall", string(step), sentry.LevelInfo)
		},
	}

	res, err := u.Run(cmd.Context(), install.UninstallOptions{
		InstallDir:    cfg.InstallDir,
		LockPath:      cfg.LockPath,
		Force:         forceUninstall,
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
	if res.Removed || res.PathUpdated {
		PrintSuccess("UnRAR has been removed")
	}
	return nil
}
