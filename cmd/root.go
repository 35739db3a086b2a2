package cmd

import (
	"os"

	"github.com/Thunder-Compute/unrar-setup/internal/version"
	"github.com/Thunder-Compute/unrar-setup/tui"
	helpmenus "github.com/Thunder-Compute/unrar-setup/tui/help-menus"
	"github.com/spf13/cobra"
)

// rootCmd installs UnRAR when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "unrar-setup",
	Short: "Install UnRAR on Windows",
	Long: "unrar-setup downloads the UnRAR command-line package for this machine,\n" +
		"extracts it to Program Files and adds it to the machine PATH.",
	Version:       version.BuildVersion,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	RunE:          runInstall,
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		PrintError(err)
	}
	pauseIfElevatedChild()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	tui.InitCommonStyles(os.Stdout)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == rootCmd {
			helpmenus.RenderRootHelp(os.Stdout, cmd)
			return
		}
		helpmenus.RenderCommandHelp(os.Stdout, cmd)
	})

	addInstallFlags(rootCmd)

	completionCmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate the autocompletion script for the specified shell",
		Run: func(cmd *cobra.Command, args []string) {
			_ = rootCmd.GenPowerShellCompletion(os.Stdout) //nolint:errcheck // completion generation error is non-fatal
		},
	}

	completionCmd.AddCommand(&cobra.Command{
		Use:   "powershell",
		Short: "Generate the autocompletion script for powershell",
		Run: func(cmd *cobra.Command, args []string) {
			_ = rootCmd.GenPowerShellCompletion(os.Stdout) //nolint:errcheck // completion generation error is non-fatal
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "bash",
		Short: "Generate the autocompletion script for bash",
		Run: func(cmd *cobra.Command, args []string) {
			_ = rootCmd.GenBashCompletionV2(os.Stdout, true) //nolint:errcheck // completion generation error is non-fatal
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "zsh",
		Short: "Generate the autocompletion script for zsh",
		Run: func(cmd *cobra.Command, args []string) {
			_ = rootCmd.GenZshCompletion(os.Stdout) //nolint:errcheck // completion generation error is non-fatal
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "fish",
		Short: "Generate the autocompletion script for fish",
		Run: func(cmd *cobra.Command, args []string) {
			_ = rootCmd.GenFishCompletion(os.Stdout, true) //nolint:errcheck // completion generation error is non-fatal
		},
	})

	rootCmd.AddCommand(completionCmd)
}
