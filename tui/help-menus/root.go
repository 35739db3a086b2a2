package helpmenus

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RenderRootHelp prints the overview shown by `unrar-setup --help`.
func RenderRootHelp(out io.Writer, cmd *cobra.Command) {
	InitHelpStyles(out)

	var b strings.Builder

	version := cmd.Root().Version
	if version == "" {
		version = "dev"
	}
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("UnRAR setup for Windows  v%s", strings.TrimPrefix(version, "v"))))
	b.WriteString("\n")
	b.WriteString(DescStyle.Render(cmd.Long))
	b.WriteString("\n\n")

	b.WriteString(SectionStyle.Render("● WHAT IT DOES"))
	b.WriteString("\n\n")
	steps := []string{
		"Requests administrator rights (UAC) when needed",
		"Downloads the x64 or x86 UnRAR package for this CPU",
		"Extracts it to %ProgramFiles%\\UnRAR",
		"Adds that directory to the machine PATH once",
		"Prints the installed UnRAR version",
	}
	for i, s := range steps {
		fmt.Fprintf(&b, "  %d.  %s\n", i+1, DescStyle.Render(s))
	}
	b.WriteString("\n")

	b.WriteString(SectionStyle.Render("● COMMANDS"))
	b.WriteString("\n\n")
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() || sub.Name() == "help" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(CommandStyle.Render(sub.Name()))
		b.WriteString(DescStyle.Render(sub.Short))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	writeFlags(&b, cmd.LocalNonPersistentFlags())

	b.WriteString(SectionStyle.Render("● TIPS"))
	b.WriteString("\n\n  ")
	b.WriteString(DescStyle.Render("Open a new terminal after installing so the PATH change is visible."))
	b.WriteString("\n  ")
	b.WriteString(DescStyle.Render("Package source: "))
	b.WriteString(LinkStyle.Render("https://www.rarlab.com/rar_add.htm"))
	b.WriteString("\n\n")

	fmt.Fprint(out, b.String())
}

// RenderCommandHelp prints help for a subcommand.
func RenderCommandHelp(out io.Writer, cmd *cobra.Command) {
	InitHelpStyles(out)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(cmd.CommandPath()))
	b.WriteString("\n")
	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	b.WriteString(DescStyle.Render(desc))
	b.WriteString("\n\n")

	b.WriteString(SectionStyle.Render("● USAGE"))
	b.WriteString("\n\n  ")
	b.WriteString(LinkStyle.Render(cmd.UseLine()))
	b.WriteString("\n\n")

	writeFlags(&b, cmd.LocalNonPersistentFlags())
	fmt.Fprint(out, b.String())
}

func writeFlags(b *strings.Builder, flags *pflag.FlagSet) {
	var lines []string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		lines = append(lines, "  "+FlagStyle.Render(name)+DescStyle.Render(f.Usage))
	})
	if len(lines) == 0 {
		return
	}
	b.WriteString(SectionStyle.Render("● FLAGS"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
}
