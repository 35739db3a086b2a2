package unrar

import "strings"

// Arch is the processor architecture identifier reported by Windows in
// PROCESSOR_ARCHITECTURE.
type Arch string

const (
	ArchAMD64 Arch = "AMD64"
	ArchARM64 Arch = "ARM64"
	ArchX86   Arch = "x86"
)

// Official RARLAB self-extracting UnRAR packages.
const (
	DefaultX64URL = "https://www.rarlab.com/rar/unrarw64.exe"
	DefaultX86URL = "https://www.rarlab.com/rar/unrarw32.exe"
)

// ExecutableName is the file the package extracts into the install directory.
const ExecutableName = "UnRAR.exe"

// CommandName is the name used for PATH lookups.
const CommandName = "unrar"

// Packages holds the download location of each package flavor.
type Packages struct {
	X64URL string
	X86URL string
}

// DefaultPackages returns the RARLAB package URLs.
func DefaultPackages() Packages {
	return Packages{X64URL: DefaultX64URL, X86URL: DefaultX86URL}
}

// ParseArch normalizes a raw identifier. Values other than AMD64 and ARM64
// are treated as 32-bit x86.
func ParseArch(raw string) Arch {
	switch {
	case strings.EqualFold(strings.TrimSpace(raw), string(ArchAMD64)):
		return ArchAMD64
	case strings.EqualFold(strings.TrimSpace(raw), string(ArchARM64)):
		return ArchARM64
	default:
		return ArchX86
	}
}

// URLFor picks the package for arch. ARM64 has no native build and runs the
// x64 package under emulation.
func (p Packages) URLFor(arch Arch) string {
	switch arch {
	case ArchAMD64, ArchARM64:
		return p.X64URL
	default:
		return p.X86URL
	}
}

// Flavor returns "x64" or "x86" for the package selected for arch.
func Flavor(arch Arch) string {
	if arch == ArchAMD64 || arch == ArchARM64 {
		return "x64"
	}
	return "x86"
}
