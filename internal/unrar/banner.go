package unrar

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// BannerMarker identifies the version line UnRAR prints when run without
// arguments, e.g. "UNRAR 7.01 freeware      Copyright (c) 1993-2024 Alexander Roshal".
const BannerMarker = "UNRAR"

var bannerVersionRe = regexp.MustCompile(`UNRAR\s+(\d+)\.(\d+)(?:\s+beta\s+(\d+))?`)

// FindBanner returns the first output line containing BannerMarker.
func FindBanner(output []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.Contains(line, BannerMarker) {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}

// ParseBannerVersion extracts the release from a banner line. RARLAB uses
// two-digit minors ("7.01"), which are read as plain numbers, so 7.01 becomes
// 7.1.0 and "7.00 beta 3" becomes 7.0.0-beta.3.
func ParseBannerVersion(banner string) (*semver.Version, error) {
	m := bannerVersionRe.FindStringSubmatch(banner)
	if m == nil {
		return nil, fmt.Errorf("no version in banner %q", banner)
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("parse major version: %w", err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("parse minor version: %w", err)
	}
	v := fmt.Sprintf("%d.%d.0", major, minor)
	if m[3] != "" {
		beta, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("parse beta number: %w", err)
		}
		v = fmt.Sprintf("%s-beta.%d", v, beta)
	}
	return semver.NewVersion(v)
}

// DisplayVersion renders v the way RARLAB numbers releases.
func DisplayVersion(v *semver.Version) string {
	if v == nil {
		return "unknown"
	}
	s := fmt.Sprintf("%d.%02d", v.Major(), v.Minor())
	if pre := v.Prerelease(); pre != "" {
		s += " " + strings.ReplaceAll(pre, ".", " ")
	}
	return s
}
