// Package download fetches the installer package over HTTP.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/schollz/progressbar/v3"

	"github.com/Thunder-Compute/unrar-setup/internal/version"
)

// HTTPClient is the subset of *http.Client the downloader needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Downloader performs a single GET per call. There is no retry and no
// client-side timeout; callers cancel through the context.
type Downloader struct {
	client    HTTPClient
	userAgent string
	progress  io.Writer
}

// NewDownloader returns a downloader backed by a non-shared cleanhttp client.
// When progress is non-nil a progress bar is rendered to it.
func NewDownloader(progress io.Writer) *Downloader {
	return &Downloader{
		client:    cleanhttp.DefaultClient(),
		userAgent: "unrar-setup/" + version.BuildVersion,
		progress:  progress,
	}
}

// WithClient replaces the HTTP client.
func (d *Downloader) WithClient(c HTTPClient) *Downloader {
	d.client = c
	return d
}

// Download writes the body of url to dest. The body is streamed to a sibling
// ".part" file that is renamed into place only after a complete transfer.
func (d *Downloader) Download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	partPath := dest + ".part"
	part, err := os.Create(partPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	cleanupNeeded := true
	defer func() {
		part.Close()
		if cleanupNeeded {
			os.Remove(partPath)
		}
	}()

	var w io.Writer = part
	if d.progress != nil {
		bar := newProgressBar(d.progress, resp.ContentLength)
		w = io.MultiWriter(part, bar)
		defer bar.Finish()
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("copy response body: %w", err)
	}
	if err := part.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(partPath, dest); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	cleanupNeeded = false
	return nil
}

// newProgressBar renders byte counts; an unknown length (-1) shows a spinner.
func newProgressBar(out io.Writer, total int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Downloading"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}
