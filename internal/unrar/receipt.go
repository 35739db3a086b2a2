package unrar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ReceiptFileName is written next to UnRAR.exe after a successful install.
const ReceiptFileName = ".unrar-setup.json"

// Receipt records how an install directory was populated.
type Receipt struct {
	Arch         Arch      `json:"arch"`
	Flavor       string    `json:"flavor"`
	PackageURL   string    `json:"packageUrl"`
	SetupVersion string    `json:"setupVersion,omitempty"`
	InstalledAt  time.Time `json:"installedAt"`
}

func receiptPath(dir string) string {
	return filepath.Join(dir, ReceiptFileName)
}

// WriteReceipt stores r in dir.
func WriteReceipt(dir string, r Receipt) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(receiptPath(dir), data, 0o644); err != nil {
		return fmt.Errorf("write receipt: %w", err)
	}
	return nil
}

// ReadReceipt loads the receipt from dir. A missing receipt returns an error
// satisfying errors.Is(err, os.ErrNotExist).
func ReadReceipt(dir string) (*Receipt, error) {
	data, err := os.ReadFile(receiptPath(dir))
	if err != nil {
		return nil, err
	}
	var r Receipt
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse receipt: %w", err)
	}
	return &r, nil
}

// HasReceipt reports whether dir was populated by this tool.
func HasReceipt(dir string) bool {
	info, err := os.Stat(receiptPath(dir))
	return err == nil && !info.IsDir()
}
