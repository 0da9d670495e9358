package verify

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/playwright-community/playwright-go"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// Capture takes a full-page png screenshot and writes it to path, replacing any previous file.
// The file is written to a temp file next to path and renamed, so a failure never leaves a partial image.
func Capture(page Page, path string) (int, error) {
	data, err := page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
		Type:     playwright.ScreenshotTypePng,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to take screenshot: %w", err)
	}
	if len(data) == 0 {
		return 0, ErrEmptyScreenshot
	}
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, ErrNotPNG
	}
	if err := writeFileAtomic(path, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create screenshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".zenshot-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // noop after successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write screenshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close screenshot: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // screenshot is meant to be viewed
		return fmt.Errorf("failed to set screenshot mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move screenshot to %s: %w", path, err)
	}
	return nil
}
