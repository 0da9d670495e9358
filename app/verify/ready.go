package verify

import (
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// WaitReady blocks until the vault reports idle in the page context or timeout elapses.
// A timeout is reported as ErrNotReady.
func WaitReady(page Page, timeout time.Duration) error {
	_, err := page.WaitForFunction(readyExpr, nil, playwright.PageWaitForFunctionOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w in %v: %w", ErrNotReady, timeout, err)
	}
	return fmt.Errorf("failed to check vault status: %w", err)
}
