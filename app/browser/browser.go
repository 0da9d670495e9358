// Package browser owns the playwright process, the browser and the single page used by a verification run.
package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/playwright-community/playwright-go"
)

// defaults for driver configuration
const (
	defaultName    = "chromium"
	defaultTimeout = 30 * time.Second
	defaultWidth   = 1280
	defaultHeight  = 720
)

// Config holds browser driver configuration.
type Config struct {
	Name     string        // chromium, firefox or webkit
	Headless bool          // run without a visible window
	Timeout  time.Duration // default timeout for page actions and navigation
	Width    int           // viewport width
	Height   int           // viewport height
	Install  bool          // install playwright driver and browser before launch
}

// Driver holds the playwright process, browser, context and page for one run.
type Driver struct {
	name    string
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page

	closeOnce sync.Once
	closeErr  error
	done      chan struct{} // closed by Close
}

// Launch starts playwright, launches the configured browser and opens a single page.
// On any failure everything started so far is released before returning.
func Launch(cfg Config) (*Driver, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Install {
		log.Printf("[INFO] installing playwright driver and %s", cfg.Name)
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{cfg.Name}}); err != nil {
			return nil, fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}
	d := newDriver(cfg.Name)
	d.pw = pw

	d.browser, err = d.browserType().Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		return nil, d.abort(fmt.Errorf("failed to launch %s: %w", cfg.Name, err))
	}

	d.context, err = d.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: cfg.Width, Height: cfg.Height},
	})
	if err != nil {
		return nil, d.abort(fmt.Errorf("failed to create browser context: %w", err))
	}
	timeoutMs := float64(cfg.Timeout.Milliseconds())
	d.context.SetDefaultTimeout(timeoutMs)
	d.context.SetDefaultNavigationTimeout(timeoutMs)

	if d.page, err = d.context.NewPage(); err != nil {
		return nil, d.abort(fmt.Errorf("failed to create page: %w", err))
	}

	log.Printf("[DEBUG] launched %s, headless=%v, timeout=%v, viewport=%dx%d",
		cfg.Name, cfg.Headless, cfg.Timeout, cfg.Width, cfg.Height)
	return d, nil
}

func newDriver(name string) *Driver {
	return &Driver{name: name, done: make(chan struct{})}
}

// abort releases whatever Launch started so far and returns err.
func (d *Driver) abort(err error) error {
	if cerr := d.Close(); cerr != nil {
		log.Printf("[WARN] failed to release %s after launch error: %v", d.name, cerr)
	}
	return err
}

// Page returns the page opened by Launch.
func (d *Driver) Page() playwright.Page {
	return d.page
}

// Close releases page, context, browser and the playwright process.
// Safe to call multiple times, only the first call does the work.
func (d *Driver) Close() error {
	d.closeOnce.Do(func() {
		var errs []error
		if d.page != nil {
			if err := d.page.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close page: %w", err))
			}
		}
		if d.context != nil {
			if err := d.context.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close context: %w", err))
			}
		}
		if d.browser != nil {
			if err := d.browser.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close browser: %w", err))
			}
		}
		if d.pw != nil {
			if err := d.pw.Stop(); err != nil {
				errs = append(errs, fmt.Errorf("stop playwright: %w", err))
			}
		}
		d.closeErr = errors.Join(errs...)
		if d.done != nil {
			close(d.done)
		}
		log.Printf("[DEBUG] %s closed", d.name)
	})
	return d.closeErr
}

// CloseOnDone closes the driver as soon as ctx is canceled.
// Closing the browser aborts whatever blocking call the page is in.
// The watcher goroutine exits when the driver is closed by other means.
func (d *Driver) CloseOnDone(ctx context.Context) {
	go func() {
		select {
		case <-ctx.Done():
			if err := d.Close(); err != nil {
				log.Printf("[WARN] failed to close browser on cancel: %v", err)
			}
		case <-d.done:
		}
	}()
}

// browserType picks the playwright browser type for the configured name.
func (d *Driver) browserType() playwright.BrowserType {
	switch d.name {
	case "firefox":
		return d.pw.Firefox
	case "webkit":
		return d.pw.WebKit
	default:
		return d.pw.Chromium
	}
}

// withDefaults fills zero values with defaults.
func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	return c
}

// validate checks the browser name is one playwright knows about.
func (c Config) validate() error {
	switch c.Name {
	case "chromium", "firefox", "webkit":
		return nil
	default:
		return fmt.Errorf("unsupported browser %q, expected chromium, firefox or webkit", c.Name)
	}
}
