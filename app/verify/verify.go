// Package verify runs the zen mode lightbox scenario on a browser page and captures the resulting screenshot.
//
// The scenario is a fixed linear sequence: navigate, wait for the vault to become idle, create the entity,
// open it in zen mode, click the image, wait for the lightbox close control, settle, capture.
// Any step failure aborts the run, nothing is retried and no screenshot is written.
package verify

import (
	"context"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/playwright-community/playwright-go"
)

//go:generate moq -out mocks/page.go -pkg mocks -skip-ensure -fmt goimports . Page

// DOM contracts of the application under test.
const (
	ZenModalSelector      = `[data-testid="zen-mode-modal"]`
	ImageButtonSelector   = `button:has(img)`
	LightboxCloseSelector = `[aria-label="Close image view"]`
)

// scripts evaluated in the page context
const (
	readyExpr      = `window.vault && window.vault.status === 'idle'`
	createEntityJS = `async (e) => await window.vault.createEntity(e.kind, e.name, e.fields)`
	openZenModeJS  = `async (id) => { await window.uiStore.openZenMode(id); }`
)

// defaults for scenario configuration
const (
	DefaultURL          = "http://localhost:5173"
	DefaultOutput       = "lightbox_verification.png"
	DefaultReadyTimeout = 30 * time.Second
)

// Page defines the page operations the scenario needs, satisfied by playwright.Page.
type Page interface {
	Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error)
	WaitForFunction(expression string, arg any, options ...playwright.PageWaitForFunctionOptions) (playwright.JSHandle, error)
	Evaluate(expression string, arg ...any) (any, error)
	WaitForSelector(selector string, options ...playwright.PageWaitForSelectorOptions) (playwright.ElementHandle, error)
	Click(selector string, options ...playwright.PageClickOptions) error
	WaitForTimeout(timeout float64)
	Screenshot(options ...playwright.PageScreenshotOptions) ([]byte, error)
}

// Config holds scenario configuration.
type Config struct {
	URL          string        // application address
	Output       string        // screenshot path, overwritten on each run
	Entity       Entity        // entity created and opened in zen mode
	ReadyTimeout time.Duration // max wait for the vault to report idle
	Settle       time.Duration // pause after the lightbox is visible, lets the transition finish
	RunID        string        // run identifier used in log lines
}

// Result describes a successful run.
type Result struct {
	Path     string        // screenshot path
	EntityID string        // id of the created entity, opened in zen mode
	Size     int           // screenshot size in bytes
	Steps    []string      // completed steps, in order
	Duration time.Duration // total run time
}

// Scenario drives the lightbox verification flow.
type Scenario struct {
	Config
}

// step is a single named action of the scenario.
type step struct {
	name string
	fn   func(page Page) error
}

// New creates a Scenario, filling unset config values with defaults.
func New(cfg Config) *Scenario {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Entity.Kind == "" && cfg.Entity.Name == "" {
		cfg.Entity = DefaultEntity()
	}
	if cfg.ReadyTimeout <= 0 {
		cfg.ReadyTimeout = DefaultReadyTimeout
	}
	if cfg.Settle < 0 {
		cfg.Settle = 0
	}
	return &Scenario{Config: cfg}
}

// Run executes all steps in order on the page. The first failing step ends the run with a *StepError.
// ctx is checked between steps; a blocking browser call is interrupted by closing the browser instead.
func (s *Scenario) Run(ctx context.Context, page Page) (Result, error) {
	st := time.Now()
	res := Result{Path: s.Output}

	for _, stp := range s.steps(&res) {
		if err := ctx.Err(); err != nil {
			return Result{}, &StepError{Step: stp.name, Err: err}
		}
		stepStart := time.Now()
		log.Printf("[DEBUG] run %s: %s", s.RunID, stp.name)
		if err := stp.fn(page); err != nil {
			return Result{}, &StepError{Step: stp.name, Err: err}
		}
		res.Steps = append(res.Steps, stp.name)
		log.Printf("[INFO] run %s: %s done in %v", s.RunID, stp.name, time.Since(stepStart).Round(time.Millisecond))
	}

	res.Duration = time.Since(st)
	return res, nil
}

// steps returns the ordered scenario steps. Create entity and capture store their outcome in res.
func (s *Scenario) steps(res *Result) []step {
	return []step{
		{name: "navigate", fn: s.navigate},
		{name: "wait ready", fn: func(page Page) error { return WaitReady(page, s.ReadyTimeout) }},
		{name: "create entity", fn: func(page Page) error {
			id, err := s.createEntity(page)
			res.EntityID = id
			return err
		}},
		{name: "open zen mode", fn: func(page Page) error { return s.openZenMode(page, res.EntityID) }},
		{name: "wait zen modal", fn: func(page Page) error { return waitSelector(page, ZenModalSelector) }},
		{name: "click image", fn: func(page Page) error { return page.Click(ImageButtonSelector) }},
		{name: "wait lightbox", fn: func(page Page) error { return waitVisible(page, LightboxCloseSelector) }},
		{name: "settle", fn: s.settle},
		{name: "capture", fn: func(page Page) error {
			size, err := Capture(page, s.Output)
			res.Size = size
			return err
		}},
	}
}

func (s *Scenario) navigate(page Page) error {
	if _, err := page.Goto(s.URL); err != nil {
		return fmt.Errorf("failed to open %s: %w", s.URL, err)
	}
	return nil
}

// createEntity creates the entity and returns the id the vault assigned to it.
// The id is derived locally if the vault does not report one.
func (s *Scenario) createEntity(page Page) (string, error) {
	arg := map[string]any{"kind": s.Entity.Kind, "name": s.Entity.Name, "fields": s.Entity.fieldsArg()}
	resp, err := page.Evaluate(createEntityJS, arg)
	if err != nil {
		return "", fmt.Errorf("failed to create %s %q: %w", s.Entity.Kind, s.Entity.Name, err)
	}
	if id, ok := resp.(string); ok && id != "" {
		log.Printf("[DEBUG] run %s: created %s %q as %q", s.RunID, s.Entity.Kind, s.Entity.Name, id)
		return id, nil
	}
	id := s.Entity.ZenID()
	log.Printf("[WARN] run %s: createEntity returned no id (%v), using %q", s.RunID, resp, id)
	return id, nil
}

func (s *Scenario) openZenMode(page Page, id string) error {
	if _, err := page.Evaluate(openZenModeJS, id); err != nil {
		return fmt.Errorf("failed to open zen mode for %q: %w", id, err)
	}
	return nil
}

func (s *Scenario) settle(page Page) error {
	if s.Settle > 0 {
		page.WaitForTimeout(float64(s.Settle.Milliseconds()))
	}
	return nil
}

// waitSelector waits for the selector with playwright's default wait state.
func waitSelector(page Page, selector string) error {
	if _, err := page.WaitForSelector(selector); err != nil {
		return fmt.Errorf("failed to wait for %s: %w", selector, err)
	}
	return nil
}

// waitVisible waits for the selector to become visible.
func waitVisible(page Page, selector string) error {
	_, err := page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
	if err != nil {
		return fmt.Errorf("failed to wait for visible %s: %w", selector, err)
	}
	return nil
}
