package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/zenshot/app/browser"
	"github.com/umputun/zenshot/app/probe"
	"github.com/umputun/zenshot/app/verify"
)

type options struct {
	URL          string        `long:"url" env:"URL" default:"http://localhost:5173" description:"application URL"`
	Out          string        `long:"out" env:"OUT" default:"lightbox_verification.png" description:"screenshot path, overwritten on each run"`
	Entity       string        `long:"entity" env:"ENTITY" description:"entity yaml file, built-in Hero character if not set"`
	Settle       time.Duration `long:"settle" env:"SETTLE" default:"1s" description:"pause after lightbox is visible"`
	ReadyTimeout time.Duration `long:"ready-timeout" env:"READY_TIMEOUT" default:"30s" description:"max wait for vault to become idle"`
	Preflight    bool          `long:"preflight" env:"PREFLIGHT" description:"check the URL responds before launching the browser"`

	Browser struct {
		Name    string        `long:"name" env:"NAME" default:"chromium" choice:"chromium" choice:"firefox" choice:"webkit" description:"browser to run"`
		Headful bool          `long:"headful" env:"HEADFUL" description:"show browser window"`
		Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"default timeout for page actions"`
		Install bool          `long:"install" env:"INSTALL" description:"install playwright driver and browser before run"`
	} `group:"browser" namespace:"browser" env-namespace:"BROWSER"`

	Schema bool `long:"schema" description:"print entity file json schema and exit"`
	Dbg    bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "unknown"

func main() {
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Schema {
		data, err := verify.EntitySchema()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to make schema: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("zenshot %s\n", revision)
	setupLog(opts.Dbg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1) //nolint:gocritic // cancel called explicitly above
	}
}

// run performs one verification run. The browser is closed on every path out of it.
func run(ctx context.Context, opts options) error {
	runID := uuid.NewString()[:8]

	entity, err := loadEntity(opts.Entity)
	if err != nil {
		return err
	}

	if opts.Preflight {
		if err := probe.New(probe.WithUserAgent("zenshot/"+revision)).Check(ctx, opts.URL); err != nil {
			return fmt.Errorf("preflight failed: %w", err)
		}
		log.Printf("[DEBUG] preflight ok for %s", opts.URL)
	}

	log.Printf("[INFO] run %s: verifying lightbox at %s with %s %q", runID, opts.URL, entity.Kind, entity.Name)
	drv, err := browser.Launch(browserConfig(opts))
	if err != nil {
		return err
	}
	defer func() {
		if err := drv.Close(); err != nil {
			log.Printf("[WARN] failed to close browser: %v", err)
		}
	}()
	drv.CloseOnDone(ctx)

	scenario := verify.New(verify.Config{
		URL:          opts.URL,
		Output:       opts.Out,
		Entity:       entity,
		ReadyTimeout: opts.ReadyTimeout,
		Settle:       opts.Settle,
		RunID:        runID,
	})
	res, err := scenario.Run(ctx, drv.Page())
	if err != nil {
		return fmt.Errorf("run %s failed: %w", runID, err)
	}

	log.Printf("[INFO] run %s: screenshot saved to %s, %d bytes, %v", runID, res.Path, res.Size,
		res.Duration.Round(time.Millisecond))
	return nil
}

// loadEntity returns the entity from the yaml file, or the default Hero if path is empty.
func loadEntity(path string) (verify.Entity, error) {
	if path == "" {
		return verify.DefaultEntity(), nil
	}
	validator, err := verify.NewEntityValidator()
	if err != nil {
		return verify.Entity{}, err
	}
	entity, err := verify.LoadEntity(path, validator)
	if err != nil {
		return verify.Entity{}, err
	}
	log.Printf("[DEBUG] loaded entity %s %q from %s", entity.Kind, entity.Name, path)
	return entity, nil
}

// browserConfig makes browser driver config from options. Headless unless headful is asked for.
func browserConfig(opts options) browser.Config {
	return browser.Config{
		Name:     opts.Browser.Name,
		Headless: !opts.Browser.Headful,
		Timeout:  opts.Browser.Timeout,
		Install:  opts.Browser.Install,
	}
}

func setupLog(dbg bool) {
	logOpts := []log.Option{log.Msec, log.LevelBraces, log.StackTraceOnError}
	if dbg {
		logOpts = []log.Option{log.Debug, log.CallerFile, log.CallerFunc, log.Msec, log.LevelBraces, log.StackTraceOnError}
	}
	log.SetupStdLogger(logOpts...)
	log.Setup(logOpts...)
}
