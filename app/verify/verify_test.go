package verify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/zenshot/app/verify/mocks"
)

func TestNew_Defaults(t *testing.T) {
	s := New(Config{})
	assert.Equal(t, "http://localhost:5173", s.URL)
	assert.Equal(t, "lightbox_verification.png", s.Output)
	assert.Equal(t, DefaultEntity(), s.Entity)
	assert.Equal(t, 30*time.Second, s.ReadyTimeout)
	assert.Equal(t, time.Duration(0), s.Settle, "zero settle is allowed")

	s = New(Config{Settle: -time.Second})
	assert.Equal(t, time.Duration(0), s.Settle)
}

func TestScenario_Run(t *testing.T) {
	out := filepath.Join(t.TempDir(), "lightbox_verification.png")
	var calls []string
	page := newScenarioPage(&calls, testPNG(t))

	s := New(Config{Output: out, Settle: time.Second, RunID: "test"})
	res, err := s.Run(context.Background(), page)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"goto http://localhost:5173",
		"ready",
		"evaluate create",
		"evaluate open",
		`wait [data-testid="zen-mode-modal"]`,
		"click button:has(img)",
		`wait [aria-label="Close image view"] visible`,
		"sleep 1000",
		"screenshot",
	}, calls)
	assert.Equal(t, []string{"navigate", "wait ready", "create entity", "open zen mode", "wait zen modal",
		"click image", "wait lightbox", "settle", "capture"}, res.Steps)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, testPNG(t), data)
	assert.Equal(t, len(data), res.Size)
	assert.Equal(t, out, res.Path)
	assert.Equal(t, "hero", res.EntityID)

	t.Run("entity passed to createEntity", func(t *testing.T) {
		evals := page.EvaluateCalls()
		require.Len(t, evals, 2)
		assert.Equal(t, createEntityJS, evals[0].Expression)
		require.Len(t, evals[0].Arg, 1)
		assert.Equal(t, map[string]any{
			"kind":   "character",
			"name":   "Hero",
			"fields": map[string]any{"content": "# Hero Content", "image": "https://via.placeholder.com/300"},
		}, evals[0].Arg[0])
		assert.Equal(t, openZenModeJS, evals[1].Expression)
		assert.Equal(t, []any{"hero"}, evals[1].Arg)
	})

	t.Run("readiness timeout passed", func(t *testing.T) {
		wf := page.WaitForFunctionCalls()
		require.Len(t, wf, 1)
		assert.Equal(t, readyExpr, wf[0].Expression)
		require.Len(t, wf[0].Options, 1)
		assert.InDelta(t, 30000, *wf[0].Options[0].Timeout, 0.1)
	})

	t.Run("full page png", func(t *testing.T) {
		sc := page.ScreenshotCalls()
		require.Len(t, sc, 1)
		require.Len(t, sc[0].Options, 1)
		assert.True(t, *sc[0].Options[0].FullPage)
		assert.Equal(t, *playwright.ScreenshotTypePng, *sc[0].Options[0].Type)
		assert.Nil(t, sc[0].Options[0].Path, "screenshot written by Capture, not by playwright")
	})
}

func TestScenario_RunNotReady(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shot.png")
	var calls []string
	page := newScenarioPage(&calls, testPNG(t))
	page.WaitForFunctionFunc = func(string, any, ...playwright.PageWaitForFunctionOptions) (playwright.JSHandle, error) {
		return nil, fmt.Errorf("page.WaitForFunction: %w", playwright.ErrTimeout)
	}

	_, err := New(Config{Output: out, ReadyTimeout: 50 * time.Millisecond}).Run(context.Background(), page)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotReady)
	require.ErrorIs(t, err, playwright.ErrTimeout)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "wait ready", stepErr.Step)

	assert.Empty(t, page.EvaluateCalls(), "no entity created when vault is not ready")
	assert.Empty(t, page.ScreenshotCalls())
	assert.NoFileExists(t, out)
}

func TestScenario_RunMissingImageButton(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shot.png")
	var calls []string
	page := newScenarioPage(&calls, testPNG(t))
	page.ClickFunc = func(selector string, _ ...playwright.PageClickOptions) error {
		return fmt.Errorf("page.Click %s: %w", selector, playwright.ErrTimeout)
	}

	_, err := New(Config{Output: out}).Run(context.Background(), page)
	require.Error(t, err)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "click image", stepErr.Step)
	assert.Contains(t, err.Error(), `step "click image"`)

	assert.Empty(t, page.WaitForTimeoutCalls(), "no settle after failed click")
	assert.Empty(t, page.ScreenshotCalls())
	assert.NoFileExists(t, out)
}

func TestScenario_RunStepFailures(t *testing.T) {
	boom := errors.New("boom")
	tbl := []struct {
		name   string
		breaks func(p *mocks.PageMock)
		step   string
	}{
		{"navigation error", func(p *mocks.PageMock) {
			p.GotoFunc = func(string, ...playwright.PageGotoOptions) (playwright.Response, error) { return nil, boom }
		}, "navigate"},
		{"readiness evaluation error", func(p *mocks.PageMock) {
			p.WaitForFunctionFunc = func(string, any, ...playwright.PageWaitForFunctionOptions) (playwright.JSHandle, error) {
				return nil, boom
			}
		}, "wait ready"},
		{"create error", func(p *mocks.PageMock) {
			p.EvaluateFunc = func(string, ...any) (any, error) { return nil, boom }
		}, "create entity"},
		{"modal missing", func(p *mocks.PageMock) {
			p.WaitForSelectorFunc = func(string, ...playwright.PageWaitForSelectorOptions) (playwright.ElementHandle, error) {
				return nil, boom
			}
		}, "wait zen modal"},
		{"screenshot error", func(p *mocks.PageMock) {
			p.ScreenshotFunc = func(...playwright.PageScreenshotOptions) ([]byte, error) { return nil, boom }
		}, "capture"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "shot.png")
			var calls []string
			page := newScenarioPage(&calls, testPNG(t))
			tt.breaks(page)

			_, err := New(Config{Output: out}).Run(context.Background(), page)
			require.ErrorIs(t, err, boom)
			var stepErr *StepError
			require.ErrorAs(t, err, &stepErr)
			assert.Equal(t, tt.step, stepErr.Step)
			assert.NoFileExists(t, out)
		})
	}
}

func TestScenario_RunCanceled(t *testing.T) {
	var calls []string
	page := newScenarioPage(&calls, testPNG(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Output: filepath.Join(t.TempDir(), "shot.png")}).Run(ctx, page)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls, "nothing runs on canceled context")
}

func TestScenario_RunOverwrites(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, os.WriteFile(out, []byte("stale content"), 0o600))

	for i := range 2 {
		var calls []string
		res, err := New(Config{Output: out}).Run(context.Background(), newScenarioPage(&calls, testPNG(t)))
		require.NoError(t, err, "run %d", i)
		assert.Equal(t, out, res.Path)
	}

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, testPNG(t), data)

	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestScenario_CustomEntity(t *testing.T) {
	var calls []string
	page := newScenarioPage(&calls, testPNG(t))
	base := page.EvaluateFunc
	page.EvaluateFunc = func(expression string, arg ...any) (any, error) {
		if expression == createEntityJS {
			return "dark-forest-1", nil // vault suffixes ids that already exist
		}
		return base(expression, arg...)
	}
	ent := Entity{Kind: "location", Name: "Dark Forest", Fields: map[string]string{"image": "/img/forest.png"}}

	res, err := New(Config{Output: filepath.Join(t.TempDir(), "shot.png"), Entity: ent}).Run(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, "dark-forest-1", res.EntityID)

	evals := page.EvaluateCalls()
	require.Len(t, evals, 2)
	assert.Equal(t, map[string]any{"kind": "location", "name": "Dark Forest",
		"fields": map[string]any{"image": "/img/forest.png"}}, evals[0].Arg[0])
	assert.Equal(t, []any{"dark-forest-1"}, evals[1].Arg)
}

func TestScenario_OpensCreatedID(t *testing.T) {
	tbl := []struct {
		name     string
		entity   Entity
		returned any
		fields   map[string]any
		opened   string
	}{
		{"id from vault", Entity{Kind: "character", Name: "Ёжик 2"}, "2", map[string]any{}, "2"},
		{"id from vault wins over name", Entity{Kind: "character", Name: "Zoë"}, "zo-1", map[string]any{}, "zo-1"},
		{"explicit id passed to vault", Entity{Kind: "character", Name: "Hero", ID: "hero-main"}, "hero-main",
			map[string]any{"id": "hero-main"}, "hero-main"},
		{"no id returned", Entity{Kind: "character", Name: "Café"}, nil, map[string]any{}, "caf"},
		{"empty id returned", Entity{Kind: "character", Name: "!!!"}, "", map[string]any{}, "untitled"},
		{"non-string returned", Entity{Kind: "character", Name: "Hero"}, float64(42), map[string]any{}, "hero"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			page := newScenarioPage(&calls, testPNG(t))
			base := page.EvaluateFunc
			page.EvaluateFunc = func(expression string, arg ...any) (any, error) {
				if expression == createEntityJS {
					return tt.returned, nil
				}
				return base(expression, arg...)
			}

			s := New(Config{Output: filepath.Join(t.TempDir(), "shot.png"), Entity: tt.entity})
			res, err := s.Run(context.Background(), page)
			require.NoError(t, err)
			assert.Equal(t, tt.opened, res.EntityID)

			evals := page.EvaluateCalls()
			require.Len(t, evals, 2)
			assert.Equal(t, tt.fields, evals[0].Arg[0].(map[string]any)["fields"])
			assert.Equal(t, openZenModeJS, evals[1].Expression)
			assert.Equal(t, []any{tt.opened}, evals[1].Arg)
		})
	}
}

func TestWaitReady(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		page := &mocks.PageMock{
			WaitForFunctionFunc: func(string, any, ...playwright.PageWaitForFunctionOptions) (playwright.JSHandle, error) {
				return nil, nil
			},
		}
		require.NoError(t, WaitReady(page, 2*time.Second))
		require.Len(t, page.WaitForFunctionCalls(), 1)
		assert.InDelta(t, 2000, *page.WaitForFunctionCalls()[0].Options[0].Timeout, 0.1)
	})

	t.Run("timeout", func(t *testing.T) {
		page := &mocks.PageMock{
			WaitForFunctionFunc: func(string, any, ...playwright.PageWaitForFunctionOptions) (playwright.JSHandle, error) {
				return nil, playwright.ErrTimeout
			},
		}
		err := WaitReady(page, time.Second)
		require.ErrorIs(t, err, ErrNotReady)
		assert.Contains(t, err.Error(), "vault did not become idle in 1s")
	})

	t.Run("other error", func(t *testing.T) {
		page := &mocks.PageMock{
			WaitForFunctionFunc: func(string, any, ...playwright.PageWaitForFunctionOptions) (playwright.JSHandle, error) {
				return nil, playwright.ErrTargetClosed
			},
		}
		err := WaitReady(page, time.Second)
		require.ErrorIs(t, err, playwright.ErrTargetClosed)
		assert.NotErrorIs(t, err, ErrNotReady)
	})
}

func TestCapture(t *testing.T) {
	t.Run("writes png", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "sub", "shot.png")
		page := &mocks.PageMock{ScreenshotFunc: func(...playwright.PageScreenshotOptions) ([]byte, error) {
			return testPNG(t), nil
		}}
		size, err := Capture(page, out)
		require.NoError(t, err)
		assert.Equal(t, len(testPNG(t)), size)

		f, err := os.Open(out)
		require.NoError(t, err)
		defer f.Close()
		img, err := png.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
	})

	t.Run("empty screenshot", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "shot.png")
		page := &mocks.PageMock{ScreenshotFunc: func(...playwright.PageScreenshotOptions) ([]byte, error) { return nil, nil }}
		_, err := Capture(page, out)
		require.ErrorIs(t, err, ErrEmptyScreenshot)
		assert.NoFileExists(t, out)
	})

	t.Run("not a png", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "shot.png")
		page := &mocks.PageMock{ScreenshotFunc: func(...playwright.PageScreenshotOptions) ([]byte, error) {
			return []byte{0xff, 0xd8, 0xff, 0xe0}, nil
		}}
		_, err := Capture(page, out)
		require.ErrorIs(t, err, ErrNotPNG)
		assert.NoFileExists(t, out)
	})
}

// newScenarioPage makes a page mock where every call succeeds and is recorded in calls.
func newScenarioPage(calls *[]string, shot []byte) *mocks.PageMock {
	return &mocks.PageMock{
		GotoFunc: func(url string, _ ...playwright.PageGotoOptions) (playwright.Response, error) {
			*calls = append(*calls, "goto "+url)
			return nil, nil
		},
		WaitForFunctionFunc: func(string, any, ...playwright.PageWaitForFunctionOptions) (playwright.JSHandle, error) {
			*calls = append(*calls, "ready")
			return nil, nil
		},
		EvaluateFunc: func(expression string, _ ...any) (any, error) {
			switch expression {
			case createEntityJS:
				*calls = append(*calls, "evaluate create")
				return "hero", nil
			case openZenModeJS:
				*calls = append(*calls, "evaluate open")
			default:
				*calls = append(*calls, "evaluate unknown")
			}
			return nil, nil
		},
		WaitForSelectorFunc: func(selector string, opts ...playwright.PageWaitForSelectorOptions) (playwright.ElementHandle, error) {
			if len(opts) > 0 && opts[0].State != nil && *opts[0].State == *playwright.WaitForSelectorStateVisible {
				*calls = append(*calls, "wait "+selector+" visible")
				return nil, nil
			}
			*calls = append(*calls, "wait "+selector)
			return nil, nil
		},
		ClickFunc: func(selector string, _ ...playwright.PageClickOptions) error {
			*calls = append(*calls, "click "+selector)
			return nil
		},
		WaitForTimeoutFunc: func(timeout float64) {
			*calls = append(*calls, fmt.Sprintf("sleep %.0f", timeout))
		},
		ScreenshotFunc: func(...playwright.PageScreenshotOptions) ([]byte, error) {
			*calls = append(*calls, "screenshot")
			return shot, nil
		},
	}
}

// testPNG returns a small encoded png image.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := range 4 {
		for y := range 4 {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
