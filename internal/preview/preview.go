// Package preview opens the generated HTML page in a visible browser so it
// can be copied into the Substack editor.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds the page load.
const DefaultTimeout = 30 * time.Second

// Sentinel errors for preview operations.
var (
	ErrPageMissing   = errors.New("preview page not found")
	ErrBrowserLaunch = errors.New("failed to launch browser")
	ErrPageLoad      = errors.New("failed to load page")
)

// Opener shows a local HTML file to the user.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// RodOpener launches Chrome through go-rod with a visible window. The
// browser is left running after Open returns.
type RodOpener struct {
	timeout time.Duration
	launch  func() (string, error)
}

// NewRodOpener creates a RodOpener. A non-positive timeout uses DefaultTimeout.
func NewRodOpener(timeout time.Duration) *RodOpener {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RodOpener{timeout: timeout, launch: launchVisible}
}

// launchVisible starts a headful browser that outlives this process.
func launchVisible() (string, error) {
	l := launcher.New().Headless(false).Leakless(false)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}
	return l.Launch()
}

// FileURL converts a local path to an absolute file:// URL.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// Open loads path in a new browser tab and waits for it to finish loading.
func (o *RodOpener) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrPageMissing, path)
	}
	target, err := FileURL(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageMissing, err)
	}

	controlURL, err := o.launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: target})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.Timeout(o.timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	return nil
}

var _ Opener = (*RodOpener)(nil)
