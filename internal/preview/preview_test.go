package preview

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileURL(t *testing.T) {
	t.Parallel()

	got, err := FileURL(filepath.Join(t.TempDir(), "my post.html"))
	if err != nil {
		t.Fatalf("FileURL() error = %v", err)
	}
	if !strings.HasPrefix(got, "file://") {
		t.Errorf("FileURL() = %q, want file:// prefix", got)
	}
	if !strings.HasSuffix(got, "/my%20post.html") {
		t.Errorf("FileURL() = %q, want escaped file name", got)
	}
}

func TestRodOpener_MissingPage(t *testing.T) {
	t.Parallel()

	o := NewRodOpener(0)
	o.launch = func() (string, error) {
		t.Fatal("browser launched for a missing page")
		return "", nil
	}

	err := o.Open(context.Background(), filepath.Join(t.TempDir(), "absent.html"))
	if !errors.Is(err, ErrPageMissing) {
		t.Errorf("Open() error = %v, want ErrPageMissing", err)
	}
}

func TestRodOpener_LaunchFailure(t *testing.T) {
	t.Parallel()

	page := filepath.Join(t.TempDir(), "post.html")
	if err := os.WriteFile(page, []byte("<p>x</p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	o := NewRodOpener(0)
	o.launch = func() (string, error) { return "", errors.New("no chrome") }

	err := o.Open(context.Background(), page)
	if !errors.Is(err, ErrBrowserLaunch) {
		t.Errorf("Open() error = %v, want ErrBrowserLaunch", err)
	}
}

func TestRodOpener_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewRodOpener(0).Open(ctx, "x.html"); !errors.Is(err, context.Canceled) {
		t.Errorf("Open() error = %v, want context.Canceled", err)
	}
}

func TestNewRodOpener_DefaultTimeout(t *testing.T) {
	t.Parallel()

	if o := NewRodOpener(-1); o.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", o.timeout, DefaultTimeout)
	}
}
