package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// browser owns one headless Chrome process and replaces it after maxPages
// renders. Chrome's memory baseline creeps up over time even when every page
// is closed, so a long-running server restarts it periodically.
type browser struct {
	mu        sync.Mutex
	current   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int
	maxPages  int
	closed    bool
}

func newBrowser(maxPages int) (*browser, error) {
	b := &browser{maxPages: maxPages}
	if err := b.launch(); err != nil {
		return nil, err
	}
	return b, nil
}

// acquire returns the live browser and counts one page against it,
// recycling first when the page budget is spent.
func (b *browser) acquire() (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, fmt.Errorf("browser closed")
	}
	if b.maxPages > 0 && b.pageCount >= b.maxPages {
		b.recycle()
	}
	b.pageCount++
	return b.current, nil
}

func (b *browser) close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	var err error
	if b.current != nil {
		err = b.current.Close()
		b.current = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

func (b *browser) pid() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}

// launch starts a new Chrome process. Must be called with mu held or before
// b is shared.
func (b *browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	next := rod.New().ControlURL(u)
	if err := next.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.current = next
	b.launcher = l
	return nil
}

// recycle swaps in a fresh Chrome process. The old one is kept if the new
// launch fails. Must be called with mu held.
func (b *browser) recycle() {
	oldBrowser, oldLauncher := b.current, b.launcher
	if err := b.launch(); err != nil {
		b.current, b.launcher = oldBrowser, oldLauncher
		return
	}
	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	b.pageCount = 0
}
