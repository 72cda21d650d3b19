package player

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"sync"
)

const watchBaseURL = "https://www.youtube.com/watch"

// WatchURL builds the watch page URL for a video, encoding the playback
// options the embed player would receive.
func WatchURL(videoID string, opts Options) string {
	val := url.Values{}
	val.Set("v", videoID)
	if opts.Autoplay {
		val.Set("autoplay", "1")
	}
	if !opts.ShowRelated {
		val.Set("rel", "0")
	}
	return watchBaseURL + "?" + val.Encode()
}

// BrowserPlayer satisfies [Player] by opening each track in the system
// browser. The tab is fire and forget: pause, resume and end-of-media stay
// with the browser's own controls, so the state reported here is the state
// last requested, not observed.
type BrowserPlayer struct {
	mu    sync.Mutex
	state State

	// open launches a URL; replaceable in tests.
	open func(rawURL string) error
}

// NewBrowserPlayer creates a player that launches the platform browser.
func NewBrowserPlayer() *BrowserPlayer {
	return &BrowserPlayer{state: StateUnstarted, open: openURL}
}

// State returns the last requested playback state.
func (b *BrowserPlayer) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Load opens the track's watch page in a new browser tab.
func (b *BrowserPlayer) Load(videoID string, opts Options) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.open(WatchURL(videoID, opts)); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	if opts.Autoplay {
		b.state = StatePlaying
	} else {
		b.state = StateUnstarted
	}
	return nil
}

// Play records the requested state. The browser tab cannot be driven
// remotely.
func (b *BrowserPlayer) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StatePlaying
	return nil
}

// Pause records the requested state.
func (b *BrowserPlayer) Pause() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StatePaused
	return nil
}

// Stop records the requested state.
func (b *BrowserPlayer) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StateEnded
	return nil
}

// openURL launches the platform's URL handler.
func openURL(rawURL string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
