package player

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/NelCSC/grupo-playlist-app/internal/shared"
	"github.com/charmbracelet/log"
)

// Phase is the controller lifecycle state.
type Phase int

const (
	// PhaseIdle means no playlist has been loaded yet.
	PhaseIdle Phase = iota
	// PhaseReady means a playlist is loaded but no player is attached.
	PhaseReady
	// PhaseActive means a player is attached and a track is loaded.
	PhaseActive
	// PhaseExhausted is terminal: every candidate was rejected by the
	// player. Only a fresh Load leaves it.
	PhaseExhausted
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseActive:
		return "active"
	case PhaseExhausted:
		return "exhausted"
	default:
		return "idle"
	}
}

// Controller owns the playlist and cursor with single-writer discipline:
// every transport command and player event is serialized through its mutex,
// and no other component mutates the playlist directly.
type Controller struct {
	mu       sync.Mutex
	playlist []string
	cursor   int
	phase    Phase
	player   Player
	opts     Options
	logger   *log.Logger

	// intn samples a uniform random index. Replaceable in tests.
	intn func(n int) int
}

// ControllerOption configures a [Controller].
type ControllerOption func(*Controller)

// WithOptions replaces the playback options handed to the player on load.
func WithOptions(opts Options) ControllerOption {
	return func(c *Controller) { c.opts = opts }
}

// WithControllerLogger replaces the default logger.
func WithControllerLogger(l *log.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates a Controller in the idle phase.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		phase:  PhaseIdle,
		opts:   DefaultOptions(),
		logger: shared.NewLogger(nil),
		intn:   rand.Intn,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load replaces the playlist with a freshly generated one and resets the
// cursor. An empty list leaves the controller idle. Loading is the only way
// out of the exhausted phase.
func (c *Controller) Load(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.playlist = append([]string(nil), ids...)
	c.cursor = 0

	if len(c.playlist) == 0 {
		c.phase = PhaseIdle
		return
	}

	if c.player != nil {
		c.phase = PhaseActive
		c.loadCurrent()
	} else {
		c.phase = PhaseReady
	}
}

// Attach hands the controller its player capability. With a playlist already
// loaded this starts playback of the current track.
func (c *Controller) Attach(p Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.player = p
	if c.phase == PhaseReady {
		c.phase = PhaseActive
		c.loadCurrent()
	}
}

// Current returns the track under the cursor, if any.
func (c *Controller) Current() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.playlist) == 0 {
		return "", false
	}
	return c.playlist[c.cursor], true
}

// Playlist returns a copy of the remaining candidates.
func (c *Controller) Playlist() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.playlist...)
}

// Cursor returns the current position.
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// Phase returns the lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// JumpTo stops the current track and moves the cursor to index i. The UI
// only offers enumerated entries, so an out-of-range index is rejected
// rather than tolerated.
func (c *Controller) JumpTo(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.playlist) {
		return fmt.Errorf("%w: index %d out of range", shared.ErrInvalidInput, i)
	}

	c.stopCurrent()
	c.cursor = i
	c.loadCurrent()
	return nil
}

// Previous steps backward sequentially, wrapping from the first entry to the
// last. No-op on an empty playlist.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.playlist) == 0 {
		return
	}

	c.stopCurrent()
	c.cursor = (c.cursor - 1 + len(c.playlist)) % len(c.playlist)
	c.loadCurrent()
}

// Next jumps to a random track distinct from the current one. A single-item
// playlist re-selects the same track.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.playlist) == 0 {
		return
	}

	c.stopCurrent()
	c.cursor = c.nextIndex(c.cursor, len(c.playlist))
	c.loadCurrent()
}

// OnMediaEnd handles the player's end-of-media signal. Natural completion
// advances to a random track, not the next sequential one.
func (c *Controller) OnMediaEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.playlist) == 0 {
		return
	}

	c.cursor = c.nextIndex(c.cursor, len(c.playlist))
	c.loadCurrent()
}

// OnMediaError prunes the failing track and moves on. Removal is by value,
// not index, so a stale cursor cannot drop the wrong entry. When the last
// candidate is pruned the controller enters the terminal exhausted phase and
// reports it.
func (c *Controller) OnMediaError(failingID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Warn("removing unplayable track", "id", failingID)

	kept := c.playlist[:0]
	for _, id := range c.playlist {
		if id != failingID {
			kept = append(kept, id)
		}
	}
	prev := c.cursor
	c.playlist = kept

	if len(c.playlist) == 0 {
		c.cursor = 0
		c.phase = PhaseExhausted
		return fmt.Errorf("%w: every generated candidate was rejected", shared.ErrExhausted)
	}

	c.cursor = c.nextIndex(prev, len(c.playlist))
	c.loadCurrent()
	return nil
}

// TogglePlayPause asks the player to pause when it reports playing, and to
// play otherwise. No-op until a player is attached.
func (c *Controller) TogglePlayPause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.player == nil {
		return
	}

	if c.player.State() == StatePlaying {
		if err := c.player.Pause(); err != nil {
			c.logger.Warn("pause request failed", "err", err)
		}
		return
	}
	if err := c.player.Play(); err != nil {
		c.logger.Warn("play request failed", "err", err)
	}
}

// nextIndex samples a uniform index over [0, n) distinct from exclude,
// unless only one candidate exists.
func (c *Controller) nextIndex(exclude, n int) int {
	if n == 1 {
		return 0
	}
	for {
		if i := c.intn(n); i != exclude {
			return i
		}
	}
}

// stopCurrent stops the active media before a manual cursor move.
func (c *Controller) stopCurrent() {
	if c.player == nil || c.phase != PhaseActive {
		return
	}
	if err := c.player.Stop(); err != nil {
		c.logger.Warn("stop request failed", "err", err)
	}
}

// loadCurrent hands the track under the cursor to the player. Loading is
// fire and forget; a failure here only surfaces later as a media error.
func (c *Controller) loadCurrent() {
	if c.player == nil || c.phase != PhaseActive || len(c.playlist) == 0 {
		return
	}
	if err := c.player.Load(c.playlist[c.cursor], c.opts); err != nil {
		c.logger.Warn("load request failed", "id", c.playlist[c.cursor], "err", err)
	}
}
