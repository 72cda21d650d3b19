// Package player implements the client-side playback half of the system: a
// narrow capability interface over the concrete media player, and the
// [Controller] state machine that owns the playlist, the cursor, and the
// failure-driven pruning of unplayable tracks.
package player

// State is the player-reported playback state. The controller never
// duplicates this locally; it always asks the player.
type State int

const (
	StateUnstarted State = iota
	StatePlaying
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unstarted"
	}
}

// Options are the playback options handed to the player on every load.
type Options struct {
	Autoplay       bool
	ShowRelated    bool
	NativeControls bool
}

// DefaultOptions returns the standard playback configuration: autoplay on,
// related content suppressed, native controls enabled.
func DefaultOptions() Options {
	return Options{Autoplay: true, ShowRelated: false, NativeControls: true}
}

// Player is the injected capability object the controller depends on. The
// concrete implementation is opaque; errors from it are treated as "this
// identifier is unplayable" and nothing more.
type Player interface {
	State() State
	Load(videoID string, opts Options) error
	Play() error
	Pause() error
	Stop() error
}
