// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/NelCSC/grupo-playlist-app/internal/models"
	"github.com/NelCSC/grupo-playlist-app/internal/player"
)

// FakePlaylistService is a test double for the generation endpoint client.
type FakePlaylistService struct {
	Playlist []string
	Err      error
	Calls    int
}

func (f *FakePlaylistService) GeneratePlaylist(_ context.Context, _ []models.Participant) ([]string, error) {
	f.Calls++
	return f.Playlist, f.Err
}

// FakePlayer is a test double for [player.Player] recording every request.
type FakePlayer struct {
	Current State
	Loads   []string
	Plays   int
	Pauses  int
	Stops   int
	LoadErr error
}

// State aliases the player state so doubles can be configured without
// importing the player package twice.
type State = player.State

func (f *FakePlayer) State() player.State { return f.Current }

func (f *FakePlayer) Load(videoID string, _ player.Options) error {
	f.Loads = append(f.Loads, videoID)
	return f.LoadErr
}

func (f *FakePlayer) Play() error  { f.Plays++; return nil }
func (f *FakePlayer) Pause() error { f.Pauses++; return nil }
func (f *FakePlayer) Stop() error  { f.Stops++; return nil }

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}
