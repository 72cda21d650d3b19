package player

import (
	"errors"
	"strings"
	"testing"
)

func TestWatchURL(t *testing.T) {
	t.Run("default options", func(t *testing.T) {
		u := WatchURL("abc123", DefaultOptions())
		if !strings.HasPrefix(u, "https://www.youtube.com/watch?") {
			t.Errorf("unexpected URL %q", u)
		}
		if !strings.Contains(u, "v=abc123") {
			t.Errorf("expected video ID in %q", u)
		}
		if !strings.Contains(u, "autoplay=1") {
			t.Errorf("expected autoplay in %q", u)
		}
		if !strings.Contains(u, "rel=0") {
			t.Errorf("expected related suppression in %q", u)
		}
	})

	t.Run("related content allowed", func(t *testing.T) {
		u := WatchURL("abc123", Options{Autoplay: false, ShowRelated: true})
		if strings.Contains(u, "autoplay") {
			t.Errorf("unexpected autoplay in %q", u)
		}
		if strings.Contains(u, "rel=0") {
			t.Errorf("unexpected rel parameter in %q", u)
		}
	})
}

func TestBrowserPlayer(t *testing.T) {
	t.Run("Load opens the watch URL", func(t *testing.T) {
		var opened string
		b := NewBrowserPlayer()
		b.open = func(rawURL string) error {
			opened = rawURL
			return nil
		}

		if err := b.Load("abc123", DefaultOptions()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(opened, "v=abc123") {
			t.Errorf("expected watch URL, got %q", opened)
		}
		if b.State() != StatePlaying {
			t.Errorf("autoplay load should report playing, got %v", b.State())
		}
	})

	t.Run("Load surfaces launcher failures", func(t *testing.T) {
		b := NewBrowserPlayer()
		b.open = func(string) error { return errors.New("no browser") }

		if err := b.Load("abc123", DefaultOptions()); err == nil {
			t.Error("expected error when launcher fails")
		}
	})

	t.Run("requested state is tracked", func(t *testing.T) {
		b := NewBrowserPlayer()
		b.open = func(string) error { return nil }

		b.Pause()
		if b.State() != StatePaused {
			t.Errorf("expected paused, got %v", b.State())
		}
		b.Play()
		if b.State() != StatePlaying {
			t.Errorf("expected playing, got %v", b.State())
		}
		b.Stop()
		if b.State() != StateEnded {
			t.Errorf("expected ended, got %v", b.State())
		}
	})
}
