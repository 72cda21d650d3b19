package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NelCSC/grupo-playlist-app/internal/models"
	"github.com/NelCSC/grupo-playlist-app/internal/shared"
)

// stubGenerator returns a fixed playlist and records its input.
type stubGenerator struct {
	playlist     []string
	err          error
	participants []models.Participant
}

func (s *stubGenerator) Generate(_ context.Context, participants []models.Participant) ([]string, error) {
	s.participants = participants
	return s.playlist, s.err
}

func newTestServer(gen Generator) *httptest.Server {
	srv := New(gen, shared.NewLogger(io.Discard), "localhost", 0)
	return httptest.NewServer(srv.Router())
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(&stubGenerator{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
}

func TestHandleGenerate(t *testing.T) {
	t.Run("returns the generated playlist", func(t *testing.T) {
		gen := &stubGenerator{playlist: []string{"a", "b", "c"}}
		ts := newTestServer(gen)
		defer ts.Close()

		resp := postJSON(t, ts.URL+"/api/generate-playlist",
			`{"participants":[{"age":20,"genres":["Trap"]}]}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var body models.GenerateResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(body.Playlist) != 3 {
			t.Errorf("expected 3 IDs, got %v", body.Playlist)
		}

		if len(gen.participants) != 1 || gen.participants[0].Age != 20 {
			t.Errorf("generator received wrong participants: %+v", gen.participants)
		}
	})

	t.Run("empty candidate set is a 200 with an empty playlist", func(t *testing.T) {
		ts := newTestServer(&stubGenerator{})
		defer ts.Close()

		resp := postJSON(t, ts.URL+"/api/generate-playlist",
			`{"participants":[{"age":20,"genres":["Trap"]}]}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		raw, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(raw), `"playlist":[]`) {
			t.Errorf("expected empty playlist array, got %s", raw)
		}
	})

	t.Run("rejects an empty participant list", func(t *testing.T) {
		gen := &stubGenerator{}
		ts := newTestServer(gen)
		defer ts.Close()

		resp := postJSON(t, ts.URL+"/api/generate-playlist", `{"participants":[]}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}

		var body models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Message == "" {
			t.Error("expected an error message")
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		ts := newTestServer(&stubGenerator{})
		defer ts.Close()

		resp := postJSON(t, ts.URL+"/api/generate-playlist", `{not json`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("rejects participants failing form invariants", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"underage", `{"participants":[{"age":9,"genres":["Trap"]}]}`},
			{"no genres", `{"participants":[{"age":20,"genres":[]}]}`},
			{"unknown genre", `{"participants":[{"age":20,"genres":["Polka"]}]}`},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ts := newTestServer(&stubGenerator{})
				defer ts.Close()

				resp := postJSON(t, ts.URL+"/api/generate-playlist", tc.body)
				defer resp.Body.Close()

				if resp.StatusCode != http.StatusBadRequest {
					t.Errorf("expected 400, got %d", resp.StatusCode)
				}
			})
		}
	})

	t.Run("maps generator validation errors to 400", func(t *testing.T) {
		gen := &stubGenerator{err: fmt.Errorf("%w: bad", shared.ErrInvalidInput)}
		ts := newTestServer(gen)
		defer ts.Close()

		resp := postJSON(t, ts.URL+"/api/generate-playlist",
			`{"participants":[{"age":20,"genres":["Trap"]}]}`)
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("answers CORS preflight", func(t *testing.T) {
		ts := newTestServer(&stubGenerator{})
		defer ts.Close()

		req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/generate-playlist", nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			t.Errorf("expected 204, got %d", resp.StatusCode)
		}
		if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
			t.Error("expected permissive CORS header")
		}
	})
}
