package models

import (
	"fmt"

	"github.com/NelCSC/grupo-playlist-app/internal/shared"
)

// MinAge is the youngest participant age the form accepts.
const MinAge = 10

// Participant is one group member's playlist preferences.
type Participant struct {
	ID     string   `json:"id,omitempty"`
	Age    int      `json:"age"`
	Genres []string `json:"genres"`
}

// NewParticipant creates a Participant with a generated ID.
func NewParticipant(age int, genres []string) Participant {
	return Participant{ID: shared.GenerateID(), Age: age, Genres: genres}
}

// Validate checks the participant against the form's own invariants: a
// minimum age, at least one genre, and only genres from the fixed catalog.
func (p Participant) Validate() error {
	if p.Age < MinAge {
		return fmt.Errorf("%w: age must be at least %d, got %d", shared.ErrInvalidInput, MinAge, p.Age)
	}
	if len(p.Genres) == 0 {
		return fmt.Errorf("%w: participant has no genres selected", shared.ErrInvalidInput)
	}
	for _, g := range p.Genres {
		if !KnownGenre(g) {
			return fmt.Errorf("%w: %q", shared.ErrUnknownGenre, g)
		}
	}
	return nil
}

// GenerateRequest is the body of POST /api/generate-playlist.
type GenerateRequest struct {
	Participants []Participant `json:"participants"`
}

// GenerateResponse carries the shuffled, deduplicated video IDs. An empty
// playlist is a valid result meaning no candidate matched the preferences.
type GenerateResponse struct {
	Playlist []string `json:"playlist"`
}

// ErrorResponse is the JSON shape of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}
