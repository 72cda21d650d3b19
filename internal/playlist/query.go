package playlist

import (
	"fmt"
	"strings"

	"github.com/NelCSC/grupo-playlist-app/internal/models"
)

const (
	// DefaultAgeCutoff splits participants between the two framings below.
	DefaultAgeCutoff = 25

	trendsContext   = "tendencias actual"
	classicsContext = "clasicos de todos los tiempos"

	// DefaultRegionTerm biases every query toward Peruvian artists.
	DefaultRegionTerm = "Peruano OR Peruana"

	contentSuffix = "official video OR lyrics"
)

// exclusionRule appends negative search terms when the genre label contains
// the match substring. Rules are evaluated in order and only the first match
// applies, so a label matching several rules gets exactly one exclusion set.
type exclusionRule struct {
	match string
	terms string
}

// The Cumbia and Salsa rules exclude each other's vocabulary; the Rock
// Clásico rule filters out Pop and ballad results that also use "Clásico".
var exclusionRules = []exclusionRule{
	{match: "Cumbia", terms: "-salsa -son -tumbao -clave"},
	{match: "Salsa", terms: "-cumbia -vallenato -tropical -colombiana"},
	{match: "Rock Clásico", terms: "-pop -balada"},
}

// QueryBuilder composes provider search strings from participant data.
// The zero value is unusable; construct with [NewQueryBuilder].
type QueryBuilder struct {
	ageCutoff  int
	regionTerm string
}

// NewQueryBuilder creates a builder with the given age cutoff and region
// priority term, falling back to defaults for zero values.
func NewQueryBuilder(ageCutoff int, regionTerm string) QueryBuilder {
	if ageCutoff <= 0 {
		ageCutoff = DefaultAgeCutoff
	}
	if regionTerm == "" {
		regionTerm = DefaultRegionTerm
	}
	return QueryBuilder{ageCutoff: ageCutoff, regionTerm: regionTerm}
}

// ageContext picks the framing token for a participant's age.
func (b QueryBuilder) ageContext(age int) string {
	if age < b.ageCutoff {
		return trendsContext
	}
	return classicsContext
}

// Build derives the search string for one (genre, age) pair.
func (b QueryBuilder) Build(genre string, age int) string {
	query := fmt.Sprintf("%s %s %s %s", genre, b.ageContext(age), b.regionTerm, contentSuffix)

	for _, rule := range exclusionRules {
		if strings.Contains(genre, rule.match) {
			return query + " " + rule.terms
		}
	}

	return query
}

// BuildAll expands participants into the full query set: one query per
// participant per genre. Two participants sharing a genre still produce one
// query each.
func (b QueryBuilder) BuildAll(participants []models.Participant) []string {
	var queries []string
	for _, p := range participants {
		for _, genre := range p.Genres {
			queries = append(queries, b.Build(genre, p.Age))
		}
	}
	return queries
}
