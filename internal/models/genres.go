package models

// Genres is the closed catalog participants choose from. Labels are the exact
// strings fed into provider queries, so the tropical subgenres stay specific
// enough for the exclusion rules to key off them.
var Genres = []string{
	// Pop and current trends
	"Pop Latino",
	"Reggaeton Actual",
	"Trap",
	"Hip Hop",
	"Indie",

	// Rock and classics
	"Rock Clásico (80s/90s)",
	"Rock Alternativo",
	"Rock en Español",
	"Música de los 80s",

	// Electronic
	"Electrónica (EDM)",
	"House",

	// Tropical subgenres
	"Salsa Clásica (Dura)",
	"Salsa Romántica",
	"Cumbia Norteña",
	"Cumbia Sureña",
	"Merengue Clásico",

	// Current hits
	"Temas Actuales (Top Hits)",
}

var genreSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(Genres))
	for _, g := range Genres {
		s[g] = struct{}{}
	}
	return s
}()

// KnownGenre reports whether label is part of the fixed catalog.
func KnownGenre(label string) bool {
	_, ok := genreSet[label]
	return ok
}
