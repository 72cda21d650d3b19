// Package playlist turns a group of participants into a shared candidate list
// of video IDs.
//
// The two pieces are:
//   - [QueryBuilder] : deterministic expansion of one (genre, age) pair into a
//     provider search string, including the age-context framing, the region
//     priority phrase and the genre-family exclusion rules
//   - [Generator] : the concurrent fan-out engine that issues every derived
//     query at once, deduplicates returned video IDs into a single candidate
//     set, and shuffles the result
//
// Individual query failures are logged and discarded; the only way a
// generation call fails is invalid input. An empty result is not an error.
package playlist
